// Package normalize provides deterministic text canonicalization and content
// fingerprinting for candidate submissions.
package normalize

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/jonathan/application-screener/internal/types"
)

// fingerprintLen is the number of hex characters kept from the sha256 digest.
// 16 hex chars (64 bits) keeps keys short while making collisions between
// distinct canonical texts overwhelmingly improbable.
const fingerprintLen = 16

// Canonicalize joins the given text fields with a single space, trims leading
// and trailing whitespace, lowercases the result, and collapses every run of
// whitespace (including newlines and tabs) to a single space. It is total and
// idempotent: empty input yields the empty string.
func Canonicalize(fields ...string) string {
	joined := strings.Join(fields, " ")
	return strings.Join(strings.Fields(strings.ToLower(joined)), " ")
}

// Fingerprint returns the first 16 hex characters of the sha256 digest of the
// UTF-8 bytes of text. Equal input always yields an equal fingerprint.
func Fingerprint(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])[:fingerprintLen]
}

// Apply derives the NormalizedApplication for an Application. The dedupe key
// is the fingerprint of the canonical CV + screening answers text, so repeat
// submissions that differ only in casing or whitespace map to the same key.
func Apply(app types.Application) types.NormalizedApplication {
	canonical := Canonicalize(app.CVText, app.ScreeningAnswersText)
	return types.NormalizedApplication{
		ApplicationID: app.ApplicationID,
		CanonicalText: canonical,
		DedupeKey:     Fingerprint(canonical),
	}
}
