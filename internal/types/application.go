package types

// Application is the raw candidate submission as received at ingest.
type Application struct {
	ApplicationID        string `json:"application_id"`
	CVText               string `json:"cv_text"`
	ScreeningAnswersText string `json:"screening_answers_text"`
	AvailabilityText     string `json:"availability_text"`
	JobID                string `json:"job_id"`
}

// NormalizedApplication is the canonical form of an Application used for
// deduplication and prompt building. CanonicalText is the lowercased,
// whitespace-collapsed concatenation of CV and screening answers; DedupeKey is
// a fixed-length content fingerprint of CanonicalText, so identical canonical
// text always yields an identical key.
type NormalizedApplication struct {
	ApplicationID string `json:"application_id"`
	CanonicalText string `json:"canonical_text"`
	DedupeKey     string `json:"dedupe_key"`
}
