package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Capability wraps a Client with the call policy the pipeline requires:
// a per-attempt timeout and a small, bounded number of retries on transient
// failure. Both knobs are injected by the caller rather than hardcoded.
type Capability struct {
	Client  Client
	Tier    ModelTier
	Timeout time.Duration
	// Retries is the number of additional attempts after the first failure.
	Retries int
}

// DefaultTimeout bounds a single extraction attempt.
const DefaultTimeout = 30 * time.Second

// DefaultRetries is the bounded retry count applied when the caller does not
// configure one.
const DefaultRetries = 2

// NewCapability builds a Capability with defaults filled in.
func NewCapability(client Client, tier ModelTier, timeout time.Duration, retries int) Capability {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if retries < 0 {
		retries = DefaultRetries
	}
	return Capability{Client: client, Tier: tier, Timeout: timeout, Retries: retries}
}

// GenerateJSON runs one JSON generation with the configured timeout, retrying
// on failure up to the bounded retry count. Parent-context cancellation stops
// the retry loop immediately. Callers treat an exhausted error as a signal to
// proceed with defaults, not as a pipeline failure.
func (c Capability) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	if c.Client == nil {
		return "", errors.New("extraction capability has no client")
	}

	var lastErr error
	attempts := c.Retries + 1
	for attempt := 0; attempt < attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		attemptCtx, cancel := context.WithTimeout(ctx, c.Timeout)
		text, err := c.Client.GenerateJSON(attemptCtx, prompt, c.Tier)
		cancel()
		if err == nil {
			return text, nil
		}
		lastErr = err
	}

	return "", fmt.Errorf("extraction call failed after %d attempts: %w", attempts, lastErr)
}
