package llm

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyClient fails a fixed number of times before succeeding.
type flakyClient struct {
	failures int
	calls    int
}

func (f *flakyClient) GenerateContent(_ context.Context, _ string, _ ModelTier) (string, error) {
	return "", fmt.Errorf("not used")
}

func (f *flakyClient) GenerateJSON(_ context.Context, _ string, _ ModelTier) (string, error) {
	f.calls++
	if f.calls <= f.failures {
		return "", fmt.Errorf("transient failure %d", f.calls)
	}
	return `{"ok": true}`, nil
}

func (f *flakyClient) Close() error { return nil }

func TestCapabilityRetriesTransientFailures(t *testing.T) {
	client := &flakyClient{failures: 2}
	capability := NewCapability(client, TierStandard, time.Second, 2)

	text, err := capability.GenerateJSON(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, `{"ok": true}`, text)
	assert.Equal(t, 3, client.calls)
}

func TestCapabilityExhaustsBoundedRetries(t *testing.T) {
	client := &flakyClient{failures: 10}
	capability := NewCapability(client, TierStandard, time.Second, 1)

	_, err := capability.GenerateJSON(context.Background(), "prompt")
	require.Error(t, err)
	assert.Equal(t, 2, client.calls, "one initial attempt plus one retry")
	assert.Contains(t, err.Error(), "after 2 attempts")
}

func TestCapabilityHonorsCancellation(t *testing.T) {
	client := &flakyClient{failures: 10}
	capability := NewCapability(client, TierStandard, time.Second, 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := capability.GenerateJSON(ctx, "prompt")
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, client.calls, "no attempts after cancellation")
}

func TestNewCapabilityDefaults(t *testing.T) {
	capability := NewCapability(&flakyClient{}, TierLite, 0, -1)
	assert.Equal(t, DefaultTimeout, capability.Timeout)
	assert.Equal(t, DefaultRetries, capability.Retries)
}
