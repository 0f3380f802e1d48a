package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExtractionPrompt(t *testing.T) {
	prompt, err := Get("extraction.json", "extract-application")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.CanonicalText}}")
	assert.Contains(t, prompt, "{{.Requirements}}")
	assert.Contains(t, prompt, "years_experience")
}

func TestGetMissingKey(t *testing.T) {
	_, err := Get("extraction.json", "no-such-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-key")
}

func TestGetMissingFile(t *testing.T) {
	_, err := Get("missing.json", "anything")
	require.Error(t, err)
}

func TestMustGetPanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("extraction.json", "no-such-key")
	})
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		data     map[string]string
		expected string
	}{
		{
			name:     "Single placeholder",
			template: "Hello {{.Name}}",
			data:     map[string]string{"Name": "World"},
			expected: "Hello World",
		},
		{
			name:     "Repeated placeholder",
			template: "{{.X}} and {{.X}}",
			data:     map[string]string{"X": "again"},
			expected: "again and again",
		},
		{
			name:     "Unknown placeholder left in place",
			template: "keep {{.Missing}}",
			data:     map[string]string{"Other": "x"},
			expected: "keep {{.Missing}}",
		},
		{
			name:     "No placeholders",
			template: "static",
			data:     map[string]string{"A": "b"},
			expected: "static",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.template, tt.data))
		})
	}
}

func TestFormatBuildsUsablePrompt(t *testing.T) {
	template := MustGet("extraction.json", "extract-application")
	prompt := Format(template, map[string]string{
		"JobID":            "job-1",
		"Requirements":     "- certification: osha",
		"CanonicalText":    "3 years warehouse experience",
		"AvailabilityText": "weekends ok",
	})

	assert.False(t, strings.Contains(prompt, "{{."), "all placeholders should be substituted")
	assert.Contains(t, prompt, "3 years warehouse experience")
}
