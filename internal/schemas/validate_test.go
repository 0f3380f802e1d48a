package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"type": "object",
	"required": ["confidence"],
	"properties": {
		"confidence": {"type": "integer", "minimum": 0, "maximum": 100},
		"skills": {"type": "array", "items": {"type": "string"}}
	}
}`

func TestValidateJSONStringValid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"confidence": 85, "skills": ["forklift"]}`)
	assert.NoError(t, err)
}

func TestValidateJSONStringInvalid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"confidence": 150}`)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Error(), "confidence")
}

func TestValidateJSONStringMissingRequired(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"skills": []}`)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
}

func TestValidateJSONStringBadDocument(t *testing.T) {
	err := ValidateJSONString(testSchema, `not json at all`)
	require.Error(t, err)
}

func TestValidateJSONStringBadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 42}`, `{}`)
	require.Error(t, err)
}
