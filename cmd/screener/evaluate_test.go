package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadApplications(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apps.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"application_id": "app-1", "cv_text": "forklift operator", "job_id": "job-1"},
		{"application_id": "app-2", "cv_text": "warehouse picker", "job_id": "job-1"}
	]`), 0o644))

	apps, err := loadApplications(path)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, "app-1", apps[0].ApplicationID)
	assert.Equal(t, "warehouse picker", apps[1].CVText)
}

func TestLoadApplicationsMissingFile(t *testing.T) {
	_, err := loadApplications(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadApplicationsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apps.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "an array"}`), 0o644))

	_, err := loadApplications(path)
	assert.Error(t, err)
}
