package config_test

import (
	"os"
	"path/filepath"
	"testing"

	// Packages
	clinic "github.com/mutablelogic/go-clinic"
	config "github.com/mutablelogic/go-clinic/pkg/config"
	schema "github.com/mutablelogic/go-clinic/pkg/schema"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

// clearEnv unsets every variable read by the settings for the test
func clearEnv(t *testing.T) {
	for _, key := range []string{
		config.EnvToken, config.EnvBaseURL, config.EnvPatientID, config.EnvTaskType,
		config.EnvEndpoint, config.EnvAPIKey, config.EnvDeployment, config.EnvAPIVersion,
	} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	assert := assert.New(t)
	clearEnv(t)
	t.Setenv(config.EnvToken, "secret")

	settings, err := config.Load(writeFile(t, ""))
	if assert.NoError(err) {
		assert.Equal("secret", settings.Token)
		assert.Equal("https://virtual-clinic-api.vercel.app", settings.BaseURL)
		assert.Empty(settings.PatientID)
		assert.Equal(schema.TaskDiagnosis, settings.TaskType)
		assert.Equal("gpt5", settings.Azure.Deployment)
		assert.Equal("2024-08-01-preview", settings.Azure.APIVersion)
		assert.ErrorIs(settings.Azure.Validate(), clinic.ErrBadParameter)
	}
}

func TestLoadFile(t *testing.T) {
	assert := assert.New(t)
	clearEnv(t)
	path := writeFile(t, `
VIRTUAL_CLINIC_TOKEN=from-file
VIRTUAL_CLINIC_PATIENT_ID=p1
VIRTUAL_CLINIC_TASK_TYPE=event
AZURE_OPENAI_ENDPOINT=https://example.openai.azure.com
AZURE_OPENAI_API_KEY=key
`)

	settings, err := config.Load(path)
	if assert.NoError(err) {
		assert.Equal("from-file", settings.Token)
		assert.Equal("p1", settings.PatientID)
		assert.Equal(schema.TaskEvent, settings.TaskType)
		assert.Equal("https://example.openai.azure.com", settings.Azure.Endpoint)
		assert.NoError(settings.Azure.Validate())
	}
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	assert := assert.New(t)
	clearEnv(t)
	t.Setenv(config.EnvToken, "from-env")
	t.Setenv(config.EnvTaskType, "treatment")
	path := writeFile(t, "VIRTUAL_CLINIC_TOKEN=from-file\nVIRTUAL_CLINIC_TASK_TYPE=event\n")

	settings, err := config.Load(path)
	if assert.NoError(err) {
		assert.Equal("from-env", settings.Token)
		assert.Equal(schema.TaskTreatment, settings.TaskType)
	}
}

func TestLoadMissingToken(t *testing.T) {
	assert := assert.New(t)
	clearEnv(t)

	_, err := config.Load(writeFile(t, ""))
	assert.ErrorIs(err, clinic.ErrBadParameter)
	assert.ErrorContains(err, config.EnvToken)
}

func TestLoadInvalidTaskType(t *testing.T) {
	assert := assert.New(t)
	clearEnv(t)
	t.Setenv(config.EnvToken, "secret")
	t.Setenv(config.EnvTaskType, "surgery")

	_, err := config.Load(writeFile(t, ""))
	assert.ErrorIs(err, clinic.ErrBadParameter)
	assert.ErrorContains(err, config.EnvTaskType)
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, clinic.ErrBadParameter)
}

func TestLoadEnv(t *testing.T) {
	assert := assert.New(t)
	clearEnv(t)
	os.Unsetenv(config.EnvPatientID)
	t.Setenv(config.EnvToken, "from-env")
	path := writeFile(t, "VIRTUAL_CLINIC_TOKEN=from-file\nVIRTUAL_CLINIC_PATIENT_ID=p2\n")

	assert.NoError(config.LoadEnv(path))
	assert.Equal("from-env", os.Getenv(config.EnvToken))
	assert.Equal("p2", os.Getenv(config.EnvPatientID))
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	assert := assert.New(t)
	clearEnv(t)
	t.Setenv(config.EnvToken, "secret")
	t.Setenv(config.EnvAPIVersion, "2025-01-01")
	path := writeFile(t, "AZURE_OPENAI_DEPLOYMENT=gpt4o\nAZURE_OPENAI_API_VERSION=2024-02-01\nVIRTUAL_CLINIC_BASE_URL=http://localhost:3000\n")

	settings, err := config.Load(path)
	if assert.NoError(err) {
		assert.Equal("http://localhost:3000", settings.BaseURL)
		assert.Equal("gpt4o", settings.Azure.Deployment)
		assert.Equal("2025-01-01", settings.Azure.APIVersion)
	}
}
