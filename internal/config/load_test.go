package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets up environment variables for testing
func setupEnv(t *testing.T, envVars map[string]string) func() {
	// Save current environment values
	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	// Set new environment variables
	for name, value := range envVars {
		err := os.Setenv(name, value)
		require.NoError(t, err, "Failed to set environment variable %s", name)
	}

	// Return cleanup function
	return func() {
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

// TestLoadDefaults verifies that Load sets the expected default values when
// no environment variables are set.
func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"EHOLDINGS_SERVER_PORT":       "",
		"EHOLDINGS_SERVER_LOG_LEVEL":  "",
		"EHOLDINGS_RMAPI_BASE_URL":    "",
		"EHOLDINGS_RMAPI_CUSTOMER_ID": "",
		"EHOLDINGS_RMAPI_API_KEY":     "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, 10, cfg.Server.ShutdownTimeoutSeconds)
	assert.Equal(t, "https://sandbox.ebsco.io", cfg.RMAPI.BaseURL)
	assert.Equal(t, 30, cfg.RMAPI.TimeoutSeconds)
	assert.Equal(t, 10, cfg.Okapi.TimeoutSeconds)
	assert.False(t, cfg.RMAPI.HasFallbackCredentials())
}

// TestLoadFromEnv verifies that Load reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"EHOLDINGS_SERVER_PORT":           "9090",
		"EHOLDINGS_SERVER_LOG_LEVEL":      "debug",
		"EHOLDINGS_RMAPI_BASE_URL":        "https://api.ebsco.io",
		"EHOLDINGS_RMAPI_CUSTOMER_ID":     "test-customer-id",
		"EHOLDINGS_RMAPI_API_KEY":         "test-rm-api-key",
		"EHOLDINGS_RMAPI_TIMEOUT_SECONDS": "5",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "https://api.ebsco.io", cfg.RMAPI.BaseURL)
	assert.Equal(t, "test-customer-id", cfg.RMAPI.CustomerID)
	assert.Equal(t, "test-rm-api-key", cfg.RMAPI.APIKey)
	assert.Equal(t, 5, cfg.RMAPI.TimeoutSeconds)
	assert.True(t, cfg.RMAPI.HasFallbackCredentials())
}

// TestLoadFile verifies that an explicit YAML file is read and that the
// environment still takes precedence over it.
func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`server:
  port: 7070
  log_level: warn
rmapi:
  base_url: https://file.example.org
  customer_id: file-customer
  api_key: file-key
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cleanup := setupEnv(t, map[string]string{
		"EHOLDINGS_SERVER_PORT":       "",
		"EHOLDINGS_SERVER_LOG_LEVEL":  "error",
		"EHOLDINGS_RMAPI_BASE_URL":    "",
		"EHOLDINGS_RMAPI_CUSTOMER_ID": "",
		"EHOLDINGS_RMAPI_API_KEY":     "",
	})
	defer cleanup()

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "error", cfg.Server.LogLevel, "environment should override the file")
	assert.Equal(t, "https://file.example.org", cfg.RMAPI.BaseURL)
	assert.Equal(t, "file-customer", cfg.RMAPI.CustomerID)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err, "an explicit file that does not exist is an error")
}

// TestLoadValidationErrors verifies that Load validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name: "Invalid port number",
			envVars: map[string]string{
				"EHOLDINGS_SERVER_PORT": "999999",
			},
		},
		{
			name: "Invalid log level",
			envVars: map[string]string{
				"EHOLDINGS_SERVER_LOG_LEVEL": "invalid-level",
			},
		},
		{
			name: "Invalid RM API URL",
			envVars: map[string]string{
				"EHOLDINGS_RMAPI_BASE_URL": "not a url",
			},
		},
		{
			name: "Customer id without API key",
			envVars: map[string]string{
				"EHOLDINGS_RMAPI_CUSTOMER_ID": "test-customer-id",
				"EHOLDINGS_RMAPI_API_KEY":     "",
			},
		},
		{
			name: "Timeout out of range",
			envVars: map[string]string{
				"EHOLDINGS_OKAPI_TIMEOUT_SECONDS": "0",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cleanup := setupEnv(t, tc.envVars)
			defer cleanup()

			cfg, err := Load()

			assert.Error(t, err, "Load() should return an error with invalid configuration")
			if err != nil {
				assert.Contains(t, err.Error(), "validation failed")
			}
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
