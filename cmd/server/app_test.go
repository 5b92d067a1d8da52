package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplicationFromFile(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9130
  log_level: warn
rmapi:
  base_url: https://sandbox.ebsco.io
  customer_id: apidvcorp
  api_key: secret
`), 0o600))

	app, err := newApplication(path)
	require.NoError(t, err)

	assert.Equal(t, 9130, app.config.Server.Port)
	assert.True(t, app.config.RMAPI.HasFallbackCredentials())
	assert.NotNil(t, app.titleService)
	assert.NotNil(t, app.statusService)
	assert.NotNil(t, app.setupRouter())
}

func TestNewApplicationMissingFile(t *testing.T) {
	_, err := newApplication(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
