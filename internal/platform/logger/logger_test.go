package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/phrazzld/eholdings-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		want  slog.Level
		known bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"Warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}

	for _, tc := range tests {
		level, ok := ParseLevel(tc.name)
		assert.Equal(t, tc.want, level, "level for %q", tc.name)
		assert.Equal(t, tc.known, ok, "known for %q", tc.name)
	}
}

func TestSetupWritesJSONAtConfiguredLevel(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	buf := &TestLogBuffer{}
	l := setup(config.ServerConfig{LogLevel: "warn"}, buf)
	require.NotNil(t, l)

	l.Info("dropped")
	l.Warn("kept", "tenant", "fs")
	slog.Error("via default")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "kept", entries[0]["msg"])
	assert.Equal(t, "fs", entries[0]["tenant"])
	assert.Equal(t, "via default", entries[1]["msg"])
}

func TestContextLogger(t *testing.T) {
	fallback := slog.New(slog.NewJSONHandler(&TestLogBuffer{}, nil))
	scoped := slog.New(slog.NewJSONHandler(&TestLogBuffer{}, nil))

	assert.Nil(t, FromContext(context.Background()))
	assert.Same(t, fallback, FromContextOrDefault(context.Background(), fallback))
	assert.Same(t, slog.Default(), FromContextOrDefault(context.Background(), nil))

	ctx := WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, FromContext(ctx))
	assert.Same(t, scoped, FromContextOrDefault(ctx, fallback))
}
