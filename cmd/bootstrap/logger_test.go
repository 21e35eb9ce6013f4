//go:build unit

package bootstrap

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikepacking-api/internal/pkg/config"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), "level %q", in)
	}
}

func TestNewLogHandler(t *testing.T) {
	base := config.LogConfig{Level: "info", TimeZone: "Europe/London", TimeFormat: "2006-01-02 15:04:05"}

	t.Run("release mode writes JSON with formatted time", func(t *testing.T) {
		var buf bytes.Buffer
		slog.New(newLogHandler(&buf, base, gin.ReleaseMode)).Info("purchase reconciled", "payment_id", "pay_1")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line), buf.String())
		assert.Equal(t, "purchase reconciled", line["msg"])
		assert.Equal(t, "pay_1", line["payment_id"])
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`, line["time"])
	})

	t.Run("LOG_FORMAT overrides the mode", func(t *testing.T) {
		cfg := base
		cfg.Format = "json"
		var buf bytes.Buffer
		slog.New(newLogHandler(&buf, cfg, gin.DebugMode)).Info("hello")

		assert.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())), buf.String())
	})

	t.Run("debug mode writes uncolored text to a buffer", func(t *testing.T) {
		var buf bytes.Buffer
		slog.New(newLogHandler(&buf, base, gin.DebugMode)).Warn("square not configured")

		out := buf.String()
		assert.Contains(t, out, "square not configured")
		assert.NotContains(t, out, "\x1b[")
		assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
	})

	t.Run("level filters lower records", func(t *testing.T) {
		cfg := base
		cfg.Level = "error"
		var buf bytes.Buffer
		logger := slog.New(newLogHandler(&buf, cfg, gin.ReleaseMode))
		logger.Info("dropped")
		logger.Error("kept")

		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), "kept")
	})
}

func TestLogLocation(t *testing.T) {
	loc := logLocation(config.LogConfig{TimeZone: "Europe/London"})
	assert.Equal(t, "Europe/London", loc.String())

	fixed := logLocation(config.LogConfig{TimeZone: "Nowhere/Invalid", TimeZoneOffset: 3600})
	assert.Equal(t, "Nowhere/Invalid", fixed.String())
}
