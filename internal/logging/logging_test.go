package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"Warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNew_AddsServiceAttr(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "INFO", "byword-intake-api")
	logger.Info("contact submission received", "email", "a@b.com")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "byword-intake-api", rec["service"])
	assert.Equal(t, "a@b.com", rec["email"])
	assert.NotContains(t, rec, "stacktrace")
}

func TestNew_ErrorIncludesStacktrace(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "INFO", "svc")
	logger.Error("handler failed")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.NotEmpty(t, rec["stacktrace"])
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "WARN", "svc")
	logger.Info("dropped")
	assert.Zero(t, buf.Len())
}
