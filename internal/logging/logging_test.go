package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(" WARN "))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestMultiHandlerRespectsLevels(t *testing.T) {
	var debug, warn bytes.Buffer

	logger := slog.New(&MultiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}}).With("set", 2)

	logger.Debug("tick")
	logger.Warn("cue failed")

	assert.Contains(t, debug.String(), "msg=tick")
	assert.Contains(t, debug.String(), "msg=\"cue failed\"")
	assert.NotContains(t, warn.String(), "msg=tick")
	assert.Contains(t, warn.String(), "set=2")
}

func TestSetupWritesLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "log", "exerun.log")

	logger, err := Setup(logFile, "info", true)
	require.NoError(t, err)

	logger.Info("workout started", "sets", 4)
	require.NoError(t, Close())

	b, err := os.ReadFile(logFile)
	require.NoError(t, err)

	assert.Contains(t, string(b), "workout started")
	assert.Contains(t, string(b), "sets=4")
}
