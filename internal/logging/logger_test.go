package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONLines(t *testing.T) {
	dir := t.TempDir()
	logger, closer, err := New(dir, "debug")
	require.NoError(t, err)

	logger.Warn("text is empty", "text", "  ")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, "logs", "tally.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"text is empty"`)
	assert.Contains(t, string(data), `"level":"WARN"`)
}

func TestNew_RespectsLevel(t *testing.T) {
	dir := t.TempDir()
	logger, closer, err := New(dir, "error")
	require.NoError(t, err)
	logger.Info("hidden")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, "logs", "tally.log"))
	require.NoError(t, err)
	assert.Empty(t, string(data))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("loud"))
}
