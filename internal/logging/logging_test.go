package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/logging"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, logging.ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("chatty"))
}

func TestNew_ConsoleJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, closer := logging.New(config.LoggingConfig{Level: "info", Format: "json"}, &buf)
	defer closer.Close()

	logger.Debug("hidden")
	logger.Info("Action resolved", "ability", "armed_attack")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "Action resolved", record["msg"])
	assert.Equal(t, "armed_attack", record["ability"])
}

func TestNew_WritesRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.log")
	var console bytes.Buffer

	logger, closer := logging.New(config.LoggingConfig{
		Level:     "debug",
		Format:    "text",
		File:      path,
		MaxSizeMB: 1,
	}, &console)

	logger.With("session_id", "local").Debug("History cleared", "entries_deleted", 3)
	require.NoError(t, closer.Close())

	assert.Contains(t, console.String(), "History cleared")
	assert.Contains(t, console.String(), "session_id=local")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var record map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &record))
	assert.Equal(t, "History cleared", record["msg"])
	assert.Equal(t, "local", record["session_id"])
	assert.EqualValues(t, 3, record["entries_deleted"])
}
