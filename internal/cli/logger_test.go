package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/sprintline/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONWhenNotATerminal(t *testing.T) {
	cfg := config.DefaultConfig().Log
	cfg.Level = zerolog.InfoLevel
	var buf bytes.Buffer

	logger, closer := NewLogger(cfg, &buf, false)
	defer closer.Close()
	logger.Info().Str("op", "create").Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "create", entry["op"])
	assert.Contains(t, entry, "time")
}

func TestNewLogger_LevelFilters(t *testing.T) {
	cfg := config.DefaultConfig().Log
	cfg.Level = zerolog.WarnLevel
	var buf bytes.Buffer

	logger, _ := NewLogger(cfg, &buf, false)
	logger.Debug().Msg("hidden")
	logger.Info().Msg("hidden too")
	assert.Zero(t, buf.Len())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLogger_ConsoleFormat(t *testing.T) {
	cfg := config.DefaultConfig().Log
	cfg.Level = zerolog.InfoLevel
	cfg.Format = config.FormatConsole
	var buf bytes.Buffer

	logger, _ := NewLogger(cfg, &buf, false)
	logger.Info().Msg("plain text")

	assert.Contains(t, buf.String(), "plain text")
	assert.False(t, json.Valid(buf.Bytes()), "console output is not JSON")
}

func TestNewLogger_WritesRotatingFile(t *testing.T) {
	cfg := config.DefaultConfig().Log
	cfg.Level = zerolog.InfoLevel
	cfg.File = filepath.Join(t.TempDir(), "logs", "sprintline.log")
	var console bytes.Buffer

	logger, closer := NewLogger(cfg, &console, false)
	logger.Info().Msg("to both")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to both")
	assert.Contains(t, console.String(), "to both")
}
