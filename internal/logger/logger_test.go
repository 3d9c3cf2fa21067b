package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := Logger{Level: "warn", Format: "json"}.New(&buf)

	logger.Info().Msg("dropped")
	assert.Equal(t, "", buf.String())

	logger.Warn().Str("tile", "N00E010.hgt").Msg("missing")
	var entry map[string]any
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "N00E010.hgt", entry["tile"])
	assert.Equal(t, "missing", entry["message"])
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := Logger{Level: "debug", Format: "console"}.New(&buf)
	logger.Debug().Str("tile", "N00E010.hgt").Msg("open")
	assert.True(t, strings.Contains(buf.String(), "open"))
	assert.True(t, strings.Contains(buf.String(), "N00E010.hgt"))
}

func TestNew_DefaultLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := Logger{Format: "json"}.New(&buf)
	logger.Debug().Msg("dropped")
	assert.Equal(t, "", buf.String())
	logger.Info().Msg("kept")
	assert.NotEqual(t, "", buf.String())
}
