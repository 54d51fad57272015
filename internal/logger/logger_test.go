package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func decodeEntry(t *testing.T, buf *bytes.Buffer) logEntry {
	t.Helper()
	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLoggerWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.With("preset", "card").Info("compiled preset", "tokens", 4)

	entry := decodeEntry(t, buf)
	require.Equal(t, "compiled preset", entry["message"])
	require.Equal(t, "card", entry["preset"])
	require.EqualValues(t, 4, entry["tokens"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDefaultLevelIsWarn(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.Info("quiet")
	log.Debug("quieter")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
	require.True(t, log.Enabled(zerolog.ErrorLevel))
	require.False(t, log.Enabled(zerolog.InfoLevel))

	log.Warn("loud")
	require.Equal(t, "warn", decodeEntry(t, buf)["level"])
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.Error(errors.New("boom"), "compile failed", "preset", "hero")

	entry := decodeEntry(t, buf)
	require.Equal(t, "error", entry["level"])
	require.Equal(t, "boom", entry["error"])
	require.Equal(t, "hero", entry["preset"])
}

func TestLoggerInvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestLoggerConsoleOutput(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Console: true, Writer: buf})
	require.NoError(t, err)

	log.Info("human readable")
	require.Contains(t, buf.String(), "human readable")
}

func TestNilAndNopLoggersAreSilent(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.With("a", 1).Info("ignored")
		log.Error(errors.New("x"), "ignored")
		Nop().Warn("ignored")
	})
	require.False(t, log.Enabled(zerolog.ErrorLevel))
}
