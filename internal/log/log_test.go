package log

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Defaults(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger("codec", Config{Output: &buf})
	require.NoError(t, err)
	require.Equal(t, DefaultLevel, logger.Logger.GetLevel())

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "shown")
	require.Contains(t, out, "name=codec")
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger("selftest", Config{Level: "debug", Output: &buf})
	require.NoError(t, err)
	require.Equal(t, logrus.DebugLevel, logger.Logger.GetLevel())

	logger.WithField("trial", 3).Debug("decoded")
	require.Contains(t, buf.String(), "trial=3")
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger("codec", Config{Level: "loud"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "loud")
}

func TestNewLogger_FileHook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hamming84.log")

	var buf bytes.Buffer
	logger, err := NewLogger("selftest", Config{Level: "info", Output: &buf, File: path})
	require.NoError(t, err)

	logger.Info("not in file")
	logger.WithField("position", "D2").Warn("mismatch")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "mismatch", entry["msg"])
	require.Equal(t, "D2", entry["position"])
	require.Equal(t, "selftest", entry["name"])
}

func TestNewLogger_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "hamming84.log")

	_, err := NewLogger("selftest", Config{File: path})
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Contains(t, err.Error(), "log file")
}

func TestAddFileHook_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hook.log")

	base := logrus.New()
	require.NoError(t, AddFileHook(base, path))
	require.FileExists(t, path)
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	require.NotPanics(t, func() {
		logger.Error("dropped")
	})
}
