package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, raw string) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestLoggerWritesJSONWithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l, err := NewLogger("", "debug", &buf)
	require.NoError(t, err)

	l.With("dir", "/tmp/photos").Info("discovery complete", "files", 3)

	entries := decodeLines(t, buf.String())
	require.Len(t, entries, 1)
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "discovery complete", entries[0]["msg"])
	assert.Equal(t, "/tmp/photos", entries[0]["dir"])
	assert.EqualValues(t, 3, entries[0]["files"])
}

func TestLoggerRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l, err := NewLogger("", "warn", &buf)
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")
	l.Error("shown too")

	entries := decodeLines(t, buf.String())
	require.Len(t, entries, 2)
	assert.Equal(t, "WARN", entries[0]["level"])
	assert.Equal(t, "ERROR", entries[1]["level"])
}

func TestLoggerToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "triage.log")
	l, err := NewLogger(path, "info", nil)
	require.NoError(t, err)

	l.Info("hello")
	require.NoError(t, l.Close())
	require.NoError(t, l.Close(), "second close is a no-op")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	l := NopLogger()
	l.With("k", "v").Error("dropped")
	assert.NoError(t, l.Close())
}

func TestValidLevel(t *testing.T) {
	t.Parallel()

	for _, lvl := range []string{"debug", "INFO", "Warn", "error"} {
		assert.True(t, ValidLevel(lvl), lvl)
	}
	assert.False(t, ValidLevel("trace"))
	assert.False(t, ValidLevel(""))
}
