package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	require.Equal(t, zapcore.WarnLevel, ParseLevel("warn"))
	require.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	// мусор — info
	require.Equal(t, zapcore.InfoLevel, ParseLevel("loud"))
	require.Equal(t, zapcore.InfoLevel, ParseLevel(""))
}

func TestNewHTTPLogger_WritesJSONFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	l := NewHTTPLogger(Config{Dir: dir, File: "test.log", Level: "info", Format: "json"})
	l.LogRequest("GET", "/api/contacts", "req-1", 200, 42, 1.5)
	l.Debug("skipped")
	require.NoError(t, l.Sync())

	raw, err := os.ReadFile(filepath.Join(dir, "test.log"))
	require.NoError(t, err)
	out := string(raw)

	require.Equal(t, 1, strings.Count(out, "\n"))
	require.Contains(t, out, `"msg":"HTTP request"`)
	require.Contains(t, out, `"uri":"/api/contacts"`)
	require.Contains(t, out, `"request_id":"req-1"`)
	require.Contains(t, out, `"status":200`)
	require.NotContains(t, out, "skipped")
}

func TestNewHTTPLogger_Console(t *testing.T) {
	dir := t.TempDir()

	l := NewHTTPLogger(Config{Dir: dir, Level: "debug", Format: "console"})
	l.Debug("hello")
	require.NoError(t, l.Sync())

	// имя файла по умолчанию
	raw, err := os.ReadFile(filepath.Join(dir, "http.log"))
	require.NoError(t, err)
	require.Contains(t, string(raw), "hello")
	require.False(t, strings.HasPrefix(string(raw), "{"))
}

func TestNop(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	l.LogRequest("GET", "/", "", 200, 0, 0)
}
