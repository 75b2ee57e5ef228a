package log

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLog_DisabledByDefault(t *testing.T) {
	Reset()
	// Must not panic with no logger installed
	Info(CatHub, "ignored", "k", "v")
}

func TestLog_FormatsFields(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, LevelDebug)
	t.Cleanup(Reset)

	Info(CatGit, "cloned", "url", "https://example.com/a.git", "dest", "a")

	line := buf.String()
	require.Contains(t, line, "[INFO] [git] cloned url=https://example.com/a.git dest=a")
	require.True(t, strings.HasSuffix(line, "\n"))
}

func TestLog_OddFieldMarkedMissing(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, LevelDebug)
	t.Cleanup(Reset)

	Warn(CatAcquire, "odd", "path")

	require.Contains(t, buf.String(), "path=<missing>")
}

func TestLog_MinLevel(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, LevelWarn)
	t.Cleanup(Reset)

	Debug(CatHub, "debug")
	Info(CatHub, "info")
	require.Empty(t, buf.String())

	Error(CatHub, "boom")
	require.Contains(t, buf.String(), "[ERROR] [hub] boom")

	buf.Reset()
	SetMinLevel(LevelDebug)
	Debug(CatHub, "now visible")
	require.Contains(t, buf.String(), "[DEBUG]")
}

func TestLog_ErrorErr(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, LevelDebug)
	t.Cleanup(Reset)

	ErrorErr(CatProcess, "spawn", errors.New("not found"), "cmd", "spin")
	ErrorErr(CatProcess, "spawn", nil)

	out := buf.String()
	require.Contains(t, out, "cmd=spin error=not found")
	require.Contains(t, out, "error=<nil>")
}

func TestInit_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	closeLog, err := Init(path, "spin-hub")
	require.NoError(t, err)
	t.Cleanup(Reset)

	Info(CatConfig, "hello")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[INFO] [config] hello")
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "WARN", LevelWarn.String())
	require.Equal(t, "UNKNOWN", Level(42).String())
}
