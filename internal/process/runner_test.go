package process

import (
	"bytes"
	"context"
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecRunner_Success(t *testing.T) {
	requireShell(t)

	var stdout bytes.Buffer
	status, err := NewExecRunner().Run(context.Background(), Command{
		Name:   "sh",
		Args:   []string{"-c", "echo hello"},
		Stdout: &stdout,
	})
	require.NoError(t, err)
	require.True(t, status.Success())
	require.Equal(t, "hello\n", stdout.String())
}

func TestExecRunner_NonZeroExitIsNotAnError(t *testing.T) {
	requireShell(t)

	status, err := NewExecRunner().Run(context.Background(), Command{
		Name:   "sh",
		Args:   []string{"-c", "exit 3"},
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
	})
	require.NoError(t, err)
	require.False(t, status.Success())
	require.Equal(t, 3, status.Code)
}

func TestExecRunner_WorkingDirectory(t *testing.T) {
	requireShell(t)

	dir := t.TempDir()
	var stdout bytes.Buffer
	_, err := NewExecRunner().Run(context.Background(), Command{
		Name:   "sh",
		Args:   []string{"-c", "ls"},
		Dir:    dir,
		Stdout: &stdout,
	})
	require.NoError(t, err)
	require.Empty(t, stdout.String())
}

func TestExecRunner_StartFailure(t *testing.T) {
	_, err := NewExecRunner().Run(context.Background(), Command{
		Name: "definitely-not-a-real-binary-7f3a",
	})
	require.ErrorIs(t, err, ErrStartFailed)
}

func TestCommandString(t *testing.T) {
	c := Command{Name: "git", Args: []string{"clone", "-o", "upstream", "https://example.com/x.git"}}
	require.Equal(t, "git clone -o upstream https://example.com/x.git", c.String())
}
