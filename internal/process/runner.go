package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/egoavara/spin-hub/internal/log"
)

// ErrStartFailed is returned when a process cannot be started at all
var ErrStartFailed = errors.New("failed to start process")

// Command describes a process to run
type Command struct {
	Name string
	Args []string
	Dir  string // working directory; empty means the current one

	// Nil streams are connected to the parent's stdio.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// String renders the command line for logs and messages
func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// ExitStatus is the outcome of a process that was started
type ExitStatus struct {
	Code int
}

// Success reports whether the process exited with code 0
func (s ExitStatus) Success() bool {
	return s.Code == 0
}

func (s ExitStatus) String() string {
	return fmt.Sprintf("exit status %d", s.Code)
}

// Runner starts a process and waits for it to exit.
// A non-zero exit is reported through ExitStatus, not as an error.
type Runner interface {
	Run(ctx context.Context, cmd Command) (ExitStatus, error)
}

// ExecRunner runs commands with os/exec
type ExecRunner struct{}

// NewExecRunner creates a new runner backed by os/exec
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run starts cmd, forwards its stdio and waits for it to finish
func (r *ExecRunner) Run(ctx context.Context, cmd Command) (ExitStatus, error) {
	//nolint:gosec // G204: command comes from configuration and catalog data validated by callers
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdin, c.Stdout, c.Stderr = os.Stdin, os.Stdout, os.Stderr
	if cmd.Stdin != nil {
		c.Stdin = cmd.Stdin
	}
	if cmd.Stdout != nil {
		c.Stdout = cmd.Stdout
	}
	if cmd.Stderr != nil {
		c.Stderr = cmd.Stderr
	}

	log.Debug(log.CatProcess, "starting", "cmd", cmd.String(), "dir", cmd.Dir)

	if err := c.Start(); err != nil {
		log.ErrorErr(log.CatProcess, "start failed", err, "cmd", cmd.Name)
		return ExitStatus{Code: -1}, fmt.Errorf("%w: %s: %w", ErrStartFailed, cmd.Name, err)
	}

	err := c.Wait()
	if err == nil {
		log.Debug(log.CatProcess, "exited", "cmd", cmd.Name, "code", 0)
		return ExitStatus{Code: 0}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		log.Info(log.CatProcess, "exited", "cmd", cmd.Name, "code", code)
		return ExitStatus{Code: code}, nil
	}

	return ExitStatus{Code: -1}, fmt.Errorf("waiting for %s: %w", cmd.Name, err)
}
