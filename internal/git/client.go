package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/egoavara/spin-hub/internal/log"
	"github.com/egoavara/spin-hub/internal/process"
)

// DefaultRemoteName is the remote label used for clones, so that the user's
// own "origin" is left free.
const DefaultRemoteName = "upstream"

var (
	// ErrCloneFailed is returned when git clone exits unsuccessfully
	ErrCloneFailed = errors.New("git clone failed - see output for details")
	// ErrNoCloneDir is returned when no directory name can be derived from a repository URL
	ErrNoCloneDir = errors.New("can't determine output directory")
)

// Client is the interface for git operations
type Client interface {
	// CloneDecoupled clones url into dest with the remote named DefaultRemoteName,
	// streaming git's output to the terminal. An empty dest lets git choose.
	CloneDecoupled(ctx context.Context, url, dest string) error
	// CloneQuiet makes a shallow clone of url into dest, capturing git's output.
	// An empty branch clones the default branch.
	CloneQuiet(ctx context.Context, url, dest, branch string) error
	// Init initialises a new repository in dir
	Init(ctx context.Context, dir string) error
}

// DefaultClient is the default git client implementation
type DefaultClient struct {
	Binary     string
	RemoteName string
	Runner     process.Runner
}

// NewClient creates a new git client
func NewClient(runner process.Runner) *DefaultClient {
	return &DefaultClient{
		Binary:     "git",
		RemoteName: DefaultRemoteName,
		Runner:     runner,
	}
}

// CloneDecoupled clones a git repository, forwarding git's stdio
func (c *DefaultClient) CloneDecoupled(ctx context.Context, url, dest string) error {
	args := []string{"clone", "-o", c.RemoteName, url}
	if dest != "" {
		args = append(args, dest)
	}

	log.Info(log.CatGit, "clone", "url", url, "dest", dest)

	status, err := c.Runner.Run(ctx, process.Command{Name: c.Binary, Args: args})
	if err != nil {
		return err
	}
	if !status.Success() {
		log.Warn(log.CatGit, "clone failed", "url", url, "status", status.Code)
		return ErrCloneFailed
	}

	return nil
}

// CloneQuiet makes a shallow clone, keeping git's stderr for the error message
func (c *DefaultClient) CloneQuiet(ctx context.Context, url, dest, branch string) error {
	args := []string{"clone", "--depth", "1"}
	if branch != "" {
		args = append(args, "--branch", branch)
	}
	args = append(args, url, dest)

	var stdout, stderr bytes.Buffer
	status, err := c.Runner.Run(ctx, process.Command{
		Name:   c.Binary,
		Args:   args,
		Stdout: &stdout,
		Stderr: &stderr,
	})
	if err != nil {
		return err
	}
	if !status.Success() {
		errMsg := strings.TrimSpace(stderr.String())
		log.Debug(log.CatGit, "quiet clone failed", "url", url, "branch", branch, "stderr", errMsg)
		if isAuthError(errMsg) {
			return &AuthError{URL: url, Message: errMsg}
		}
		return fmt.Errorf("%w: %s", ErrCloneFailed, errMsg)
	}

	return nil
}

// Init initialises a git repository in dir
func (c *DefaultClient) Init(ctx context.Context, dir string) error {
	var stderr bytes.Buffer
	status, err := c.Runner.Run(ctx, process.Command{
		Name:   c.Binary,
		Args:   []string{"init", "--quiet"},
		Dir:    dir,
		Stdout: &bytes.Buffer{},
		Stderr: &stderr,
	})
	if err != nil {
		return err
	}
	if !status.Success() {
		return fmt.Errorf("git init failed: %s", strings.TrimSpace(stderr.String()))
	}
	return nil
}

// CloneDir returns the directory git clone creates for repo: the last path
// segment of the URL with any .git suffix removed.
func CloneDir(repo string) (string, error) {
	u, err := url.Parse(repo)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoCloneDir, err)
	}

	segments := strings.Split(strings.TrimRight(u.Path, "/"), "/")
	last := segments[len(segments)-1]
	dir := strings.TrimSuffix(last, ".git")

	if dir == "" || dir == "." || dir == ".." {
		return "", fmt.Errorf("%w: %s", ErrNoCloneDir, repo)
	}

	return dir, nil
}

// AuthError represents a git authentication error
type AuthError struct {
	URL     string
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed for '%s': %s", e.URL, e.Message)
}

// isAuthError checks if the error message indicates an authentication failure
func isAuthError(msg string) bool {
	authPatterns := []string{
		"Authentication failed",
		"Permission denied",
		"could not read Username",
		"403",
		"401",
	}

	for _, pattern := range authPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}
