package acquire

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/egoavara/spin-hub/internal/git"
	"github.com/egoavara/spin-hub/internal/hub"
	"github.com/egoavara/spin-hub/internal/log"
	"github.com/egoavara/spin-hub/internal/pathsafe"
	"github.com/egoavara/spin-hub/internal/process"
	"github.com/egoavara/spin-hub/internal/templates"
)

// ErrMissingAppName is returned when a scaffold is requested without an application name
var ErrMissingAppName = errors.New("application name is required")

// Scaffold creates a new application from a template entry
type Scaffold struct {
	env Env
}

// Acquire installs the entry's template repository into a temporary workspace
// and expands the template into req.Dir/req.AppName
func (s *Scaffold) Acquire(ctx context.Context, entry hub.Entry, req Request) (*Result, error) {
	id, ok := entry.TemplateID()
	if !ok {
		return nil, fmt.Errorf("%w: hub entry '%s' has no template ID", ErrMissingLocator, entry.Title())
	}
	repo, ok := entry.RepoURL()
	if !ok {
		return nil, fmt.Errorf("%w: hub template %s has no repo", ErrMissingLocator, id)
	}

	out, err := s.target(req)
	if err != nil {
		return nil, err
	}

	ws, err := s.env.OpenWorkspace(s.env.Git)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := ws.Close(); err != nil {
			log.Warn(log.CatAcquire, "failed to remove template workspace", "dir", ws.Dir, "error", err)
		}
	}()

	if err := ws.Install(ctx, repo, s.env.SpinVersion); err != nil {
		var authErr *git.AuthError
		if errors.Is(err, git.ErrCloneFailed) || errors.Is(err, process.ErrStartFailed) || errors.As(err, &authErr) {
			return nil, processError(err)
		}
		return nil, err
	}

	tmpl, err := ws.Get(id)
	if err != nil {
		return nil, err
	}

	err = tmpl.Run(ctx, templates.RunOptions{
		Name:           req.AppName,
		OutputPath:     out,
		AllowOverwrite: req.AllowOverwrite,
		NoVCS:          req.NoVCS,
	})
	if err != nil {
		return nil, err
	}

	log.Info(log.CatAcquire, "scaffolded", "template", id, "path", out)
	return &Result{Path: out}, nil
}

// target validates the application name and checks for an existing directory
// before anything is downloaded
func (s *Scaffold) target(req Request) (string, error) {
	if req.AppName == "" {
		return "", ErrMissingAppName
	}
	if err := pathsafe.Check(req.AppName); err != nil {
		return "", err
	}
	if !filepath.IsLocal(req.AppName) {
		return "", fmt.Errorf("%w: %s", ErrInvalidTarget, req.AppName)
	}

	out := filepath.Join(req.Dir, req.AppName)
	if _, err := os.Stat(out); err == nil && !req.AllowOverwrite {
		return "", fmt.Errorf("%w: %s", templates.ErrDirectoryExists, out)
	}
	return out, nil
}
