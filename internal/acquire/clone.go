package acquire

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/egoavara/spin-hub/internal/git"
	"github.com/egoavara/spin-hub/internal/hub"
	"github.com/egoavara/spin-hub/internal/log"
	"github.com/egoavara/spin-hub/internal/pathsafe"
)

// Clone checks out a sample repository under the working directory
type Clone struct {
	env Env
}

// Acquire clones the entry's repository into req.Dir/<clone dir>
func (c *Clone) Acquire(ctx context.Context, entry hub.Entry, req Request) (*Result, error) {
	repo, dest, err := cloneTarget(entry, req)
	if err != nil {
		return nil, err
	}

	if err := c.env.Git.CloneDecoupled(ctx, repo, dest); err != nil {
		return nil, processError(err)
	}

	log.Info(log.CatAcquire, "cloned", "repo", repo, "path", dest)
	return &Result{Path: dest}, nil
}

func cloneTarget(entry hub.Entry, req Request) (repo, dest string, err error) {
	repo, ok := entry.RepoURL()
	if !ok {
		return "", "", fmt.Errorf("%w: hub entry %s is not a cloneable sample (no repository URL)", ErrMissingLocator, entry.Title())
	}

	dir, err := git.CloneDir(repo)
	if err != nil {
		return "", "", err
	}
	if err := pathsafe.Check(dir); err != nil {
		return "", "", err
	}
	return repo, filepath.Join(req.Dir, dir), nil
}
