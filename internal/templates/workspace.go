package templates

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/egoavara/spin-hub/internal/git"
	"github.com/egoavara/spin-hub/internal/log"
)

// ErrTemplateNotFound is returned when a workspace has no template with the requested id
var ErrTemplateNotFound = errors.New("template not found in the repository")

// Workspace is a temporary directory holding installed template sources.
// It must be released with Close.
type Workspace struct {
	Dir string

	git       git.Client
	installs  int
	templates map[string]*Template
}

// Open creates an empty workspace in a new temporary directory
func Open(g git.Client) (*Workspace, error) {
	dir, err := os.MkdirTemp("", "spin-hub-templates-")
	if err != nil {
		return nil, fmt.Errorf("creating template workspace: %w", err)
	}

	log.Debug(log.CatTemplate, "workspace opened", "dir", dir)
	return &Workspace{
		Dir:       dir,
		git:       g,
		templates: make(map[string]*Template),
	}, nil
}

// Close removes the workspace and everything installed into it
func (w *Workspace) Close() error {
	log.Debug(log.CatTemplate, "workspace closed", "dir", w.Dir)
	return os.RemoveAll(w.Dir)
}

// Install clones the template repository into the workspace and indexes its
// templates. The branch for version is tried first, then the default branch.
func (w *Workspace) Install(ctx context.Context, repo, version string) error {
	w.installs++
	dest := filepath.Join(w.Dir, fmt.Sprintf("source-%d", w.installs))

	if branch := SourceBranch(version); branch != "" {
		err := w.git.CloneQuiet(ctx, repo, dest, branch)
		if err == nil {
			return w.index(dest)
		}
		log.Debug(log.CatTemplate, "versioned branch unavailable, using default", "branch", branch, "error", err)
		if rmErr := os.RemoveAll(dest); rmErr != nil {
			return rmErr
		}
	}

	if err := w.git.CloneQuiet(ctx, repo, dest, ""); err != nil {
		return fmt.Errorf("installing templates from %s: %w", repo, err)
	}
	return w.index(dest)
}

func (w *Workspace) index(source string) error {
	root := filepath.Join(source, "templates")
	dirs, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("repository has no templates directory: %w", err)
	}

	for _, d := range dirs {
		if !d.IsDir() {
			continue
		}
		dir := filepath.Join(root, d.Name())
		m, err := ReadManifest(filepath.Join(dir, ManifestPath))
		if err != nil {
			log.Warn(log.CatTemplate, "skipping template", "dir", d.Name(), "error", err)
			continue
		}
		if m.ID == "" {
			m.ID = d.Name()
		}
		if _, exists := w.templates[m.ID]; exists {
			log.Warn(log.CatTemplate, "duplicate template id", "id", m.ID, "dir", d.Name())
			continue
		}
		w.templates[m.ID] = &Template{Manifest: *m, Dir: dir, git: w.git}
	}

	log.Info(log.CatTemplate, "templates indexed", "source", source, "count", len(w.templates))
	return nil
}

// Get returns the installed template with the given id
func (w *Workspace) Get(id string) (*Template, error) {
	t, ok := w.templates[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
	}
	return t, nil
}

// IDs lists the installed template ids in sorted order
func (w *Workspace) IDs() []string {
	ids := make([]string, 0, len(w.templates))
	for id := range w.templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
