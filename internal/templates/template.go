package templates

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/egoavara/spin-hub/internal/git"
	"github.com/egoavara/spin-hub/internal/log"
	"github.com/egoavara/spin-hub/internal/pathsafe"
)

// ContentDir is the directory inside a template that is copied into new applications
const ContentDir = "content"

// ErrDirectoryExists is returned when the output directory already exists and overwriting is not allowed
var ErrDirectoryExists = errors.New("directory already exists")

// Template is one installed template
type Template struct {
	Manifest Manifest
	Dir      string

	git git.Client
}

// ID returns the template id
func (t *Template) ID() string {
	return t.Manifest.ID
}

// RunOptions controls how a template is expanded
type RunOptions struct {
	Name           string // application name, exposed as project-name
	OutputPath     string // defaults to Name
	AllowOverwrite bool
	NoVCS          bool
}

// Run expands the template into opts.OutputPath. A partially written
// directory is removed if expansion fails.
func (t *Template) Run(ctx context.Context, opts RunOptions) (err error) {
	out := opts.OutputPath
	if out == "" {
		out = opts.Name
	}

	if _, statErr := os.Stat(out); statErr == nil {
		if !opts.AllowOverwrite {
			return fmt.Errorf("%w: %s", ErrDirectoryExists, out)
		}
	} else if !os.IsNotExist(statErr) {
		return statErr
	} else {
		defer func() {
			if err != nil {
				_ = os.RemoveAll(out)
			}
		}()
	}

	values := map[string]string{"project-name": opts.Name}
	for name, p := range t.Manifest.Parameters {
		values[name] = p.Default
	}

	log.Info(log.CatTemplate, "expanding template", "id", t.ID(), "output", out)
	if err := t.expand(out, values); err != nil {
		return fmt.Errorf("expanding template %s: %w", t.ID(), err)
	}

	if !opts.NoVCS && t.git != nil {
		if err := t.git.Init(ctx, out); err != nil {
			return err
		}
	}

	return nil
}

func (t *Template) expand(out string, values map[string]string) error {
	src := filepath.Join(t.Dir, ContentDir)
	if err := os.MkdirAll(out, 0755); err != nil {
		return err
	}

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil || rel == "." {
			return err
		}
		// Links could pull host files into the application
		if d.Type()&fs.ModeSymlink != 0 {
			log.Warn(log.CatTemplate, "skipping symlink", "id", t.ID(), "path", rel)
			return nil
		}

		name, err := renderPath(rel, values)
		if err != nil {
			return err
		}
		target := filepath.Join(out, name)

		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		if !d.Type().IsRegular() {
			log.Warn(log.CatTemplate, "skipping special file", "id", t.ID(), "path", rel)
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if utf8.Valid(data) {
			data = []byte(render(string(data), values))
		}
		return os.WriteFile(target, data, info.Mode().Perm())
	})
}

// renderPath renders a content path and checks that it stays inside the output directory
func renderPath(rel string, values map[string]string) (string, error) {
	name := render(rel, values)
	if err := pathsafe.Check(name); err != nil {
		return "", err
	}
	if !filepath.IsLocal(name) {
		return "", fmt.Errorf("%w: %q", pathsafe.ErrUnsafePath, name)
	}
	return name, nil
}
