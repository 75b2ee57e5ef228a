package acquire

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/egoavara/spin-hub/internal/hub"
	"github.com/egoavara/spin-hub/internal/log"
	"github.com/egoavara/spin-hub/internal/pathsafe"
	"github.com/egoavara/spin-hub/internal/spin"
)

// Run clones a sample and runs or deploys it with spin
type Run struct {
	env Env
}

// Acquire materializes the sample and hands it to spin.
//   - An existing clone directory is reused.
//   - A sub_dir is validated and must exist in the clone.
//   - With req.Extract the sub_dir is copied to req.Dir/<base(sub_dir)>,
//     keeping files already there, and the clone is removed.
func (r *Run) Acquire(ctx context.Context, entry hub.Entry, req Request) (*Result, error) {
	repo, clonePath, err := cloneTarget(entry, req)
	if err != nil {
		return nil, err
	}

	subDir, hasSubDir := entry.SubDir()
	var target string
	if hasSubDir {
		if err := pathsafe.Check(subDir); err != nil {
			return nil, err
		}
		if req.Extract {
			if target, err = extractTarget(req.Dir, subDir, clonePath); err != nil {
				return nil, err
			}
		}
	}

	bin, err := r.env.spin()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(clonePath); err == nil {
		log.Info(log.CatAcquire, "clone exists, skipping", "path", clonePath)
	} else if err := r.env.Git.CloneDecoupled(ctx, repo, clonePath); err != nil {
		return nil, processError(err)
	}

	res := &Result{Path: clonePath}
	if hasSubDir {
		if err := r.descend(subDir, clonePath, target, res); err != nil {
			return nil, err
		}
	}

	verb := spin.VerbUp
	if req.Deploy {
		verb = spin.VerbDeploy
	}

	status, err := bin.App(ctx, verb, res.Path, spin.ManifestFile)
	res.Status = status
	if err != nil {
		return res, processError(err)
	}
	if !status.Success() {
		return res, exitError("spin "+string(verb), status)
	}
	return res, nil
}

// descend points res at the sub-directory, extracting it to target when target is set
func (r *Run) descend(subDir, clonePath, target string, res *Result) error {
	content, err := contentDir(clonePath, subDir)
	if err != nil {
		return err
	}
	res.Path = content

	if target == "" {
		return nil
	}

	skipped, err := CopyDirSkipExisting(content, target)
	if err != nil {
		return fmt.Errorf("extracting %s: %w", subDir, err)
	}
	for _, f := range skipped {
		log.Warn(log.CatAcquire, "kept existing file", "path", filepath.Join(target, f))
	}
	res.Path = target
	res.Skipped = skipped

	// The extract succeeded even if files were skipped, so the clone goes either way
	if err := os.RemoveAll(clonePath); err != nil {
		log.Warn(log.CatAcquire, "failed to remove clone", "path", clonePath, "error", err)
		res.Warnings = append(res.Warnings, fmt.Sprintf("could not remove %s: %v", clonePath, err))
	}
	return nil
}

// contentDir returns clonePath/subDir. Links along the way may be followed,
// but where they lead must still lie inside the clone.
func contentDir(clonePath, subDir string) (string, error) {
	content := filepath.Join(clonePath, subDir)

	root, err := filepath.EvalSymlinks(clonePath)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(content)
	if err != nil {
		return "", fmt.Errorf("%w: %s in %s", ErrSubDirNotFound, subDir, clonePath)
	}
	rel, err := filepath.Rel(root, resolved)
	if err != nil || !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%w: %s resolves outside %s", pathsafe.ErrUnsafePath, subDir, clonePath)
	}

	info, err := os.Stat(resolved)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s in %s", ErrSubDirNotFound, subDir, clonePath)
	}
	return content, nil
}

// extractTarget returns req.Dir/<base(subDir)>. A sub-directory without a
// name of its own, or one named like the clone, has nowhere to go.
func extractTarget(dir, subDir, clonePath string) (string, error) {
	base := filepath.Base(filepath.Clean(subDir))
	if base == "." || base == string(filepath.Separator) {
		return "", fmt.Errorf("%w: sub-directory %q has no name to extract to", ErrInvalidTarget, subDir)
	}

	target := filepath.Join(dir, base)
	if filepath.Clean(target) == filepath.Clean(clonePath) {
		return "", fmt.Errorf("%w: %s would replace the clone it is extracted from", ErrInvalidTarget, target)
	}
	return target, nil
}
