package acquire

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/egoavara/spin-hub/internal/log"
)

// CopyDirSkipExisting copies the contents of src into dst. Files already present
// in dst are left untouched and returned, relative to dst. Symlinks below src
// are not followed or copied.
func CopyDirSkipExisting(src, dst string) (skipped []string, err error) {
	err = copyDir(src, dst, dst, &skipped)
	return skipped, err
}

func copyDir(src, dst, root string, skipped *[]string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dst, srcInfo.Mode().Perm()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		switch {
		case entry.Type()&fs.ModeSymlink != 0:
			log.Warn(log.CatAcquire, "skipping symlink", "path", srcPath)
			continue
		case entry.IsDir():
			if err := copyDir(srcPath, dstPath, root, skipped); err != nil {
				return err
			}
			continue
		case !entry.Type().IsRegular():
			log.Warn(log.CatAcquire, "skipping special file", "path", srcPath)
			continue
		}

		copied, err := copyFileIfAbsent(srcPath, dstPath)
		if err != nil {
			return err
		}
		if !copied {
			rel, _ := filepath.Rel(root, dstPath)
			*skipped = append(*skipped, rel)
		}
	}

	return nil
}

// copyFileIfAbsent copies src to dst unless dst exists
func copyFileIfAbsent(src, dst string) (bool, error) {
	srcFile, err := os.Open(src)
	if err != nil {
		return false, err
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return false, err
	}

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, srcInfo.Mode().Perm())
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, err
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)
	return true, err
}
