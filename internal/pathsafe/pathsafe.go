// Package pathsafe validates paths that come from catalog data before they
// are used in any copy, delete or working-directory change.
package pathsafe

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsafePath is returned when a path could escape the working directory
// or be interpreted by a shell.
var ErrUnsafePath = errors.New("unsafe path")

// deniedSequences are rejected wherever they appear in a path.
var deniedSequences = []string{"..", ";", "$"}

// IsSafe reports whether p is free of parent traversal, command separators
// and shell expansion sigils.
func IsSafe(p string) bool {
	for _, seq := range deniedSequences {
		if strings.Contains(p, seq) {
			return false
		}
	}
	return true
}

// Check returns ErrUnsafePath when p is not safe.
func Check(p string) error {
	if !IsSafe(p) {
		return fmt.Errorf("%w: %q", ErrUnsafePath, p)
	}
	return nil
}
