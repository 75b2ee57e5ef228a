// Package templates installs template sources and expands templates into new applications.
package templates

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// SourceBranch returns the template branch matching a spin release, e.g.
// "spin/templates/v2.0" for "2.0.1". Pre-release and unparseable versions
// return "", meaning the repository's default branch.
func SourceBranch(version string) string {
	v, err := semver.NewVersion(version)
	if err != nil || v.Prerelease() != "" {
		return ""
	}
	return fmt.Sprintf("spin/templates/v%d.%d", v.Major(), v.Minor())
}
