// Package version holds build information set with -ldflags.
package version

var (
	// Version is the release version
	Version = "dev"
	// GitCommit is the commit the binary was built from
	GitCommit = ""
	// BuildDate is the build timestamp
	BuildDate = ""
)
