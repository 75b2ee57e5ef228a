// Package spin drives the companion spin binary.
package spin

import (
	"context"
	"fmt"

	"github.com/egoavara/spin-hub/internal/config"
	"github.com/egoavara/spin-hub/internal/log"
	"github.com/egoavara/spin-hub/internal/process"
)

// ManifestFile is the application manifest spin reads
const ManifestFile = "spin.toml"

// Verb selects what spin does with an application
type Verb string

const (
	// VerbUp runs the application locally
	VerbUp Verb = "up"
	// VerbDeploy deploys the application
	VerbDeploy Verb = "deploy"
)

// Bin is a handle on the companion binary
type Bin struct {
	Path   string
	Runner process.Runner
}

// New returns a Bin for path. An empty path is a configuration error.
func New(path string, runner process.Runner) (*Bin, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: SPIN_BIN_PATH is not set", config.ErrMissingConfiguration)
	}
	return &Bin{Path: path, Runner: runner}, nil
}

// App runs verb against the manifest in dir. The exit status is returned
// for the caller to interpret.
func (b *Bin) App(ctx context.Context, verb Verb, dir, manifest string) (process.ExitStatus, error) {
	if manifest == "" {
		manifest = ManifestFile
	}
	return b.run(ctx, dir, string(verb), "--build", "-f", manifest)
}

// InstallPlugin runs `spin plugins install <args...>`
func (b *Bin) InstallPlugin(ctx context.Context, args []string) (process.ExitStatus, error) {
	return b.run(ctx, "", append([]string{"plugins", "install"}, args...)...)
}

func (b *Bin) run(ctx context.Context, dir string, args ...string) (process.ExitStatus, error) {
	cmd := process.Command{Name: b.Path, Args: args, Dir: dir}
	log.Info(log.CatProcess, "spin", "cmd", cmd.String(), "dir", dir)

	status, err := b.Runner.Run(ctx, cmd)
	if err != nil {
		return status, err
	}
	if !status.Success() {
		log.Warn(log.CatProcess, "spin exited unsuccessfully", "status", status.Code)
	}
	return status, nil
}
