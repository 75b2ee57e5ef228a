package acquire

import (
	"context"
	"fmt"

	"github.com/egoavara/spin-hub/internal/hub"
	"github.com/egoavara/spin-hub/internal/log"
)

// InstallPlugin installs a plugin entry with `spin plugins install`
type InstallPlugin struct {
	env Env
}

// InstallArgs returns the plugin install arguments for entry. A manifest URL wins over a name.
func InstallArgs(entry hub.Entry) ([]string, error) {
	if url, ok := entry.PluginURL(); ok {
		return []string{"--url", url}, nil
	}
	if name, ok := entry.PluginName(); ok {
		return []string{name}, nil
	}
	return nil, fmt.Errorf("%w: hub plugin %s has neither a name nor a manifest URL", ErrMissingLocator, entry.Title())
}

// Acquire runs the install and waits for it
func (p *InstallPlugin) Acquire(ctx context.Context, entry hub.Entry, _ Request) (*Result, error) {
	args, err := InstallArgs(entry)
	if err != nil {
		return nil, err
	}

	bin, err := p.env.spin()
	if err != nil {
		return nil, err
	}

	status, err := bin.InstallPlugin(ctx, args)
	res := &Result{Status: status}
	if err != nil {
		return res, processError(err)
	}
	if !status.Success() {
		return res, exitError("spin plugins install", status)
	}

	log.Info(log.CatAcquire, "plugin installed", "args", args)
	return res, nil
}
