package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/egoavara/spin-hub/internal/acquire"
	"github.com/egoavara/spin-hub/internal/hub"
	"github.com/egoavara/spin-hub/internal/i18n"
	"github.com/egoavara/spin-hub/internal/selection"
	"github.com/egoavara/spin-hub/internal/ui"
)

// flow is the resolve, describe, acquire sequence shared by the acquiring commands
type flow struct {
	app    *App
	intent acquire.Intent
	kind   string // message key segment: template, sample, plugin
}

// resolve fetches the catalog and narrows it to one entry. ok is false when
// nothing matched or the user cancelled; both are reported and are not errors.
func (f flow) resolve(ctx context.Context, terms []string) (hub.Entry, bool, error) {
	entries, err := f.app.catalog(ctx)
	if err != nil {
		return hub.Entry{}, false, err
	}

	prompt := i18n.T(f.kind+".select", nil)
	res, err := selection.Resolve(entries, terms, f.intent.Category(), f.app.port(), prompt)
	if err != nil {
		return hub.Entry{}, false, err
	}

	switch res.Outcome {
	case selection.NoMatches:
		f.app.printer().Println(i18n.T(f.kind+".noMatches", nil))
		return hub.Entry{}, false, nil
	case selection.Cancelled:
		f.app.printer().Muted(i18n.T("selection.cancelled", nil))
		return hub.Entry{}, false, nil
	}
	return res.Entry, true, nil
}

// describe prints the entry summary
func (f flow) describe(entry hub.Entry) {
	md := ui.SummaryMarkdown(i18n.T(f.kind+".label", nil), entry)
	fmt.Fprint(f.app.Out, ui.RenderMarkdown(md, f.app.rawOutput()))
}

// confirm asks prompt, honouring --yes
func (f flow) confirm(prompt string) (bool, error) {
	ok, err := f.app.port().Confirm(prompt, true)
	if err != nil {
		return false, err
	}
	if !ok {
		f.app.printer().Muted(i18n.T("selection.cancelled", nil))
	}
	return ok, nil
}

// acquire runs the strategy registered for the entry and reports warnings
func (f flow) acquire(ctx context.Context, entry hub.Entry, req acquire.Request) (*acquire.Result, error) {
	strategy, err := f.app.registry().For(entry.Category(), f.intent)
	if err != nil {
		return nil, err
	}

	res, err := strategy.Acquire(ctx, entry, req)
	if res != nil {
		p := f.app.printer()
		for _, s := range res.Skipped {
			p.Warning(i18n.T("run.skippedExisting", map[string]any{"Path": s}))
		}
		for _, w := range res.Warnings {
			p.Warning(w)
		}
	}
	if errors.Is(err, acquire.ErrMissingLocator) && f.intent != acquire.IntentInstall {
		return nil, fmt.Errorf("%w. %s", err,
			i18n.T("entry.openInBrowser", map[string]any{"URL": entry.URL(f.app.cfg.Hub.BaseURL)}))
	}
	return res, err
}
