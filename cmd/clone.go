package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/egoavara/spin-hub/internal/acquire"
	"github.com/egoavara/spin-hub/internal/i18n"
)

func newCloneCmd(app *App) *cobra.Command {
	var terms []string

	cmd := &cobra.Command{
		Use:   "clone",
		Short: "Clone a sample from the Hub",
		Long: `Clone a sample repository from the Hub into the current directory.
The remote is named "upstream" so that "origin" stays free for your own fork.

Example:
  spin-hub clone -t redirect`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			f := flow{app: app, intent: acquire.IntentClone, kind: "sample"}

			entry, ok, err := f.resolve(ctx, terms)
			if err != nil || !ok {
				return err
			}
			f.describe(entry)

			if ok, err := f.confirm(i18n.T("clone.confirm", nil)); err != nil || !ok {
				return err
			}

			dir, err := app.workDir()
			if err != nil {
				return err
			}

			res, err := f.acquire(ctx, entry, acquire.Request{Dir: dir})
			if err != nil {
				return err
			}

			app.printer().Success(i18n.T("clone.done", map[string]any{"Dir": filepath.Base(res.Path)}))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&terms, "term", "t", nil, "search term (repeatable)")

	return cmd
}
