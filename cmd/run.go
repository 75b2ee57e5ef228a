package cmd

import (
	"github.com/spf13/cobra"

	"github.com/egoavara/spin-hub/internal/acquire"
	"github.com/egoavara/spin-hub/internal/i18n"
)

func newRunCmd(app *App) *cobra.Command {
	var (
		terms   []string
		deploy  bool
		extract bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Clone a sample from the Hub and run or deploy it",
		Long: `Clone a sample from the Hub and start it with "spin up", or "spin deploy" with --deploy.
An existing clone is reused. Samples that live in a sub-directory can be
extracted with --extract: the sub-directory is copied next to the clone
(existing files are kept) and the clone is removed.

Requires SPIN_BIN_PATH to point at the spin binary.

Example:
  spin-hub run -t redirect
  spin-hub run -t redirect --deploy --extract`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			f := flow{app: app, intent: acquire.IntentRun, kind: "sample"}

			entry, ok, err := f.resolve(ctx, terms)
			if err != nil || !ok {
				return err
			}
			f.describe(entry)

			prompt := i18n.T("run.confirmUp", nil)
			if deploy {
				prompt = i18n.T("run.confirmDeploy", nil)
			}
			if ok, err := f.confirm(prompt); err != nil || !ok {
				return err
			}

			dir, err := app.workDir()
			if err != nil {
				return err
			}

			_, err = f.acquire(ctx, entry, acquire.Request{Dir: dir, Deploy: deploy, Extract: extract})
			return err
		},
	}

	cmd.Flags().StringArrayVarP(&terms, "term", "t", nil, "search term (repeatable)")
	cmd.Flags().BoolVar(&deploy, "deploy", false, "deploy instead of running locally")
	cmd.Flags().BoolVar(&extract, "extract", false, "copy the sample's sub-directory out of the clone and remove the clone")

	return cmd
}
