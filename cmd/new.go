package cmd

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/egoavara/spin-hub/internal/acquire"
	"github.com/egoavara/spin-hub/internal/i18n"
)

func newNewCmd(app *App) *cobra.Command {
	var (
		terms          []string
		allowOverwrite bool
		noVCS          bool
	)

	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Create an application from a template on the Hub",
		Long: `Create an application from a template on the Hub.

The template is chosen by -t terms; if several match, you pick one.
The application is created in ./<name>. Without a name you are asked for one.

Example:
  spin-hub new myblog -t static -t blog`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			f := flow{app: app, intent: acquire.IntentNew, kind: "template"}

			entry, ok, err := f.resolve(ctx, terms)
			if err != nil || !ok {
				return err
			}
			f.describe(entry)

			var name string
			if len(args) > 0 {
				name = args[0]
			} else {
				name, err = app.port().Input(i18n.T("new.namePrompt", nil))
				if err != nil {
					return err
				}
			}
			name = strings.TrimSpace(name)

			dir, err := app.workDir()
			if err != nil {
				return err
			}

			res, err := f.acquire(ctx, entry, acquire.Request{
				Dir:            dir,
				AppName:        name,
				AllowOverwrite: allowOverwrite,
				NoVCS:          noVCS,
			})
			if err != nil {
				return err
			}

			app.printer().Success(i18n.T("new.created", map[string]any{"Name": name, "Path": filepath.Base(res.Path)}))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&terms, "term", "t", nil, "search term (repeatable)")
	cmd.Flags().BoolVar(&allowOverwrite, "allow-overwrite", false, "write into an existing directory")
	cmd.Flags().BoolVar(&noVCS, "no-vcs", false, "do not initialise a git repository")

	return cmd
}
