package cmd

import (
	"github.com/spf13/cobra"

	"github.com/egoavara/spin-hub/internal/acquire"
	"github.com/egoavara/spin-hub/internal/i18n"
)

func newInstallPluginCmd(app *App) *cobra.Command {
	var terms []string

	cmd := &cobra.Command{
		Use:   "install-plugin",
		Short: "Install a plugin from the Hub",
		Long: `Install a plugin from the Hub with "spin plugins install".
The plugin's manifest URL is used when the Hub publishes one, otherwise its name.

Requires SPIN_BIN_PATH to point at the spin binary.

Example:
  spin-hub install-plugin -t js2wasm`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			f := flow{app: app, intent: acquire.IntentInstall, kind: "plugin"}

			entry, ok, err := f.resolve(ctx, terms)
			if err != nil || !ok {
				return err
			}
			f.describe(entry)

			if _, err := f.acquire(ctx, entry, acquire.Request{}); err != nil {
				return err
			}

			app.printer().Success(i18n.T("plugin.installed", map[string]any{"Title": entry.Title()}))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&terms, "term", "t", nil, "search term (repeatable)")

	return cmd
}
