package cmd

import (
	"github.com/spf13/cobra"

	"github.com/egoavara/spin-hub/internal/hub"
	"github.com/egoavara/spin-hub/internal/i18n"
	"github.com/egoavara/spin-hub/internal/search"
	"github.com/egoavara/spin-hub/internal/ui"
)

func newSearchCmd(app *App) *cobra.Command {
	var language, category, format string

	cmd := &cobra.Command{
		Use:   "search [terms...]",
		Short: "Search for content on the Hub",
		Long: `Search the Hub for entries whose tags or title words contain every term.
With no terms, every entry is listed.

Example:
  spin-hub search static
  spin-hub search http --lang go --cat template
  spin-hub search --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}

			entries, err := app.catalog(cmd.Context())
			if err != nil {
				return err
			}

			q := search.Query{Terms: args, Language: language}
			if category != "" {
				c := hub.ParseCategory(category)
				q.Category = &c
			}

			matches := search.Filter(entries, q)
			if len(matches) == 0 && f == ui.FormatTable {
				app.printer().Println(i18n.T("search.noMatches", nil))
				return nil
			}
			return ui.WriteEntries(app.Out, matches, f, app.cfg.Hub.BaseURL)
		},
	}

	cmd.Flags().StringVar(&language, "language", "", "only entries in this language (go, js, py, rust...)")
	cmd.Flags().StringVar(&category, "category", "", "only entries in this category (template, sample, plugin, library)")
	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json or yaml")
	cmd.Flags().StringVar(&language, "lang", "", "alias for --language")
	cmd.Flags().StringVar(&category, "cat", "", "alias for --category")
	_ = cmd.Flags().MarkHidden("lang")
	_ = cmd.Flags().MarkHidden("cat")

	return cmd
}
