package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/egoavara/spin-hub/internal/version"
)

func newVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(app.Out, "spin-hub %s\n", version.Version)
			if version.GitCommit != "" {
				fmt.Fprintf(app.Out, "  commit: %s\n", version.GitCommit)
			}
			if version.BuildDate != "" {
				fmt.Fprintf(app.Out, "  built:  %s\n", version.BuildDate)
			}
		},
	}
}
