package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/egoavara/spin-hub/internal/config"
)

func newConfigCmd(app *App) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `Inspect spin-hub configuration.

Settings are read from ~/.config/spin-hub/config.yaml (or --config),
then from the environment: SPIN_VERSION, SPIN_BIN_PATH and SPIN_HUB_<KEY>
(e.g. SPIN_HUB_HUB_BASE_URL).`,
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(app.cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(app.Out, string(data))
			return nil
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the default config file path",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(app.Out, config.ConfigPath())
		},
	}

	configCmd.AddCommand(showCmd, pathCmd)
	return configCmd
}
