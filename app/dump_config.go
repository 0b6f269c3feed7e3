package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maryjean/suggestion-box/internal/config"
)

func init() { //nolint: gochecknoinits
	dumpConfigCmd.Flags().StringVar(&configPath, "config", "", "Path to the configuration directory")
	dumpConfigCmd.Flags().BoolVar(&dumpJSON, "json", false, "Dump config as JSON instead of TOML")

	rootCmd.AddCommand(dumpConfigCmd)
}

var (
	dumpJSON bool

	dumpConfigCmd = &cobra.Command{
		Use:   "dump-config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.ReadConfig(configPath)
			if err != nil {
				return err
			}

			var out string

			if dumpJSON {
				out, err = config.DumpConfigJSON(cfg)
			} else {
				out, err = config.DumpConfig(cfg)
			}

			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), out)

			return nil
		},
	}
)
