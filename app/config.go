package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barbersite/barbersite/internal/config"
)

func init() { //nolint: gochecknoinits
	configCmd.Flags().BoolVar(&configJSON, "json", false, "Print JSON instead of TOML")

	rootCmd.AddCommand(configCmd)
}

var (
	configJSON bool

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration with secrets redacted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := config.ReadConfig(configPath)
			if err != nil {
				return err //nolint:wrapcheck
			}

			c = config.Redacted(c)

			var out string
			if configJSON {
				out, err = config.DumpConfigJSON(&c)
			} else {
				out, err = config.DumpConfig(&c)
			}

			if err != nil {
				return err //nolint:wrapcheck
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

			return err //nolint:wrapcheck
		},
	}
)
