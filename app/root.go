// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/barbersite/barbersite/internal/config"
	"github.com/barbersite/barbersite/internal/logger"
)

var configPath string // Path to the configuration directory

var rootCmd = &cobra.Command{
	Use:   "barbersite",
	Short: "barbersite serves a barbershop marketing site with an admin dashboard",
	Long: `barbersite serves a server-rendered barbershop marketing site with an admin
dashboard for business info, theme colors and the photo gallery. Content is kept
in JSON documents on disk or in a SQL database.`,
	Args:         cobra.OnlyValidArgs,
	SilenceUsage: true,
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		config.DefaultPath,
		"Path to the configuration directory containing "+config.MainFile,
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the configuration and initialises the global logger.
func loadConfig() (config.Config, error) {
	cfg, err := config.ReadConfig(configPath)
	if err != nil {
		return cfg, err //nolint:wrapcheck
	}

	if err = logger.Init(cfg.Log); err != nil {
		return cfg, err //nolint:wrapcheck
	}

	return cfg, nil
}
