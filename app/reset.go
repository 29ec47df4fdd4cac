package app

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/barbersite/barbersite/internal/daemon"
	"github.com/barbersite/barbersite/internal/document"
)

// ErrNothingToReset is returned by reset without --settings or --gallery.
var ErrNothingToReset = errors.New("choose --settings, --gallery or both")

func init() { //nolint: gochecknoinits
	resetCmd.Flags().BoolVar(&resetSettings, "settings", false, "Reset the business settings")
	resetCmd.Flags().BoolVar(&resetGallery, "gallery", false, "Reset the gallery")

	rootCmd.AddCommand(resetCmd)
}

var (
	resetSettings bool
	resetGallery  bool

	resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Delete documents and write their defaults again",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !resetSettings && !resetGallery {
				return ErrNothingToReset
			}

			c, err := loadConfig()
			if err != nil {
				return err
			}

			stores, err := daemon.OpenStores(&c)
			if err != nil {
				return err //nolint:wrapcheck
			}
			defer stores.Close() //nolint:errcheck

			var chosen []*document.Store

			if resetSettings {
				chosen = append(chosen, stores.Settings)
			}

			if resetGallery {
				chosen = append(chosen, stores.Gallery)
			}

			return resetStores(cmd, chosen...)
		},
	}
)

func resetStores(cmd *cobra.Command, stores ...*document.Store) error {
	for _, store := range stores {
		if err := store.Reset(); err != nil {
			return err //nolint:wrapcheck
		}

		log.Info().Str("document", store.Name()).Msg("document reset to defaults")

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s reset to defaults\n", store.Name())
	}

	return nil
}
