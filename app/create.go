package app

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/barbersite/barbersite/internal/shopgen"
)

func init() { //nolint: gochecknoinits
	flags := createShopCmd.Flags()
	flags.StringVar(&shopOpts.Name, "name", "", "Shop name, e.g. \"Antonio's Barbershop\" (required)")
	flags.StringVar(&shopOpts.City, "city", "", "Shop city (required)")
	flags.StringVar(&shopOpts.State, "state", "", "Shop state, e.g. TX (required)")
	flags.StringVar(&shopOpts.Output, "output", "", "Target directory (default <source>/../<city>-barbers)")
	flags.StringVar(&shopOpts.Source, "source", ".", "Site directory to copy")
	flags.BoolVar(&shopOpts.Git, "git", true, "Initialise a git repository with an initial commit")
	flags.StringSliceVar(&shopOpts.Skip, "skip", shopgen.DefaultSkip, "Source relative paths not copied to the new site")

	rootCmd.AddCommand(createShopCmd)
}

var (
	shopOpts shopgen.Options

	createShopCmd = &cobra.Command{
		Use:   "create-shop",
		Short: "Create a new site for another barbershop",
		Example: `  barbersite create-shop --name "Antonio's Barbershop" --city "Austin" --state "TX"
  barbersite create-shop --name "Cuts" --city "Denver" --state "CO" --output ../denver --git=false`,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).With().Timestamp().Logger()

			if err := shopOpts.Validate(); err != nil {
				_ = cmd.Usage()

				return err //nolint:wrapcheck
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			target, err := shopgen.New().Create(shopOpts)
			if err != nil {
				log.Error().Err(err).Msg("error creating shop")

				return err //nolint:wrapcheck
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "\nShop site created in %s\n\nNext steps:\n", target)
			_, _ = fmt.Fprintf(out, "  1. cd %s\n  2. barbersite setup\n  3. barbersite start\n", target)
			_, _ = fmt.Fprintln(out, "\nTo customize further, edit:")
			_, _ = fmt.Fprintln(out, "  - .env.local (shop name and page metadata)")
			_, _ = fmt.Fprintln(out, "  - data/settings.json (business info)")
			_, _ = fmt.Fprintln(out, "  - data/gallery.json (photos)")

			return nil
		},
	}
)
