package app

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/barbersite/barbersite/internal/daemon"
	"github.com/barbersite/barbersite/internal/document"
	"github.com/barbersite/barbersite/internal/site/settings"
)

// ErrSettingsChanged is returned by setup when the settings were written while prompting.
var ErrSettingsChanged = errors.New("settings changed while the wizard was running, run setup again")

// defaultBusinessName is offered when the settings have no business name.
const defaultBusinessName = "Barbershop"

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(setupCmd)
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactively set the business info",
	Long: `Interactively set the business name, contact details and social links.
Press enter to keep the current value. Social links are cleared when left blank.
Hours and theme colors are kept, edit them in the dashboard.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := loadConfig()
		if err != nil {
			return err
		}

		stores, err := daemon.OpenStores(&c)
		if err != nil {
			return err //nolint:wrapcheck
		}
		defer stores.Close() //nolint:errcheck

		return runSetup(cmd.InOrStdin(), cmd.OutOrStdout(), stores.Settings)
	},
}

// setupAnswers are the keys written by the wizard.
type setupAnswers struct {
	BusinessName string `json:"businessName"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	SocialMedia  struct {
		Facebook  string `json:"facebook"`
		Instagram string `json:"instagram"`
		Twitter   string `json:"twitter"`
	} `json:"socialMedia"`
}

type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// ask prints the question and returns the trimmed answer or def when blank.
func (p prompter) ask(question, def string) string {
	if def != "" {
		_, _ = fmt.Fprintf(p.out, "%s [%s]: ", question, def)
	} else {
		_, _ = fmt.Fprintf(p.out, "%s: ", question)
	}

	if !p.in.Scan() {
		return def
	}

	if answer := strings.TrimSpace(p.in.Text()); answer != "" {
		return answer
	}

	return def
}

// runSetup prompts for the business info and writes it only if the settings
// did not change in between.
func runSetup(in io.Reader, out io.Writer, store *document.Store) error {
	raw, err := store.Raw()
	if err != nil {
		return err //nolint:wrapcheck
	}

	var doc settings.Document
	if err = json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w %s: %w", document.ErrRead, store.Name(), err)
	}

	current, err := settings.Decode(doc)
	if err != nil {
		return err //nolint:wrapcheck
	}

	_, _ = fmt.Fprintln(out, "\nBarbershop Configuration Wizard")
	_, _ = fmt.Fprintln(out, "This will help you set up or update your shop's configuration.")
	_, _ = fmt.Fprintln(out)

	p := prompter{in: bufio.NewScanner(in), out: out}

	businessName := current.BusinessName
	if businessName == "" {
		businessName = defaultBusinessName
	}

	var answers setupAnswers
	answers.BusinessName = p.ask("Business Name", businessName)
	answers.Address = p.ask("Address", current.Address)
	answers.Phone = p.ask("Phone", current.Phone)
	answers.Email = p.ask("Email", current.Email)
	answers.SocialMedia.Facebook = p.ask("Facebook URL (optional)", "")
	answers.SocialMedia.Instagram = p.ask("Instagram URL (optional)", "")
	answers.SocialMedia.Twitter = p.ask("Twitter URL (optional)", "")

	partial, err := settings.ToDocument(answers)
	if err != nil {
		return err //nolint:wrapcheck
	}

	merged := maps.Clone(doc)
	if merged == nil {
		merged = settings.Document{}
	}

	maps.Copy(merged, partial)

	swapped, err := store.CompareAndSwap(raw, merged)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !swapped {
		return ErrSettingsChanged
	}

	log.Info().Str("businessName", answers.BusinessName).Msg("settings updated by setup")

	_, _ = fmt.Fprintln(out, "\nConfiguration saved. Start the site with: barbersite start")

	return nil
}
