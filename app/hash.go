package app

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/barbersite/barbersite/internal/web/middleware/admin"
)

// ErrEmptyPassword is returned by hash-password without a password.
var ErrEmptyPassword = errors.New("password must not be empty")

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(hashPasswordCmd)
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Print the argon2id hash of a password for Admin.PasswordHash",
	Long: `Print the argon2id hash of a password for Admin.PasswordHash.
Without an argument the password is read from the first line of stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var password string

		if len(args) == 1 {
			password = args[0]
		} else {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return ErrEmptyPassword
			}

			password = strings.TrimRight(line, "\r\n")
		}

		if password == "" {
			return ErrEmptyPassword
		}

		hash, err := admin.HashPassword(password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)

		return err //nolint:wrapcheck
	},
}
