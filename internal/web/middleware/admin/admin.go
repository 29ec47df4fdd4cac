// Package admin provides the optional basic auth guard of the dashboard and the mutating API.
package admin

import (
	"github.com/alexedwards/argon2id"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/rs/zerolog/log"

	"github.com/barbersite/barbersite/internal/config"
)

// Realm is announced in the WWW-Authenticate header.
const Realm = "Barbershop Dashboard"

// New returns a basic auth handler checking cfg.Username and the argon2id cfg.PasswordHash.
// Without a password hash it lets every request through.
func New(cfg config.Admin) fiber.Handler {
	if !cfg.Enabled() {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	return basicauth.New(basicauth.Config{
		Realm: Realm,
		Authorizer: func(username, password string) bool {
			if username != cfg.Username {
				log.Warn().Str("username", username).Msg("admin login with unknown username")

				return false
			}

			match, err := argon2id.ComparePasswordAndHash(password, cfg.PasswordHash)
			if err != nil {
				log.Error().Err(err).Msg("admin password hash can not be verified")

				return false
			}

			if !match {
				log.Warn().Str("username", username).Msg("admin login with wrong password")
			}

			return match
		},
	})
}

// HashPassword returns the argon2id hash to put into Admin.PasswordHash.
func HashPassword(password string) (string, error) {
	return argon2id.CreateHash(password, argon2id.DefaultParams) //nolint:wrapcheck
}
