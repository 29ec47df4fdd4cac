// Package settings serves the business settings document as JSON.
package settings

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/barbersite/barbersite/internal/config"
	sitesettings "github.com/barbersite/barbersite/internal/site/settings"
	"github.com/barbersite/barbersite/internal/web/handler"
)

const (
	// Path is the path of the settings endpoint.
	Path = handler.APIPath + "/settings"

	// ErrMsgFetch is returned when the settings can not be read.
	ErrMsgFetch = "Failed to fetch settings"

	// ErrMsgUpdate is returned on malformed bodies and failed writes.
	ErrMsgUpdate = "Failed to update settings"
)

// Service is the settings API handler service.
type Service struct {
	cfg      *config.Config
	settings *sitesettings.Service
}

var _ handler.Service = (*Service)(nil)

// Init registers GET and PUT on Path. PUT is behind the admin guard.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) {
	if app == nil || cfg == nil || deps == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.settings = deps.Settings

	app.Get(Path, s.Get)
	app.Put(Path, deps.AdminGuard(), s.Put)
}

// Get responds with the stored settings as they are.
func (s *Service) Get(c *fiber.Ctx) error {
	raw, err := s.settings.Raw()
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch settings")

		return handler.JSONError(c, fiber.StatusInternalServerError, ErrMsgFetch)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	return c.Send(raw)
}

// Put shallow merges the JSON object of the request body into the settings
// and responds with the merged document.
func (s *Service) Put(c *fiber.Ctx) error {
	var partial sitesettings.Document

	if err := c.App().Config().JSONDecoder(c.Body(), &partial); err != nil {
		log.Error().Err(err).Msg("failed to decode settings update")

		return handler.JSONError(c, fiber.StatusInternalServerError, ErrMsgUpdate)
	}

	doc, err := s.settings.Update(partial)
	if err != nil {
		log.Error().Err(err).Msg("failed to update settings")

		return handler.JSONError(c, fiber.StatusInternalServerError, ErrMsgUpdate)
	}

	log.Info().Int("keys", len(partial)).Msg("settings updated")

	return c.JSON(doc)
}
