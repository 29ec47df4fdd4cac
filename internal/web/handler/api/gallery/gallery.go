// Package gallery serves the gallery images as JSON.
package gallery

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/barbersite/barbersite/internal/config"
	sitegallery "github.com/barbersite/barbersite/internal/site/gallery"
	"github.com/barbersite/barbersite/internal/web/handler"
)

const (
	// Path is the path of the gallery endpoint.
	Path = handler.APIPath + "/gallery"

	// ErrMsgFetch is returned when the gallery can not be read.
	ErrMsgFetch = "Failed to fetch gallery images"

	// ErrMsgAdd is returned when an image can not be added.
	ErrMsgAdd = "Failed to add image"

	// ErrMsgDelete is returned when an image can not be removed.
	ErrMsgDelete = "Failed to delete image"

	// ErrMsgIDRequired is returned by DELETE without the id query parameter.
	ErrMsgIDRequired = "Image ID is required"

	// ErrMsgURLRequired is returned by POST without an image url.
	ErrMsgURLRequired = "Image URL is required"
)

// DeleteResponse is the body of a successful DELETE.
type DeleteResponse struct {
	Success bool `json:"success"`
}

// Service is the gallery API handler service.
type Service struct {
	cfg     *config.Config
	gallery *sitegallery.Service
}

var _ handler.Service = (*Service)(nil)

// Init registers GET, POST and DELETE on Path. POST and DELETE are behind the admin guard.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) {
	if app == nil || cfg == nil || deps == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.gallery = deps.Gallery

	app.Get(Path, s.List)
	app.Post(Path, deps.AdminGuard(), s.Add)
	app.Delete(Path, deps.AdminGuard(), s.Remove)
}

// List responds with all stored entries verbatim, in insertion order.
func (s *Service) List(c *fiber.Ctx) error {
	images, err := s.gallery.Entries()
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch gallery images")

		return handler.JSONError(c, fiber.StatusInternalServerError, ErrMsgFetch)
	}

	return c.JSON(images)
}

// Add appends the image of the JSON body {"url": ..., "alt": ...} and responds 201 with it.
func (s *Service) Add(c *fiber.Ctx) error {
	var in sitegallery.AddInput

	if err := c.App().Config().JSONDecoder(c.Body(), &in); err != nil {
		log.Error().Err(err).Msg("failed to decode gallery image")

		return handler.JSONError(c, fiber.StatusInternalServerError, ErrMsgAdd)
	}

	image, err := s.gallery.Add(in)

	switch {
	case errors.Is(err, sitegallery.ErrValidation):
		return handler.JSONError(c, fiber.StatusBadRequest, ErrMsgURLRequired)
	case err != nil:
		log.Error().Err(err).Msg("failed to add gallery image")

		return handler.JSONError(c, fiber.StatusInternalServerError, ErrMsgAdd)
	}

	log.Info().Str("id", image.ID).Str("url", image.URL).Msg("gallery image added")

	return c.Status(fiber.StatusCreated).JSON(image)
}

// Remove deletes the image given by the id query parameter.
func (s *Service) Remove(c *fiber.Ctx) error {
	id := c.Query("id")

	err := s.gallery.Remove(id)

	switch {
	case errors.Is(err, sitegallery.ErrValidation):
		return handler.JSONError(c, fiber.StatusBadRequest, ErrMsgIDRequired)
	case err != nil:
		log.Error().Err(err).Str("id", id).Msg("failed to delete gallery image")

		return handler.JSONError(c, fiber.StatusInternalServerError, ErrMsgDelete)
	}

	log.Info().Str("id", id).Msg("gallery image removed")

	return c.JSON(DeleteResponse{Success: true})
}
