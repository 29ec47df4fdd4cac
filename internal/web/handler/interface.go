// Package handler holds what the web handlers share: their interface,
// dependencies, layout names and error responses.
package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barbersite/barbersite/internal/config"
	"github.com/barbersite/barbersite/internal/site/gallery"
	"github.com/barbersite/barbersite/internal/site/settings"
)

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, deps *Deps)
}

// Deps are the domain services handed to every handler.
type Deps struct {
	Settings *settings.Service
	Gallery  *gallery.Service

	// Guard protects admin routes. Nil lets every request through.
	Guard fiber.Handler
}

// AdminGuard returns Guard or a pass-through handler.
func (d *Deps) AdminGuard() fiber.Handler {
	if d.Guard != nil {
		return d.Guard
	}

	return func(c *fiber.Ctx) error {
		return c.Next()
	}
}

// ErrorResponse is the body of every failed JSON request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSONError responds with status and {"error": msg}.
func JSONError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ErrorResponse{Error: msg})
}
