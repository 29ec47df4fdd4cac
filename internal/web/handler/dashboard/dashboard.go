// Package dashboard provides the admin dashboard for business info, gallery and theme colors.
package dashboard

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/barbersite/barbersite/internal/config"
	"github.com/barbersite/barbersite/internal/db/models"
	"github.com/barbersite/barbersite/internal/site/gallery"
	"github.com/barbersite/barbersite/internal/site/settings"
	"github.com/barbersite/barbersite/internal/web/handler"
	"github.com/barbersite/barbersite/internal/web/navigation"
)

const (
	// Path is the path to the dashboard page.
	Path = handler.RootPath + "dashboard"

	// TemplateName is the name of the dashboard template.
	TemplateName = "dashboard/dashboard"

	// TabSettings is the business info tab.
	TabSettings = "settings"

	// TabGallery is the gallery management tab.
	TabGallery = "gallery"

	// TabTheme is the theme colors tab.
	TabTheme = "theme"

	// Flash values of the status query parameter.
	StatusSaved   = "saved"
	StatusInvalid = "invalid"
	StatusFailed  = "failed"
)

// Service is the dashboard handler service.
type Service struct {
	cfg      *config.Config
	settings *settings.Service
	gallery  *gallery.Service
	validate *validator.Validate
}

var _ handler.Service = (*Service)(nil)

// Init registers the dashboard routes behind the admin guard.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) {
	if app == nil || cfg == nil || deps == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.settings = deps.Settings
	s.gallery = deps.Gallery
	s.validate = validator.New(validator.WithRequiredStructEnabled())

	group := app.Group(Path, deps.AdminGuard())
	group.Get("", s.Get)
	group.Post("/settings", s.PostSettings)
	group.Post("/theme", s.PostTheme)
	group.Post("/gallery", s.PostGallery)
	group.Post("/gallery/:id/delete", s.PostGalleryDelete)
}

// ActiveTab returns a known tab, defaulting to TabSettings.
func ActiveTab(tab string) string {
	switch tab {
	case TabSettings, TabGallery, TabTheme:
		return tab
	default:
		return TabSettings
	}
}

func tabURL(tab string) string {
	return Path + "?tab=" + tab
}

// Get renders the dashboard with the tab given by the tab query parameter.
func (s *Service) Get(c *fiber.Ctx) error {
	activeTab := ActiveTab(c.Query("tab"))

	site, err := s.settings.Load()
	if err != nil {
		log.Error().Err(err).Msg("failed to load settings for the dashboard")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to fetch settings")
	}

	var images []models.GalleryImage

	if activeTab == TabGallery {
		if images, err = s.gallery.List(); err != nil {
			log.Error().Err(err).Msg("failed to load gallery for the dashboard")

			return c.Status(fiber.StatusInternalServerError).SendString("Failed to fetch gallery images")
		}
	}

	nav := navigation.NewContext("Dashboard", "dashboard", activeTab).
		AddBreadcrumb("Home", handler.RootPath, false).
		AddBreadcrumb("Dashboard", Path, true).
		AddTab(TabSettings, "Business Info", tabURL(TabSettings)).
		AddTab(TabGallery, "Gallery", tabURL(TabGallery)).
		AddTab(TabTheme, "Theme Colors", tabURL(TabTheme)).
		WithLinks(navigation.Link{Title: "Back to site", URL: handler.RootPath})

	return c.Render(TemplateName, fiber.Map{
		"Page":      handler.NewPage(s.cfg, site, nav),
		"ActiveTab": activeTab,
		"Settings":  site,
		"Weekdays":  models.Weekdays,
		"Gallery":   images,
		"Status":    c.Query("status"),
	}, handler.BaseLayout)
}

// redirect sends the browser back to tab with a status flash.
func redirect(c *fiber.Ctx, tab, status string) error {
	return c.Redirect(tabURL(tab)+"&status="+status, fiber.StatusSeeOther)
}

// bindAndValidate parses the form into v and validates it.
func (s *Service) bindAndValidate(c *fiber.Ctx, v any) bool {
	if err := c.BodyParser(v); err != nil {
		log.Warn().Err(err).Str("path", c.Path()).Msg("failed to parse dashboard form")

		return false
	}

	if err := s.validate.Struct(v); err != nil {
		log.Warn().Err(err).Str("path", c.Path()).Msg("invalid dashboard form")

		return false
	}

	return true
}

// PostSettings saves business info, hours and social links.
func (s *Service) PostSettings(c *fiber.Ctx) error {
	var form SettingsForm
	if !s.bindAndValidate(c, &form) {
		return redirect(c, TabSettings, StatusInvalid)
	}

	if _, err := s.settings.UpdateFrom(form.Partial()); err != nil {
		log.Error().Err(err).Msg("failed to save business info")

		return redirect(c, TabSettings, StatusFailed)
	}

	log.Info().Str("businessName", form.BusinessName).Msg("business info saved from the dashboard")

	return redirect(c, TabSettings, StatusSaved)
}

// PostTheme saves the theme colors. The whole theme object is always sent.
func (s *Service) PostTheme(c *fiber.Ctx) error {
	var form ThemeForm
	if !s.bindAndValidate(c, &form) {
		return redirect(c, TabTheme, StatusInvalid)
	}

	if _, err := s.settings.UpdateFrom(form.Partial()); err != nil {
		log.Error().Err(err).Msg("failed to save theme")

		return redirect(c, TabTheme, StatusFailed)
	}

	log.Info().Str("primary", form.Primary).Msg("theme saved from the dashboard")

	return redirect(c, TabTheme, StatusSaved)
}

// PostGallery adds an image.
func (s *Service) PostGallery(c *fiber.Ctx) error {
	var in gallery.AddInput
	if err := c.BodyParser(&in); err != nil {
		log.Warn().Err(err).Msg("failed to parse gallery form")

		return redirect(c, TabGallery, StatusInvalid)
	}

	image, err := s.gallery.Add(in)
	if err != nil {
		log.Warn().Err(err).Msg("failed to add gallery image from the dashboard")

		return redirect(c, TabGallery, failureStatus(err))
	}

	log.Info().Str("id", image.ID).Msg("gallery image added from the dashboard")

	return redirect(c, TabGallery, StatusSaved)
}

// PostGalleryDelete removes the image given by the id route parameter.
func (s *Service) PostGalleryDelete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := s.gallery.Remove(id); err != nil {
		log.Warn().Err(err).Str("id", id).Msg("failed to remove gallery image from the dashboard")

		return redirect(c, TabGallery, failureStatus(err))
	}

	log.Info().Str("id", id).Msg("gallery image removed from the dashboard")

	return redirect(c, TabGallery, StatusSaved)
}
