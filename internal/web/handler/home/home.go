// Package home renders the public landing page of the barbershop.
package home

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
	// Path is the path of the landing page.
	Path = handler.RootPath

	// ContactPath receives the contact form.
	ContactPath = handler.RootPath + "contact"

	// TemplateName is the name of the landing page template.
	TemplateName = "home/index"

	// ContactSent and ContactInvalid are the values of the contact query parameter after a submission.
	ContactSent    = "sent"
	ContactInvalid = "invalid"
)

// Offer is one entry of the services section.
type Offer struct {
	Title       string
	Description string
	Price       string
}

// Offers are the services shown on the landing page.
var Offers = []Offer{ //nolint:gochecknoglobals
	{Title: "Haircuts", Description: "Classic and modern cuts tailored to your style", Price: "$35"},
	{Title: "Beard Trim & Shave", Description: "Hot towel shave and precision beard grooming", Price: "$25"},
	{Title: "Hair & Beard Combo", Description: "Complete grooming package for the perfect look", Price: "$55"},
	{Title: "Kids Haircut", Description: "Gentle and fun haircuts for children", Price: "$25"},
}

// ContactForm is the contact section form. Nothing is sent, submissions are only logged.
type ContactForm struct {
	Name    string `form:"name" validate:"required,max=100"`
	Email   string `form:"email" validate:"required,email"`
	Phone   string `form:"phone" validate:"omitempty,max=40"`
	Message string `form:"message" validate:"required,max=2000"`
}

// Service is the landing page handler service.
type Service struct {
	cfg      *config.Config
	settings *settings.Service
	gallery  *gallery.Service
	validate *validator.Validate
}

var _ handler.Service = (*Service)(nil)

// Init registers the landing page and the contact form.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) {
	if app == nil || cfg == nil || deps == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.settings = deps.Settings
	s.gallery = deps.Gallery
	s.validate = validator.New(validator.WithRequiredStructEnabled())

	app.Get(Path, s.Get)
	app.Post(ContactPath, s.PostContact)
}

// Get renders the landing page. Sections whose data can not be read fall back
// to the defaults so the site stays up.
func (s *Service) Get(c *fiber.Ctx) error {
	site, err := s.settings.Load()
	if err != nil {
		log.Error().Err(err).Msg("failed to load settings for the landing page")

		def := settings.Default()
		site = &def
	}

	images, err := s.gallery.List()
	if err != nil {
		log.Error().Err(err).Msg("failed to load gallery for the landing page")

		images = []models.GalleryImage{}
	}

	nav := navigation.NewContext(site.BusinessName, "site", "home").
		WithLinks(navigation.SiteLinks...)

	return c.Render(TemplateName, fiber.Map{
		"Page":     handler.NewPage(s.cfg, site, nav),
		"Settings": site,
		"Shop":     s.cfg.Shop,
		"Offers":   Offers,
		"Gallery":  images,
		"Contact":  c.Query("contact"),
	}, handler.BaseLayout)
}

// PostContact validates the contact form and redirects back to the contact section.
func (s *Service) PostContact(c *fiber.Ctx) error {
	var form ContactForm

	status := ContactSent

	if err := c.BodyParser(&form); err != nil {
		log.Warn().Err(err).Msg("failed to parse contact form")

		status = ContactInvalid
	} else if err = s.validate.Struct(form); err != nil {
		log.Warn().Err(err).Msg("invalid contact form")

		status = ContactInvalid
	}

	if status == ContactSent {
		log.Info().
			Str("name", form.Name).
			Str("email", form.Email).
			Str("phone", form.Phone).
			Int("message_length", len(form.Message)).
			Msg("contact request received")
	}

	return c.Redirect(Path+"?contact="+status+"#contact", fiber.StatusSeeOther)
}
