package handler

import (
	"time"

	"github.com/barbersite/barbersite/internal/config"
	"github.com/barbersite/barbersite/internal/db/models"
	"github.com/barbersite/barbersite/internal/web/navigation"
)

// Page is the data the base layout needs on every page.
type Page struct {
	Title       string
	Description string
	ShopName    string // shown in the footer
	Theme       models.Theme
	Navigation  *navigation.Context
	Year        int
}

// NewPage builds the layout data from the config and the current settings.
// The footer shows the configured shop with its location, falling back to the business name.
func NewPage(cfg *config.Config, site *models.SiteSettings, nav *navigation.Context) Page {
	shopName := site.BusinessName
	if cfg.Shop.Name != "" {
		shopName = cfg.Shop.DisplayName()
	}

	return Page{
		Title:       cfg.Title,
		Description: cfg.Description,
		ShopName:    shopName,
		Theme:       site.Theme,
		Navigation:  nav,
		Year:        time.Now().Year(),
	}
}
