package dashboard

import (
	"errors"

	"github.com/barbersite/barbersite/internal/db/models"
	"github.com/barbersite/barbersite/internal/site/gallery"
)

// SettingsForm is the business info tab.
type SettingsForm struct {
	BusinessName string `form:"businessName" validate:"required,max=200"`
	Address      string `form:"address" validate:"max=300"`
	Phone        string `form:"phone" validate:"max=40"`
	Email        string `form:"email" validate:"omitempty,email"`

	Monday    string `form:"monday" validate:"max=60"`
	Tuesday   string `form:"tuesday" validate:"max=60"`
	Wednesday string `form:"wednesday" validate:"max=60"`
	Thursday  string `form:"thursday" validate:"max=60"`
	Friday    string `form:"friday" validate:"max=60"`
	Saturday  string `form:"saturday" validate:"max=60"`
	Sunday    string `form:"sunday" validate:"max=60"`

	Facebook  string `form:"facebook" validate:"omitempty,url"`
	Instagram string `form:"instagram" validate:"omitempty,url"`
	Twitter   string `form:"twitter" validate:"omitempty,url"`
}

// settingsPartial holds the top-level keys the business info tab owns.
type settingsPartial struct {
	BusinessName string             `json:"businessName"`
	Address      string             `json:"address"`
	Phone        string             `json:"phone"`
	Email        string             `json:"email"`
	Hours        models.Hours       `json:"hours"`
	SocialMedia  models.SocialMedia `json:"socialMedia"`
}

// Partial returns the settings update of the form. Hours and social links are
// complete objects, so the shallow merge never drops a day or a link.
func (f SettingsForm) Partial() any {
	return settingsPartial{
		BusinessName: f.BusinessName,
		Address:      f.Address,
		Phone:        f.Phone,
		Email:        f.Email,
		Hours: models.Hours{
			Monday:    f.Monday,
			Tuesday:   f.Tuesday,
			Wednesday: f.Wednesday,
			Thursday:  f.Thursday,
			Friday:    f.Friday,
			Saturday:  f.Saturday,
			Sunday:    f.Sunday,
		},
		SocialMedia: models.SocialMedia{
			Facebook:  f.Facebook,
			Instagram: f.Instagram,
			Twitter:   f.Twitter,
		},
	}
}

// ThemeForm is the theme colors tab.
type ThemeForm struct {
	Primary   string `form:"primary" validate:"required,hexcolor"`
	Secondary string `form:"secondary" validate:"required,hexcolor"`
	Accent    string `form:"accent" validate:"required,hexcolor"`
}

// Partial returns the settings update of the form, always the complete theme.
func (f ThemeForm) Partial() any {
	return struct {
		Theme models.Theme `json:"theme"`
	}{
		Theme: models.Theme{Primary: f.Primary, Secondary: f.Secondary, Accent: f.Accent},
	}
}

func failureStatus(err error) string {
	if errors.Is(err, gallery.ErrValidation) {
		return StatusInvalid
	}

	return StatusFailed
}
