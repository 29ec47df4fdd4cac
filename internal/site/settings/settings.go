// Package settings implements the business settings document of the site:
// contact details, opening hours, theme colors and social links.
package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"

	"github.com/rs/zerolog/log"

	"github.com/barbersite/barbersite/internal/db/models"
	"github.com/barbersite/barbersite/internal/document"
)

// DocumentName is the name of the settings document, data/settings.json with the file backend.
const DocumentName = "settings"

// Document is the settings object as stored, keyed by top-level field.
// Values are kept verbatim so unknown or partially shaped fields survive updates.
type Document map[string]json.RawMessage

// Default returns the settings written on first access.
func Default() models.SiteSettings {
	return models.SiteSettings{
		BusinessName: "Houston Barbers",
		Address:      "123 Main Street, Houston, TX 77002",
		Phone:        "(713) 555-0123",
		Email:        "info@houstonbarbers.com",
		Hours: models.Hours{
			Monday:    "9:00 AM - 7:00 PM",
			Tuesday:   "9:00 AM - 7:00 PM",
			Wednesday: "9:00 AM - 7:00 PM",
			Thursday:  "9:00 AM - 7:00 PM",
			Friday:    "9:00 AM - 7:00 PM",
			Saturday:  "9:00 AM - 6:00 PM",
			Sunday:    "10:00 AM - 4:00 PM",
		},
		Theme: models.Theme{
			Primary:   "#1a1a1a",
			Secondary: "#d4af37",
			Accent:    "#8b7355",
		},
		SocialMedia: models.SocialMedia{
			Facebook:  "https://facebook.com",
			Instagram: "https://instagram.com",
			Twitter:   "https://twitter.com",
		},
	}
}

// NewStore returns the settings document store on backend, seeded with Default.
func NewStore(backend document.Backend) *document.Store {
	return document.New(backend, DocumentName, func() any { return Default() })
}

// Service reads and updates the settings document.
type Service struct {
	store *document.Store
}

// New returns a Service on store.
func New(store *document.Store) *Service {
	return &Service{store: store}
}

// Get returns the stored settings as they are, creating the default document if needed.
func (s *Service) Get() (Document, error) {
	var doc Document
	if err := s.store.Read(&doc); err != nil {
		return nil, err //nolint:wrapcheck
	}

	if doc == nil {
		doc = Document{}
	}

	return doc, nil
}

// Raw returns the stored settings compacted but otherwise verbatim, creating the
// default document if needed. Any valid JSON is returned, even when it is not an object.
func (s *Service) Raw() (json.RawMessage, error) {
	data, err := s.store.Raw()
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	var buf bytes.Buffer
	if err = json.Compact(&buf, data); err != nil {
		return nil, fmt.Errorf("%w %s: %w", document.ErrRead, s.store.Name(), err)
	}

	return buf.Bytes(), nil
}

// Update shallow merges partial into the stored settings and returns the result.
// Every top-level key of partial replaces the stored value as a whole, nested
// objects such as theme are not merged. Keys missing from partial are kept.
func (s *Service) Update(partial Document) (Document, error) {
	var doc Document

	err := s.store.Update(&doc, func() error {
		if doc == nil {
			doc = Document{}
		}

		maps.Copy(doc, partial)

		return nil
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return doc, nil
}

// UpdateFrom encodes v, usually a form struct with json tags, and applies it with Update.
func (s *Service) UpdateFrom(v any) (Document, error) {
	partial, err := ToDocument(v)
	if err != nil {
		return nil, err
	}

	return s.Update(partial)
}

// Load returns the typed view of the stored settings, see Decode.
func (s *Service) Load() (*models.SiteSettings, error) {
	doc, err := s.Get()
	if err != nil {
		return nil, err
	}

	return Decode(doc)
}

// ToDocument converts a JSON object value into a Document.
func ToDocument(v any) (Document, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}

	var doc Document
	if err = json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("settings must be a JSON object: %w", err)
	}

	return doc, nil
}

// Decode builds the typed view of doc on top of Default. Fields missing from doc,
// e.g. theme colors dropped by a partial update, keep their default. Fields of the
// wrong type are skipped with a warning.
func Decode(doc Document) (*models.SiteSettings, error) {
	out := Default()

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}

	err = json.Unmarshal(data, &out)

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		log.Warn().Err(err).Str("field", typeErr.Field).Msg("settings field has an unexpected type, ignored")

		err = nil
	}

	if err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}

	return &out, nil
}
