// Package gallery implements the ordered list of gallery images shown on the site.
package gallery

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/barbersite/barbersite/internal/db/models"
	"github.com/barbersite/barbersite/internal/document"
	"github.com/barbersite/barbersite/internal/ident"
)

const (
	// DocumentName is the name of the gallery document, data/gallery.json with the file backend.
	DocumentName = "gallery"

	// DefaultAlt is used for images added without alt text.
	DefaultAlt = "Gallery image"

	// TimeFormat is the layout of GalleryImage.CreatedAt, ISO 8601 in UTC with milliseconds.
	TimeFormat = "2006-01-02T15:04:05.000Z"
)

// AddInput describes a new image.
type AddInput struct {
	URL string `json:"url" form:"url" validate:"required"`
	Alt string `json:"alt" form:"alt"`
}

// Seed returns the images written on first access, created at now.
func Seed(now time.Time) []models.GalleryImage {
	createdAt := now.UTC().Format(TimeFormat)

	return []models.GalleryImage{
		{
			ID:        "1",
			URL:       "https://images.unsplash.com/photo-1503951914875-452162b0f3f1?q=80&w=2070",
			Alt:       "Classic haircut",
			CreatedAt: createdAt,
		},
		{
			ID:        "2",
			URL:       "https://images.unsplash.com/photo-1621605815971-fbc98d665033?q=80&w=2070",
			Alt:       "Beard trim",
			CreatedAt: createdAt,
		},
		{
			ID:        "3",
			URL:       "https://images.unsplash.com/photo-1605497788044-5a32c7078486?q=80&w=2074",
			Alt:       "Barber shop interior",
			CreatedAt: createdAt,
		},
	}
}

// NewStore returns the gallery document store on backend, seeded with Seed.
func NewStore(backend document.Backend) *document.Store {
	return document.New(backend, DocumentName, func() any { return Seed(time.Now()) })
}

// Service lists, adds and removes gallery images.
type Service struct {
	store    *document.Store
	validate *validator.Validate
	now      func() time.Time
}

// New returns a Service on store.
func New(store *document.Store) *Service {
	return &Service{
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
}

// Entries returns the stored entries verbatim, in insertion order.
func (s *Service) Entries() ([]json.RawMessage, error) {
	var entries []json.RawMessage
	if err := s.store.Read(&entries); err != nil {
		return nil, err //nolint:wrapcheck
	}

	if entries == nil {
		entries = []json.RawMessage{}
	}

	return entries, nil
}

// List returns the typed view of all images in insertion order. Entries that
// are not objects are skipped, fields of the wrong type are left empty.
func (s *Service) List() ([]models.GalleryImage, error) {
	entries, err := s.Entries()
	if err != nil {
		return nil, err
	}

	images := make([]models.GalleryImage, 0, len(entries))

	for i, entry := range entries {
		image, ok := decodeImage(entry)
		if !ok {
			log.Warn().Int("index", i).Msg("gallery entry is not an object, skipped")

			continue
		}

		images = append(images, image)
	}

	return images, nil
}

// decodeImage decodes the known fields of entry, one at a time so a field of
// the wrong type does not hide the others.
func decodeImage(entry json.RawMessage) (models.GalleryImage, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(entry, &fields); err != nil || fields == nil {
		return models.GalleryImage{}, false
	}

	str := func(key string) string {
		var v string
		_ = json.Unmarshal(fields[key], &v)

		return v
	}

	return models.GalleryImage{
		ID:        idOf(fields["id"]),
		URL:       str("url"),
		Alt:       str("alt"),
		CreatedAt: str("createdAt"),
	}, true
}

// idOf returns a string id as is and a numeric id in its literal form.
func idOf(raw json.RawMessage) string {
	var id string
	if err := json.Unmarshal(raw, &id); err == nil {
		return id
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}

	return ""
}

// entryID returns the id of a stored entry, empty when it has none.
func entryID(entry json.RawMessage) string {
	var head struct {
		ID json.RawMessage `json:"id"`
	}

	if err := json.Unmarshal(entry, &head); err != nil {
		return ""
	}

	return idOf(head.ID)
}

// Add appends a new image and returns it.
func (s *Service) Add(in AddInput) (models.GalleryImage, error) {
	in.URL = strings.TrimSpace(in.URL)
	in.Alt = strings.TrimSpace(in.Alt)

	if err := s.validate.Struct(in); err != nil {
		return models.GalleryImage{}, ErrURLRequired
	}

	if in.Alt == "" {
		in.Alt = DefaultAlt
	}

	now := s.now().UTC()
	image := models.GalleryImage{
		ID:        ident.NewAt(now),
		URL:       in.URL,
		Alt:       in.Alt,
		CreatedAt: now.Format(TimeFormat),
	}

	entry, err := json.Marshal(image)
	if err != nil {
		return models.GalleryImage{}, fmt.Errorf("encode gallery image: %w", err)
	}

	var entries []json.RawMessage

	err = s.store.Update(&entries, func() error {
		entries = append(entries, entry)

		return nil
	})
	if err != nil {
		return models.GalleryImage{}, err //nolint:wrapcheck
	}

	return image, nil
}

// Remove deletes every image with the given id. Removing an unknown id is not
// an error and leaves the document untouched. Other entries are kept verbatim.
func (s *Service) Remove(id string) error {
	if id == "" {
		return ErrIDRequired
	}

	var entries []json.RawMessage

	return s.store.Update(&entries, func() error { //nolint:wrapcheck
		n := len(entries)

		entries = slices.DeleteFunc(entries, func(entry json.RawMessage) bool {
			return entryID(entry) == id
		})

		if len(entries) == n {
			return document.ErrUnchanged
		}

		if entries == nil {
			entries = []json.RawMessage{}
		}

		return nil
	})
}
