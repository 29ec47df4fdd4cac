package daemon

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/barbersite/barbersite/internal/config"
	"github.com/barbersite/barbersite/internal/db"
	"github.com/barbersite/barbersite/internal/document"
	"github.com/barbersite/barbersite/internal/site/gallery"
	"github.com/barbersite/barbersite/internal/site/settings"
)

// Stores are the site documents on the configured backend.
type Stores struct {
	Settings *document.Store
	Gallery  *document.Store

	db *gorm.DB
}

// OpenStores opens the backend selected by cfg.Data.Driver.
// The file driver keeps JSON files in cfg.Data.Dir, every other driver a row per document.
func OpenStores(cfg *config.Config) (*Stores, error) {
	var (
		backend document.Backend
		stores  = &Stores{}
	)

	if cfg.Data.Driver == config.DriverFile {
		backend = document.FileBackend{Dir: cfg.Data.Dir}

		log.Info().Str("dir", cfg.Data.Dir).Msg("using file documents")
	} else {
		conn, err := db.Open(cfg)
		if err != nil {
			return nil, fmt.Errorf("open %s documents: %w", cfg.Data.Driver, err)
		}

		backend = document.DBBackend{DB: conn}
		stores.db = conn

		log.Info().Str("driver", cfg.Data.Driver).Msg("using database documents")
	}

	stores.Settings = settings.NewStore(backend)
	stores.Gallery = gallery.NewStore(backend)

	return stores, nil
}

// All returns every document store.
func (s *Stores) All() []*document.Store {
	return []*document.Store{s.Settings, s.Gallery}
}

// Close releases the database connection, if any.
func (s *Stores) Close() error {
	if s.db == nil {
		return nil
	}

	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("close documents: %w", err)
	}

	return sqlDB.Close() //nolint:wrapcheck
}
