// Package daemon wires the configuration, the document stores, the web service and the backup scheduler.
package daemon

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/barbersite/barbersite/internal/backup"
	"github.com/barbersite/barbersite/internal/config"
	"github.com/barbersite/barbersite/internal/site/gallery"
	"github.com/barbersite/barbersite/internal/site/settings"
	"github.com/barbersite/barbersite/internal/web"
	"github.com/barbersite/barbersite/internal/web/handler"
	"github.com/barbersite/barbersite/internal/web/middleware/admin"
)

// ErrNilConfig is returned by New without a configuration.
var ErrNilConfig = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	stores     *Stores
	webService *web.Service
	backup     *backup.Scheduler
}

// Start runs the backup scheduler and the web service until SIGINT or SIGTERM.
func (d *Daemon) Start() error {
	if err := d.backup.Start(); err != nil {
		return err //nolint:wrapcheck
	}

	go d.webService.WaitShutdown()

	err := d.webService.Start()

	d.backup.Stop()

	if closeErr := d.stores.Close(); closeErr != nil {
		log.Error().Err(closeErr).Msg("failed to close documents")
	}

	return err
}

// WebService returns the web service.
func (d *Daemon) WebService() *web.Service {
	return d.webService
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	stores, err := OpenStores(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Admin.Enabled() {
		log.Info().Str("username", cfg.Admin.Username).Msg("dashboard and api writes require basic auth")
	} else {
		log.Warn().Msg("admin password hash not set: dashboard and api writes are open")
	}

	deps := &handler.Deps{
		Settings: settings.New(stores.Settings),
		Gallery:  gallery.New(stores.Gallery),
		Guard:    admin.New(cfg.Admin),
	}

	return &Daemon{
		stores:     stores,
		webService: web.New(cfg, deps),
		backup:     backup.New(cfg.Backup, stores.All()...),
	}, nil
}
