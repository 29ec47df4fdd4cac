package config

import (
	"github.com/barbersite/barbersite/internal/logger"
)

const redactedValue = "********"

// Config overall data structure.
type Config struct {
	DevMode     bool // enable dev mode for development
	Title       string
	Description string
	Shop        Shop
	Data        Data
	DB          DB
	Log         logger.Log
	Webserver   Webserver
	Admin       Admin
	Backup      Backup
}

// Shop identifies the business a site instance was created for.
type Shop struct {
	Name  string
	City  string
	State string
}

// DisplayName formats the shop name with its location, e.g. "Antonio's - Austin, TX".
func (s Shop) DisplayName() string {
	if s.City != "" && s.State != "" {
		return s.Name + " - " + s.City + ", " + s.State
	}

	return s.Name
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic   bool   // enable static file browsing (for development purposes only)
	DisableRecover bool   // disable recover middleware
	Port           int    // listening port for the webserver
	ReadBufferSize int    // fiber read buffer size
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
}

// Admin protects the dashboard and the mutating API endpoints.
// An empty PasswordHash disables the protection.
type Admin struct {
	Username     string
	PasswordHash string // argon2id hash, see "barbersite hash-password"
}

// Enabled reports whether admin credentials are required.
func (a Admin) Enabled() bool {
	return a.PasswordHash != ""
}

// Backup configures scheduled document snapshots.
type Backup struct {
	Enabled  bool
	Schedule string // 5-field cron expression
	Dir      string
	Keep     int // snapshots kept per document
}
