// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"strings"

	"github.com/barbersite/barbersite/internal/config"
)

// Create builds the Data Source Name for the configured SQL driver.
// The file driver has no DSN and yields an empty string.
func Create(cfg *config.Config) string {
	switch cfg.Data.Driver {
	case config.DriverMySQL:
		return MySQL(cfg.DB)
	case config.DriverPostgres:
		return Postgres(cfg.DB)
	case config.DriverSQLite:
		return cfg.DB.Path
	default:
		return ""
	}
}

// MySQL builds a go-sql-driver DSN, e.g. user:pass@tcp(host:3306)/name?parseTime=True.
func MySQL(db config.DB) string {
	out := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s",
		db.User,
		db.Password,
		db.Host,
		db.Port,
		db.Name,
	)

	if db.Extras != "" {
		out += "?" + db.Extras
	}

	return out
}

// Postgres builds a libpq keyword/value DSN. Extras is appended verbatim,
// e.g. "sslmode=disable TimeZone=UTC".
func Postgres(db config.DB) string {
	parts := []string{
		"host=" + db.Host,
		"user=" + db.User,
		"password=" + db.Password,
		"dbname=" + db.Name,
		fmt.Sprintf("port=%d", db.Port),
	}

	if db.Extras != "" {
		parts = append(parts, db.Extras)
	}

	return strings.Join(parts, " ")
}
