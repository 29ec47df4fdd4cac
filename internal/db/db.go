// Package db opens the optional SQL database holding the site documents.
package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/barbersite/barbersite/internal/config"
	"github.com/barbersite/barbersite/internal/db/dsn"
	"github.com/barbersite/barbersite/internal/db/models"
	"github.com/barbersite/barbersite/internal/logger/adapter/stdlogger"
)

// ErrNoSQLDriver is returned by Open for the file driver.
var ErrNoSQLDriver = errors.New("data driver is not a SQL driver")

// Dialector returns the gorm dialector of the configured driver.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.Data.Driver {
	case config.DriverSQLite:
		if dir := filepath.Dir(cfg.DB.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("create sqlite directory %s: %w", dir, err)
			}
		}

		return sqlite.Open(dsn.Create(cfg)), nil
	case config.DriverMySQL:
		return gormmysql.Open(dsn.Create(cfg)), nil
	case config.DriverPostgres:
		return postgres.Open(dsn.Create(cfg)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrNoSQLDriver, cfg.Data.Driver)
	}
}

// Open connects to the configured database and migrates the models.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	return OpenDialector(dialector, cfg.DevMode)
}

// OpenDialector opens gorm on dialector with zerolog backed query logging and migrates the models.
// Dev mode logs every statement, otherwise only slow ones and errors.
func OpenDialector(dialector gorm.Dialector, devMode bool) (*gorm.DB, error) {
	level := gormlogger.Warn
	if devMode {
		level = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(stdlogger.New("gorm"), gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond, //nolint:mnd
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err = db.AutoMigrate(&models.Setting{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}
