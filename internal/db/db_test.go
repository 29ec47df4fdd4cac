package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbersite/barbersite/internal/config"
	"github.com/barbersite/barbersite/internal/db/models"
)

func TestOpenSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "site.db")

	cfg := &config.Config{
		Data: config.Data{Driver: config.DriverSQLite},
		DB:   config.DB{Path: path},
	}

	db, err := Open(cfg)
	require.NoError(t, err)

	assert.True(t, db.Migrator().HasTable(&models.Setting{}))
	assert.FileExists(t, path)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

func TestOpenFileDriver(t *testing.T) {
	_, err := Open(&config.Config{Data: config.Data{Driver: config.DriverFile}})
	require.ErrorIs(t, err, ErrNoSQLDriver)
}

func TestDialector(t *testing.T) {
	for _, driver := range []string{config.DriverMySQL, config.DriverPostgres} {
		cfg := &config.Config{
			Data: config.Data{Driver: driver},
			DB:   config.DB{Host: "localhost", Port: 5432, User: "u", Name: "n"},
		}

		d, err := Dialector(cfg)
		require.NoError(t, err, driver)
		assert.Equal(t, driver, d.Name())
	}
}
