package document

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/barbersite/barbersite/internal/db/controller/setting"
)

// DBBackend keeps every document as one row of the settings table.
type DBBackend struct {
	DB *gorm.DB
}

// Exists implements Backend.
func (b DBBackend) Exists(name string) (bool, error) {
	return setting.Exists(b.DB, name) //nolint:wrapcheck
}

// Load implements Backend.
func (b DBBackend) Load(name string) ([]byte, error) {
	row, err := setting.Get(b.DB, name)
	if errors.Is(err, setting.ErrSettingNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotExist, name)
	}

	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return row.Value, nil
}

// Save implements Backend.
func (b DBBackend) Save(name string, data []byte) error {
	_, err := setting.Set(b.DB, name, data)

	return err //nolint:wrapcheck
}

// Delete implements Backend.
func (b DBBackend) Delete(name string) error {
	if err := setting.DeleteByName(b.DB, name); err != nil && !errors.Is(err, setting.ErrSettingNotFound) {
		return err //nolint:wrapcheck
	}

	return nil
}
