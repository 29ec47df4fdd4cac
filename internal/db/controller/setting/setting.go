// Package setting stores named JSON documents as rows of the settings table.
package setting

import (
	"errors"

	"gorm.io/gorm"

	"github.com/barbersite/barbersite/internal/db/models"
)

const (
	nameQueryPattern = "name = ?"
)

var (
	// ErrSettingNotFound is returned when no row exists for a name.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrSettingNameEmpty is returned when a name is empty.
	ErrSettingNameEmpty = errors.New("setting name cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a setting by its name.
func Get(db *gorm.DB, name string) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if name == "" {
		return nil, ErrSettingNameEmpty
	}

	var setting models.Setting

	result := db.Where(nameQueryPattern, name).First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}

		return nil, result.Error
	}

	return &setting, nil
}

// Exists reports whether a row with the given name is present.
func Exists(db *gorm.DB, name string) (bool, error) {
	if db == nil {
		return false, ErrDBNil
	}

	if name == "" {
		return false, ErrSettingNameEmpty
	}

	var count int64
	if err := db.Model(&models.Setting{}).Where(nameQueryPattern, name).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Set creates or replaces the value stored under name.
func Set(db *gorm.DB, name string, value []byte) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if name == "" {
		return nil, ErrSettingNameEmpty
	}

	var setting models.Setting

	result := db.Where(nameQueryPattern, name).First(&setting)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	// new rows get their name here, existing rows keep ID and name
	setting.Name = name
	setting.Value = value

	if err := db.Save(&setting).Error; err != nil {
		return nil, err
	}

	return &setting, nil
}

// DeleteByName deletes a setting by name.
func DeleteByName(db *gorm.DB, name string) error {
	if db == nil {
		return ErrDBNil
	}

	if name == "" {
		return ErrSettingNameEmpty
	}

	result := db.Where(nameQueryPattern, name).Delete(&models.Setting{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrSettingNotFound
	}

	return nil
}
