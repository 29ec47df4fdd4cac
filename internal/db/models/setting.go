// Package models contains the persisted data structures of the site.
package models

import "time"

// Setting is a named JSON document stored in the database.
// It backs the document store when a SQL driver is configured.
type Setting struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"unique;size:100;not null"`
	Value     []byte
	UpdatedAt time.Time
}
