package document

import (
	"strings"
)

// Backend stores raw document bytes by name.
type Backend interface {
	Exists(name string) (bool, error)
	// Load returns ErrNotExist if there is no document called name.
	Load(name string) ([]byte, error)
	// Save replaces the document atomically.
	Save(name string, data []byte) error
	// Delete removes the document. Deleting a missing document is not an error.
	Delete(name string) error
}

func validName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}
