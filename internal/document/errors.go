package document

import "errors"

var (
	// ErrRead is returned when a document can not be loaded or decoded.
	ErrRead = errors.New("failed to read document")

	// ErrWrite is returned when a document can not be encoded or saved.
	ErrWrite = errors.New("failed to write document")

	// ErrNotExist is returned by a Backend loading a document it does not hold.
	ErrNotExist = errors.New("document does not exist")

	// ErrInvalidName is returned for empty names or names containing path elements.
	ErrInvalidName = errors.New("invalid document name")

	// ErrUnchanged is returned by an Update mutate func that changed nothing.
	// Update then skips the write and returns nil.
	ErrUnchanged = errors.New("document unchanged")
)
