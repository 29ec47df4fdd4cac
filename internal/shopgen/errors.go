package shopgen

import "errors"

var (
	// ErrMissingArgument is returned when name, city or state is empty.
	ErrMissingArgument = errors.New("shop name, city and state are required")

	// ErrTargetInsideSource is returned when the target directory is inside the copied tree.
	ErrTargetInsideSource = errors.New("target directory must not be inside the source directory")
)
