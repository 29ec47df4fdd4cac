package gallery

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks caller input that fails a precondition.
	ErrValidation = errors.New("validation failed")

	// ErrURLRequired is returned by Add without an image url.
	ErrURLRequired = fmt.Errorf("%w: image url is required", ErrValidation)

	// ErrIDRequired is returned by Remove without an image id.
	ErrIDRequired = fmt.Errorf("%w: image id is required", ErrValidation)
)
