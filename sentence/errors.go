package sentence

import (
	"errors"
)

// Sentinel errors for option and locale validation.
var (
	// ErrUnknownOption is returned when an option key falls outside the
	// closed recognized set.
	ErrUnknownOption = errors.New("sentence: unknown option key")

	// ErrOptionValue is returned when a recognized option key carries a
	// value of the wrong type.
	ErrOptionValue = errors.New("sentence: invalid option value")

	// ErrLocaleFormat is returned when a locale document does not follow
	// the "<name>: support: array: {...}" shape.
	ErrLocaleFormat = errors.New("sentence: malformed locale document")
)
