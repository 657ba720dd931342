package layout

import "errors"

var (
	// ErrNilGrid is returned when a nil grid is passed.
	ErrNilGrid = errors.New("layout: grid is nil")

	// ErrUnknownKind is returned for an unrecognized layout kind.
	ErrUnknownKind = errors.New("layout: unknown kind")

	// ErrBadDensity indicates a scatter density outside [0, 1].
	ErrBadDensity = errors.New("layout: density must be within [0, 1]")
)
