package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a grid of non-positive size was requested.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonSquare indicates ASCII rows of differing length, or a row count
	// that differs from the row length.
	ErrNonSquare = errors.New("gridgraph: grid must be square")
	// ErrBadGlyph indicates an ASCII grid contains an unknown character.
	ErrBadGlyph = errors.New("gridgraph: unknown cell glyph")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: position out of bounds")
)
