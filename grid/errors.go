package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction. Typed errors below unwrap to
// these, so callers can match the failure kind with errors.Is and pull
// the offending values out with errors.As.
var (
	// ErrInvalidDimensions indicates Height ≤ 0 or Width ≤ 0.
	ErrInvalidDimensions = errors.New("grid: height and width must be positive")
	// ErrOutOfBounds indicates a marker position outside the grid rectangle.
	ErrOutOfBounds = errors.New("grid: marker position out of bounds")
)

// InvalidDimensionsError reports the rejected extents of a New call.
type InvalidDimensionsError struct {
	Height int
	Width  int
}

// Error implements the error interface.
func (e *InvalidDimensionsError) Error() string {
	return fmt.Sprintf("grid: invalid dimensions height=%d width=%d (both must be > 0)", e.Height, e.Width)
}

// Unwrap ties the typed error to its sentinel kind.
func (e *InvalidDimensionsError) Unwrap() error { return ErrInvalidDimensions }

// OutOfBoundsError reports the first marker that fell outside the grid,
// together with the extents it was checked against.
type OutOfBoundsError struct {
	Position Position
	Height   int
	Width    int
}

// Error implements the error interface.
func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("grid: position %s out of bounds for %d×%d grid", e.Position, e.Height, e.Width)
}

// Unwrap ties the typed error to its sentinel kind.
func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }
