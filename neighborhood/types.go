// Package neighborhood defines the result set type and the sentinel error
// for the neighborhood engine of github.com/katalvlaran/lvlgrid.
package neighborhood

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlgrid/grid"
)

// ErrNegativeThreshold indicates an operation was invoked with a negative
// distance threshold. NegativeThresholdError unwraps to it.
var ErrNegativeThreshold = errors.New("neighborhood: distance threshold must be non-negative")

// NegativeThresholdError reports the rejected threshold value.
type NegativeThresholdError struct {
	Threshold int
}

// Error implements the error interface.
func (e *NegativeThresholdError) Error() string {
	return fmt.Sprintf("neighborhood: invalid distance threshold %d (must be >= 0)", e.Threshold)
}

// Unwrap ties the typed error to its sentinel kind.
func (e *NegativeThresholdError) Unwrap() error { return ErrNegativeThreshold }

// Set is an unordered collection of unique cell positions. Membership is by
// Position value equality; insertion order carries no meaning. A Set
// returned by this package is owned by the caller.
type Set map[grid.Position]struct{}

// Has reports whether p is in the set. Complexity: O(1) expected.
func (s Set) Has(p grid.Position) bool {
	_, ok := s[p]
	return ok
}

// add inserts p; inserting an existing member is a no-op, which is what
// makes the multi-marker union idempotent.
func (s Set) add(p grid.Position) {
	s[p] = struct{}{}
}
