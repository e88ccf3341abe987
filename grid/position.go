package grid

import "fmt"

// Position is a single grid cell coordinate.
// The struct is comparable: two Positions are equal iff both fields match,
// which is exactly the equality map keys and set membership rely on.
// Negative coordinates are representable on purpose — enumeration
// arithmetic visits candidates outside the grid before Bounds discards
// them; only Grid construction enforces non-negativity, contextually.
type Position struct {
	Row    int
	Column int
}

// ManhattanDistance returns |ΔRow| + |ΔColumn| between p and q.
// Always ≥ 0; zero iff p == q; symmetric in its arguments.
// Defined for every integer pair, negatives included.
// Complexity: O(1).
func (p Position) ManhattanDistance(q Position) int {
	return abs(p.Row-q.Row) + abs(p.Column-q.Column)
}

// String renders the position as "(row,column)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Column)
}

// abs avoids a float round-trip through math.Abs for plain ints.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
