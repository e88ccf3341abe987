package grid

// Bounds is the half-open rectangle [0,Height)×[0,Width) as a pure
// predicate. It is kept separate from Grid because boundary checking is
// reused independently: the neighborhood enumeration loop clips against a
// Bounds value without ever touching the marker list.
// Bounds carries no state beyond its two extents and has no error modes.
type Bounds struct {
	Height int
	Width  int
}

// Contains reports whether p lies inside the rectangle:
// 0 ≤ Row < Height and 0 ≤ Column < Width.
// Must agree exactly with Grid.IsValidPosition for all inputs; Grid
// delegates here to make that equivalence structural rather than tested-in.
// Complexity: O(1).
func (b Bounds) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < b.Height && p.Column >= 0 && p.Column < b.Width
}

// MaxManhattanDistance returns (Height−1)+(Width−1), the largest Manhattan
// distance between any two in-bounds cells. A neighborhood threshold at or
// above this span reaches every cell from any center.
// Complexity: O(1).
func (b Bounds) MaxManhattanDistance() int {
	return (b.Height - 1) + (b.Width - 1)
}

// Area returns Height×Width, the total cell count of the rectangle.
// Complexity: O(1).
func (b Bounds) Area() int {
	return b.Height * b.Width
}
