package grid

// Grid is an immutable description of grid extent plus the marker
// ("positive") positions. All fields are unexported; the only way to
// obtain a Grid is New, so every observable Grid satisfies its invariants:
// Height > 0, Width > 0, and every marker inside [0,Height)×[0,Width).
// Duplicate markers are tolerated — results downstream are sets, so they
// carry no semantic weight.
type Grid struct {
	bounds  Bounds
	markers []Position
}

// New constructs a validated Grid. The marker slice is copied, so later
// mutation of the caller's slice cannot break the validated invariant.
//
// Returns *InvalidDimensionsError (kind ErrInvalidDimensions) if height or
// width is not positive, or *OutOfBoundsError (kind ErrOutOfBounds) naming
// the first out-of-bounds marker in caller order. Construction is atomic:
// on error no Grid is returned.
// Complexity: O(len(markers)) time and memory.
func New(height, width int, markers []Position) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, &InvalidDimensionsError{Height: height, Width: width}
	}
	b := Bounds{Height: height, Width: width}
	for _, m := range markers {
		if !b.Contains(m) {
			return nil, &OutOfBoundsError{Position: m, Height: height, Width: width}
		}
	}
	// Copy to decouple from the caller's slice.
	owned := make([]Position, len(markers))
	copy(owned, markers)

	return &Grid{bounds: b, markers: owned}, nil
}

// Height returns the number of rows. Complexity: O(1).
func (g *Grid) Height() int { return g.bounds.Height }

// Width returns the number of columns. Complexity: O(1).
func (g *Grid) Width() int { return g.bounds.Width }

// Bounds returns the grid's boundary predicate. Bounds is a value type, so
// the caller cannot reach back into the Grid through it. Complexity: O(1).
func (g *Grid) Bounds() Bounds { return g.bounds }

// Markers returns a copy of the marker positions in construction order.
// Complexity: O(len(markers)).
func (g *Grid) Markers() []Position {
	out := make([]Position, len(g.markers))
	copy(out, g.markers)
	return out
}

// MarkerCount returns the number of markers as supplied at construction,
// duplicates included. Complexity: O(1).
func (g *Grid) MarkerCount() int { return len(g.markers) }

// IsValidPosition reports whether p lies inside the grid. Identical in
// effect to g.Bounds().Contains(p) by delegation. Complexity: O(1).
func (g *Grid) IsValidPosition(p Position) bool {
	return g.bounds.Contains(p)
}
