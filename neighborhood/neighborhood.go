package neighborhood

import (
	"github.com/katalvlaran/lvlgrid/grid"
)

// Count returns the number of distinct cells within threshold of at least
// one marker of g. Cells reached from several markers count once.
//
// Returns *NegativeThresholdError (kind ErrNegativeThreshold) if
// threshold < 0. For every valid input, Count(g,n) == len(Cells(g,n)).
// Complexity: O(markers × threshold²) worst case; O(1) or
// O(markers) on a fast path.
func Count(g *grid.Grid, threshold int) (int, error) {
	if threshold < 0 {
		return 0, &NegativeThresholdError{Threshold: threshold}
	}
	b := g.Bounds()
	switch {
	case g.MarkerCount() == 0:
		return 0, nil
	case threshold == 0:
		// Duplicate markers collapse; only distinct positions count.
		return len(markerSet(g)), nil
	case threshold >= b.MaxManhattanDistance():
		// Every cell is within reach of any marker.
		return b.Area(), nil
	}

	return len(unionCells(g, threshold)), nil
}

// Cells returns the set of distinct cells within threshold of at least one
// marker of g. The returned Set is a fresh value owned by the caller; it is
// never nil for a valid threshold.
//
// Returns *NegativeThresholdError (kind ErrNegativeThreshold) if
// threshold < 0.
// Complexity: O(markers × threshold²) worst case; the oversized-threshold
// fast path materializes the full grid in O(Height×Width).
func Cells(g *grid.Grid, threshold int) (Set, error) {
	if threshold < 0 {
		return nil, &NegativeThresholdError{Threshold: threshold}
	}
	b := g.Bounds()
	switch {
	case g.MarkerCount() == 0:
		return make(Set), nil
	case threshold == 0:
		return markerSet(g), nil
	case threshold >= b.MaxManhattanDistance():
		return fullGrid(b), nil
	}

	return unionCells(g, threshold), nil
}

// Enumerate returns the single-marker neighborhood: every in-bounds cell
// within threshold of center. It is the primitive Cells unions across
// markers, exposed for composition and testing. The center may be any
// Position, in or out of bounds — the grid clip applies uniformly — and
// grid-level invariants are not re-validated here.
//
// Returns *NegativeThresholdError (kind ErrNegativeThreshold) if
// threshold < 0.
// Complexity: O(min(threshold,Height) × min(threshold,Width)).
func Enumerate(g *grid.Grid, center grid.Position, threshold int) (Set, error) {
	if threshold < 0 {
		return nil, &NegativeThresholdError{Threshold: threshold}
	}
	out := make(Set)
	enumerateInto(out, g.Bounds(), center, threshold)

	return out, nil
}

// unionCells inserts every marker's diamond into one shared set. Insertion
// is commutative and idempotent, so marker order is irrelevant.
func unionCells(g *grid.Grid, threshold int) Set {
	out := make(Set)
	b := g.Bounds()
	for _, m := range g.Markers() {
		enumerateInto(out, b, m, threshold)
	}

	return out
}

// enumerateInto adds diamond(center, threshold) ∩ bounds to dst.
//
// Rows run over the clamp of [center.Row−threshold, center.Row+threshold]
// to the grid; per row the column budget is threshold minus the row offset,
// clamped likewise. Each (row,col) pair is generated exactly once and lies
// in-bounds by construction, so clipping is the only exclusion and no
// candidate needs an explicit Contains check.
func enumerateInto(dst Set, b grid.Bounds, center grid.Position, threshold int) {
	rowLo := max(0, center.Row-threshold)
	rowHi := min(b.Height-1, center.Row+threshold)
	for row := rowLo; row <= rowHi; row++ {
		budget := threshold - absInt(row-center.Row)
		colLo := max(0, center.Column-budget)
		colHi := min(b.Width-1, center.Column+budget)
		for col := colLo; col <= colHi; col++ {
			dst.add(grid.Position{Row: row, Column: col})
		}
	}
}

// markerSet returns the distinct marker positions of g as a Set.
func markerSet(g *grid.Grid) Set {
	out := make(Set, g.MarkerCount())
	for _, m := range g.Markers() {
		out.add(m)
	}

	return out
}

// fullGrid materializes every cell of b.
func fullGrid(b grid.Bounds) Set {
	out := make(Set, b.Area())
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			out.add(grid.Position{Row: row, Column: col})
		}
	}

	return out
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
