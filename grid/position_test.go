package grid_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/katalvlaran/lvlgrid/grid"
)

// TestManhattanDistance_Known checks the distance formula on literal pairs,
// negative coordinates included.
func TestManhattanDistance_Known(t *testing.T) {
	cases := []struct {
		name string
		p, q grid.Position
		want int
	}{
		{"Same", grid.Position{Row: 5, Column: 5}, grid.Position{Row: 5, Column: 5}, 0},
		{"Axis", grid.Position{Row: 0, Column: 0}, grid.Position{Row: 0, Column: 4}, 4},
		{"Diagonal", grid.Position{Row: 2, Column: 3}, grid.Position{Row: 5, Column: 7}, 7},
		{"Negative", grid.Position{Row: -2, Column: -3}, grid.Position{Row: 1, Column: 1}, 7},
		{"MixedSigns", grid.Position{Row: -5, Column: 4}, grid.Position{Row: 5, Column: -4}, 18},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.ManhattanDistance(tc.q); got != tc.want {
				t.Errorf("ManhattanDistance(%v,%v) = %d; want %d", tc.p, tc.q, got, tc.want)
			}
		})
	}
}

// TestManhattanDistance_Laws property-checks non-negativity, identity and
// symmetry over arbitrary integer coordinates.
func TestManhattanDistance_Laws(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := grid.Position{
			Row:    rapid.IntRange(-1000, 1000).Draw(t, "p.row"),
			Column: rapid.IntRange(-1000, 1000).Draw(t, "p.col"),
		}
		q := grid.Position{
			Row:    rapid.IntRange(-1000, 1000).Draw(t, "q.row"),
			Column: rapid.IntRange(-1000, 1000).Draw(t, "q.col"),
		}

		d := p.ManhattanDistance(q)
		if d < 0 {
			t.Fatalf("distance %d is negative", d)
		}
		if (d == 0) != (p == q) {
			t.Fatalf("distance %d zero-iff-equal violated for %v, %v", d, p, q)
		}
		if back := q.ManhattanDistance(p); back != d {
			t.Fatalf("asymmetric distance: %d vs %d", d, back)
		}
	})
}

// TestBoundsContains_AgreesWithGrid property-checks that the standalone
// Bounds predicate and Grid.IsValidPosition agree for all inputs.
func TestBoundsContains_AgreesWithGrid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h := rapid.IntRange(1, 50).Draw(t, "height")
		w := rapid.IntRange(1, 50).Draw(t, "width")
		g, err := grid.New(h, w, nil)
		if err != nil {
			t.Fatalf("New(%d,%d) error: %v", h, w, err)
		}

		p := grid.Position{
			Row:    rapid.IntRange(-5, 55).Draw(t, "row"),
			Column: rapid.IntRange(-5, 55).Draw(t, "col"),
		}
		if g.IsValidPosition(p) != g.Bounds().Contains(p) {
			t.Fatalf("predicates disagree on %v for %d×%d", p, h, w)
		}
	})
}

// TestPositionString pins the rendering used in error messages.
func TestPositionString(t *testing.T) {
	p := grid.Position{Row: 3, Column: -1}
	if got := p.String(); got != "(3,-1)" {
		t.Errorf("String() = %q; want %q", got, "(3,-1)")
	}
}
