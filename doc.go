// Package lvlgrid answers one question fast and exactly: how many cells of
// a bounded 2D grid lie within a Manhattan-distance radius of at least one
// marked cell, counting overlaps once.
//
// 🚀 What is lvlgrid?
//
//	A small, pure-function library built from two pieces:
//		• grid/         — Position & Bounds value types, validated immutable Grid
//		• neighborhood/ — diamond (L1-ball) enumeration, multi-marker set union,
//		                  and the Count / Cells / Enumerate operations
//
// ✨ Why choose lvlgrid?
//
//   - Exact by construction – set semantics make double-counting impossible
//   - Honest edge cases – zero thresholds, oversized thresholds, 1×N strips
//     and 1×1 grids are first-class, tested paths
//   - Pure Go – no cgo, no hidden deps, no state between calls
//   - Safe to share – a Grid is immutable after New; concurrent readers
//     need no locks
//
// Coordinate system: (0,0) is the bottom-left cell, Row grows upward,
// Column grows rightward, and the grid never wraps at any edge.
//
// Quick ASCII example (5×5 grid, one marker M, threshold 2):
//
//	. . # . .
//	. # # # .
//	# # M # #
//	. # # # .
//	. . # . .
//
//	13 cells are within distance 2 of M — the diamond the library counts.
//
// Dive into the per-package docs for algorithms, complexity notes and the
// full error taxonomy.
//
//	go get github.com/katalvlaran/lvlgrid
package lvlgrid
