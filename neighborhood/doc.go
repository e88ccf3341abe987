// Package neighborhood counts and enumerates the grid cells lying within a
// Manhattan-distance threshold of any marker cell, counting cells covered
// by several markers exactly once.
//
// What:
//
//   - Enumerate: the single-marker primitive — the diamond (L1 ball) of
//     radius N around a center, clipped to the grid.
//   - Cells: the union of every marker's diamond as one shared set.
//   - Count: the cardinality of that union, with O(1) fast paths where the
//     answer is known without enumeration.
//
// Why:
//
//   - Coverage questions: how many cells does a sensor/tower layout reach?
//   - Influence maps: which cells belong to at least one unit's range?
//   - Exactness: set semantics make overlapping ranges impossible to
//     double-count.
//
// Algorithm:
//
//	For one center c and threshold N, rows are clamped to
//	[max(0,c.Row−N), min(Height−1,c.Row+N)]; within a row at offset Δ the
//	remaining column budget is r = N−|Δ| and columns are clamped to
//	[max(0,c.Column−r), min(Width−1,c.Column+r)]. Every candidate is
//	generated once and is in-bounds by construction, so no per-cell
//	boundary re-check is spent on cells that cannot qualify.
//
// Fast paths (part of the contract — results identical to enumeration):
//
//   - no markers            → empty set, count 0, whatever the threshold
//   - threshold 0           → exactly the distinct marker positions
//   - threshold ≥ L1 span   → the entire grid, count Height×Width
//
// Complexity:
//
//   - Enumerate: O(min(N,Height)×min(N,Width)) cells touched, ≤ O(N²).
//   - Cells/Count: O(markers × N²) worst case, O(1) on a fast path.
//
// Errors:
//
//   - ErrNegativeThreshold: any operation invoked with threshold < 0.
//     Carried by NegativeThresholdError, which retains the rejected value.
//
// Every operation is a pure function: no retained state, same inputs give
// the same set, and concurrent calls over one immutable Grid are safe.
package neighborhood
