// Package grid defines the value types and the validated container that the
// neighborhood engine operates on.
//
// What:
//
//   - Position: an immutable (Row, Column) cell coordinate with Manhattan
//     distance. Comparable, so it works directly as a map key.
//   - Bounds: a pure half-open rectangle predicate [0,Height)×[0,Width),
//     reusable by any position-filtering code without a full Grid.
//   - Grid: Height × Width extent plus the marker ("positive") positions,
//     validated once at construction and immutable afterwards.
//
// Why:
//
//   - Sparse by design: only the extent and the marker list are stored —
//     never a dense Height×Width array the algorithm has no use for.
//   - Validation happens exactly once: a Grid that fails its invariants is
//     never observable, so downstream code needs no defensive checks.
//
// Coordinate system:
//
//   - (0,0) is the bottom-left cell; Row increases upward, Column rightward.
//   - The grid never wraps at any edge.
//
// Errors:
//
//   - ErrInvalidDimensions: Height ≤ 0 or Width ≤ 0 at construction.
//   - ErrOutOfBounds: a marker position outside [0,Height)×[0,Width).
//
// Both sentinels are carried by typed errors (InvalidDimensionsError,
// OutOfBoundsError) that retain the offending values for diagnostics;
// match kinds with errors.Is, extract payloads with errors.As.
package grid
