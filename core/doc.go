// Package core defines the shared vocabulary of stratify: the Point value,
// the Source contract for uniform draws, the jitter formula used by every
// stratified generator, and checkers that verify a point set against a
// stratification grid.
//
// What lives here?
//
//   - Point  — a 2D sample in the half-open unit square [0,1)×[0,1).
//   - Source — anything with Float64() in [0,1); *math/rand.Rand qualifies.
//   - Jitter / Locate — place a draw inside a sub-quadrant of a grid cell,
//     and recover the cell and sub-quadrant an existing value sits in.
//   - Shape / DyadicShapes — the m×1, m/2×2, …, 1×m partitions of m cells.
//   - CellCounts / Stratified / LatinStratified / ElementaryStratified —
//     count points per cell and check the one-point-per-cell property.
//
// Boundary contract:
//
//	A Source MUST be half-open on its upper bound. Jitter panics with an
//	error wrapping ErrClosedBoundary when a computed coordinate reaches 1.0;
//	the value is never clamped. A Source that can return exactly 1.0 must be
//	fixed at the source, not patched here.
//
// Grid layout:
//
//	For a tier of n points the per-axis resolution is r = sqrt(n).
//	A value v lies in cell floor(v·r) and in half floor(2·(v·r − cell)):
//
//	    cell i            cell i+1
//	  ├────┬────┼────┬────┤
//	   h=0  h=1  h=0  h=1
//
// Complexity:
//
//   - Jitter, Locate: O(1).
//   - DyadicShapes(m): O(log m).
//   - CellCounts: O(len(points) + cols·rows).
//   - ElementaryStratified: O(len(points)·log len(points)).
package core
