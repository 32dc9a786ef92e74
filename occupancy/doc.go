// SPDX-License-Identifier: MIT
// Package: stratify/occupancy
//
// Package occupancy tracks which cells of a growing stratification grid are
// already claimed, and draws new jittered candidates that avoid them.
//
// A Strategy is the pluggable "elementary element" of a multi-jittered
// generator. The generator drives it in phases:
//
//	st.Reinitialize(capacity)      // fresh, empty occupancy for `capacity` cells
//	for each existing point p:     // replay what is already placed
//	    st.Update(p)
//	for each new point:
//	    p := st.Generate(i, j, xhalf, yhalf, res, src)  // rejection sampling
//	    st.Update(p)                                     // later candidates see p
//
// Two strategies ship with the package:
//
//   - Slices — one flag per column slice and per row slice of width
//     1/capacity. Rejects a candidate whose X slice or Y slice is taken,
//     drawing each axis independently. Yields the Latin-square property.
//
//   - Dyadic — one grid per shape of core.DyadicShapes(capacity)
//     (capacity×1, capacity/2×2, …, 1×capacity). Rejects a candidate whose
//     cell is taken in ANY grid. Yields the (0,2)-sequence property.
//
// Occupancy flags are stored in github.com/bits-and-blooms/bitset sets.
//
// Retry policy:
//
//	Generate retries without a bound. Under a continuous Source it ends
//	with probability 1 (occupancy density is below 1 whenever a candidate
//	is drawn), but a degenerate or constant Source can loop forever. No cap
//	is imposed: a cap would silently change the output distribution.
//
// Invariant violations panic with an error wrapping ErrCellOutOfRange or
// ErrBadCapacity; they indicate a logic defect in the caller, not a
// recoverable condition.
package occupancy
