// SPDX-License-Identifier: MIT
// Package: stratify/occupancy
//
// slices.go — per-row/per-column occupancy (multi-jittered, Latin square).
//
// Layout:
//   • x bit k set ⇔ some point has floor(X·capacity) == k.
//   • y bit k set ⇔ some point has floor(Y·capacity) == k.
//
// Draw order in Generate: X retries until free, then Y retries until free.

package occupancy

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/stratify/core"
)

// Slices tracks one flag per column slice and per row slice.
type Slices struct {
	x        *bitset.BitSet
	y        *bitset.BitSet
	capacity int
}

var _ Strategy = (*Slices)(nil)

// NewSlices returns an empty Slices strategy. Reinitialize must be called
// before the first Update or Generate.
func NewSlices() *Slices {
	return &Slices{}
}

// Capacity returns the number of slices per axis.
func (s *Slices) Capacity() int {
	return s.capacity
}

// Reinitialize clears both axes and sizes them for capacity slices.
// Complexity: O(capacity).
func (s *Slices) Reinitialize(capacity int) {
	if capacity < 1 {
		panic(fmt.Errorf("occupancy: Slices.Reinitialize(%d): %w", capacity, ErrBadCapacity))
	}
	s.capacity = capacity
	s.x = resetBits(s.x, capacity)
	s.y = resetBits(s.y, capacity)
}

// Update marks the column slice of p.X and the row slice of p.Y.
func (s *Slices) Update(p core.Point) {
	s.x.Set(s.slice(p.X))
	s.y.Set(s.slice(p.Y))
}

// Generate rejects on each axis independently.
func (s *Slices) Generate(i, j, xhalf, yhalf int, res float64, src core.Source) core.Point {
	var p core.Point
	for {
		p.X = core.Jitter(i, xhalf, res, src.Float64())
		if !s.x.Test(s.slice(p.X)) {
			break
		}
	}
	for {
		p.Y = core.Jitter(j, yhalf, res, src.Float64())
		if !s.y.Test(s.slice(p.Y)) {
			break
		}
	}

	return p
}

// slice maps a coordinate to its slice index, asserting it is in range.
func (s *Slices) slice(v float64) uint {
	var k int
	k = int(math.Floor(v * float64(s.capacity)))
	if k < 0 || k >= s.capacity {
		panic(fmt.Errorf("occupancy: slice %d of %d for %g: %w", k, s.capacity, v, ErrCellOutOfRange))
	}

	return uint(k)
}

// resetBits returns an all-clear set of exactly n bits, reusing b when it
// already has that length.
func resetBits(b *bitset.BitSet, n int) *bitset.BitSet {
	if b != nil && b.Len() == uint(n) {
		return b.ClearAll()
	}

	return bitset.New(uint(n))
}
