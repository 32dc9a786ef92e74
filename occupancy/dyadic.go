// SPDX-License-Identifier: MIT
// Package: stratify/occupancy
//
// dyadic.go — hierarchical occupancy over every dyadic partition ((0,2)).
//
// Layout:
//   • grids[k] belongs to shapes[k] = core.DyadicShapes(capacity)[k].
//   • bit (row·Cols + col) of grids[k] set ⇔ some point lies in that cell.
//
// Draw order in Generate: one (X, Y) pair per attempt, X first.

package occupancy

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/stratify/core"
)

// Dyadic tracks occupancy in every aspect-ratio partition of capacity cells.
type Dyadic struct {
	shapes   []core.Shape
	grids    []*bitset.BitSet
	capacity int
}

var _ Strategy = (*Dyadic)(nil)

// NewDyadic returns an empty Dyadic strategy. Reinitialize must be called
// before the first Update or Generate.
func NewDyadic() *Dyadic {
	return &Dyadic{}
}

// Capacity returns the number of cells per partition.
func (d *Dyadic) Capacity() int {
	return d.capacity
}

// Shapes returns the partitions currently tracked, finest column count first.
func (d *Dyadic) Shapes() []core.Shape {
	return append([]core.Shape(nil), d.shapes...)
}

// Reinitialize rebuilds one empty grid per shape of capacity cells.
// Complexity: O(capacity·log capacity).
func (d *Dyadic) Reinitialize(capacity int) {
	if capacity < 1 {
		panic(fmt.Errorf("occupancy: Dyadic.Reinitialize(%d): %w", capacity, ErrBadCapacity))
	}
	d.capacity = capacity
	d.shapes = core.DyadicShapes(capacity)

	var grids = make([]*bitset.BitSet, len(d.shapes))
	var k int
	for k = range grids {
		var prev *bitset.BitSet
		if k < len(d.grids) {
			prev = d.grids[k]
		}
		grids[k] = resetBits(prev, capacity)
	}
	d.grids = grids
}

// Update marks the cell of p in every partition.
func (d *Dyadic) Update(p core.Point) {
	if len(d.shapes) == 0 {
		panic(fmt.Errorf("occupancy: Dyadic.Update before Reinitialize: %w", ErrCellOutOfRange))
	}
	var k int
	for k = range d.shapes {
		d.grids[k].Set(d.cell(d.shapes[k], p))
	}
}

// Generate draws (X, Y) pairs until no partition has the pair's cell taken.
func (d *Dyadic) Generate(i, j, xhalf, yhalf int, res float64, src core.Source) core.Point {
	if len(d.shapes) == 0 {
		panic(fmt.Errorf("occupancy: Dyadic.Generate before Reinitialize: %w", ErrCellOutOfRange))
	}
	for {
		p := core.JitterPoint(i, j, xhalf, yhalf, res, src)
		if !d.occupied(p) {
			return p
		}
	}
}

func (d *Dyadic) occupied(p core.Point) bool {
	var k int
	for k = range d.shapes {
		if d.grids[k].Test(d.cell(d.shapes[k], p)) {
			return true
		}
	}

	return false
}

// cell maps p to its row-major index inside shape s, asserting bounds.
func (d *Dyadic) cell(s core.Shape, p core.Point) uint {
	var col, row int
	col = int(math.Floor(p.X * float64(s.Cols)))
	row = int(math.Floor(p.Y * float64(s.Rows)))
	if col < 0 || col >= s.Cols || row < 0 || row >= s.Rows {
		panic(fmt.Errorf("occupancy: cell (%d,%d) of %d×%d for (%g, %g): %w",
			col, row, s.Cols, s.Rows, p.X, p.Y, ErrCellOutOfRange))
	}

	return uint(row*s.Cols + col)
}
