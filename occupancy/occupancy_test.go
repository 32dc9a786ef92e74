package occupancy_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stratify/core"
	"github.com/katalvlaran/stratify/occupancy"
)

const (
	eps       = 1e-12
	seedFixed = 20240611
	fillRes   = 8 // per-axis resolution for the fill tests (64 coarse cells)
)

// script replays a fixed list of draws and fails loudly when exhausted.
type script struct {
	vals []float64
	i    int
}

func (s *script) Float64() float64 {
	v := s.vals[s.i]
	s.i++
	return v
}

// recoverErr runs fn and returns the error it panicked with, if any.
func recoverErr(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				e = fmt.Errorf("non-error panic: %v", r)
			}
			err = e
		}
	}()
	fn()
	return nil
}

// TestSlices_RejectsPerAxis scripts one rejection on each axis.
//
// Capacity 4 ⇒ slices of width 0.25. After Update(0.1, 0.1), slice 0 is
// taken on both axes. In half 0 of cell 0 at res 1 (range [0,0.5)):
//
//	x: draw 0.1 → 0.05 (slice 0, rejected), draw 0.6 → 0.30 (slice 1, accepted)
//	y: draw 0.2 → 0.10 (slice 0, rejected), draw 0.8 → 0.40 (slice 1, accepted)
func TestSlices_RejectsPerAxis(t *testing.T) {
	st := occupancy.NewSlices()
	st.Reinitialize(4)
	st.Update(core.Point{X: 0.1, Y: 0.1})

	src := &script{vals: []float64{0.1, 0.6, 0.2, 0.8}}
	p := st.Generate(0, 0, 0, 0, 1, src)
	assert.InDelta(t, 0.30, p.X, eps)
	assert.InDelta(t, 0.40, p.Y, eps)
	assert.Equal(t, 4, src.i, "exactly four draws consumed")
	assert.Equal(t, 4, st.Capacity())
}

// TestSlices_GenerateDoesNotUpdate verifies occupancy only changes via Update.
func TestSlices_GenerateDoesNotUpdate(t *testing.T) {
	st := occupancy.NewSlices()
	st.Reinitialize(2)

	first := st.Generate(0, 0, 0, 0, 1, &script{vals: []float64{0.5, 0.5}})
	again := st.Generate(0, 0, 0, 0, 1, &script{vals: []float64{0.5, 0.5}})
	assert.Equal(t, first, again, "no Update ⇒ the same candidate is still free")
}

// TestSlices_ReinitializeClears checks that previous occupancy is dropped.
func TestSlices_ReinitializeClears(t *testing.T) {
	st := occupancy.NewSlices()
	st.Reinitialize(4)
	st.Update(core.Point{X: 0.1, Y: 0.1})
	st.Reinitialize(4)

	src := &script{vals: []float64{0.1, 0.2}}
	p := st.Generate(0, 0, 0, 0, 1, src)
	assert.InDelta(t, 0.05, p.X, eps)
	assert.InDelta(t, 0.10, p.Y, eps)
}

// TestDyadic_RejectsAnyShape scripts a rejection caused by the 1×4 shape only.
//
// Capacity 4 ⇒ shapes 4×1, 2×2, 1×4. After Update(0.1, 0.1), candidate
// (0.6, 0.1) is free in 4×1 and 2×2 but collides in row 0 of 1×4.
// The next candidate (0.6, 0.4) is free everywhere.
func TestDyadic_RejectsAnyShape(t *testing.T) {
	st := occupancy.NewDyadic()
	st.Reinitialize(4)
	st.Update(core.Point{X: 0.1, Y: 0.1})

	src := &script{vals: []float64{0.2, 0.2, 0.2, 0.8}}
	p := st.Generate(0, 0, 1, 0, 1, src)
	assert.InDelta(t, 0.6, p.X, eps)
	assert.InDelta(t, 0.4, p.Y, eps)
	assert.Equal(t, 4, src.i, "two (x, y) attempts consumed")
}

// TestDyadic_Shapes checks the tracked partitions follow the capacity.
func TestDyadic_Shapes(t *testing.T) {
	st := occupancy.NewDyadic()
	st.Reinitialize(8)
	assert.Equal(t, core.DyadicShapes(8), st.Shapes())
	assert.Equal(t, 8, st.Capacity())

	st.Reinitialize(2)
	assert.Equal(t, []core.Shape{{Cols: 2, Rows: 1}, {Cols: 1, Rows: 2}}, st.Shapes())
}

// TestStrategies_Invariants covers the assertion panics of both strategies.
func TestStrategies_Invariants(t *testing.T) {
	for _, tc := range []struct {
		name string
		st   func() occupancy.Strategy
	}{
		{"Slices", func() occupancy.Strategy { return occupancy.NewSlices() }},
		{"Dyadic", func() occupancy.Strategy { return occupancy.NewDyadic() }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := recoverErr(func() { tc.st().Update(core.Point{X: 0.5, Y: 0.5}) })
			assert.True(t, errors.Is(err, occupancy.ErrCellOutOfRange), "Update before Reinitialize: %v", err)

			err = recoverErr(func() { tc.st().Generate(0, 0, 0, 0, 1, &script{vals: []float64{0.5, 0.5}}) })
			assert.True(t, errors.Is(err, occupancy.ErrCellOutOfRange), "Generate before Reinitialize: %v", err)

			err = recoverErr(func() { tc.st().Reinitialize(0) })
			assert.True(t, errors.Is(err, occupancy.ErrBadCapacity), "Reinitialize(0): %v", err)

			err = recoverErr(func() {
				st := tc.st()
				st.Reinitialize(4)
				st.Update(core.Point{X: 1.0, Y: 0.5})
			})
			assert.True(t, errors.Is(err, occupancy.ErrCellOutOfRange), "X == 1: %v", err)
		})
	}
}

// fillGrid places one point per coarse cell of a res×res grid, in row-major
// order, against a single capacity of res·res. Halves alternate so that each
// half of every column (and row) of cells owns exactly as many slices as
// cells that target it; rejection sampling then always has a free slice.
func fillGrid(t *testing.T, st occupancy.Strategy, res int, src core.Source) []core.Point {
	t.Helper()
	st.Reinitialize(res * res)
	var pts []core.Point
	var i, j int
	for j = 0; j < res; j++ {
		for i = 0; i < res; i++ {
			p := st.Generate(i, j, j%2, i%2, float64(res), src)
			st.Update(p)
			pts = append(pts, p)
		}
	}
	return pts
}

// TestSlices_FillIsLatin checks that filling every coarse cell with
// rejection against Slices yields one point per row and column slice.
func TestSlices_FillIsLatin(t *testing.T) {
	rng := rand.New(rand.NewSource(seedFixed))
	pts := fillGrid(t, occupancy.NewSlices(), fillRes, rng)

	require.Len(t, pts, fillRes*fillRes)
	assert.True(t, core.Stratified(pts, fillRes, fillRes), "one point per coarse cell")
	assert.True(t, core.LatinStratified(pts), "one point per row and column slice")
}
