package core

import (
	"fmt"
	"math"
)

// Jitter places draw inside one half of a grid cell along a single axis:
//
//	v = (cell + 0.5·(half + draw)) / res
//
// where res is the per-axis resolution of the current tier (sqrt of the
// tier size), cell the coarse cell index and half ∈ {0,1} the sub-quadrant.
//
// Panics with an error wrapping ErrClosedBoundary if v reaches 1.0. A
// Source returning a value outside [0,1) gets there, and so does the largest
// float64 below 1 in the last cell's upper half: 1 + draw rounds to 2, so
// 0.5·(half + draw) is exactly 1.
//
// Complexity: O(1).
func Jitter(cell, half int, res, draw float64) float64 {
	var v float64
	v = (float64(cell) + 0.5*(float64(half)+draw)) / res
	if v >= 1 {
		panic(fmt.Errorf("core: Jitter(cell=%d, half=%d, res=%g, draw=%g) = %g: %w",
			cell, half, res, draw, v, ErrClosedBoundary))
	}

	return v
}

// Locate recovers the coarse cell and the half-selector of a coordinate at
// per-axis resolution res. It is the inverse of Jitter up to the draw.
//
// Complexity: O(1).
func Locate(v, res float64) (cell, half int) {
	var scaled float64
	scaled = v * res
	cell = int(math.Floor(scaled))
	half = int(math.Floor(2 * (scaled - float64(cell))))

	return cell, half
}

// JitterPoint applies Jitter on both axes, drawing x first and then y.
func JitterPoint(i, j, xhalf, yhalf int, res float64, src Source) Point {
	var p Point
	p.X = Jitter(i, xhalf, res, src.Float64())
	p.Y = Jitter(j, yhalf, res, src.Float64())

	return p
}
