package core

import (
	"fmt"
	"math"
)

// CellCounts buckets points into a cols×rows partition of the unit square
// and returns the per-cell counts in row-major order (row·cols + col).
//
// Errors:
//   - ErrBadShape        if cols < 1 or rows < 1.
//   - ErrOutOfUnitSquare if any coordinate lies outside [0,1).
//
// Complexity: O(len(points) + cols·rows).
func CellCounts(points []Point, cols, rows int) ([]int, error) {
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("core: CellCounts(%d×%d): %w", cols, rows, ErrBadShape)
	}

	var counts = make([]int, cols*rows)
	var k int
	for k = range points {
		p := points[k]
		if !inUnit(p.X) || !inUnit(p.Y) {
			return nil, fmt.Errorf("core: CellCounts: point %d (%g, %g): %w", k, p.X, p.Y, ErrOutOfUnitSquare)
		}
		col := int(math.Floor(p.X * float64(cols)))
		row := int(math.Floor(p.Y * float64(rows)))
		counts[row*cols+col]++
	}

	return counts, nil
}

// Stratified reports whether every cell of the cols×rows partition holds
// exactly one point. A malformed shape or an out-of-square point yields false.
func Stratified(points []Point, cols, rows int) bool {
	if len(points) != cols*rows {
		return false
	}
	counts, err := CellCounts(points, cols, rows)
	if err != nil {
		return false
	}
	for _, c := range counts {
		if c != 1 {
			return false
		}
	}

	return true
}

// LatinStratified reports whether the m points occupy every one of the m
// column slices and every one of the m row slices exactly once.
func LatinStratified(points []Point) bool {
	var m = len(points)
	if m == 0 {
		return false
	}

	return Stratified(points, m, 1) && Stratified(points, 1, m)
}

// ElementaryStratified reports whether the points form a (0,2)-net: their
// count is a power of two and every shape from DyadicShapes holds exactly
// one point per cell.
//
// Complexity: O(m·log m) for m = len(points).
func ElementaryStratified(points []Point) bool {
	var m = len(points)
	if !IsPowerOfTwo(m) {
		return false
	}
	for _, s := range DyadicShapes(m) {
		if !Stratified(points, s.Cols, s.Rows) {
			return false
		}
	}

	return true
}

func inUnit(v float64) bool {
	return v >= 0 && v < 1
}
