package core_test

import (
	"fmt"

	"github.com/katalvlaran/stratify/core"
)

// ExampleDyadicShapes lists the elementary-interval shapes of 16 cells.
func ExampleDyadicShapes() {
	for _, s := range core.DyadicShapes(16) {
		fmt.Printf("%d×%d\n", s.Cols, s.Rows)
	}
	// Output:
	// 16×1
	// 8×2
	// 4×4
	// 2×8
	// 1×16
}

// ExampleJitter places a mid draw into each half of cell 1 at resolution 2.
func ExampleJitter() {
	fmt.Println(core.Jitter(1, 0, 2, 0.5))
	fmt.Println(core.Jitter(1, 1, 2, 0.5))
	// Output:
	// 0.625
	// 0.875
}

// ExampleStratified checks one point per quadrant.
func ExampleStratified() {
	pts := []core.Point{{X: 0.2, Y: 0.2}, {X: 0.7, Y: 0.2}, {X: 0.2, Y: 0.7}, {X: 0.7, Y: 0.7}}
	fmt.Println(core.Stratified(pts, 2, 2))
	fmt.Println(core.LatinStratified(pts))
	// Output:
	// true
	// false
}
