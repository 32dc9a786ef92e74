package sampler_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/stratify/core"
)

// Shared sizes and seeds (avoid magic numbers in test bodies).
const (
	eps       = 1e-12
	seedDet   = 12345
	seedOther = 54321
	maxPoints = 1024
	nSeeds    = 5
	nRepeats  = 3
)

// tiers are the completed tier sizes checked by the stratification tests.
var tiers = []int{1, 4, 16, 64, 256, maxPoints}

// constant is a Source that always returns the same draw.
type constant float64

func (c constant) Float64() float64 { return float64(c) }

// Repeat runs fn n times as subtests.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	for i := 0; i < n; i++ {
		t.Run(fmt.Sprintf("run%d", i), fn)
	}
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

// gridRes returns √m for a tier size m.
func gridRes(m int) int {
	return int(math.Round(math.Sqrt(float64(m))))
}

// assertInUnit fails t if any point leaves [0,1)².
func assertInUnit(t *testing.T, pts []core.Point) {
	t.Helper()
	for k, p := range pts {
		if p.X < 0 || p.X >= 1 || p.Y < 0 || p.Y >= 1 {
			t.Fatalf("point %d = (%g, %g) outside [0,1)²", k, p.X, p.Y)
		}
	}
}
