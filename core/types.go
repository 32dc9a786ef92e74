package core

// Point is a single 2D sample in the unit square.
//
// Both coordinates lie in [0,1). A Point carries no identity beyond its
// value; generators hand out copies, so an emitted Point never changes.
type Point struct {
	// X is the horizontal coordinate in [0,1).
	X float64

	// Y is the vertical coordinate in [0,1).
	Y float64
}

// Source supplies independent uniform draws in the half-open interval [0,1).
//
// *math/rand.Rand satisfies Source. Implementations are NOT required to be
// goroutine-safe; a Source shared between generators must be serialized by
// the caller, because every generator's output is a function of the exact
// order of the draws it consumes.
type Source interface {
	// Float64 returns the next draw in [0,1).
	Float64() float64
}

// Shape is a rectangular partition of the unit square into Cols×Rows
// equal cells.
type Shape struct {
	// Cols is the number of cells along X.
	Cols int

	// Rows is the number of cells along Y.
	Rows int
}

// Cells returns the total number of cells in the partition.
func (s Shape) Cells() int {
	return s.Cols * s.Rows
}
