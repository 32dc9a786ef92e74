package sampler

import "github.com/katalvlaran/stratify/core"

// Uniform returns independent uniform points with no stratification.
type Uniform struct {
	src     core.Source
	emitted int
}

var _ Generator = (*Uniform)(nil)

// NewUniform builds a Uniform generator. WithCapacity is accepted and
// ignored, since Uniform keeps no sequence.
func NewUniform(opts ...Option) *Uniform {
	cfg := newConfig(opts...)
	return &Uniform{src: cfg.src}
}

// Generate draws X then Y. O(1).
func (u *Uniform) Generate() core.Point {
	var p core.Point
	p.X = u.src.Float64()
	p.Y = u.src.Float64()
	u.emitted++

	return p
}

// Len returns the number of points emitted so far.
func (u *Uniform) Len() int {
	return u.emitted
}
