package sampler

import (
	"fmt"

	"github.com/katalvlaran/stratify/core"
)

// New builds a generator of the given kind. Returns ErrUnknownKind for a
// kind outside Kinds().
func New(kind Kind, opts ...Option) (Generator, error) {
	switch kind {
	case KindUniform:
		return NewUniform(opts...), nil
	case KindJittered:
		return NewJittered(opts...), nil
	case KindMultiJittered:
		return NewMultiJitteredSlices(opts...), nil
	case KindMultiJittered02:
		return NewMultiJittered02(opts...), nil
	default:
		return nil, fmt.Errorf("sampler: New(%v): %w", kind, ErrUnknownKind)
	}
}

// Take collects the next n points of g in order. n <= 0 yields an empty,
// non-nil slice.
func Take(g Generator, n int) []core.Point {
	if n < 0 {
		n = 0
	}
	var pts = make([]core.Point, n)
	var k int
	for k = range pts {
		pts[k] = g.Generate()
	}

	return pts
}
