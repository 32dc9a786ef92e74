package sampler

import (
	"fmt"

	"github.com/katalvlaran/stratify/core"
)

// Generator is a point source: each call returns the next sample of an
// unbounded stream. Generate never fails under a valid Source.
type Generator interface {
	Generate() core.Point
}

// Kind names one of the built-in generator variants.
type Kind int

const (
	// KindUniform selects Uniform.
	KindUniform Kind = iota

	// KindJittered selects Jittered.
	KindJittered

	// KindMultiJittered selects MultiJittered with occupancy.Slices.
	KindMultiJittered

	// KindMultiJittered02 selects MultiJittered with occupancy.Dyadic.
	KindMultiJittered02
)

// String returns the canonical lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindUniform:
		return "uniform"
	case KindJittered:
		return "jittered"
	case KindMultiJittered:
		return "multi-jittered"
	case KindMultiJittered02:
		return "multi-jittered-02"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Kinds lists every built-in kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindUniform, KindJittered, KindMultiJittered, KindMultiJittered02}
}

func (k Kind) valid() bool {
	return k >= KindUniform && k <= KindMultiJittered02
}
