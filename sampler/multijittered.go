package sampler

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/stratify/core"
	"github.com/katalvlaran/stratify/occupancy"
)

// Growth phase names used in logs.
const (
	phaseDiagonal      = "diagonal"
	phaseQuadrantSplit = "quadrant-split"
)

// MultiJittered grows a jittered sequence whose new points also avoid every
// cell already claimed by the whole sequence, as judged by an
// occupancy.Strategy.
//
// Growth from n to 4n runs two phases, each on freshly rebuilt occupancy:
//
//	diagonal:       Reinitialize(2n), replay points [0,n),
//	                place the diagonal point of each old point at n+s.
//	quadrant-split: Reinitialize(4n), replay points [0,2n),
//	                place a coin-chosen point at 2n+s for every s,
//	                then its opposite at 3n+s for every s.
//
// Every placed point is fed back through Update before the next candidate.
type MultiJittered struct {
	src    *countingSource
	st     occupancy.Strategy
	kind   string
	log    *slog.Logger
	seq    []core.Point
	halves [][2]int
	cursor int
}

var _ Generator = (*MultiJittered)(nil)

// NewMultiJittered builds a generator driven by st. The generator takes
// ownership of st. Returns ErrNilStrategy if st is nil.
func NewMultiJittered(st occupancy.Strategy, opts ...Option) (*MultiJittered, error) {
	if st == nil {
		return nil, fmt.Errorf("sampler: NewMultiJittered: %w", ErrNilStrategy)
	}

	return newMultiJittered(st, opts...), nil
}

// strategyKind labels a generator by its occupancy strategy; strategies
// other than occupancy.Dyadic log as KindMultiJittered.
func strategyKind(st occupancy.Strategy) Kind {
	if _, ok := st.(*occupancy.Dyadic); ok {
		return KindMultiJittered02
	}

	return KindMultiJittered
}

// NewMultiJitteredSlices builds a Latin-square generator (occupancy.Slices).
func NewMultiJitteredSlices(opts ...Option) *MultiJittered {
	return newMultiJittered(occupancy.NewSlices(), opts...)
}

// NewMultiJittered02 builds a (0,2)-sequence generator (occupancy.Dyadic).
func NewMultiJittered02(opts ...Option) *MultiJittered {
	return newMultiJittered(occupancy.NewDyadic(), opts...)
}

func newMultiJittered(st occupancy.Strategy, opts ...Option) *MultiJittered {
	cfg := newConfig(opts...)
	return &MultiJittered{
		src:  &countingSource{src: cfg.src},
		st:   st,
		kind: strategyKind(st).String(),
		log:  cfg.logger,
		seq:  make([]core.Point, 0, cfg.capacity),
	}
}

// Generate returns the next point, running both growth phases when the
// cursor reaches the end of the sequence.
func (g *MultiJittered) Generate() core.Point {
	if g.cursor == 0 {
		g.seq = append(g.seq[:0], seedPoint(g.src))
		g.cursor = 1
		return g.seq[0]
	}
	if g.cursor == len(g.seq) {
		g.grow()
	}
	g.cursor++

	return g.seq[g.cursor-1]
}

// Len returns the number of points emitted so far.
func (g *MultiJittered) Len() int {
	return g.cursor
}

func (g *MultiJittered) grow() {
	var (
		n     = g.cursor
		res   = math.Sqrt(float64(n))
		start = g.src.draws
		s     int
	)
	g.seq = extend(g.seq, 4*n)

	g.replay(2*n, n, phaseDiagonal)
	for s = 0; s < n; s++ {
		i, j, xhalf, yhalf := locate(g.seq[s], res)
		g.seq[n+s] = g.place(i, j, 1-xhalf, 1-yhalf, res)
	}

	g.replay(4*n, 2*n, phaseQuadrantSplit)
	g.halves = g.halves[:0]
	for s = 0; s < n; s++ {
		i, j, xhalf, yhalf := locate(g.seq[s], res)
		xhalf, yhalf = flipOne(g.src, xhalf, yhalf)
		g.halves = append(g.halves, [2]int{xhalf, yhalf})
		g.seq[2*n+s] = g.place(i, j, xhalf, yhalf, res)
	}
	for s = 0; s < n; s++ {
		i, j, _, _ := locate(g.seq[s], res)
		h := g.halves[s]
		g.seq[3*n+s] = g.place(i, j, 1-h[0], 1-h[1], res)
	}

	g.log.Debug("sequence grown",
		"generator", g.kind,
		"from", n,
		"to", 4*n,
		"draws", g.src.draws-start,
	)
}

// replay rebuilds occupancy for capacity cells from the first count points.
func (g *MultiJittered) replay(capacity, count int, phase string) {
	g.st.Reinitialize(capacity)
	var k int
	for k = 0; k < count; k++ {
		g.st.Update(g.seq[k])
	}
	g.log.Debug("occupancy phase",
		"generator", g.kind,
		"phase", phase,
		"capacity", capacity,
		"replayed", count,
	)
}

// place draws a free candidate and claims it immediately.
func (g *MultiJittered) place(i, j, xhalf, yhalf int, res float64) core.Point {
	p := g.st.Generate(i, j, xhalf, yhalf, res, g.src)
	g.st.Update(p)

	return p
}
