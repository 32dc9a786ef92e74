package sampler

import (
	"log/slog"
	"math"
	"slices"

	"github.com/katalvlaran/stratify/core"
)

// Jittered grows a jittered-grid sequence by quadrant doubling.
//
// After every completed tier m the first m points hold exactly one point
// per cell of the √m×√m grid. Growth from n to 4n gives each old point's
// cell one new point in each of its three empty sub-quadrants:
//
//	┌───┬───┐
//	│ c │ d │   o = old point, d = diagonal (n+s)
//	├───┼───┤   c = coin flip of d's X or Y half (2n+s)
//	│ o │ c'│   c' = opposite of c (3n+s)
//	└───┴───┘
type Jittered struct {
	src    core.Source
	log    *slog.Logger
	seq    []core.Point
	cursor int
}

var _ Generator = (*Jittered)(nil)

// NewJittered builds a Jittered generator.
func NewJittered(opts ...Option) *Jittered {
	cfg := newConfig(opts...)
	return &Jittered{
		src: cfg.src,
		log: cfg.logger,
		seq: make([]core.Point, 0, cfg.capacity),
	}
}

// Generate returns the next point, quadrupling the sequence when the
// cursor reaches its end. Amortized O(1).
func (g *Jittered) Generate() core.Point {
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
func (g *Jittered) Len() int {
	return g.cursor
}

// grow extends n points to 4n. Per old point s the draws are consumed as
// diagonal (x, y), coin, coin point (x, y), opposite point (x, y).
func (g *Jittered) grow() {
	var (
		n   = g.cursor
		res = math.Sqrt(float64(n))
		s   int
	)
	g.seq = extend(g.seq, 4*n)
	for s = 0; s < n; s++ {
		i, j, xhalf, yhalf := locate(g.seq[s], res)

		xhalf, yhalf = 1-xhalf, 1-yhalf
		g.seq[n+s] = core.JitterPoint(i, j, xhalf, yhalf, res, g.src)

		xhalf, yhalf = flipOne(g.src, xhalf, yhalf)
		g.seq[2*n+s] = core.JitterPoint(i, j, xhalf, yhalf, res, g.src)

		xhalf, yhalf = 1-xhalf, 1-yhalf
		g.seq[3*n+s] = core.JitterPoint(i, j, xhalf, yhalf, res, g.src)
	}
	g.log.Debug("sequence grown", "generator", KindJittered.String(), "from", n, "to", 4*n)
}

// seedPoint is the first point of every stratified sequence: X then Y.
func seedPoint(src core.Source) core.Point {
	var p core.Point
	p.X = src.Float64()
	p.Y = src.Float64()

	return p
}

// locate recovers the coarse cell and half-selectors of p at resolution res.
func locate(p core.Point, res float64) (i, j, xhalf, yhalf int) {
	i, xhalf = core.Locate(p.X, res)
	j, yhalf = core.Locate(p.Y, res)

	return i, j, xhalf, yhalf
}

// coinThreshold splits the quadrant-split coin: draws above it flip the
// X half, all others flip the Y half.
const coinThreshold = 0.5

// flipOne consumes one coin draw and flips only the X half (draw above
// coinThreshold) or only the Y half.
func flipOne(src core.Source, xhalf, yhalf int) (int, int) {
	if src.Float64() > coinThreshold {
		return 1 - xhalf, yhalf
	}

	return xhalf, 1 - yhalf
}

// extend returns seq resized to length n, keeping its prefix.
func extend(seq []core.Point, n int) []core.Point {
	return slices.Grow(seq, n-len(seq))[:n]
}
