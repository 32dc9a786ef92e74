package sampler

import (
	"math/rand"

	"github.com/katalvlaran/stratify/core"
)

// defaultSeed is used when callers pass seed==0 or configure no source.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed==0 ⇒ defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// StreamSeed mixes a base seed and a stream index into the seed used by
// Streams for that stream, so any stream can be replayed sequentially:
//
//	g := sampler.NewJittered(sampler.WithSource(rand.New(rand.NewSource(sampler.StreamSeed(seed, k)))))
//
// SplitMix64 finalizer: small input changes spread over all output bits.
func StreamSeed(seed int64, stream int) int64 {
	var x uint64
	x = uint64(seed) ^ (uint64(stream) + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// countingSource counts draws so growth logs can report rejection cost
// without any cooperation from the occupancy strategy.
type countingSource struct {
	src   core.Source
	draws uint64
}

func (c *countingSource) Float64() float64 {
	c.draws++
	return c.src.Float64()
}
