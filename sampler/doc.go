// Package sampler produces progressive stratified 2D sample sequences.
//
// 🚀 What is a progressive stratified sequence?
//
//	A Generator returns one point of [0,1)² per call. Stratified variants
//	build their sequence in tiers of 1, 4, 16, 64, … points: whenever every
//	point of the current tier has been handed out, the sequence is
//	quadrupled so that each completed tier is itself well stratified.
//	Any prefix that ends on a tier boundary can be used on its own.
//
// ✨ Generators:
//
//   - Uniform        — independent uniform draws; no stratification.
//   - Jittered       — after each tier m, one point per cell of the
//     √m×√m grid.
//   - MultiJittered  — jittered growth plus an occupancy.Strategy that
//     rejects candidates colliding with the whole sequence:
//     with occupancy.Slices  → one point per row and column slice (Latin square);
//     with occupancy.Dyadic  → one point per cell of every dyadic partition
//     ((0,2)-sequence).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/stratify/sampler"
//
//	g := sampler.NewMultiJittered02(
//	    sampler.WithSeed(42),       // reproducible draws
//	    sampler.WithCapacity(1024), // pre-size; no effect on output
//	)
//	pts := sampler.Take(g, 1024)
//
// Determinism:
//
//	Output is a pure function of the draw sequence consumed from the Source.
//	WithSeed gives reproducible runs; seed 0 maps to a fixed default seed.
//	There are no hidden time-based sources.
//
// Concurrency:
//
//	Generators are NOT goroutine-safe and own their Source exclusively.
//	Use one generator per goroutine, or Streams to fan out independent,
//	individually seeded sequences.
//
// Failure modes:
//
//   - A Source returning 1.0 trips the core.ErrClosedBoundary assertion
//     (panic); the coordinate is never clamped.
//   - MultiJittered uses unbounded rejection sampling. It terminates with
//     probability 1 under a continuous Source but can spin forever under a
//     constant or degenerate one. There is deliberately no retry cap.
//
// Performance:
//
//   - Uniform: O(1) per call.
//   - Jittered: amortized O(1) per call; growth to 4n costs O(n).
//   - MultiJittered: amortized O(1) expected draws per call for Slices,
//     O(log n) occupancy work per candidate for Dyadic.
package sampler
