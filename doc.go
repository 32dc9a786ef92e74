// Package stratify generates progressive stratified 2D sample sequences
// for Monte-Carlo integration and rendering.
//
// 🚀 What is stratify?
//
//	A small, dependency-light library of point sources over [0,1)²:
//		• Uniform        — independent draws
//		• Jittered       — one point per cell of every completed √m×√m tier
//		• MultiJittered  — jittered + one point per row and column slice
//		• MultiJittered02 — jittered + one point per cell of every dyadic
//		  partition ((0,2)-sequence)
//
// ✨ Why progressive?
//
//   - Ask for as many points as you like; every prefix ending on a tier
//     (1, 4, 16, 64, …) is stratified on its own.
//   - Points already returned never change as the sequence grows.
//   - Output is a pure function of the draws; seed it and it is reproducible.
//
// Under the hood, everything is organized under three subpackages:
//
//	core/      — Point, Source, jitter formula, dyadic shapes, stratification checks
//	occupancy/ — pluggable occupancy strategies (Slices, Dyadic) for rejection sampling
//	sampler/   — the generators, options, kind factory and parallel Streams
//
// Quick ASCII example (tier 4 of a jittered sequence):
//
//	┌─────┬─────┐
//	│  •  │   • │
//	├─────┼─────┤
//	│ •   │  •  │
//	└─────┴─────┘
//
// represents one sample per quadrant, each jittered inside its cell.
//
//	go get github.com/katalvlaran/stratify
package stratify
