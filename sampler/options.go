// SPDX-License-Identifier: MIT
// Package: stratify/sampler
//
// options.go — functional options shared by every generator constructor.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors PANIC on meaningless inputs (nil source, nil
//     logger, negative capacity). Generate itself never panics on valid input.
//   • Determinism is explicit: randomness comes from WithSeed or WithSource.

package sampler

import (
	"log/slog"

	"github.com/katalvlaran/stratify/core"
)

// Option customizes a generator before its first draw.
type Option func(*config)

// WithSeed draws from a *math/rand.Rand seeded with seed.
// Seed 0 maps to defaultSeed so the zero value stays reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.src = rngFromSeed(seed)
	}
}

// WithSource draws from src. The generator takes exclusive ownership:
// sharing src with other generators requires external serialization.
// Panics on nil.
func WithSource(src core.Source) Option {
	if src == nil {
		panic("sampler: WithSource(nil)")
	}
	return func(c *config) {
		c.src = src
	}
}

// WithCapacity pre-sizes the sequence buffer for n points.
// It is a performance hint only and never changes the output.
// Panics if n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic("sampler: WithCapacity(n<0)")
	}
	return func(c *config) {
		c.capacity = n
	}
}

// WithLogger routes growth diagnostics (Debug level) to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("sampler: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
