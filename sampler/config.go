// SPDX-License-Identifier: MIT
// Package: stratify/sampler
//
// config.go — resolved configuration and deterministic defaults.
//
// Defaults:
//   • src      = rand.New(rand.NewSource(defaultSeed))
//   • capacity = 0   (buffers grow on demand)
//   • logger   = slog discard handler

package sampler

import (
	"log/slog"

	"github.com/katalvlaran/stratify/core"
)

// config aggregates all generator knobs. It is consumed once by a
// constructor and never shared between generators.
type config struct {
	src      core.Source
	capacity int
	logger   *slog.Logger
}

// newConfig applies opts in order (last wins) and fills unset fields with
// defaults afterwards, so a later WithSeed is never shadowed by a default.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.src == nil {
		cfg.src = rngFromSeed(0)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}

	return cfg
}
