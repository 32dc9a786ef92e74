package sampler

import "errors"

var (
	// ErrNilStrategy indicates NewMultiJittered received a nil occupancy.Strategy.
	ErrNilStrategy = errors.New("sampler: occupancy strategy is nil")

	// ErrUnknownKind indicates a Kind outside the built-in set.
	ErrUnknownKind = errors.New("sampler: unknown generator kind")

	// ErrBadSize indicates a negative point count or a stream count below one.
	ErrBadSize = errors.New("sampler: invalid size")
)
