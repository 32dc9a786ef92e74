package core

import "errors"

var (
	// ErrClosedBoundary indicates a jittered coordinate reached 1.0.
	// It signals a Source that is not half-open on its upper bound and is
	// raised as a panic value, never returned.
	ErrClosedBoundary = errors.New("core: coordinate reached the closed boundary 1.0")

	// ErrBadShape indicates a partition with fewer than one column or row.
	ErrBadShape = errors.New("core: shape must have at least one column and one row")

	// ErrOutOfUnitSquare indicates a point with a coordinate outside [0,1).
	ErrOutOfUnitSquare = errors.New("core: point outside the unit square")
)
