// SPDX-License-Identifier: MIT
// Package: stratify/occupancy
//
// errors.go — sentinel errors. Both are raised as panic values wrapped with
// context via %w; callers that recover can branch with errors.Is.

package occupancy

import "errors"

// ErrCellOutOfRange indicates a point mapped to a cell index outside the
// current capacity (including any Update before the first Reinitialize).
var ErrCellOutOfRange = errors.New("occupancy: cell index out of range")

// ErrBadCapacity indicates Reinitialize was called with capacity < 1.
var ErrBadCapacity = errors.New("occupancy: capacity must be positive")
