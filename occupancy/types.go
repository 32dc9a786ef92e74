// SPDX-License-Identifier: MIT
// Package: stratify/occupancy
//
// types.go — the Strategy contract.

package occupancy

import "github.com/katalvlaran/stratify/core"

// Strategy records claimed cells and draws candidates that avoid them.
//
// Implementations are stateful and not goroutine-safe; each generator owns
// its own Strategy.
type Strategy interface {
	// Reinitialize discards all occupancy and sizes the structure for
	// capacity cells. Panics with ErrBadCapacity if capacity < 1.
	Reinitialize(capacity int)

	// Update marks every cell/slice containing p as occupied.
	// Panics with ErrCellOutOfRange if p maps outside the current capacity.
	Update(p core.Point)

	// Generate draws candidates inside sub-quadrant (xhalf, yhalf) of
	// coarse cell (i, j) at per-axis resolution res until one lands in
	// free cells, and returns it. It does not call Update.
	Generate(i, j, xhalf, yhalf int, res float64, src core.Source) core.Point
}
