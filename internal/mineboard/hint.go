// source: original_source/src/mineseeker.h (is_dead_ collaborator pattern)

package mineboard

import "github.com/osykora/mineseeker/internal/solver"

// gridView is the subset of *solver.Engine the hint oracle needs: the grid
// dimensions and which cells are still HIDDEN from the solver's
// perspective. Neighbour counts come from the board, not from this view.
type gridView interface {
	Width() int
	Height() int
	StateAt(x, y int) solver.State
}

// HintOracle offers a guaranteed-safe cell by consulting both the fixed
// board (for ground truth) and the live solver grid (for what is still
// HIDDEN). It prefers a "boring" cell — safe and surrounded by zero mines —
// before falling back to any safe HIDDEN cell, and counts every call.
type HintOracle struct {
	board    *Board
	grid     gridView
	Requests int
}

// NewHintOracle builds a hint oracle over board, querying grid for
// visibility. grid is normally the *solver.Engine the oracle is attached
// to via Engine.SetHintOracle.
func NewHintOracle(board *Board, grid gridView) *HintOracle {
	return &HintOracle{board: board, grid: grid}
}

// SafeHint returns a HIDDEN, non-mine cell, preferring one with a zero
// neighbour count.
func (h *HintOracle) SafeHint() (x, y int, ok bool) {
	h.Requests++

	fallbackX, fallbackY, haveFallback := 0, 0, false

	for cy := 0; cy < h.grid.Height(); cy++ {
		for cx := 0; cx < h.grid.Width(); cx++ {
			if h.grid.StateAt(cx, cy) != solver.Hidden {
				continue
			}
			if h.board.IsMine(cx, cy) {
				continue
			}
			if h.board.Count(cx, cy) == 0 {
				return cx, cy, true
			}
			if !haveFallback {
				fallbackX, fallbackY, haveFallback = cx, cy, true
			}
		}
	}

	if haveFallback {
		return fallbackX, fallbackY, true
	}
	return 0, 0, false
}

var _ solver.HintOracle = (*HintOracle)(nil)
