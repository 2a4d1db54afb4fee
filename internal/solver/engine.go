// source: original_source/src/mineseeker.h (MineSeeker); internal/mines/game.go (package-level Log pattern)

package solver

import (
	"log/slog"

	"github.com/gammazero/deque"
)

// Log is the package-level diagnostic logger; it never drives control
// flow. Front-ends replace it with a configured logger before running the
// solver. The engine itself writes nothing to it: individual deductions
// and propagation steps are not logged.
var Log *slog.Logger = slog.Default()

// point is a grid coordinate.
type point struct {
	x, y int
}

// pairPoint is a directed pair of coordinates queued for pairwise
// consistency: from -> to.
type pairPoint struct {
	from, to point
}

// Engine is the constraint-propagation solver: it owns a grid, drains the
// three propagation queues, and consults the board and hint oracles.
type Engine struct {
	grid  *grid
	board Board
	hints HintOracle

	uncoverQ deque.Deque[point]
	updateQ  deque.Deque[point]
	pairQ    deque.Deque[pairPoint]

	dead         bool
	hintRequests int
}

// NewEngine constructs an Engine over a closed board. Every border cell has
// its node filter run once, so corner cells end up with 8 admissible
// configurations, edge cells with 32, and interior cells keep all 256.
func NewEngine(board Board) *Engine {
	if !board.IsClosed() {
		panic(AssertionError{"NewEngine: board is not closed"})
	}
	e := &Engine{
		grid:  newGrid(board.Width(), board.Height()),
		board: board,
	}
	w, h := board.Width(), board.Height()
	for x := 0; x < w; x++ {
		e.updateConfigurationsAt(x, 0)
		if h > 1 {
			e.updateConfigurationsAt(x, h-1)
		}
	}
	for y := 1; y < h-1; y++ {
		e.updateConfigurationsAt(0, y)
		if w > 1 {
			e.updateConfigurationsAt(w-1, y)
		}
	}
	return e
}

// SetHintOracle attaches the hint oracle. Split from NewEngine because a
// realistic HintOracle implementation typically needs to observe this same
// Engine's cell states to decide what to offer, which would otherwise be a
// construction cycle.
func (e *Engine) SetHintOracle(h HintOracle) {
	e.hints = h
}

// IsDead reports whether the engine uncovered a mine.
func (e *Engine) IsDead() bool {
	return e.dead
}

// HintRequests is the number of times the hint oracle has been consulted.
func (e *Engine) HintRequests() int {
	return e.hintRequests
}

// Width and Height report the grid dimensions.
func (e *Engine) Width() int  { return e.grid.width }
func (e *Engine) Height() int { return e.grid.height }

// StateAt exposes the visibility of a cell for introspection (debug
// rendering, tests).
func (e *Engine) StateAt(x, y int) State {
	return e.grid.at(x, y).state
}

// CountAt exposes the observed neighbour mine count of an Uncovered cell.
func (e *Engine) CountAt(x, y int) int {
	return e.grid.at(x, y).neighbourCount
}

// IsBoundAt reports whether the cell's admissible-configuration set has
// exactly one element left.
func (e *Engine) IsBoundAt(x, y int) bool {
	return e.grid.at(x, y).isBound()
}

// AdmissibleConfigurations returns the still-admissible configurations of
// the cell at (x, y), in ascending order. Intended for tests and debug
// introspection, mirroring the friend-test access the original test suite
// had into MineSeekerField::configurations_.
func (e *Engine) AdmissibleConfigurations(x, y int) []int {
	c := e.grid.at(x, y)
	var out []int
	for cfg := 0; cfg < numConfigurations; cfg++ {
		if c.configs.test(cfg) {
			out = append(out, cfg)
		}
	}
	return out
}

// TemporaryStatusAt exposes the transient occupancy counter, valid only
// while a pairwise-consistency call is in progress.
func (e *Engine) TemporaryStatusAt(x, y int) int {
	return e.grid.at(x, y).temporaryStatus
}

func (e *Engine) uncoverQueueLen() int { return e.uncoverQ.Len() }
func (e *Engine) updateQueueLen() int  { return e.updateQ.Len() }
func (e *Engine) pairQueueLen() int    { return e.pairQ.Len() }
