// source: original_source/src/mineseeker_run.cc (RunSolverOnStdin)

package solver

// isSolved reports whether the run has reached a terminal state: either
// dead, or every cell has left the HIDDEN state.
func (e *Engine) isSolved() bool {
	if e.dead {
		return true
	}
	for i := range e.grid.cells {
		if e.grid.cells[i].state == Hidden {
			return false
		}
	}
	return true
}

// Solve seeds the run with one safe-hint uncover and drives solveStep to a
// fixed point. It returns true iff every non-mine cell ended up Uncovered
// without ever detonating a mine.
func (e *Engine) Solve() bool {
	x, y, ok := e.requestHint()
	if !ok {
		return false
	}
	e.uncover(x, y)

	for !e.isSolved() {
		if !e.solveStep() {
			break
		}
	}

	return e.isSolved() && !e.dead
}
