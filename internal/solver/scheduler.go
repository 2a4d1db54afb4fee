// source: original_source/src/mineseeker_test.cc (TestUncoverFieldWithMine, TestUncoverFieldWithNoMine)

package solver

// uncover reveals a HIDDEN cell by querying the board oracle. A mine kills
// the run; a safe reveal binds a zero-count cell to configuration 0 and
// floods its neighbours onto uncoverQ, or otherwise narrows its candidate
// mask with the node filter. Either way the cell's own neighbours are
// scheduled for re-evaluation.
func (e *Engine) uncover(x, y int) bool {
	c := e.grid.at(x, y)
	if c.state != Hidden {
		panic(AssertionError{"uncover: cell is not HIDDEN"})
	}

	if e.board.IsMine(x, y) {
		c.state = Mine
		e.dead = true
		return false
	}

	c.state = Uncovered
	c.neighbourCount = e.board.Count(x, y)

	if c.neighbourCount == 0 {
		c.setConfiguration(0)
		for bit := 0; bit < 8; bit++ {
			dx, dy := relativeCoord(bit)
			nx, ny := x+dx, y+dy
			if e.grid.inBounds(nx, ny) && e.grid.at(nx, ny).state == Hidden {
				e.uncoverQ.PushBack(point{nx, ny})
			}
		}
	} else {
		e.updateConfigurationsAt(x, y)
	}

	e.queueNeighboursForUpdate(x, y)
	return true
}

// solveStep pops and acts on exactly one task from the highest-priority
// non-empty queue, or consults the hint oracle when all three are empty.
// It returns true if any work was performed (including a stale, skipped
// queue entry counting as no-op progress), false only when every queue was
// empty and the hint oracle had nothing to offer.
func (e *Engine) solveStep() bool {
	if e.uncoverQ.Len() > 0 {
		p := e.uncoverQ.PopFront()
		if e.grid.at(p.x, p.y).state == Hidden {
			e.uncover(p.x, p.y)
		}
		return true
	}

	if e.updateQ.Len() > 0 {
		p := e.updateQ.PopFront()
		e.updateConfigurationsAt(p.x, p.y)
		return true
	}

	if e.pairQ.Len() > 0 {
		pp := e.pairQ.PopFront()
		e.updatePairConsistency(pp.from.x, pp.from.y, pp.to.x, pp.to.y)
		return true
	}

	x, y, ok := e.requestHint()
	if !ok {
		return false
	}
	e.uncover(x, y)
	return true
}

// requestHint asks the hint oracle for a safe cell, if one has been
// attached, and counts the request.
func (e *Engine) requestHint() (x, y int, ok bool) {
	if e.hints == nil {
		return 0, 0, false
	}
	e.hintRequests++
	return e.hints.SafeHint()
}
