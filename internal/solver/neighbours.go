// source: original_source/src/mineseeker.cc (MarkAsMine, whose switch is missing a break after HIDDEN in one revision)

package solver

// updateNeighboursAt intersects every admissible configuration of (x, y)
// to find neighbour offsets that are mines (or safe) in all of them, and
// schedules the resulting uncovers and mine markings.
func (e *Engine) updateNeighboursAt(x, y int) {
	c := e.grid.at(x, y)

	mustBeMine := 0xFF
	mustBeSafe := 0xFF
	for cfg := 0; cfg < numConfigurations; cfg++ {
		if !c.configs.test(cfg) {
			continue
		}
		mustBeMine &= cfg
		mustBeSafe &= (^cfg) & 0xFF
	}

	for bit := 0; bit < 8; bit++ {
		dx, dy := relativeCoord(bit)
		nx, ny := x+dx, y+dy
		if mustBeSafe&(1<<uint(bit)) != 0 {
			if e.grid.inBounds(nx, ny) && e.grid.at(nx, ny).state == Hidden {
				e.uncoverQ.PushBack(point{nx, ny})
			}
		}
		if mustBeMine&(1<<uint(bit)) != 0 {
			e.markAsMine(nx, ny)
		}
	}
}

// markAsMine transitions a HIDDEN cell to MINE and schedules its
// neighbours for re-evaluation. A cell already MINE is a no-op; any other
// state is a contract violation.
func (e *Engine) markAsMine(x, y int) {
	if !e.grid.inBounds(x, y) {
		panic(AssertionError{"markAsMine: out of bounds"})
	}
	c := e.grid.at(x, y)
	switch c.state {
	case Hidden:
		c.state = Mine
		e.queueNeighboursForUpdate(x, y)
	case Mine:
		// already known, nothing to do
	default:
		panic(AssertionError{"markAsMine: cell is neither HIDDEN nor MINE"})
	}
}

// queueNeighboursForUpdate enqueues the one-step neighbours of (x, y) that
// are Uncovered numbered cells onto updateQ, and every directed pair
// within a (+/-2, +/-2) box onto pairQ.
func (e *Engine) queueNeighboursForUpdate(x, y int) {
	for bit := 0; bit < 8; bit++ {
		dx, dy := relativeCoord(bit)
		nx, ny := x+dx, y+dy
		if !e.grid.inBounds(nx, ny) {
			continue
		}
		n := e.grid.at(nx, ny)
		if n.state == Uncovered && n.neighbourCount > 0 {
			e.updateQ.PushBack(point{nx, ny})
		}
	}

	for j := -2; j <= 2; j++ {
		for i := -2; i <= 2; i++ {
			if i == 0 && j == 0 {
				continue
			}
			here := point{x, y}
			there := point{x + i, y + j}
			e.pairQ.PushBack(pairPoint{here, there})
			e.pairQ.PushBack(pairPoint{there, here})
		}
	}
}
