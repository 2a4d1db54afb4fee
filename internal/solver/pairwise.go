// source: original_source/src/mineseeker_test.cc (TestTemporaryStatus, TestUpdatePairConsistency)

package solver

// pushConfigurationAt trials configuration cfg as if it were fixed at
// (x, y): for each of its 8 neighbour offsets that lies in-bounds, it pushes
// a mine or clear-area occupancy onto that cell's temporary status. It
// returns whether every one of those pushes was internally consistent; the
// caller must pop regardless of the result.
func (e *Engine) pushConfigurationAt(cfg, x, y int) bool {
	ok := true
	for bit := 0; bit < 8; bit++ {
		dx, dy := relativeCoord(bit)
		nx, ny := x+dx, y+dy
		if !e.grid.inBounds(nx, ny) {
			continue
		}
		n := e.grid.at(nx, ny)
		if hasMineAt(cfg, dx, dy) {
			if !n.pushTemporaryMine() {
				ok = false
			}
		} else {
			if !n.pushTemporaryClearArea() {
				ok = false
			}
		}
	}
	return ok
}

// popConfigurationAt is the exact inverse of pushConfigurationAt.
func (e *Engine) popConfigurationAt(cfg, x, y int) {
	for bit := 0; bit < 8; bit++ {
		dx, dy := relativeCoord(bit)
		nx, ny := x+dx, y+dy
		if !e.grid.inBounds(nx, ny) {
			continue
		}
		n := e.grid.at(nx, ny)
		if hasMineAt(cfg, dx, dy) {
			n.popTemporaryMine()
		} else {
			n.popTemporaryClearArea()
		}
	}
}

// updatePairConsistency eliminates configurations of (x1, y1) that admit no
// compatible configuration of (x2, y2), where compatibility is judged
// through the cells the two 3x3 neighbourhoods share.
func (e *Engine) updatePairConsistency(x1, y1, x2, y2 int) {
	if !e.grid.inBounds(x1, y1) || !e.grid.inBounds(x2, y2) {
		return
	}
	if e.grid.at(x1, y1).state != Uncovered || e.grid.at(x2, y2).state != Uncovered {
		return
	}
	if e.grid.at(x1, y1).isBound() {
		return
	}
	if abs(x2-x1) > 2 || abs(y2-y1) > 2 {
		return
	}

	c1cell := e.grid.at(x1, y1)
	removed := false

	for cfg1 := 0; cfg1 < numConfigurations; cfg1++ {
		if !c1cell.configs.test(cfg1) {
			continue
		}
		ok1 := e.pushConfigurationAt(cfg1, x1, y1)

		compatible := false
		for cfg2 := 0; cfg2 < numConfigurations; cfg2++ {
			if !e.grid.at(x2, y2).configs.test(cfg2) {
				continue
			}
			ok2 := e.pushConfigurationAt(cfg2, x2, y2)
			e.popConfigurationAt(cfg2, x2, y2)
			if ok1 && ok2 {
				compatible = true
				break
			}
		}

		e.popConfigurationAt(cfg1, x1, y1)

		if !compatible {
			c1cell.configs.clear(cfg1)
			removed = true
		}
	}

	if removed {
		e.updateConfigurationsAt(x1, y1)
		e.updateNeighboursAt(x1, y1)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
