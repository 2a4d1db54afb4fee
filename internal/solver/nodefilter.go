// source: original_source/src/mineseeker.cc (MineSeeker::UpdateConfigurationsAtPoint, implied)

package solver

// updateConfigurationsAt is the node filter: it removes every candidate
// configuration of (x, y) that disagrees with a committed neighbour or
// whose popcount does not match the observed neighbour count.
func (e *Engine) updateConfigurationsAt(x, y int) {
	if !e.grid.inBounds(x, y) {
		panic(AssertionError{"updateConfigurationsAt: out of bounds"})
	}
	c := e.grid.at(x, y)
	removed := false

	for cfg := 0; cfg < numConfigurations; cfg++ {
		if !c.configs.test(cfg) {
			continue
		}
		if c.state == Uncovered && c.neighbourCount != popcount(cfg) {
			c.configs.clear(cfg)
			removed = true
			continue
		}
		ok := true
		for bit := 0; bit < 8; bit++ {
			dx, dy := relativeCoord(bit)
			s := e.grid.stateAt(x+dx, y+dy)
			mine := hasMineAt(cfg, dx, dy)
			if s == Hidden {
				continue
			}
			if mine != (s == Mine) {
				ok = false
				break
			}
		}
		if !ok {
			c.configs.clear(cfg)
			removed = true
		}
	}

	if c.configs.isEmpty() {
		panic(AssertionError{"updateConfigurationsAt: candidate mask emptied"})
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

	if removed {
		e.updateNeighboursAt(x, y)
	}
}
