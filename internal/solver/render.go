// source: original_source/src/mineseeker.cc (DebugString, implied)

package solver

import "strings"

// Render produces the final grid in the bit-exact output format: one line
// per row, '.' for HIDDEN, '*' for MINE, a space for an UNCOVERED cell with
// count 0, and a digit 1..8 otherwise.
func (e *Engine) Render() string {
	var b strings.Builder
	for y := 0; y < e.grid.height; y++ {
		for x := 0; x < e.grid.width; x++ {
			c := e.grid.at(x, y)
			switch c.state {
			case Hidden:
				b.WriteByte('.')
			case Mine:
				b.WriteByte('*')
			case Uncovered:
				if c.neighbourCount == 0 {
					b.WriteByte(' ')
				} else {
					b.WriteByte(byte('0' + c.neighbourCount))
				}
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
