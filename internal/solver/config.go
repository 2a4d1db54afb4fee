// source: original_source/src/mineseeker.cc (kMinePositionToConfigurationBit)

package solver

// relativeOffsets gives the (dx, dy) neighbour offset for each bit of a
// configuration, matching the fixed bit layout below:
//
//	bit  0  1  2  3  4  5  6  7
//	dx  -1  0  1 -1  1 -1  0  1
//	dy  -1 -1 -1  0  0  1  1  1
var relativeOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// relativeCoord returns the neighbour offset assigned to bit.
func relativeCoord(bit int) (dx, dy int) {
	o := relativeOffsets[bit]
	return o[0], o[1]
}

// bitForOffset is the inverse of relativeCoord. (0, 0) has no bit.
func bitForOffset(dx, dy int) int {
	for bit, o := range relativeOffsets {
		if o[0] == dx && o[1] == dy {
			return bit
		}
	}
	panic(AssertionError{"bitForOffset: (0, 0) has no configuration bit"})
}

// hasMineAt reports whether configuration c places a mine at offset (dx, dy).
func hasMineAt(c int, dx, dy int) bool {
	bit := bitForOffset(dx, dy)
	return c&(1<<uint(bit)) != 0
}

// popcount returns the number of mines placed by configuration c.
func popcount(c int) int {
	n := 0
	for c != 0 {
		n += c & 1
		c >>= 1
	}
	return n
}
