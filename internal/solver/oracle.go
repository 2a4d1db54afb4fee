// source: original_source/src/minesweeper.h (MineSweeper)

package solver

// Board is the read-only oracle the engine queries for ground truth. It
// must be closed (mine positions fixed, neighbour counts computed) before
// being handed to NewEngine.
type Board interface {
	Width() int
	Height() int
	IsClosed() bool
	IsMine(x, y int) bool
	// Count returns the number of mines among the 8 neighbours of (x, y).
	// The engine never calls Count on a mined cell.
	Count(x, y int) int
	NumMines() int
}

// HintOracle supplies a guaranteed-safe cell when propagation alone cannot
// make progress. Every call, successful or not, counts against the
// engine's hint budget.
type HintOracle interface {
	// SafeHint returns a currently HIDDEN, non-mine cell, or ok == false if
	// none can be offered.
	SafeHint() (x, y int, ok bool)
}
