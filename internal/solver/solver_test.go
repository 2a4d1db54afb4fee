// source: original_source/src/mineseeker_test.cc (MineSeekerTest fixture and cases)

package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBoard is a minimal solver.Board used only by these tests, so the
// fixture does not need to reach into internal/mineboard (which itself
// imports this package).
type testBoard struct {
	width, height int
	mines         map[point]bool
}

func newTestBoard(width, height int, mineCoords [][2]int) *testBoard {
	b := &testBoard{width: width, height: height, mines: make(map[point]bool)}
	for _, m := range mineCoords {
		b.mines[point{m[0], m[1]}] = true
	}
	return b
}

func (b *testBoard) Width() int     { return b.width }
func (b *testBoard) Height() int    { return b.height }
func (b *testBoard) IsClosed() bool { return true }
func (b *testBoard) IsMine(x, y int) bool {
	return b.mines[point{x, y}]
}
func (b *testBoard) Count(x, y int) int {
	if b.mines[point{x, y}] {
		return -1
	}
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if b.mines[point{x + dx, y + dy}] {
				n++
			}
		}
	}
	return n
}
func (b *testBoard) NumMines() int { return len(b.mines) }

// fixtureMines is the 13-mine, 30x20 layout used throughout
// mineseeker_test.cc.
var fixtureMines = [][2]int{
	{1, 1}, {0, 0}, {10, 15}, {3, 8}, {20, 19}, {29, 0},
	{15, 0}, {15, 1}, {15, 2}, {9, 19}, {9, 17}, {10, 17}, {11, 17},
}

func newFixtureEngine() *Engine {
	board := newTestBoard(30, 20, fixtureMines)
	return NewEngine(board)
}

func assertConfigSet(t *testing.T, e *Engine, x, y int, want []int) {
	t.Helper()
	assert.ElementsMatch(t, want, e.AdmissibleConfigurations(x, y))
}

func TestCreateBoundaryConfigurationCounts(t *testing.T) {
	e := newFixtureEngine()

	assert.Len(t, e.AdmissibleConfigurations(0, 0), 8, "corner")
	assert.Len(t, e.AdmissibleConfigurations(29, 0), 8, "corner")
	assert.Len(t, e.AdmissibleConfigurations(0, 19), 8, "corner")
	assert.Len(t, e.AdmissibleConfigurations(29, 19), 8, "corner")

	assert.Len(t, e.AdmissibleConfigurations(5, 0), 32, "top edge")
	assert.Len(t, e.AdmissibleConfigurations(0, 5), 32, "left edge")

	assert.Len(t, e.AdmissibleConfigurations(10, 10), 256, "interior")
}

func TestAllowedConfigurationsInCorners(t *testing.T) {
	e := newFixtureEngine()

	assertConfigSet(t, e, 0, 0, []int{0, 16, 64, 80, 128, 144, 192, 208})
	assertConfigSet(t, e, 29, 19, []int{0, 1, 2, 3, 8, 9, 10, 11})
}

func TestUncoverFieldWithMine(t *testing.T) {
	e := newFixtureEngine()

	ok := e.uncover(0, 0)
	assert.False(t, ok)
	assert.True(t, e.IsDead())
	assert.Equal(t, Mine, e.StateAt(0, 0))

	solved := e.Solve()
	assert.False(t, solved)
}

func TestUncoverFieldWithNoMine(t *testing.T) {
	e := newFixtureEngine()

	e.uncover(1, 0)
	assert.Equal(t, 2, e.CountAt(1, 0))
	assert.Equal(t, 0, e.updateQueueLen())

	e.uncover(2, 0)
	assert.Equal(t, 1, e.CountAt(2, 0))
	assert.Equal(t, 1, e.updateQueueLen())
	assert.Equal(t, 0, e.uncoverQueueLen())

	e.uncover(10, 10)
	assert.Equal(t, 0, e.CountAt(10, 10))
	assert.Equal(t, 1, e.updateQueueLen())
	assert.Equal(t, 8, e.uncoverQueueLen())
}

func TestUpdateConfigurationsAtPoint(t *testing.T) {
	e := newFixtureEngine()

	e.uncover(1, 0)
	assert.Equal(t, 2, e.CountAt(1, 0))
	assertConfigSet(t, e, 1, 0,
		[]int{24, 40, 72, 136, 48, 80, 144, 96, 160, 192})

	e.markAsMine(0, 0)
	e.updateConfigurationsAt(1, 0)
	assertConfigSet(t, e, 1, 0, []int{24, 40, 72, 136})
}

func TestUpdateNeighborsAtPoint(t *testing.T) {
	e := newFixtureEngine()

	e.uncover(1, 0)
	e.uncover(2, 0)
	e.uncover(2, 1)
	e.uncover(2, 2)
	e.uncover(0, 1)

	e.updateConfigurationsAt(1, 0)

	require.True(t, e.IsBoundAt(1, 0))
}

func TestTemporaryStatus(t *testing.T) {
	e := newFixtureEngine()

	ok := e.pushConfigurationAt(7, 1, 1)
	assert.True(t, ok)

	want := [][3]int{
		{0, 0, 1}, {1, 0, 1}, {2, 0, 1},
		{0, 1, -1}, {1, 1, 0}, {2, 1, -1},
		{0, 2, -1}, {1, 2, -1}, {2, 2, -1},
	}
	for _, w := range want {
		assert.Equal(t, w[2], e.TemporaryStatusAt(w[0], w[1]),
			"status at (%d, %d)", w[0], w[1])
	}

	ok2 := e.pushConfigurationAt(87, 1, 1)
	assert.False(t, ok2)

	e.popConfigurationAt(87, 1, 1)
	e.popConfigurationAt(7, 1, 1)

	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			assert.Equal(t, 0, e.TemporaryStatusAt(x, y))
		}
	}
}

func TestUpdatePairConsistency(t *testing.T) {
	e := newFixtureEngine()

	e.uncover(0, 2)
	e.uncover(1, 2)
	e.updateConfigurationsAt(0, 2)
	e.updateConfigurationsAt(1, 2)

	e.updatePairConsistency(1, 2, 0, 2)

	assert.Len(t, e.AdmissibleConfigurations(0, 2), 4)
	assert.Len(t, e.AdmissibleConfigurations(1, 2), 4)

	before := e.uncoverQueueLen()
	e.updateNeighboursAt(1, 2)
	assert.Equal(t, before+3, e.uncoverQueueLen())
}

func TestSolveFindsEverySafeCell(t *testing.T) {
	e := newFixtureEngine()
	hints := &fixtureHintOracle{board: newTestBoard(30, 20, fixtureMines), engine: e}
	e.SetHintOracle(hints)

	solved := e.Solve()

	require.True(t, solved)
	assert.False(t, e.IsDead())

	for y := 0; y < e.Height(); y++ {
		for x := 0; x < e.Width(); x++ {
			if hints.board.IsMine(x, y) {
				assert.Equal(t, Mine, e.StateAt(x, y))
			} else {
				assert.Equal(t, Uncovered, e.StateAt(x, y))
			}
		}
	}
}

// fixtureHintOracle is a minimal HintOracle used only in tests, scanning
// for any HIDDEN non-mine cell.
type fixtureHintOracle struct {
	board  *testBoard
	engine *Engine
}

func (h *fixtureHintOracle) SafeHint() (x, y int, ok bool) {
	for cy := 0; cy < h.engine.Height(); cy++ {
		for cx := 0; cx < h.engine.Width(); cx++ {
			if h.engine.StateAt(cx, cy) == Hidden && !h.board.IsMine(cx, cy) {
				return cx, cy, true
			}
		}
	}
	return 0, 0, false
}
