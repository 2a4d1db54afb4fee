// source: internal/mineboard/hint.go (HintOracle)

package mineboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osykora/mineseeker/internal/mineboard"
	"github.com/osykora/mineseeker/internal/solver"
)

func TestHintOraclePrefersBoringCell(t *testing.T) {
	board, err := mineboard.LoadFromString("3 3\n1\n2 2\n")
	require.NoError(t, err)

	engine := solver.NewEngine(board)
	hints := mineboard.NewHintOracle(board, engine)
	engine.SetHintOracle(hints)

	x, y, ok := hints.SafeHint()
	require.True(t, ok)
	assert.Equal(t, 0, board.Count(x, y))
	assert.Equal(t, 1, hints.Requests)
}

func TestHintOracleExhausted(t *testing.T) {
	board, err := mineboard.LoadFromString("1 1\n0\n")
	require.NoError(t, err)

	engine := solver.NewEngine(board)
	hints := mineboard.NewHintOracle(board, engine)
	engine.SetHintOracle(hints)

	solved := engine.Solve()
	assert.True(t, solved)

	_, _, ok := hints.SafeHint()
	assert.False(t, ok)
}
