// source: internal/mineboard/parse.go, random.go (LoadFromString, Random)

package mineboard_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osykora/mineseeker/internal/mineboard"
)

func TestLoadFromStringParsesBoard(t *testing.T) {
	input := "3 3\n2\n0 0\n2 2\n"

	b, err := mineboard.LoadFromString(input)
	require.NoError(t, err)

	assert.Equal(t, 3, b.Width())
	assert.Equal(t, 3, b.Height())
	assert.True(t, b.IsClosed())
	assert.Equal(t, 2, b.NumMines())
	assert.True(t, b.IsMine(0, 0))
	assert.True(t, b.IsMine(2, 2))
	assert.False(t, b.IsMine(1, 1))
	assert.Equal(t, 2, b.Count(1, 1))
	assert.Equal(t, 1, b.Count(1, 0))
}

func TestLoadFromStringRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"3\n",
		"3 3\n10\n0 0\n",
		"3 3\n1\n5 5\n",
		"0 3\n0\n",
	}
	for _, in := range cases {
		_, err := mineboard.LoadFromString(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestRandomAvoidsFirstClickNeighbourhood(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	b, err := mineboard.Random(10, 10, 20, 5, 5, r)
	require.NoError(t, err)

	assert.Equal(t, 20, b.NumMines())
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			assert.False(t, b.IsMine(5+dx, 5+dy))
		}
	}
}

func TestRandomRejectsTooManyMines(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	_, err := mineboard.Random(3, 3, 9, 1, 1, r)
	assert.Error(t, err)
}
