// source: internal/mines/generate.go,generator.go (candidate list + swap-remove placement); game/game.go (Random)

package mineboard

import (
	"fmt"
	"math/rand/v2"
)

// Random builds a closed board of width x height with mines mines placed
// uniformly at random, keeping the 3x3 neighbourhood around (firstX,
// firstY) mine-free so the opening reveal is always safe. It takes an
// injected *rand.Rand rather than drawing on a package-global generator, so
// callers control reproducibility.
//
// Unlike the teacher's newSolvableGrid, this does not attempt to guarantee
// the resulting board is solvable by logical deduction alone: that
// requires the perturbation/regeneration loop built around mineSolve, which
// belongs to a different solving algorithm and is out of scope here.
func Random(width, height, mines, firstX, firstY int, r *rand.Rand) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("mineboard: non-positive dimension %dx%d", width, height)
	}
	if firstX < 0 || firstX >= width || firstY < 0 || firstY >= height {
		return nil, fmt.Errorf("mineboard: first click (%d, %d) out of bounds", firstX, firstY)
	}

	excluded := make(map[int]bool)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			x, y := firstX+dx, firstY+dy
			if x >= 0 && x < width && y >= 0 && y < height {
				excluded[y*width+x] = true
			}
		}
	}

	candidates := make([]int, 0, width*height-len(excluded))
	for i := 0; i < width*height; i++ {
		if !excluded[i] {
			candidates = append(candidates, i)
		}
	}
	if mines < 0 || mines > len(candidates) {
		return nil, fmt.Errorf("mineboard: cannot place %d mines on a %dx%d board with a cleared opening", mines, width, height)
	}

	b := New(width, height)
	for i := 0; i < mines; i++ {
		j := r.IntN(len(candidates))
		idx := candidates[j]
		candidates[j] = candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]
		b.SetMine(idx%width, idx/width)
	}
	b.Close()
	return b, nil
}
