// source: original_source/src/minesweeper.h,minesweeper.cc (MineSweeper)

// Package mineboard implements the board oracle and hint oracle the solver
// consumes: a fixed minefield with cached neighbour counts, input parsing
// for the stdin board format, and random minefield generation.
package mineboard

import "github.com/osykora/mineseeker/internal/solver"

// Board is a fixed rectangular minefield. It must be closed with Close
// before being handed to the solver; Close computes and caches the
// neighbour mine count for every cell, mirroring CloseMineField in the
// original implementation.
type Board struct {
	width, height int
	mines         []bool
	counts        []int
	numMines      int
	closed        bool
}

// New allocates an empty width x height board with no mines placed.
func New(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic("mineboard: non-positive dimension")
	}
	return &Board{
		width:  width,
		height: height,
		mines:  make([]bool, width*height),
	}
}

func (b *Board) index(x, y int) int {
	return y*b.width + x
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// SetMine places a mine at (x, y). Must be called before Close.
func (b *Board) SetMine(x, y int) {
	if b.closed {
		panic("mineboard: SetMine after Close")
	}
	if !b.inBounds(x, y) {
		panic("mineboard: SetMine out of bounds")
	}
	i := b.index(x, y)
	if !b.mines[i] {
		b.mines[i] = true
		b.numMines++
	}
}

// Close fixes the minefield and computes the cached neighbour-count grid.
// It is idempotent.
func (b *Board) Close() {
	if b.closed {
		return
	}
	b.counts = make([]int, b.width*b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.mines[b.index(x, y)] {
				b.counts[b.index(x, y)] = -1
				continue
			}
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if b.inBounds(nx, ny) && b.mines[b.index(nx, ny)] {
						n++
					}
				}
			}
			b.counts[b.index(x, y)] = n
		}
	}
	b.closed = true
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) IsClosed() bool { return b.closed }

func (b *Board) IsMine(x, y int) bool {
	return b.mines[b.index(x, y)]
}

// Count returns the number of mines among the 8 neighbours of (x, y). The
// solver never calls this on a mined cell; mined cells carry the sentinel
// -1 in the cache.
func (b *Board) Count(x, y int) int {
	return b.counts[b.index(x, y)]
}

func (b *Board) NumMines() int { return b.numMines }

var _ solver.Board = (*Board)(nil)
