// source: original_source/src/mineseeker_run.cc (ReadStdinToString)

package mineboard

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LoadFromReader parses the bit-exact board description:
//
//	<width> <height>
//	<num_mines>
//	<x_1> <y_1>
//	...
//
// and returns a closed Board ready for the solver. A malformed stream is
// reported as a returned error rather than a panic, since it originates
// outside the program.
func LoadFromReader(r io.Reader) (*Board, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func(what string) (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, fmt.Errorf("mineboard: reading %s: %w", what, err)
			}
			return 0, fmt.Errorf("mineboard: unexpected end of input reading %s", what)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("mineboard: %s: %q is not an integer", what, sc.Text())
		}
		return v, nil
	}

	width, err := next("width")
	if err != nil {
		return nil, err
	}
	height, err := next("height")
	if err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("mineboard: width and height must be positive, got %d x %d", width, height)
	}

	numMines, err := next("mine count")
	if err != nil {
		return nil, err
	}
	if numMines < 0 || numMines > width*height {
		return nil, fmt.Errorf("mineboard: mine count %d out of range for %dx%d board", numMines, width, height)
	}

	b := New(width, height)
	for i := 0; i < numMines; i++ {
		x, err := next("mine x coordinate")
		if err != nil {
			return nil, err
		}
		y, err := next("mine y coordinate")
		if err != nil {
			return nil, err
		}
		if x < 0 || x >= width || y < 0 || y >= height {
			return nil, fmt.Errorf("mineboard: mine coordinate (%d, %d) out of bounds for %dx%d board", x, y, width, height)
		}
		b.SetMine(x, y)
	}

	b.Close()
	return b, nil
}

// LoadFromString is a convenience wrapper around LoadFromReader.
func LoadFromString(input string) (*Board, error) {
	return LoadFromReader(strings.NewReader(input))
}
