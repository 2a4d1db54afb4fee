// source: original_source/src/mineseeker_run.cc (RunSolverOnStdin, main); original_source/src/generate_mines.cc (CLI flags)

// Command mineseeker reads a board description from stdin, runs the
// constraint-propagation solver to completion, and prints the final grid
// to stdout.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/osykora/mineseeker/internal/config"
	"github.com/osykora/mineseeker/internal/mineboard"
	"github.com/osykora/mineseeker/internal/solver"
)

func main() {
	hintCap := flag.Int("hints", -1, "maximum number of hint-oracle requests (-1 for unbounded)")
	flag.Parse()

	solver.Log = config.NewLogger()

	board, err := mineboard.LoadFromReader(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	engine := solver.NewEngine(board)
	hints := mineboard.NewHintOracle(board, engine)
	engine.SetHintOracle(capOracle(hints, *hintCap))

	solved := engine.Solve()
	solver.Log.Debug("solve finished",
		slog.Bool("solved", solved),
		slog.Bool("dead", engine.IsDead()),
		slog.Int("hint_requests", engine.HintRequests()),
	)

	fmt.Print(engine.Render())
	os.Exit(0)
}

// cappedHintOracle wraps a solver.HintOracle and refuses every request once
// a fixed number have been made, so a run can be bounded for
// experimentation without changing the engine itself.
type cappedHintOracle struct {
	inner solver.HintOracle
	limit int
	used  int
}

func capOracle(inner solver.HintOracle, limit int) solver.HintOracle {
	if limit < 0 {
		return inner
	}
	return &cappedHintOracle{inner: inner, limit: limit}
}

func (c *cappedHintOracle) SafeHint() (x, y int, ok bool) {
	if c.used >= c.limit {
		return 0, 0, false
	}
	c.used++
	return c.inner.SafeHint()
}
