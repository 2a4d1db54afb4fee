// source: original_source/src/mineseeker.h,mineseeker.cc (MineSeekerField)

package solver

// State is a cell's visibility from the solver's point of view.
type State int

const (
	// Hidden is the initial state: unrevealed, candidate mine or candidate
	// clear cell.
	Hidden State = iota
	// Mine is a cell the solver has deduced (or been told) contains a mine.
	// Terminal.
	Mine
	// Uncovered is a cell revealed safe, with a known neighbour mine count.
	Uncovered
)

// cell is the per-position record maintained by the grid: its visibility,
// its 256-configuration candidate mask, its observed neighbour mine count
// (meaningful only when Uncovered), and a transient occupancy counter used
// only inside updatePairConsistency.
type cell struct {
	state           State
	configs         configMask
	neighbourCount  int
	temporaryStatus int
}

func newCell() cell {
	return cell{state: Hidden, configs: fullConfigMask()}
}

// isPossibleConfiguration reports whether c is still an admissible
// configuration for this cell.
func (c *cell) isPossibleConfiguration(cfg int) bool {
	return c.configs.test(cfg)
}

// isPossibleMine reports whether this cell could contain a mine, i.e. it
// has not been confirmed safe. The later of the two revisions the source
// carried (state != UNCOVERED, not state != MINE) is the one this
// implements.
func (c *cell) isPossibleMine() bool {
	return c.state != Uncovered
}

// isBound reports whether exactly one configuration remains admissible.
func (c *cell) isBound() bool {
	return c.configs.popcount() == 1
}

// removeConfiguration clears bit cfg of the candidate mask. Idempotent.
func (c *cell) removeConfiguration(cfg int) {
	c.configs.clear(cfg)
}

// setConfiguration narrows the candidate mask down to exactly cfg. cfg must
// already be admissible.
func (c *cell) setConfiguration(cfg int) {
	if !c.configs.test(cfg) {
		panic(AssertionError{"setConfiguration: configuration not admissible"})
	}
	var m configMask
	m.set(cfg)
	c.configs = m
}

// pushTemporaryMine records that a trial configuration wants this cell to
// hold a mine. Returns true iff the prior occupancy was compatible with
// that (>= 0); the counter is incremented regardless, so every push must be
// matched by a pop even when it reports a conflict.
func (c *cell) pushTemporaryMine() bool {
	ok := c.temporaryStatus >= 0
	c.temporaryStatus++
	return ok
}

// popTemporaryMine is the exact inverse of pushTemporaryMine.
func (c *cell) popTemporaryMine() {
	c.temporaryStatus--
}

// pushTemporaryClearArea records that a trial configuration wants this cell
// to be mine-free. Returns true iff the prior occupancy was compatible with
// that (<= 0); the counter is decremented regardless.
func (c *cell) pushTemporaryClearArea() bool {
	ok := c.temporaryStatus <= 0
	c.temporaryStatus--
	return ok
}

// popTemporaryClearArea is the exact inverse of pushTemporaryClearArea.
func (c *cell) popTemporaryClearArea() {
	c.temporaryStatus++
}

// resetTemporaryStatus zeroes the occupancy counter.
func (c *cell) resetTemporaryStatus() {
	c.temporaryStatus = 0
}
