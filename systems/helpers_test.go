package systems

import (
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/core"
)

// newTestPlacer returns a deterministic placer for tests
func newTestPlacer(tileCount int, seed uint64, attempts int) *Placer {
	return NewPlacer(core.NewGrid(tileCount), rand.New(rand.NewSource(seed)), attempts)
}
