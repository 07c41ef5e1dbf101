package systems

import (
	"errors"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/core"
)

// ErrBoardFull is returned when no free cell remains for a spawn
var ErrBoardFull = errors.New("board full: no free cell")

// OccupiedFunc reports whether a cell is unavailable for placement
type OccupiedFunc func(p core.Point) bool

// Placer draws uniformly random free cells
// Tries a bounded number of random draws first, then enumerates free cells so a
// near-full board never loops
type Placer struct {
	grid        core.Grid
	rng         *rand.Rand
	maxAttempts int
}

// NewPlacer creates a placer for the grid, maxAttempts <= 0 skips straight to enumeration
func NewPlacer(grid core.Grid, rng *rand.Rand, maxAttempts int) *Placer {
	return &Placer{
		grid:        grid,
		rng:         rng,
		maxAttempts: maxAttempts,
	}
}

// Place returns a free cell or ErrBoardFull
func (p *Placer) Place(occupied OccupiedFunc) (core.Point, error) {
	for i := 0; i < p.maxAttempts; i++ {
		c := core.Point{X: p.rng.Intn(p.grid.TileCount), Y: p.rng.Intn(p.grid.TileCount)}
		if !occupied(c) {
			return c, nil
		}
	}

	free := p.FreeCells(occupied)
	if len(free) == 0 {
		return core.Unset, ErrBoardFull
	}
	return free[p.rng.Intn(len(free))], nil
}

// FreeCells enumerates unoccupied cells in row-major order
func (p *Placer) FreeCells(occupied OccupiedFunc) []core.Point {
	free := make([]core.Point, 0, p.grid.Cells())
	for idx := 0; idx < p.grid.Cells(); idx++ {
		c := p.grid.At(idx)
		if !occupied(c) {
			free = append(free, c)
		}
	}
	return free
}

// Intn exposes the placer's random source for start placement
func (p *Placer) Intn(n int) int {
	return p.rng.Intn(n)
}
