package navigation

import "github.com/lixenwraith/vi-snake/core"

// Obstacles is a per-cell blocked mask over a grid
type Obstacles struct {
	grid    core.Grid
	blocked []bool
}

// NewObstacles marks the given cells blocked, cells off the board are ignored
func NewObstacles(grid core.Grid, cells ...core.Point) *Obstacles {
	o := &Obstacles{
		grid:    grid,
		blocked: make([]bool, grid.Cells()),
	}
	for _, c := range cells {
		o.Block(c)
	}
	return o
}

// Block marks p as blocked
func (o *Obstacles) Block(p core.Point) {
	if o.grid.Contains(p) {
		o.blocked[o.grid.Index(p)] = true
	}
}

// Blocked reports whether p is blocked
func (o *Obstacles) Blocked(p core.Point) bool {
	return o.grid.Contains(p) && o.blocked[o.grid.Index(p)]
}

// Grid returns the grid the mask covers
func (o *Obstacles) Grid() core.Grid {
	return o.grid
}
