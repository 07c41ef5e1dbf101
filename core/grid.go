package core

// Grid is a square toroidal board of TileCount x TileCount cells
// Every coordinate operation wraps each axis independently, nothing is clamped
type Grid struct {
	TileCount int
}

// NewGrid creates a grid with the given side length
func NewGrid(tileCount int) Grid {
	return Grid{TileCount: tileCount}
}

// Cells returns the number of cells on the board
func (g Grid) Cells() int {
	return g.TileCount * g.TileCount
}

// Contains reports whether p lies inside the canonical range [0, TileCount)
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.TileCount && p.Y < g.TileCount
}

// Wrap normalizes p into the canonical range
func (g Grid) Wrap(p Point) Point {
	return Point{X: g.wrapAxis(p.X), Y: g.wrapAxis(p.Y)}
}

func (g Grid) wrapAxis(v int) int {
	v %= g.TileCount
	if v < 0 {
		v += g.TileCount
	}
	return v
}

// Step moves p one cell along d with wrap-around
func (g Grid) Step(p Point, d Direction) Point {
	return g.Wrap(p.Add(d))
}

// Neighbors returns the four wrapped neighbors of p in Directions order
func (g Grid) Neighbors(p Point) [4]Point {
	var n [4]Point
	for i, d := range Directions {
		n[i] = g.Step(p, d)
	}
	return n
}

// NeighborsIn returns the four wrapped neighbors of p in the given order
func (g Grid) NeighborsIn(p Point, order [4]Direction) [4]Point {
	var n [4]Point
	for i, d := range order {
		n[i] = g.Step(p, d)
	}
	return n
}

// Index flattens a canonical point to y*TileCount+x
func (g Grid) Index(p Point) int {
	return p.Y*g.TileCount + p.X
}

// At reverses Index
func (g Grid) At(idx int) Point {
	return Point{X: idx % g.TileCount, Y: idx / g.TileCount}
}

// AxisDistance returns the shorter of the direct and wrapped distance on one axis
func (g Grid) AxisDistance(a, b int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	if alt := g.TileCount - d; alt < d {
		return alt
	}
	return d
}

// Distance is the wrap-aware Manhattan distance between two cells
func (g Grid) Distance(a, b Point) int {
	return g.AxisDistance(a.X, b.X) + g.AxisDistance(a.Y, b.Y)
}

// DirectionTo returns the heading that moves from one cell to an adjacent cell
// Wrap-induced deltas of magnitude TileCount-1 are normalized to a single step
func (g Grid) DirectionTo(from, to Point) Direction {
	dx := to.X - from.X
	dy := to.Y - from.Y
	return DirectionFromDelta(g.normalizeDelta(dx), g.normalizeDelta(dy))
}

func (g Grid) normalizeDelta(d int) int {
	switch {
	case d > 1:
		return d - g.TileCount
	case d < -1:
		return d + g.TileCount
	default:
		return d
	}
}
