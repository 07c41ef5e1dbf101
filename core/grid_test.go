package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridStepWraps(t *testing.T) {
	g := NewGrid(20)

	tests := []struct {
		name string
		from Point
		dir  Direction
		want Point
	}{
		{"right edge re-enters at zero", Point{19, 5}, DirRight, Point{0, 5}},
		{"left edge re-enters at last column", Point{0, 5}, DirLeft, Point{19, 5}},
		{"bottom edge re-enters at top", Point{7, 19}, DirDown, Point{7, 0}},
		{"top edge re-enters at bottom", Point{7, 0}, DirUp, Point{7, 19}},
		{"interior move", Point{10, 10}, DirUp, Point{10, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Step(tt.from, tt.dir))
		})
	}
}

func TestGridWrapNegative(t *testing.T) {
	g := NewGrid(10)
	assert.Equal(t, Point{9, 8}, g.Wrap(Point{-1, -12}))
	assert.Equal(t, Point{3, 0}, g.Wrap(Point{23, 10}))
}

func TestGridDistanceIsWrapAware(t *testing.T) {
	g := NewGrid(20)

	assert.Equal(t, 1, g.Distance(Point{0, 0}, Point{19, 0}))
	assert.Equal(t, 2, g.Distance(Point{0, 0}, Point{19, 19}))
	assert.Equal(t, 10, g.Distance(Point{0, 0}, Point{10, 0}))
	assert.Equal(t, 7, g.Distance(Point{2, 3}, Point{5, 7}))
}

func TestGridDirectionToNormalizesWrap(t *testing.T) {
	g := NewGrid(20)

	assert.Equal(t, DirLeft, g.DirectionTo(Point{0, 4}, Point{19, 4}))
	assert.Equal(t, DirRight, g.DirectionTo(Point{19, 4}, Point{0, 4}))
	assert.Equal(t, DirUp, g.DirectionTo(Point{4, 0}, Point{4, 19}))
	assert.Equal(t, DirDown, g.DirectionTo(Point{4, 19}, Point{4, 0}))
	assert.Equal(t, DirNone, g.DirectionTo(Point{4, 4}, Point{6, 4}))
}

func TestNeighborsInFollowsOrder(t *testing.T) {
	g := NewGrid(10)
	p := Point{X: 0, Y: 0}

	assert.Equal(t, [4]Point{{0, 9}, {1, 0}, {0, 1}, {9, 0}}, g.NeighborsIn(p, SearchDirections))
	assert.Equal(t, g.Neighbors(p), g.NeighborsIn(p, Directions))
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		assert.True(t, d.Opposite().IsReverseOf(d), d.String())
		assert.False(t, d.IsReverseOf(d), d.String())
	}
	assert.False(t, DirNone.IsReverseOf(DirNone))
}

func TestIndexRoundTrip(t *testing.T) {
	g := NewGrid(7)
	for i := 0; i < g.Cells(); i++ {
		p := g.At(i)
		assert.True(t, g.Contains(p))
		assert.Equal(t, i, g.Index(p))
	}
}
