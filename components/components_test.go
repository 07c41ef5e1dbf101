package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-snake/core"
)

func TestDirectionQueueEnqueueDeduplicates(t *testing.T) {
	q := NewDirectionQueue(0)

	assert.True(t, q.Enqueue(core.DirLeft))
	assert.False(t, q.Enqueue(core.DirLeft), "key repeat must not grow the queue")
	assert.True(t, q.Enqueue(core.DirUp))
	assert.True(t, q.Enqueue(core.DirLeft), "only the last entry is compared")
	assert.False(t, q.Enqueue(core.DirNone))

	assert.Equal(t, []core.Direction{core.DirLeft, core.DirUp, core.DirLeft}, q.Pending())
}

func TestDirectionQueueCapacity(t *testing.T) {
	q := NewDirectionQueue(2)

	require.True(t, q.Enqueue(core.DirLeft))
	require.True(t, q.Enqueue(core.DirUp))
	assert.False(t, q.Enqueue(core.DirRight))
	assert.Equal(t, 2, q.Len())
}

func TestDirectionQueueResolve(t *testing.T) {
	tests := []struct {
		name      string
		current   core.Direction
		queued    []core.Direction
		want      core.Direction
		remaining int
	}{
		{"empty keeps heading", core.DirUp, nil, core.DirUp, 0},
		{"perpendicular turn applies", core.DirUp, []core.Direction{core.DirLeft}, core.DirLeft, 0},
		{"reversal is discarded", core.DirUp, []core.Direction{core.DirDown}, core.DirUp, 0},
		{"one entry per tick", core.DirUp, []core.Direction{core.DirLeft, core.DirUp}, core.DirLeft, 1},
		{"follow-up reversal dropped early", core.DirUp, []core.Direction{core.DirLeft, core.DirRight}, core.DirLeft, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewDirectionQueue(0)
			for _, d := range tt.queued {
				q.Enqueue(d)
			}
			assert.Equal(t, tt.want, q.Resolve(tt.current))
			assert.Equal(t, tt.remaining, q.Len())
		})
	}
}

func TestDirectionQueueNeverAppliesReversal(t *testing.T) {
	q := NewDirectionQueue(0)
	current := core.DirRight
	inputs := []core.Direction{
		core.DirLeft, core.DirUp, core.DirDown, core.DirDown, core.DirRight,
		core.DirLeft, core.DirUp, core.DirRight, core.DirLeft, core.DirDown,
	}
	for _, d := range inputs {
		q.Enqueue(d)
	}

	for q.Len() > 0 {
		next := q.Resolve(current)
		assert.False(t, next.IsReverseOf(current), "%s applied over %s", next, current)
		current = next
	}
}

func TestDirectionQueueClear(t *testing.T) {
	q := NewDirectionQueue(4)
	q.Enqueue(core.DirUp)
	q.Enqueue(core.DirLeft)
	q.Clear()

	assert.Equal(t, 0, q.Len())
	_, ok := q.Last()
	assert.False(t, ok)
}

func TestNewSnakeTrailsBehindHeading(t *testing.T) {
	grid := core.NewGrid(20)
	s := NewSnake(grid, core.Point{X: 10, Y: 10}, core.DirUp, 4, 0)

	want := []core.Point{{X: 10, Y: 10}, {X: 10, Y: 11}, {X: 10, Y: 12}, {X: 10, Y: 13}}
	assert.Equal(t, want, s.Segments)
	assert.Equal(t, core.Point{X: 10, Y: 13}, s.Tail())
	assert.Equal(t, core.DirUp, s.Heading)
}

func TestNewSnakeWrapsBody(t *testing.T) {
	grid := core.NewGrid(10)
	s := NewSnake(grid, core.Point{X: 1, Y: 0}, core.DirRight, 3, 0)

	assert.Equal(t, []core.Point{{X: 1, Y: 0}, {X: 0, Y: 0}, {X: 9, Y: 0}}, s.Segments)
}

func TestSnakePrependAndDropTail(t *testing.T) {
	grid := core.NewGrid(20)
	s := NewSnake(grid, core.Point{X: 5, Y: 5}, core.DirRight, 3, 0)

	s.Prepend(core.Point{X: 6, Y: 5})
	require.Equal(t, 4, s.Len())
	assert.Equal(t, core.Point{X: 6, Y: 5}, s.Head())

	s.DropTail()
	assert.Equal(t, []core.Point{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}}, s.Segments)
	assert.False(t, s.HeadCollides())
}

func TestSnakeHeadCollides(t *testing.T) {
	s := &Snake{Segments: []core.Point{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 3, Y: 3}, {X: 2, Y: 3}, {X: 2, Y: 2}}}
	assert.True(t, s.HeadCollides())
	assert.True(t, s.Occupies(core.Point{X: 3, Y: 3}))
	assert.False(t, s.Occupies(core.Point{X: 4, Y: 4}))
}

func TestSpecialFoodAt(t *testing.T) {
	sf := NewSpecialFood(5, 50)
	p := core.Point{X: 3, Y: 4}

	assert.False(t, sf.Active())
	assert.True(t, sf.Position.IsUnset())

	sf.Position = p
	sf.State = SpecialActive
	assert.True(t, sf.At(p))

	sf.State = SpecialExpired
	assert.False(t, sf.At(p))
	assert.Equal(t, "Expired", sf.State.String())
}
