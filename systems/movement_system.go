package systems

import (
	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/core"
)

// MoveResult describes what a single movement step did
type MoveResult struct {
	Head       core.Point
	Heading    core.Direction
	AteFood    bool
	AteSpecial bool
	Collided   bool
}

// MovementSystem advances the snake one cell per tick on the torus
type MovementSystem struct {
	grid core.Grid
}

// NewMovementSystem creates a movement system for the grid
func NewMovementSystem(grid core.Grid) *MovementSystem {
	return &MovementSystem{grid: grid}
}

// Step resolves one queued turn, moves the head, applies growth and checks self collision
// Growth is applied before the collision check, a pickup and a fatal hit can share a tick
func (m *MovementSystem) Step(snake *components.Snake, food *components.Food, special *components.SpecialFood) MoveResult {
	snake.Heading = snake.Queue.Resolve(snake.Heading)

	head := m.grid.Step(snake.Head(), snake.Heading)
	snake.Prepend(head)

	res := MoveResult{Head: head, Heading: snake.Heading}
	switch {
	case head == food.Position:
		res.AteFood = true
	case special.At(head):
		res.AteSpecial = true
	default:
		snake.DropTail()
	}

	res.Collided = snake.HeadCollides()
	return res
}
