package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/vi-snake/core"
)

// Snapshot is a read-only copy of the game for renderers and the auto pilot
// Nothing in it aliases simulation state
type Snapshot struct {
	RunID     uuid.UUID
	TileCount int
	Phase     GamePhase
	Tick      uint64
	Score     int
	Message   string
	AutoPilot bool
	Err       error

	Segments []core.Point // Head first
	Heading  core.Direction
	Pending  int // Queued turns not yet applied
	Food     core.Point

	SpecialFood      core.Point
	SpecialActive    bool
	SpecialRemaining int

	Models []RenderModel
}

// Grid returns the board geometry
func (s Snapshot) Grid() core.Grid {
	return core.NewGrid(s.TileCount)
}

// Head returns the snake head
func (s Snapshot) Head() core.Point {
	return s.Segments[0]
}

// Model returns the render model of the given kind
func (s Snapshot) Model(kind EntityKind) (RenderModel, bool) {
	for _, m := range s.Models {
		if m.Kind == kind {
			return m, true
		}
	}
	return RenderModel{}, false
}
