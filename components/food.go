package components

import "github.com/lixenwraith/vi-snake/core"

// Food is the single regular food cell
type Food struct {
	Position   core.Point
	EatenCount int
}

// NewFood creates unplaced food
func NewFood() *Food {
	return &Food{Position: core.Unset}
}

// SpecialState is the special food lifecycle stage
type SpecialState uint8

const (
	SpecialIdle SpecialState = iota
	SpecialActive
	SpecialExpired
)

func (s SpecialState) String() string {
	switch s {
	case SpecialIdle:
		return "Idle"
	case SpecialActive:
		return "Active"
	case SpecialExpired:
		return "Expired"
	default:
		return "Unknown"
	}
}

// SpecialFood is the bonus cell that appears on a schedule and expires
type SpecialFood struct {
	Position          core.Point
	State             SpecialState
	EatenCount        int
	SpawnThreshold    int // Regular food count interval between spawns
	Lifetime          int // Ticks on board, RemainingLifetime resets to this
	RemainingLifetime int

	// Regular food count that produced the last spawn, blocks a second spawn at the same count
	LastSpawnCount int
}

// NewSpecialFood creates an idle special food with the given schedule
func NewSpecialFood(threshold, lifetime int) *SpecialFood {
	return &SpecialFood{
		Position:          core.Unset,
		State:             SpecialIdle,
		SpawnThreshold:    threshold,
		Lifetime:          lifetime,
		RemainingLifetime: lifetime,
	}
}

// Active reports whether the special food is on the board
func (sf *SpecialFood) Active() bool {
	return sf.State == SpecialActive
}

// At reports whether the special food is active at p
func (sf *SpecialFood) At(p core.Point) bool {
	return sf.State == SpecialActive && sf.Position == p
}
