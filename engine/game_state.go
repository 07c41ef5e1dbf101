package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// GameState is the single mutable game value
// Reset replaces it wholesale, it is never partially carried across runs
type GameState struct {
	RunID        uuid.UUID
	TileCount    int
	Phase        GamePhase
	TickInterval time.Duration
	Tick         uint64

	Snake       *components.Snake
	Food        *components.Food
	SpecialFood *components.SpecialFood

	// Last terminal spawn failure, nil while the run is healthy
	Err error
}

// Grid returns the board geometry
func (gs *GameState) Grid() core.Grid {
	return core.NewGrid(gs.TileCount)
}

// Score is derived from the pickup counters
func (gs *GameState) Score() int {
	return gs.Food.EatenCount*constants.FoodScore + gs.SpecialFood.EatenCount*constants.SpecialFoodScore
}
