package engine

import (
	"time"

	"github.com/lixenwraith/vi-snake/constants"
)

// Settings are the simulation parameters, all durations already converted to ticks where the
// simulation counts ticks
type Settings struct {
	TileCount            int
	TickInterval         time.Duration
	InitialLength        int
	SpawnMargin          int // Start head is kept this many cells away from the low edge and tileCount-margin at most
	SpecialThreshold     int // Regular pickups between special food spawns, 0 disables
	SpecialLifetime      int // Ticks
	MaxPlacementAttempts int
	QueueCapacity        int
}

// DefaultSettings returns the stock game parameters
func DefaultSettings() Settings {
	return Settings{
		TileCount:            constants.TileCount,
		TickInterval:         constants.TickInterval,
		InitialLength:        constants.InitialSnakeLength,
		SpawnMargin:          constants.SpawnMargin,
		SpecialThreshold:     constants.SpecialFoodRate,
		SpecialLifetime:      constants.SpecialFoodLifetimeTicks,
		MaxPlacementAttempts: constants.MaxPlacementAttempts,
		QueueCapacity:        constants.DirectionQueueCapacity,
	}
}
