package constants

// Board
const (
	// TileCount is the default side length of the square toroidal board
	TileCount = 20

	// MinTileCount leaves room for the spawn margin on both sides of the snake
	MinTileCount = 2*SpawnMargin + 1

	// MaxTileCount bounds board memory and per-search work
	MaxTileCount = 256

	// SpawnMargin keeps the initial head away from the edges so the first moves do not wrap
	SpawnMargin = 4

	// InitialSnakeLength is the number of segments after reset
	InitialSnakeLength = 4
)

// Scoring
const (
	// FoodScore is awarded per regular food
	FoodScore = 10

	// SpecialFoodScore is five times the regular value
	SpecialFoodScore = 5 * FoodScore
)

// Special Food Schedule
const (
	// SpecialFoodRate spawns a special food on every Nth regular food eaten
	SpecialFoodRate = 5

	// SpecialFoodLifetimeTicks is the number of ticks a special food stays on the board
	SpecialFoodLifetimeTicks = 50
)

// Placement
const (
	// MaxPlacementAttempts bounds random draws before falling back to free-cell enumeration
	MaxPlacementAttempts = 32

	// DirectionQueueCapacity bounds pending turns, extra input is dropped
	DirectionQueueCapacity = 8
)
