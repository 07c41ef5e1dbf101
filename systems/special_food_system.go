package systems

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/core"
)

// SpecialEvent reports the special food transition taken during one update
type SpecialEvent uint8

const (
	SpecialEventNone SpecialEvent = iota
	SpecialEventSpawned
	SpecialEventExpired
	SpecialEventEaten
)

func (e SpecialEvent) String() string {
	switch e {
	case SpecialEventSpawned:
		return "Spawned"
	case SpecialEventExpired:
		return "Expired"
	case SpecialEventEaten:
		return "Eaten"
	default:
		return "None"
	}
}

// SpecialFoodSpawner drives the Idle -> Active -> Expired -> Idle lifecycle
type SpecialFoodSpawner struct {
	placer *Placer
}

// NewSpecialFoodSpawner creates a special food spawner backed by the placer
func NewSpecialFoodSpawner(placer *Placer) *SpecialFoodSpawner {
	return &SpecialFoodSpawner{placer: placer}
}

// Update advances the lifecycle by one tick
// Active food loses one tick of lifetime and expires at zero
// Idle food spawns when the regular count reaches a new positive multiple of the threshold
// A failed placement leaves the food idle and is retried on the next update
func (s *SpecialFoodSpawner) Update(sf *components.SpecialFood, food *components.Food, snake *components.Snake) (SpecialEvent, error) {
	switch sf.State {
	case components.SpecialActive:
		sf.RemainingLifetime--
		if sf.RemainingLifetime <= 0 {
			sf.Position = core.Unset
			sf.State = components.SpecialExpired
			return SpecialEventExpired, nil
		}
		return SpecialEventNone, nil

	case components.SpecialExpired:
		sf.State = components.SpecialIdle
	}

	if !s.due(sf, food) {
		return SpecialEventNone, nil
	}

	p, err := s.placer.Place(func(c core.Point) bool {
		return c == food.Position || snake.Occupies(c)
	})
	if err != nil {
		return SpecialEventNone, fmt.Errorf("special food spawn at count %d: %w", food.EatenCount, err)
	}

	sf.Position = p
	sf.State = components.SpecialActive
	sf.RemainingLifetime = sf.Lifetime
	sf.LastSpawnCount = food.EatenCount
	return SpecialEventSpawned, nil
}

func (s *SpecialFoodSpawner) due(sf *components.SpecialFood, food *components.Food) bool {
	if sf.SpawnThreshold <= 0 || sf.Lifetime <= 0 {
		return false
	}
	n := food.EatenCount
	return n > 0 && n%sf.SpawnThreshold == 0 && n != sf.LastSpawnCount
}

// Consume handles a pickup: clears the cell, restores the lifetime and counts the food
func (s *SpecialFoodSpawner) Consume(sf *components.SpecialFood) SpecialEvent {
	if sf.State != components.SpecialActive {
		return SpecialEventNone
	}
	sf.Position = core.Unset
	sf.State = components.SpecialIdle
	sf.RemainingLifetime = sf.Lifetime
	sf.EatenCount++
	return SpecialEventEaten
}
