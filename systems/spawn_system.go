package systems

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/core"
)

// FoodSpawner places the regular food on a free cell
type FoodSpawner struct {
	placer *Placer
}

// NewFoodSpawner creates a food spawner backed by the placer
func NewFoodSpawner(placer *Placer) *FoodSpawner {
	return &FoodSpawner{placer: placer}
}

// Generate moves food to a free cell not covered by the snake or an active special food
// pickup counts the food as eaten, initial placement passes false
// On ErrBoardFull the food is left unset
func (s *FoodSpawner) Generate(food *components.Food, snake *components.Snake, special *components.SpecialFood, pickup bool) error {
	if pickup {
		food.EatenCount++
	}

	p, err := s.placer.Place(func(c core.Point) bool {
		return snake.Occupies(c) || (special != nil && special.At(c))
	})
	if err != nil {
		food.Position = core.Unset
		return fmt.Errorf("food spawn after %d eaten: %w", food.EatenCount, err)
	}

	food.Position = p
	return nil
}
