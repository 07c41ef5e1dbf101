package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// EntityKind tags the closed set of drawable entities
type EntityKind uint8

const (
	KindSnake EntityKind = iota
	KindFood
	KindSpecialFood
	KindStatus
)

func (k EntityKind) String() string {
	switch k {
	case KindSnake:
		return "Snake"
	case KindFood:
		return "Food"
	case KindSpecialFood:
		return "SpecialFood"
	case KindStatus:
		return "Status"
	default:
		return "Unknown"
	}
}

// RenderModel is the value a renderer draws for one entity
// Cells are copies, head first for the snake
type RenderModel struct {
	Kind      EntityKind
	Cells     []core.Point
	Visible   bool
	Text      string
	Remaining int // Special food lifetime in ticks
}

// Entity is implemented only by the variants in this file
type Entity interface {
	Kind() EntityKind
	Update(tick uint64)
	RenderModel() RenderModel
	entity()
}

// newEntities binds the drawable set to a state, in draw order
func newEntities(gs *GameState) []Entity {
	return []Entity{
		&FoodEntity{state: gs},
		&SpecialFoodEntity{state: gs},
		&SnakeEntity{state: gs},
		&StatusEntity{state: gs},
	}
}

// SnakeEntity draws the snake body
type SnakeEntity struct {
	state *GameState
	model RenderModel
}

func (e *SnakeEntity) entity()          {}
func (e *SnakeEntity) Kind() EntityKind { return KindSnake }

func (e *SnakeEntity) Update(uint64) {
	e.model = RenderModel{
		Kind:    KindSnake,
		Cells:   e.state.Snake.Cells(),
		Visible: true,
	}
}

func (e *SnakeEntity) RenderModel() RenderModel { return e.model }

// FoodEntity draws the regular food, hidden while unplaced
type FoodEntity struct {
	state *GameState
	model RenderModel
}

func (e *FoodEntity) entity()          {}
func (e *FoodEntity) Kind() EntityKind { return KindFood }

func (e *FoodEntity) Update(uint64) {
	pos := e.state.Food.Position
	e.model = RenderModel{
		Kind:    KindFood,
		Cells:   []core.Point{pos},
		Visible: !pos.IsUnset(),
	}
}

func (e *FoodEntity) RenderModel() RenderModel { return e.model }

// SpecialFoodEntity draws the bonus food and blinks it while it is about to expire
type SpecialFoodEntity struct {
	state *GameState
	model RenderModel
}

func (e *SpecialFoodEntity) entity()          {}
func (e *SpecialFoodEntity) Kind() EntityKind { return KindSpecialFood }

func (e *SpecialFoodEntity) Update(tick uint64) {
	sf := e.state.SpecialFood
	visible := sf.Active()
	if visible && sf.RemainingLifetime < constants.SpecialBlinkTicks {
		visible = tick%2 == 0
	}
	e.model = RenderModel{
		Kind:      KindSpecialFood,
		Cells:     []core.Point{sf.Position},
		Visible:   visible,
		Remaining: sf.RemainingLifetime,
	}
}

func (e *SpecialFoodEntity) RenderModel() RenderModel { return e.model }

// StatusEntity produces the status line message
type StatusEntity struct {
	state *GameState
	model RenderModel
}

func (e *StatusEntity) entity()          {}
func (e *StatusEntity) Kind() EntityKind { return KindStatus }

func (e *StatusEntity) Update(uint64) {
	e.model = RenderModel{
		Kind:    KindStatus,
		Visible: true,
		Text:    StatusMessage(e.state.Phase, e.state.Score()),
	}
}

func (e *StatusEntity) RenderModel() RenderModel { return e.model }

// StatusMessage returns the status line text for a phase and score
func StatusMessage(phase GamePhase, score int) string {
	switch {
	case phase == PhaseGameOver:
		return fmt.Sprintf(constants.GameOverFormat, score)
	case phase == PhaseRunning && score > 0:
		return fmt.Sprintf(constants.ScoreFormat, score)
	default:
		return constants.HelpMessage
	}
}
