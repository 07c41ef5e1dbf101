package engine

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/systems"
)

// ErrInvalidSettings is returned by NewSimulation for unusable parameters
var ErrInvalidSettings = errors.New("invalid simulation settings")

// Simulation owns the GameState and advances it one tick at a time
// It is driven from a single goroutine, nothing it holds is shared
type Simulation struct {
	settings Settings
	grid     core.Grid
	placer   *systems.Placer

	movement *systems.MovementSystem
	food     *systems.FoodSpawner
	special  *systems.SpecialFoodSpawner

	tickGate  Gate
	state     *GameState
	entities  []Entity
	autoPilot bool
}

// NewSimulation validates settings and builds a fresh NotStarted run
func NewSimulation(settings Settings, rng *rand.Rand) (*Simulation, error) {
	if err := validateSettings(settings); err != nil {
		return nil, err
	}

	grid := core.NewGrid(settings.TileCount)
	placer := systems.NewPlacer(grid, rng, settings.MaxPlacementAttempts)
	s := &Simulation{
		settings: settings,
		grid:     grid,
		placer:   placer,
		movement: systems.NewMovementSystem(grid),
		food:     systems.NewFoodSpawner(placer),
		special:  systems.NewSpecialFoodSpawner(placer),
		tickGate: Gate{Interval: settings.TickInterval},
	}
	s.Reset()
	return s, nil
}

func validateSettings(st Settings) error {
	switch {
	case st.TileCount < 2*st.SpawnMargin+1:
		return fmt.Errorf("%w: tile count %d below %d", ErrInvalidSettings, st.TileCount, 2*st.SpawnMargin+1)
	case st.SpawnMargin < 0:
		return fmt.Errorf("%w: negative spawn margin", ErrInvalidSettings)
	case st.InitialLength < 1 || st.InitialLength > st.TileCount:
		return fmt.Errorf("%w: initial length %d", ErrInvalidSettings, st.InitialLength)
	case st.TickInterval <= 0:
		return fmt.Errorf("%w: tick interval %v", ErrInvalidSettings, st.TickInterval)
	case st.SpecialThreshold < 0 || st.SpecialLifetime < 0:
		return fmt.Errorf("%w: negative special food schedule", ErrInvalidSettings)
	}
	return nil
}

// Reset discards the current run and builds a new NotStarted state
// The head lands in [margin, tileCount-margin] on both axes with a random heading
func (s *Simulation) Reset() {
	st := s.settings
	hi := st.TileCount - st.SpawnMargin
	if hi > st.TileCount-1 {
		hi = st.TileCount - 1
	}
	span := hi - st.SpawnMargin + 1
	head := core.Point{
		X: st.SpawnMargin + s.placer.Intn(span),
		Y: st.SpawnMargin + s.placer.Intn(span),
	}
	heading := core.Directions[s.placer.Intn(len(core.Directions))]

	gs := &GameState{
		RunID:        uuid.New(),
		TileCount:    st.TileCount,
		Phase:        PhaseNotStarted,
		TickInterval: st.TickInterval,
		Snake:        components.NewSnake(s.grid, head, heading, st.InitialLength, st.QueueCapacity),
		Food:         components.NewFood(),
		SpecialFood:  components.NewSpecialFood(st.SpecialThreshold, st.SpecialLifetime),
	}

	if err := s.food.Generate(gs.Food, gs.Snake, gs.SpecialFood, false); err != nil {
		gs.Err = err
		gs.Phase = PhaseGameOver
		log.Printf("Run %s: initial food placement failed: %v", gs.RunID, err)
	}

	s.state = gs
	s.entities = newEntities(gs)
	s.tickGate.Reset()
	s.sync()

	log.Printf("Run %s: new game, head %s heading %s", gs.RunID, head, heading)
}

// HandleCommand applies one command and reports whether it changed anything
// Contextually invalid commands are dropped silently
func (s *Simulation) HandleCommand(cmd Command, src Source) bool {
	gs := s.state
	accepted := false

	switch {
	case cmd == CmdRestart:
		s.Reset()
		return true

	case cmd == CmdTogglePause:
		switch gs.Phase {
		case PhaseRunning:
			gs.Phase = PhasePaused
			accepted = true
		case PhasePaused:
			gs.Snake.Queue.Clear()
			gs.Phase = PhaseRunning
			accepted = true
		}

	case cmd == CmdStart:
		if gs.Phase == PhaseNotStarted {
			gs.Phase = PhaseRunning
			accepted = true
		}

	case cmd.IsMove():
		if src == SourceHuman && s.autoPilot {
			return false
		}
		if !gs.Phase.AcceptsMoves() {
			return false
		}
		accepted = gs.Snake.Queue.Enqueue(cmd.Direction())
		if accepted && gs.Phase == PhaseNotStarted {
			gs.Phase = PhaseRunning
		}
	}

	if accepted {
		s.sync()
	}
	return accepted
}

// SetAutoPilot switches agent control on or off
func (s *Simulation) SetAutoPilot(on bool) {
	s.autoPilot = on
}

// ToggleAutoPilot flips agent control and returns the new value
func (s *Simulation) ToggleAutoPilot() bool {
	s.autoPilot = !s.autoPilot
	log.Printf("Run %s: auto pilot %t", s.state.RunID, s.autoPilot)
	return s.autoPilot
}

// AutoPilot reports whether the agent drives
func (s *Simulation) AutoPilot() bool {
	return s.autoPilot
}

// Phase returns the current phase
func (s *Simulation) Phase() GamePhase {
	return s.state.Phase
}

// Update steps the simulation if a tick interval elapsed since the last step
// Returns true when a step ran
func (s *Simulation) Update(now time.Time) bool {
	if s.state.Phase != PhaseRunning {
		return false
	}
	if !s.tickGate.Due(now) {
		return false
	}
	s.Step()
	return true
}

// Step runs one tick unconditionally while Running
// Order: resolve and move, collision, food pickups, special food lifecycle
func (s *Simulation) Step() {
	gs := s.state
	if gs.Phase != PhaseRunning {
		return
	}
	gs.Tick++

	res := s.movement.Step(gs.Snake, gs.Food, gs.SpecialFood)
	if res.Collided {
		gs.Phase = PhaseGameOver
	}

	if res.AteSpecial {
		s.special.Consume(gs.SpecialFood)
	}

	if res.AteFood {
		if err := s.food.Generate(gs.Food, gs.Snake, gs.SpecialFood, true); err != nil {
			gs.Err = err
			gs.Phase = PhaseGameOver
			log.Printf("Run %s: %v", gs.RunID, err)
		}
	}

	if gs.Phase == PhaseRunning {
		ev, err := s.special.Update(gs.SpecialFood, gs.Food, gs.Snake)
		if err != nil {
			log.Printf("Run %s: %v, retrying next tick", gs.RunID, err)
		} else if ev != systems.SpecialEventNone {
			log.Printf("Run %s: special food %s at tick %d", gs.RunID, ev, gs.Tick)
		}
	}

	if gs.Phase == PhaseGameOver {
		log.Printf("Run %s: game over at tick %d, score %d, length %d", gs.RunID, gs.Tick, gs.Score(), gs.Snake.Len())
	}

	if err := checkInvariants(gs); err != nil {
		reportInvariant(err)
	}
	s.sync()
}

// sync refreshes entity render models from the state
func (s *Simulation) sync() {
	for _, e := range s.entities {
		e.Update(s.state.Tick)
	}
}

// Snapshot copies the state for readers outside the simulation
func (s *Simulation) Snapshot() Snapshot {
	gs := s.state
	sf := gs.SpecialFood

	models := make([]RenderModel, len(s.entities))
	for i, e := range s.entities {
		m := e.RenderModel()
		m.Cells = append([]core.Point(nil), m.Cells...)
		models[i] = m
	}

	special := core.Unset
	if sf.Active() {
		special = sf.Position
	}

	return Snapshot{
		RunID:            gs.RunID,
		TileCount:        gs.TileCount,
		Phase:            gs.Phase,
		Tick:             gs.Tick,
		Score:            gs.Score(),
		Message:          StatusMessage(gs.Phase, gs.Score()),
		AutoPilot:        s.autoPilot,
		Err:              gs.Err,
		Segments:         gs.Snake.Cells(),
		Heading:          gs.Snake.Heading,
		Pending:          gs.Snake.Queue.Len(),
		Food:             gs.Food.Position,
		SpecialFood:      special,
		SpecialActive:    sf.Active(),
		SpecialRemaining: sf.RemainingLifetime,
		Models:           models,
	}
}
