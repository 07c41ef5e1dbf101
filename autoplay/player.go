package autoplay

import (
	"log"
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/navigation"
)

// Target is what a decision steers toward
type Target uint8

const (
	TargetNone Target = iota
	TargetSpecial
	TargetFood
	TargetSurvival
)

func (t Target) String() string {
	switch t {
	case TargetSpecial:
		return "special"
	case TargetFood:
		return "food"
	case TargetSurvival:
		return "survival"
	default:
		return "none"
	}
}

// Decision is one planned move
type Decision struct {
	Direction core.Direction
	Target    Target
	PathLen   int // Steps to the food target, 0 for survival
	Area      int // Reachable cells behind the chosen survival move
}

// Driver is the simulation surface the player steers
type Driver interface {
	Snapshot() engine.Snapshot
	HandleCommand(cmd engine.Command, src engine.Source) bool
	AutoPilot() bool
}

// Player chooses moves with A* toward food and a flood-fill survival fallback
type Player struct {
	lastTarget Target
	decisions  uint64
}

// NewPlayer creates an auto player
func NewPlayer() *Player {
	return &Player{}
}

// Decide returns the direction to enqueue for the snapshot, false when no move is safe
func (p *Player) Decide(snap engine.Snapshot) (core.Direction, bool) {
	d := p.Plan(snap)
	return d.Direction, d.Target != TargetNone
}

// Plan computes the full decision for the snapshot
// Special food is chased only when the path beats its remaining lifetime
func (p *Player) Plan(snap engine.Snapshot) Decision {
	if len(snap.Segments) == 0 {
		return Decision{}
	}

	grid := snap.Grid()
	head := snap.Head()
	obstacles := navigation.NewObstacles(grid, snap.Segments...)

	if snap.SpecialActive {
		path := navigation.FindPath(obstacles, head, snap.SpecialFood)
		if len(path) > 0 && len(path) < snap.SpecialRemaining {
			return Decision{Direction: grid.DirectionTo(head, path[0]), Target: TargetSpecial, PathLen: len(path)}
		}
	}

	if !snap.Food.IsUnset() {
		if path := navigation.FindPath(obstacles, head, snap.Food); len(path) > 0 {
			return Decision{Direction: grid.DirectionTo(head, path[0]), Target: TargetFood, PathLen: len(path)}
		}
	}

	return survive(grid, obstacles, head)
}

// survive picks the first move with the largest reachable area, ties keep core.SearchDirections order
func survive(grid core.Grid, obstacles *navigation.Obstacles, head core.Point) Decision {
	best := Decision{Area: -1}
	for _, d := range core.SearchDirections {
		next := grid.Step(head, d)
		if obstacles.Blocked(next) {
			continue
		}
		if area := navigation.FloodFill(obstacles, next); area > best.Area {
			best = Decision{Direction: d, Target: TargetSurvival, Area: area}
		}
	}
	if best.Target == TargetNone {
		return Decision{}
	}
	return best
}

// Run makes one decision and feeds it to the driver as an agent command
// Skips while the pilot is off, the game is halted, or a previous turn is still queued
func (p *Player) Run(drv Driver, _ time.Time) bool {
	if !drv.AutoPilot() {
		return false
	}

	snap := drv.Snapshot()
	if snap.Phase == engine.PhasePaused || snap.Phase == engine.PhaseGameOver || snap.Pending > 0 {
		return false
	}

	d := p.Plan(snap)
	p.decisions++
	if d.Target != p.lastTarget {
		if d.Target == TargetSurvival || d.Target == TargetNone {
			log.Printf("Run %s: auto pilot switched to %s at tick %d", snap.RunID, d.Target, snap.Tick)
		}
		p.lastTarget = d.Target
	}
	if d.Target == TargetNone {
		return false
	}

	return drv.HandleCommand(engine.MoveCommand(d.Direction), engine.SourceAgent)
}

// Decisions returns how many plans Run has computed
func (p *Player) Decisions() uint64 {
	return p.decisions
}
