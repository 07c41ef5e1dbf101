package autoplay

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
)

func pts(coords ...int) []core.Point {
	out := make([]core.Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, core.Point{X: coords[i], Y: coords[i+1]})
	}
	return out
}

func snapshot(tileCount int, segments []core.Point, food core.Point) engine.Snapshot {
	return engine.Snapshot{
		RunID:       uuid.New(),
		TileCount:   tileCount,
		Phase:       engine.PhaseRunning,
		Segments:    segments,
		Food:        food,
		SpecialFood: core.Unset,
	}
}

func TestPlanHeadsForFood(t *testing.T) {
	snap := snapshot(20, pts(10, 10, 10, 11, 10, 12), core.Point{X: 10, Y: 5})
	d := NewPlayer().Plan(snap)

	assert.Equal(t, TargetFood, d.Target)
	assert.Equal(t, core.DirUp, d.Direction)
	assert.Equal(t, 5, d.PathLen)
}

func TestPlanNormalizesWrapStep(t *testing.T) {
	snap := snapshot(20, pts(0, 5, 1, 5, 2, 5), core.Point{X: 19, Y: 5})

	dir, ok := NewPlayer().Decide(snap)
	require.True(t, ok)
	assert.Equal(t, core.DirLeft, dir)
}

func TestPlanSpecialFoodDeadline(t *testing.T) {
	snap := snapshot(20, pts(10, 10, 10, 11, 10, 12), core.Point{X: 10, Y: 2})
	snap.SpecialActive = true
	snap.SpecialFood = core.Point{X: 14, Y: 10}

	snap.SpecialRemaining = 5
	d := NewPlayer().Plan(snap)
	assert.Equal(t, TargetSpecial, d.Target)
	assert.Equal(t, core.DirRight, d.Direction)
	assert.Equal(t, 4, d.PathLen)

	// Path length must be strictly below the remaining lifetime
	snap.SpecialRemaining = 4
	d = NewPlayer().Plan(snap)
	assert.Equal(t, TargetFood, d.Target)
	assert.Equal(t, core.DirUp, d.Direction)
}

// The snake walls the food into a one-cell pocket and a two-cell pocket sits below the head
//
//	y=0  S S S H S S .
//	y=1  S F S p p S .
//	y=2  S S S S S S .
//
// Head is (3,0) heading Left, everything from row 3 down plus column 6 is open
func TestPlanSurvivalPrefersLargestArea(t *testing.T) {
	segments := pts(
		3, 0, 4, 0, 5, 0, 5, 1, 5, 2, 4, 2, 3, 2, 2, 2,
		2, 1, 2, 0, 1, 0, 0, 0, 0, 1, 0, 2, 1, 2,
	)
	snap := snapshot(7, segments, core.Point{X: 1, Y: 1})

	d := NewPlayer().Plan(snap)
	assert.Equal(t, TargetSurvival, d.Target)
	assert.Equal(t, core.DirUp, d.Direction, "up wraps into the open region")
	assert.Equal(t, 7*7-len(segments)-1-2, d.Area)
}

func TestPlanSurvivalTieKeepsEnumerationOrder(t *testing.T) {
	// Food boxed in far away, every free neighbor of the head reaches the same region
	segments := pts(10, 10, 11, 10, 12, 10, 2, 1, 1, 2, 3, 2, 2, 3)
	snap := snapshot(20, segments, core.Point{X: 2, Y: 2})

	d := NewPlayer().Plan(snap)
	assert.Equal(t, TargetSurvival, d.Target)
	assert.Equal(t, core.DirUp, d.Direction)
}

func TestPlanSurvivalTiePrefersRightOverDown(t *testing.T) {
	// Up and Left of the head are body, Right and Down open onto the same region
	segments := pts(5, 5, 5, 4, 4, 4, 4, 5)
	snap := snapshot(20, segments, core.Unset)

	d := NewPlayer().Plan(snap)
	assert.Equal(t, TargetSurvival, d.Target)
	assert.Equal(t, core.DirRight, d.Direction)
	assert.Equal(t, 20*20-len(segments), d.Area)
}

func TestPlanNoSafeMove(t *testing.T) {
	segments := pts(2, 2, 2, 1, 1, 1, 1, 2, 1, 3, 2, 3, 3, 3, 3, 2)
	snap := snapshot(5, segments, core.Point{X: 0, Y: 0})

	_, ok := NewPlayer().Decide(snap)
	assert.False(t, ok)
}

type fakeDriver struct {
	snap     engine.Snapshot
	pilot    bool
	commands []engine.Command
}

func (f *fakeDriver) Snapshot() engine.Snapshot { return f.snap }
func (f *fakeDriver) AutoPilot() bool           { return f.pilot }
func (f *fakeDriver) HandleCommand(cmd engine.Command, src engine.Source) bool {
	if src != engine.SourceAgent {
		return false
	}
	f.commands = append(f.commands, cmd)
	return true
}

func TestRunFeedsAgentCommands(t *testing.T) {
	drv := &fakeDriver{
		snap:  snapshot(20, pts(10, 10, 10, 11, 10, 12), core.Point{X: 14, Y: 10}),
		pilot: true,
	}
	p := NewPlayer()

	assert.True(t, p.Run(drv, time.Time{}))
	assert.Equal(t, []engine.Command{engine.CmdMoveRight}, drv.commands)
	assert.Equal(t, uint64(1), p.Decisions())
}

func TestRunSkips(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*fakeDriver)
	}{
		{"pilot off", func(f *fakeDriver) { f.pilot = false }},
		{"paused", func(f *fakeDriver) { f.snap.Phase = engine.PhasePaused }},
		{"game over", func(f *fakeDriver) { f.snap.Phase = engine.PhaseGameOver }},
		{"turn pending", func(f *fakeDriver) { f.snap.Pending = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drv := &fakeDriver{
				snap:  snapshot(20, pts(10, 10, 10, 11, 10, 12), core.Point{X: 14, Y: 10}),
				pilot: true,
			}
			tt.mutate(drv)
			assert.False(t, NewPlayer().Run(drv, time.Time{}))
			assert.Empty(t, drv.commands)
		})
	}
}

func TestAutoPilotPlaysSimulation(t *testing.T) {
	sim, err := engine.NewSimulation(engine.DefaultSettings(), rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	sim.SetAutoPilot(true)
	p := NewPlayer()

	for i := 0; i < 400 && sim.Phase() != engine.PhaseGameOver; i++ {
		p.Run(sim, time.Time{})
		sim.Step()

		step := sim.Snapshot()
		if step.Phase == engine.PhaseGameOver {
			break
		}
		seen := make(map[core.Point]bool, len(step.Segments))
		for _, seg := range step.Segments {
			require.False(t, seen[seg], "tick %d: segment %s repeats", step.Tick, seg)
			seen[seg] = true
		}
		require.False(t, seen[step.Food], "tick %d: food under snake", step.Tick)
	}

	snap := sim.Snapshot()
	assert.NotEqual(t, engine.PhaseNotStarted, snap.Phase)
	assert.Greater(t, snap.Score, 0)
}
