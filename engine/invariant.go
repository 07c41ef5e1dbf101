package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/vi-snake/core"
)

// ErrInvariant marks a broken board invariant, always a programming error
var ErrInvariant = errors.New("invariant violated")

// checkInvariants verifies that no two entities share a cell
// Duplicate segments are legal only in the tick that ends the game
func checkInvariants(gs *GameState) error {
	grid := gs.Grid()
	seen := make(map[core.Point]struct{}, gs.Snake.Len())
	for i, seg := range gs.Snake.Segments {
		if !grid.Contains(seg) {
			return fmt.Errorf("%w: segment %d at %s off board", ErrInvariant, i, seg)
		}
		if _, dup := seen[seg]; dup && gs.Phase != PhaseGameOver {
			return fmt.Errorf("%w: segment %d repeats %s", ErrInvariant, i, seg)
		}
		seen[seg] = struct{}{}
	}

	food := gs.Food.Position
	if !food.IsUnset() {
		if _, hit := seen[food]; hit && gs.Phase != PhaseGameOver {
			return fmt.Errorf("%w: food at %s under snake", ErrInvariant, food)
		}
	}

	sf := gs.SpecialFood
	if sf.Active() {
		if sf.RemainingLifetime <= 0 {
			return fmt.Errorf("%w: active special food with lifetime %d", ErrInvariant, sf.RemainingLifetime)
		}
		if _, hit := seen[sf.Position]; hit && gs.Phase != PhaseGameOver {
			return fmt.Errorf("%w: special food at %s under snake", ErrInvariant, sf.Position)
		}
		if sf.Position == food {
			return fmt.Errorf("%w: special food shares %s with food", ErrInvariant, food)
		}
	}
	return nil
}
