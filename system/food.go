package system

import (
	"github.com/lixenwraith/monkey-runner/engine"
	"github.com/lixenwraith/monkey-runner/parameter"
)

// FoodSystem moves consumables and resolves pickups
type FoodSystem struct{}

// NewFoodSystem creates a new food system
func NewFoodSystem() *FoodSystem {
	return &FoodSystem{}
}

// Priority returns the system's priority
func (s *FoodSystem) Priority() int {
	return parameter.PriorityFood
}

// Update moves every food, credits pickups and prunes in place
func (s *FoodSystem) Update(w *engine.World) {
	if !w.Running {
		return
	}
	player := w.Player.Bounds()

	kept := w.Foods[:0]
	for _, f := range w.Foods {
		f.X += f.VX
		if f.Bounds().Overlaps(player) {
			w.Inventory.Add(f.Kind, f.Gain)
			w.Log.Debug().Stringer("kind", f.Kind).Int("gain", f.Gain).Msg("food collected")
			continue
		}
		if f.OffScreen() {
			continue
		}
		kept = append(kept, f)
	}
	w.Foods = kept
}
