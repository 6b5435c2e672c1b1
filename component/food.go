package component

import (
	"github.com/lixenwraith/monkey-runner/core"
	"github.com/lixenwraith/monkey-runner/physics"
)

// Food is a consumable drifting leftward; pickup credits Gain to the inventory
type Food struct {
	ID   uint64
	Kind core.PowerKind
	X, Y float64
	VX   float64
	W, H float64
	Gain int
}

// Bounds returns the collision box
func (f *Food) Bounds() physics.Rect {
	return physics.Rect{X: f.X, Y: f.Y, W: f.W, H: f.H}
}

// OffScreen reports whether the food has fully exited the left edge
func (f *Food) OffScreen() bool {
	return f.X+f.W < 0
}
