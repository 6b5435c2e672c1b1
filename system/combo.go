package system

import (
	"github.com/lixenwraith/monkey-runner/engine"
	"github.com/lixenwraith/monkey-runner/parameter"
)

// ComboSystem counts down the combo banner
type ComboSystem struct{}

// NewComboSystem creates a new combo system
func NewComboSystem() *ComboSystem {
	return &ComboSystem{}
}

// Priority returns the system's priority
func (s *ComboSystem) Priority() int {
	return parameter.PriorityCombo
}

func (s *ComboSystem) Update(w *engine.World) {
	if !w.Running {
		return
	}
	w.Combo.Tick()
}
