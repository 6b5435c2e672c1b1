package system

import (
	"github.com/lixenwraith/monkey-runner/core"
	"github.com/lixenwraith/monkey-runner/engine"
	"github.com/lixenwraith/monkey-runner/parameter"
	"github.com/lixenwraith/monkey-runner/physics"
)

// PlayerSystem applies movement intent, the pose state machine and ground physics
type PlayerSystem struct{}

// NewPlayerSystem creates a new player system
func NewPlayerSystem() *PlayerSystem {
	return &PlayerSystem{}
}

// Priority returns the system's priority
func (s *PlayerSystem) Priority() int {
	return parameter.PriorityPlayer
}

// Update advances the player by one frame
func (s *PlayerSystem) Update(w *engine.World) {
	if !w.Running {
		return
	}
	p := &w.Player

	p.VX = w.Control.Move.Sign() * parameter.PlayerSpeed
	if w.Control.Jump {
		Jump(w)
	}

	p.TickPose()

	physics.Integrate(&p.Body, parameter.Gravity, !p.Grounded)

	contact := physics.SettleOnGround(&p.Body, p.H, w.GroundY(), p.Grounded)
	p.Grounded = contact.Grounded
	if contact.Grounded && contact.ImpactVY > parameter.LandingCueVelocity {
		w.Audio.Play(core.CueLand)
	}

	physics.ClampX(&p.Body, p.W, w.Width)
}

// Jump applies the jump impulse, honored only while grounded
func Jump(w *engine.World) bool {
	p := &w.Player
	if !p.Grounded {
		return false
	}
	p.VY = parameter.JumpImpulse
	p.Grounded = false
	w.Audio.Play(core.CueJump)
	return true
}
