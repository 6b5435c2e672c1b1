package component

import (
	"github.com/lixenwraith/monkey-runner/core"
	"github.com/lixenwraith/monkey-runner/parameter"
	"github.com/lixenwraith/monkey-runner/physics"
)

// Enemy walks leftward along the ground line until destroyed or off-screen
type Enemy struct {
	ID     uint64
	Kind   core.EnemyKind
	X, Y   float64
	VX     float64
	W, H   float64
	Points int

	// Destruction state, Cause is immutable once Destroyed is set
	Destroyed    bool
	Cause        core.DestroyCause
	DestroyedAt  uint64 // World frame the enemy was destroyed on
	DestroyedFor int    // Frames since destruction, refreshed by Age
}

// Bounds returns the collision box
func (e *Enemy) Bounds() physics.Rect {
	return physics.Rect{X: e.X, Y: e.Y, W: e.W, H: e.H}
}

// Live reports whether the enemy still participates in collision and attacks
func (e *Enemy) Live() bool {
	return !e.Destroyed
}

// MarkDestroyed records the cause and destruction frame, returns false if
// already destroyed
func (e *Enemy) MarkDestroyed(cause core.DestroyCause, frame uint64) bool {
	if e.Destroyed {
		return false
	}
	e.Destroyed = true
	e.Cause = cause
	e.DestroyedAt = frame
	e.DestroyedFor = 0
	return true
}

// Age recomputes DestroyedFor from the current world frame
// The destruction frame itself counts as age 0 whichever phase of the frame
// the kill happened in
func (e *Enemy) Age(frame uint64) {
	if !e.Destroyed || frame < e.DestroyedAt {
		return
	}
	e.DestroyedFor = int(frame - e.DestroyedAt)
}

// Expired reports whether the destruction lifetime has elapsed
func (e *Enemy) Expired() bool {
	return e.Destroyed && e.DestroyedFor >= parameter.EnemyDestructionLifetime
}

// OffScreen reports whether the enemy has fully exited the left edge
func (e *Enemy) OffScreen() bool {
	return e.X+e.W < 0
}

// Fade returns destruction progress in [0,1], 0 for live enemies
func (e *Enemy) Fade() float64 {
	if !e.Destroyed {
		return 0
	}
	f := float64(e.DestroyedFor) / float64(parameter.EnemyDestructionLifetime)
	if f > 1 {
		return 1
	}
	return f
}
