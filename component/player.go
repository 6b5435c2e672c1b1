package component

import (
	"time"

	"github.com/lixenwraith/monkey-runner/core"
	"github.com/lixenwraith/monkey-runner/parameter"
	"github.com/lixenwraith/monkey-runner/physics"
)

// Player is the single controllable character
// Position and velocity live in the embedded Body (px, px/frame)
type Player struct {
	physics.Body
	W, H float64

	Facing   core.Direction
	Grounded bool

	// Pose state machine
	Pose      core.Pose
	PowerKind core.PowerKind // Valid only while Pose == PosePerforming
	PoseTimer int            // Frames remaining in the power pose

	// Re-entrancy guard, game-clock time of each kind's last activation
	LastUse [core.PowerKindCount]time.Time
	used    [core.PowerKindCount]bool
}

// NewPlayer places the player at the spawn point facing right
func NewPlayer() Player {
	return Player{
		Body:   physics.Body{X: parameter.PlayerStartX, Y: parameter.PlayerStartY},
		W:      parameter.PlayerWidth,
		H:      parameter.PlayerHeight,
		Facing: core.DirRight,
		Pose:   core.PoseIdle,
	}
}

// Bounds returns the collision box
func (p *Player) Bounds() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// LeadingEdge returns the X of the side facing dir
func (p *Player) LeadingEdge(dir core.Direction) float64 {
	if dir == core.DirRight {
		return p.X + p.W
	}
	return p.X
}

// Performing reports whether a power pose is active
func (p *Player) Performing() bool {
	return p.Pose == core.PosePerforming
}

// CanUse applies the re-entrancy rule: the same kind is rejected within
// cooldown of its last activation; a different kind is never blocked
func (p *Player) CanUse(kind core.PowerKind, now time.Time, cooldown time.Duration) bool {
	if !kind.Valid() {
		return false
	}
	if !p.used[kind] {
		return true
	}
	return now.Sub(p.LastUse[kind]) >= cooldown
}

// BeginPose enters Performing(kind), interrupting any active pose
func (p *Player) BeginPose(kind core.PowerKind, dir core.Direction, frames int, now time.Time) {
	p.Pose = core.PosePerforming
	p.PowerKind = kind
	p.PoseTimer = frames
	if dir != core.DirNone {
		p.Facing = dir
	}
	p.LastUse[kind] = now
	p.used[kind] = true
}

// TickPose counts down the power pose and derives the locomotion pose
// from velocity once no power pose is active
func (p *Player) TickPose() {
	if p.PoseTimer > 0 {
		p.PoseTimer--
		if p.PoseTimer == 0 {
			p.Pose = core.PoseIdle
		}
	}
	if p.Performing() {
		return
	}
	if d := core.DirectionOf(p.VX); d != core.DirNone {
		p.Pose = core.PoseRunning
		p.Facing = d
	} else {
		p.Pose = core.PoseIdle
	}
}
