package engine

import (
	"github.com/lixenwraith/monkey-runner/component"
	"github.com/lixenwraith/monkey-runner/core"
	"github.com/lixenwraith/monkey-runner/parameter"
)

// PlayerView is the render-facing player state
type PlayerView struct {
	X, Y, W, H float64
	Facing     core.Direction
	Pose       core.Pose
	PowerKind  core.PowerKind
	Grounded   bool
}

// EnemyView is the render-facing enemy state
type EnemyView struct {
	Kind         core.EnemyKind
	X, Y, W, H   float64
	Color        core.RGB
	Destroyed    bool
	Cause        core.DestroyCause
	DestroyedFor int
	Fade         float64  // Destruction progress 0..1
	CloudColor   core.RGB // Valid when Destroyed
}

// FoodView is the render-facing consumable state
type FoodView struct {
	Kind       core.PowerKind
	X, Y, W, H float64
	Color      core.RGB // Fallback when no sprite is ready
}

// ParticleView is the render-facing particle state
type ParticleView struct {
	X, Y  float64
	Size  float64
	Color core.RGB
	Life  float64
	Alpha float64
	Phase component.ParticlePhase
}

// Snapshot is an immutable copy of everything a frontend draws
type Snapshot struct {
	Frame     uint64
	Player    PlayerView
	Enemies   []EnemyView
	Foods     []FoodView
	Particles []ParticleView

	Score         int
	EnemyInterval int
	Inventory     [core.PowerKindCount]int
	Combo         int
	ComboVisible  bool

	Started bool
	Running bool
	Paused  bool

	Width   float64
	Height  float64
	GroundY float64
}

// CloudColor returns the destruction cloud color for cause
func (w *World) CloudColor(cause core.DestroyCause) core.RGB {
	switch cause.Type {
	case core.CauseCollision:
		return core.MustHex(parameter.CollisionCloudColor)
	case core.CauseJumpedOver:
		return core.MustHex(parameter.JumpCloudColor)
	case core.CausePower:
		return w.Tuning.Power(cause.Power).Particle
	default:
		return core.RGBWhite
	}
}

// Snapshot copies the current state; the caller owns the result
func (w *World) Snapshot() Snapshot {
	p := &w.Player
	s := Snapshot{
		Frame: w.Frame,
		Player: PlayerView{
			X: p.X, Y: p.Y, W: p.W, H: p.H,
			Facing:    p.Facing,
			Pose:      p.Pose,
			PowerKind: p.PowerKind,
			Grounded:  p.Grounded,
		},
		Enemies:       make([]EnemyView, 0, len(w.Enemies)),
		Foods:         make([]FoodView, 0, len(w.Foods)),
		Particles:     make([]ParticleView, 0, len(w.Particles)),
		Score:         w.Score.Value,
		EnemyInterval: w.Score.EnemyInterval,
		Inventory:     w.Inventory.Counts(),
		Combo:         w.Combo.Count,
		ComboVisible:  w.Combo.Visible(),
		Running:       w.Running,
		Width:         w.Width,
		Height:        w.Height,
		GroundY:       w.GroundY(),
	}

	for i := range w.Enemies {
		e := &w.Enemies[i]
		v := EnemyView{
			Kind: e.Kind,
			X:    e.X, Y: e.Y, W: e.W, H: e.H,
			Color:        w.Tuning.Enemy(e.Kind).Color,
			Destroyed:    e.Destroyed,
			Cause:        e.Cause,
			DestroyedFor: e.DestroyedFor,
			Fade:         e.Fade(),
		}
		if e.Destroyed {
			v.CloudColor = w.CloudColor(e.Cause)
		}
		s.Enemies = append(s.Enemies, v)
	}

	for i := range w.Foods {
		f := &w.Foods[i]
		s.Foods = append(s.Foods, FoodView{
			Kind: f.Kind,
			X:    f.X, Y: f.Y, W: f.W, H: f.H,
			Color: w.Tuning.Power(f.Kind).Food,
		})
	}

	for i := range w.Particles {
		pt := &w.Particles[i]
		s.Particles = append(s.Particles, ParticleView{
			X: pt.X, Y: pt.Y,
			Size:  pt.Size,
			Color: pt.Color,
			Life:  pt.Life,
			Alpha: pt.Alpha(),
			Phase: pt.Phase,
		})
	}

	return s
}
