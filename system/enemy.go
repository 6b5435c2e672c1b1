package system

import (
	"github.com/lixenwraith/monkey-runner/component"
	"github.com/lixenwraith/monkey-runner/core"
	"github.com/lixenwraith/monkey-runner/engine"
	"github.com/lixenwraith/monkey-runner/parameter"
)

// EnemySystem moves enemies, resolves player contact and ages destroyed ones
type EnemySystem struct{}

// NewEnemySystem creates a new enemy system
func NewEnemySystem() *EnemySystem {
	return &EnemySystem{}
}

// Priority returns the system's priority
func (s *EnemySystem) Priority() int {
	return parameter.PriorityEnemy
}

// Update advances every enemy and prunes in place
func (s *EnemySystem) Update(w *engine.World) {
	if !w.Running {
		return
	}
	player := w.Player.Bounds()

	kept := w.Enemies[:0]
	for i := range w.Enemies {
		e := w.Enemies[i]

		if e.Destroyed {
			e.Age(w.Frame)
			if e.Expired() {
				continue
			}
			kept = append(kept, e)
			continue
		}

		e.X += e.VX

		if body := e.Bounds(); body.Overlaps(player) {
			if player.ClearedFrom(body) {
				DestroyEnemy(w, &e, core.JumpedOver)
			} else {
				DestroyEnemy(w, &e, core.CollisionLoss)
			}
		}

		if !e.Destroyed && e.OffScreen() {
			continue
		}
		kept = append(kept, e)
	}
	w.Enemies = kept
}

// DestroyEnemy marks e destroyed and applies the cause's score change
// Returns false with no effect if e was already destroyed
func DestroyEnemy(w *engine.World, e *component.Enemy, cause core.DestroyCause) bool {
	if !e.MarkDestroyed(cause, w.Frame) {
		return false
	}

	switch cause.Type {
	case core.CauseJumpedOver:
		w.AddScore(e.Points)
	case core.CauseCollision:
		w.AddScore(-2 * e.Points)
	case core.CausePower:
		w.AddScore(2 * e.Points)
	}

	w.Log.Debug().
		Uint64("id", e.ID).
		Stringer("kind", e.Kind).
		Stringer("cause", cause).
		Int("score", w.Score.Value).
		Msg("enemy destroyed")
	return true
}
