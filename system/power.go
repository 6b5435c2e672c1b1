package system

import (
	"math"

	"github.com/lixenwraith/monkey-runner/core"
	"github.com/lixenwraith/monkey-runner/engine"
	"github.com/lixenwraith/monkey-runner/parameter"
	"github.com/lixenwraith/monkey-runner/physics"
)

// AttackDirection picks the attack side: toward the nearest live enemy by |dx|
// (first in slice order on ties, equal X counts as left), else the player's
// facing, else facingHint, else right
func AttackDirection(w *engine.World, facingHint core.Direction) core.Direction {
	px := w.Player.X
	nearest := -1
	best := math.Inf(1)
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.Live() {
			continue
		}
		if d := math.Abs(e.X - px); d < best {
			best = d
			nearest = i
		}
	}

	if nearest >= 0 {
		if w.Enemies[nearest].X > px {
			return core.DirRight
		}
		return core.DirLeft
	}
	if w.Player.Facing != core.DirNone {
		return w.Player.Facing
	}
	if facingHint != core.DirNone {
		return facingHint
	}
	return core.DirRight
}

// TryUsePower fires a directional attack of kind
// Returns false with no side effects when the run is not active, the kind is
// out of stock, or the same kind is still cooling down
func TryUsePower(w *engine.World, kind core.PowerKind, facingHint core.Direction) bool {
	if !w.Running || !kind.Valid() || w.Inventory.Count(kind) <= 0 {
		return false
	}

	now := w.Clock.Now()
	if !w.Player.CanUse(kind, now, parameter.PowerCooldown) {
		return false
	}

	spec := w.Tuning.Power(kind)
	dir := AttackDirection(w, facingHint)

	w.Player.BeginPose(kind, dir, spec.PoseFrames, now)
	w.Inventory.Use(kind)

	origin := w.Player.X
	kills := 0
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.Live() {
			continue
		}
		if physics.InDirectionalRange(origin, e.X, dir.Sign(), spec.Range) {
			if DestroyEnemy(w, e, core.PowerKill(kind)) {
				kills++
			}
		}
	}

	if kind == core.PowerAtomic {
		EmitCompound(w, dir)
	} else {
		EmitBurst(w, kind, dir)
	}

	w.Combo.Register(kills, parameter.ComboBannerFrames)
	w.Audio.PlayCompound(core.PowerCue(kind), kills)

	w.Log.Info().
		Stringer("kind", kind).
		Stringer("dir", dir).
		Int("kills", kills).
		Int("left", w.Inventory.Count(kind)).
		Msg("power used")
	return true
}
