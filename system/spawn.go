package system

import (
	"github.com/lixenwraith/monkey-runner/component"
	"github.com/lixenwraith/monkey-runner/config"
	"github.com/lixenwraith/monkey-runner/core"
	"github.com/lixenwraith/monkey-runner/engine"
	"github.com/lixenwraith/monkey-runner/parameter"
)

// SpawnSystem runs the food and enemy countdowns
// The enemy interval is re-read from Score on every reset so the difficulty ratchet takes effect
type SpawnSystem struct{}

// NewSpawnSystem creates a new spawn system
func NewSpawnSystem() *SpawnSystem {
	return &SpawnSystem{}
}

// Priority returns the system's priority
func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

// Update ticks both spawn timers
func (s *SpawnSystem) Update(w *engine.World) {
	if !w.Running {
		return
	}

	w.FoodTimer--
	if w.FoodTimer <= 0 {
		SpawnFood(w)
		w.FoodTimer = w.Tuning.Spawn.FoodInterval
	}

	w.EnemyTimer--
	if w.EnemyTimer <= 0 {
		SpawnEnemy(w)
		w.EnemyTimer = w.Score.EnemyInterval
	}
}

// PickWeighted maps u in [0, TotalWeight) to the first kind whose
// cumulative weight exceeds u
func PickWeighted(t *config.Tuning, u float64) core.PowerKind {
	acc := 0.0
	for _, k := range core.AllPowerKinds() {
		acc += float64(t.Powers[k].Weight)
		if u < acc {
			return k
		}
	}
	return core.PowerKindCount - 1
}

// SpawnFood adds one consumable at the right edge inside the vertical spawn band
func SpawnFood(w *engine.World) *component.Food {
	kind := PickWeighted(w.Tuning, w.Rand.Float64()*float64(w.Tuning.TotalWeight()))
	spec := w.Tuning.Power(kind)

	top, bottom := w.FoodBand()
	y := top
	if band := bottom - top; band > 0 {
		y += w.Rand.Float64() * band
	}

	w.Foods = append(w.Foods, component.Food{
		ID:   w.NextID(),
		Kind: kind,
		X:    w.Width,
		Y:    y,
		VX:   -parameter.FoodSpeed,
		W:    parameter.FoodWidth,
		H:    parameter.FoodHeight,
		Gain: spec.Gain,
	})
	return &w.Foods[len(w.Foods)-1]
}

// SpawnEnemy adds one enemy of uniformly random kind at the right edge,
// bottom resting on the ground line
func SpawnEnemy(w *engine.World) *component.Enemy {
	kind := core.EnemyKind(w.Rand.IntN(int(core.EnemyKindCount)))
	spec := w.Tuning.Enemy(kind)

	w.Enemies = append(w.Enemies, component.Enemy{
		ID:     w.NextID(),
		Kind:   kind,
		X:      w.Width,
		Y:      w.GroundY() - spec.Height,
		VX:     -parameter.EnemySpeed,
		W:      spec.Width,
		H:      spec.Height,
		Points: spec.Points,
	})
	w.Log.Debug().Stringer("kind", kind).Int("interval", w.Score.EnemyInterval).Msg("enemy spawned")
	return &w.Enemies[len(w.Enemies)-1]
}
