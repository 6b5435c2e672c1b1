// Package system holds the per-frame simulation steps and the attack entry point
// Frame order is fixed by priority: player, spawn, food, enemy, particle, combo
package system

import "github.com/lixenwraith/monkey-runner/engine"

// RegisterAll adds every simulation system to w
func RegisterAll(w *engine.World) {
	w.AddSystem(NewPlayerSystem())
	w.AddSystem(NewSpawnSystem())
	w.AddSystem(NewFoodSystem())
	w.AddSystem(NewEnemySystem())
	w.AddSystem(NewParticleSystem())
	w.AddSystem(NewComboSystem())
}
