package renderers

import (
	"golang.org/x/text/language"

	"github.com/lixenwraith/monkey-runner/config"
	"github.com/lixenwraith/monkey-runner/core"
	"github.com/lixenwraith/monkey-runner/render"
)

// RegisterAll adds the terminal frontend's renderers in draw order
func RegisterAll(o *render.RenderOrchestrator, tuning *config.Tuning, tag language.Tag) {
	var colors [core.PowerKindCount]render.RGB
	for _, k := range core.AllPowerKinds() {
		colors[k] = tuning.Power(k).Particle
	}

	o.Register(NewSceneRenderer(), render.PriorityBackground)
	o.Register(NewFoodRenderer(), render.PriorityFood)
	o.Register(NewEnemyRenderer(), render.PriorityEnemy)
	o.Register(NewPlayerRenderer(tuning), render.PriorityPlayer)
	o.Register(NewParticleRenderer(), render.PriorityParticle)
	o.Register(NewHUDRenderer(tag, colors), render.PriorityUI)
	o.Register(NewOverlayRenderer(tag), render.PriorityOverlay)
}
