package renderers

import (
	"github.com/lixenwraith/monkey-runner/config"
	"github.com/lixenwraith/monkey-runner/core"
	"github.com/lixenwraith/monkey-runner/render"
)

// PlayerRenderer draws the player block with a facing marker
// While performing, the body takes the power's particle color
type PlayerRenderer struct {
	tuning *config.Tuning
}

// NewPlayerRenderer creates a player renderer
func NewPlayerRenderer(tuning *config.Tuning) *PlayerRenderer {
	return &PlayerRenderer{tuning: tuning}
}

// Render implements SystemRenderer
func (r *PlayerRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	p := &ctx.Snapshot.Player

	body := render.RgbPlayer
	if p.Pose == core.PosePerforming && r.tuning != nil {
		body = r.tuning.Power(p.PowerKind).Particle
	}

	c0, r0, c1, r1 := ctx.RectCells(p.X, p.Y, p.W, p.H)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			if ctx.InPlayfield(col, row) {
				buf.SetWithBg(col, row, ' ', render.RgbBlack, body)
			}
		}
	}

	// Face on the top row, on the facing side
	faceCol, face := c1-1, '>'
	if p.Facing == core.DirLeft {
		faceCol, face = c0, '<'
	}
	if ctx.InPlayfield(faceCol, r0) {
		buf.SetWithBg(faceCol, r0, face, render.RgbBlack, render.RgbPlayerFace)
	}

	if p.Pose == core.PoseRunning && r1-r0 > 1 && ctx.InPlayfield(c0, r1-1) {
		// Alternate legs every 8 frames
		legs := "/\\"
		if ctx.Snapshot.Frame/8%2 == 1 {
			legs = "\\/"
		}
		buf.DrawText(c0, r1-1, legs, render.RgbPlayerFace, 0)
	}
}
