package renderers

import (
	"unicode/utf8"

	"github.com/lixenwraith/monkey-runner/core"
	"github.com/lixenwraith/monkey-runner/parameter"
	"github.com/lixenwraith/monkey-runner/render"
)

// SceneRenderer draws the sky, the ground band and the control hints on it
type SceneRenderer struct {
	ground render.RGB
}

// NewSceneRenderer creates a scene renderer
func NewSceneRenderer() *SceneRenderer {
	return &SceneRenderer{ground: core.MustHex(parameter.GroundColor)}
}

// Render implements SystemRenderer
func (s *SceneRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	groundRow := ctx.GroundRow()
	bottom := ctx.GameY + ctx.GameHeight

	// Sky gradient, lighter toward the horizon
	for row := ctx.GameY; row < groundRow && row < bottom; row++ {
		t := 0.0
		if groundRow > ctx.GameY+1 {
			t = float64(row-ctx.GameY) / float64(groundRow-ctx.GameY-1)
		}
		sky := render.Blend(render.RgbBackground, render.RgbSkyLow, t)
		for col := 0; col < ctx.ScreenWidth; col++ {
			buf.SetBgOnly(col, row, sky)
		}
	}

	for row := max(groundRow, ctx.GameY); row < bottom; row++ {
		bg := s.ground
		if row == groundRow {
			bg = render.RgbGroundTop
		}
		for col := 0; col < ctx.ScreenWidth; col++ {
			buf.SetWithBg(col, row, ' ', render.RgbHintText, bg)
		}
	}

	snap := &ctx.Snapshot
	s.centered(ctx, buf, parameter.ControlsHint, snap.Height-parameter.ControlsHintLift, groundRow)
	s.centered(ctx, buf, parameter.GoalHint, snap.Height-parameter.GoalHintLift, groundRow)
}

// centered writes text centered at simulation height y, only inside the ground band
func (s *SceneRenderer) centered(ctx render.RenderContext, buf *render.RenderBuffer, text string, y float64, groundRow int) {
	_, row := ctx.ToCell(0, y)
	if row <= groundRow || !ctx.InPlayfield(0, row) {
		return
	}
	n := utf8.RuneCountInString(text)
	if n > ctx.ScreenWidth {
		return
	}
	buf.DrawText((ctx.ScreenWidth-n)/2, row, text, render.RgbHintText, 0)
}
