package renderers

import (
	"math"

	"github.com/lixenwraith/monkey-runner/core"
	"github.com/lixenwraith/monkey-runner/engine"
	"github.com/lixenwraith/monkey-runner/parameter"
	"github.com/lixenwraith/monkey-runner/render"
)

var enemyGlyphs = [core.EnemyKindCount]rune{
	core.EnemyAlligator: 'W',
	core.EnemyCrab:      'X',
	core.EnemyScorpion:  'Y',
}

// EnemyRenderer draws live enemies and the destruction cloud of destroyed ones
type EnemyRenderer struct{}

// NewEnemyRenderer creates an enemy renderer
func NewEnemyRenderer() *EnemyRenderer {
	return &EnemyRenderer{}
}

// Render implements SystemRenderer
func (r *EnemyRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for i := range ctx.Snapshot.Enemies {
		e := &ctx.Snapshot.Enemies[i]
		if e.Destroyed {
			r.drawCloud(ctx, buf, e)
			continue
		}
		r.drawBody(ctx, buf, e)
	}
}

func (r *EnemyRenderer) drawBody(ctx render.RenderContext, buf *render.RenderBuffer, e *engine.EnemyView) {
	glyph := '?'
	if e.Kind.Valid() {
		glyph = enemyGlyphs[e.Kind]
	}
	dark := render.Scale(e.Color, 0.5)

	c0, r0, c1, r1 := ctx.RectCells(e.X, e.Y, e.W, e.H)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			if ctx.InPlayfield(col, row) {
				buf.SetWithBg(col, row, glyph, dark, e.Color)
			}
		}
	}
}

// drawCloud places the dots evenly around the enemy center
// Each dot travels outward and shrinks to nothing over the destruction lifetime
func (r *EnemyRenderer) drawCloud(ctx render.RenderContext, buf *render.RenderBuffer, e *engine.EnemyView) {
	radius := CloudDotRadius(e.Fade)
	if radius <= 0 {
		return
	}
	glyph := '.'
	switch {
	case radius > parameter.CloudDotRadius*2/3:
		glyph = 'O'
	case radius > parameter.CloudDotRadius/3:
		glyph = 'o'
	}

	cx, cy := e.X+e.W/2, e.Y+e.H/2
	dist := float64(e.DestroyedFor) * parameter.CloudSpreadPerFrame
	for i := 0; i < parameter.CloudDots; i++ {
		a := 2 * math.Pi * float64(i) / parameter.CloudDots
		col, row := ctx.ToCell(cx+math.Cos(a)*dist, cy+math.Sin(a)*dist)
		if ctx.InPlayfield(col, row) {
			buf.BlendFg(col, row, glyph, e.CloudColor, 1-e.Fade)
		}
	}
}

// CloudDotRadius is the dot radius at destruction progress fade
func CloudDotRadius(fade float64) float64 {
	return parameter.CloudDotRadius * (1 - fade)
}
