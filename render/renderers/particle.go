package renderers

import (
	"github.com/lixenwraith/monkey-runner/component"
	"github.com/lixenwraith/monkey-runner/render"
)

// ParticleRenderer blends particles over whatever is beneath them
// Mushroom stem and cap particles tint the background to read as glow
type ParticleRenderer struct{}

// NewParticleRenderer creates a particle renderer
func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

// Render implements SystemRenderer
func (r *ParticleRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, p := range ctx.Snapshot.Particles {
		if p.Alpha <= 0 {
			continue
		}
		col, row := ctx.ToCell(p.X, p.Y)
		if !ctx.InPlayfield(col, row) {
			continue
		}

		switch p.Phase {
		case component.PhaseStem, component.PhaseCap:
			buf.BlendBg(col, row, p.Color, p.Alpha)
		case component.PhaseFlash:
			buf.BlendBg(col, row, p.Color, p.Alpha)
			buf.BlendFg(col, row, '*', p.Color, 1)
		default:
			buf.BlendFg(col, row, ParticleGlyph(p.Size), p.Color, p.Alpha)
		}
	}
}

// ParticleGlyph picks a glyph by particle size in simulation pixels
func ParticleGlyph(size float64) rune {
	switch {
	case size >= 12:
		return '@'
	case size >= 8:
		return 'o'
	default:
		return '.'
	}
}
