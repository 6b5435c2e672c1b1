package renderers

import (
	"github.com/lixenwraith/monkey-runner/core"
	"github.com/lixenwraith/monkey-runner/render"
)

var foodGlyphs = [core.PowerKindCount]rune{
	core.PowerBroccoli:    'b',
	core.PowerCheese:      'c',
	core.PowerGhostPepper: 'g',
	core.PowerAtomic:      'a',
}

// FoodGlyph returns the glyph drawn on a consumable of kind
func FoodGlyph(kind core.PowerKind) rune {
	if !kind.Valid() {
		return '?'
	}
	return foodGlyphs[kind]
}

// FoodRenderer draws consumables as colored blocks with a kind glyph
type FoodRenderer struct{}

// NewFoodRenderer creates a food renderer
func NewFoodRenderer() *FoodRenderer {
	return &FoodRenderer{}
}

// Render implements SystemRenderer
func (r *FoodRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, f := range ctx.Snapshot.Foods {
		c0, r0, c1, r1 := ctx.RectCells(f.X, f.Y, f.W, f.H)
		for row := r0; row < r1; row++ {
			for col := c0; col < c1; col++ {
				if ctx.InPlayfield(col, row) {
					buf.SetWithBg(col, row, ' ', render.RgbBlack, f.Color)
				}
			}
		}
		if ctx.InPlayfield(c0, r0) {
			buf.SetFgOnly(c0, r0, FoodGlyph(f.Kind), render.RgbBlack, 0)
		}
	}
}
