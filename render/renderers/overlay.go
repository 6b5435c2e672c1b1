package renderers

import (
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lixenwraith/monkey-runner/parameter"
	"github.com/lixenwraith/monkey-runner/render"
)

// OverlayRenderer draws the start screen, the pause banner and the combo banner
type OverlayRenderer struct {
	printer *message.Printer
}

// NewOverlayRenderer creates a new overlay renderer
func NewOverlayRenderer(tag language.Tag) *OverlayRenderer {
	return &OverlayRenderer{printer: message.NewPrinter(tag)}
}

// IsVisible returns true when any overlay applies
func (r *OverlayRenderer) IsVisible(ctx render.RenderContext) bool {
	s := &ctx.Snapshot
	return !s.Started || s.Paused || s.ComboVisible
}

// Render implements SystemRenderer
func (r *OverlayRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	s := &ctx.Snapshot
	switch {
	case !s.Started:
		lines := []string{parameter.TitleText, "", parameter.StartHint, "", parameter.ControlsHint, parameter.GoalHint}
		if s.Frame > 0 {
			lines = append(lines, "", r.printer.Sprintf("Last score: %d", s.Score))
		}
		r.drawBox(ctx, buf, lines)
	case s.Paused:
		r.drawBox(ctx, buf, []string{parameter.PausedText})
	}

	if s.Started && s.ComboVisible {
		text := r.printer.Sprintf("%dx COMBO!", s.Combo)
		row := ctx.GameY + ctx.GameHeight/4
		col := (ctx.ScreenWidth - utf8.RuneCountInString(text)) / 2
		buf.DrawText(col, row, text, render.RgbCombo, 0)
	}
}

// drawBox centers lines in a bordered panel, the first line as a title
func (r *OverlayRenderer) drawBox(ctx render.RenderContext, buf *render.RenderBuffer, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	boxW := min(width+4, ctx.ScreenWidth)
	boxH := min(len(lines)+2, ctx.GameHeight)
	x0 := (ctx.ScreenWidth - boxW) / 2
	y0 := ctx.GameY + (ctx.GameHeight-boxH)/2

	for y := 0; y < boxH; y++ {
		for x := 0; x < boxW; x++ {
			ch := ' '
			switch {
			case (y == 0 || y == boxH-1) && (x == 0 || x == boxW-1):
				ch = '+'
			case y == 0 || y == boxH-1:
				ch = '-'
			case x == 0 || x == boxW-1:
				ch = '|'
			}
			buf.SetWithBg(x0+x, y0+y, ch, render.RgbOverlayFg, render.RgbOverlayBg)
		}
	}

	for i, l := range lines {
		if i+1 >= boxH-1 {
			break
		}
		fg := render.RgbOverlayFg
		if i == 0 {
			fg = render.RgbTitle
		}
		col := x0 + (boxW-utf8.RuneCountInString(l))/2
		buf.DrawText(col, y0+1+i, l, fg, 0)
	}
}
