package renderers

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lixenwraith/monkey-runner/core"
	"github.com/lixenwraith/monkey-runner/render"
)

// Inventory order and key labels as shown in the HUD
var hudPowers = []struct {
	kind  core.PowerKind
	key   string
	label string
}{
	{core.PowerBroccoli, "Space", "Broccoli"},
	{core.PowerCheese, "C", "Cheese"},
	{core.PowerGhostPepper, "X", "Ghost Pepper"},
	{core.PowerAtomic, "Z", "Atomic"},
}

// HUDRenderer draws the top status row: score, inventory, spawn pace and FPS
type HUDRenderer struct {
	printer *message.Printer
	colors  [core.PowerKindCount]render.RGB

	// FPS Tracking
	frameCount    int
	lastFpsUpdate time.Time
	currentFps    int
}

// NewHUDRenderer creates a HUD renderer; colors are the per-kind accents
func NewHUDRenderer(tag language.Tag, colors [core.PowerKindCount]render.RGB) *HUDRenderer {
	return &HUDRenderer{
		printer:       message.NewPrinter(tag),
		colors:        colors,
		lastFpsUpdate: time.Now(),
	}
}

// Render implements SystemRenderer
func (h *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	h.frameCount++
	now := time.Now()
	if now.Sub(h.lastFpsUpdate) >= time.Second {
		h.currentFps = h.frameCount
		h.frameCount = 0
		h.lastFpsUpdate = now
	}

	for x := 0; x < ctx.ScreenWidth; x++ {
		buf.SetWithBg(x, 0, ' ', render.RgbHUDText, render.RgbHUDBg)
	}

	snap := &ctx.Snapshot
	x := buf.DrawText(1, 0, h.ScoreText(snap.Score), render.RgbHUDText, 0)
	x += 2

	for _, p := range hudPowers {
		x = buf.DrawText(x, 0, p.key, render.RgbHUDDim, 0)
		x++
		x = buf.DrawText(x, 0, p.label, h.colors[p.kind], 0)
		x++
		x = buf.DrawText(x, 0, h.printer.Sprintf("%d", snap.Inventory[p.kind]), render.RgbHUDText, 0)
		x += 2
	}

	right := h.printer.Sprintf("pace %d  fps %d", snap.EnemyInterval, h.currentFps)
	if start := ctx.ScreenWidth - len(right) - 1; start > x {
		buf.DrawText(start, 0, right, render.RgbHUDDim, 0)
	}
}

// ScoreText formats the score with locale digit grouping
func (h *HUDRenderer) ScoreText(score int) string {
	return h.printer.Sprintf("Score: %d", score)
}
