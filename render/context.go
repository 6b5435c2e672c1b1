package render

import (
	"math"
	"time"

	"github.com/lixenwraith/monkey-runner/engine"
	"github.com/lixenwraith/monkey-runner/parameter"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Snapshot engine.Snapshot
	GameTime time.Time

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Playfield rows start below the HUD
	GameY      int
	GameHeight int

	// Simulation pixels covered by one cell
	CellWidth  float64
	CellHeight float64
}

// NewRenderContext builds the context for one frame
func NewRenderContext(snap engine.Snapshot, gameTime time.Time, screenW, screenH int, cellW, cellH float64) RenderContext {
	gameH := screenH - parameter.HUDRows
	if gameH < 0 {
		gameH = 0
	}
	if cellW <= 0 {
		cellW = parameter.DefaultCellWidth
	}
	if cellH <= 0 {
		cellH = parameter.DefaultCellHeight
	}
	return RenderContext{
		Snapshot:     snap,
		GameTime:     gameTime,
		ScreenWidth:  screenW,
		ScreenHeight: screenH,
		GameY:        parameter.HUDRows,
		GameHeight:   gameH,
		CellWidth:    cellW,
		CellHeight:   cellH,
	}
}

// ToCell converts a simulation point to screen coordinates
func (rc *RenderContext) ToCell(x, y float64) (int, int) {
	return int(math.Floor(x / rc.CellWidth)), int(math.Floor(y/rc.CellHeight)) + rc.GameY
}

// RectCells returns the cell span [c0,c1) x [r0,r1) covered by a simulation rectangle
// A non-empty rectangle always covers at least one cell
func (rc *RenderContext) RectCells(x, y, w, h float64) (c0, r0, c1, r1 int) {
	c0, r0 = rc.ToCell(x, y)
	c1 = int(math.Ceil((x + w) / rc.CellWidth))
	r1 = int(math.Ceil((y+h)/rc.CellHeight)) + rc.GameY
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}
	return c0, r0, c1, r1
}

// InPlayfield reports whether a screen cell lies inside the playfield
func (rc *RenderContext) InPlayfield(col, row int) bool {
	return col >= 0 && col < rc.ScreenWidth && row >= rc.GameY && row < rc.GameY+rc.GameHeight
}

// GroundRow returns the first screen row of the ground band
func (rc *RenderContext) GroundRow() int {
	_, row := rc.ToCell(0, rc.Snapshot.GroundY)
	return row
}

// SimSize returns the simulation viewport matching a terminal of cols x rows
func SimSize(cols, rows int, cellW, cellH float64) (float64, float64) {
	gameRows := rows - parameter.HUDRows
	if gameRows < 1 {
		gameRows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return float64(cols) * cellW, float64(gameRows) * cellH
}
