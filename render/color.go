package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/monkey-runner/core"
)

// RGB is the simulation color type, extended here with blending
type RGB = core.RGB

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// Palette
var (
	RgbBackground = RGB{R: 135, G: 206, B: 235} // Sky
	RgbSkyLow     = RGB{R: 190, G: 230, B: 245}
	RgbGround     = RGB{R: 139, G: 90, B: 43}
	RgbGroundTop  = RGB{R: 34, G: 139, B: 34}
	RgbHintText   = RGB{R: 255, G: 235, B: 180}
	RgbPlayer     = RGB{R: 160, G: 110, B: 60}
	RgbPlayerFace = RGB{R: 245, G: 215, B: 170}
	RgbHUDBg      = RGB{R: 20, G: 20, B: 30}
	RgbHUDText    = RGB{R: 255, G: 255, B: 255}
	RgbHUDDim     = RGB{R: 150, G: 150, B: 160}
	RgbOverlayBg  = RGB{R: 10, G: 10, B: 20}
	RgbOverlayFg  = RGB{R: 255, G: 255, B: 255}
	RgbTitle      = RGB{R: 255, G: 215, B: 0}
	RgbCombo      = RGB{R: 255, G: 69, B: 0}
	RgbBlack      = RGB{}
)

// Color cube values for the 6x6x6 palette (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// grayscaleStart is the first grayscale index (232-255 = 24 shades)
const grayscaleStart = 232

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func cubeIndex(v uint8) int {
	best := 0
	bestDist := abs(int(v) - int(cubeValues[0]))
	for j := 1; j < len(cubeValues); j++ {
		if d := abs(int(v) - int(cubeValues[j])); d < bestDist {
			bestDist = d
			best = j
		}
	}
	return best
}

// RGBTo256 finds the nearest xterm-256 palette index
// Near-gray colors are compared against the grayscale ramp as well as the cube
func RGBTo256(c RGB) uint8 {
	r, g, b := int(c.R), int(c.G), int(c.B)
	ci, gi, bi := cubeIndex(c.R), cubeIndex(c.G), cubeIndex(c.B)
	cube := uint8(16 + 36*ci + 6*gi + bi)

	gray := (r + g + b) / 3
	if max(abs(r-gray), abs(g-gray), abs(b-gray)) >= 10 {
		return cube
	}
	if gray < 4 {
		return 16
	}
	if gray > 243 {
		return 231
	}

	grayIdx := grayscaleStart + (gray-8)/10
	if grayIdx > 255 {
		grayIdx = 255
	}
	level := 8 + (grayIdx-grayscaleStart)*10
	grayDist := abs(r-level) + abs(g-level) + abs(b-level)
	cubeDist := abs(r-int(cubeValues[ci])) + abs(g-int(cubeValues[gi])) + abs(b-int(cubeValues[bi]))
	if grayDist < cubeDist {
		return uint8(grayIdx)
	}
	return cube
}

// ParseColorMode resolves a configured mode; "auto" consults the environment
func ParseColorMode(name string, getenv func(string) string) ColorMode {
	switch name {
	case "truecolor":
		return ColorModeTrueColor
	case "256":
		return ColorMode256
	}
	return DetectColorMode(getenv)
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode(getenv func(string) string) ColorMode {
	switch getenv("COLORTERM") {
	case "truecolor", "24bit":
		return ColorModeTrueColor
	}
	if getenv("KITTY_WINDOW_ID") != "" || getenv("WEZTERM_PANE") != "" || getenv("ITERM_SESSION_ID") != "" {
		return ColorModeTrueColor
	}
	return ColorMode256
}

// TcellColor converts c for the given mode
func TcellColor(c RGB, mode ColorMode) tcell.Color {
	if mode == ColorMode256 {
		return tcell.PaletteColor(int(RGBTo256(c)))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Blend mixes src over dst with alpha in [0,1]
func Blend(dst, src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1 - alpha
	return RGB{
		R: clamp(float64(dst.R)*inv + float64(src.R)*alpha),
		G: clamp(float64(dst.G)*inv + float64(src.G)*alpha),
		B: clamp(float64(dst.B)*inv + float64(src.B)*alpha),
	}
}

// Scale multiplies each channel by f
func Scale(c RGB, f float64) RGB {
	return RGB{R: clamp(float64(c.R) * f), G: clamp(float64(c.G) * f), B: clamp(float64(c.B) * f)}
}
