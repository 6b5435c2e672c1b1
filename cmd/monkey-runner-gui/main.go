// Command monkey-runner-gui runs the game in a window with sprites
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lixenwraith/monkey-runner/asset"
	"github.com/lixenwraith/monkey-runner/audio"
	"github.com/lixenwraith/monkey-runner/config"
	"github.com/lixenwraith/monkey-runner/core"
	"github.com/lixenwraith/monkey-runner/engine"
	"github.com/lixenwraith/monkey-runner/game"
	"github.com/lixenwraith/monkey-runner/input"
	"github.com/lixenwraith/monkey-runner/parameter"
)

var (
	configFlag = flag.String("config", "", "Config file (.toml, .yaml or .yml)")
	assetsFlag = flag.String("assets", "", "Sprite directory (overrides config)")
	debugFlag  = flag.Bool("debug", false, "Log to stderr")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
)

// Edge-triggered key bindings; movement is polled as held state
var edgeKeys = []struct {
	keys []ebiten.Key
	cmd  input.Command
}{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, input.Command{Action: input.ActionJump}},
	{[]ebiten.Key{ebiten.KeyZ}, input.UsePower(core.PowerAtomic)},
	{[]ebiten.Key{ebiten.KeyX}, input.UsePower(core.PowerGhostPepper)},
	{[]ebiten.Key{ebiten.KeyC}, input.UsePower(core.PowerCheese)},
	{[]ebiten.Key{ebiten.KeySpace}, input.UsePower(core.PowerBroccoli)},
	{[]ebiten.Key{ebiten.KeyP}, input.Command{Action: input.ActionTogglePause}},
	{[]ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}, input.Command{Action: input.ActionStart}},
	{[]ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}, input.Command{Action: input.ActionStop}},
}

var (
	colorSky     = color.NRGBA{0x87, 0xCE, 0xEB, 0xFF}
	colorPlayer  = color.NRGBA{0xA0, 0x6E, 0x3C, 0xFF}
	colorHint    = color.NRGBA{0xFF, 0xEB, 0xB4, 0xFF}
	colorShade   = color.NRGBA{0, 0, 0, 0xA0}
	colorTitle   = color.NRGBA{0xFF, 0xD7, 0x00, 0xFF}
	colorCombo   = color.NRGBA{0xFF, 0x45, 0x00, 0xFF}
	colorHUDText = color.White
)

// Game implements ebiten.Game over one session
type Game struct {
	game    *game.Game
	sprites *asset.Registry[image.Image]
	images  map[string]*ebiten.Image // GPU copies of ready sprites
	printer *message.Printer
	ground  color.NRGBA
	log     zerolog.Logger

	width, height int
}

func nrgba(c core.RGB, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Layout tracks the window size so the simulation viewport always matches it
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.game.Resize(float64(outsideWidth), float64(outsideHeight))
		g.log.Debug().Int("w", outsideWidth).Int("h", outsideHeight).Msg("window resized")
	}
	return outsideWidth, outsideHeight
}

// Update reads the keyboard and advances one frame
func (g *Game) Update() error {
	in := g.game.Input()
	in.SetHeld(input.ActionMoveLeft, ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA))
	in.SetHeld(input.ActionMoveRight, ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD))

	for _, b := range edgeKeys {
		for _, k := range b.keys {
			if !inpututil.IsKeyJustPressed(k) {
				continue
			}
			// Stop on the start screen closes the window
			if b.cmd.Action == input.ActionStop && (!g.game.Started() || g.game.Stopped()) {
				return ebiten.Termination
			}
			in.Press(b.cmd)
		}
	}

	g.game.Update()
	return nil
}

// sprite returns the GPU image for name, nil until the asset is ready
func (g *Game) sprite(name string) *ebiten.Image {
	if img, ok := g.images[name]; ok {
		return img
	}
	src, ok := g.sprites.Get(name)
	if !ok {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	g.images[name] = img
	return img
}

// drawBox draws name scaled into the rectangle, or a solid fallback
func (g *Game) drawBox(screen *ebiten.Image, name string, x, y, w, h float64, flip bool, fallback color.Color) {
	img := g.sprite(name)
	if img == nil {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), fallback, false)
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	if flip {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(w, 0)
	}
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}

func drawCentered(screen *ebiten.Image, s string, cx, y int, clr color.Color) {
	bounds := text.BoundString(basicfont.Face7x13, s)
	text.Draw(screen, s, basicfont.Face7x13, cx-bounds.Dx()/2, y, clr)
}

// Draw renders the current snapshot
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()
	w, h := float32(snap.Width), float32(snap.Height)

	screen.Fill(colorSky)
	vector.DrawFilledRect(screen, 0, float32(snap.GroundY), w, h-float32(snap.GroundY), g.ground, false)
	drawCentered(screen, parameter.ControlsHint, int(w/2), int(snap.Height-parameter.ControlsHintLift), colorHint)
	drawCentered(screen, parameter.GoalHint, int(w/2), int(snap.Height-parameter.GoalHintLift), colorHint)

	for _, f := range snap.Foods {
		g.drawBox(screen, asset.FoodSprite(f.Kind), f.X, f.Y, f.W, f.H, false, nrgba(f.Color, 0xFF))
	}

	for _, e := range snap.Enemies {
		if !e.Destroyed {
			g.drawBox(screen, asset.EnemySprite(e.Kind), e.X, e.Y, e.W, e.H, false, nrgba(e.Color, 0xFF))
			continue
		}
		g.drawCloud(screen, &e)
	}

	p := &snap.Player
	g.drawBox(screen, asset.PlayerSprite(p.Pose, p.PowerKind), p.X, p.Y, p.W, p.H, p.Facing == core.DirLeft, colorPlayer)

	for _, pt := range snap.Particles {
		if pt.Alpha <= 0 {
			continue
		}
		a := uint8(pt.Alpha * 255)
		vector.DrawFilledCircle(screen, float32(pt.X), float32(pt.Y), float32(pt.Size/2), nrgba(pt.Color, a), true)
	}

	g.drawHUD(screen, &snap)
	g.drawOverlay(screen, &snap)
}

func (g *Game) drawCloud(screen *ebiten.Image, e *engine.EnemyView) {
	radius := parameter.CloudDotRadius * (1 - e.Fade)
	if radius <= 0 {
		return
	}
	clr := nrgba(e.CloudColor, uint8((1-e.Fade)*255))
	cx, cy := e.X+e.W/2, e.Y+e.H/2
	dist := float64(e.DestroyedFor) * parameter.CloudSpreadPerFrame
	for i := 0; i < parameter.CloudDots; i++ {
		a := 2 * math.Pi * float64(i) / parameter.CloudDots
		x, y := cx+math.Cos(a)*dist, cy+math.Sin(a)*dist
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), clr, true)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, snap *engine.Snapshot) {
	text.Draw(screen, g.printer.Sprintf("Score: %d", snap.Score), basicfont.Face7x13, 10, 20, colorHUDText)
	line := g.printer.Sprintf("Broccoli %d   Cheese %d   Ghost Pepper %d   Atomic %d",
		snap.Inventory[core.PowerBroccoli], snap.Inventory[core.PowerCheese],
		snap.Inventory[core.PowerGhostPepper], snap.Inventory[core.PowerAtomic])
	text.Draw(screen, line, basicfont.Face7x13, 10, 38, colorHUDText)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.0f", ebiten.ActualFPS()), int(snap.Width)-60, 4)
}

func (g *Game) drawOverlay(screen *ebiten.Image, snap *engine.Snapshot) {
	cx, cy := int(snap.Width/2), int(snap.Height/2)

	switch {
	case !snap.Started:
		vector.DrawFilledRect(screen, 0, 0, float32(snap.Width), float32(snap.Height), colorShade, false)
		drawCentered(screen, parameter.TitleText, cx, cy-40, colorTitle)
		drawCentered(screen, parameter.StartHint, cx, cy, color.White)
		if snap.Frame > 0 {
			drawCentered(screen, g.printer.Sprintf("Last score: %d", snap.Score), cx, cy+30, color.White)
		}
	case snap.Paused:
		vector.DrawFilledRect(screen, 0, 0, float32(snap.Width), float32(snap.Height), colorShade, false)
		drawCentered(screen, parameter.PausedText, cx, cy, color.White)
	}

	if snap.Started && snap.ComboVisible {
		drawCentered(screen, g.printer.Sprintf("%dx COMBO!", snap.Combo), cx, int(snap.Height/4), colorCombo)
	}
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if *assetsFlag != "" {
		cfg.Display.AssetDir = *assetsFlag
	}

	log := zerolog.Nop()
	if cfg.Debug {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	sound := audio.New(cfg.Audio, log)
	if err := sound.Start(); err != nil {
		log.Warn().Err(err).Msg("audio start failed, continuing without audio")
	}
	defer sound.Close()

	sprites := asset.NewRegistry(os.DirFS(cfg.Display.AssetDir), asset.DecodeImage, log)
	asset.LoadSprites(sprites)

	width, height := parameter.DefaultViewportWidth, parameter.DefaultViewportHeight
	g := &Game{
		game: game.New(game.Options{
			Tuning: &cfg.Tuning,
			Audio:  sound,
			Logger: log,
			Width:  float64(width),
			Height: float64(height),
		}),
		sprites: sprites,
		images:  make(map[string]*ebiten.Image),
		printer: message.NewPrinter(language.English),
		ground:  nrgba(core.MustHex(parameter.GroundColor), 0xFF),
		log:     log,
		width:   width,
		height:  height,
	}

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(parameter.TitleText)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(parameter.FramesPerSecond)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error().Err(err).Msg("game exited with error")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		sound.Close()
		os.Exit(1)
	}
}
