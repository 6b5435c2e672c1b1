package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/lixenwraith/monkey-runner/asset"
	"github.com/lixenwraith/monkey-runner/audio"
	"github.com/lixenwraith/monkey-runner/config"
	"github.com/lixenwraith/monkey-runner/core"
	"github.com/lixenwraith/monkey-runner/engine"
	"github.com/lixenwraith/monkey-runner/game"
	"github.com/lixenwraith/monkey-runner/input"
	"github.com/lixenwraith/monkey-runner/parameter"
	"github.com/lixenwraith/monkey-runner/render"
	"github.com/lixenwraith/monkey-runner/render/renderers"
)

var (
	configFlag      = flag.String("config", "", "Config file (.toml, .yaml or .yml)")
	colorModeFlag   = flag.String("color", "", "Color mode: auto, truecolor, 256 (overrides config)")
	debugFlag       = flag.Bool("debug", false, "Write debug logs to logs/")
	muteFlag        = flag.Bool("mute", false, "Disable audio")
	writeConfigFlag = flag.String("write-config", "", "Write the default config to the given path and exit")
)

// errQuit ends the frame loop normally
var errQuit = errors.New("quit")

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if *writeConfigFlag != "" {
		if err := os.WriteFile(*writeConfigFlag, []byte(asset.DefaultConfigTOML), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
			os.Exit(1)
		}
		return
	}

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
	if *colorModeFlag != "" {
		cfg.Display.ColorMode = *colorModeFlag
	}

	logger, logFile := setupLogging(cfg.Debug, logDir)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg, logger); err != nil {
		logger.Error().Err(err).Msg("exited with error")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	keymap := input.DefaultKeymap()
	if err := keymap.Apply(cfg.Keys); err != nil {
		return fmt.Errorf("keys: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetCrashCleanup(screen.Fini)
	defer core.SetCrashCleanup(nil)

	sound := audio.New(cfg.Audio, log)
	if err := sound.Start(); err != nil {
		log.Warn().Err(err).Msg("audio start failed, continuing without audio")
	}
	defer sound.Close()

	mode := render.ParseColorMode(cfg.Display.ColorMode, os.Getenv)
	log.Info().
		Str("color_mode", cfg.Display.ColorMode).
		Bool("truecolor", mode == render.ColorModeTrueColor).
		Bool("audio", sound.Status() == nil).
		Msg("terminal frontend starting")

	f := newFrontend(screen, cfg, keymap, sound, mode, log)
	return f.loop()
}

// frontend couples one tcell screen to one game session
type frontend struct {
	screen       tcell.Screen
	game         *game.Game
	clock        *engine.PausableClock
	keymap       *input.Keymap
	orchestrator *render.RenderOrchestrator
	log          zerolog.Logger

	cellW, cellH float64
	cols, rows   int
}

func newFrontend(screen tcell.Screen, cfg *config.Config, keymap *input.Keymap, sound engine.Audio, mode render.ColorMode, log zerolog.Logger) *frontend {
	f := &frontend{
		screen: screen,
		clock:  engine.NewPausableClock(nil),
		keymap: keymap,
		log:    log,
		cellW:  float64(cfg.Display.CellWidth),
		cellH:  float64(cfg.Display.CellHeight),
	}
	f.cols, f.rows = screen.Size()

	simW, simH := render.SimSize(f.cols, f.rows, f.cellW, f.cellH)
	f.game = game.New(game.Options{
		Tuning: &cfg.Tuning,
		Audio:  sound,
		Clock:  f.clock,
		Logger: log,
		Width:  simW,
		Height: simH,
	})

	f.orchestrator = render.NewRenderOrchestrator(screen, mode)
	renderers.RegisterAll(f.orchestrator, &cfg.Tuning, language.English)
	return f
}

// loop runs the event poller and the frame loop until quit or poller failure
func (f *frontend) loop() error {
	g, ctx := errgroup.WithContext(context.Background())
	events := make(chan tcell.Event, parameter.InputQueueSize)

	// Input polling uses its own goroutine as it blocks on the terminal
	g.Go(func() error {
		defer func() {
			if r := recover(); r != nil {
				core.HandleCrash(r)
			}
		}()
		for {
			ev := f.screen.PollEvent()
			// Screen finalized
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		// Unblocks PollEvent
		defer f.screen.Fini()

		frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
		defer frameTicker.Stop()

		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case ev := <-events:
				if !f.handleEvent(ev) {
					return errQuit
				}
			case <-frameTicker.C:
				f.frame()
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	f.log.Info().Int("score", f.game.World().Score.Value).Msg("terminal frontend exited")
	return nil
}

// handleEvent applies one terminal event; false requests exit
func (f *frontend) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd, ok := f.keymap.Translate(ev)
		if !ok {
			return true
		}
		// Stop on the start screen leaves the program
		if cmd.Action == input.ActionStop && (!f.game.Started() || f.game.Stopped()) {
			return false
		}
		f.game.Input().Press(cmd)

	case *tcell.EventResize:
		f.cols, f.rows = ev.Size()
		f.orchestrator.Resize(f.cols, f.rows)
		f.game.Resize(render.SimSize(f.cols, f.rows, f.cellW, f.cellH))
		f.log.Debug().Int("cols", f.cols).Int("rows", f.rows).Msg("terminal resized")
	}
	return true
}

// frame advances the simulation one step and draws it
func (f *frontend) frame() {
	f.game.Update()
	ctx := render.NewRenderContext(f.game.Snapshot(), f.clock.Now(), f.cols, f.rows, f.cellW, f.cellH)
	f.orchestrator.RenderFrame(ctx)
}
