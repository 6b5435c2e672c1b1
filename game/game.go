// Package game owns one simulation session and drives it frame by frame
package game

import (
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/monkey-runner/config"
	"github.com/lixenwraith/monkey-runner/engine"
	"github.com/lixenwraith/monkey-runner/input"
	"github.com/lixenwraith/monkey-runner/parameter"
	"github.com/lixenwraith/monkey-runner/system"
)

// pauser is implemented by clocks that can freeze game time
type pauser interface {
	Pause()
	Resume()
}

// Options configures a new Game; zero values select defaults
type Options struct {
	Tuning     *config.Tuning
	Audio      engine.Audio
	Clock      engine.TimeProvider // Defaults to a PausableClock over the system clock
	Rand       *rand.Rand
	Logger     zerolog.Logger
	Width      float64
	Height     float64
	HoldFrames int // Terminal movement hold, defaults to parameter.KeyHoldFrames
}

// Game is the single mutator of its World
// Frontends feed input through Input(), call Update once per frame and render Snapshot()
type Game struct {
	world *engine.World
	clock engine.TimeProvider
	input *input.State
	log   zerolog.Logger

	started bool
	paused  bool
	stopped bool
	jump    bool // Jump pressed since the last frame
}

// New creates a game sitting on its start screen
func New(opts Options) *Game {
	clock := opts.Clock
	if clock == nil {
		clock = engine.NewPausableClock(nil)
	}
	hold := opts.HoldFrames
	if hold <= 0 {
		hold = parameter.KeyHoldFrames
	}

	worldOpts := []engine.WorldOption{
		engine.WithClock(clock),
		engine.WithLogger(opts.Logger),
	}
	if opts.Audio != nil {
		worldOpts = append(worldOpts, engine.WithAudio(opts.Audio))
	}
	if opts.Rand != nil {
		worldOpts = append(worldOpts, engine.WithRand(opts.Rand))
	}
	if opts.Width > 0 && opts.Height > 0 {
		worldOpts = append(worldOpts, engine.WithViewport(opts.Width, opts.Height))
	}

	w := engine.NewWorld(opts.Tuning, worldOpts...)
	system.RegisterAll(w)

	return &Game{
		world: w,
		clock: clock,
		input: input.NewState(hold),
		log:   opts.Logger,
	}
}

// World exposes the simulation context for frontends and tests
func (g *Game) World() *engine.World { return g.world }

// Input returns the input state frontends write into
func (g *Game) Input() *input.State { return g.input }

// Started reports whether the run has begun
func (g *Game) Started() bool { return g.started }

// Paused reports whether the simulation is frozen
func (g *Game) Paused() bool { return g.paused }

// Stopped reports whether the run was torn down
func (g *Game) Stopped() bool { return g.stopped }

// Start begins the run and the background loop; a stopped game restarts fresh
func (g *Game) Start() {
	if g.started && !g.stopped {
		return
	}
	if g.stopped {
		g.world.Reset()
		g.input.Clear()
		g.stopped = false
	}
	g.started = true
	g.setPaused(false)
	g.world.Running = true
	g.world.Audio.StartLoop()
	g.log.Info().Msg("run started")
}

// Stop ends the run; mid-frame state is not preserved
func (g *Game) Stop() {
	if g.stopped {
		return
	}
	g.stopped = true
	g.world.Running = false
	g.setPaused(false)
	g.world.Audio.StopLoop()
	g.log.Info().Int("score", g.world.Score.Value).Uint64("frames", g.world.Frame).Msg("run stopped")
}

// TogglePause freezes or resumes the simulation; rendering continues while paused
func (g *Game) TogglePause() {
	if !g.started || g.stopped {
		return
	}
	g.setPaused(!g.paused)
	g.log.Debug().Bool("paused", g.paused).Msg("pause toggled")
}

func (g *Game) setPaused(paused bool) {
	if g.paused == paused {
		return
	}
	g.paused = paused
	if p, ok := g.clock.(pauser); ok {
		if paused {
			p.Pause()
		} else {
			p.Resume()
		}
	}
}

// Resize applies a new viewport in simulation pixels
func (g *Game) Resize(width, height float64) {
	g.world.Resize(width, height)
}

// Active reports whether simulation input is accepted this frame
func (g *Game) Active() bool {
	return g.started && !g.paused && !g.stopped
}

// HandleCommand applies one edge-triggered command immediately
// Returns true if the command had an effect
func (g *Game) HandleCommand(cmd input.Command) bool {
	switch cmd.Action {
	case input.ActionStart:
		if g.started && !g.stopped {
			return false
		}
		g.Start()
		return true
	case input.ActionTogglePause:
		if !g.started || g.stopped {
			return false
		}
		g.TogglePause()
		return true
	case input.ActionStop:
		if g.stopped {
			return false
		}
		g.Stop()
		return true
	case input.ActionJump:
		if !g.Active() {
			return false
		}
		g.jump = true
		return true
	case input.ActionUsePower:
		if !g.Active() {
			return false
		}
		return system.TryUsePower(g.world, cmd.Power, g.world.Player.Facing)
	}
	return false
}

// Update runs one frame: queued commands first, so attacks resolve before
// positional collision, then every system in priority order
func (g *Game) Update() {
	for _, cmd := range g.input.Drain() {
		g.HandleCommand(cmd)
	}

	if g.Active() {
		g.world.Control = engine.Control{Move: g.input.Move(), Jump: g.jump}
		g.world.Update()
	}
	g.jump = false
	g.input.Tick()
}

// Snapshot returns the render state for the current frame
func (g *Game) Snapshot() engine.Snapshot {
	s := g.world.Snapshot()
	s.Started = g.started && !g.stopped
	s.Paused = g.paused
	return s
}
