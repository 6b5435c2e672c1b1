package game

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/lixenwraith/monkey-runner/component"
	"github.com/lixenwraith/monkey-runner/core"
	"github.com/lixenwraith/monkey-runner/engine"
	"github.com/lixenwraith/monkey-runner/input"
)

func newTestGame(t *testing.T) (*Game, *engine.MockTimeProvider, *engine.RecordingAudio) {
	t.Helper()
	mock := engine.NewMockTimeProvider(time.Unix(1_700_000_000, 0))
	audio := &engine.RecordingAudio{}
	g := New(Options{
		Clock: engine.NewPausableClock(mock),
		Audio: audio,
		Rand:  rand.New(rand.NewPCG(1, 2)),
	})
	return g, mock, audio
}

// quiet suppresses spawning so a test controls every entity
func quiet(g *Game) {
	w := g.World()
	w.FoodTimer = 1 << 30
	w.EnemyTimer = 1 << 30
}

func groundPlayer(w *engine.World, x float64) {
	w.Player.X = x
	w.Player.Y = w.GroundY() - w.Player.H
	w.Player.VY = 0
	w.Player.Grounded = true
}

func TestStartScreen(t *testing.T) {
	g, _, audio := newTestGame(t)

	g.Update()
	if g.Started() || g.World().Frame != 0 || len(g.World().Enemies) != 0 {
		t.Fatal("simulation ran before start")
	}
	if g.Snapshot().Started {
		t.Error("snapshot reports started")
	}

	g.Input().Press(input.Command{Action: input.ActionStart})
	g.Update()

	if !g.Started() || !g.Snapshot().Started {
		t.Fatal("start ignored")
	}
	if len(g.World().Foods) != 1 || len(g.World().Enemies) != 1 {
		t.Errorf("first frame spawned %d foods %d enemies", len(g.World().Foods), len(g.World().Enemies))
	}
	if !audio.Looping {
		t.Error("background loop not started")
	}
}

func TestPauseFreezesSimulationAndClock(t *testing.T) {
	g, mock, _ := newTestGame(t)
	g.Start()
	g.Update()
	frame := g.World().Frame
	before := g.World().Clock.Now()

	g.Input().Press(input.Command{Action: input.ActionTogglePause})
	g.Update()
	mock.Advance(time.Second)
	g.Update()

	if g.World().Frame != frame {
		t.Errorf("frame advanced while paused: %d -> %d", frame, g.World().Frame)
	}
	if !g.World().Clock.Now().Equal(before) {
		t.Error("game clock advanced while paused")
	}
	if !g.Snapshot().Paused {
		t.Error("snapshot not paused")
	}

	// Powers are rejected while paused
	if g.HandleCommand(input.UsePower(core.PowerCheese)) {
		t.Error("power accepted while paused")
	}

	g.TogglePause()
	g.Update()
	if g.World().Frame != frame+1 {
		t.Errorf("frame = %d after resume, want %d", g.World().Frame, frame+1)
	}
}

func TestPowerResolvesBeforeCollision(t *testing.T) {
	g, _, audio := newTestGame(t)
	g.Start()
	quiet(g)
	w := g.World()
	groundPlayer(w, 100)

	spec := w.Tuning.Enemy(core.EnemyAlligator)
	w.Enemies = append(w.Enemies, component.Enemy{
		Kind: core.EnemyAlligator, X: 130, Y: w.GroundY() - spec.Height,
		VX: -2, W: spec.Width, H: spec.Height, Points: spec.Points,
	})

	g.Input().Press(input.UsePower(core.PowerCheese))
	g.Update()

	e := w.Enemies[0]
	if e.Cause != core.PowerKill(core.PowerCheese) {
		t.Fatalf("cause = %v, want power:cheese", e.Cause)
	}
	if w.Score.Value != 60 {
		t.Errorf("score = %d, want 60", w.Score.Value)
	}
	if e.X != 130 {
		t.Errorf("destroyed enemy moved to %v", e.X)
	}
	if !audio.Played(core.CueCheese) {
		t.Error("cheese cue missing")
	}
}

func TestPowerWithoutEnemiesUsesFacing(t *testing.T) {
	g, mock, _ := newTestGame(t)
	g.Start()
	quiet(g)
	w := g.World()
	groundPlayer(w, 400)
	w.Player.Facing = core.DirLeft

	// Held key points the other way and nothing is on screen
	g.Input().Press(input.Command{Action: input.ActionMoveRight})
	g.Input().Press(input.UsePower(core.PowerCheese))
	mock.Step(1)
	g.Update()

	if !w.Player.Performing() || w.Player.Facing != core.DirLeft {
		t.Fatalf("pose = %v facing = %v, want performing left", w.Player.Pose, w.Player.Facing)
	}
	if len(w.Particles) == 0 {
		t.Fatal("no burst emitted")
	}
	for _, p := range w.Particles {
		if p.VX >= 0 {
			t.Fatalf("burst particle %+v, want moving left", p)
		}
	}
}

func TestJumpAndHeldMovement(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.Start()
	quiet(g)
	w := g.World()
	groundPlayer(w, 100)

	g.Input().Press(input.Command{Action: input.ActionJump})
	g.Update()
	if w.Player.Grounded || w.Player.VY >= 0 {
		t.Fatalf("jump not applied: grounded=%v vy=%v", w.Player.Grounded, w.Player.VY)
	}

	groundPlayer(w, 100)
	g.Input().Press(input.Command{Action: input.ActionMoveRight})
	for i := 0; i < 5; i++ {
		g.Update()
	}
	if w.Player.X != 125 {
		t.Errorf("X = %v after 5 held frames, want 125", w.Player.X)
	}

	for i := 0; i < 40; i++ {
		g.Update()
	}
	x := w.Player.X
	g.Update()
	if w.Player.X != x {
		t.Error("movement continued after hold expired")
	}
}

func TestStopAndRestart(t *testing.T) {
	g, _, audio := newTestGame(t)
	g.Start()
	g.World().AddScore(120)
	g.World().Inventory.Use(core.PowerAtomic)

	g.Input().Press(input.Command{Action: input.ActionStop})
	g.Update()
	if !g.Stopped() || audio.Looping {
		t.Fatal("stop ignored")
	}
	frame := g.World().Frame
	g.Update()
	if g.World().Frame != frame {
		t.Error("simulation ran after stop")
	}
	if g.HandleCommand(input.Command{Action: input.ActionTogglePause}) {
		t.Error("pause accepted after stop")
	}

	g.Start()
	if g.Stopped() || g.World().Score.Value != 0 || g.World().Inventory.Count(core.PowerAtomic) != 5 {
		t.Errorf("restart did not reset: score %d atomic %d", g.World().Score.Value, g.World().Inventory.Count(core.PowerAtomic))
	}
}

func TestResizeMidSession(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.Start()
	for i := 0; i < 10; i++ {
		g.Update()
	}
	g.Resize(320, 240)
	for i := 0; i < 10; i++ {
		g.Update()
	}
	s := g.Snapshot()
	if s.Width != 320 || s.GroundY != 40 {
		t.Errorf("viewport = %vx%v ground %v", s.Width, s.Height, s.GroundY)
	}
	if s.Player.X+s.Player.W > 320 {
		t.Errorf("player outside viewport: %v", s.Player.X)
	}
}

func TestSessionInvariants(t *testing.T) {
	g, mock, _ := newTestGame(t)
	g.Start()
	w := g.World()
	rng := rand.New(rand.NewPCG(99, 7))

	commands := []input.Command{
		{Action: input.ActionMoveLeft},
		{Action: input.ActionMoveRight},
		{Action: input.ActionJump},
		input.UsePower(core.PowerBroccoli),
		input.UsePower(core.PowerCheese),
		input.UsePower(core.PowerGhostPepper),
		input.UsePower(core.PowerAtomic),
	}

	lastInterval := w.Score.EnemyInterval
	lastThreshold := w.Score.Threshold
	for frame := 0; frame < 20000; frame++ {
		if rng.IntN(4) == 0 {
			g.Input().Press(commands[rng.IntN(len(commands))])
		}
		g.Update()
		mock.Step(1)

		if w.Score.Value < 0 {
			t.Fatalf("frame %d: score %d", frame, w.Score.Value)
		}
		for _, k := range core.AllPowerKinds() {
			if w.Inventory.Count(k) < 0 {
				t.Fatalf("frame %d: inventory %s = %d", frame, k, w.Inventory.Count(k))
			}
		}
		if w.Score.EnemyInterval > lastInterval || w.Score.EnemyInterval < w.Tuning.Spawn.EnemyMinInterval {
			t.Fatalf("frame %d: interval %d (previous %d)", frame, w.Score.EnemyInterval, lastInterval)
		}
		if w.Score.Threshold < lastThreshold {
			t.Fatalf("frame %d: threshold decreased", frame)
		}
		for i := range w.Particles {
			if w.Particles[i].Life <= 0 {
				t.Fatalf("frame %d: dead particle kept", frame)
			}
		}
		lastInterval = w.Score.EnemyInterval
		lastThreshold = w.Score.Threshold
	}
}
