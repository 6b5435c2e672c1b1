package system

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/monkey-runner/component"
	"github.com/lixenwraith/monkey-runner/config"
	"github.com/lixenwraith/monkey-runner/core"
	"github.com/lixenwraith/monkey-runner/engine"
)

// groundPlayer rests the player on the ground line at x
func groundPlayer(w *engine.World, x float64) {
	w.Player.X = x
	w.Player.Y = w.GroundY() - w.Player.H
	w.Player.VY = 0
	w.Player.Grounded = true
}

func alligatorAt(w *engine.World, x float64) component.Enemy {
	spec := w.Tuning.Enemy(core.EnemyAlligator)
	return component.Enemy{
		ID:     w.NextID(),
		Kind:   core.EnemyAlligator,
		X:      x,
		Y:      w.GroundY() - spec.Height,
		VX:     -2,
		W:      spec.Width,
		H:      spec.Height,
		Points: spec.Points,
	}
}

func TestPlayerFallsAndLands(t *testing.T) {
	w, _, audio := engine.NewTestWorld(1)
	sys := NewPlayerSystem()

	for i := 0; i < 200 && !w.Player.Grounded; i++ {
		sys.Update(w)
	}
	if !w.Player.Grounded {
		t.Fatal("player never landed")
	}
	if got, want := w.Player.Y, w.GroundY()-w.Player.H; got != want {
		t.Errorf("Y = %v, want %v", got, want)
	}
	if w.Player.VY != 0 {
		t.Errorf("VY = %v, want 0", w.Player.VY)
	}
	if !audio.Played(core.CueLand) {
		t.Error("land cue not played after a fall")
	}
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	w, _, audio := engine.NewTestWorld(1)
	sys := NewPlayerSystem()
	groundPlayer(w, 100)

	w.Control.Jump = true
	sys.Update(w)
	if w.Player.Grounded || w.Player.VY != -24.5 {
		t.Fatalf("after jump: grounded=%v vy=%v", w.Player.Grounded, w.Player.VY)
	}
	if !audio.Played(core.CueJump) {
		t.Error("jump cue missing")
	}

	if Jump(w) {
		t.Error("mid-air jump accepted")
	}

	// A resting player produces no land cue
	w2, _, audio2 := engine.NewTestWorld(1)
	groundPlayer(w2, 100)
	NewPlayerSystem().Update(w2)
	if audio2.Played(core.CueLand) {
		t.Error("land cue while resting")
	}
}

func TestPlayerMovementClamp(t *testing.T) {
	w, _, _ := engine.NewTestWorld(1)
	sys := NewPlayerSystem()
	groundPlayer(w, 2)

	w.Control.Move = core.DirLeft
	sys.Update(w)
	if w.Player.X != 0 {
		t.Errorf("X = %v, want 0", w.Player.X)
	}
	if w.Player.Pose != core.PoseRunning || w.Player.Facing != core.DirLeft {
		t.Errorf("pose %v facing %v", w.Player.Pose, w.Player.Facing)
	}

	groundPlayer(w, w.Width-w.Player.W-1)
	w.Control.Move = core.DirRight
	sys.Update(w)
	if w.Player.X != w.Width-w.Player.W {
		t.Errorf("X = %v, want %v", w.Player.X, w.Width-w.Player.W)
	}

	w.Control.Move = core.DirNone
	sys.Update(w)
	if w.Player.Pose != core.PoseIdle {
		t.Errorf("pose = %v, want idle", w.Player.Pose)
	}
}

func TestPickWeighted(t *testing.T) {
	tun := config.DefaultTuning()
	tests := []struct {
		u    float64
		want core.PowerKind
	}{
		{0, core.PowerBroccoli},
		{39.999, core.PowerBroccoli},
		{40, core.PowerCheese},
		{69.9, core.PowerCheese},
		{70, core.PowerGhostPepper},
		{99.9, core.PowerGhostPepper},
		{100, core.PowerAtomic},
		{119.99, core.PowerAtomic},
	}
	for _, tt := range tests {
		if got := PickWeighted(&tun, tt.u); got != tt.want {
			t.Errorf("PickWeighted(%v) = %v, want %v", tt.u, got, tt.want)
		}
	}
}

func TestWeightedSpawnDistribution(t *testing.T) {
	w, _, _ := engine.NewTestWorld(42)
	const n = 120000

	var counts [core.PowerKindCount]int
	for i := 0; i < n; i++ {
		f := SpawnFood(w)
		counts[f.Kind]++
		w.Foods = w.Foods[:0]
	}

	total := float64(w.Tuning.TotalWeight())
	for _, k := range core.AllPowerKinds() {
		want := float64(w.Tuning.Power(k).Weight) / total
		got := float64(counts[k]) / n
		if math.Abs(got-want) > 0.01 {
			t.Errorf("%s frequency = %.4f, want %.4f", k, got, want)
		}
	}
}

func TestFoodSpawnBand(t *testing.T) {
	w, _, _ := engine.NewTestWorld(3)
	for i := 0; i < 500; i++ {
		f := SpawnFood(w)
		if f.Y < 50 || f.Y >= w.GroundY()-150 {
			t.Fatalf("food Y %v outside [50, %v)", f.Y, w.GroundY()-150)
		}
		if f.X != w.Width || f.VX != -3 {
			t.Fatalf("food spawned at %v moving %v", f.X, f.VX)
		}
	}

	// Empty band collapses to the top margin
	w.Resize(800, 300)
	if f := SpawnFood(w); f.Y != 50 {
		t.Errorf("collapsed band Y = %v, want 50", f.Y)
	}
}

func TestSpawnTimers(t *testing.T) {
	w, _, _ := engine.NewTestWorld(7)
	sys := NewSpawnSystem()

	sys.Update(w)
	if len(w.Foods) != 1 || len(w.Enemies) != 1 {
		t.Fatalf("first frame spawned %d foods %d enemies, want 1 and 1", len(w.Foods), len(w.Enemies))
	}
	if w.FoodTimer != 120 || w.EnemyTimer != 600 {
		t.Errorf("timers = %d/%d, want 120/600", w.FoodTimer, w.EnemyTimer)
	}
	e := w.Enemies[0]
	if e.Y+e.H != w.GroundY() || e.X != w.Width {
		t.Errorf("enemy at (%v,%v) h=%v, want bottom on %v", e.X, e.Y, e.H, w.GroundY())
	}

	w.Score.EnemyInterval = 300
	w.EnemyTimer = 1
	sys.Update(w)
	if len(w.Enemies) != 2 || w.EnemyTimer != 300 {
		t.Errorf("after ratchet: %d enemies, timer %d", len(w.Enemies), w.EnemyTimer)
	}
}

func TestFoodPickupAndPrune(t *testing.T) {
	w, _, _ := engine.NewTestWorld(1)
	groundPlayer(w, 100)
	w.Foods = append(w.Foods,
		component.Food{Kind: core.PowerCheese, X: 120, Y: w.Player.Y + 10, VX: -3, W: 30, H: 30, Gain: 35},
		component.Food{Kind: core.PowerAtomic, X: -31, Y: 50, VX: -3, W: 30, H: 30, Gain: 100},
		component.Food{Kind: core.PowerBroccoli, X: 600, Y: 50, VX: -3, W: 30, H: 30, Gain: 25},
	)

	NewFoodSystem().Update(w)

	if got := w.Inventory.Count(core.PowerCheese); got != 40 {
		t.Errorf("cheese = %d, want 40", got)
	}
	if got := w.Inventory.Count(core.PowerAtomic); got != 5 {
		t.Errorf("off-screen food was credited: atomic = %d", got)
	}
	if len(w.Foods) != 1 || w.Foods[0].Kind != core.PowerBroccoli || w.Foods[0].X != 597 {
		t.Errorf("foods = %+v", w.Foods)
	}
}

func TestEnemyJumpedOver(t *testing.T) {
	w, _, _ := engine.NewTestWorld(1)
	groundPlayer(w, 100)
	w.Player.Y = 470 // bottom 530, enemy mid 548
	w.Player.Grounded = false
	w.Enemies = append(w.Enemies, alligatorAt(w, 120))

	NewEnemySystem().Update(w)

	e := w.Enemies[0]
	if !e.Destroyed || e.Cause != core.JumpedOver {
		t.Fatalf("enemy = %+v, want jumped-over", e)
	}
	if w.Score.Value != 30 {
		t.Errorf("score = %d, want 30", w.Score.Value)
	}
}

func TestEnemyCollision(t *testing.T) {
	w, _, _ := engine.NewTestWorld(1)
	groundPlayer(w, 100)
	w.Score.Value = 10
	w.Enemies = append(w.Enemies, alligatorAt(w, 120))

	NewEnemySystem().Update(w)

	e := w.Enemies[0]
	if !e.Destroyed || e.Cause != core.CollisionLoss {
		t.Fatalf("enemy = %+v, want collision", e)
	}
	if w.Score.Value != 0 {
		t.Errorf("score = %d, want floor 0", w.Score.Value)
	}

	w.Score.Value = 100
	w.Enemies = append(w.Enemies[:0], alligatorAt(w, 120))
	NewEnemySystem().Update(w)
	if w.Score.Value != 40 {
		t.Errorf("score = %d, want 100-60", w.Score.Value)
	}
}

func TestDestroyEnemyIdempotent(t *testing.T) {
	w, _, _ := engine.NewTestWorld(1)
	e := alligatorAt(w, 500)

	if !DestroyEnemy(w, &e, core.PowerKill(core.PowerCheese)) {
		t.Fatal("first destroy rejected")
	}
	if w.Score.Value != 60 {
		t.Errorf("score = %d, want 60", w.Score.Value)
	}
	if DestroyEnemy(w, &e, core.JumpedOver) {
		t.Error("second destroy accepted")
	}
	if w.Score.Value != 60 || e.Cause != core.PowerKill(core.PowerCheese) {
		t.Errorf("second destroy changed state: score %d cause %v", w.Score.Value, e.Cause)
	}
}

func TestDestroyedEnemyLifetime(t *testing.T) {
	w, clock, _ := engine.NewTestWorld(1)
	w.AddSystem(NewEnemySystem())
	groundPlayer(w, 0)
	e := alligatorAt(w, 500)
	e.MarkDestroyed(core.JumpedOver, w.Frame)
	w.Enemies = append(w.Enemies, e)

	// The destruction frame is age 0
	engine.StepWorld(w, clock, 1)
	for i := 1; i < 60; i++ {
		engine.StepWorld(w, clock, 1)
		if len(w.Enemies) != 1 {
			t.Fatalf("removed after %d frames", i)
		}
		if w.Enemies[0].X != 500 || w.Enemies[0].DestroyedFor != i {
			t.Fatalf("frame %d: enemy = %+v", i, w.Enemies[0])
		}
	}
	engine.StepWorld(w, clock, 1)
	if len(w.Enemies) != 0 {
		t.Error("not removed after 60 frames")
	}
}

// framesUntilRemoved counts updates after the kill frame until the world
// has no enemies left
func framesUntilRemoved(t *testing.T, w *engine.World, clock *engine.MockTimeProvider) int {
	t.Helper()
	for n := 1; n <= 200; n++ {
		engine.StepWorld(w, clock, 1)
		if len(w.Enemies) == 0 {
			return n
		}
	}
	t.Fatal("destroyed enemy never removed")
	return 0
}

func TestDestroyedLifetimeIndependentOfCause(t *testing.T) {
	tests := []struct {
		name  string
		cause core.DestroyCause
		kill  func(w *engine.World)
	}{
		{
			name:  "collision during enemy update",
			cause: core.CollisionLoss,
			kill:  func(w *engine.World) { w.Enemies = append(w.Enemies, alligatorAt(w, 120)) },
		},
		{
			name:  "power before systems run",
			cause: core.PowerKill(core.PowerBroccoli),
			kill: func(w *engine.World) {
				w.Enemies = append(w.Enemies, alligatorAt(w, 150))
				if !TryUsePower(w, core.PowerBroccoli, core.DirNone) {
					t.Fatal("power rejected")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, clock, _ := engine.NewTestWorld(1)
			w.AddSystem(NewEnemySystem())
			groundPlayer(w, 100)

			tt.kill(w)
			engine.StepWorld(w, clock, 1)
			if len(w.Enemies) != 1 || w.Enemies[0].Cause != tt.cause {
				t.Fatalf("enemies after kill frame = %+v", w.Enemies)
			}
			if w.Enemies[0].DestroyedFor != 0 {
				t.Errorf("DestroyedFor = %d on the kill frame, want 0", w.Enemies[0].DestroyedFor)
			}
			if got := framesUntilRemoved(t, w, clock); got != 60 {
				t.Errorf("removed %d frames after kill, want 60", got)
			}
		})
	}
}

func TestEnemyLeavesScreen(t *testing.T) {
	w, _, _ := engine.NewTestWorld(1)
	groundPlayer(w, 500)
	w.Enemies = append(w.Enemies, alligatorAt(w, -59))

	NewEnemySystem().Update(w)
	if len(w.Enemies) != 0 {
		t.Errorf("off-screen enemy kept: %+v", w.Enemies)
	}
}

// A failed activation leaves the world untouched
func TestPowerEmptyInventory(t *testing.T) {
	w, _, audio := engine.NewTestWorld(1)
	groundPlayer(w, 100)
	for w.Inventory.Use(core.PowerBroccoli) {
	}
	w.Enemies = append(w.Enemies, alligatorAt(w, 150))

	if TryUsePower(w, core.PowerBroccoli, core.DirRight) {
		t.Fatal("power used with empty inventory")
	}
	if w.Enemies[0].Destroyed || len(w.Particles) != 0 || len(audio.Cues) != 0 {
		t.Error("failed activation had side effects")
	}
	if w.Player.Performing() {
		t.Error("pose changed")
	}
}

func TestPowerRequiresRunning(t *testing.T) {
	w, _, _ := engine.NewTestWorld(1)
	w.Running = false
	if TryUsePower(w, core.PowerCheese, core.DirRight) {
		t.Error("power used while stopped")
	}
	if w.Inventory.Count(core.PowerCheese) != 5 {
		t.Error("inventory consumed")
	}
}

// Cooldown is per kind, other kinds fire immediately
func TestPowerCooldown(t *testing.T) {
	w, clock, _ := engine.NewTestWorld(1)
	groundPlayer(w, 100)

	if !TryUsePower(w, core.PowerCheese, core.DirRight) {
		t.Fatal("first cheese rejected")
	}
	clock.Advance(100 * time.Millisecond)
	if TryUsePower(w, core.PowerCheese, core.DirRight) {
		t.Error("cheese accepted within cooldown")
	}
	if w.Inventory.Count(core.PowerCheese) != 4 {
		t.Errorf("cheese = %d, want 4", w.Inventory.Count(core.PowerCheese))
	}

	w.Player.PoseTimer = 3
	if !TryUsePower(w, core.PowerGhostPepper, core.DirRight) {
		t.Fatal("different kind rejected within cooldown")
	}
	if w.Player.PowerKind != core.PowerGhostPepper || w.Player.PoseTimer != 120 {
		t.Errorf("pose = %v timer %d, want ghost-pepper 120", w.Player.PowerKind, w.Player.PoseTimer)
	}

	clock.Advance(400 * time.Millisecond)
	if !TryUsePower(w, core.PowerCheese, core.DirRight) {
		t.Error("cheese rejected after cooldown")
	}
}

func TestPowerDirectionAndRange(t *testing.T) {
	w, _, audio := engine.NewTestWorld(1)
	groundPlayer(w, 400)

	w.Enemies = append(w.Enemies,
		alligatorAt(w, 300), // left, 100 away: nearest, in range
		alligatorAt(w, 260), // left, 140 away: in broccoli range
		alligatorAt(w, 250), // left, exactly 150: out of range
		alligatorAt(w, 520), // right: wrong side
	)

	if !TryUsePower(w, core.PowerBroccoli, core.DirRight) {
		t.Fatal("power rejected")
	}
	want := []bool{true, true, false, false}
	for i, e := range w.Enemies {
		if e.Destroyed != want[i] {
			t.Errorf("enemy %d at %v destroyed=%v, want %v", i, e.X, e.Destroyed, want[i])
		}
	}
	if w.Player.Facing != core.DirLeft {
		t.Errorf("facing = %v, want left", w.Player.Facing)
	}
	if w.Score.Value != 120 {
		t.Errorf("score = %d, want 2x30 twice", w.Score.Value)
	}
	if w.Combo.Count != 2 || !w.Combo.Visible() {
		t.Errorf("combo = %+v", w.Combo)
	}
	if len(audio.Compound) != 1 || audio.Compound[0] != core.CueBroccoli || audio.Combos[0] != 2 {
		t.Errorf("audio = %v combos %v", audio.Compound, audio.Combos)
	}
	if len(w.Particles) != 10 {
		t.Fatalf("particles = %d, want 10", len(w.Particles))
	}
	for _, p := range w.Particles {
		if p.X != 400 || p.VX >= 0 || p.Color.Hex() != "#90EE90" {
			t.Fatalf("burst particle %+v, want leading left edge moving left", p)
		}
	}
}

func TestAttackDirection(t *testing.T) {
	w, _, _ := engine.NewTestWorld(1)
	groundPlayer(w, 400)
	w.Player.Facing = core.DirLeft

	if got := AttackDirection(w, core.DirRight); got != core.DirLeft {
		t.Errorf("no enemies with hint: %v, want facing", got)
	}
	if got := AttackDirection(w, core.DirNone); got != core.DirLeft {
		t.Errorf("no enemies, no hint: %v, want facing", got)
	}

	// Ties go to the first enemy in slice order
	w.Enemies = append(w.Enemies, alligatorAt(w, 500), alligatorAt(w, 300))
	if got := AttackDirection(w, core.DirLeft); got != core.DirRight {
		t.Errorf("tie: %v, want right", got)
	}

	// Equal X counts as left; destroyed enemies are ignored
	w.Enemies[0].Destroyed = true
	w.Enemies[1].X = 400
	if got := AttackDirection(w, core.DirRight); got != core.DirLeft {
		t.Errorf("equal X: %v, want left", got)
	}
}

func TestAtomicCompound(t *testing.T) {
	w, _, audio := engine.NewTestWorld(1)
	groundPlayer(w, 100)

	if !TryUsePower(w, core.PowerAtomic, core.DirRight) {
		t.Fatal("atomic rejected")
	}
	var phases [5]int
	for _, p := range w.Particles {
		phases[p.Phase]++
	}
	if phases[component.PhaseFlash] != 5 || phases[component.PhaseStem] != 15 ||
		phases[component.PhaseCap] != 20 || phases[component.PhaseRing] != 10 || phases[component.PhasePlain] != 0 {
		t.Errorf("phase counts = %v", phases)
	}
	if !audio.Played(core.CueAtomic) {
		t.Error("atomic cue missing")
	}
}

// Crossing a 50-point boundary tightens the enemy interval by 10%
func TestScoreCrossingThreshold(t *testing.T) {
	w, _, _ := engine.NewTestWorld(1)
	w.AddScore(40)
	if w.Score.Threshold != 0 || w.Score.EnemyInterval != 600 {
		t.Fatalf("score 40: %+v", w.Score)
	}
	w.AddScore(15)
	if w.Score.Threshold != 50 || w.Score.EnemyInterval != 540 {
		t.Errorf("score 55: %+v, want threshold 50 interval 540", w.Score)
	}
}

func TestParticlePrunedAfterOneUpdate(t *testing.T) {
	w, _, _ := engine.NewTestWorld(1)
	w.Particles = append(w.Particles,
		component.Particle{Life: 0.05, Phase: component.PhaseFlash, Size: 10},
		component.Particle{Life: 1, Phase: component.PhasePlain, Size: 10, VX: 2},
	)

	NewParticleSystem().Update(w)

	if len(w.Particles) != 1 {
		t.Fatalf("particles = %d, want 1", len(w.Particles))
	}
	p := w.Particles[0]
	if p.X != 2 || math.Abs(p.Life-0.98) > 1e-9 || p.Size != 10 {
		t.Errorf("plain particle = %+v", p)
	}
}

func TestStemWobbleUsesClock(t *testing.T) {
	p := component.Particle{Phase: component.PhaseStem, Life: 0.6, Size: 10, OriginY: 300, VY: -4}
	nowMs := 123456.0
	StepParticle(&p, nowMs)

	want := 300 + math.Sin(nowMs/200+300)*2
	if math.Abs(p.Y-want) > 1e-9 {
		t.Errorf("stem Y = %v, want %v", p.Y, want)
	}
	if math.Abs(p.Size-10.2) > 1e-9 {
		t.Errorf("stem size = %v", p.Size)
	}
}

func TestCapOrbit(t *testing.T) {
	p := component.Particle{Phase: component.PhaseCap, Life: 0.6, Size: 10, Radius: 80, Angle: 0}
	StepParticle(&p, 0)

	r := 80 * (1 + (1-0.58)*0.3)
	if math.Abs(p.X-r*0.01) > 1e-9 || math.Abs(p.Y) > 1e-9 {
		t.Errorf("cap at (%v,%v), want (%v,0)", p.X, p.Y, r*0.01)
	}
}

func TestSystemsIdleWhenStopped(t *testing.T) {
	w, _, _ := engine.NewTestWorld(1)
	w.Running = false
	RegisterAll(w)
	w.Particles = append(w.Particles, component.Particle{Life: 0.01})

	w.Update()

	if len(w.Foods) != 0 || len(w.Enemies) != 0 || len(w.Particles) != 1 {
		t.Error("systems ran while stopped")
	}
	if w.Player.Y != 100 {
		t.Error("player moved while stopped")
	}
}
