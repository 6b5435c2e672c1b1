package engine

import (
	"math/rand/v2"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/monkey-runner/component"
	"github.com/lixenwraith/monkey-runner/config"
	"github.com/lixenwraith/monkey-runner/core"
	"github.com/lixenwraith/monkey-runner/parameter"
)

// System is implemented by every per-frame simulation step
type System interface {
	Update(world *World)
	Priority() int // Lower values run first
}

// Control is the movement intent resolved from input for the current frame
type Control struct {
	Move core.Direction // Held horizontal movement, DirNone when released
	Jump bool           // Jump pressed this frame
}

// World is the simulation context passed explicitly to every system
// Exactly one goroutine mutates it; entity slices are owned here and nowhere else
type World struct {
	Tuning *config.Tuning

	Player    component.Player
	Inventory component.Inventory
	Score     component.Score
	Combo     component.Combo

	Enemies   []component.Enemy
	Foods     []component.Food
	Particles []component.Particle

	FoodTimer  int
	EnemyTimer int

	Width   float64
	Height  float64
	Frame   uint64
	Running bool

	Control Control

	Rand  *rand.Rand
	Clock TimeProvider
	Audio Audio
	Log   zerolog.Logger

	mu      sync.RWMutex
	systems []System
	nextID  uint64
}

// WorldOption customizes a World at construction
type WorldOption func(*World)

// WithRand sets the random source, used by tests for deterministic spawns
func WithRand(r *rand.Rand) WorldOption {
	return func(w *World) { w.Rand = r }
}

// WithClock sets the game clock
func WithClock(c TimeProvider) WorldOption {
	return func(w *World) { w.Clock = c }
}

// WithAudio sets the audio port
func WithAudio(a Audio) WorldOption {
	return func(w *World) { w.Audio = a }
}

// WithLogger sets the structured logger
func WithLogger(l zerolog.Logger) WorldOption {
	return func(w *World) { w.Log = l }
}

// WithViewport sets the initial viewport size in pixels
func WithViewport(width, height float64) WorldOption {
	return func(w *World) {
		w.Width = width
		w.Height = height
	}
}

// NewWorld builds a fresh session over tuning
func NewWorld(tuning *config.Tuning, opts ...WorldOption) *World {
	if tuning == nil {
		t := config.DefaultTuning()
		tuning = &t
	}
	w := &World{
		Tuning: tuning,
		Width:  parameter.DefaultViewportWidth,
		Height: parameter.DefaultViewportHeight,
		Audio:  NopAudio{},
		Log:    zerolog.Nop(),
		nextID: 1,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.Rand == nil {
		w.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if w.Clock == nil {
		w.Clock = NewPausableClock(nil)
	}
	w.Reset()
	return w
}

// Reset restores the session state; systems and collaborators are kept
func (w *World) Reset() {
	w.Player = component.NewPlayer()
	w.Inventory = component.NewInventory(w.Tuning.Spawn.InitialInventory)
	w.Score = component.NewScore(w.Tuning.Spawn.EnemyBaseInterval, w.Tuning.Spawn.EnemyMinInterval)
	w.Combo = component.Combo{}
	w.Enemies = w.Enemies[:0]
	w.Foods = w.Foods[:0]
	w.Particles = w.Particles[:0]
	w.FoodTimer = 0
	w.EnemyTimer = 0
	w.Frame = 0
	w.Running = false
	w.Control = Control{}
}

// GroundY returns the ground line: entities rest with their bottom on it
func (w *World) GroundY() float64 {
	return w.Height - parameter.GroundHeight
}

// FoodBand returns the vertical range consumables spawn in
// The band collapses to its top edge when the viewport is too short
func (w *World) FoodBand() (top, bottom float64) {
	top = parameter.FoodTopMargin
	bottom = max(top, w.GroundY()-parameter.FoodGroundMargin)
	return top, bottom
}

// NextID returns a session-unique entity id
func (w *World) NextID() uint64 {
	id := w.nextID
	w.nextID++
	return id
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems sequentially and advances the frame counter
func (w *World) Update() {
	for _, system := range w.Systems() {
		system.Update(w)
	}
	w.Frame++
}

// Resize changes the viewport: the player is reclamped, live enemies are
// re-seated on the new ground line and foods are pulled back into the spawn band
func (w *World) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	w.Width = width
	w.Height = height

	ground := w.GroundY()
	p := &w.Player
	if limit := width - p.W; p.X > limit {
		p.X = max(0, limit)
	}
	if p.Y+p.H > ground {
		p.Y = ground - p.H
		p.VY = 0
	}

	for i := range w.Enemies {
		e := &w.Enemies[i]
		if e.Live() {
			e.Y = ground - e.H
		}
	}

	top, bottom := w.FoodBand()
	for i := range w.Foods {
		f := &w.Foods[i]
		f.Y = min(max(f.Y, top), bottom)
		if f.Y+f.H > ground {
			f.Y = max(0, ground-f.H)
		}
	}

	w.Log.Debug().Float64("width", width).Float64("height", height).Msg("viewport resized")
}

// AddScore applies delta and logs difficulty changes
func (w *World) AddScore(delta int) {
	if w.Score.Add(delta, parameter.ScoreThresholdStep, parameter.EnemyIntervalFactor) {
		w.Log.Info().
			Int("score", w.Score.Value).
			Int("threshold", w.Score.Threshold).
			Int("enemy_interval", w.Score.EnemyInterval).
			Msg("difficulty increased")
	}
}
