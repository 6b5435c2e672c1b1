package engine

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/lixenwraith/monkey-runner/config"
	"github.com/lixenwraith/monkey-runner/core"
)

// RecordingAudio captures requested cues for assertions
type RecordingAudio struct {
	mu       sync.Mutex
	Cues     []core.Cue
	Combos   []int // Combo level of each PlayCompound call, parallel to Compound
	Compound []core.Cue
	Looping  bool
}

func (a *RecordingAudio) Play(cue core.Cue) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Cues = append(a.Cues, cue)
}

func (a *RecordingAudio) PlayCompound(cue core.Cue, combo int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Cues = append(a.Cues, cue)
	a.Compound = append(a.Compound, cue)
	a.Combos = append(a.Combos, combo)
}

func (a *RecordingAudio) StartLoop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Looping = true
}

func (a *RecordingAudio) StopLoop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Looping = false
}

// Played reports whether cue was requested at least once
func (a *RecordingAudio) Played(cue core.Cue) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, c := range a.Cues {
		if c == cue {
			return true
		}
	}
	return false
}

// NewTestWorld creates a running World with a mock clock, seeded random
// source and recording audio. Systems are not registered
func NewTestWorld(seed uint64) (*World, *MockTimeProvider, *RecordingAudio) {
	tuning := config.DefaultTuning()
	clock := NewMockTimeProvider(time.Unix(1_700_000_000, 0))
	audio := &RecordingAudio{}
	w := NewWorld(&tuning,
		WithRand(rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))),
		WithClock(clock),
		WithAudio(audio),
	)
	w.Running = true
	return w, clock, audio
}
