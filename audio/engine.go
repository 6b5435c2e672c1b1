// Package audio synthesizes game cues and the background loop with beep
package audio

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/monkey-runner/config"
	"github.com/lixenwraith/monkey-runner/core"
	"github.com/lixenwraith/monkey-runner/parameter"
)

// Sentinel errors
var (
	ErrNotStarted = errors.New("audio engine not started")
	ErrSilent     = errors.New("audio engine in silent mode")
)

// stopper is the part of *time.Timer the engine needs
type stopper interface {
	Stop() bool
}

// scheduleFunc runs f after d on another goroutine
type scheduleFunc func(d time.Duration, f func()) stopper

func afterFunc(d time.Duration, f func()) stopper {
	return time.AfterFunc(d, f)
}

// Engine plays cues through a beep mixer attached to the speaker
// Every method is safe to call from the game loop; failures degrade to silence
type Engine struct {
	cfg  config.Audio
	rate beep.SampleRate
	log  zerolog.Logger

	mixer *beep.Mixer
	music *beep.Ctrl

	started atomic.Bool
	silent  atomic.Bool
	closed  atomic.Bool

	lock        func()
	unlock      func()
	closeDevice func()
	schedule    scheduleFunc

	mu      sync.Mutex // Protects pending and music
	pending map[stopper]struct{}
}

// New creates an engine; nothing is played until Start
func New(cfg config.Audio, log zerolog.Logger) *Engine {
	return &Engine{
		cfg:         cfg,
		rate:        beep.SampleRate(cfg.SampleRate),
		log:         log,
		mixer:       &beep.Mixer{},
		lock:        speaker.Lock,
		unlock:      speaker.Unlock,
		closeDevice: speaker.Close,
		schedule:    afterFunc,
		pending:     make(map[stopper]struct{}),
	}
}

// Start opens the speaker and attaches the mixer
// On failure the engine stays usable in silent mode and the error is returned for logging
func (e *Engine) Start() error {
	if e.started.Load() {
		return fmt.Errorf("audio engine already running")
	}
	if !e.cfg.Enabled {
		e.silent.Store(true)
		e.started.Store(true)
		e.log.Info().Msg("audio disabled, running silent")
		return nil
	}

	if err := speaker.Init(e.rate, e.rate.N(parameter.AudioBufferDuration)); err != nil {
		e.silent.Store(true)
		e.started.Store(true)
		e.log.Warn().Err(err).Msg("speaker init failed, running silent")
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(e.mixer)

	e.started.Store(true)
	e.log.Info().Int("sample_rate", int(e.rate)).Msg("audio started")
	return nil
}

// Status reports nil while sound is being produced
func (e *Engine) Status() error {
	switch {
	case !e.started.Load() || e.closed.Load():
		return ErrNotStarted
	case e.silent.Load():
		return ErrSilent
	}
	return nil
}

func (e *Engine) active() bool {
	return e.Status() == nil
}

// Play mixes one cue at its configured volume
func (e *Engine) Play(cue core.Cue) {
	if !e.active() || cue < 0 || cue >= core.CueCount {
		return
	}
	s := CueStreamer(cue, e.rate)
	if s == nil {
		return
	}
	vol := e.cfg.CueVolumes[cue] * e.cfg.MasterVolume

	e.lock()
	e.mixer.Add(newVolume(s, vol))
	e.unlock()
}

// PlayCompound plays cue, then chains the combo break after 200ms when combo
// exceeds 2 and a random juicy or dry variation after 400ms when it exceeds 4
func (e *Engine) PlayCompound(cue core.Cue, combo int) {
	e.Play(cue)
	if !e.active() {
		return
	}

	if combo > 2 {
		e.later(parameter.ComboBreakDelay, core.CueComboBreak)
	}
	if combo > 4 {
		follow := core.CueDry
		if rand.Float64() > 0.5 {
			follow = core.CueJuicy
		}
		e.later(parameter.VariationDelay, follow)
	}
}

// later schedules cue, forgetting the timer once it fires
func (e *Engine) later(d time.Duration, cue core.Cue) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var t stopper
	t = e.schedule(d, func() {
		e.mu.Lock()
		delete(e.pending, t)
		e.mu.Unlock()
		e.Play(cue)
	})
	if t != nil {
		e.pending[t] = struct{}{}
	}
}

// StartLoop starts the background loop from its beginning
func (e *Engine) StartLoop() {
	if !e.active() {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.lock()
	defer e.unlock()
	if e.music != nil {
		e.music.Streamer = nil
	}
	e.music = &beep.Ctrl{Streamer: newVolume(newBackgroundLoop(e.rate), e.cfg.MusicVolume*e.cfg.MasterVolume)}
	e.mixer.Add(e.music)
}

// StopLoop stops the background loop; the next StartLoop rewinds it
func (e *Engine) StopLoop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.music == nil {
		return
	}
	e.lock()
	e.music.Streamer = nil // Drained Ctrl is dropped by the mixer
	e.unlock()
	e.music = nil
}

// Playing returns the number of streams currently in the mixer
func (e *Engine) Playing() int {
	e.lock()
	defer e.unlock()
	return e.mixer.Len()
}

// Close cancels chained cues and silences the mixer
func (e *Engine) Close() {
	if !e.closed.CompareAndSwap(false, true) {
		return
	}

	e.mu.Lock()
	for t := range e.pending {
		t.Stop()
	}
	clear(e.pending)
	e.music = nil
	e.mu.Unlock()

	if !e.started.Load() || e.silent.Load() {
		return
	}
	e.lock()
	e.mixer.Clear()
	e.unlock()
	e.closeDevice()
}
