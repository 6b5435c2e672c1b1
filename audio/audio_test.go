package audio

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/monkey-runner/config"
	"github.com/lixenwraith/monkey-runner/core"
	"github.com/lixenwraith/monkey-runner/parameter"
)

const testRate = beep.SampleRate(8000)

type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	t.stopped = true
	return true
}

type fakeScheduler struct {
	timers []*fakeTimer
}

func (s *fakeScheduler) schedule(d time.Duration, f func()) stopper {
	t := &fakeTimer{delay: d, fn: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) fire() {
	for _, t := range s.timers {
		if !t.stopped {
			t.fn()
		}
	}
	s.timers = nil
}

// newAttachedEngine returns an engine that behaves as if the speaker opened
func newAttachedEngine(t *testing.T) (*Engine, *fakeScheduler) {
	t.Helper()
	cfg := config.DefaultAudio()
	cfg.SampleRate = int(testRate)
	e := New(cfg, zerolog.Nop())
	e.lock, e.unlock, e.closeDevice = func() {}, func() {}, func() {}
	sched := &fakeScheduler{}
	e.schedule = sched.schedule
	e.started.Store(true)
	return e, sched
}

func drain(t *testing.T, s beep.Streamer, limit int) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			v := buf[i][0]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("sample %d not finite", total+i)
			}
			peak = math.Max(peak, math.Abs(v))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	return total, peak
}

func TestOscillatorSweepLength(t *testing.T) {
	osc := NewSweep(200, 800, 100*time.Millisecond, WaveSaw, testRate)
	n, peak := drain(t, osc, 10000)
	if n != testRate.N(100*time.Millisecond) {
		t.Errorf("streamed %d samples, want %d", n, testRate.N(100*time.Millisecond))
	}
	if peak > 1 {
		t.Errorf("peak %v exceeds unity", peak)
	}
}

func TestEnvelopeStartsSilent(t *testing.T) {
	osc := NewOscillator(100, 50*time.Millisecond, WaveSquare, testRate)
	env := NewEnvelope(osc, 50*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, testRate)

	buf := make([][2]float64, 4)
	env.Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, want 0 at attack start", buf[0][0])
	}
	if math.Abs(buf[3][0]) >= 1 {
		t.Errorf("sample during attack = %v, want attenuated", buf[3][0])
	}
}

func TestCueStreamerCoversEveryCue(t *testing.T) {
	for cue := core.Cue(0); cue < core.CueCount; cue++ {
		t.Run(cue.String(), func(t *testing.T) {
			s := CueStreamer(cue, testRate)
			if s == nil {
				t.Fatal("no streamer")
			}
			n, peak := drain(t, s, testRate.N(5*time.Second))
			if n == 0 || n >= testRate.N(5*time.Second) {
				t.Errorf("streamed %d samples, want a finite non-empty cue", n)
			}
			if peak == 0 || peak > 1 {
				t.Errorf("peak = %v", peak)
			}
		})
	}

	if CueStreamer(core.CueCount, testRate) != nil {
		t.Error("unknown cue produced a streamer")
	}
}

func TestBackgroundLoopNeverEnds(t *testing.T) {
	loop := newBackgroundLoop(testRate)
	limit := testRate.N(parameter.MusicBeat) * 10
	n, peak := drain(t, loop, limit)
	if n < limit {
		t.Errorf("loop ended after %d samples", n)
	}
	if peak == 0 {
		t.Error("loop is silent")
	}
}

func TestStatus(t *testing.T) {
	e := New(config.DefaultAudio(), zerolog.Nop())
	if !errors.Is(e.Status(), ErrNotStarted) {
		t.Errorf("Status before Start = %v", e.Status())
	}
	e.lock, e.unlock = func() {}, func() {}
	e.Play(core.CueJump)
	if e.Playing() != 0 {
		t.Error("cue mixed before Start")
	}

	cfg := config.DefaultAudio()
	cfg.Enabled = false
	off := New(cfg, zerolog.Nop())
	off.lock, off.unlock = func() {}, func() {}
	if err := off.Start(); err != nil {
		t.Fatalf("Start disabled: %v", err)
	}
	if !errors.Is(off.Status(), ErrSilent) {
		t.Errorf("Status disabled = %v", off.Status())
	}
	off.Play(core.CueAtomic)
	off.StartLoop()
	if off.Playing() != 0 {
		t.Error("silent engine mixed a stream")
	}
	if err := off.Start(); err == nil {
		t.Error("second Start accepted")
	}
}

func TestPlayMixesCue(t *testing.T) {
	e, _ := newAttachedEngine(t)
	e.Play(core.CueCheese)
	e.Play(core.Cue(-1))
	if e.Playing() != 1 {
		t.Fatalf("Playing = %d, want 1", e.Playing())
	}
	_, peak := drain(t, e.mixer, 2048)
	if peak == 0 {
		t.Error("mixer output silent")
	}
}

func TestCueVolumeZeroIsSilent(t *testing.T) {
	e, _ := newAttachedEngine(t)
	e.cfg.CueVolumes[core.CueBroccoli] = 0
	e.Play(core.CueBroccoli)
	_, peak := drain(t, e.mixer, 2048)
	if peak != 0 {
		t.Errorf("muted cue peak = %v", peak)
	}
}

func TestPlayCompoundChaining(t *testing.T) {
	tests := []struct {
		combo  int
		delays []time.Duration
	}{
		{0, nil},
		{2, nil},
		{3, []time.Duration{parameter.ComboBreakDelay}},
		{4, []time.Duration{parameter.ComboBreakDelay}},
		{5, []time.Duration{parameter.ComboBreakDelay, parameter.VariationDelay}},
		{9, []time.Duration{parameter.ComboBreakDelay, parameter.VariationDelay}},
	}

	for _, tt := range tests {
		e, sched := newAttachedEngine(t)
		e.PlayCompound(core.CueAtomic, tt.combo)

		if len(sched.timers) != len(tt.delays) {
			t.Fatalf("combo %d: scheduled %d cues, want %d", tt.combo, len(sched.timers), len(tt.delays))
		}
		for i, d := range tt.delays {
			if sched.timers[i].delay != d {
				t.Errorf("combo %d: delay[%d] = %v, want %v", tt.combo, i, sched.timers[i].delay, d)
			}
		}

		sched.fire()
		if got := e.Playing(); got != 1+len(tt.delays) {
			t.Errorf("combo %d: Playing = %d after chain, want %d", tt.combo, got, 1+len(tt.delays))
		}
		if len(e.pending) != 0 {
			t.Errorf("combo %d: %d timers still tracked", tt.combo, len(e.pending))
		}
	}
}

func TestCloseCancelsChain(t *testing.T) {
	e, sched := newAttachedEngine(t)
	e.PlayCompound(core.CueGhostPepper, 6)
	e.Close()

	for _, timer := range sched.timers {
		if !timer.stopped {
			t.Errorf("timer %v not stopped", timer.delay)
		}
	}
	if !errors.Is(e.Status(), ErrNotStarted) {
		t.Errorf("Status after Close = %v", e.Status())
	}
	e.Play(core.CueJump)
	if e.Playing() != 0 {
		t.Error("cue mixed after Close")
	}
	e.Close()
}

func TestBackgroundLoopControl(t *testing.T) {
	e, _ := newAttachedEngine(t)
	e.StartLoop()
	if e.Playing() != 1 {
		t.Fatalf("Playing = %d after StartLoop", e.Playing())
	}

	// Restart replaces the running loop
	e.StartLoop()
	drain(t, e.mixer, 512)
	if e.Playing() != 1 {
		t.Errorf("Playing = %d after restart, want 1", e.Playing())
	}

	e.StopLoop()
	drain(t, e.mixer, 512)
	if e.Playing() != 0 {
		t.Errorf("Playing = %d after StopLoop", e.Playing())
	}
	e.StopLoop()
}
