package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock provides game time that stops advancing while paused
// Cooldowns and particle wobble read this clock, so a pause freezes both
type PausableClock struct {
	mu sync.RWMutex

	source    TimeProvider
	realStart time.Time // Source reading at creation

	isPaused        atomic.Bool
	pauseStart      time.Time     // Source reading when the current pause began
	totalPausedTime time.Duration // Cumulative completed pauses
}

// NewPausableClock creates a clock over source; nil uses the monotonic system clock
func NewPausableClock(source TimeProvider) *PausableClock {
	if source == nil {
		source = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		source:    source,
		realStart: source.Now(),
	}
}

// Now returns current game time: real start plus elapsed unpaused time
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() && !pc.pauseStart.IsZero() {
		return pc.realStart.Add(pc.pauseStart.Sub(pc.realStart) - pc.totalPausedTime)
	}
	elapsed := pc.source.Now().Sub(pc.realStart) - pc.totalPausedTime
	return pc.realStart.Add(elapsed)
}

// Elapsed returns game time since the clock was created
func (pc *PausableClock) Elapsed() time.Duration {
	return pc.Now().Sub(pc.realStart)
}

// RealTime returns the source time (unaffected by pause)
func (pc *PausableClock) RealTime() time.Time {
	return pc.source.Now()
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		pc.pauseStart = pc.source.Now()
	}
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		if !pc.pauseStart.IsZero() {
			pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStart)
			pc.pauseStart = time.Time{}
		}
	}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time, including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() && !pc.pauseStart.IsZero() {
		total += pc.source.Now().Sub(pc.pauseStart)
	}
	return total
}
