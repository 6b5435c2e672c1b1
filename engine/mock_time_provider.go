package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/monkey-runner/parameter"
)

// MockTimeProvider is a manually driven clock for tests
// Step moves it in whole simulation frames so cooldowns and particle wobble
// see the same time the frame ticker would produce
type MockTimeProvider struct {
	mu     sync.RWMutex
	now    time.Time
	frames uint64
}

// NewMockTimeProvider starts the mock clock at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

// Now returns the mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// SetTime jumps to t, frame count is unchanged
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the clock by an arbitrary duration
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// Step moves the clock forward by n frame intervals
func (m *MockTimeProvider) Step(n int) {
	if n <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(time.Duration(n) * parameter.FrameUpdateInterval)
	m.frames += uint64(n)
}

// Frames returns how many frame intervals Step has covered
func (m *MockTimeProvider) Frames() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.frames
}

// StepWorld runs n world updates, stepping the clock one frame before each
func StepWorld(w *World, m *MockTimeProvider, n int) {
	for i := 0; i < n; i++ {
		m.Step(1)
		w.Update()
	}
}
