package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the fixed simulation step and render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// FramesPerSecond is the nominal step rate all per-frame tunables are expressed against
	FramesPerSecond = 60

	// InputQueueSize is the capacity of the frontend input event channel
	InputQueueSize = 256
)

// System Priorities (lower runs first). Order is part of the frame contract:
// collision resolution reads positions written earlier in the same frame
const (
	PriorityPlayer   = 10
	PrioritySpawn    = 20
	PriorityFood     = 30
	PriorityEnemy    = 40
	PriorityParticle = 50
	PriorityCombo    = 60
)

// Default Viewport (pixels) used before the first resize
const (
	DefaultViewportWidth  = 1024
	DefaultViewportHeight = 768
)
