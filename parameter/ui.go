package parameter

// Terminal Scaling: one cell covers CellWidth x CellHeight simulation pixels
const (
	DefaultCellWidth  = 10
	DefaultCellHeight = 20
)

// Terminal Input
const (
	// KeyHoldFrames keeps a movement key held after each press/repeat,
	// terminals report no key release. Must exceed the OS key-repeat gap
	KeyHoldFrames = 30
)

// Layout
const (
	// HUDRows is the number of terminal rows reserved for the HUD at the top
	HUDRows = 1
)

// Text
const (
	TitleText    = "MONKEY RUNNER"
	StartHint    = "Press ENTER to start"
	PausedText   = "PAUSED (p to resume)"
	ControlsHint = "← → Move   ↑ Jump   Z: Atomic   X: Ghost Pepper   C: Cheese   Space: Broccoli"
	GoalHint     = "Jump over or blast enemies to score points! Collect food to power up!"
)

// Ground Band (simulation px above the viewport bottom)
const (
	GroundColor      = "#8B4513"
	ControlsHintLift = 90.0
	GoalHintLift     = 70.0
)

// ComboMinKills is the kill count that shows the combo banner
const ComboMinKills = 2
