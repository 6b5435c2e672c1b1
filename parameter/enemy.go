package parameter

// Enemy Entity
const (
	// EnemySpeed is the fixed leftward speed of every enemy (px/frame)
	EnemySpeed = 2.0

	// EnemyDestructionLifetime is the number of frames a destroyed enemy stays visible before removal
	EnemyDestructionLifetime = 60

	// EnemyDefaultWidth and EnemyDefaultHeight apply to kinds missing from the tuning table
	EnemyDefaultWidth  = 50.0
	EnemyDefaultHeight = 50.0

	// EnemyDefaultPoints applies to kinds missing from the tuning table
	EnemyDefaultPoints = 10
)

// Destruction Cloud (renderer contract)
const (
	// CloudDots is the number of dots in the destruction cloud
	CloudDots = 8
	// CloudSpreadPerFrame is how far each dot travels from the enemy center per frame (px)
	CloudSpreadPerFrame = 2.0
	// CloudDotRadius is the starting dot radius; it shrinks linearly to zero over the lifetime
	CloudDotRadius = 10.0
)

// Default per-kind enemy stats, copied into config.Tuning
const (
	AlligatorPoints = 30
	AlligatorWidth  = 60.0
	AlligatorHeight = 40.0
	AlligatorColor  = "#2E8B57"

	CrabPoints = 20
	CrabWidth  = 40.0
	CrabHeight = 30.0
	CrabColor  = "#FF4040"

	ScorpionPoints = 40
	ScorpionWidth  = 45.0
	ScorpionHeight = 35.0
	ScorpionColor  = "#8B4513"
)

// Destruction cloud colors for non-power causes
const (
	CollisionCloudColor = "#FF0000"
	JumpCloudColor      = "#FFFFFF"
)
