package parameter

// Food Entity
const (
	// FoodWidth and FoodHeight are the consumable bounding box (px)
	FoodWidth  = 30.0
	FoodHeight = 30.0

	// FoodSpeed is the fixed leftward speed of every consumable (px/frame)
	FoodSpeed = 3.0

	// FoodTopMargin is the minimum spawn Y
	FoodTopMargin = 50.0

	// FoodGroundMargin is the clearance kept between the spawn band and the ground line
	FoodGroundMargin = 150.0
)

// Spawn Timing (frames)
const (
	// FoodSpawnInterval is the frame count between consumable spawns
	FoodSpawnInterval = 120

	// EnemyBaseSpawnInterval is the starting frame count between enemy spawns
	EnemyBaseSpawnInterval = 600

	// EnemyMinSpawnInterval is the floor of the difficulty ratchet
	EnemyMinSpawnInterval = 300
)

// Starting Inventory
const (
	// InitialInventory is the starting count for every power kind
	InitialInventory = 5
)

// Default per-kind consumable stats, copied into config.Tuning
const (
	BroccoliWeight = 40
	BroccoliGain   = 25
	BroccoliFood   = "#2ECC40"

	CheeseWeight = 30
	CheeseGain   = 35
	CheeseFood   = "#FFDC00"

	GhostPepperWeight = 30
	GhostPepperGain   = 75
	GhostPepperFood   = "#FF4136"

	AtomicWeight = 20
	AtomicGain   = 100
	AtomicFood   = "#B10DC9"
)
