package parameter

import "time"

// Player Body
const (
	// PlayerWidth and PlayerHeight are the player's bounding box in pixels
	PlayerWidth  = 65.0
	PlayerHeight = 60.0

	// PlayerStartX and PlayerStartY are the spawn position; gravity settles Y onto the ground
	PlayerStartX = 100.0
	PlayerStartY = 100.0

	// PlayerSpeed is the horizontal speed while a movement key is held (px/frame)
	PlayerSpeed = 5.0
)

// Player Physics
const (
	// Gravity is added to vertical velocity every airborne frame (px/frame²)
	Gravity = 0.5

	// JumpImpulse is the vertical velocity set by a grounded jump (negative is up)
	JumpImpulse = -25.0

	// LandingCueVelocity is the fall speed above which touching ground plays the land cue
	LandingCueVelocity = 1.0
)

// Ground
const (
	// GroundHeight is the band below the ground line, measured from the viewport bottom
	GroundHeight = 200.0
)

// Power Pose
const (
	// PowerCooldown is the minimum game time between two activations of the same kind
	PowerCooldown = 500 * time.Millisecond

	// PowerPoseFrames is the default pose duration for kinds without an override
	PowerPoseFrames = 120
)
