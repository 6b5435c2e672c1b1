package core

// Direction is horizontal facing, usable directly as a velocity sign
type Direction int8

const (
	DirNone  Direction = 0
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// Sign returns the direction as a float multiplier
func (d Direction) Sign() float64 {
	return float64(d)
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// DirectionOf returns the facing implied by a horizontal velocity, DirNone for zero
func DirectionOf(vx float64) Direction {
	switch {
	case vx > 0:
		return DirRight
	case vx < 0:
		return DirLeft
	default:
		return DirNone
	}
}

// Pose is the player's animated action state
type Pose uint8

const (
	PoseIdle Pose = iota
	PoseRunning
	PosePerforming // Power pose, kind stored alongside
)

func (p Pose) String() string {
	switch p {
	case PoseIdle:
		return "idle"
	case PoseRunning:
		return "running"
	case PosePerforming:
		return "performing"
	default:
		return "unknown"
	}
}

// CauseType classifies why an enemy was destroyed
type CauseType uint8

const (
	CauseNone CauseType = iota
	CauseCollision
	CauseJumpedOver
	CausePower
)

// DestroyCause is the immutable reason attached to a destroyed enemy
// Power is meaningful only when Type is CausePower
type DestroyCause struct {
	Type  CauseType
	Power PowerKind
}

// PowerKill builds the cause for an enemy burned by an attack
func PowerKill(kind PowerKind) DestroyCause {
	return DestroyCause{Type: CausePower, Power: kind}
}

var (
	CollisionLoss = DestroyCause{Type: CauseCollision}
	JumpedOver    = DestroyCause{Type: CauseJumpedOver}
)

func (c DestroyCause) String() string {
	switch c.Type {
	case CauseCollision:
		return "collision"
	case CauseJumpedOver:
		return "jumped-over"
	case CausePower:
		return "power:" + c.Power.String()
	default:
		return "none"
	}
}
