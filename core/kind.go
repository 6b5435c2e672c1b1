package core

import "fmt"

// PowerKind is one of the four consumable categories gating a directional attack
type PowerKind uint8

const (
	PowerBroccoli PowerKind = iota
	PowerCheese
	PowerGhostPepper
	PowerAtomic
	PowerKindCount
)

var powerNames = [PowerKindCount]string{
	PowerBroccoli:    "broccoli",
	PowerCheese:      "cheese",
	PowerGhostPepper: "ghost-pepper",
	PowerAtomic:      "atomic",
}

// AllPowerKinds lists power kinds in declaration order
func AllPowerKinds() []PowerKind {
	return []PowerKind{PowerBroccoli, PowerCheese, PowerGhostPepper, PowerAtomic}
}

// Valid reports whether k is a declared power kind
func (k PowerKind) Valid() bool {
	return k < PowerKindCount
}

func (k PowerKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("power(%d)", uint8(k))
	}
	return powerNames[k]
}

// ParsePowerKind resolves a config/CLI name. Accepts "ghost-pepper" and "ghostPepper"
func ParsePowerKind(name string) (PowerKind, bool) {
	if name == "ghostPepper" || name == "ghost_pepper" {
		return PowerGhostPepper, true
	}
	for k, n := range powerNames {
		if n == name {
			return PowerKind(k), true
		}
	}
	return 0, false
}

// EnemyKind identifies an enemy archetype
type EnemyKind uint8

const (
	EnemyAlligator EnemyKind = iota
	EnemyCrab
	EnemyScorpion
	EnemyKindCount
)

var enemyNames = [EnemyKindCount]string{
	EnemyAlligator: "alligator",
	EnemyCrab:      "crab",
	EnemyScorpion:  "scorpion",
}

// AllEnemyKinds lists enemy kinds in declaration order
func AllEnemyKinds() []EnemyKind {
	return []EnemyKind{EnemyAlligator, EnemyCrab, EnemyScorpion}
}

// Valid reports whether k is a declared enemy kind
func (k EnemyKind) Valid() bool {
	return k < EnemyKindCount
}

func (k EnemyKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("enemy(%d)", uint8(k))
	}
	return enemyNames[k]
}

// ParseEnemyKind resolves a config name
func ParseEnemyKind(name string) (EnemyKind, bool) {
	for k, n := range enemyNames {
		if n == name {
			return EnemyKind(k), true
		}
	}
	return 0, false
}
