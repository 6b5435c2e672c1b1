package component

import "github.com/lixenwraith/monkey-runner/core"

// Inventory counts consumables per power kind, never negative
type Inventory struct {
	counts [core.PowerKindCount]int
}

// NewInventory fills every kind with n
func NewInventory(n int) Inventory {
	var inv Inventory
	if n < 0 {
		n = 0
	}
	for i := range inv.counts {
		inv.counts[i] = n
	}
	return inv
}

// Count returns the stock for kind, 0 for undeclared kinds
func (inv *Inventory) Count(kind core.PowerKind) int {
	if !kind.Valid() {
		return 0
	}
	return inv.counts[kind]
}

// Add credits n units; non-positive n is ignored
func (inv *Inventory) Add(kind core.PowerKind, n int) {
	if !kind.Valid() || n <= 0 {
		return
	}
	inv.counts[kind] += n
}

// Use consumes one unit, floored at zero. Returns false if none were available
func (inv *Inventory) Use(kind core.PowerKind) bool {
	if !kind.Valid() || inv.counts[kind] <= 0 {
		return false
	}
	inv.counts[kind]--
	return true
}

// Counts returns a copy of every kind's stock, indexed by kind
func (inv *Inventory) Counts() [core.PowerKindCount]int {
	return inv.counts
}
