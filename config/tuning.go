package config

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/monkey-runner/core"
	"github.com/lixenwraith/monkey-runner/parameter"
)

// ErrInvalidTuning is wrapped by every Validate failure
var ErrInvalidTuning = errors.New("invalid tuning")

// PowerSpec holds the per-kind attack and consumable stats
type PowerSpec struct {
	Range      float64  // Attack reach in front of the player (px)
	Weight     int      // Relative spawn weight
	Gain       int      // Inventory credited per pickup
	PoseFrames int      // Pose duration after activation
	Particle   core.RGB // Burst color
	Food       core.RGB // Fallback color when no sprite is loaded
}

// EnemySpec holds the per-kind enemy stats
type EnemySpec struct {
	Points int
	Width  float64
	Height float64
	Color  core.RGB
}

// SpawnSpec holds spawner cadence and starting inventory
type SpawnSpec struct {
	FoodInterval      int
	EnemyBaseInterval int
	EnemyMinInterval  int
	InitialInventory  int
}

// Tuning is the immutable per-kind table set, indexed by enum
// Arrays cover every declared kind by construction; Validate checks the values
type Tuning struct {
	Powers  [core.PowerKindCount]PowerSpec
	Enemies [core.EnemyKindCount]EnemySpec
	Spawn   SpawnSpec
}

// Fallbacks for lookups with an undeclared kind
var (
	defaultPowerSpec = PowerSpec{
		Range:      parameter.DefaultPowerRange,
		Weight:     1,
		Gain:       1,
		PoseFrames: parameter.PowerPoseFrames,
		Particle:   core.MustHex(parameter.DefaultParticleColor),
		Food:       core.MustHex("#AAAAAA"),
	}
	defaultEnemySpec = EnemySpec{
		Points: parameter.EnemyDefaultPoints,
		Width:  parameter.EnemyDefaultWidth,
		Height: parameter.EnemyDefaultHeight,
		Color:  core.MustHex("#AAAAAA"),
	}
)

// DefaultTuning returns the canonical rule set
func DefaultTuning() Tuning {
	var t Tuning

	t.Powers[core.PowerBroccoli] = PowerSpec{
		Range:      parameter.BroccoliRange,
		Weight:     parameter.BroccoliWeight,
		Gain:       parameter.BroccoliGain,
		PoseFrames: parameter.PowerPoseFrames,
		Particle:   core.MustHex(parameter.BroccoliParticle),
		Food:       core.MustHex(parameter.BroccoliFood),
	}
	t.Powers[core.PowerCheese] = PowerSpec{
		Range:      parameter.CheeseRange,
		Weight:     parameter.CheeseWeight,
		Gain:       parameter.CheeseGain,
		PoseFrames: parameter.PowerPoseFrames,
		Particle:   core.MustHex(parameter.CheeseParticle),
		Food:       core.MustHex(parameter.CheeseFood),
	}
	t.Powers[core.PowerGhostPepper] = PowerSpec{
		Range:      parameter.GhostPepperRange,
		Weight:     parameter.GhostPepperWeight,
		Gain:       parameter.GhostPepperGain,
		PoseFrames: parameter.PowerPoseFrames,
		Particle:   core.MustHex(parameter.GhostPepperParticle),
		Food:       core.MustHex(parameter.GhostPepperFood),
	}
	t.Powers[core.PowerAtomic] = PowerSpec{
		Range:      parameter.AtomicRange,
		Weight:     parameter.AtomicWeight,
		Gain:       parameter.AtomicGain,
		PoseFrames: parameter.PowerPoseFrames,
		Particle:   core.MustHex(parameter.AtomicParticle),
		Food:       core.MustHex(parameter.AtomicFood),
	}

	t.Enemies[core.EnemyAlligator] = EnemySpec{
		Points: parameter.AlligatorPoints,
		Width:  parameter.AlligatorWidth,
		Height: parameter.AlligatorHeight,
		Color:  core.MustHex(parameter.AlligatorColor),
	}
	t.Enemies[core.EnemyCrab] = EnemySpec{
		Points: parameter.CrabPoints,
		Width:  parameter.CrabWidth,
		Height: parameter.CrabHeight,
		Color:  core.MustHex(parameter.CrabColor),
	}
	t.Enemies[core.EnemyScorpion] = EnemySpec{
		Points: parameter.ScorpionPoints,
		Width:  parameter.ScorpionWidth,
		Height: parameter.ScorpionHeight,
		Color:  core.MustHex(parameter.ScorpionColor),
	}

	t.Spawn = SpawnSpec{
		FoodInterval:      parameter.FoodSpawnInterval,
		EnemyBaseInterval: parameter.EnemyBaseSpawnInterval,
		EnemyMinInterval:  parameter.EnemyMinSpawnInterval,
		InitialInventory:  parameter.InitialInventory,
	}

	return t
}

// Power returns the spec for kind, or the documented default for an undeclared kind
func (t *Tuning) Power(kind core.PowerKind) PowerSpec {
	if !kind.Valid() {
		return defaultPowerSpec
	}
	return t.Powers[kind]
}

// Enemy returns the spec for kind, or the documented default for an undeclared kind
func (t *Tuning) Enemy(kind core.EnemyKind) EnemySpec {
	if !kind.Valid() {
		return defaultEnemySpec
	}
	return t.Enemies[kind]
}

// TotalWeight sums spawn weights across power kinds
func (t *Tuning) TotalWeight() int {
	total := 0
	for _, p := range t.Powers {
		total += p.Weight
	}
	return total
}

// Validate checks every table entry and the cross-kind ordering rules:
// broccoli keeps the shortest range, atomic the longest range and the smallest weight
func (t *Tuning) Validate() error {
	var errs []error

	for _, k := range core.AllPowerKinds() {
		p := t.Powers[k]
		if p.Range <= 0 {
			errs = append(errs, fmt.Errorf("power %s: range must be positive, got %v", k, p.Range))
		}
		if p.Weight <= 0 {
			errs = append(errs, fmt.Errorf("power %s: weight must be positive, got %d", k, p.Weight))
		}
		if p.Gain <= 0 {
			errs = append(errs, fmt.Errorf("power %s: gain must be positive, got %d", k, p.Gain))
		}
		if p.PoseFrames <= 0 {
			errs = append(errs, fmt.Errorf("power %s: pose_frames must be positive, got %d", k, p.PoseFrames))
		}
	}

	shortest := t.Powers[core.PowerBroccoli].Range
	longest := t.Powers[core.PowerAtomic].Range
	rarest := t.Powers[core.PowerAtomic].Weight
	if shortest >= longest {
		errs = append(errs, fmt.Errorf("broccoli range %v must be shorter than atomic range %v", shortest, longest))
	}
	for _, k := range core.AllPowerKinds() {
		p := t.Powers[k]
		if p.Range < shortest {
			errs = append(errs, fmt.Errorf("power %s: range %v undercuts broccoli %v", k, p.Range, shortest))
		}
		if p.Range > longest {
			errs = append(errs, fmt.Errorf("power %s: range %v exceeds atomic %v", k, p.Range, longest))
		}
		if p.Weight < rarest {
			errs = append(errs, fmt.Errorf("power %s: weight %d is rarer than atomic %d", k, p.Weight, rarest))
		}
	}

	for _, k := range core.AllEnemyKinds() {
		e := t.Enemies[k]
		if e.Points <= 0 {
			errs = append(errs, fmt.Errorf("enemy %s: points must be positive, got %d", k, e.Points))
		}
		if e.Width <= 0 || e.Height <= 0 {
			errs = append(errs, fmt.Errorf("enemy %s: size must be positive, got %vx%v", k, e.Width, e.Height))
		}
	}

	s := t.Spawn
	if s.FoodInterval <= 0 {
		errs = append(errs, fmt.Errorf("spawn: food_interval must be positive, got %d", s.FoodInterval))
	}
	if s.EnemyMinInterval <= 0 {
		errs = append(errs, fmt.Errorf("spawn: enemy_min_interval must be positive, got %d", s.EnemyMinInterval))
	}
	if s.EnemyBaseInterval < s.EnemyMinInterval {
		errs = append(errs, fmt.Errorf("spawn: enemy_base_interval %d below minimum %d", s.EnemyBaseInterval, s.EnemyMinInterval))
	}
	if s.InitialInventory < 0 {
		errs = append(errs, fmt.Errorf("spawn: initial_inventory must not be negative, got %d", s.InitialInventory))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidTuning, errors.Join(errs...))
}
