package component

import (
	"github.com/lixenwraith/monkey-runner/core"
	"github.com/lixenwraith/monkey-runner/parameter"
)

// ParticlePhase selects the per-frame behavior and alpha curve of a particle
type ParticlePhase uint8

const (
	PhasePlain ParticlePhase = iota
	PhaseFlash
	PhaseStem
	PhaseCap
	PhaseRing
)

func (p ParticlePhase) String() string {
	switch p {
	case PhaseFlash:
		return "flash"
	case PhaseStem:
		return "stem"
	case PhaseCap:
		return "cap"
	case PhaseRing:
		return "ring"
	default:
		return "plain"
	}
}

// Decay returns the per-frame life reduction
func (p ParticlePhase) Decay() float64 {
	switch p {
	case PhaseFlash:
		return parameter.FlashDecay
	case PhaseStem:
		return parameter.StemDecay
	case PhaseCap:
		return parameter.CapDecay
	case PhaseRing:
		return parameter.RingDecay
	default:
		return parameter.PlainDecay
	}
}

// Growth returns the per-frame size multiplier
func (p ParticlePhase) Growth() float64 {
	switch p {
	case PhaseFlash:
		return parameter.FlashGrowth
	case PhaseStem:
		return parameter.StemGrowth
	case PhaseCap:
		return parameter.CapGrowth
	case PhaseRing:
		return parameter.RingGrowth
	default:
		return 1.0
	}
}

// Particle is a short-lived visual element; removed the frame Life <= 0
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Color  core.RGB
	Life   float64
	Phase  ParticlePhase

	OriginY float64 // Stem wobble anchor
	Angle   float64 // Cap orbit angle (rad)
	Radius  float64 // Cap orbit radius
}

// Alpha returns render opacity: life for plain/flash/ring,
// a brighter clamped glow for the mushroom stem and cap
func (p *Particle) Alpha() float64 {
	a := p.Life
	if p.Phase == PhaseStem || p.Phase == PhaseCap {
		a = p.Life * parameter.GlowFactor * parameter.GlowScale
	}
	switch {
	case a < 0:
		return 0
	case a > 1:
		return 1
	default:
		return a
	}
}

// Dead reports whether the particle should be pruned
func (p *Particle) Dead() bool {
	return p.Life <= 0
}
