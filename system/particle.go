package system

import (
	"math"

	"github.com/lixenwraith/monkey-runner/component"
	"github.com/lixenwraith/monkey-runner/core"
	"github.com/lixenwraith/monkey-runner/engine"
	"github.com/lixenwraith/monkey-runner/parameter"
)

// ParticleSystem advances and prunes particles
// Stem wobble and cap orbit read the game clock, not the frame counter
type ParticleSystem struct{}

// NewParticleSystem creates a new particle system
func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{}
}

// Priority returns the system's priority
func (s *ParticleSystem) Priority() int {
	return parameter.PriorityParticle
}

// Update advances every particle one frame
func (s *ParticleSystem) Update(w *engine.World) {
	if !w.Running {
		return
	}
	nowMs := float64(w.Clock.Now().UnixMilli())

	kept := w.Particles[:0]
	for _, p := range w.Particles {
		StepParticle(&p, nowMs)
		if p.Dead() {
			continue
		}
		kept = append(kept, p)
	}
	w.Particles = kept
}

// StepParticle moves p by its velocity, then applies its phase behavior
// Life decays before the cap expansion reads it
func StepParticle(p *component.Particle, nowMs float64) {
	p.X += p.VX
	p.Y += p.VY
	p.Life -= p.Phase.Decay()
	p.Size *= p.Phase.Growth()

	switch p.Phase {
	case component.PhaseStem:
		p.Y = p.OriginY + math.Sin(nowMs/parameter.StemWobblePhase+p.OriginY)*parameter.StemWobbleAmp
	case component.PhaseCap:
		r := p.Radius * (1 + (1-p.Life)*parameter.CapExpansion)
		a := p.Angle + nowMs/parameter.CapOrbitPhase
		p.X += math.Cos(a) * r * parameter.CapOrbitScale
		p.Y += math.Sin(a) * r * parameter.CapOrbitScale
	}
}

// EmitBurst emits the simple burst from the player's leading edge
func EmitBurst(w *engine.World, kind core.PowerKind, dir core.Direction) {
	color := w.Tuning.Power(kind).Particle
	x := w.Player.LeadingEdge(dir)
	y := w.Player.Y + w.Player.H/2
	sign := dir.Sign()
	rng := w.Rand

	for i := 0; i < parameter.BurstCount; i++ {
		w.Particles = append(w.Particles, component.Particle{
			X:     x,
			Y:     y,
			VX:    sign * (rng.Float64()*parameter.BurstSpeedSpread + parameter.BurstSpeedMin),
			VY:    (rng.Float64() - 0.5) * parameter.BurstVerticalSpread,
			Size:  rng.Float64()*parameter.BurstSizeSpread + parameter.BurstSizeMin,
			Color: color,
			Life:  parameter.BurstLife,
			Phase: component.PhasePlain,
		})
	}
}

// EmitCompound emits the four-phase mushroom effect: ground flash, stem, cap and fire ring
func EmitCompound(w *engine.World, dir core.Direction) {
	x := w.Player.LeadingEdge(dir)
	y := w.Player.Y + w.Player.H/2
	sign := dir.Sign()
	rng := w.Rand

	flash := core.MustHex(parameter.FlashColor)
	colorA := core.MustHex(parameter.CompoundColorA)
	colorB := core.MustHex(parameter.CompoundColorB)
	ring := core.MustHex(parameter.RingColor)

	alternate := func(i int) core.RGB {
		if i%2 == 0 {
			return colorA
		}
		return colorB
	}

	for i := 0; i < parameter.FlashCount; i++ {
		w.Particles = append(w.Particles, component.Particle{
			X:     x + sign*rng.Float64()*parameter.FlashOffsetRange,
			Y:     y,
			VX:    sign * rng.Float64(),
			Size:  rng.Float64()*parameter.FlashSizeSpread + parameter.FlashSizeMin,
			Color: flash,
			Life:  parameter.FlashLife,
			Phase: component.PhaseFlash,
		})
	}

	for i := 0; i < parameter.StemCount; i++ {
		height := rng.Float64() * parameter.StemHeight
		spread := math.Min(height/4, parameter.StemMaxSpread)
		originY := y - height
		w.Particles = append(w.Particles, component.Particle{
			X:       x + sign*(rng.Float64()-0.5)*spread,
			Y:       originY,
			VX:      sign * rng.Float64(),
			VY:      -rng.Float64()*parameter.StemRiseSpread - parameter.StemRiseMin,
			Size:    rng.Float64()*parameter.StemSizeSpread + parameter.StemSizeMin,
			Color:   alternate(i),
			Life:    parameter.StemLife,
			Phase:   component.PhaseStem,
			OriginY: originY,
		})
	}

	for i := 0; i < parameter.CapCount; i++ {
		angle := 2 * math.Pi * float64(i) / parameter.CapCount
		radius := parameter.CapWidth * (parameter.CapRadiusMin + rng.Float64()*parameter.CapRadiusRange)
		w.Particles = append(w.Particles, component.Particle{
			X:      x + sign*parameter.CapOffsetX,
			Y:      y - parameter.StemHeight,
			VX:     sign * math.Cos(angle) * parameter.CapSpeed,
			VY:     math.Sin(angle)*parameter.CapSpeed - parameter.CapLift,
			Size:   rng.Float64()*parameter.CapSizeSpread + parameter.CapSizeMin,
			Color:  alternate(i),
			Life:   parameter.CapLife,
			Phase:  component.PhaseCap,
			Angle:  angle,
			Radius: radius,
		})
	}

	for i := 0; i < parameter.RingCount; i++ {
		angle := 2 * math.Pi * float64(i) / parameter.RingCount
		w.Particles = append(w.Particles, component.Particle{
			X:     x,
			Y:     y,
			VX:    sign * math.Cos(angle) * parameter.RingSpeed,
			VY:    math.Sin(angle) * parameter.RingSpeed,
			Size:  rng.Float64()*parameter.RingSizeSpread + parameter.RingSizeMin,
			Color: ring,
			Life:  parameter.RingLife,
			Phase: component.PhaseRing,
		})
	}
}
