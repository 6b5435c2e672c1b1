package physics

// Body is the mutable kinematic state shared by the player integrator
type Body struct {
	X, Y   float64
	VX, VY float64
}

// GroundContact describes the result of a vertical step
type GroundContact struct {
	Grounded bool
	Landed   bool    // Transitioned from airborne this step
	ImpactVY float64 // Vertical velocity at the moment of contact
}

// Integrate advances X by VX and Y by VY, adding gravity to VY first while airborne
func Integrate(b *Body, gravity float64, airborne bool) {
	b.X += b.VX
	if airborne {
		b.VY += gravity
	}
	b.Y += b.VY
}

// SettleOnGround clamps a body of height h onto groundY
// Contact zeroes VY; wasGrounded distinguishes a landing from resting
func SettleOnGround(b *Body, h, groundY float64, wasGrounded bool) GroundContact {
	if b.Y+h < groundY {
		return GroundContact{}
	}
	impact := b.VY
	b.Y = groundY - h
	b.VY = 0
	return GroundContact{
		Grounded: true,
		Landed:   !wasGrounded,
		ImpactVY: impact,
	}
}

// ClampX keeps a body of width w within [0, maxWidth-w]
func ClampX(b *Body, w, maxWidth float64) {
	limit := maxWidth - w
	if limit < 0 {
		limit = 0
	}
	if b.X < 0 {
		b.X = 0
	} else if b.X > limit {
		b.X = limit
	}
}
