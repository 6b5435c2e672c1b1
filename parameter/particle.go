package parameter

// Simple Burst
const (
	// BurstCount is the number of particles in a simple burst
	BurstCount = 10
	// BurstSpeedMin and BurstSpeedSpread give horizontal speed dir*(min + U*spread)
	BurstSpeedMin    = 2.0
	BurstSpeedSpread = 5.0
	// BurstVerticalSpread gives vertical speed (U-0.5)*spread
	BurstVerticalSpread = 4.0
	// BurstSizeMin and BurstSizeSpread give size min + U*spread
	BurstSizeMin    = 5.0
	BurstSizeSpread = 10.0
	// BurstLife is the starting life of a burst particle
	BurstLife = 1.0
	// PlainDecay is the per-frame life decay of burst particles
	PlainDecay = 0.02
)

// Compound Effect: Flash
const (
	FlashCount       = 5
	FlashLife        = 0.3
	FlashDecay       = 0.1
	FlashGrowth      = 1.05
	FlashOffsetRange = 20.0
	FlashSizeMin     = 10.0
	FlashSizeSpread  = 20.0
	FlashColor       = "#FFFFFF"
)

// Compound Effect: Stem
const (
	StemCount  = 15
	StemHeight = 100.0
	// StemMaxSpread caps the horizontal scatter; scatter grows with height/4
	StemMaxSpread   = 10.0
	StemLife        = 0.6
	StemDecay       = 0.02
	StemGrowth      = 1.02
	StemRiseMin     = 2.0
	StemRiseSpread  = 4.0
	StemSizeMin     = 10.0
	StemSizeSpread  = 15.0
	StemWobbleAmp   = 2.0
	StemWobblePhase = 200.0 // ms per radian
)

// Compound Effect: Cap
const (
	CapCount       = 20
	CapWidth       = 80.0
	CapRadiusMin   = 0.8
	CapRadiusRange = 0.4
	CapOffsetX     = 30.0
	CapSpeed       = 3.0
	CapLift        = 1.0
	CapLife        = 0.6
	CapDecay       = 0.02
	CapGrowth      = 1.02
	CapSizeMin     = 10.0
	CapSizeSpread  = 20.0
	CapExpansion   = 0.3
	CapOrbitScale  = 0.01
	CapOrbitPhase  = 400.0 // ms per radian
)

// Compound Effect: Ring
const (
	RingCount      = 10
	RingSpeed      = 5.0
	RingLife       = 0.4
	RingDecay      = 0.05
	RingGrowth     = 0.98
	RingSizeMin    = 5.0
	RingSizeSpread = 10.0
	RingColor      = "#FFA500"
)

// Compound Effect Palette
const (
	CompoundColorA = "#FF4500"
	CompoundColorB = "#8B0000"
)

// Glow alpha for stem/cap: (life + 0.8*life) * 200 / 255
const (
	GlowFactor = 1.8
	GlowScale  = 200.0 / 255.0
)
