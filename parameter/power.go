package parameter

// Attack Ranges (px). Broccoli must stay shortest and Atomic longest
const (
	BroccoliRange    = 150.0
	CheeseRange      = 200.0
	GhostPepperRange = 250.0
	AtomicRange      = 350.0

	// DefaultPowerRange applies to kinds missing from the tuning table
	DefaultPowerRange = 150.0
)

// Attack Particle Colors
const (
	BroccoliParticle    = "#90EE90"
	CheeseParticle      = "#FFD700"
	GhostPepperParticle = "#FF0000"
	AtomicParticle      = "#FF4500"

	// DefaultParticleColor applies to kinds missing from the tuning table
	DefaultParticleColor = "#90EE90"
)

// Difficulty Ratchet
const (
	// ScoreThresholdStep is the score granularity that tightens the enemy interval
	ScoreThresholdStep = 50

	// EnemyIntervalFactor multiplies the enemy interval on each threshold crossing
	EnemyIntervalFactor = 0.9
)

// Combo
const (
	// ComboBannerFrames is how long the "Nx COMBO!" banner stays visible
	ComboBannerFrames = 60

	// ComboBreakLevel is the combo above which the combo-break cue chains
	ComboBreakLevel = 2

	// ComboVariationLevel is the combo above which a random variation cue chains
	ComboVariationLevel = 4
)
