package core

// Cue identifies an audio cue requested by the simulation
type Cue int

const (
	CueJump        Cue = iota // Player leaves the ground
	CueLand                   // Player lands from a fall
	CueBroccoli               // Dry hiss
	CueCheese                 // Wet splat
	CueGhostPepper            // Sharp zip
	CueAtomic                 // Deep rumble
	CueComboBreak             // Multi-kill follow-up
	CueJuicy                  // Random variation, high combo
	CueDry                    // Random variation, high combo
	CueCount
)

var cueNames = [CueCount]string{
	CueJump:        "jump",
	CueLand:        "land",
	CueBroccoli:    "broccoli",
	CueCheese:      "cheese",
	CueGhostPepper: "ghostPepper",
	CueAtomic:      "atomic",
	CueComboBreak:  "comboBreak",
	CueJuicy:       "juicy",
	CueDry:         "dry",
}

func (c Cue) String() string {
	if c < 0 || c >= CueCount {
		return "unknown"
	}
	return cueNames[c]
}

// PowerCue maps a power kind to its attack cue
func PowerCue(kind PowerKind) Cue {
	switch kind {
	case PowerBroccoli:
		return CueBroccoli
	case PowerCheese:
		return CueCheese
	case PowerGhostPepper:
		return CueGhostPepper
	case PowerAtomic:
		return CueAtomic
	default:
		return CueBroccoli
	}
}
