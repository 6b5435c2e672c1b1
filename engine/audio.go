package engine

import "github.com/lixenwraith/monkey-runner/core"

// Audio is the fire-and-forget sound port the simulation talks to
// Implementations must not block the caller
type Audio interface {
	Play(cue core.Cue)
	// PlayCompound plays cue and chains follow-ups by combo level
	PlayCompound(cue core.Cue, combo int)
	StartLoop()
	StopLoop()
}

// NopAudio is the silent implementation
type NopAudio struct{}

func (NopAudio) Play(core.Cue)              {}
func (NopAudio) PlayCompound(core.Cue, int) {}
func (NopAudio) StartLoop()                 {}
func (NopAudio) StopLoop()                  {}
