package audio

import (
	"math/rand/v2"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/monkey-runner/core"
	"github.com/lixenwraith/monkey-runner/parameter"
)

// CueStreamer synthesizes cue at unity gain, or nil for an unknown cue
// Juicy and dry pick a random variant on every call
func CueStreamer(cue core.Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case core.CueJump:
		return shaped(WaveSquare, 300, 720, parameter.JumpSoundDuration, parameter.JumpSoundAttack, parameter.JumpSoundRelease, rate)

	case core.CueLand:
		return shaped(WaveSine, 160, 55, parameter.LandSoundDuration, parameter.LandSoundAttack, parameter.LandSoundRelease, rate)

	case core.CueBroccoli:
		return shaped(WaveNoise, 0, 0, parameter.HissSoundDuration, parameter.HissSoundAttack, parameter.HissSoundRelease, rate)

	case core.CueCheese:
		return beep.Mix(
			newVolume(shaped(WaveNoise, 0, 0, parameter.SplatSoundDuration, parameter.SplatSoundAttack, parameter.SplatSoundRelease, rate), 0.6),
			newVolume(shaped(WaveSaw, 110, 70, parameter.SplatSoundDuration, parameter.SplatSoundAttack, parameter.SplatSoundRelease, rate), 0.4),
		)

	case core.CueGhostPepper:
		return shaped(WaveSaw, 1400, 320, parameter.ZipSoundDuration, parameter.ZipSoundAttack, parameter.ZipSoundRelease, rate)

	case core.CueAtomic:
		return beep.Mix(
			newVolume(shaped(WaveSaw, 55, 30, parameter.RumbleSoundDuration, parameter.RumbleSoundAttack, parameter.RumbleSoundRelease, rate), 0.7),
			newVolume(shaped(WaveNoise, 0, 0, parameter.RumbleSoundDuration, parameter.RumbleSoundAttack, parameter.RumbleSoundRelease, rate), 0.3),
		)

	case core.CueComboBreak:
		// Two falling notes
		first := shaped(WaveSaw, 220, 180, parameter.ComboSoundDuration/2, parameter.ComboSoundAttack, parameter.ComboSoundRelease/2, rate)
		second := shaped(WaveSaw, 165, 90, parameter.ComboSoundDuration/2, parameter.ComboSoundAttack, parameter.ComboSoundRelease/2, rate)
		return beep.Seq(first, second)

	case core.CueJuicy:
		base := 90 + rand.Float64()*40
		return beep.Mix(
			newVolume(shaped(WaveSquare, base, base*0.6, parameter.SplatSoundDuration, parameter.SplatSoundAttack, parameter.SplatSoundRelease, rate), 0.5),
			newVolume(shaped(WaveNoise, 0, 0, parameter.SplatSoundDuration, parameter.SplatSoundAttack, parameter.SplatSoundRelease, rate), 0.5),
		)

	case core.CueDry:
		if rand.Float64() < 0.5 {
			return shaped(WaveNoise, 0, 0, parameter.HissSoundDuration, parameter.HissSoundAttack, parameter.HissSoundRelease, rate)
		}
		return shaped(WaveNoise, 0, 0, parameter.HissSoundDuration/2, parameter.HissSoundAttack, parameter.HissSoundRelease/2, rate)
	}
	return nil
}
