package parameter

import "time"

// Audio Engine
const (
	// AudioSampleRate is the default output sample rate
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultMasterVolume and DefaultMusicVolume are linear gains in [0,1]
	DefaultMasterVolume = 0.8
	DefaultMusicVolume  = 0.2
)

// Compound Cue Delays
const (
	ComboBreakDelay = 200 * time.Millisecond
	VariationDelay  = 400 * time.Millisecond
)

// Cue Timing
const (
	JumpSoundDuration = 180 * time.Millisecond
	JumpSoundAttack   = 5 * time.Millisecond
	JumpSoundRelease  = 120 * time.Millisecond

	LandSoundDuration = 90 * time.Millisecond
	LandSoundAttack   = 2 * time.Millisecond
	LandSoundRelease  = 70 * time.Millisecond

	HissSoundDuration = 350 * time.Millisecond
	HissSoundAttack   = 20 * time.Millisecond
	HissSoundRelease  = 200 * time.Millisecond

	SplatSoundDuration = 300 * time.Millisecond
	SplatSoundAttack   = 5 * time.Millisecond
	SplatSoundRelease  = 220 * time.Millisecond

	ZipSoundDuration = 220 * time.Millisecond
	ZipSoundAttack   = 5 * time.Millisecond
	ZipSoundRelease  = 80 * time.Millisecond

	RumbleSoundDuration = 900 * time.Millisecond
	RumbleSoundAttack   = 30 * time.Millisecond
	RumbleSoundRelease  = 700 * time.Millisecond

	ComboSoundDuration = 400 * time.Millisecond
	ComboSoundAttack   = 10 * time.Millisecond
	ComboSoundRelease  = 250 * time.Millisecond
)

// Background Loop
const (
	// MusicBeat is one beat of the background loop (100 BPM)
	MusicBeat = 600 * time.Millisecond
	// MusicKickLength is the kick drum decay at the start of each beat
	MusicKickLength = 100 * time.Millisecond
)
