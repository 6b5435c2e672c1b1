package config

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/monkey-runner/core"
	"github.com/lixenwraith/monkey-runner/parameter"
)

// ErrUnknownKind reports a power or enemy name that matches no declared kind
var ErrUnknownKind = errors.New("unknown kind")

// EnvPrefix prefixes every environment override
const EnvPrefix = "MONKEY_RUNNER_"

// Audio holds playback settings for the audio collaborator
type Audio struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	MusicVolume  float64 // 0.0-1.0
	SampleRate   int
	CueVolumes   [core.CueCount]float64
}

// Display holds frontend presentation settings
type Display struct {
	ColorMode  string // "auto", "256", "truecolor"
	CellWidth  int    // Simulation px per terminal column
	CellHeight int    // Simulation px per terminal row
	AssetDir   string // Sprite root for the windowed frontend
}

// Config is the fully resolved startup configuration
type Config struct {
	Debug   bool
	Audio   Audio
	Display Display
	Keys    map[string]string // Key name -> action name, sparse override; "none" unbinds
	Tuning  Tuning
}

// DefaultAudio returns audio settings with every cue at full volume
func DefaultAudio() Audio {
	a := Audio{
		Enabled:      true,
		MasterVolume: parameter.DefaultMasterVolume,
		MusicVolume:  parameter.DefaultMusicVolume,
		SampleRate:   parameter.AudioSampleRate,
	}
	for i := range a.CueVolumes {
		a.CueVolumes[i] = 1.0
	}
	return a
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Audio: DefaultAudio(),
		Display: Display{
			ColorMode:  "auto",
			CellWidth:  parameter.DefaultCellWidth,
			CellHeight: parameter.DefaultCellHeight,
			AssetDir:   "assets",
		},
		Keys:   map[string]string{},
		Tuning: DefaultTuning(),
	}
}

// Load resolves configuration in order: defaults, file at path (skipped when empty),
// .env in the working directory, MONKEY_RUNNER_* environment, then validation
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(lookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings outside the tuning tables, then the tables
func (c *Config) Validate() error {
	if c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0 {
		return fmt.Errorf("display: cell size must be positive, got %dx%d", c.Display.CellWidth, c.Display.CellHeight)
	}
	switch c.Display.ColorMode {
	case "auto", "256", "truecolor":
	default:
		return fmt.Errorf("display: unknown color mode %q", c.Display.ColorMode)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio: sample rate must be positive, got %d", c.Audio.SampleRate)
	}
	return c.Tuning.Validate()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
