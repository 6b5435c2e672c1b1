package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LookupFunc matches os.LookupEnv, injectable for tests
type LookupFunc func(key string) (string, bool)

func lookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// loadDotEnv exports variables from path without overriding the real environment
// A missing file is not an error
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays MONKEY_RUNNER_* variables onto c
// Volumes are given as 0-100 and converted to 0.0-1.0
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	if v, ok := lookup(EnvPrefix + "DEBUG"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sDEBUG: %w", EnvPrefix, err)
		}
		c.Debug = b
	}

	if v, ok := lookup(EnvPrefix + "AUDIO_ENABLED"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sAUDIO_ENABLED: %w", EnvPrefix, err)
		}
		c.Audio.Enabled = b
	}

	if v, ok := lookup(EnvPrefix + "MASTER_VOLUME"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sMASTER_VOLUME: %w", EnvPrefix, err)
		}
		c.Audio.MasterVolume = clamp01(float64(n) / 100.0)
	}

	if v, ok := lookup(EnvPrefix + "MUSIC_VOLUME"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sMUSIC_VOLUME: %w", EnvPrefix, err)
		}
		c.Audio.MusicVolume = clamp01(float64(n) / 100.0)
	}

	if v, ok := lookup(EnvPrefix + "SAMPLE_RATE"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("%sSAMPLE_RATE: invalid value %q", EnvPrefix, v)
		}
		c.Audio.SampleRate = n
	}

	// Per-cue volumes as a JSON object, e.g. {"atomic":0.5,"jump":0.8}
	if v, ok := lookup(EnvPrefix + "SFX_VOLUMES"); ok && v != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(v), &volumes); err != nil {
			return fmt.Errorf("%sSFX_VOLUMES: %w", EnvPrefix, err)
		}
		if err := c.Audio.setCueVolumes(volumes); err != nil {
			return fmt.Errorf("%sSFX_VOLUMES: %w", EnvPrefix, err)
		}
	}

	if v, ok := lookup(EnvPrefix + "COLOR_MODE"); ok && v != "" {
		c.Display.ColorMode = v
	}

	if v, ok := lookup(EnvPrefix + "ASSET_DIR"); ok && v != "" {
		c.Display.AssetDir = v
	}

	return nil
}
