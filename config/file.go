package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/monkey-runner/core"
)

// File shapes use pointers so absent keys keep their defaults

type filePower struct {
	Range      *float64 `toml:"range" yaml:"range"`
	Weight     *int     `toml:"weight" yaml:"weight"`
	Gain       *int     `toml:"gain" yaml:"gain"`
	PoseFrames *int     `toml:"pose_frames" yaml:"pose_frames"`
	Particle   *string  `toml:"particle" yaml:"particle"`
	Food       *string  `toml:"food" yaml:"food"`
}

type fileEnemy struct {
	Points *int     `toml:"points" yaml:"points"`
	Width  *float64 `toml:"width" yaml:"width"`
	Height *float64 `toml:"height" yaml:"height"`
	Color  *string  `toml:"color" yaml:"color"`
}

type fileSpawn struct {
	FoodInterval      *int `toml:"food_interval" yaml:"food_interval"`
	EnemyBaseInterval *int `toml:"enemy_base_interval" yaml:"enemy_base_interval"`
	EnemyMinInterval  *int `toml:"enemy_min_interval" yaml:"enemy_min_interval"`
	InitialInventory  *int `toml:"initial_inventory" yaml:"initial_inventory"`
}

type fileTuning struct {
	Powers  map[string]filePower `toml:"powers" yaml:"powers"`
	Enemies map[string]fileEnemy `toml:"enemies" yaml:"enemies"`
	Spawn   *fileSpawn           `toml:"spawn" yaml:"spawn"`
}

type fileAudio struct {
	Enabled      *bool              `toml:"enabled" yaml:"enabled"`
	MasterVolume *float64           `toml:"master_volume" yaml:"master_volume"`
	MusicVolume  *float64           `toml:"music_volume" yaml:"music_volume"`
	SampleRate   *int               `toml:"sample_rate" yaml:"sample_rate"`
	Cues         map[string]float64 `toml:"cues" yaml:"cues"`
}

type fileDisplay struct {
	ColorMode  *string `toml:"color_mode" yaml:"color_mode"`
	CellWidth  *int    `toml:"cell_width" yaml:"cell_width"`
	CellHeight *int    `toml:"cell_height" yaml:"cell_height"`
	AssetDir   *string `toml:"asset_dir" yaml:"asset_dir"`
}

type fileConfig struct {
	Debug   *bool             `toml:"debug" yaml:"debug"`
	Audio   *fileAudio        `toml:"audio" yaml:"audio"`
	Display *fileDisplay      `toml:"display" yaml:"display"`
	Keys    map[string]string `toml:"keys" yaml:"keys"`
	Tuning  *fileTuning       `toml:"tuning" yaml:"tuning"`
}

// mergeFile decodes path by extension and overlays it onto c
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), &fc)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("parse %s: unknown key %q", path, undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&fc); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}

	if err := c.merge(&fc); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// MergeTOML overlays TOML text onto c, used for inline overrides and tests
func (c *Config) MergeTOML(data string) error {
	var fc fileConfig
	if _, err := toml.Decode(data, &fc); err != nil {
		return fmt.Errorf("parse toml: %w", err)
	}
	return c.merge(&fc)
}

// MergeYAML overlays YAML text onto c
func (c *Config) MergeYAML(data []byte) error {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	return c.merge(&fc)
}

func (c *Config) merge(fc *fileConfig) error {
	if fc.Debug != nil {
		c.Debug = *fc.Debug
	}

	if a := fc.Audio; a != nil {
		if a.Enabled != nil {
			c.Audio.Enabled = *a.Enabled
		}
		if a.MasterVolume != nil {
			c.Audio.MasterVolume = clamp01(*a.MasterVolume)
		}
		if a.MusicVolume != nil {
			c.Audio.MusicVolume = clamp01(*a.MusicVolume)
		}
		if a.SampleRate != nil {
			c.Audio.SampleRate = *a.SampleRate
		}
		if err := c.Audio.setCueVolumes(a.Cues); err != nil {
			return err
		}
	}

	if d := fc.Display; d != nil {
		if d.ColorMode != nil {
			c.Display.ColorMode = *d.ColorMode
		}
		if d.CellWidth != nil {
			c.Display.CellWidth = *d.CellWidth
		}
		if d.CellHeight != nil {
			c.Display.CellHeight = *d.CellHeight
		}
		if d.AssetDir != nil {
			c.Display.AssetDir = *d.AssetDir
		}
	}

	for action, key := range fc.Keys {
		c.Keys[action] = key
	}

	if fc.Tuning != nil {
		return c.Tuning.merge(fc.Tuning)
	}
	return nil
}

func (a *Audio) setCueVolumes(cues map[string]float64) error {
	for name, v := range cues {
		found := false
		for cue := core.Cue(0); cue < core.CueCount; cue++ {
			if cue.String() == name {
				a.CueVolumes[cue] = clamp01(v)
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("audio cue %q: %w", name, ErrUnknownKind)
		}
	}
	return nil
}

func (t *Tuning) merge(ft *fileTuning) error {
	for name, fp := range ft.Powers {
		kind, ok := core.ParsePowerKind(name)
		if !ok {
			return fmt.Errorf("power %q: %w", name, ErrUnknownKind)
		}
		p := &t.Powers[kind]
		if fp.Range != nil {
			p.Range = *fp.Range
		}
		if fp.Weight != nil {
			p.Weight = *fp.Weight
		}
		if fp.Gain != nil {
			p.Gain = *fp.Gain
		}
		if fp.PoseFrames != nil {
			p.PoseFrames = *fp.PoseFrames
		}
		if err := mergeColor(&p.Particle, fp.Particle); err != nil {
			return fmt.Errorf("power %s particle: %w", name, err)
		}
		if err := mergeColor(&p.Food, fp.Food); err != nil {
			return fmt.Errorf("power %s food: %w", name, err)
		}
	}

	for name, fe := range ft.Enemies {
		kind, ok := core.ParseEnemyKind(name)
		if !ok {
			return fmt.Errorf("enemy %q: %w", name, ErrUnknownKind)
		}
		e := &t.Enemies[kind]
		if fe.Points != nil {
			e.Points = *fe.Points
		}
		if fe.Width != nil {
			e.Width = *fe.Width
		}
		if fe.Height != nil {
			e.Height = *fe.Height
		}
		if err := mergeColor(&e.Color, fe.Color); err != nil {
			return fmt.Errorf("enemy %s color: %w", name, err)
		}
	}

	if s := ft.Spawn; s != nil {
		if s.FoodInterval != nil {
			t.Spawn.FoodInterval = *s.FoodInterval
		}
		if s.EnemyBaseInterval != nil {
			t.Spawn.EnemyBaseInterval = *s.EnemyBaseInterval
		}
		if s.EnemyMinInterval != nil {
			t.Spawn.EnemyMinInterval = *s.EnemyMinInterval
		}
		if s.InitialInventory != nil {
			t.Spawn.InitialInventory = *s.InitialInventory
		}
	}
	return nil
}

func mergeColor(dst *core.RGB, src *string) error {
	if src == nil {
		return nil
	}
	c, err := core.ParseHex(*src)
	if err != nil {
		return err
	}
	*dst = c
	return nil
}
