// Package config provides YAML-based configuration loading and difficulty
// presets for the rush session.
package config

import (
	"time"

	"github.com/vibeware/microware/internal/session"
)

// Config is the root of the microware config file.
type Config struct {
	Session SessionConfig `yaml:"session"`
}

// SessionConfig defines the rush progression tunables.
type SessionConfig struct {
	Lives          int     `yaml:"lives"`
	ScoreIncrement int     `yaml:"score_increment"`
	SpeedStep      float64 `yaml:"speed_step"`
	SpeedCap       float64 `yaml:"speed_cap"`
	SpeedEvery     int     `yaml:"speed_every"`
	PromptDelayMs  int     `yaml:"prompt_delay_ms"`
	ResolveDelayMs int     `yaml:"resolve_delay_ms"`
	EndingDelayMs  int     `yaml:"ending_delay_ms"`
	MinRoundMs     int     `yaml:"min_round_ms"`
}

// Rules converts the loaded config into the session's plain ruleset.
// Zero or missing fields fall back to the standard rules, so a partial
// config file overrides only what it names.
func (c Config) Rules() session.Rules {
	r := session.DefaultRules()
	s := c.Session

	if s.Lives > 0 {
		r.StartLives = s.Lives
	}
	if s.ScoreIncrement > 0 {
		r.ScoreIncrement = s.ScoreIncrement
	}
	if s.SpeedStep > 0 {
		r.SpeedStep = s.SpeedStep
	}
	if s.SpeedCap > 0 {
		r.SpeedCap = s.SpeedCap
	}
	if s.SpeedEvery > 0 {
		r.SpeedEvery = s.SpeedEvery
	}
	if s.PromptDelayMs > 0 {
		r.PromptDelay = time.Duration(s.PromptDelayMs) * time.Millisecond
	}
	if s.ResolveDelayMs > 0 {
		r.ResolveDelay = time.Duration(s.ResolveDelayMs) * time.Millisecond
	}
	if s.EndingDelayMs > 0 {
		r.EndingDelay = time.Duration(s.EndingDelayMs) * time.Millisecond
	}
	if s.MinRoundMs > 0 {
		r.MinRoundTime = time.Duration(s.MinRoundMs) * time.Millisecond
	}
	return r
}

// Preset is a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ApplyPreset adjusts the config for a difficulty preset. Unknown presets
// leave the config untouched.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Session.Lives = 5
		cfg.Session.SpeedEvery = 7
	case PresetHard:
		cfg.Session.Lives = 3
		cfg.Session.SpeedEvery = 3
		cfg.Session.MinRoundMs = 1200
	case PresetNormal:
		// The defaults are the normal preset.
	}
}
