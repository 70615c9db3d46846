package config

import (
	_ "embed"
)

//go:embed defaults/microware.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration, used as the
// last resort when even the embedded YAML fails to parse.
func DefaultConfig() Config {
	return Config{
		Session: SessionConfig{
			Lives:          4,
			ScoreIncrement: 100,
			SpeedStep:      0.2,
			SpeedCap:       3.0,
			SpeedEvery:     5,
			PromptDelayMs:  1000,
			ResolveDelayMs: 600,
			EndingDelayMs:  900,
			MinRoundMs:     1500,
		},
	}
}
