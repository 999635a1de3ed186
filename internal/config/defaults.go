package config

import (
	_ "embed"
)

//go:embed defaults/volsnake.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration.
func DefaultConfig() Config {
	return Config{
		Audio: AudioConfig{
			Backend:     "auto",
			StepPercent: 5,
			TimeoutMS:   500,
			Chime:       false,
			ChimeVolume: 0.3,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.volsnake/volsnake.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
