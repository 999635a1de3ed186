// Package config provides YAML-based host configuration loading for
// volsnake: the audio backend and logging. Gameplay constants are fixed
// at compile time and are not configurable.
package config

import "time"

// Config is the effective host configuration.
type Config struct {
	Audio AudioConfig `yaml:"audio"`
	Log   LogConfig   `yaml:"log"`
}

// AudioConfig selects and tunes the volume backend.
type AudioConfig struct {
	Backend     string  `yaml:"backend"`      // auto, pactl, wpctl, amixer, osascript, log, chime
	StepPercent int     `yaml:"step_percent"` // Volume change per token
	TimeoutMS   int     `yaml:"timeout_ms"`   // Upper bound for one mixer command
	Chime       bool    `yaml:"chime"`        // Play a tone alongside the volume change
	ChimeVolume float64 `yaml:"chime_volume"` // 0.0 to 1.0
}

// LogConfig controls the log level and destination.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Used while the TUI owns the terminal
}

// Timeout returns the mixer command timeout as a duration.
func (a AudioConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutMS) * time.Millisecond
}

// Backends lists the accepted values of audio.backend.
var Backends = []string{"auto", "pactl", "wpctl", "amixer", "osascript", "log", "chime"}

// LogLevels lists the accepted values of log.level.
var LogLevels = []string{"debug", "info", "warn", "error"}
