package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the file configuration.
const (
	EnvAudio    = "VOLSNAKE_AUDIO"
	EnvChime    = "VOLSNAKE_CHIME"
	EnvLogLevel = "VOLSNAKE_LOG_LEVEL"
	EnvLogFile  = "VOLSNAKE_LOG_FILE"
)

// Load loads the host configuration.
// Search order: customPath -> ~/.volsnake/config.yaml -> ./configs/volsnake.yaml -> embedded default
// Values missing from a file keep their defaults.
func Load(customPath string) (Config, error) {
	cfg := DefaultConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "volsnake.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".volsnake", filename)
}

// LoadDotEnv loads variables from an env file into the process environment.
// A missing file is not an error. Variables already set are kept.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg with VOLSNAKE_* environment variables.
func ApplyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvAudio); ok && v != "" {
		cfg.Audio.Backend = strings.ToLower(v)
	}
	if v, ok := os.LookupEnv(EnvChime); ok && v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvChime, v, err)
		}
		cfg.Audio.Chime = on
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok && v != "" {
		cfg.Log.File = v
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if !slices.Contains(Backends, c.Audio.Backend) {
		return fmt.Errorf("unknown audio backend %q (want one of %s)", c.Audio.Backend, strings.Join(Backends, ", "))
	}
	if c.Audio.StepPercent <= 0 || c.Audio.StepPercent > 100 {
		return fmt.Errorf("audio.step_percent must be in 1..100, got %d", c.Audio.StepPercent)
	}
	if c.Audio.TimeoutMS <= 0 {
		return fmt.Errorf("audio.timeout_ms must be positive, got %d", c.Audio.TimeoutMS)
	}
	if c.Audio.ChimeVolume < 0 || c.Audio.ChimeVolume > 1 {
		return fmt.Errorf("audio.chime_volume must be in [0,1], got %g", c.Audio.ChimeVolume)
	}
	if !slices.Contains(LogLevels, c.Log.Level) {
		return fmt.Errorf("unknown log level %q (want one of %s)", c.Log.Level, strings.Join(LogLevels, ", "))
	}
	return nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
