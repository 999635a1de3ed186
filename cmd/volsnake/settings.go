package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/volsnake/internal/config"
	"github.com/vovakirdan/volsnake/internal/registry"
)

// loadConfig resolves the effective configuration:
// file (or embedded default) -> .env and VOLSNAKE_* variables -> flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.LoadDotEnv(".env"); err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("audio") {
		cfg.Audio.Backend = strings.ToLower(flagAudio)
	}
	if flags.Changed("chime") {
		cfg.Audio.Chime = flagChime
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = strings.ToLower(flagLogLevel)
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// audioSettings converts the audio section for the backend registry.
func audioSettings(cfg config.Config, logger *log.Logger) registry.Settings {
	return registry.Settings{
		StepPercent: cfg.Audio.StepPercent,
		Timeout:     cfg.Audio.Timeout(),
		ChimeVolume: cfg.Audio.ChimeVolume,
		Logger:      logger,
	}
}
