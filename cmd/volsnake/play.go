package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/volsnake/internal/audio"
	"github.com/vovakirdan/volsnake/internal/core"
	"github.com/vovakirdan/volsnake/internal/games/volsnake"
	"github.com/vovakirdan/volsnake/internal/logging"
	"github.com/vovakirdan/volsnake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of Volume Snake.

Controls:
  Arrows/hjkl/WASD  - Turn (one turn per tick, no reversing)
  Enter/Esc/Q       - Quit
  ?                 - Toggle help

The snake wraps around the edges of the board. Every token eaten grows it
by one cell. While the game runs, logs are written to the log file.

Examples:
  volsnake play
  volsnake play --audio pactl --chime
  volsnake play --audio log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file.
	var logOut io.Writer = io.Discard
	logFile, err := logging.OpenFile(cfg.Log.File)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v, logging disabled\n", err)
	} else {
		defer logFile.Close()
		logOut = logFile
	}
	logger, err := logging.New(logOut, cfg.Log.Level)
	if err != nil {
		return err
	}

	sink, backend, err := audio.Open(cfg.Audio.Backend, cfg.Audio.Chime, audioSettings(cfg, logger))
	if err != nil {
		logger.Error("cannot open audio backend", "backend", cfg.Audio.Backend, "error", err)
		return err
	}
	if backend == audio.BackendLog && cfg.Audio.Backend == audio.BackendAuto {
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning: no mixer tool found, volume changes will only be logged.")
		fmt.Fprintln(cmd.ErrOrStderr(), "Run 'volsnake backends' to see what is supported.")
	}
	logger.Info("audio backend selected", "backend", backend, "chime", cfg.Audio.Chime)

	// Get terminal size; Bubble Tea sends the real size on start as well
	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = volsnake.Speed
	rc.Seed = flagSeed

	game := volsnake.New(sink)
	if err := tui.Run(game, logger, rc); err != nil {
		logger.Error("game ended with error", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
