// volsnake is a terminal snake game that changes the system volume.
// Eating the green token turns the volume up, the red token turns it down,
// and running into the snake's own body mutes it and restarts the board.
//
// Usage:
//
//	volsnake [play]          - Play the game
//	volsnake sim             - Run a headless simulation with random turns
//	volsnake backends        - List audio backends and their availability
//	volsnake config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.volsnake/config.yaml, ./configs/volsnake.yaml)
//	--audio <backend>   - Volume backend: auto, pactl, wpctl, amixer, osascript, log, chime
//	--chime             - Also play a tone for every volume change
//	--seed <value>      - RNG seed for reproducible token placement
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Log destination while the game is running
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagAudio    string
	flagChime    bool
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "volsnake",
	Short: "Volume Snake - a snake game that controls your speaker volume",
	Long: `Volume Snake is a terminal snake game wired to the system mixer.

  green token  - volume up
  red token    - volume down
  own body     - mute and start over

Available commands:
  play      - Play the game (default)
  sim       - Headless simulation, volume effects are only logged
  backends  - Show audio backends found on this machine
  config    - Print the effective configuration

Examples:
  volsnake
  volsnake --audio log
  volsnake play --chime --seed 42
  volsnake sim --ticks 5000 --seed 1`,
	RunE: runPlay,

	// main prints the error; usage is only useful for flag mistakes.
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAudio, "audio", "", "Audio backend (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagChime, "chime", false, "Play a tone for every volume change")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file while playing (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(configCmd)
}
