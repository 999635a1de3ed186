package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/volsnake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration volsnake would run with, after the config
file, .env, VOLSNAKE_* environment variables and flags are applied.

Redirect the output to ~/.volsnake/config.yaml to start customizing.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	out, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
