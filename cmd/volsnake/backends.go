package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/volsnake/internal/audio"
	"github.com/vovakirdan/volsnake/internal/registry"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List audio backends",
	Long:  `Shows every registered audio backend and whether it can run on this machine.`,
	Args:  cobra.NoArgs,
	Run:   runBackends,
}

func runBackends(cmd *cobra.Command, args []string) {
	backends := registry.List()
	detected := audio.Detect()
	out := cmd.OutOrStdout()

	// Calculate column widths
	maxNameLen := len("Name")
	for _, b := range backends {
		maxNameLen = max(maxNameLen, len(b.Name))
	}

	fmt.Fprintln(out, "Audio backends:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-*s  %-9s  %s\n", maxNameLen, "Name", "Available", "Description")
	fmt.Fprintf(out, "  %-*s  %-9s  %s\n", maxNameLen, "----", "---------", "-----------")
	for _, b := range backends {
		avail := "no"
		if audio.Available(b) {
			avail = "yes"
		}
		title := b.Title
		if b.Name == detected {
			title += " [auto]"
		}
		fmt.Fprintf(out, "  %-*s  %-9s  %s\n", maxNameLen, b.Name, avail, title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Select one with --audio <name> or audio.backend in the config file.")
}
