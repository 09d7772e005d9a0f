package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-clock/internal/registry"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List all style presets",
	Long:  `Shows a list of all style presets that --preset accepts.`,
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

func runPresets(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	presets := registry.List()

	if len(presets) == 0 {
		fmt.Fprintln(out, "No presets available.")
		return
	}

	fmt.Fprintln(out, "Available presets:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range presets {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, p := range presets {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, p.ID, p.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'clock --preset <id>' to use a preset.")
}
