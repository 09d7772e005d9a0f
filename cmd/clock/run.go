package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-clock/internal/platform/tui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the clock full screen",
	Long: `Show the clock face in the alternate screen and redraw it after
every redraw delay.

Controls:
  ?          - Toggle help
  Ctrl+S     - Save a plain-text screenshot to ~/.clock/screenshots
  Q/Esc      - Quit

Examples:
  clock run
  clock run --preset dots
  clock run --config ./my-clock.yaml --delay 1s`,
	Args: cobra.NoArgs,
	Run:  runClock,
}

func runClock(cmd *cobra.Command, args []string) {
	logger, closeLog := openLogger(flagLogFile)
	defer closeLog()

	style, err := loadStyle(logger, flagStyleOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	cfg := terminalConfig()
	logger.Info("starting clock", "width", cfg.ScreenW, "height", cfg.ScreenH,
		"dial", style.DialType, "delay", style.RedrawDelay)

	if err := tui.Run(style, cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running clock: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}
