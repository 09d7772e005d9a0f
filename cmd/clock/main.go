// clock is an analog clock face for the terminal.
//
// Usage:
//
//	clock                    - Run the clock full screen
//	clock run                - Same as above
//	clock snapshot           - Print a single frame and exit
//	clock presets            - List style presets
//	clock dials              - List dial types
//
// Global flags:
//
//	--config <path>    - Style file (default: ~/.clock/configs/clock.yaml)
//	--preset <id>      - Apply a style preset on top of the config
//	--font-dir <dir>   - Extra directory to search for dial fonts
//	--log-file <path>  - Log destination (default: ~/.clock/clock.log)
//	--delay <dur>      - Override the redraw delay (e.g. 500ms)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	// Import presets to register them
	_ "github.com/vovakirdan/tui-clock/internal/presets"
)

var (
	// Global flags
	flagConfig  string
	flagPreset  string
	flagFontDir string
	flagLogFile string
	flagDelay   time.Duration
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "clock",
	Short: "Analog clock face in your terminal",
	Long: `Clock draws an analog clock face in the terminal and keeps it
ticking until you quit.

Available commands:
  run       - Full-screen clock (default)
  snapshot  - Print one frame to stdout
  presets   - Show style presets
  dials     - Show dial types

Examples:
  clock
  clock --preset roman
  clock snapshot --at 10:08:30 --width 60 --height 30
  clock run --config ./my-clock.yaml --delay 1s`,
	Args: cobra.NoArgs,
	Run:  runClock,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to clock style YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Style preset (see 'clock presets')")
	rootCmd.PersistentFlags().StringVar(&flagFontDir, "font-dir", "", "Extra directory for dial font assets")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.clock/clock.log", "Path to log file")
	rootCmd.PersistentFlags().DurationVar(&flagDelay, "delay", 0, "Redraw delay override (0 = use style)")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(dialsCmd)
}
