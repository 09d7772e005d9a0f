package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-clock/internal/canvas"
	"github.com/vovakirdan/tui-clock/internal/clockface"
	"github.com/vovakirdan/tui-clock/internal/core"
	"github.com/vovakirdan/tui-clock/internal/platform/tui"
)

var (
	flagAt     string
	flagWidth  int
	flagHeight int
	flagColor  bool
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print a single clock frame",
	Long: `Render one frame and write it to stdout. The output is plain text
unless --color is given. Width and height default to the terminal size.

Examples:
  clock snapshot
  clock snapshot --at 10:08:30
  clock snapshot --preset roman --width 61 --height 31 --color`,
	Args: cobra.NoArgs,
	Run:  runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVar(&flagAt, "at", "", "Time to draw as HH:MM:SS (default: now)")
	snapshotCmd.Flags().IntVar(&flagWidth, "width", 0, "Width in cells (0 = terminal width)")
	snapshotCmd.Flags().IntVar(&flagHeight, "height", 0, "Height in cells (0 = terminal height)")
	snapshotCmd.Flags().BoolVar(&flagColor, "color", false, "Emit ANSI colors")
}

func runSnapshot(cmd *cobra.Command, args []string) {
	logger, closeLog := openLogger(flagLogFile)
	defer closeLog()

	at, err := parseAt(flagAt, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	style, err := loadStyle(logger, flagStyleOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	cfg := terminalConfig()
	if flagWidth > 0 {
		cfg.ScreenW = flagWidth
	}
	if flagHeight > 0 {
		cfg.ScreenH = flagHeight
	}

	writeSnapshot(cmd.OutOrStdout(), style, cfg, at, flagColor)
}

// parseAt reads an HH:MM:SS (or HH:MM) time on the date of now, in now's
// location. An empty value returns now.
func parseAt(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return now, nil
	}
	for _, layout := range []string{"15:04:05", "15:04"} {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		y, mo, d := now.Date()
		return time.Date(y, mo, d, t.Hour(), t.Minute(), t.Second(), 0, now.Location()), nil
	}
	return time.Time{}, fmt.Errorf("invalid --at %q, expected HH:MM:SS", value)
}

// writeSnapshot renders the face at the given time into a cfg-sized screen.
func writeSnapshot(w io.Writer, style clockface.StyleConfig, cfg core.RuntimeConfig, at time.Time, color bool) {
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	grid, vp := canvas.Fit(screen.Width(), screen.Height(), style.Extent(), cfg.Aspect)
	frame := clockface.New(style).RenderFrame(clockface.Sample(at), vp)
	canvas.New(grid).Render(screen, frame)

	if color {
		fmt.Fprintln(w, tui.RenderScreen(screen))
		return
	}
	fmt.Fprintln(w, screen.String())
}
