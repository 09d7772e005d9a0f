// Package tui provides the Bubble Tea host for the clock face.
// It owns the redraw loop, terminal sizing, and key handling.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent when the next clock frame is due.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that fires a FrameMsg after delay.
func frameCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
