package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-clock/internal/canvas"
	"github.com/vovakirdan/tui-clock/internal/clockface"
	"github.com/vovakirdan/tui-clock/internal/core"
)

// Model is the Bubble Tea model that keeps the clock face on screen.
type Model struct {
	renderer      *clockface.Renderer
	clock         clockface.Clock
	screen        *core.Screen
	config        core.RuntimeConfig
	logger        *log.Logger
	keys          KeyMap
	help          help.Model
	screenshotDir string
	frame         clockface.Frame
	frames        int
	showHelp      bool
	quitting      bool
}

// NewModel creates a clock model. A nil clock reads system time and a nil
// logger discards output.
func NewModel(style clockface.StyleConfig, clock clockface.Clock, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if clock == nil {
		clock = clockface.SystemClock{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Aspect <= 0 {
		cfg.Aspect = core.DefaultConfig().Aspect
	}

	dir := ""
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".clock", "screenshots")
	}

	return Model{
		renderer:      clockface.New(style),
		clock:         clock,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:        cfg,
		logger:        logger,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		screenshotDir: dir,
	}
}

// Init draws the first frame immediately.
func (m Model) Init() tea.Cmd {
	clock := m.clock
	return func() tea.Msg {
		return FrameMsg(clock.Now())
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		m.draw()
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.draw()
	return m, nil
}

// handleFrame redraws the face and schedules the next frame.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	m.draw()
	m.frames++
	return m, frameCmd(m.frame.Redraw)
}

// clockRows is the number of terminal rows left for the face.
func (m *Model) clockRows() int {
	rows := m.config.ScreenH
	if m.showHelp {
		rows -= lipgloss.Height(m.help.View(m.keys))
	}
	return core.Max(rows, 0)
}

// draw samples the clock and rasterizes a fresh frame into the screen.
func (m *Model) draw() {
	m.screen.Resize(m.config.ScreenW, m.clockRows())
	style := m.renderer.Style()
	grid, vp := canvas.Fit(m.screen.Width(), m.screen.Height(), style.Extent(), m.config.Aspect)
	m.frame = m.renderer.RenderFrame(clockface.Sample(m.clock.Now()), vp)
	canvas.New(grid).Render(m.screen, m.frame)
}

// saveScreenshot writes the current screen as plain text and returns the path.
func (m *Model) saveScreenshot() (string, error) {
	if m.screenshotDir == "" {
		return "", fmt.Errorf("no screenshot directory")
	}
	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", err
	}

	timestamp := m.clock.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("clock_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// Frame returns the most recent frame.
func (m Model) Frame() clockface.Frame {
	return m.frame
}

// Frames returns how many scheduled frames have been drawn.
func (m Model) Frames() int {
	return m.frames
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	view := RenderScreen(m.screen)
	if m.showHelp {
		if m.screen.Height() == 0 {
			return m.help.View(m.keys)
		}
		return view + "\n" + m.help.View(m.keys)
	}
	return view
}

// Run starts the Bubble Tea program with the given style.
func Run(style clockface.StyleConfig, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(style, clockface.SystemClock{}, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
