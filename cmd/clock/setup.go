package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-clock/internal/clockface"
	"github.com/vovakirdan/tui-clock/internal/config"
	"github.com/vovakirdan/tui-clock/internal/core"
	"github.com/vovakirdan/tui-clock/internal/font"
	"github.com/vovakirdan/tui-clock/internal/registry"
)

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// openLogger opens the log file. The TUI owns the terminal, so when the file
// cannot be opened logging is discarded rather than sent to stderr.
func openLogger(path string) (*log.Logger, func()) {
	discard := log.New(io.Discard)
	if path == "" {
		return discard, func() {}
	}

	path, err := expandHome(path)
	if err != nil {
		return discard, func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return discard, func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "clock",
	})
	//nolint:errcheck // Best-effort close on exit
	return logger, func() { f.Close() }
}

// styleOptions are the flag values that shape the clock style.
type styleOptions struct {
	ConfigPath string
	Preset     string
	FontDir    string
	Delay      time.Duration // Zero keeps the configured delay
}

// flagStyleOptions collects styleOptions from the global flags.
func flagStyleOptions() styleOptions {
	return styleOptions{
		ConfigPath: flagConfig,
		Preset:     flagPreset,
		FontDir:    flagFontDir,
		Delay:      flagDelay,
	}
}

// loadStyle resolves the clock style from config file, preset, and flags.
func loadStyle(logger *log.Logger, opts styleOptions) (clockface.StyleConfig, error) {
	cfg, source, err := config.Load(opts.ConfigPath, logger)
	if err != nil {
		return clockface.StyleConfig{}, err
	}
	logger.Info("config loaded", "source", source)

	if opts.Preset != "" {
		p, err := registry.Create(opts.Preset)
		if err != nil {
			return clockface.StyleConfig{}, fmt.Errorf("%w (run 'clock presets' to see available presets)", err)
		}
		p.Apply(&cfg)
		logger.Info("preset applied", "preset", p.ID())
	}
	if opts.Delay != 0 {
		cfg.RedrawDelay = opts.Delay
	}

	var dirs []string
	if opts.FontDir != "" {
		dir, err := expandHome(opts.FontDir)
		if err != nil {
			return clockface.StyleConfig{}, err
		}
		dirs = append(dirs, dir)
	}
	if dir := config.UserFontDir(); dir != "" {
		dirs = append(dirs, dir)
	}

	return cfg.Style(font.NewLoader(logger, dirs...))
}

// terminalConfig returns the runtime config for the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}
