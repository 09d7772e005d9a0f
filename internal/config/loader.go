package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Config sources reported by Load.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Base returns the embedded default style, or Default() if it cannot be parsed.
func Base() ClockConfig {
	cfg := Default()
	if err := yaml.Unmarshal(defaultClockYAML, &cfg); err != nil {
		return Default()
	}
	return cfg
}

// Parse decodes a YAML style on top of the embedded default, so a file only
// needs the keys it changes.
func Parse(data []byte) (ClockConfig, error) {
	cfg := Base()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Load loads the clock style and reports where it came from.
// Search order: customPath -> ~/.clock/configs/clock.yaml -> ./configs/clock.yaml -> embedded default
// A broken custom file is an error. A broken file found by the search is
// logged and skipped. A nil logger discards the warning.
func Load(customPath string, logger *log.Logger) (ClockConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ClockConfig{}, customPath, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return ClockConfig{}, customPath, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	candidates := []string{filepath.Join("configs", "clock.yaml")}
	if userCfgPath := userConfigPath("clock.yaml"); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				logger.Warn("skipping unreadable config", "path", path, "error", err)
			}
			continue
		}
		cfg, err := Parse(data)
		if err != nil {
			logger.Warn("skipping malformed config", "path", path, "error", err)
			continue
		}
		return cfg, path, nil
	}

	var cfg ClockConfig
	if err := yaml.Unmarshal(defaultClockYAML, &cfg); err != nil {
		return Default(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".clock", "configs", filename)
}

// UserFontDir returns ~/.clock/fonts, or empty if home is unavailable.
func UserFontDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".clock", "fonts")
}
