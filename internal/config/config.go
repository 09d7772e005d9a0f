// Package config provides YAML-based clock style loading for the terminal
// clock. It validates and converts the file form into clockface.StyleConfig.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-clock/internal/clockface"
	"github.com/vovakirdan/tui-clock/internal/core"
	"github.com/vovakirdan/tui-clock/internal/font"
)

// ErrInvalidStyle wraps every conversion or validation failure.
var ErrInvalidStyle = errors.New("invalid clock style")

// ClockConfig is the file form of a clock style.
type ClockConfig struct {
	Dial        DialConfig    `yaml:"dial"`
	Center      CenterConfig  `yaml:"center"`
	Border      BorderConfig  `yaml:"border"`
	Hands       HandsConfig   `yaml:"hands"`
	Background  string        `yaml:"background"`
	RedrawDelay time.Duration `yaml:"redraw_delay"`
}

// DialConfig defines the dial marks.
type DialConfig struct {
	Type        string  `yaml:"type"` // numbers, roman, circles, none
	ElementSize float64 `yaml:"element_size"`
	Radius      float64 `yaml:"radius"`
	Color       string  `yaml:"color"`
	Font        string  `yaml:"font"` // Built-in face name or asset path
}

// CenterConfig defines the center cap.
type CenterConfig struct {
	Radius float64 `yaml:"radius"`
	Color  string  `yaml:"color"`
}

// BorderConfig defines the border ring.
type BorderConfig struct {
	Offset    float64 `yaml:"offset"`
	Thickness float64 `yaml:"thickness"`
	Color     string  `yaml:"color"`
}

// HandConfig defines one hand.
type HandConfig struct {
	Size      float64 `yaml:"size"` // Fraction of the dial radius
	Thickness float64 `yaml:"thickness"`
	Color     string  `yaml:"color"`
}

// HandsConfig defines the three hands.
type HandsConfig struct {
	Hour   HandConfig `yaml:"hour"`
	Minute HandConfig `yaml:"minute"`
	Second HandConfig `yaml:"second"`
}

// Style converts the file form into a validated StyleConfig. The dial font is
// resolved through fonts, which falls back to the default face on failure;
// a nil loader always yields the default face.
func (c ClockConfig) Style(fonts *font.Loader) (clockface.StyleConfig, error) {
	var errs []error
	color := func(field, name string) core.Color {
		col, err := core.ParseColor(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
		return col
	}
	hand := func(name string, h HandConfig) clockface.HandStyle {
		return clockface.HandStyle{
			Size:      h.Size,
			Thickness: h.Thickness,
			Color:     color("hands."+name+".color", h.Color),
		}
	}

	dial, err := clockface.ParseDialType(c.Dial.Type)
	if err != nil {
		errs = append(errs, fmt.Errorf("dial.type: %w", err))
	}

	face := font.Default()
	if fonts != nil {
		face = fonts.Load(c.Dial.Font)
	}

	style := clockface.StyleConfig{
		DialType:        dial,
		DialRadius:      c.Dial.Radius,
		DialElementSize: c.Dial.ElementSize,
		DialColor:       color("dial.color", c.Dial.Color),
		DialFont:        face,
		CenterRadius:    c.Center.Radius,
		CenterColor:     color("center.color", c.Center.Color),
		BorderOffset:    c.Border.Offset,
		BorderThickness: c.Border.Thickness,
		BorderColor:     color("border.color", c.Border.Color),
		BackgroundColor: color("background", c.Background),
		Hands: clockface.Hands{
			Hour:   hand("hour", c.Hands.Hour),
			Minute: hand("minute", c.Hands.Minute),
			Second: hand("second", c.Hands.Second),
		},
		RedrawDelay: c.RedrawDelay,
	}
	if style.RedrawDelay == 0 {
		style.RedrawDelay = clockface.DefaultRedrawDelay
	}

	if len(errs) == 0 {
		if err := style.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return clockface.StyleConfig{}, fmt.Errorf("%w: %w", ErrInvalidStyle, errors.Join(errs...))
	}
	return style, nil
}
