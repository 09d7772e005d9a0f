// Package clockface computes the geometry of an analog clock face.
//
// The renderer is a pure function from (time sample, viewport, style) to an
// ordered list of draw primitives plus a redraw delay. It never draws or
// schedules anything itself; the host rasterizes the primitives and honors
// the redraw request.
package clockface

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vovakirdan/tui-clock/internal/core"
	"github.com/vovakirdan/tui-clock/internal/font"
)

// DialType selects how the twelve dial marks are drawn.
type DialType int

const (
	DialNumbers DialType = iota
	DialRomanNumerals
	DialCircleMarks
	DialNone
)

// DialTypes lists every dial type in declaration order.
var DialTypes = []DialType{DialNumbers, DialRomanNumerals, DialCircleMarks, DialNone}

// String returns the config name of the dial type.
func (d DialType) String() string {
	switch d {
	case DialNumbers:
		return "numbers"
	case DialRomanNumerals:
		return "roman"
	case DialCircleMarks:
		return "circles"
	case DialNone:
		return "none"
	default:
		return fmt.Sprintf("DialType(%d)", int(d))
	}
}

// Valid reports whether d is one of the four dial types.
func (d DialType) Valid() bool {
	return d >= DialNumbers && d <= DialNone
}

// ParseDialType resolves a config name. Aliases used by the widget attribute
// set (roman_numbers, circle) are accepted.
func ParseDialType(s string) (DialType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "numbers", "":
		return DialNumbers, nil
	case "roman", "roman_numerals", "roman_numbers":
		return DialRomanNumerals, nil
	case "circles", "circle", "circle_marks":
		return DialCircleMarks, nil
	case "none":
		return DialNone, nil
	}
	return DialNumbers, fmt.Errorf("unknown dial type %q", s)
}

// HandStyle is the visual style of one clock hand.
type HandStyle struct {
	Size      float64 // Length as a fraction of the dial radius, in (0, 1]
	Thickness float64 // Stroke width in device units
	Color     core.Color
}

// Hands holds one style per hand.
type Hands struct {
	Hour   HandStyle
	Minute HandStyle
	Second HandStyle
}

// StyleConfig is an immutable snapshot of every visual parameter.
type StyleConfig struct {
	DialType        DialType
	DialRadius      float64 // Distance from the center to the dial marks
	DialElementSize float64 // Mark circle radius, and dial text size
	DialColor       core.Color
	DialFont        font.Face

	CenterRadius float64
	CenterColor  core.Color

	BorderOffset    float64 // Gap between dial radius and the border
	BorderThickness float64
	BorderColor     core.Color

	BackgroundColor core.Color

	Hands Hands

	// RedrawDelay is the longest the host should wait before the next frame.
	RedrawDelay time.Duration
}

// DefaultRedrawDelay is the cadence requested after each frame.
const DefaultRedrawDelay = 10 * time.Millisecond

// DefaultStyle returns the widget defaults.
func DefaultStyle() StyleConfig {
	return StyleConfig{
		DialType:        DialNumbers,
		DialRadius:      300,
		DialElementSize: 80,
		DialColor:       core.ColorBlack,
		DialFont:        font.Default(),
		CenterRadius:    20,
		CenterColor:     core.ColorBlack,
		BorderOffset:    50,
		BorderThickness: 10,
		BorderColor:     core.ColorBlack,
		BackgroundColor: core.ColorBlack,
		Hands: Hands{
			Hour:   HandStyle{Size: 0.5, Thickness: 10, Color: core.ColorBlack},
			Minute: HandStyle{Size: 0.7, Thickness: 10, Color: core.ColorBlack},
			Second: HandStyle{Size: 0.9, Thickness: 10, Color: core.ColorBlack},
		},
		RedrawDelay: DefaultRedrawDelay,
	}
}

// Extent returns the distance from the center to the outer edge of the border.
func (s StyleConfig) Extent() float64 {
	return s.DialRadius + s.BorderOffset + s.BorderThickness
}

// Validate checks the style invariants.
func (s StyleConfig) Validate() error {
	var errs []error
	if !s.DialType.Valid() {
		errs = append(errs, fmt.Errorf("dial type %d is not a known variant", int(s.DialType)))
	}
	lengths := []struct {
		name string
		v    float64
	}{
		{"dial radius", s.DialRadius},
		{"dial element size", s.DialElementSize},
		{"center radius", s.CenterRadius},
		{"border offset", s.BorderOffset},
		{"border thickness", s.BorderThickness},
		{"hour hand thickness", s.Hands.Hour.Thickness},
		{"minute hand thickness", s.Hands.Minute.Thickness},
		{"second hand thickness", s.Hands.Second.Thickness},
	}
	for _, l := range lengths {
		if !(l.v >= 0) || math.IsInf(l.v, 1) {
			errs = append(errs, fmt.Errorf("%s must be a finite non-negative length, got %v", l.name, l.v))
		}
	}
	ratios := []struct {
		name string
		v    float64
	}{
		{"hour hand size", s.Hands.Hour.Size},
		{"minute hand size", s.Hands.Minute.Size},
		{"second hand size", s.Hands.Second.Size},
	}
	for _, r := range ratios {
		if !(r.v > 0 && r.v <= 1) {
			errs = append(errs, fmt.Errorf("%s must be in (0, 1], got %v", r.name, r.v))
		}
	}
	if s.RedrawDelay < 0 {
		errs = append(errs, fmt.Errorf("redraw delay must not be negative, got %v", s.RedrawDelay))
	}
	return errors.Join(errs...)
}
