// Package presets registers the built-in clock style presets.
// Import it for side effects.
package presets

import (
	"github.com/vovakirdan/tui-clock/internal/config"
	"github.com/vovakirdan/tui-clock/internal/registry"
)

// dialPreset switches the dial type and, optionally, the dial font.
type dialPreset struct {
	id    string
	title string
	dial  string
	font  string
}

func (p dialPreset) ID() string    { return p.id }
func (p dialPreset) Title() string { return p.title }

func (p dialPreset) Apply(cfg *config.ClockConfig) {
	cfg.Dial.Type = p.dial
	if p.font != "" {
		cfg.Dial.Font = p.font
	}
}

// minimalPreset drops the dial and slims the hands.
type minimalPreset struct{}

func (minimalPreset) ID() string    { return "minimal" }
func (minimalPreset) Title() string { return "No dial marks, thin hands" }

func (minimalPreset) Apply(cfg *config.ClockConfig) {
	cfg.Dial.Type = "none"
	cfg.Hands.Hour.Thickness = 4
	cfg.Hands.Minute.Thickness = 4
	cfg.Hands.Second.Thickness = 2
}

func init() {
	for _, p := range []dialPreset{
		{id: "classic", title: "Arabic numerals", dial: "numbers"},
		{id: "roman", title: "Roman numerals", dial: "roman"},
		{id: "dots", title: "Circle marks", dial: "circles"},
		{id: "circled", title: "Circled numerals", dial: "numbers", font: "circled"},
	} {
		p := p
		registry.Register(p.id, func() registry.Preset { return p })
	}
	registry.Register("minimal", func() registry.Preset { return minimalPreset{} })
}
