package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/clock.yaml
var defaultClockYAML []byte

// Default returns the widget's built-in style: numbers dial, black on black.
// Used when even the embedded YAML cannot be parsed.
func Default() ClockConfig {
	return ClockConfig{
		Dial: DialConfig{
			Type:        "numbers",
			ElementSize: 80,
			Radius:      300,
			Color:       "black",
		},
		Center: CenterConfig{
			Radius: 20,
			Color:  "black",
		},
		Border: BorderConfig{
			Offset:    50,
			Thickness: 10,
			Color:     "black",
		},
		Hands: HandsConfig{
			Hour:   HandConfig{Size: 0.5, Thickness: 10, Color: "black"},
			Minute: HandConfig{Size: 0.7, Thickness: 10, Color: "black"},
			Second: HandConfig{Size: 0.9, Thickness: 10, Color: "black"},
		},
		Background:  "black",
		RedrawDelay: 10 * time.Millisecond,
	}
}
