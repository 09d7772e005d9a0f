package core

// RuntimeConfig contains the terminal parameters the host hands to the clock.
type RuntimeConfig struct {
	ScreenW int     // Screen width in characters
	ScreenH int     // Screen height in characters
	Aspect  float64 // Cell height divided by cell width (terminal cells are ~2:1)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Aspect:  2,
	}
}
