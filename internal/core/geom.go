// Package core provides fundamental types and utilities for the clock platform.
// It contains no external dependencies (especially no Bubble Tea) to keep
// rendering logic pure and testable.
package core

import "math"

// Grid maps continuous device units onto the character grid.
// A cell is Scale units wide and Scale*Aspect units tall.
type Grid struct {
	Scale  float64
	Aspect float64
}

// CellW returns the width of one cell in device units.
func (g Grid) CellW() float64 {
	return g.Scale
}

// CellH returns the height of one cell in device units.
func (g Grid) CellH() float64 {
	return g.Scale * g.Aspect
}

// Valid reports whether the grid can map points (non-zero cell size).
func (g Grid) Valid() bool {
	return g.Scale > 0 && g.Aspect > 0
}

// ToCell returns the cell containing the device point (x, y).
func (g Grid) ToCell(x, y float64) (int, int) {
	if !g.Valid() {
		return 0, 0
	}
	return int(math.Floor(x / g.CellW())), int(math.Floor(y / g.CellH()))
}

// CellCenter returns the device-space center of cell (cx, cy).
func (g Grid) CellCenter(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * g.CellW(), (float64(cy) + 0.5) * g.CellH()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
