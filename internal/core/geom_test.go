package core

import "testing"

func TestGridToCell(t *testing.T) {
	g := Grid{Scale: 10, Aspect: 2}

	tests := []struct {
		name   string
		x, y   float64
		cx, cy int
	}{
		{"origin", 0, 0, 0, 0},
		{"inside first cell", 9.9, 19.9, 0, 0},
		{"next column", 10, 0, 1, 0},
		{"next row", 0, 20, 0, 1},
		{"far cell", 55, 65, 5, 3},
		{"negative", -1, -1, -1, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cx, cy := g.ToCell(tc.x, tc.y)
			if cx != tc.cx || cy != tc.cy {
				t.Errorf("ToCell(%v, %v) = (%d, %d), expected (%d, %d)", tc.x, tc.y, cx, cy, tc.cx, tc.cy)
			}
		})
	}
}

func TestGridCellCenter(t *testing.T) {
	g := Grid{Scale: 10, Aspect: 2}

	x, y := g.CellCenter(2, 3)
	if x != 25 || y != 70 {
		t.Errorf("CellCenter(2, 3) = (%v, %v), expected (25, 70)", x, y)
	}

	// Round trip through the cell center
	cx, cy := g.ToCell(x, y)
	if cx != 2 || cy != 3 {
		t.Errorf("ToCell(CellCenter(2, 3)) = (%d, %d)", cx, cy)
	}
}

func TestGridInvalid(t *testing.T) {
	g := Grid{}
	if g.Valid() {
		t.Error("zero grid should not be valid")
	}
	cx, cy := g.ToCell(100, 100)
	if cx != 0 || cy != 0 {
		t.Errorf("ToCell on zero grid = (%d, %d), expected (0, 0)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
