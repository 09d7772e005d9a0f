// Package canvas rasterizes clock face primitives onto a character screen.
//
// It plays the part of the drawing surface: FilledCircle paints cell
// backgrounds, StrokedCircle and Line place glyphs in the paint color, and
// Text writes runes centered on the anchor. Later primitives overwrite
// earlier ones (painter's order).
package canvas

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/tui-clock/internal/clockface"
	"github.com/vovakirdan/tui-clock/internal/core"
)

const (
	ringGlyph = '█'
	dotGlyph  = '•'
)

// Line glyphs indexed by direction: horizontal, vertical, falling, rising.
var (
	thinLine  = [4]rune{'-', '|', '\\', '/'}
	heavyLine = [4]rune{'━', '┃', '╲', '╱'}
)

// tan(22.5°): below this slope a line reads as horizontal or vertical.
const straightSlope = 0.41421356

// Canvas draws frames using a fixed device-to-cell mapping.
type Canvas struct {
	grid core.Grid
}

// New creates a canvas for the given grid.
func New(grid core.Grid) *Canvas {
	return &Canvas{grid: grid}
}

// Grid returns the canvas mapping.
func (c *Canvas) Grid() core.Grid {
	return c.grid
}

// Fit returns the grid that makes a disc of radius extent fit a cols x rows
// terminal with a one-cell margin, and the viewport that grid spans.
// An empty terminal yields an empty viewport.
func Fit(cols, rows int, extent, aspect float64) (core.Grid, clockface.Viewport) {
	if aspect <= 0 {
		aspect = core.DefaultConfig().Aspect
	}
	if cols <= 0 || rows <= 0 {
		return core.Grid{Scale: 1, Aspect: aspect}, clockface.Viewport{}
	}

	scale := 1.0
	if extent > 0 {
		usableW := math.Max(float64(cols-2), 1)
		usableH := math.Max(float64(rows-2), 1)
		scale = math.Max(2*extent/usableW, 2*extent/(usableH*aspect))
	}

	g := core.Grid{Scale: scale, Aspect: aspect}
	return g, clockface.Viewport{
		Width:  float64(cols) * g.CellW(),
		Height: float64(rows) * g.CellH(),
	}
}

// Render clears dst and draws every primitive of the frame in order.
func (c *Canvas) Render(dst *core.Screen, f clockface.Frame) {
	dst.Clear()
	for _, p := range f.Primitives {
		c.Draw(dst, p)
	}
}

// Draw rasterizes a single primitive.
func (c *Canvas) Draw(dst *core.Screen, p clockface.Primitive) {
	if dst.Width() == 0 || dst.Height() == 0 || !c.grid.Valid() {
		return
	}

	switch p.Kind {
	case clockface.KindFilledCircle:
		c.fillCircle(dst, p.Center, p.Radius, p.Paint.Color)
	case clockface.KindStrokedCircle:
		c.strokeCircle(dst, p.Center, p.Radius, p.Paint.StrokeWidth, p.Paint.Color)
	case clockface.KindLine:
		c.line(dst, p.From, p.To, p.Paint)
	case clockface.KindText:
		c.text(dst, p)
	}
}

// bounds returns the on-screen cell range covering center ± reach, padded by
// one cell so shapes touching a cell edge are not cut off.
func (c *Canvas) bounds(dst *core.Screen, center r2.Vec, reach float64) (x0, y0, x1, y1 int) {
	x0, y0 = c.grid.ToCell(center.X-reach, center.Y-reach)
	x1, y1 = c.grid.ToCell(center.X+reach, center.Y+reach)
	x0 = core.Clamp(x0-1, 0, dst.Width()-1)
	x1 = core.Clamp(x1+1, 0, dst.Width()-1)
	y0 = core.Clamp(y0-1, 0, dst.Height()-1)
	y1 = core.Clamp(y1+1, 0, dst.Height()-1)
	return x0, y0, x1, y1
}

func (c *Canvas) fillCircle(dst *core.Screen, center r2.Vec, radius float64, color core.Color) {
	radius = math.Max(radius, 0)

	// The cell holding the center is always painted, so sub-cell circles
	// stay visible.
	cx, cy := c.grid.ToCell(center.X, center.Y)
	dst.Paint(cx, cy, color)

	x0, y0, x1, y1 := c.bounds(dst, center, radius)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			px, py := c.grid.CellCenter(x, y)
			if r2.Norm(r2.Sub(r2.Vec{X: px, Y: py}, center)) <= radius {
				dst.Paint(x, y, color)
			}
		}
	}
}

func (c *Canvas) strokeCircle(dst *core.Screen, center r2.Vec, radius, width float64, color core.Color) {
	radius = math.Max(radius, 0)
	half := math.Max(width, 0) / 2
	inner, outer := radius-half, radius+half

	x0, y0, x1, y1 := c.bounds(dst, center, outer)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			near, far := c.cellDistances(x, y, center)
			if near <= outer && far >= inner {
				dst.Stroke(x, y, ringGlyph, color)
			}
		}
	}
}

// cellDistances returns the nearest and farthest distance from p to cell (x, y).
func (c *Canvas) cellDistances(x, y int, p r2.Vec) (near, far float64) {
	left, top := float64(x)*c.grid.CellW(), float64(y)*c.grid.CellH()
	right, bottom := left+c.grid.CellW(), top+c.grid.CellH()

	nearest := r2.Vec{X: core.ClampF(p.X, left, right), Y: core.ClampF(p.Y, top, bottom)}
	near = r2.Norm(r2.Sub(nearest, p))

	for _, corner := range []r2.Vec{{X: left, Y: top}, {X: right, Y: top}, {X: left, Y: bottom}, {X: right, Y: bottom}} {
		far = math.Max(far, r2.Norm(r2.Sub(corner, p)))
	}
	return near, far
}

func (c *Canvas) line(dst *core.Screen, from, to r2.Vec, paint clockface.Paint) {
	d := r2.Sub(to, from)
	dxc, dyc := d.X/c.grid.CellW(), d.Y/c.grid.CellH()

	glyph := lineGlyph(dxc, dyc, paint.StrokeWidth >= c.grid.CellW()/2)

	steps := int(math.Ceil(2*math.Max(math.Abs(dxc), math.Abs(dyc)))) + 1
	for i := 0; i <= steps; i++ {
		p := r2.Add(from, r2.Scale(float64(i)/float64(steps), d))
		x, y := c.grid.ToCell(p.X, p.Y)
		dst.Stroke(x, y, glyph, paint.Color)
	}
}

// lineGlyph picks the rune that best matches a direction in cell space.
func lineGlyph(dxc, dyc float64, heavy bool) rune {
	set := thinLine
	if heavy {
		set = heavyLine
	}

	ax, ay := math.Abs(dxc), math.Abs(dyc)
	switch {
	case ax == 0 && ay == 0:
		return dotGlyph
	case ay <= straightSlope*ax:
		return set[0]
	case ax <= straightSlope*ay:
		return set[1]
	case dxc*dyc > 0:
		return set[2]
	default:
		return set[3]
	}
}

func (c *Canvas) text(dst *core.Screen, p clockface.Primitive) {
	glyphs := []rune(p.Paint.Font.Render(p.Text))
	if len(glyphs) == 0 {
		return
	}

	// Anchor is the baseline; the glyph row sits half a text size above it.
	cx, cy := c.grid.ToCell(p.Anchor.X, p.Anchor.Y-p.Paint.TextSize/2)
	x0 := cx - len(glyphs)/2
	for i, r := range glyphs {
		dst.Stroke(x0+i, cy, r, p.Paint.Color)
	}
}
