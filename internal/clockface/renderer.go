package clockface

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/spatial/r2"
)

// dialMarks is the number of positions on the dial.
const dialMarks = 12

var romanNumerals = [dialMarks + 1]string{
	"", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI", "XII",
}

// RomanNumeral returns the numeral for dial position i in [1, 12].
func RomanNumeral(i int) (string, bool) {
	if i < 1 || i > dialMarks {
		return "", false
	}
	return romanNumerals[i], true
}

// Angle maps a fractional position within parts divisions to a render angle.
// The parts/4 term moves zero from 3 o'clock to 12 o'clock; with +y pointing
// down, increasing currentPart sweeps clockwise.
func Angle(parts int, currentPart float64) float64 {
	return 2 * math.Pi / float64(parts) * (currentPart - float64(parts/4))
}

// polar returns the point at distance radius from center along angle.
func polar(center r2.Vec, radius, angle float64) r2.Vec {
	return r2.Add(center, r2.Scale(radius, r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)}))
}

// Viewport is the size of the drawing surface in device units.
type Viewport struct {
	Width  float64
	Height float64
}

// Center returns the middle of the viewport.
func (v Viewport) Center() r2.Vec {
	return r2.Vec{X: v.Width / 2, Y: v.Height / 2}
}

// Renderer turns time samples into clock face frames.
type Renderer struct {
	style StyleConfig
}

// New creates a renderer for the given style. A zero RedrawDelay is replaced
// by DefaultRedrawDelay.
func New(style StyleConfig) *Renderer {
	if style.RedrawDelay <= 0 {
		style.RedrawDelay = DefaultRedrawDelay
	}
	return &Renderer{style: style}
}

// Style returns the renderer's style.
func (r *Renderer) Style() StyleConfig {
	return r.style
}

// RenderFrame computes the primitives for one instant, in painter's order:
// background, border, dial marks, hour, minute and second hands, center cap.
func (r *Renderer) RenderFrame(now TimeSample, vp Viewport) Frame {
	s := r.style
	center := vp.Center()

	prims := make([]Primitive, 0, 2+dialMarks+4)

	prims = append(prims, Primitive{
		Kind:   KindFilledCircle,
		Role:   RoleBackground,
		Center: center,
		Radius: s.DialRadius + s.BorderOffset,
		Paint:  Paint{Color: s.BackgroundColor},
	})

	// Stroke is centered on the radius; shift out by half so the outer edge
	// sits at dialRadius+borderOffset+thickness.
	prims = append(prims, Primitive{
		Kind:   KindStrokedCircle,
		Role:   RoleBorder,
		Center: center,
		Radius: s.DialRadius + s.BorderOffset + s.BorderThickness/2,
		Paint:  Paint{Color: s.BorderColor, StrokeWidth: s.BorderThickness},
	})

	prims = r.appendDial(prims, center)

	hands := []struct {
		role  Role
		style HandStyle
		angle float64
	}{
		{RoleHourHand, s.Hands.Hour, Angle(12, now.Hours)},
		{RoleMinuteHand, s.Hands.Minute, Angle(60, now.Minutes)},
		{RoleSecondHand, s.Hands.Second, Angle(60, now.Seconds)},
	}
	for _, h := range hands {
		prims = append(prims, Primitive{
			Kind:  KindLine,
			Role:  h.role,
			From:  center,
			To:    polar(center, s.DialRadius*h.style.Size, h.angle),
			Paint: Paint{Color: h.style.Color, StrokeWidth: h.style.Thickness},
		})
	}

	prims = append(prims, Primitive{
		Kind:   KindFilledCircle,
		Role:   RoleCenterCap,
		Center: center,
		Radius: s.CenterRadius,
		Paint:  Paint{Color: s.CenterColor},
	})

	return Frame{Primitives: prims, Redraw: s.RedrawDelay}
}

func (r *Renderer) appendDial(prims []Primitive, center r2.Vec) []Primitive {
	s := r.style
	textPaint := Paint{Color: s.DialColor, TextSize: s.DialElementSize, Font: s.DialFont}
	// Moves the baseline so the glyph body centers on the mark point.
	baseline := r2.Vec{Y: s.DialElementSize/2 - s.DialFont.Leading(s.DialElementSize)}

	for i := 1; i <= dialMarks; i++ {
		p := polar(center, s.DialRadius, Angle(dialMarks, float64(i)))

		switch s.DialType {
		case DialCircleMarks:
			prims = append(prims, Primitive{
				Kind:   KindFilledCircle,
				Role:   RoleDialMark,
				Center: p,
				Radius: s.DialElementSize,
				Paint:  Paint{Color: s.DialColor},
			})
		case DialRomanNumerals:
			numeral, _ := RomanNumeral(i)
			prims = append(prims, Primitive{
				Kind:   KindText,
				Role:   RoleDialMark,
				Anchor: r2.Add(p, baseline),
				Text:   numeral,
				Paint:  textPaint,
			})
		case DialNumbers:
			prims = append(prims, Primitive{
				Kind:   KindText,
				Role:   RoleDialMark,
				Anchor: r2.Add(p, baseline),
				Text:   strconv.Itoa(i),
				Paint:  textPaint,
			})
		case DialNone:
		}
	}
	return prims
}
