package clockface

import (
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/tui-clock/internal/core"
	"github.com/vovakirdan/tui-clock/internal/font"
)

// Kind is the drawing operation of a primitive.
type Kind uint8

const (
	KindFilledCircle Kind = iota + 1
	KindStrokedCircle
	KindLine
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindFilledCircle:
		return "FilledCircle"
	case KindStrokedCircle:
		return "StrokedCircle"
	case KindLine:
		return "Line"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Role names the clock element a primitive draws.
type Role uint8

const (
	RoleBackground Role = iota + 1
	RoleBorder
	RoleDialMark
	RoleHourHand
	RoleMinuteHand
	RoleSecondHand
	RoleCenterCap
)

func (r Role) String() string {
	switch r {
	case RoleBackground:
		return "Background"
	case RoleBorder:
		return "Border"
	case RoleDialMark:
		return "DialMark"
	case RoleHourHand:
		return "HourHand"
	case RoleMinuteHand:
		return "MinuteHand"
	case RoleSecondHand:
		return "SecondHand"
	case RoleCenterCap:
		return "CenterCap"
	default:
		return "Unknown"
	}
}

// Paint carries the style a primitive is drawn with.
type Paint struct {
	Color       core.Color
	StrokeWidth float64
	TextSize    float64
	Font        font.Face
}

// Primitive is one draw call. Which geometry fields are meaningful depends on
// Kind: circles use Center and Radius, lines use From and To, text uses
// Anchor and Text (horizontally centered, Anchor on the baseline).
type Primitive struct {
	Kind Kind
	Role Role

	Center r2.Vec
	Radius float64

	From r2.Vec
	To   r2.Vec

	Anchor r2.Vec
	Text   string

	Paint Paint
}

// Frame is everything the renderer produces for one instant.
type Frame struct {
	Primitives []Primitive

	// Redraw is the longest the host should wait before rendering again.
	Redraw time.Duration
}

// Deadline returns the latest time the next frame should be rendered.
func (f Frame) Deadline(now time.Time) time.Time {
	return now.Add(f.Redraw)
}
