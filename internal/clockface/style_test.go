package clockface

import (
	"math"
	"testing"
	"time"
)

func TestDefaultStyleIsValid(t *testing.T) {
	if err := DefaultStyle().Validate(); err != nil {
		t.Fatalf("DefaultStyle().Validate() = %v", err)
	}
}

func TestDefaultStyleExtent(t *testing.T) {
	if got := DefaultStyle().Extent(); got != 360 {
		t.Errorf("Extent() = %v, expected 360", got)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*StyleConfig)
	}{
		{"negative dial radius", func(s *StyleConfig) { s.DialRadius = -1 }},
		{"negative center radius", func(s *StyleConfig) { s.CenterRadius = -0.5 }},
		{"negative border thickness", func(s *StyleConfig) { s.BorderThickness = -10 }},
		{"zero hour ratio", func(s *StyleConfig) { s.Hands.Hour.Size = 0 }},
		{"minute ratio above one", func(s *StyleConfig) { s.Hands.Minute.Size = 1.2 }},
		{"negative second thickness", func(s *StyleConfig) { s.Hands.Second.Thickness = -1 }},
		{"unknown dial type", func(s *StyleConfig) { s.DialType = DialType(7) }},
		{"negative redraw delay", func(s *StyleConfig) { s.RedrawDelay = -time.Second }},
		{"NaN dial radius", func(s *StyleConfig) { s.DialRadius = math.NaN() }},
		{"infinite border offset", func(s *StyleConfig) { s.BorderOffset = math.Inf(1) }},
		{"NaN hour ratio", func(s *StyleConfig) { s.Hands.Hour.Size = math.NaN() }},
		{"NaN second thickness", func(s *StyleConfig) { s.Hands.Second.Thickness = math.NaN() }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultStyle()
			tc.mutate(&s)
			if err := s.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidateAcceptsFullLengthHands(t *testing.T) {
	s := DefaultStyle()
	s.Hands.Second.Size = 1
	s.DialRadius = 0
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}

func TestParseDialType(t *testing.T) {
	tests := []struct {
		in       string
		expected DialType
	}{
		{"numbers", DialNumbers},
		{"", DialNumbers},
		{"roman", DialRomanNumerals},
		{"ROMAN_NUMBERS", DialRomanNumerals},
		{"circles", DialCircleMarks},
		{"circle", DialCircleMarks},
		{"none", DialNone},
	}

	for _, tc := range tests {
		got, err := ParseDialType(tc.in)
		if err != nil {
			t.Errorf("ParseDialType(%q) error: %v", tc.in, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseDialType(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}

	if _, err := ParseDialType("sundial"); err == nil {
		t.Error("expected error for unknown dial type")
	}
}

func TestDialTypeStringRoundTrip(t *testing.T) {
	for _, d := range DialTypes {
		got, err := ParseDialType(d.String())
		if err != nil || got != d {
			t.Errorf("round trip of %v gave %v, %v", d, got, err)
		}
	}
}
