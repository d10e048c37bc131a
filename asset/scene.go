package asset

import (
	"fmt"
	"unicode/utf8"
)

// Scene is the visual description of one entity kind
type Scene struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
	Label string `yaml:"label"`
	// Headings holds 8 glyphs for the compass octants N, NE, E, SE, S, SW, W, NW
	// Empty for kinds drawn the same in every direction
	Headings string `yaml:"headings"`

	glyph    rune
	headings []rune
}

func (s *Scene) validate(name string) error {
	if s.Name == "" {
		s.Name = name
	}
	if s.Name != name {
		return fmt.Errorf("scene declares name %q", s.Name)
	}
	if utf8.RuneCountInString(s.Glyph) != 1 {
		return fmt.Errorf("glyph %q must be a single character", s.Glyph)
	}
	s.glyph, _ = utf8.DecodeRuneInString(s.Glyph)

	if s.Headings != "" {
		s.headings = []rune(s.Headings)
		if len(s.headings) != 8 {
			return fmt.Errorf("headings %q must hold 8 characters", s.Headings)
		}
	}
	if s.Label == "" {
		s.Label = name
	}
	return nil
}

// Rune returns the base glyph
func (s *Scene) Rune() rune {
	return s.glyph
}

// HeadingRune returns the glyph for compass octant 0..7, falling back to the base glyph
func (s *Scene) HeadingRune(octant int) rune {
	if len(s.headings) != 8 {
		return s.glyph
	}
	return s.headings[((octant%8)+8)%8]
}
