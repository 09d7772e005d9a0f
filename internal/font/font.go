// Package font provides the font handles used for dial text.
//
// A terminal cannot switch typefaces, so a Face describes what a font changes
// on a character grid: the leading metric used to center glyphs on their dial
// mark, and glyph substitutions (for example circled digits).
package font

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultName is the name of the fallback face.
const DefaultName = "default"

// ErrFontNotFound is returned when a font reference resolves to no asset.
var ErrFontNotFound = errors.New("font not found")

//go:embed faces/*.yaml
var builtinFS embed.FS

// Face is an opaque font handle handed to the clock face renderer.
type Face struct {
	Name string `yaml:"name"`

	// LeadingRatio is the font leading as a fraction of the text size.
	LeadingRatio float64 `yaml:"leading"`

	// Glyphs maps dial text to replacement text. A whole-string match wins,
	// otherwise substitution is applied rune by rune.
	Glyphs map[string]string `yaml:"glyphs"`
}

// Default returns the face used when no font is configured or loading fails.
func Default() Face {
	return Face{Name: DefaultName}
}

// Leading returns the leading metric for the given text size.
func (f Face) Leading(size float64) float64 {
	return f.LeadingRatio * size
}

// Render applies the face's glyph substitutions to text.
func (f Face) Render(text string) string {
	if len(f.Glyphs) == 0 {
		return text
	}
	if g, ok := f.Glyphs[text]; ok {
		return g
	}
	var sb strings.Builder
	for _, r := range text {
		if g, ok := f.Glyphs[string(r)]; ok {
			sb.WriteString(g)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Parse decodes a YAML font asset.
func Parse(data []byte) (Face, error) {
	var f Face
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Face{}, fmt.Errorf("parse font asset: %w", err)
	}
	if f.Name == "" {
		return Face{}, errors.New("parse font asset: missing name")
	}
	if f.LeadingRatio < 0 {
		return Face{}, fmt.Errorf("parse font asset %q: negative leading", f.Name)
	}
	return f, nil
}

// Builtin returns an embedded face by name.
func Builtin(name string) (Face, bool) {
	data, err := builtinFS.ReadFile(path.Join("faces", name+".yaml"))
	if err != nil {
		return Face{}, false
	}
	f, err := Parse(data)
	if err != nil {
		return Face{}, false
	}
	return f, true
}

// BuiltinNames lists the embedded faces, sorted.
func BuiltinNames() []string {
	entries, err := builtinFS.ReadDir("faces")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}
