package render

import (
	"fmt"

	"github.com/lixenwraith/steamviz/catalog"
)

// Palette maps genre tags to mark colors; tags without an entry use Other
type Palette struct {
	colors map[string]RGB
	other  RGB
}

// NewPalette parses a tag → hex color map. The Other entry is required
func NewPalette(hex map[string]string) (Palette, error) {
	p := Palette{colors: make(map[string]RGB, len(hex))}
	for tag, h := range hex {
		c, err := ParseHex(h)
		if err != nil {
			return Palette{}, fmt.Errorf("palette %s: %w", tag, err)
		}
		p.colors[tag] = c
	}
	other, ok := p.colors[string(catalog.CategoryOther)]
	if !ok {
		return Palette{}, fmt.Errorf("palette: missing %s color", catalog.CategoryOther)
	}
	p.other = other
	return p, nil
}

// Tag returns the color of a single tag
func (p Palette) Tag(tag string) RGB {
	if c, ok := p.colors[tag]; ok && tag != string(catalog.CategoryOther) {
		return c
	}
	return p.other
}

// Primary returns the color of the first genre that has a palette entry
func (p Palette) Primary(r catalog.GameRecord) RGB {
	tag, _ := p.PrimaryTag(r)
	return p.Tag(tag)
}

// PrimaryTag returns the genre that decides a record's color
// ok is false when no genre has an entry and the Other color applies
func (p Palette) PrimaryTag(r catalog.GameRecord) (string, bool) {
	for _, g := range r.Genres {
		if _, ok := p.colors[g]; ok && g != string(catalog.CategoryOther) {
			return g, true
		}
	}
	return string(catalog.CategoryOther), false
}
