// Package renderers holds the dashboard views drawn by the render orchestrator
package renderers

import (
	"math"

	"github.com/aclements/go-moremath/scale"

	"github.com/lixenwraith/steamviz/catalog"
	"github.com/lixenwraith/steamviz/dashboard"
	"github.com/lixenwraith/steamviz/selection"
)

// Mark glyphs by increasing radius
const (
	glyphSmall  = '·'
	glyphMedium = '•'
	glyphLarge  = '●'
)

// Mark radius range in pixels of the SVG scale, mapped to glyph weight
const (
	radiusMin = 2.0
	radiusMax = 12.0
)

// markRadius maps rating volume through a sqrt scale onto [radiusMin, radiusMax]
func markRadius(ratings int, volume scale.Linear) float64 {
	t := volume.Map(float64(ratings))
	t = math.Max(0, math.Min(1, t))
	return radiusMin + (radiusMax-radiusMin)*math.Sqrt(t)
}

func markGlyph(radius float64) rune {
	switch {
	case radius < 4.5:
		return glyphSmall
	case radius < 8:
		return glyphMedium
	}
	return glyphLarge
}

// selected reports whether a record is inside the view's selection
// Everything counts as selected when nothing is
func selected(v dashboard.View, r catalog.GameRecord) bool {
	return !v.HasSelection || v.Selection.Contains(r)
}

// cellGrid keeps, per surface cell, the record drawn there: selected records
// win over dimmed ones, then the larger rating volume
type cellGrid struct {
	w, h  int
	index []int
}

func buildCellGrid(records []catalog.GameRecord, v dashboard.View, s selection.Surface) cellGrid {
	g := cellGrid{w: s.Width, h: s.Height}
	if !s.Valid() {
		return g
	}
	g.index = make([]int, s.Width*s.Height)
	for i := range g.index {
		g.index[i] = -1
	}
	for i, r := range records {
		cx, cy := s.Cell(r)
		slot := &g.index[cy*s.Width+cx]
		if *slot < 0 || better(r, records[*slot], v) {
			*slot = i
		}
	}
	return g
}

func better(a, b catalog.GameRecord, v dashboard.View) bool {
	sa, sb := selected(v, a), selected(v, b)
	if sa != sb {
		return sa
	}
	return a.TotalRatings > b.TotalRatings
}

// at returns the record index drawn in a cell, or -1
func (g cellGrid) at(cx, cy int) int {
	if cx < 0 || cy < 0 || cx >= g.w || cy >= g.h || g.index == nil {
		return -1
	}
	return g.index[cy*g.w+cx]
}
