package selection

import (
	"math"

	"github.com/aclements/go-moremath/scale"

	"github.com/lixenwraith/steamviz/catalog"
)

// SurfaceRect is a rectangle in the interaction surface's local coordinates
// x grows rightward with price, y grows downward while rating grows upward
type SurfaceRect struct {
	X0, Y0, X1, Y1 float64
}

// Normalize orders both corners
func (s SurfaceRect) Normalize() SurfaceRect {
	return SurfaceRect{
		X0: math.Min(s.X0, s.X1),
		Y0: math.Min(s.Y0, s.Y1),
		X1: math.Max(s.X0, s.X1),
		Y1: math.Max(s.Y0, s.Y1),
	}
}

// Surface is the scatter plot's interaction area: its size in cells and the
// two linear axis scales mapping data onto it
type Surface struct {
	Width, Height int
	Price         scale.Linear
	Rate          scale.Linear
}

// NewSurface builds a surface with the given size and axis domains
func NewSurface(width, height int, priceMin, priceMax, rateMin, rateMax float64) Surface {
	return Surface{
		Width:  width,
		Height: height,
		Price:  scale.Linear{Min: priceMin, Max: priceMax},
		Rate:   scale.Linear{Min: rateMin, Max: rateMax},
	}
}

// Resize returns the surface with new dimensions and the same axes
func (s Surface) Resize(width, height int) Surface {
	s.Width, s.Height = width, height
	return s
}

// Valid reports a drawable surface
func (s Surface) Valid() bool {
	return s.Width > 0 && s.Height > 0 && s.Price.Max != s.Price.Min && s.Rate.Max != s.Rate.Min
}

// priceAt inverts the x mapping
func (s Surface) priceAt(x float64) float64 {
	return s.Price.Min + x/float64(s.Width)*(s.Price.Max-s.Price.Min)
}

// rateAt inverts the y mapping; y = 0 is the top edge, the rate maximum
func (s Surface) rateAt(y float64) float64 {
	return s.Rate.Max - y/float64(s.Height)*(s.Rate.Max-s.Rate.Min)
}

// ToData converts a surface rectangle into a data-space rect
// Degenerate rects and invalid surfaces yield ok=false, meaning "no selection"
// Sides on or past the surface border open up to ±Inf since marks beyond the
// axis domain are clamped onto the border
func (s Surface) ToData(sr SurfaceRect) (Rect, bool) {
	if !s.Valid() {
		return Rect{}, false
	}
	n := sr.Normalize()
	if !(n.X1 > n.X0) || !(n.Y1 > n.Y0) {
		return Rect{}, false
	}

	// top edge maps to the larger rate: axis is inverted, normalize resolves it
	r := Rect{
		PriceMin: s.priceAt(n.X0),
		PriceMax: s.priceAt(n.X1),
		RateMin:  s.rateAt(n.Y0),
		RateMax:  s.rateAt(n.Y1),
	}.Normalize()

	if n.X0 <= 0 {
		r.PriceMin = math.Inf(-1)
	}
	if n.X1 >= float64(s.Width) {
		r.PriceMax = math.Inf(1)
	}
	if n.Y0 <= 0 {
		r.RateMax = math.Inf(1)
	}
	if n.Y1 >= float64(s.Height) {
		r.RateMin = math.Inf(-1)
	}
	return r, true
}

// CellRect spans an anchor cell and the current cell, covering both fully
// A drag that stays within one column or one row has zero width or height
func (s Surface) CellRect(anchorX, anchorY, curX, curY int) SurfaceRect {
	x0, x1 := cellSpan(anchorX, curX)
	y0, y1 := cellSpan(anchorY, curY)
	return SurfaceRect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

func cellSpan(anchor, cur int) (float64, float64) {
	switch {
	case cur > anchor:
		return float64(anchor), float64(cur + 1)
	case cur < anchor:
		return float64(cur), float64(anchor + 1)
	}
	return float64(anchor), float64(anchor)
}

// Position maps a record to continuous surface coordinates, clamped to the surface
func (s Surface) Position(g catalog.GameRecord) (x, y float64) {
	x = clamp01(s.Price.Map(g.Price)) * float64(s.Width)
	y = (1 - clamp01(s.Rate.Map(g.PositiveRate))) * float64(s.Height)
	return x, y
}

// Cell maps a record to the cell its mark is drawn in
func (s Surface) Cell(g catalog.GameRecord) (cx, cy int) {
	x, y := s.Position(g)
	return min(int(x), s.Width-1), min(int(y), s.Height-1)
}

// PriceTicks returns up to n major tick values on the price axis
func (s Surface) PriceTicks(n int) []float64 {
	major, _ := s.Price.Ticks(scale.TickOptions{Max: n})
	return major
}

// RateTicks returns up to n major tick values on the rate axis
func (s Surface) RateTicks(n int) []float64 {
	major, _ := s.Rate.Ticks(scale.TickOptions{Max: n})
	return major
}

// PriceColumn is the cell column of a price value, clamped
func (s Surface) PriceColumn(price float64) int {
	return min(int(clamp01(s.Price.Map(price))*float64(s.Width)), s.Width-1)
}

// RateRow is the cell row of a rate value, clamped
func (s Surface) RateRow(rate float64) int {
	return min(int((1-clamp01(s.Rate.Map(rate)))*float64(s.Height)), s.Height-1)
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
