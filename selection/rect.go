// Package selection owns the price × positive-rate selection rectangle and the
// membership predicate derived from it
package selection

import (
	"fmt"
	"math"

	"github.com/lixenwraith/steamviz/catalog"
)

// Rect is a selection rectangle in data units. Bounds are inclusive
// Infinite bounds are legal and mean the side is open
type Rect struct {
	PriceMin float64 `json:"price_min" yaml:"price_min"`
	PriceMax float64 `json:"price_max" yaml:"price_max"`
	RateMin  float64 `json:"rate_min" yaml:"rate_min"`
	RateMax  float64 `json:"rate_max" yaml:"rate_max"`
}

// Normalize returns the rect with min ≤ max on both axes
func (r Rect) Normalize() Rect {
	return Rect{
		PriceMin: math.Min(r.PriceMin, r.PriceMax),
		PriceMax: math.Max(r.PriceMin, r.PriceMax),
		RateMin:  math.Min(r.RateMin, r.RateMax),
		RateMax:  math.Max(r.RateMin, r.RateMax),
	}
}

// Degenerate reports a zero-area or NaN rect
func (r Rect) Degenerate() bool {
	if math.IsNaN(r.PriceMin) || math.IsNaN(r.PriceMax) || math.IsNaN(r.RateMin) || math.IsNaN(r.RateMax) {
		return true
	}
	return r.PriceMin == r.PriceMax || r.RateMin == r.RateMax
}

// Contains is the membership predicate. Expects a normalized rect
func (r Rect) Contains(g catalog.GameRecord) bool {
	return r.PriceMin <= g.Price && g.Price <= r.PriceMax &&
		r.RateMin <= g.PositiveRate && g.PositiveRate <= r.RateMax
}

func (r Rect) String() string {
	return fmt.Sprintf("price[%s..%s] rate[%s..%s]",
		formatBound(r.PriceMin, "$%.2f"), formatBound(r.PriceMax, "$%.2f"),
		formatBound(r.RateMin*100, "%.0f%%"), formatBound(r.RateMax*100, "%.0f%%"))
}

func formatBound(v float64, format string) string {
	switch {
	case math.IsInf(v, 1):
		return "+inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return fmt.Sprintf(format, v)
}
