package renderers

import (
	"fmt"

	"github.com/aclements/go-moremath/scale"

	"github.com/lixenwraith/steamviz/catalog"
	"github.com/lixenwraith/steamviz/render"
)

const (
	scatterTitle = "↑ POSITIVE RATING (%)"
	priceLabel   = "PRICE (USD) →"
)

// ScatterRenderer draws every catalog record as a mark at (price, rate)
// Records outside the selection are dimmed, never hidden
type ScatterRenderer struct {
	catalog *catalog.Catalog
	palette render.Palette
	volume  scale.Linear
}

// NewScatterRenderer creates the scatter view; ratingsMax tops the mark size scale
func NewScatterRenderer(c *catalog.Catalog, p render.Palette, ratingsMax float64) *ScatterRenderer {
	return &ScatterRenderer{
		catalog: c,
		palette: p,
		volume:  scale.Linear{Min: 0, Max: ratingsMax},
	}
}

// Render implements SystemRenderer
func (s *ScatterRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	l := ctx.Layout
	if l.TooSmall {
		return
	}
	area := l.Scatter
	surface := ctx.View.Surface.Resize(area.W, area.H)

	axis := render.RgbAxis.Style()
	label := render.RgbMuted.Style()

	buf.SetString(l.ScatterPanel.X+1, l.ScatterPanel.Y, scatterTitle, label)

	// axes
	for y := area.Y; y < area.Y+area.H; y++ {
		buf.Set(area.X-1, y, '│', axis)
	}
	axisY := area.Y + area.H
	for x := area.X; x < area.X+area.W; x++ {
		buf.Set(x, axisY, '─', axis)
	}
	buf.Set(area.X-1, axisY, '└', axis)

	for _, v := range surface.RateTicks(6) {
		y := area.Y + surface.RateRow(v)
		buf.SetStringRight(area.X-1, y, fmt.Sprintf("%.0f%%", v*100), label)
		buf.Set(area.X-1, y, '┤', axis)
	}
	nextFree := area.X
	for _, v := range surface.PriceTicks(8) {
		x := area.X + surface.PriceColumn(v)
		buf.Set(x, axisY, '┴', axis)
		text := fmt.Sprintf("$%.0f", v)
		if x >= nextFree {
			nextFree = x + buf.SetString(x, axisY+1, text, label) + 1
		}
	}
	buf.SetStringRight(area.X+area.W, axisY+1, priceLabel, label)

	if !surface.Valid() {
		return
	}

	records := s.catalog.Records()
	grid := buildCellGrid(records, ctx.View, surface)
	bg := render.RgbBackground
	for cy := range area.H {
		for cx := range area.W {
			i := grid.at(cx, cy)
			if i < 0 {
				continue
			}
			r := records[i]
			color := s.palette.Primary(r)
			if !selected(ctx.View, r) {
				color = bg.Blend(color, 0.2)
			}
			buf.Set(area.X+cx, area.Y+cy, markGlyph(markRadius(r.TotalRatings, s.volume)), color.Style())
		}
	}
}
