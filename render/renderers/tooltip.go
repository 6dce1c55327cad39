package renderers

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/steamviz/aggregate"
	"github.com/lixenwraith/steamviz/catalog"
	"github.com/lixenwraith/steamviz/render"
)

// Tooltip lines cap, in cells
const tooltipMaxWidth = 36

// Categories listed in a trend tooltip
const tooltipTopN = 4

// TooltipRenderer shows details under the pointer while inspecting
type TooltipRenderer struct {
	catalog *catalog.Catalog
	palette render.Palette
	trend   *TrendRenderer
}

// NewTooltipRenderer creates the tooltip; trend maps columns to years
func NewTooltipRenderer(c *catalog.Catalog, p render.Palette, trend *TrendRenderer) *TooltipRenderer {
	return &TooltipRenderer{catalog: c, palette: p, trend: trend}
}

// Render implements SystemRenderer
func (t *TooltipRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !ctx.Inspecting() || ctx.Layout.TooSmall {
		return
	}
	lines := t.Lines(ctx)
	if len(lines) == 0 {
		return
	}
	drawTooltip(buf, *ctx.Hover, lines)
}

// Lines returns the tooltip text for the hovered cell, nil when nothing is there
func (t *TooltipRenderer) Lines(ctx render.RenderContext) []string {
	p, l := *ctx.Hover, ctx.Layout
	switch {
	case l.Scatter.Contains(p.X, p.Y):
		surface := ctx.View.Surface.Resize(l.Scatter.W, l.Scatter.H)
		records := t.catalog.Records()
		grid := buildCellGrid(records, ctx.View, surface)
		i := grid.at(p.X-l.Scatter.X, p.Y-l.Scatter.Y)
		if i < 0 {
			return nil
		}
		return RecordTooltip(records[i], t.palette)
	case l.Trend.Contains(p.X, p.Y) && t.trend != nil:
		year, ok := t.trend.YearAt(l.Trend, p.X)
		if !ok {
			return nil
		}
		b, ok := ctx.View.Series.Breakdown(year, tooltipTopN)
		if !ok {
			return nil
		}
		return YearTooltip(b)
	case l.Ranking.Contains(p.X, p.Y):
		i := p.Y - l.Ranking.Y
		if i >= len(ctx.View.Ranking) {
			return nil
		}
		tc := ctx.View.Ranking[i]
		return []string{tc.Tag, humanize.Comma(int64(tc.Count)) + " games"}
	}
	return nil
}

// RecordTooltip describes one game
func RecordTooltip(r catalog.GameRecord, p render.Palette) []string {
	genre, _ := p.PrimaryTag(r)
	return []string{
		r.Name,
		fmt.Sprintf("%d · %s", r.Year, genre),
		fmt.Sprintf("$%.2f · %.0f%% positive", r.Price, r.PositiveRate*100),
		humanize.Comma(int64(r.TotalRatings)) + " ratings",
	}
}

// YearTooltip describes one trend column: its largest non-empty categories
// and the total
func YearTooltip(b aggregate.YearBreakdown) []string {
	lines := []string{fmt.Sprintf("%d", b.Year)}
	for _, tc := range b.Top {
		if tc.Count == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", tc.Tag, humanize.Comma(int64(tc.Count))))
	}
	return append(lines, "Total: "+humanize.Comma(int64(b.Total)))
}

// drawTooltip places the box below-right of the pointer, flipping at the edges
func drawTooltip(buf *render.RenderBuffer, at render.Point, lines []string) {
	w, h := buf.Bounds()
	boxW := 0
	for i, s := range lines {
		lines[i] = runewidth.Truncate(s, tooltipMaxWidth, "…")
		boxW = max(boxW, runewidth.StringWidth(lines[i]))
	}
	boxW += 2
	boxH := len(lines)

	x, y := at.X+2, at.Y+1
	if x+boxW > w {
		x = max(at.X-boxW-1, 0)
	}
	if y+boxH > h-1 {
		y = max(at.Y-boxH, 0)
	}

	bg := render.RgbTooltipBg
	buf.Fill(render.Rect{X: x, Y: y, W: boxW, H: boxH}, ' ', render.RgbText.On(bg))
	for i, s := range lines {
		style := render.RgbText.On(bg)
		if i == 0 {
			style = render.RgbAccent.On(bg)
		}
		buf.SetString(x+1, y+i, s, style)
	}
}
