package renderers

import (
	"math"

	"github.com/lixenwraith/steamviz/render"
	"github.com/lixenwraith/steamviz/selection"
)

// SelectionRenderer outlines the live drag, or the committed selection when idle
type SelectionRenderer struct{}

// NewSelectionRenderer creates the selection overlay
func NewSelectionRenderer() *SelectionRenderer {
	return &SelectionRenderer{}
}

// Render implements SystemRenderer
func (s *SelectionRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	l := ctx.Layout
	if l.TooSmall {
		return
	}
	area := l.Scatter

	var box render.Rect
	switch {
	case ctx.Drag != nil:
		d := ctx.Drag
		x0, x1 := min(d.AnchorX, d.X), max(d.AnchorX, d.X)
		y0, y1 := min(d.AnchorY, d.Y), max(d.AnchorY, d.Y)
		box = render.Rect{X: x0, Y: y0, W: x1 - x0 + 1, H: y1 - y0 + 1}
	case ctx.View.HasSelection:
		box = selectionCells(ctx.View.Selection, ctx.View.Surface.Resize(area.W, area.H))
	default:
		return
	}
	box.X += area.X
	box.Y += area.Y
	drawBox(buf, box, render.RgbSelection)
}

// Absorbs float error when a rect built from cell edges maps back to cells
const cellEpsilon = 1e-9

// selectionCells covers the cells a data rect touches, clamped to the surface
func selectionCells(r selection.Rect, s selection.Surface) render.Rect {
	fx := func(v float64) float64 { return clampUnit(s.Price.Map(v)) * float64(s.Width) }
	fy := func(v float64) float64 { return (1 - clampUnit(s.Rate.Map(v))) * float64(s.Height) }

	x0 := int(math.Floor(fx(r.PriceMin) + cellEpsilon))
	x1 := int(math.Ceil(fx(r.PriceMax)-cellEpsilon)) - 1
	y0 := int(math.Floor(fy(r.RateMax) + cellEpsilon))
	y1 := int(math.Ceil(fy(r.RateMin)-cellEpsilon)) - 1

	x0, x1 = min(max(x0, 0), s.Width-1), min(max(x1, x0), s.Width-1)
	y0, y1 = min(max(y0, 0), s.Height-1), min(max(y1, y0), s.Height-1)
	return render.Rect{X: x0, Y: y0, W: x1 - x0 + 1, H: y1 - y0 + 1}
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

// drawBox draws a single-line border; marks inside stay visible
func drawBox(buf *render.RenderBuffer, r render.Rect, color render.RGB) {
	if r.Empty() {
		return
	}
	style := color.Style()
	x1, y1 := r.X+r.W-1, r.Y+r.H-1
	if r.W == 1 || r.H == 1 {
		for y := r.Y; y <= y1; y++ {
			for x := r.X; x <= x1; x++ {
				buf.Set(x, y, '░', style)
			}
		}
		return
	}
	for x := r.X + 1; x < x1; x++ {
		buf.Set(x, r.Y, '─', style)
		buf.Set(x, y1, '─', style)
	}
	for y := r.Y + 1; y < y1; y++ {
		buf.Set(r.X, y, '│', style)
		buf.Set(x1, y, '│', style)
	}
	buf.Set(r.X, r.Y, '┌', style)
	buf.Set(x1, r.Y, '┐', style)
	buf.Set(r.X, y1, '└', style)
	buf.Set(x1, y1, '┘', style)
}
