package renderers

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lixenwraith/steamviz/render"
)

const appTitle = "STEAMVIZ"

// HeaderRenderer draws the title bar with the selected-over-total counter
type HeaderRenderer struct {
	printer *message.Printer
}

// NewHeaderRenderer creates the header with English number formatting
func NewHeaderRenderer() *HeaderRenderer {
	return &HeaderRenderer{printer: message.NewPrinter(language.English)}
}

// Counter formats the header counter for a summary
func (h *HeaderRenderer) Counter(selected, total int, filtered bool) string {
	if !filtered {
		return h.printer.Sprintf("INDEXING %d ENTITIES", total)
	}
	return h.printer.Sprintf("%d SELECTED / %d TOTAL", selected, total)
}

// Render implements SystemRenderer
func (h *HeaderRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	w, _ := buf.Bounds()
	bg := render.RgbPanel
	buf.Fill(render.Rect{X: 0, Y: 0, W: w, H: 1}, ' ', render.RgbText.On(bg))

	x := 1 + buf.SetString(1, 0, appTitle, render.RgbAccent.On(bg))
	s := ctx.View.Summary
	counter := h.Counter(s.Selected, s.Total, s.Filtered)
	if w-len(counter)-1 > x {
		buf.SetStringRight(w-1, 0, counter, render.RgbText.On(bg))
	}
}
