package renderers

import (
	"fmt"

	"github.com/lixenwraith/steamviz/render"
)

// TooSmallRenderer replaces the panels with a notice when the terminal is
// below the minimum layout size
type TooSmallRenderer struct{}

// NewTooSmallRenderer creates the notice renderer
func NewTooSmallRenderer() *TooSmallRenderer {
	return &TooSmallRenderer{}
}

// Render implements SystemRenderer
func (t *TooSmallRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	l := ctx.Layout
	if !l.TooSmall {
		return
	}
	msg := fmt.Sprintf("terminal too small: need %dx%d", render.MinWidth, render.MinHeight)
	y := max(l.Height/2, 1)
	buf.SetString(max((l.Width-len(msg))/2, 0), y, msg, render.RgbMuted.Style())
}
