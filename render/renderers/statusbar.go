package renderers

import (
	"fmt"
	"math"
	"strings"

	"github.com/lixenwraith/steamviz/render"
	"github.com/lixenwraith/steamviz/selection"
	"github.com/lixenwraith/steamviz/status"
)

const keyHelp = "drag select · hold alt inspect · r reset · q quit"

// StatusBarRenderer draws mode, audio, selection and help on the bottom row
type StatusBarRenderer struct{}

// NewStatusBarRenderer creates the status bar
func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{}
}

// Render implements SystemRenderer
func (s *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	w, h := buf.Bounds()
	if h < 2 {
		return
	}
	y := h - 1
	bg := render.RgbPanel
	buf.Fill(render.Rect{X: 0, Y: y, W: w, H: 1}, ' ', render.RgbText.On(bg))

	mode, modeBg := " SELECT ", render.RgbModeSelectBg
	if ctx.View.Inspect {
		mode, modeBg = " INSPECT ", render.RgbModeInspect
	}
	x := buf.SetString(0, y, mode, render.RgbBackground.On(modeBg)) + 1

	if ctx.AudioAvailable {
		audio, color := "♪", render.RgbAudioOn
		if ctx.Muted {
			audio, color = "♪ muted", render.RgbAudioMuted
		}
		x += buf.SetString(x, y, audio, color.On(bg)) + 1
	}

	x += buf.SetString(x, y, ctx.View.Summary.String(), render.RgbText.On(bg)) + 1
	if ctx.View.HasSelection {
		x += buf.SetString(x, y, RectLabel(ctx.View.Selection), render.RgbSelection.On(bg)) + 1
	}
	if ctx.ShowStats {
		x += buf.SetString(x, y, StatsLabel(ctx), render.RgbMuted.On(bg)) + 1
	}
	if ctx.Message != "" {
		x += buf.SetString(x, y, ctx.Message, render.RgbAccent.On(bg)) + 1
	}
	if w-len([]rune(keyHelp))-1 > x {
		buf.SetStringRight(w-1, y, keyHelp, render.RgbMuted.On(bg))
	}
}

// RectLabel formats a data-space selection, open sides shown as "…"
func RectLabel(r selection.Rect) string {
	bound := func(v float64, f func(float64) string) string {
		if math.IsInf(v, 0) {
			return "…"
		}
		return f(v)
	}
	price := func(v float64) string { return fmt.Sprintf("$%.2f", v) }
	rate := func(v float64) string { return fmt.Sprintf("%.0f%%", v*100) }
	return fmt.Sprintf("[%s–%s × %s–%s]",
		bound(r.PriceMin, price), bound(r.PriceMax, price),
		bound(r.RateMin, rate), bound(r.RateMax, rate))
}

// StatsLabel formats the descriptive stats of the filtered set and the
// last recompute time
func StatsLabel(ctx render.RenderContext) string {
	st := ctx.View.Stats
	var b strings.Builder
	if st.Count > 0 {
		fmt.Fprintf(&b, "μ $%.2f · med %.0f%%", st.MeanPrice, st.MedianRate*100)
	}
	if ctx.Metrics != nil {
		if b.Len() > 0 {
			b.WriteString(" · ")
		}
		fmt.Fprintf(&b, "%.2fms", status.Millis(ctx.Metrics.Timing(status.KeyRecomputeTime).Last()))
	}
	return b.String()
}
