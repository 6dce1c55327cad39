package renderers

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/lixenwraith/steamviz/aggregate"
	"github.com/lixenwraith/steamviz/render"
)

const trendTitle = "NEW RELEASES (COUNT)"

// Stack headroom over the tallest year
const trendHeadroom = 1.1

// TrendRenderer draws yearly release counts as stacked columns, one segment
// per category in series key order
type TrendRenderer struct {
	palette render.Palette
	window  aggregate.Window
}

// NewTrendRenderer creates the trend view over a fixed year window
func NewTrendRenderer(p render.Palette, w aggregate.Window) *TrendRenderer {
	return &TrendRenderer{palette: p, window: w}
}

// Render implements SystemRenderer
func (t *TrendRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	l := ctx.Layout
	if l.TooSmall {
		return
	}
	area := l.Trend
	series := ctx.View.Series
	label := render.RgbMuted.Style()
	axis := render.RgbAxis.Style()

	x := l.TrendPanel.X + 1
	x += buf.SetString(x, l.TrendPanel.Y, trendTitle, label) + 2
	for _, key := range series.Keys {
		if x+len(key)+2 > l.TrendPanel.X+l.TrendPanel.W {
			break
		}
		buf.Set(x, l.TrendPanel.Y, '■', t.palette.Tag(key).Style())
		x += buf.SetString(x+1, l.TrendPanel.Y, key, label) + 2
	}

	for y := area.Y; y < area.Y+area.H; y++ {
		buf.Set(area.X-1, y, '│', axis)
	}
	baseY := area.Y + area.H
	buf.Set(area.X-1, baseY, '└', axis)
	for x := area.X; x < area.X+area.W; x++ {
		buf.Set(x, baseY, '─', axis)
	}

	if series.Len() == 0 || area.Empty() {
		msg := "no releases"
		buf.SetString(area.X+(area.W-len(msg))/2, area.Y+area.H/2, msg, label)
		return
	}

	// Years present with no category match keep the axis but draw no segments
	peak := series.MaxStack()
	yMax := float64(max(peak, 1)) * trendHeadroom
	rows := func(v int) int {
		return int(math.Round(float64(v) / yMax * float64(area.H)))
	}

	if peak > 0 {
		buf.SetStringRight(area.X-1, baseY-rows(peak), compactCount(peak), label)
	}
	buf.SetStringRight(area.X-1, baseY, "0", label)

	nYears := t.window.Last - t.window.First + 1
	colW := max(1, area.W/nYears)
	barW := max(1, colW-1)
	nextFree := area.X
	for i := range nYears {
		year := t.window.First + i
		cx := area.X + i*colW
		if cx+barW > area.X+area.W {
			break
		}
		if cx >= nextFree {
			nextFree = cx + buf.SetString(cx, baseY+1, yearLabel(year, colW), label) + 1
		}

		yc, ok := series.At(year)
		if !ok {
			continue
		}
		cum, top := 0, 0
		for _, key := range series.Keys {
			cum += yc.Counts[key]
			next := min(rows(cum), area.H)
			if next > top {
				style := t.palette.Tag(key).Style()
				for dy := top; dy < next; dy++ {
					for dx := range barW {
						buf.Set(cx+dx, baseY-1-dy, '█', style)
					}
				}
				top = next
			}
		}
	}
}

// YearAt maps a trend plot cell column to the year drawn there
func (t *TrendRenderer) YearAt(area render.Rect, x int) (int, bool) {
	nYears := t.window.Last - t.window.First + 1
	if nYears <= 0 || x < area.X || x >= area.X+area.W {
		return 0, false
	}
	colW := max(1, area.W/nYears)
	i := (x - area.X) / colW
	if i >= nYears {
		return 0, false
	}
	return t.window.First + i, true
}

func yearLabel(year, colW int) string {
	if colW >= 4 {
		return strconv.Itoa(year)
	}
	return fmt.Sprintf("'%02d", year%100)
}

// compactCount formats axis counts: 950, 1.2k, 34k
func compactCount(n int) string {
	if n < 1000 {
		return humanize.Comma(int64(n))
	}
	return strings.ReplaceAll(humanize.SIWithDigits(float64(n), 1, ""), " ", "")
}
