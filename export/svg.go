// Package export writes static SVG snapshots of the dashboard views
package export

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"slices"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"github.com/lixenwraith/steamviz/aggregate"
	"github.com/lixenwraith/steamviz/catalog"
	"github.com/lixenwraith/steamviz/dashboard"
	"github.com/lixenwraith/steamviz/render"
)

// ErrEmpty is returned when a view has nothing to plot
var ErrEmpty = errors.New("nothing to plot")

// Size is the SVG canvas in pixels
type Size struct {
	Width, Height int
}

// Dim factor for marks outside the selection, toward white paper
const dimAlpha = 0.25

var paper = render.RGB{R: 255, G: 255, B: 255}

func rgba(c render.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// WriteScatter plots every catalog record at (price, positive rate), sized by
// the square root of its rating volume; unselected records are faded
func WriteScatter(w io.Writer, c *catalog.Catalog, v dashboard.View, p render.Palette, size Size) error {
	records := c.Records()
	if len(records) == 0 {
		return ErrEmpty
	}
	price := make([]float64, len(records))
	rate := make([]float64, len(records))
	volume := make([]float64, len(records))
	colors := make([]color.RGBA, len(records))
	for i, r := range records {
		price[i] = r.Price
		rate[i] = r.PositiveRate * 100
		volume[i] = math.Sqrt(float64(r.TotalRatings))
		col := p.Primary(r)
		if v.HasSelection && !v.Selection.Contains(r) {
			col = paper.Blend(col, dimAlpha)
		}
		colors[i] = rgba(col)
	}

	t := new(table.Builder).
		Add("price (USD)", price).
		Add("positive rating (%)", rate).
		Add("volume", volume).
		Add("color", colors).
		Done()

	plot := gg.NewPlot(t)
	plot.SetScale("x", spanScaler(0, slices.Max(price), 1))
	plot.SetScale("y", spanScaler(0, 100, 1))
	plot.Add(gg.Title(fmt.Sprintf("games by price and rating (%s)", v.Summary)))
	plot.Add(gg.LayerPoints{
		X:     "price (USD)",
		Y:     "positive rating (%)",
		Color: "color",
		Size:  "volume",
	})
	return writeSVG(plot, w, size)
}

// WriteTrend plots the stacked yearly release counts as one band per category
// Every year of the window gets a row so absent years read as zero
func WriteTrend(w io.Writer, v dashboard.View, p render.Palette, size Size) error {
	s := v.Series
	if s.Len() == 0 {
		return ErrEmpty
	}
	win := v.Window
	if win.First == 0 || win.Last < win.First {
		win = aggregate.Window{First: s.Years[0].Year, Last: s.Years[s.Len()-1].Year}
	}

	nYears := win.Last - win.First + 1
	n := len(s.Keys) * nYears
	years := make([]float64, 0, n)
	upper := make([]float64, 0, n)
	lower := make([]float64, 0, n)
	fills := make([]color.RGBA, 0, n)
	base := make([]int, nYears)
	for _, key := range s.Keys {
		fill := rgba(p.Tag(key))
		for i := range nYears {
			year := win.First + i
			count := 0
			if yc, ok := s.At(year); ok {
				count = yc.Counts[key]
			}
			years = append(years, float64(year))
			lower = append(lower, float64(base[i]))
			upper = append(upper, float64(base[i]+count))
			fills = append(fills, fill)
			base[i] += count
		}
	}

	t := new(table.Builder).
		Add("year", years).
		Add("upper", upper).
		Add("lower", lower).
		Add("fill", fills).
		Done()

	plot := gg.NewPlot(t)
	plot.SetScale("x", spanScaler(float64(win.First), float64(win.Last), 0.5))
	plot.SetScale("y", spanScaler(0, float64(max(s.MaxStack(), 1)), 1))
	plot.Add(gg.Title("new releases (count)"))
	plot.Add(gg.LayerArea{X: "year", Upper: "upper", Lower: "lower", Fill: "fill"})
	return writeSVG(plot, w, size)
}

// WriteRanking plots the tag ranking as labeled points, highest count on top
func WriteRanking(w io.Writer, v dashboard.View, p render.Palette, size Size) error {
	if len(v.Ranking) == 0 {
		return ErrEmpty
	}
	counts := make([]float64, len(v.Ranking))
	ranks := make([]float64, len(v.Ranking))
	tags := make([]string, len(v.Ranking))
	colors := make([]color.RGBA, len(v.Ranking))
	for i, tc := range v.Ranking {
		counts[i] = float64(tc.Count)
		ranks[i] = float64(len(v.Ranking) - i)
		tags[i] = tc.Tag
		colors[i] = rgba(p.Tag(tc.Tag))
	}

	t := new(table.Builder).
		Add("count", counts).
		Add("rank", ranks).
		Add("tag", tags).
		Add("color", colors).
		Done()

	plot := gg.NewPlot(t)
	plot.SetScale("x", spanScaler(0, float64(v.Ranking.Max()), 1))
	plot.SetScale("y", spanScaler(1, float64(len(v.Ranking)), 0.5))
	plot.Add(gg.Title("top tags"))
	plot.Add(gg.LayerPoints{X: "count", Y: "rank", Color: "color"})
	plot.Add(gg.LayerTags{X: "count", Y: "rank", Label: "tag"})
	return writeSVG(plot, w, size)
}

// spanScaler covers [lo, hi]. A zero-width domain is widened by pad on both
// sides since go-gg cannot place ticks on a single value
func spanScaler(lo, hi, pad float64) gg.ContinuousScaler {
	if hi <= lo {
		lo, hi = lo-pad, hi+pad
	}
	return gg.NewLinearScaler().Include(lo).Include(hi)
}

// writeSVG renders the plot; go-gg reports bad column types by panicking
func writeSVG(plot *gg.Plot, w io.Writer, size Size) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render svg: %v", r)
		}
	}()
	return plot.WriteSVG(w, size.Width, size.Height)
}
