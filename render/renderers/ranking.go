package renderers

import (
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/steamviz/render"
)

const rankingTitle = "TOP TAGS"

// Label column cap, in cells
const rankingLabelMax = 16

// RankingRenderer draws the tag frequency ranking as horizontal bars
type RankingRenderer struct {
	palette render.Palette
}

// NewRankingRenderer creates the ranking view
func NewRankingRenderer(p render.Palette) *RankingRenderer {
	return &RankingRenderer{palette: p}
}

// Render implements SystemRenderer
func (r *RankingRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	l := ctx.Layout
	if l.TooSmall {
		return
	}
	label := render.RgbMuted.Style()
	text := render.RgbText.Style()
	buf.SetString(l.RankingPanel.X+1, l.RankingPanel.Y, rankingTitle, label)

	area := l.Ranking
	ranking := ctx.View.Ranking
	if len(ranking) == 0 {
		buf.SetString(area.X, area.Y, "no tags in selection", label)
		return
	}

	labelW := min(rankingLabelMax, area.W/3)
	countW := 0
	for _, tc := range ranking {
		countW = max(countW, len(humanize.Comma(int64(tc.Count))))
	}
	barMax := area.W - labelW - countW - 2
	peak := ranking.Max()

	for i, tc := range ranking {
		if i >= area.H {
			break
		}
		y := area.Y + i
		buf.SetString(area.X, y, runewidth.Truncate(tc.Tag, labelW, "…"), text)

		bar := 0
		if peak > 0 && barMax > 0 {
			bar = max(1, tc.Count*barMax/peak)
		}
		style := r.palette.Tag(tc.Tag).Style()
		for dx := range bar {
			buf.Set(area.X+labelW+1+dx, y, '█', style)
		}
		buf.SetStringRight(area.X+area.W, y, humanize.Comma(int64(tc.Count)), label)
	}
}
