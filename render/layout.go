package render

// Minimum terminal size for the dashboard layout
const (
	MinWidth  = 60
	MinHeight = 16
)

// Scatter y tick label gutter, in columns
const axisGutter = 6

// Rect is a screen area in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports a zero-area rect
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Layout splits the screen into the header, the scatter plot on the left,
// the trend and ranking stacked on the right, and the status bar
// Panel rects include titles and axes; the inner rects are the plot areas
type Layout struct {
	Width, Height int
	TooSmall      bool

	Header Rect
	Status Rect

	ScatterPanel Rect
	Scatter      Rect

	TrendPanel Rect
	Trend      Rect

	RankingPanel Rect
	Ranking      Rect
}

// ComputeLayout sizes every panel for a w × h screen
func ComputeLayout(w, h int) Layout {
	l := Layout{Width: w, Height: h}
	if w < MinWidth || h < MinHeight {
		l.TooSmall = true
		return l
	}

	l.Header = Rect{X: 0, Y: 0, W: w, H: 1}
	l.Status = Rect{X: 0, Y: h - 1, W: w, H: 1}

	bodyY, bodyH := 1, h-2
	leftW := w * 3 / 5

	// title row above, axis and label rows below
	l.ScatterPanel = Rect{X: 0, Y: bodyY, W: leftW, H: bodyH}
	l.Scatter = Rect{X: axisGutter, Y: bodyY + 1, W: leftW - axisGutter - 1, H: bodyH - 3}

	rx, rw := leftW+1, w-leftW-1
	trendH := bodyH / 2
	l.TrendPanel = Rect{X: rx, Y: bodyY, W: rw, H: trendH}
	l.Trend = Rect{X: rx + axisGutter, Y: bodyY + 1, W: rw - axisGutter - 1, H: trendH - 2}

	l.RankingPanel = Rect{X: rx, Y: bodyY + trendH, W: rw, H: bodyH - trendH}
	l.Ranking = Rect{X: rx + 1, Y: l.RankingPanel.Y + 1, W: rw - 2, H: l.RankingPanel.H - 1}
	return l
}

// SurfaceCell converts a screen cell to scatter surface cell coordinates,
// clamped to the plot area so drags past the edge reach the border
func (l Layout) SurfaceCell(x, y int) (int, int) {
	cx := min(max(x-l.Scatter.X, 0), l.Scatter.W-1)
	cy := min(max(y-l.Scatter.Y, 0), l.Scatter.H-1)
	return cx, cy
}
