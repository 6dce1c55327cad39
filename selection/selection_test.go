package selection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/steamviz/catalog"
)

func scenarioCatalog() *catalog.Catalog {
	return catalog.New([]catalog.GameRecord{
		{Name: "a", Price: 10, PositiveRate: 0.9, Year: 2020, Genres: []string{"Indie"}},
		{Name: "b", Price: 50, PositiveRate: 0.5, Year: 2021, Genres: []string{"Action"}},
		{Name: "c", Price: 10, PositiveRate: 0.95, Year: 2020, Genres: []string{"Indie", "RPG"}},
	})
}

func names(rs []catalog.GameRecord) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Name
	}
	return out
}

func TestEngine_NoSelectionIsFullCatalog(t *testing.T) {
	c := scenarioCatalog()
	var e Engine

	_, ok := e.Selection()
	assert.False(t, ok)
	assert.Equal(t, c.Records(), e.FilteredSet(c))
}

func TestEngine_Scenario(t *testing.T) {
	c := scenarioCatalog()
	var e Engine

	e.SetSelection(&Rect{PriceMin: 0, PriceMax: 20, RateMin: 0.8, RateMax: 1})

	assert.True(t, e.Active())
	assert.Equal(t, []string{"a", "c"}, names(e.FilteredSet(c)))
}

func TestEngine_FilteredSetMatchesPredicate(t *testing.T) {
	c := scenarioCatalog()
	rects := []Rect{
		{PriceMin: 0, PriceMax: 100, RateMin: 0, RateMax: 1},
		{PriceMin: 10, PriceMax: 10, RateMin: 0, RateMax: 1},
		{PriceMin: 20, PriceMax: 60, RateMin: 0.4, RateMax: 0.6},
		{PriceMin: 0, PriceMax: 9.99, RateMin: 0, RateMax: 1},
		{PriceMin: 10, PriceMax: 50, RateMin: 0.9, RateMax: 0.95},
	}
	for _, r := range rects {
		t.Run(r.String(), func(t *testing.T) {
			var e Engine
			e.SetSelection(&r)
			if !e.Active() {
				assert.True(t, r.Degenerate())
				return
			}
			var want []catalog.GameRecord
			for _, g := range c.Records() {
				if r.Contains(g) {
					want = append(want, g)
				}
			}
			got := e.FilteredSet(c)
			assert.ElementsMatch(t, want, got)
		})
	}
}

func TestEngine_InvertedBoundsNormalize(t *testing.T) {
	c := scenarioCatalog()
	normal := Rect{PriceMin: 0, PriceMax: 20, RateMin: 0.8, RateMax: 1}
	inverted := []Rect{
		{PriceMin: 20, PriceMax: 0, RateMin: 0.8, RateMax: 1},
		{PriceMin: 0, PriceMax: 20, RateMin: 1, RateMax: 0.8},
		{PriceMin: 20, PriceMax: 0, RateMin: 1, RateMax: 0.8},
	}

	var ref Engine
	ref.SetSelection(&normal)
	want := ref.FilteredSet(c)

	for _, r := range inverted {
		var e Engine
		e.SetSelection(&r)
		got, ok := e.Selection()
		require.True(t, ok)
		assert.Equal(t, normal, got)
		assert.Equal(t, want, e.FilteredSet(c))
	}
}

func TestEngine_ClearAndDegenerate(t *testing.T) {
	c := scenarioCatalog()
	var e Engine

	e.SetSelection(&Rect{PriceMin: 0, PriceMax: 20, RateMin: 0.8, RateMax: 1})
	e.SetSelection(nil)
	assert.False(t, e.Active())
	assert.Len(t, e.FilteredSet(c), 3)

	e.SetSelection(&Rect{PriceMin: 0, PriceMax: 20, RateMin: 0.8, RateMax: 1})
	e.SetSelection(&Rect{PriceMin: 5, PriceMax: 5, RateMin: 0, RateMax: 1})
	assert.False(t, e.Active(), "zero-width rect clears")

	e.SetSelection(&Rect{PriceMin: math.NaN(), PriceMax: 5, RateMin: 0, RateMax: 1})
	assert.False(t, e.Active())
}

func TestEngine_SelectionReplacedWholesale(t *testing.T) {
	var e Engine
	r := Rect{PriceMin: 0, PriceMax: 20, RateMin: 0.8, RateMax: 1}
	e.SetSelection(&r)

	// caller mutations after the call do not leak in
	r.PriceMax = 1000
	got, _ := e.Selection()
	assert.Equal(t, 20.0, got.PriceMax)
}

func testSurface() Surface {
	// 80 columns over $0..$80 and 10 rows over 0..1: one dollar per column, 10% per row
	return NewSurface(80, 10, 0, 80, 0, 1)
}

func TestSurface_ToDataInvertsYAxis(t *testing.T) {
	s := testSurface()

	r, ok := s.ToData(SurfaceRect{X0: 10, Y0: 2, X1: 20, Y1: 5})
	require.True(t, ok)
	assert.InDelta(t, 10, r.PriceMin, 1e-9)
	assert.InDelta(t, 20, r.PriceMax, 1e-9)
	assert.InDelta(t, 0.5, r.RateMin, 1e-9)
	assert.InDelta(t, 0.8, r.RateMax, 1e-9)
}

func TestSurface_DragDirectionDoesNotMatter(t *testing.T) {
	s := testSurface()
	want, ok := s.ToData(SurfaceRect{X0: 10, Y0: 2, X1: 20, Y1: 5})
	require.True(t, ok)

	for _, sr := range []SurfaceRect{
		{X0: 20, Y0: 5, X1: 10, Y1: 2},
		{X0: 20, Y0: 2, X1: 10, Y1: 5},
		{X0: 10, Y0: 5, X1: 20, Y1: 2},
	} {
		got, ok := s.ToData(sr)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestSurface_DegenerateIsNoSelection(t *testing.T) {
	s := testSurface()
	for _, sr := range []SurfaceRect{
		{X0: 10, Y0: 2, X1: 10, Y1: 5},
		{X0: 10, Y0: 2, X1: 20, Y1: 2},
		{},
	} {
		_, ok := s.ToData(sr)
		assert.False(t, ok)
	}

	_, ok := Surface{}.ToData(SurfaceRect{X1: 1, Y1: 1})
	assert.False(t, ok, "zero-size surface")
}

func TestSurface_BorderOpensBounds(t *testing.T) {
	s := testSurface()
	r, ok := s.ToData(SurfaceRect{X0: 0, Y0: 0, X1: 80, Y1: 10})
	require.True(t, ok)
	assert.True(t, math.IsInf(r.PriceMin, -1))
	assert.True(t, math.IsInf(r.PriceMax, 1))
	assert.True(t, math.IsInf(r.RateMin, -1))
	assert.True(t, math.IsInf(r.RateMax, 1))

	// a $120 game is clamped onto the right border and must be selectable there
	pricey := catalog.GameRecord{Price: 120, PositiveRate: 0.55}
	cx, cy := s.Cell(pricey)
	assert.Equal(t, 79, cx)
	edge, ok := s.ToData(s.CellRect(70, cy-1, 79, cy+1))
	require.True(t, ok)
	assert.True(t, edge.Contains(pricey))
}

func TestSurface_CellRect(t *testing.T) {
	s := testSurface()
	assert.Equal(t, SurfaceRect{X0: 2, Y0: 3, X1: 6, Y1: 8}, s.CellRect(2, 3, 5, 7))
	assert.Equal(t, SurfaceRect{X0: 2, Y0: 3, X1: 6, Y1: 8}, s.CellRect(5, 7, 2, 3))
	assert.Equal(t, SurfaceRect{X0: 4, Y0: 3, X1: 4, Y1: 8}, s.CellRect(4, 3, 4, 7))
}

func TestSurface_CellSelectionCoversMarks(t *testing.T) {
	s := testSurface()
	g := catalog.GameRecord{Price: 15.5, PositiveRate: 0.62}
	cx, cy := s.Cell(g)
	assert.Equal(t, 15, cx)
	assert.Equal(t, 3, cy)

	r, ok := s.ToData(s.CellRect(cx, cy, cx+1, cy+1))
	require.True(t, ok)
	assert.True(t, r.Contains(g))
}

func TestSurface_Ticks(t *testing.T) {
	s := NewSurface(80, 20, 0, 80, 0.15, 1)
	ticks := s.PriceTicks(8)
	require.NotEmpty(t, ticks)
	assert.LessOrEqual(t, len(ticks), 8)
	for _, v := range ticks {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 80.0)
	}
	assert.NotEmpty(t, s.RateTicks(5))
}
