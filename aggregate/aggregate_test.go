package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/steamviz/catalog"
)

func rec(name string, year int, genres ...string) catalog.GameRecord {
	return catalog.GameRecord{Name: name, Year: year, Genres: genres, Price: 10, PositiveRate: 0.8, TotalRatings: 100}
}

func TestComputeYearSeries_Scenario(t *testing.T) {
	filtered := []catalog.GameRecord{
		rec("a", 2020, "Indie"),
		rec("c", 2020, "Indie", "RPG"),
	}

	s := ComputeYearSeries(filtered)
	require.Equal(t, 1, s.Len())
	y := s.Years[0]
	assert.Equal(t, 2020, y.Year)
	assert.Equal(t, 2, y.Counts["Indie"])
	assert.Equal(t, 1, y.Counts["RPG"])
	assert.Equal(t, 0, y.Counts["Action"])
	assert.Equal(t, []string{"Indie", "RPG", "Action", "Strategy", "Adventure"}, s.Keys)
}

func TestComputeYearSeries_Empty(t *testing.T) {
	for name, in := range map[string][]catalog.GameRecord{
		"nil":            nil,
		"outside window": {rec("old", 2005, "Action"), rec("new", 2030, "Indie")},
	} {
		t.Run(name, func(t *testing.T) {
			s := ComputeYearSeries(in)
			assert.Equal(t, 0, s.Len())
			assert.Nil(t, s.Keys)
			assert.Equal(t, 0, s.MaxStack())
		})
	}
}

func TestComputeYearSeries_WindowInclusive(t *testing.T) {
	s := ComputeYearSeries([]catalog.GameRecord{
		rec("first", 2010, "Action"),
		rec("last", 2024, "Action"),
		rec("before", 2009, "Action"),
	})
	require.Equal(t, 2, s.Len())
	assert.Equal(t, 2010, s.Years[0].Year)
	assert.Equal(t, 2024, s.Years[1].Year)
}

func TestComputeYearSeries_YearWithoutCategoriesAppears(t *testing.T) {
	s := ComputeYearSeries([]catalog.GameRecord{
		rec("casual", 2015, "Casual"),
		rec("action", 2016, "Action"),
	})
	require.Equal(t, 2, s.Len())
	y, ok := s.At(2015)
	require.True(t, ok)
	assert.Equal(t, 0, y.Sum())
}

func TestComputeYearSeries_NonExclusiveCounts(t *testing.T) {
	s := ComputeYearSeries([]catalog.GameRecord{
		rec("x", 2018, "Action", "Indie", "RPG"),
	})
	y, ok := s.At(2018)
	require.True(t, ok)
	assert.Equal(t, 3, y.Sum(), "one record counts toward three categories")
}

func TestComputeYearSeries_StackOrder(t *testing.T) {
	s := ComputeYearSeries([]catalog.GameRecord{
		rec("a", 2012, "Adventure"),
		rec("b", 2013, "Adventure"),
		rec("c", 2013, "Strategy"),
		rec("d", 2014, "Strategy"),
		rec("e", 2014, "RPG"),
	})
	// Adventure and Strategy tie at 2; Strategy is declared first
	assert.Equal(t, []string{"Strategy", "Adventure", "RPG", "Action", "Indie"}, s.Keys)

	again := ComputeYearSeries([]catalog.GameRecord{
		rec("a", 2012, "Adventure"),
		rec("b", 2013, "Adventure"),
		rec("c", 2013, "Strategy"),
		rec("d", 2014, "Strategy"),
		rec("e", 2014, "RPG"),
	})
	assert.Equal(t, s, again)
}

func TestComputeYearSeriesIn_CustomWindow(t *testing.T) {
	s := ComputeYearSeriesIn([]catalog.GameRecord{
		rec("a", 2001, "Action"),
		rec("b", 2005, "Action"),
	}, Window{First: 2000, Last: 2002})
	require.Equal(t, 1, s.Len())
	assert.Equal(t, 2001, s.Years[0].Year)
}

func TestYearSeries_Breakdown(t *testing.T) {
	s := ComputeYearSeries([]catalog.GameRecord{
		rec("a", 2020, "Indie", "Action"),
		rec("b", 2020, "Indie", "RPG"),
		rec("c", 2020, "Strategy"),
		rec("d", 2020, "Indie", "Adventure"),
	})

	b, ok := s.Breakdown(2020, 4)
	require.True(t, ok)
	assert.Equal(t, 2020, b.Year)
	assert.Equal(t, 7, b.Total)
	require.Len(t, b.Top, 4)
	assert.Equal(t, TagCount{Tag: "Indie", Count: 3}, b.Top[0])
	// remaining ties keep declaration order
	assert.Equal(t, []string{"Action", "RPG", "Strategy"}, []string{b.Top[1].Tag, b.Top[2].Tag, b.Top[3].Tag})

	_, ok = s.Breakdown(2011, 4)
	assert.False(t, ok)
	assert.Equal(t, 7, s.MaxStack())
	assert.Equal(t, 3, s.KeyTotal("Indie"))
}

func TestComputeTagFrequency_Scenario(t *testing.T) {
	got := ComputeTagFrequency([]catalog.GameRecord{
		rec("a", 2020, "Indie"),
		rec("c", 2020, "Indie", "RPG"),
	})
	assert.Equal(t, TagFrequency{{Tag: "Indie", Count: 2}, {Tag: "RPG", Count: 1}}, got)
}

func TestComputeTagFrequency_Empty(t *testing.T) {
	assert.Empty(t, ComputeTagFrequency(nil))
	assert.Empty(t, ComputeTagFrequency([]catalog.GameRecord{rec("untagged", 2020)}))
	assert.Equal(t, 0, ComputeTagFrequency(nil).Max())
}

func TestComputeTagFrequency_TruncatesAndBreaksTiesByFirstSeen(t *testing.T) {
	var in []catalog.GameRecord
	tags := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}
	for _, tag := range tags {
		in = append(in, rec(tag, 2020, tag))
	}
	in = append(in, rec("extra", 2020, "J"))

	got := ComputeTagFrequency(in)
	require.Len(t, got, DefaultTopN)
	assert.Equal(t, TagCount{Tag: "J", Count: 2}, got[0])
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F", "G"},
		[]string{got[1].Tag, got[2].Tag, got[3].Tag, got[4].Tag, got[5].Tag, got[6].Tag, got[7].Tag})

	assert.Len(t, ComputeTagFrequencyN(in, 0), len(tags))
	assert.Len(t, ComputeTagFrequencyN(in, 3), 3)
}

func TestComputeTagFrequency_CountsEveryOccurrence(t *testing.T) {
	got := ComputeTagFrequency([]catalog.GameRecord{
		rec("a", 2020, "Indie", "Casual"),
		rec("b", 2030, "Indie"),
	})
	// years outside the trend window still count for the ranking
	assert.Equal(t, 2, got[0].Count)
}

func TestComputeStats(t *testing.T) {
	assert.Equal(t, Stats{}, ComputeStats(nil))

	got := ComputeStats([]catalog.GameRecord{
		{Price: 10, PositiveRate: 0.9, TotalRatings: 100},
		{Price: 50, PositiveRate: 0.5, TotalRatings: 300},
		{Price: 0, PositiveRate: 0.95, TotalRatings: 200},
	})
	assert.Equal(t, 3, got.Count)
	assert.InDelta(t, 20, got.MeanPrice, 1e-9)
	assert.InDelta(t, 0.9, got.MedianRate, 1e-9)
	assert.InDelta(t, 200, got.MeanRatings, 1e-9)
}
