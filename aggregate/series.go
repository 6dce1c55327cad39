// Package aggregate derives the trend and ranking views from a filtered record set
// All functions are pure; inputs are never modified
package aggregate

import (
	"slices"

	"github.com/lixenwraith/steamviz/catalog"
)

// Window is an inclusive release-year range
type Window struct {
	First int `yaml:"first_year" validate:"gte=1970"`
	Last  int `yaml:"last_year" validate:"gtefield=First"`
}

// DefaultWindow is the trend chart's year range
var DefaultWindow = Window{First: 2010, Last: 2024}

// Contains reports whether year falls inside the window
func (w Window) Contains(year int) bool {
	return year >= w.First && year <= w.Last
}

// YearCounts is one year's category counts
type YearCounts struct {
	Year   int            `json:"year" yaml:"year"`
	Counts map[string]int `json:"counts" yaml:"counts"`
}

// Sum adds up the category counts. Categories overlap, so this can exceed the
// number of records released that year
func (y YearCounts) Sum() int {
	total := 0
	for _, n := range y.Counts {
		total += n
	}
	return total
}

// YearSeries is the stacked release trend. Keys is the stack order, Years ascend
type YearSeries struct {
	Keys  []string     `json:"keys" yaml:"keys"`
	Years []YearCounts `json:"years" yaml:"years"`
}

// Len returns the number of years in the series
func (s YearSeries) Len() int {
	return len(s.Years)
}

// At returns the counts for a year
func (s YearSeries) At(year int) (YearCounts, bool) {
	i, ok := slices.BinarySearchFunc(s.Years, year, func(y YearCounts, t int) int {
		return y.Year - t
	})
	if !ok {
		return YearCounts{}, false
	}
	return s.Years[i], true
}

// KeyTotal is a category's count summed over all years
func (s YearSeries) KeyTotal(key string) int {
	total := 0
	for _, y := range s.Years {
		total += y.Counts[key]
	}
	return total
}

// MaxStack is the tallest stacked column
func (s YearSeries) MaxStack() int {
	peak := 0
	for _, y := range s.Years {
		peak = max(peak, y.Sum())
	}
	return peak
}

// YearBreakdown is the hover summary of one trend column
type YearBreakdown struct {
	Year  int
	Top   []TagCount
	Total int
}

// Breakdown returns the n largest categories of a year, descending, and the
// year's category total. Equal counts keep category declaration order
func (s YearSeries) Breakdown(year, n int) (YearBreakdown, bool) {
	y, ok := s.At(year)
	if !ok {
		return YearBreakdown{}, false
	}
	top := make([]TagCount, 0, len(catalog.Categories))
	for _, c := range catalog.Categories {
		if v, ok := y.Counts[string(c)]; ok {
			top = append(top, TagCount{Tag: string(c), Count: v})
		}
	}
	slices.SortStableFunc(top, func(a, b TagCount) int {
		return b.Count - a.Count
	})
	if n >= 0 && len(top) > n {
		top = top[:n]
	}
	return YearBreakdown{Year: year, Top: top, Total: y.Sum()}, true
}

// ComputeYearSeries builds the stacked trend over DefaultWindow
func ComputeYearSeries(records []catalog.GameRecord) YearSeries {
	return ComputeYearSeriesIn(records, DefaultWindow)
}

// ComputeYearSeriesIn groups records by release year inside w and counts, per
// year, the records tagged with each stackable category. A record tagged with
// several categories counts toward each of them
// Keys are ordered by total descending; ties keep declaration order
func ComputeYearSeriesIn(records []catalog.GameRecord, w Window) YearSeries {
	byYear := make(map[int]map[string]int)
	for _, r := range records {
		if !w.Contains(r.Year) {
			continue
		}
		counts, ok := byYear[r.Year]
		if !ok {
			counts = make(map[string]int, len(catalog.Categories))
			for _, c := range catalog.Categories {
				counts[string(c)] = 0
			}
			byYear[r.Year] = counts
		}
		for _, c := range catalog.Categories {
			if r.HasGenre(string(c)) {
				counts[string(c)]++
			}
		}
	}
	if len(byYear) == 0 {
		return YearSeries{}
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	slices.Sort(years)

	s := YearSeries{Years: make([]YearCounts, len(years))}
	for i, y := range years {
		s.Years[i] = YearCounts{Year: y, Counts: byYear[y]}
	}

	totals := make(map[string]int, len(catalog.Categories))
	s.Keys = make([]string, len(catalog.Categories))
	for i, c := range catalog.Categories {
		s.Keys[i] = string(c)
		totals[string(c)] = s.KeyTotal(string(c))
	}
	slices.SortStableFunc(s.Keys, func(a, b string) int {
		return totals[b] - totals[a]
	})
	return s
}
