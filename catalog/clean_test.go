package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rawCSV = `appid,name,release_date,english,genres,positive_ratings,negative_ratings,price
10,Counter-Strike,2000-11-01,1,Action,124534,3339,7.19
20,Tiny,2019-05-02,1,Indie;Casual,10,2,0.99
30,No Date,,1,Indie,500,20,1.99
40,Mid,2016-07-12,1,RPG;Indie,90,10,14.99
`

func TestReadRawCSV(t *testing.T) {
	rows, err := ReadRawCSV(strings.NewReader(rawCSV))
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Counter-Strike", rows[0].Name)
	assert.Equal(t, 124534, rows[0].PositiveRatings)
	assert.Equal(t, 7.19, rows[0].Price)
	assert.Equal(t, "Indie;Casual", rows[1].Genres)
}

func TestReadRawCSV_MissingColumn(t *testing.T) {
	_, err := ReadRawCSV(strings.NewReader("name,price\nA,1\n"))
	assert.ErrorIs(t, err, errMissingColumn)
}

func TestReadRawCSV_BadNumber(t *testing.T) {
	in := "name,release_date,genres,positive_ratings,negative_ratings,price\nA,2010-01-01,Action,x,1,2\n"
	_, err := ReadRawCSV(strings.NewReader(in))
	assert.Error(t, err)
}

func TestClean_FiltersAndDerives(t *testing.T) {
	rows, err := ReadRawCSV(strings.NewReader(rawCSV))
	require.NoError(t, err)

	opts := DefaultCleanOptions()
	opts.SampleFraction = 1
	got := Clean(rows, opts)

	// Tiny has 12 ratings (< 20), No Date has no year
	require.Len(t, got, 2)
	byName := map[string]GameRecord{}
	for _, r := range got {
		byName[r.Name] = r
	}
	cs := byName["Counter-Strike"]
	assert.Equal(t, 2000, cs.Year)
	assert.Equal(t, 127873, cs.TotalRatings)
	assert.InDelta(t, 124534.0/127873.0, cs.PositiveRate, 1e-12)

	mid := byName["Mid"]
	assert.Equal(t, []string{"RPG", "Indie"}, mid.Genres)
	assert.InDelta(t, 0.9, mid.PositiveRate, 1e-12)
}

func TestClean_StratifiedSample(t *testing.T) {
	var rows []RawGame
	for i := range 10 {
		rows = append(rows, RawGame{Name: fmt.Sprintf("hot-%d", i), ReleaseDate: "2018-01-01", PositiveRatings: 3000})
	}
	for i := range 200 {
		rows = append(rows, RawGame{Name: fmt.Sprintf("cold-%d", i), ReleaseDate: "2018-01-01", PositiveRatings: 50})
	}

	got := Clean(rows, DefaultCleanOptions())

	hot := 0
	for _, r := range got {
		if strings.HasPrefix(r.Name, "hot-") {
			hot++
		}
	}
	assert.Equal(t, 10, hot, "hot rows are always kept")
	assert.Len(t, got, 10+10, "five percent of 200 cold rows")

	again := Clean(rows, DefaultCleanOptions())
	assert.Equal(t, got, again, "same seed gives the same sample and order")
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"2019-05-02", 2019, true},
		{"Nov 1, 2000", 2000, true},
		{"2014", 2014, true},
		{"", 0, false},
		{"soon", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			y, ok := parseYear(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, y)
		})
	}
}

func TestSQLite_SaveLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "games.db")
	recs := []GameRecord{
		{Name: "A", Price: 10, PositiveRate: 0.9, TotalRatings: 100, Year: 2020, Genres: []string{"Indie"}},
		{Name: "B", Price: 50, PositiveRate: 0.5, TotalRatings: 40, Year: 2021, Genres: []string{}},
	}
	require.NoError(t, SaveSQLite(ctx, path, recs))
	// second save replaces rather than appends
	require.NoError(t, SaveSQLite(ctx, path, recs))

	back, err := LoadSQLite(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, recs, back)

	c, err := Load(ctx, path, DefaultCleanOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
}
