package catalog

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CopiesGenres(t *testing.T) {
	genres := []string{"Indie", "RPG"}
	c := New([]GameRecord{{Name: "a", Genres: genres}})

	genres[0] = "Action"

	assert.Equal(t, "Indie", c.At(0).Genres[0])
	assert.Equal(t, 1, c.Len())
}

func TestNilCatalog(t *testing.T) {
	var c *Catalog
	assert.Equal(t, 0, c.Len())
	assert.Nil(t, c.Records())
}

func TestPrimaryCategory(t *testing.T) {
	tests := []struct {
		name   string
		genres []string
		want   Category
	}{
		{"empty", nil, CategoryOther},
		{"first known", []string{"Indie", "Action"}, CategoryIndie},
		{"skips unknown", []string{"Casual", "Simulation", "Strategy"}, CategoryStrategy},
		{"none known", []string{"Casual"}, CategoryOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := GameRecord{Genres: tt.genres}
			assert.Equal(t, tt.want, r.PrimaryCategory())
		})
	}
}

func TestNormalizeTag(t *testing.T) {
	assert.Equal(t, "Massively Multiplayer", NormalizeTag("  Massively \t Multiplayer "))
	// fullwidth forms fold to ASCII under NFKC
	assert.Equal(t, "RPG", NormalizeTag("ＲＰＧ"))
	assert.Equal(t, "", NormalizeTag("   "))
}

func TestSplitGenres(t *testing.T) {
	assert.Equal(t, []string{"Action", "Free to Play"}, SplitGenres("Action;Free to Play"))
	assert.Equal(t, []string{"Indie"}, SplitGenres("Indie;;"))
	assert.Empty(t, SplitGenres(""))
}

func TestReadJSON(t *testing.T) {
	in := `[
	  {"name":"A","year":2020,"price":9.99,"positive_rate":0.9,"total_ratings":100,"genres":["Indie"," RPG "]},
	  {"name":"B","year":2015,"price":0,"positive_rate":0.5,"total_ratings":30,"genres":null}
	]`
	recs, err := ReadJSON(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, []string{"Indie", "RPG"}, recs[0].Genres)
	assert.NotNil(t, recs[1].Genres)
	assert.Empty(t, recs[1].Genres)
}

func TestReadJSON_Invalid(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`{"name":`))
	assert.Error(t, err)
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	recs := []GameRecord{{Name: "Tom & Jerry", Price: 4.99, PositiveRate: 0.8, TotalRatings: 50, Year: 2012, Genres: []string{"Action"}}}
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, recs))
	assert.Contains(t, buf.String(), "Tom & Jerry")

	back, err := ReadJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, recs, back)
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	_, err := Load(context.Background(), "games.parquet", DefaultCleanOptions())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"A","year":2020,"price":1,"positive_rate":0.5,"total_ratings":20,"genres":["Action"]}]`), 0644))

	c, err := Load(context.Background(), path, DefaultCleanOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, "A", c.At(0).Name)
}
