package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, Validate(cfg))
	assert.Equal(t, 80.0, cfg.Axes.PriceMax)
	assert.Equal(t, 0.15, cfg.Axes.RateMin)
	assert.Equal(t, 2010, cfg.Trend.First)
	assert.Equal(t, 2024, cfg.Trend.Last)
	assert.Equal(t, 8, cfg.Ranking.TopN)
	assert.Equal(t, "#06b6d4", cfg.Palette["Indie"])
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steamviz.yaml")
	data := `
catalog:
  path: games.db
axes:
  price_max: 60
ranking:
  top_n: 5
palette:
  Indie: "#ffffff"
inspect:
  modifier: ctrl
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "games.db", cfg.Catalog.Path)
	assert.Equal(t, 60.0, cfg.Axes.PriceMax)
	assert.Equal(t, 0.15, cfg.Axes.RateMin, "unset fields keep defaults")
	assert.Equal(t, 5, cfg.Ranking.TopN)
	assert.Equal(t, "#ffffff", cfg.Palette["Indie"])
	assert.Equal(t, "#ec4899", cfg.Palette["Action"], "palette entries merge")
	assert.Equal(t, "ctrl", cfg.Inspect.Modifier)
	assert.Equal(t, 20, cfg.Catalog.Clean.MinRatings)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad modifier", "inspect: {modifier: meta}", "inspect.modifier must be one of: alt ctrl shift"},
		{"bad color", "palette: {Indie: cyan}", "must be a hex color"},
		{"rate bounds", "axes: {rate_min: 0.9, rate_max: 0.5}", "axes.rate_max must be greater than RateMin"},
		{"window", "trend: {first_year: 2020, last_year: 2010}", "trend.last_year"},
		{"top n", "ranking: {top_n: 0}", "ranking.top_n must be greater than or equal to 1"},
		{"log level", "log: {level: loud}", "log.level"},
		{"sample fraction", "catalog: {clean: {sample_fraction: 2}}", "catalog.clean.sample_fraction"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("axes: [1, 2"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestWrite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "steamviz.yaml")
	cfg := DefaultConfig()
	cfg.Audio.Enabled = true
	cfg.Keys["reset"] = "x"
	require.NoError(t, Write(path, cfg))

	back, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
