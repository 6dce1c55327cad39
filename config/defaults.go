package config

import (
	"github.com/lixenwraith/steamviz/aggregate"
	"github.com/lixenwraith/steamviz/catalog"
)

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path:  "steam_data_sampled.json",
			Clean: catalog.DefaultCleanOptions(),
		},
		Axes: AxesConfig{
			PriceMax:   80,
			RateMin:    0.15,
			RateMax:    1,
			RatingsMax: 50000,
		},
		Trend: aggregate.DefaultWindow,
		Ranking: RankingConfig{
			TopN: aggregate.DefaultTopN,
		},
		Palette: DefaultPalette(),
		Keys:    map[string]string{},
		Inspect: InspectConfig{
			Modifier:  "alt",
			ToggleKey: "i",
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.3,
		},
		Log: LogConfig{
			Enabled: false,
			Level:   "info",
			Format:  "pretty",
			File:    "logs/steamviz.log",
		},
		Snapshot: SnapshotConfig{
			Dir:    "snapshots",
			Width:  900,
			Height: 500,
		},
	}
}

// DefaultPalette maps each category to its mark color
func DefaultPalette() map[string]string {
	return map[string]string{
		string(catalog.CategoryAction):    "#ec4899",
		string(catalog.CategoryIndie):     "#06b6d4",
		string(catalog.CategoryRPG):       "#a855f7",
		string(catalog.CategoryStrategy):  "#f59e0b",
		string(catalog.CategoryAdventure): "#10b981",
		string(catalog.CategoryOther):     "#475569",
	}
}
