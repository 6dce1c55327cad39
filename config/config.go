// Package config loads the dashboard configuration from YAML
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/steamviz/aggregate"
	"github.com/lixenwraith/steamviz/catalog"
)

// ConfigFileName is the default config file, looked up in the user config dir
const ConfigFileName = "steamviz.yaml"

// ErrInvalidConfig is returned when validation fails
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all steamviz configuration
type Config struct {
	Catalog  CatalogConfig     `yaml:"catalog"`
	Axes     AxesConfig        `yaml:"axes"`
	Trend    aggregate.Window  `yaml:"trend"`
	Ranking  RankingConfig     `yaml:"ranking"`
	Palette  map[string]string `yaml:"palette" validate:"dive,keys,required,endkeys,hexcolor"`
	Keys     map[string]string `yaml:"keys" validate:"dive,keys,required,endkeys,required"`
	Inspect  InspectConfig     `yaml:"inspect"`
	Audio    AudioConfig       `yaml:"audio"`
	Log      LogConfig         `yaml:"log"`
	Snapshot SnapshotConfig    `yaml:"snapshot"`
}

// CatalogConfig locates the dataset and tunes cleaning of raw CSV input
type CatalogConfig struct {
	Path  string               `yaml:"path" validate:"required"`
	Clean catalog.CleanOptions `yaml:"clean"`
}

// AxesConfig holds the scatter domains. Values outside are clamped to the border
type AxesConfig struct {
	PriceMax   float64 `yaml:"price_max" validate:"gt=0"`
	RateMin    float64 `yaml:"rate_min" validate:"gte=0,lt=1"`
	RateMax    float64 `yaml:"rate_max" validate:"gtfield=RateMin,lte=1"`
	RatingsMax float64 `yaml:"ratings_max" validate:"gt=0"`
}

// RankingConfig sizes the tag ranking
type RankingConfig struct {
	TopN int `yaml:"top_n" validate:"gte=1,lte=32"`
}

// InspectConfig picks the modifier that engages inspect mode
type InspectConfig struct {
	Modifier  string `yaml:"modifier" validate:"oneof=alt ctrl shift"`
	ToggleKey string `yaml:"toggle_key" validate:"required"`
}

// AudioConfig controls the selection cue
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume" validate:"gte=0,lte=1"`
}

// LogConfig controls the session log file
type LogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level" validate:"oneof=debug info warn error"`
	Format  string `yaml:"format" validate:"oneof=pretty json"`
	File    string `yaml:"file" validate:"required_if=Enabled true"`
}

// SnapshotConfig sizes SVG exports, in pixels
type SnapshotConfig struct {
	Dir    string `yaml:"dir" validate:"required"`
	Width  int    `yaml:"width" validate:"gte=200"`
	Height int    `yaml:"height" validate:"gte=150"`
}

// DefaultPath returns the config file location in the user config directory
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ConfigFileName
	}
	return filepath.Join(dir, "steamviz", ConfigFileName)
}

// Load reads config from path, falling back to defaults when the file is
// missing. Fields absent from the file keep their default values
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML onto the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Write stores cfg as YAML, creating the directory
func Write(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
