package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned when the catalog file extension is unknown
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// Load reads a catalog from path, dispatching on extension:
//   - .json: cleaned records (the sampled export shape)
//   - .csv: raw store dump, cleaned and sampled with opts on the way in
//   - .db, .sqlite, .sqlite3: a games table written by SaveSQLite
func Load(ctx context.Context, path string, opts CleanOptions) (*Catalog, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open catalog: %w", err)
		}
		defer f.Close()
		records, err := ReadJSON(f)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return New(records), nil

	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open catalog: %w", err)
		}
		defer f.Close()
		raw, err := ReadRawCSV(f)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return New(Clean(raw, opts)), nil

	case ".db", ".sqlite", ".sqlite3":
		records, err := LoadSQLite(ctx, path)
		if err != nil {
			return nil, err
		}
		return New(records), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// ReadJSON decodes a JSON array of records. Tags are normalized and records
// with non-finite numbers are dropped
func ReadJSON(r io.Reader) ([]GameRecord, error) {
	var raw []GameRecord
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}

	out := make([]GameRecord, 0, len(raw))
	for _, rec := range raw {
		if !finite(rec.Price) || !finite(rec.PositiveRate) {
			continue
		}
		rec.Genres = normalizeAll(rec.Genres)
		out = append(out, rec)
	}
	return out, nil
}

// WriteJSON encodes records as an indented JSON array
func WriteJSON(w io.Writer, records []GameRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	return nil
}

func normalizeAll(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if n := NormalizeTag(t); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
