package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// RawGame is one row of the raw store dump before cleaning
type RawGame struct {
	Name            string
	ReleaseDate     string
	Genres          string
	PositiveRatings int
	NegativeRatings int
	Price           float64
}

// CleanOptions controls filtering and stratified sampling of raw rows
type CleanOptions struct {
	// MinRatings drops rows with fewer total ratings
	MinRatings int `yaml:"min_ratings" validate:"gte=0"`
	// HotThreshold rows at or above this rating volume are always kept
	HotThreshold int `yaml:"hot_threshold" validate:"gte=0"`
	// SampleFraction of the remaining rows is kept
	SampleFraction float64 `yaml:"sample_fraction" validate:"gte=0,lte=1"`
	// Seed makes sampling and the final shuffle reproducible
	Seed uint64 `yaml:"seed"`
}

// DefaultCleanOptions matches the sampled dataset the dashboard was designed on
func DefaultCleanOptions() CleanOptions {
	return CleanOptions{
		MinRatings:     20,
		HotThreshold:   2000,
		SampleFraction: 0.05,
		Seed:           42,
	}
}

var errMissingColumn = errors.New("missing column")

// ReadRawCSV reads a raw dump with a header row. Columns are located by name:
// name, release_date, genres, positive_ratings, negative_ratings, price
func ReadRawCSV(r io.Reader) ([]RawGame, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, name := range []string{"name", "release_date", "genres", "positive_ratings", "negative_ratings", "price"} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%w: %s", errMissingColumn, name)
		}
	}

	field := func(row []string, name string) string {
		i := col[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var out []RawGame
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		pos, err1 := strconv.Atoi(field(row, "positive_ratings"))
		neg, err2 := strconv.Atoi(field(row, "negative_ratings"))
		price, err3 := strconv.ParseFloat(field(row, "price"), 64)
		if err := errors.Join(err1, err2, err3); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, RawGame{
			Name:            field(row, "name"),
			ReleaseDate:     field(row, "release_date"),
			Genres:          field(row, "genres"),
			PositiveRatings: pos,
			NegativeRatings: neg,
			Price:           price,
		})
	}
	return out, nil
}

// Clean turns raw rows into records:
//   - total = positive + negative, rows under MinRatings dropped
//   - positive rate = positive / total
//   - release year parsed from the date, unparseable dates dropped
//   - genres split on ';'
//
// then keeps every hot row, samples SampleFraction of the rest and shuffles
// the union, all driven by Seed
func Clean(rows []RawGame, opts CleanOptions) []GameRecord {
	var hot, normal []GameRecord
	for _, row := range rows {
		total := row.PositiveRatings + row.NegativeRatings
		if total < opts.MinRatings || total <= 0 {
			continue
		}
		year, ok := parseYear(row.ReleaseDate)
		if !ok {
			continue
		}
		rec := GameRecord{
			Name:         row.Name,
			Price:        row.Price,
			PositiveRate: float64(row.PositiveRatings) / float64(total),
			TotalRatings: total,
			Year:         year,
			Genres:       SplitGenres(row.Genres),
		}
		if total >= opts.HotThreshold {
			hot = append(hot, rec)
		} else {
			normal = append(normal, rec)
		}
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed))

	n := min(int(math.Round(opts.SampleFraction*float64(len(normal)))), len(normal))
	out := make([]GameRecord, 0, len(hot)+n)
	out = append(out, hot...)
	for _, i := range rng.Perm(len(normal))[:n] {
		out = append(out, normal[i])
	}

	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"Jan 2, 2006",
	"2 Jan, 2006",
	"2006-01",
	"2006",
}

func parseYear(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Year(), true
		}
	}
	return 0, false
}
