// Package catalog holds the immutable game dataset loaded once per session
package catalog

import "slices"

// GameRecord is a single game entry. Records are never mutated after load
type GameRecord struct {
	Name         string   `json:"name" yaml:"name"`
	Price        float64  `json:"price" yaml:"price"`
	PositiveRate float64  `json:"positive_rate" yaml:"positive_rate"`
	TotalRatings int      `json:"total_ratings" yaml:"total_ratings"`
	Year         int      `json:"year" yaml:"year"`
	Genres       []string `json:"genres" yaml:"genres"`
}

// HasGenre reports whether the record carries the tag
func (r GameRecord) HasGenre(tag string) bool {
	return slices.Contains(r.Genres, tag)
}

// PrimaryCategory returns the first genre that is a palette category, or CategoryOther
func (r GameRecord) PrimaryCategory() Category {
	for _, g := range r.Genres {
		if c, ok := CategoryOf(g); ok {
			return c
		}
	}
	return CategoryOther
}

// FirstGenre returns the first tag or "" for untagged records
func (r GameRecord) FirstGenre() string {
	if len(r.Genres) == 0 {
		return ""
	}
	return r.Genres[0]
}

// Catalog is the full read-only record set of a session
// Safe to share between readers; there are no mutators
type Catalog struct {
	records []GameRecord
}

// New builds a catalog from records. Genre slices are copied so the caller
// cannot alter catalog contents through retained references
func New(records []GameRecord) *Catalog {
	owned := make([]GameRecord, len(records))
	for i, r := range records {
		r.Genres = slices.Clone(r.Genres)
		owned[i] = r
	}
	return &Catalog{records: owned}
}

// Len returns the record count
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// At returns the i-th record
func (c *Catalog) At(i int) GameRecord {
	return c.records[i]
}

// Records returns the backing slice. Callers must treat it as read-only
func (c *Catalog) Records() []GameRecord {
	if c == nil {
		return nil
	}
	return c.records
}

// Filter returns the records matching keep, in catalog order
func (c *Catalog) Filter(keep func(GameRecord) bool) []GameRecord {
	out := make([]GameRecord, 0, c.Len())
	for _, r := range c.Records() {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
