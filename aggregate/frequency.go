package aggregate

import (
	"slices"

	"github.com/lixenwraith/steamviz/catalog"
)

// DefaultTopN is the ranking length
const DefaultTopN = 8

// TagCount is one ranking row
type TagCount struct {
	Tag   string `json:"tag" yaml:"tag"`
	Count int    `json:"count" yaml:"count"`
}

// TagFrequency is a ranking, descending by count
type TagFrequency []TagCount

// Max returns the largest count, 0 for an empty ranking
func (f TagFrequency) Max() int {
	if len(f) == 0 {
		return 0
	}
	return f[0].Count
}

// ComputeTagFrequency ranks the DefaultTopN most frequent tags
func ComputeTagFrequency(records []catalog.GameRecord) TagFrequency {
	return ComputeTagFrequencyN(records, DefaultTopN)
}

// ComputeTagFrequencyN counts every tag occurrence and keeps the n most
// frequent. Ties keep first-seen order. n <= 0 keeps all tags
func ComputeTagFrequencyN(records []catalog.GameRecord, n int) TagFrequency {
	index := make(map[string]int)
	var out TagFrequency
	for _, r := range records {
		for _, tag := range r.Genres {
			i, ok := index[tag]
			if !ok {
				i = len(out)
				index[tag] = i
				out = append(out, TagCount{Tag: tag})
			}
			out[i].Count++
		}
	}
	if len(out) == 0 {
		return TagFrequency{}
	}
	slices.SortStableFunc(out, func(a, b TagCount) int {
		return b.Count - a.Count
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
