package aggregate

import (
	"github.com/aclements/go-moremath/stats"

	"github.com/lixenwraith/steamviz/catalog"
)

// Stats summarizes a record set for the status line and summary report
type Stats struct {
	Count       int     `json:"count" yaml:"count"`
	MeanPrice   float64 `json:"mean_price" yaml:"mean_price"`
	MedianRate  float64 `json:"median_rate" yaml:"median_rate"`
	MeanRatings float64 `json:"mean_ratings" yaml:"mean_ratings"`
}

// ComputeStats returns the zero Stats for an empty set
func ComputeStats(records []catalog.GameRecord) Stats {
	if len(records) == 0 {
		return Stats{}
	}
	prices := make([]float64, len(records))
	rates := make([]float64, len(records))
	ratings := make([]float64, len(records))
	for i, r := range records {
		prices[i] = r.Price
		rates[i] = r.PositiveRate
		ratings[i] = float64(r.TotalRatings)
	}
	return Stats{
		Count:       len(records),
		MeanPrice:   stats.Mean(prices),
		MedianRate:  stats.Sample{Xs: rates}.Quantile(0.5),
		MeanRatings: stats.Mean(ratings),
	}
}
