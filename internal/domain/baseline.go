package domain

import (
	"math"
	"sort"
)

// Baseline holds the statistical baseline of a channel's view counts.
// Recomputed on every call, never cached.
type Baseline struct {
	MedianViews int     `json:"median_views"`
	MeanViews   int     `json:"mean_views"`
	StdDev      float64 `json:"std_dev"`
	TotalVideos int     `json:"total_videos"`
}

// ComputeBaseline calculates median, mean and sample standard deviation over
// the videos' view counts. Empty input yields the zero Baseline.
func ComputeBaseline(videos []Video) Baseline {
	if len(videos) == 0 {
		return Baseline{}
	}

	views := make([]float64, len(videos))
	for i, v := range videos {
		views[i] = float64(v.Views)
	}

	return Baseline{
		MedianViews: int(median(views)),
		MeanViews:   int(mean(views)),
		StdDev:      round2(stdDev(views)),
		TotalVideos: len(videos),
	}
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stdDev returns the sample standard deviation. Needs at least 2 samples,
// otherwise 0.
func stdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}
