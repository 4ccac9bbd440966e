package domain

import "sort"

// momentumBands maps score thresholds to human-readable labels.
// Evaluated in order; the first band whose Max covers the score wins.
var momentumBands = []struct {
	Max   int
	Label string
}{
	{20, "Needs attention"},
	{40, "Finding your rhythm"},
	{60, "Steady pace"},
	{80, "Growing nicely"},
	{100, "On fire! 🔥"},
}

// MomentumScore computes a 1-100 score comparing the channel's newer half of
// uploads against the older half by average views.
//
// Videos are sorted by publish timestamp descending; missing or malformed
// timestamps sort as the empty string, i.e. last. With fewer than 2 videos
// the score is the neutral 50.
func MomentumScore(videos []Video) int {
	if len(videos) < 2 {
		return 50
	}

	sorted := make([]Video, len(videos))
	copy(sorted, videos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishedAt > sorted[j].PublishedAt
	})

	mid := len(sorted) / 2
	newerAvg := avgViews(sorted[:mid])
	olderAvg := avgViews(sorted[mid:])

	if olderAvg == 0 {
		if newerAvg == 0 {
			return 50
		}
		return 75 // growth assumed over a flat-zero baseline
	}

	growthRatio := newerAvg / olderAvg
	score := int(50 + (growthRatio-1)*25)

	if score < 1 {
		return 1
	}
	if score > 100 {
		return 100
	}
	return score
}

// MomentumLabel returns the human-readable label for a momentum score.
func MomentumLabel(score int) string {
	for _, band := range momentumBands {
		if score <= band.Max {
			return band.Label
		}
	}
	return momentumBands[len(momentumBands)-1].Label
}

func avgViews(videos []Video) float64 {
	if len(videos) == 0 {
		return 0
	}
	total := 0
	for _, v := range videos {
		total += v.Views
	}
	return float64(total) / float64(len(videos))
}
