package domain

import "sort"

// DefaultOutlierThreshold is the view multiple over the channel's median
// views at which a video counts as an outlier.
const DefaultOutlierThreshold = 1.8

// DetectOutliers returns the videos whose views reach threshold times the
// channel's median views, each copy augmented with its ratio over the median,
// sorted by ratio descending.
//
// A zero median (all-zero views or empty input) produces no outliers; the
// division by the median can never be reached in that case.
func DetectOutliers(videos []Video, threshold float64) []Video {
	if len(videos) == 0 {
		return nil
	}

	baseline := ComputeBaseline(videos)
	medianViews := baseline.MedianViews
	if medianViews == 0 {
		return nil
	}

	cutoff := float64(medianViews) * threshold

	var outliers []Video
	for _, v := range videos {
		if float64(v.Views) >= cutoff {
			v.OutlierRatio = round2(float64(v.Views) / float64(medianViews))
			outliers = append(outliers, v)
		}
	}

	sort.SliceStable(outliers, func(i, j int) bool {
		return outliers[i].OutlierRatio > outliers[j].OutlierRatio
	})

	return outliers
}
