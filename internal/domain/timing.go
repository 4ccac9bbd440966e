package domain

import (
	"fmt"
	"sort"
)

// DayStats holds per-weekday performance aggregates.
type DayStats struct {
	AvgViews   int `json:"avg_views"`
	VideoCount int `json:"video_count"`
	TotalViews int `json:"total_views"`
}

// TimingRecommendation is the result of upload-timing analysis.
type TimingRecommendation struct {
	BestDays            []string            `json:"best_days"`
	DayStats            map[string]DayStats `json:"day_stats"`
	Recommendation      string              `json:"recommendation"`
	TotalVideosAnalyzed int                 `json:"total_videos_analyzed"`
}

// weekdayOrder is the calendar order used to break ranking ties.
var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func weekdayIndex(day string) int {
	for i, d := range weekdayOrder {
		if d == day {
			return i
		}
	}
	return len(weekdayOrder)
}

// AnalyzeUploadTiming groups videos by publish weekday, ranks the weekdays by
// average views and recommends the top two. Videos with missing or malformed
// timestamps are skipped.
func AnalyzeUploadTiming(videos []Video) TimingRecommendation {
	if len(videos) == 0 {
		return TimingRecommendation{
			BestDays:       []string{},
			DayStats:       map[string]DayStats{},
			Recommendation: "Not enough data to analyze",
		}
	}

	dayViews := make(map[string][]int)
	for _, v := range videos {
		published, ok := publishTime(v)
		if !ok {
			continue
		}
		weekday := published.Weekday().String()
		dayViews[weekday] = append(dayViews[weekday], v.Views)
	}

	dayStats := make(map[string]DayStats, len(dayViews))
	for day, views := range dayViews {
		total := 0
		for _, n := range views {
			total += n
		}
		dayStats[day] = DayStats{
			AvgViews:   total / len(views),
			VideoCount: len(views),
			TotalViews: total,
		}
	}

	ranked := make([]string, 0, len(dayStats))
	for day := range dayStats {
		ranked = append(ranked, day)
	}
	// Ties fall back to calendar order so the ranking is deterministic.
	sort.Slice(ranked, func(i, j int) bool {
		si, sj := dayStats[ranked[i]], dayStats[ranked[j]]
		if si.AvgViews != sj.AvgViews {
			return si.AvgViews > sj.AvgViews
		}
		return weekdayIndex(ranked[i]) < weekdayIndex(ranked[j])
	})

	if len(ranked) > 2 {
		ranked = ranked[:2]
	}

	var recommendation string
	switch len(ranked) {
	case 2:
		recommendation = fmt.Sprintf("Upload on %s or %s for best performance", ranked[0], ranked[1])
	case 1:
		recommendation = fmt.Sprintf("Upload on %s consistently", ranked[0])
	default:
		recommendation = "Need more upload history to recommend"
	}

	return TimingRecommendation{
		BestDays:            ranked,
		DayStats:            dayStats,
		Recommendation:      recommendation,
		TotalVideosAnalyzed: len(videos),
	}
}
