package domain

import (
	"fmt"
	"math"
	"time"
)

// InsightSummary is the channel-level summary consumed by export and CLI.
type InsightSummary struct {
	AvgViewsPerVideo     float64 `json:"avg_views_per_video"`
	AvgEngagementRate    float64 `json:"avg_engagement_rate"`
	BestPerformingVideo  *string `json:"best_performing_video"`
	BestUploadDay        string  `json:"best_upload_day"`
	UploadConsistency    string  `json:"upload_consistency"`
	MomentumScore        int     `json:"momentum_score"`
	MomentumLabel        string  `json:"momentum_label"`
}

// ComputeInsights derives the full insight summary from the channel's
// videos. Created fresh per call; safe on empty input.
func ComputeInsights(videos []Video) InsightSummary {
	momentum := MomentumScore(videos)

	return InsightSummary{
		AvgViewsPerVideo:    AvgViews(videos),
		AvgEngagementRate:   AvgEngagement(videos),
		BestPerformingVideo: BestVideo(videos),
		BestUploadDay:       BestUploadDay(videos),
		UploadConsistency:   UploadConsistency(videos),
		MomentumScore:       momentum,
		MomentumLabel:       MomentumLabel(momentum),
	}
}

// AvgViews returns the average view count per video, 2-decimal rounded.
func AvgViews(videos []Video) float64 {
	if len(videos) == 0 {
		return 0.0
	}
	total := 0
	for _, v := range videos {
		total += v.Views
	}
	return round2(float64(total) / float64(len(videos)))
}

// AvgEngagement returns the average engagement rate across videos,
// 2-decimal rounded.
func AvgEngagement(videos []Video) float64 {
	if len(videos) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, v := range videos {
		sum += v.EngagementRate
	}
	return round2(sum / float64(len(videos)))
}

// BestVideo returns the title of the most-viewed video, nil when there are
// no videos.
func BestVideo(videos []Video) *string {
	if len(videos) == 0 {
		return nil
	}
	best := videos[0]
	for _, v := range videos[1:] {
		if v.Views > best.Views {
			best = v
		}
	}
	title := best.Title
	if title == "" {
		title = "Unknown"
	}
	return &title
}

// BestUploadDay returns the weekday this channel uploads on most often.
// Ties are broken by calendar order; "N/A" when no video has a parseable
// timestamp.
func BestUploadDay(videos []Video) string {
	counts := make(map[string]int)
	for _, v := range videos {
		published, ok := publishTime(v)
		if !ok {
			continue
		}
		counts[published.Weekday().String()]++
	}

	best := "N/A"
	bestCount := 0
	for _, day := range weekdayOrder {
		if counts[day] > bestCount {
			best = day
			bestCount = counts[day]
		}
	}
	return best
}

// UploadConsistency returns the channel's upload rate as "N.N videos/week".
// Needs at least 2 parseable upload dates, otherwise "N/A".
func UploadConsistency(videos []Video) string {
	if len(videos) < 2 {
		return "N/A"
	}

	var dates []time.Time
	for _, v := range videos {
		if published, ok := publishTime(v); ok {
			dates = append(dates, published)
		}
	}
	if len(dates) < 2 {
		return "N/A"
	}

	oldest, newest := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(oldest) {
			oldest = d
		}
		if d.After(newest) {
			newest = d
		}
	}

	days := int(newest.Sub(oldest).Hours() / 24)
	weeks := math.Max(1, float64(days)/7)
	perWeek := float64(len(dates)) / weeks

	return fmt.Sprintf("%.1f videos/week", perWeek)
}
