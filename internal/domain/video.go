// Package domain contains the core analytics computations and entities.
// This package has no external dependencies (only stdlib).
package domain

import (
	"math"
	"time"
)

// Video represents a single video as delivered by the data source.
// PublishedAt is kept as the raw ISO-8601 string because upstream data may
// omit or malform it; date math goes through publishTime instead.
type Video struct {
	ID          string `json:"video_id"`
	ChannelID   string `json:"channel_id,omitempty"`
	ChannelName string `json:"channel_name,omitempty"`

	Title       string `json:"title"`
	PublishedAt string `json:"published_at"`

	// Metrics
	Views    int `json:"views"`
	Likes    int `json:"likes"`
	Comments int `json:"comments"`

	// EngagementRate is precomputed by the data source as
	// (likes+comments)/views*100, rounded to 2 decimals.
	EngagementRate float64 `json:"engagement_rate"`

	// Derived fields, attached to copies by RankByTrend / DetectOutliers.
	// Never set on caller-owned records.
	TrendScore       float64 `json:"trend_score,omitempty"`
	TrendExplanation string  `json:"trend_explanation,omitempty"`
	OutlierRatio     float64 `json:"outlier_ratio,omitempty"`
}

// Channel represents channel metadata from the data source.
type Channel struct {
	ChannelID         string `json:"channel_id"`
	Name              string `json:"name"`
	Handle            string `json:"handle,omitempty"`
	Description       string `json:"description,omitempty"`
	Subscribers       int    `json:"subscribers"`
	TotalViews        int    `json:"total_views"`
	TotalVideos       int    `json:"total_videos"`
	CreatedAt         string `json:"created_at,omitempty"`
	UploadsPlaylistID string `json:"uploads_playlist_id,omitempty"`
}

// publishTime parses the video's publish timestamp.
// Returns false for missing or malformed values; callers skip the record
// from date-dependent aggregation instead of failing.
func publishTime(v Video) (time.Time, bool) {
	if v.PublishedAt == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, v.PublishedAt)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// daysSince returns whole days elapsed from t to now, floored at zero,
// plus one. The +1 avoids division by zero and over-weighting same-day
// velocity.
func daysSince(t time.Time, now time.Time) int {
	days := int(now.Sub(t).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return days + 1
}

// round2 rounds a float to 2 decimal places.
func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
