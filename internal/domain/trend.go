package domain

import (
	"sort"
	"strings"
	"time"
)

// Trend score component weights. Velocity saturates at 10K views/day,
// engagement at a 10% rate.
const (
	velocityCap      = 10000.0
	velocityWeight   = 50.0
	engagementWeight = 30.0
)

// TrendScore computes a 0-100 composite of view velocity, engagement rate
// and publish recency for a single video. The reference time is injected so
// scoring is deterministic.
//
// A missing or malformed publish timestamp, or zero views, scores 0.0.
func TrendScore(v Video, now time.Time) float64 {
	published, ok := publishTime(v)
	if !ok || v.Views == 0 {
		return 0.0
	}

	days := daysSince(published, now)

	// 1. View velocity (50% weight)
	velocity := float64(v.Views) / float64(days)
	velocityScore := minFloat(velocity/velocityCap, 1.0) * velocityWeight

	// 2. Engagement rate (30% weight)
	engagement := float64(v.Likes+v.Comments) / float64(v.Views)
	engagementScore := minFloat(engagement*10, 1.0) * engagementWeight

	// 3. Recency boost (20% weight), step function
	var recencyScore float64
	switch {
	case days <= 7:
		recencyScore = 20
	case days <= 14:
		recencyScore = 15
	default:
		recencyScore = 10
	}

	return round2(velocityScore + engagementScore + recencyScore)
}

// RankByTrend returns a new slice of videos, each copy augmented with its
// trend score, sorted by score descending. The caller's records are never
// mutated.
func RankByTrend(videos []Video, now time.Time) []Video {
	ranked := make([]Video, len(videos))
	for i, v := range videos {
		v.TrendScore = TrendScore(v, now)
		ranked[i] = v
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TrendScore > ranked[j].TrendScore
	})

	return ranked
}

// ChannelTrend returns the mean trend score across the given videos,
// 0.0 for empty input.
func ChannelTrend(videos []Video, now time.Time) float64 {
	if len(videos) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, v := range videos {
		sum += TrendScore(v, now)
	}

	return round2(sum / float64(len(videos)))
}

// ExplainTrend builds a human-readable explanation of why a video is
// trending. The component buckets are derived independently of any stored
// trend score; a record with an unparseable timestamp defaults to an age of
// 1 day rather than failing.
func ExplainTrend(v Video, now time.Time) string {
	days := 1
	if published, ok := publishTime(v); ok {
		days = daysSince(published, now)
	}

	velocity := float64(v.Views) / float64(days)

	engagementRate := 0.0
	if v.Views > 0 {
		engagementRate = float64(v.Likes+v.Comments) / float64(v.Views) * 100
	}

	var parts []string

	switch {
	case velocity > 50000:
		parts = append(parts, "🚀 Explosive growth")
	case velocity > 20000:
		parts = append(parts, "📈 High velocity")
	case velocity > 5000:
		parts = append(parts, "⬆️ Strong momentum")
	default:
		parts = append(parts, "📊 Steady growth")
	}

	switch {
	case engagementRate > 5:
		parts = append(parts, "💬 Very engaged audience")
	case engagementRate > 3:
		parts = append(parts, "👍 Good engagement")
	}

	switch {
	case days <= 3:
		parts = append(parts, "🔥 Just published")
	case days <= 7:
		parts = append(parts, "🆕 Fresh content")
	}

	return strings.Join(parts, " • ")
}

// ChannelTrendSummary holds a channel's aggregated trend ranking.
type ChannelTrendSummary struct {
	ChannelID   string  `json:"channel_id"`
	ChannelName string  `json:"channel_name"`
	Videos      []Video `json:"videos"`
	TrendScore  float64 `json:"trend_score"`
	VideoCount  int     `json:"video_count"`
}

// TrendingChannels groups videos by channel, computes each group's aggregate
// trend score, and returns the groups sorted by score descending. Videos
// without a channel identifier are dropped.
func TrendingChannels(videos []Video, now time.Time) []ChannelTrendSummary {
	index := make(map[string]int)
	var channels []ChannelTrendSummary

	for _, v := range videos {
		if v.ChannelID == "" {
			continue
		}

		i, ok := index[v.ChannelID]
		if !ok {
			name := v.ChannelName
			if name == "" {
				name = "Unknown"
			}
			channels = append(channels, ChannelTrendSummary{
				ChannelID:   v.ChannelID,
				ChannelName: name,
			})
			i = len(channels) - 1
			index[v.ChannelID] = i
		}

		channels[i].Videos = append(channels[i].Videos, v)
	}

	for i := range channels {
		channels[i].TrendScore = ChannelTrend(channels[i].Videos, now)
		channels[i].VideoCount = len(channels[i].Videos)
	}

	sort.SliceStable(channels, func(i, j int) bool {
		return channels[i].TrendScore > channels[j].TrendScore
	})

	return channels
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
