package domain

// Report is the full analytics payload for one channel: the raw videos plus
// every derived metric, as handed to export and the HTTP layer.
type Report struct {
	Channel      Channel              `json:"channel"`
	RecentVideos []Video              `json:"recent_videos"`
	Insights     InsightSummary       `json:"insights"`
	Audit        AuditResult          `json:"audit"`
	Outliers     []Video              `json:"outliers"`
	Patterns     PatternReport        `json:"patterns"`
	Timing       TimingRecommendation `json:"timing"`
	GeneratedAt  string               `json:"generated_at"`
}

// TrendingResult holds trend-ranked discovery results for a niche.
type TrendingResult struct {
	Niche       string                `json:"niche"`
	Videos      []Video               `json:"videos"`
	Channels    []ChannelTrendSummary `json:"channels"`
	GeneratedAt string                `json:"generated_at"`
	CacheUntil  string                `json:"cache_until"`
}
