// Package service provides application use cases.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"yota-analytics/internal/domain"
)

// ErrChannelNotFound is returned when the channel ID resolves to nothing.
var ErrChannelNotFound = errors.New("channel not found")

// ErrNoUploadsPlaylist is returned when a channel exposes no uploads
// playlist, which makes video analysis impossible.
var ErrNoUploadsPlaylist = errors.New("channel has no uploads playlist")

// AnalyticsService builds per-channel analytics reports from the video
// source. All derived metrics are computed against a single timestamp
// taken at the start of the request.
type AnalyticsService struct {
	source    domain.VideoSource
	logger    *zap.Logger
	maxVideos int
}

// NewAnalyticsService creates a new AnalyticsService. maxVideos bounds how
// many recent uploads each report analyzes.
func NewAnalyticsService(source domain.VideoSource, logger *zap.Logger, maxVideos int) *AnalyticsService {
	return &AnalyticsService{
		source:    source,
		logger:    logger,
		maxVideos: maxVideos,
	}
}

// BuildReport fetches the channel and its recent uploads, then derives the
// full analytics payload: insights, audit, outliers, title patterns and
// upload timing.
func (s *AnalyticsService) BuildReport(ctx context.Context, channelID string) (*domain.Report, error) {
	now := time.Now().UTC()

	channel, videos, err := s.fetchChannelVideos(ctx, channelID)
	if err != nil {
		return nil, err
	}

	insights := domain.ComputeInsights(videos)
	outliers := domain.DetectOutliers(videos, domain.DefaultOutlierThreshold)

	report := &domain.Report{
		Channel:      *channel,
		RecentVideos: videos,
		Insights:     insights,
		Audit:        domain.RunAudit(videos, insights),
		Outliers:     outliers,
		Patterns:     domain.ExtractPatterns(outliers, videos),
		Timing:       domain.AnalyzeUploadTiming(videos),
		GeneratedAt:  now.Format(time.RFC3339),
	}

	s.logger.Info("report built",
		zap.String("channel_id", channelID),
		zap.String("channel", channel.Name),
		zap.Int("videos", len(videos)),
		zap.Int("momentum", insights.MomentumScore),
	)

	return report, nil
}

// Outliers fetches the channel's recent uploads and detects outliers at the
// given threshold, with title patterns extracted from them.
func (s *AnalyticsService) Outliers(ctx context.Context, channelID string, threshold float64) ([]domain.Video, domain.PatternReport, error) {
	_, videos, err := s.fetchChannelVideos(ctx, channelID)
	if err != nil {
		return nil, domain.PatternReport{}, err
	}

	outliers := domain.DetectOutliers(videos, threshold)
	patterns := domain.ExtractPatterns(outliers, videos)

	s.logger.Debug("outliers detected",
		zap.String("channel_id", channelID),
		zap.Float64("threshold", threshold),
		zap.Int("count", len(outliers)),
	)

	return outliers, patterns, nil
}

// fetchChannelVideos resolves the channel and loads its recent uploads.
func (s *AnalyticsService) fetchChannelVideos(ctx context.Context, channelID string) (*domain.Channel, []domain.Video, error) {
	channel, err := s.source.FetchChannel(ctx, channelID)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching channel %s: %w", channelID, err)
	}
	if channel == nil {
		return nil, nil, ErrChannelNotFound
	}
	if channel.UploadsPlaylistID == "" {
		return nil, nil, ErrNoUploadsPlaylist
	}

	videos, err := s.source.FetchVideos(ctx, channel.UploadsPlaylistID, s.maxVideos)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching videos for %s: %w", channelID, err)
	}

	return channel, videos, nil
}
