package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"yota-analytics/internal/domain"
)

// TrendingService discovers trend-ranked videos and channels for a niche.
// Results are cached in Redis; search.list costs 100 quota units per call,
// so cache hits matter.
type TrendingService struct {
	source domain.VideoSource
	cache  domain.Cache
	logger *zap.Logger
	ttl    time.Duration
}

// NewTrendingService creates a new TrendingService. ttl controls how long a
// niche's snapshot stays cached.
func NewTrendingService(source domain.VideoSource, cache domain.Cache, logger *zap.Logger, ttl time.Duration) *TrendingService {
	return &TrendingService{
		source: source,
		cache:  cache,
		logger: logger,
		ttl:    ttl,
	}
}

// Discover returns the trend-ranked videos and channel summaries for a
// niche query. A cached snapshot is served as-is until it expires; cache
// failures degrade to a fresh search.
func (s *TrendingService) Discover(ctx context.Context, niche string, maxResults int) (*domain.TrendingResult, error) {
	if niche == "" {
		return nil, fmt.Errorf("niche is required")
	}

	key := cacheKey(niche)

	if cached, err := s.cache.Get(ctx, key); err == nil && cached != nil {
		var result domain.TrendingResult
		if err := json.Unmarshal(cached, &result); err == nil {
			s.logger.Debug("trending cache hit", zap.String("niche", niche))
			return &result, nil
		}
		// Unreadable snapshot, drop it and refetch.
		_ = s.cache.Delete(ctx, key)
	}

	now := time.Now().UTC()

	videos, err := s.source.SearchVideos(ctx, niche, maxResults)
	if err != nil {
		return nil, fmt.Errorf("searching niche %q: %w", niche, err)
	}

	ranked := domain.RankByTrend(videos, now)
	for i := range ranked {
		ranked[i].TrendExplanation = domain.ExplainTrend(ranked[i], now)
	}

	result := &domain.TrendingResult{
		Niche:       niche,
		Videos:      ranked,
		Channels:    domain.TrendingChannels(videos, now),
		GeneratedAt: now.Format(time.RFC3339),
		CacheUntil:  now.Add(s.ttl).Format(time.RFC3339),
	}

	if payload, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(ctx, key, payload, s.ttl); err != nil {
			s.logger.Warn("trending cache store failed",
				zap.String("niche", niche),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("trending discovered",
		zap.String("niche", niche),
		zap.Int("videos", len(ranked)),
		zap.Int("channels", len(result.Channels)),
	)

	return result, nil
}

// Invalidate drops the cached snapshot for a niche.
func (s *TrendingService) Invalidate(ctx context.Context, niche string) error {
	return s.cache.Delete(ctx, cacheKey(niche))
}

func cacheKey(niche string) string {
	return "trending:" + niche
}
