package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"yota-analytics/internal/domain"
)

func searchResults() []domain.Video {
	return []domain.Video{
		{
			ID:             "vid-a",
			ChannelID:      "UC-a",
			ChannelName:    "Channel A",
			Title:          "Morning Routine 2024",
			PublishedAt:    time.Now().UTC().Add(-48 * time.Hour).Format(time.RFC3339),
			Views:          120000,
			Likes:          5000,
			Comments:       800,
			EngagementRate: 4.83,
		},
		{
			ID:             "vid-b",
			ChannelID:      "UC-b",
			ChannelName:    "Channel B",
			Title:          "Slow Day Vlog",
			PublishedAt:    time.Now().UTC().Add(-30 * 24 * time.Hour).Format(time.RFC3339),
			Views:          3000,
			Likes:          90,
			Comments:       10,
			EngagementRate: 3.33,
		},
	}
}

func TestDiscover(t *testing.T) {
	source := &fakeSource{searchVideos: searchResults()}
	cache := newFakeCache()
	svc := NewTrendingService(source, cache, zap.NewNop(), 6*time.Hour)

	result, err := svc.Discover(context.Background(), "morning vlog", 20)

	require.NoError(t, err)
	assert.Equal(t, "morning vlog", result.Niche)
	require.Len(t, result.Videos, 2)

	// Recent high-velocity video ranks first, scores attached to copies.
	assert.Equal(t, "vid-a", result.Videos[0].ID)
	assert.Greater(t, result.Videos[0].TrendScore, result.Videos[1].TrendScore)
	assert.NotEmpty(t, result.Videos[0].TrendExplanation)

	require.Len(t, result.Channels, 2)
	assert.Equal(t, "UC-a", result.Channels[0].ChannelID)

	assert.NotEmpty(t, result.GeneratedAt)
	assert.NotEmpty(t, result.CacheUntil)

	// Snapshot was stored with the configured TTL.
	assert.Contains(t, cache.entries, "trending:morning vlog")
	assert.Equal(t, 6*time.Hour, cache.ttls["trending:morning vlog"])
}

func TestDiscover_CacheHit(t *testing.T) {
	source := &fakeSource{searchVideos: searchResults()}
	cache := newFakeCache()
	svc := NewTrendingService(source, cache, zap.NewNop(), 6*time.Hour)

	first, err := svc.Discover(context.Background(), "morning vlog", 20)
	require.NoError(t, err)

	second, err := svc.Discover(context.Background(), "morning vlog", 20)
	require.NoError(t, err)

	assert.Equal(t, 1, source.searchCalls, "second call must be served from cache")
	assert.Equal(t, first.GeneratedAt, second.GeneratedAt)
}

func TestDiscover_CorruptCacheEntryRefetched(t *testing.T) {
	source := &fakeSource{searchVideos: searchResults()}
	cache := newFakeCache()
	cache.entries["trending:morning vlog"] = []byte("{not json")

	svc := NewTrendingService(source, cache, zap.NewNop(), 6*time.Hour)

	result, err := svc.Discover(context.Background(), "morning vlog", 20)

	require.NoError(t, err)
	assert.Equal(t, 1, source.searchCalls)
	assert.Len(t, result.Videos, 2)
}

func TestDiscover_CacheFailuresNonFatal(t *testing.T) {
	source := &fakeSource{searchVideos: searchResults()}
	cache := newFakeCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")

	svc := NewTrendingService(source, cache, zap.NewNop(), 6*time.Hour)

	result, err := svc.Discover(context.Background(), "morning vlog", 20)

	require.NoError(t, err)
	assert.Len(t, result.Videos, 2)
}

func TestDiscover_EmptyNiche(t *testing.T) {
	svc := NewTrendingService(&fakeSource{}, newFakeCache(), zap.NewNop(), time.Hour)

	_, err := svc.Discover(context.Background(), "", 20)
	require.Error(t, err)
}

func TestDiscover_SearchError(t *testing.T) {
	source := &fakeSource{searchErr: errors.New("quota exceeded")}
	svc := NewTrendingService(source, newFakeCache(), zap.NewNop(), time.Hour)

	_, err := svc.Discover(context.Background(), "morning vlog", 20)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestDiscover_EmptyResults(t *testing.T) {
	source := &fakeSource{searchVideos: []domain.Video{}}
	svc := NewTrendingService(source, newFakeCache(), zap.NewNop(), time.Hour)

	result, err := svc.Discover(context.Background(), "obscure niche", 20)

	require.NoError(t, err)
	assert.Empty(t, result.Videos)
	assert.Empty(t, result.Channels)
}

func TestInvalidate(t *testing.T) {
	source := &fakeSource{searchVideos: searchResults()}
	cache := newFakeCache()
	svc := NewTrendingService(source, cache, zap.NewNop(), time.Hour)

	_, err := svc.Discover(context.Background(), "morning vlog", 20)
	require.NoError(t, err)
	require.Contains(t, cache.entries, "trending:morning vlog")

	require.NoError(t, svc.Invalidate(context.Background(), "morning vlog"))
	assert.NotContains(t, cache.entries, "trending:morning vlog")
}
