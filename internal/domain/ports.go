package domain

import (
	"context"
	"time"
)

// VideoSource defines the interface for the external video/channel data
// source. Implementations: internal/infra/youtube/client.go
type VideoSource interface {
	// FetchChannel retrieves channel metadata by channel ID.
	// Returns nil (no error) when the channel does not exist.
	FetchChannel(ctx context.Context, channelID string) (*Channel, error)

	// FetchVideos retrieves the most recent videos from a channel's uploads
	// playlist, up to maxResults.
	FetchVideos(ctx context.Context, uploadsPlaylistID string, maxResults int) ([]Video, error)

	// SearchVideos finds candidate videos for a niche query, with view and
	// engagement statistics attached where available.
	SearchVideos(ctx context.Context, query string, maxResults int) ([]Video, error)
}

// Cache defines the interface for caching operations.
// Implementations: internal/infra/redis/cache.go
type Cache interface {
	// Get retrieves a value by key. Returns nil if not found.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value by key.
	Delete(ctx context.Context, key string) error

	// Clear removes all cached values.
	Clear(ctx context.Context) error
}
