// Package youtube implements the YouTube Data API v3 client.
package youtube

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"yota-analytics/internal/domain"
)

// API paths under the Data API v3 base URL.
const (
	channelsEndpoint      = "/channels"
	playlistItemsEndpoint = "/playlistItems"
	videosEndpoint        = "/videos"
	searchEndpoint        = "/search"
)

// maxPageSize is the Data API's hard cap on maxResults per request.
const maxPageSize = 50

// ClientConfig holds configuration for the YouTube API client.
type ClientConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Retry   RetryConfig
	CB      CBConfig
}

// RetryConfig holds retry configuration.
type RetryConfig struct {
	MaxAttempts int
	WaitTime    time.Duration
	MaxWaitTime time.Duration
}

// CBConfig holds circuit breaker configuration.
type CBConfig struct {
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	FailureRatio float64
}

// Client implements domain.VideoSource against the YouTube Data API.
type Client struct {
	client *resty.Client
	cb     *gobreaker.CircuitBreaker[*resty.Response]
	logger *zap.Logger
}

// New creates a new YouTube API client.
func New(cfg ClientConfig, logger *zap.Logger) *Client {
	return &Client{
		client: newRestyClient(cfg),
		cb:     newCircuitBreaker("youtube", cfg.CB),
		logger: logger,
	}
}

func newRestyClient(cfg ClientConfig) *resty.Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetQueryParam("key", cfg.APIKey).
		SetRetryCount(cfg.Retry.MaxAttempts).
		SetRetryWaitTime(cfg.Retry.WaitTime).
		SetRetryMaxWaitTime(cfg.Retry.MaxWaitTime).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// Retry on network errors or 5xx status codes
			if err != nil {
				return true
			}

			return r.StatusCode() >= 500
		})

	return client
}

func newCircuitBreaker(name string, cfg CBConfig) *gobreaker.CircuitBreaker[*resty.Response] {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)

			return counts.Requests >= 3 && failureRatio >= cfg.FailureRatio
		},
	}

	return gobreaker.NewCircuitBreaker[*resty.Response](settings)
}

// get performs one API call through the circuit breaker, decoding the
// response body into result. 403 means quota exhaustion or a key problem
// and is surfaced as its own error.
func (c *Client) get(ctx context.Context, endpoint string, params map[string]string, result any) error {
	_, err := c.cb.Execute(func() (*resty.Response, error) {
		r, err := c.client.R().
			SetContext(ctx).
			SetQueryParams(params).
			SetResult(result).
			Get(endpoint)
		if err != nil {
			return nil, err
		}
		if r.StatusCode() == 403 {
			return nil, fmt.Errorf("quota exceeded or forbidden: %s", r.String())
		}
		if r.IsError() {
			return nil, fmt.Errorf("youtube api returned status %d", r.StatusCode())
		}

		return r, nil
	})

	if err != nil {
		c.logger.Warn("youtube api call failed",
			zap.String("endpoint", endpoint),
			zap.Error(err),
			zap.String("state", c.cb.State().String()),
		)

		return fmt.Errorf("calling youtube %s: %w", endpoint, err)
	}

	return nil
}

// FetchChannel retrieves channel metadata by channel ID.
// Returns nil without error when the channel does not exist.
func (c *Client) FetchChannel(ctx context.Context, channelID string) (*domain.Channel, error) {
	if channelID == "" {
		return nil, fmt.Errorf("channel id is required")
	}

	var result channelListResponse
	err := c.get(ctx, channelsEndpoint, map[string]string{
		"id":   channelID,
		"part": "snippet,statistics,contentDetails",
	}, &result)
	if err != nil {
		return nil, err
	}

	if len(result.Items) == 0 {
		return nil, nil
	}

	channel := result.Items[0].ToDomain(channelID)

	c.logger.Info("channel fetched",
		zap.String("channel_id", channelID),
		zap.String("name", channel.Name),
	)

	return channel, nil
}

// FetchVideos retrieves the most recent videos from a channel's uploads
// playlist, up to maxResults.
func (c *Client) FetchVideos(ctx context.Context, uploadsPlaylistID string, maxResults int) ([]domain.Video, error) {
	if uploadsPlaylistID == "" {
		return nil, fmt.Errorf("uploads playlist id is required")
	}
	if maxResults > maxPageSize {
		maxResults = maxPageSize
	}

	var playlist playlistItemsResponse
	err := c.get(ctx, playlistItemsEndpoint, map[string]string{
		"playlistId": uploadsPlaylistID,
		"part":       "contentDetails",
		"maxResults": strconv.Itoa(maxResults),
	}, &playlist)
	if err != nil {
		return nil, err
	}

	videoIDs := make([]string, 0, len(playlist.Items))
	for _, item := range playlist.Items {
		videoIDs = append(videoIDs, item.ContentDetails.VideoID)
	}
	if len(videoIDs) == 0 {
		return []domain.Video{}, nil
	}

	var details videoListResponse
	err = c.get(ctx, videosEndpoint, map[string]string{
		"id":   strings.Join(videoIDs, ","),
		"part": "snippet,statistics",
	}, &details)
	if err != nil {
		return nil, err
	}

	videos := make([]domain.Video, 0, len(details.Items))
	for _, item := range details.Items {
		videos = append(videos, item.ToDomain())
	}

	c.logger.Info("videos fetched",
		zap.String("playlist_id", uploadsPlaylistID),
		zap.Int("count", len(videos)),
	)

	return videos, nil
}

// SearchVideos finds videos matching a niche query, enriched with view and
// engagement statistics. Enrichment failures are non-fatal; affected videos
// keep zero metrics.
func (c *Client) SearchVideos(ctx context.Context, query string, maxResults int) ([]domain.Video, error) {
	if query == "" {
		return nil, fmt.Errorf("query is required")
	}
	if maxResults > maxPageSize {
		maxResults = maxPageSize
	}

	var result searchListResponse
	err := c.get(ctx, searchEndpoint, map[string]string{
		"q":          query,
		"part":       "snippet",
		"type":       "video",
		"order":      "relevance",
		"maxResults": strconv.Itoa(maxResults),
	}, &result)
	if err != nil {
		return nil, err
	}

	videos := make([]domain.Video, 0, len(result.Items))
	for _, item := range result.Items {
		if item.ID.Kind != "youtube#video" {
			continue
		}
		videos = append(videos, item.ToDomain())
	}
	if len(videos) == 0 {
		return videos, nil
	}

	if err := c.enrichVideos(ctx, videos); err != nil {
		c.logger.Warn("could not enrich search results", zap.Error(err))
	}

	c.logger.Info("search completed",
		zap.String("query", query),
		zap.Int("count", len(videos)),
	)

	return videos, nil
}

// enrichVideos attaches view, like and comment counts to search results and
// recomputes their engagement rates.
func (c *Client) enrichVideos(ctx context.Context, videos []domain.Video) error {
	videoIDs := make([]string, 0, len(videos))
	for _, v := range videos {
		videoIDs = append(videoIDs, v.ID)
	}

	var details videoListResponse
	err := c.get(ctx, videosEndpoint, map[string]string{
		"id":   strings.Join(videoIDs, ","),
		"part": "statistics",
	}, &details)
	if err != nil {
		return err
	}

	statsByID := make(map[string]videoStatistics, len(details.Items))
	for _, item := range details.Items {
		statsByID[item.ID] = item.Statistics
	}

	for i := range videos {
		stats, ok := statsByID[videos[i].ID]
		if !ok {
			continue
		}
		videos[i].Views = parseCount(stats.ViewCount)
		videos[i].Likes = parseCount(stats.LikeCount)
		videos[i].Comments = parseCount(stats.CommentCount)
		videos[i].EngagementRate = engagementRate(videos[i].Views, videos[i].Likes, videos[i].Comments)
	}

	return nil
}

// HealthCheck verifies the API is reachable with the configured key. Uses a
// minimal channels lookup (1 quota unit).
func (c *Client) HealthCheck(ctx context.Context) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"part": "id", "id": "UC_x5XG1OV2P6uZZ5FSM9Ttw"}).
		Get(channelsEndpoint)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("health check returned status %d", resp.StatusCode())
	}

	return nil
}
