package youtube

import (
	"math"
	"strconv"

	"yota-analytics/internal/domain"
)

// channelListResponse represents the channels.list response.
type channelListResponse struct {
	Items []channelItem `json:"items"`
}

type channelItem struct {
	ID             string                `json:"id"`
	Snippet        channelSnippet        `json:"snippet"`
	Statistics     channelStatistics     `json:"statistics"`
	ContentDetails channelContentDetails `json:"contentDetails"`
}

type channelSnippet struct {
	Title       string `json:"title"`
	CustomURL   string `json:"customUrl"`
	Description string `json:"description"`
	PublishedAt string `json:"publishedAt"`
}

// channelStatistics holds channel counters. The Data API serializes all
// counters as strings.
type channelStatistics struct {
	SubscriberCount string `json:"subscriberCount"`
	ViewCount       string `json:"viewCount"`
	VideoCount      string `json:"videoCount"`
}

type channelContentDetails struct {
	RelatedPlaylists struct {
		Uploads string `json:"uploads"`
	} `json:"relatedPlaylists"`
}

// ToDomain converts a channelItem to domain.Channel.
func (c *channelItem) ToDomain(channelID string) *domain.Channel {
	name := c.Snippet.Title
	if name == "" {
		name = "Unknown"
	}

	return &domain.Channel{
		ChannelID:         channelID,
		Name:              name,
		Handle:            c.Snippet.CustomURL,
		Description:       c.Snippet.Description,
		Subscribers:       parseCount(c.Statistics.SubscriberCount),
		TotalViews:        parseCount(c.Statistics.ViewCount),
		TotalVideos:       parseCount(c.Statistics.VideoCount),
		CreatedAt:         c.Snippet.PublishedAt,
		UploadsPlaylistID: c.ContentDetails.RelatedPlaylists.Uploads,
	}
}

// playlistItemsResponse represents the playlistItems.list response.
type playlistItemsResponse struct {
	Items []playlistItem `json:"items"`
}

type playlistItem struct {
	ContentDetails struct {
		VideoID string `json:"videoId"`
	} `json:"contentDetails"`
}

// videoListResponse represents the videos.list response.
type videoListResponse struct {
	Items []videoItem `json:"items"`
}

type videoItem struct {
	ID         string          `json:"id"`
	Snippet    videoSnippet    `json:"snippet"`
	Statistics videoStatistics `json:"statistics"`
}

type videoSnippet struct {
	Title        string `json:"title"`
	PublishedAt  string `json:"publishedAt"`
	ChannelID    string `json:"channelId"`
	ChannelTitle string `json:"channelTitle"`
}

type videoStatistics struct {
	ViewCount    string `json:"viewCount"`
	LikeCount    string `json:"likeCount"`
	CommentCount string `json:"commentCount"`
}

// ToDomain converts a videoItem to domain.Video with engagement rate
// computed at the source.
func (v *videoItem) ToDomain() domain.Video {
	title := v.Snippet.Title
	if title == "" {
		title = "Untitled"
	}

	views := parseCount(v.Statistics.ViewCount)
	likes := parseCount(v.Statistics.LikeCount)
	comments := parseCount(v.Statistics.CommentCount)

	return domain.Video{
		ID:             v.ID,
		ChannelID:      v.Snippet.ChannelID,
		ChannelName:    v.Snippet.ChannelTitle,
		Title:          title,
		PublishedAt:    v.Snippet.PublishedAt,
		Views:          views,
		Likes:          likes,
		Comments:       comments,
		EngagementRate: engagementRate(views, likes, comments),
	}
}

// searchListResponse represents the search.list response.
type searchListResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	ID struct {
		Kind    string `json:"kind"`
		VideoID string `json:"videoId"`
	} `json:"id"`
	Snippet videoSnippet `json:"snippet"`
}

// ToDomain converts a searchItem to domain.Video. Metrics stay zero until
// enrichment.
func (s *searchItem) ToDomain() domain.Video {
	title := s.Snippet.Title
	if title == "" {
		title = "Untitled"
	}
	channelName := s.Snippet.ChannelTitle
	if channelName == "" {
		channelName = "Unknown"
	}

	return domain.Video{
		ID:          s.ID.VideoID,
		ChannelID:   s.Snippet.ChannelID,
		ChannelName: channelName,
		Title:       title,
		PublishedAt: s.Snippet.PublishedAt,
	}
}

// parseCount converts an API counter string to int, defaulting to 0.
func parseCount(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// engagementRate is (likes+comments)/views*100 rounded to 2 decimals,
// zero when the video has no views.
func engagementRate(views, likes, comments int) float64 {
	if views <= 0 {
		return 0.0
	}
	rate := float64(likes+comments) / float64(views) * 100

	return math.Round(rate*100) / 100
}
