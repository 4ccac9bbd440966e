package youtube

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testBaseURL = "https://yt.example.com/v3"

func newTestClient() *Client {
	cfg := ClientConfig{
		BaseURL: testBaseURL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
		Retry: RetryConfig{
			MaxAttempts: 3,
			WaitTime:    100 * time.Millisecond,
			MaxWaitTime: 500 * time.Millisecond,
		},
		CB: CBConfig{
			MaxRequests:  5,
			Interval:     60 * time.Second,
			Timeout:      15 * time.Second,
			FailureRatio: 0.6,
		},
	}
	client := New(cfg, zap.NewNop())

	// Activate httpmock for this client's HTTP transport
	httpmock.ActivateNonDefault(client.client.GetClient())

	return client
}

func mockChannelResponse() channelListResponse {
	return channelListResponse{
		Items: []channelItem{
			{
				ID: "UC123",
				Snippet: channelSnippet{
					Title:       "Gopher Vlogs",
					CustomURL:   "@gophervlogs",
					Description: "Weekly vlogs",
					PublishedAt: "2020-01-01T00:00:00Z",
				},
				Statistics: channelStatistics{
					SubscriberCount: "15000",
					ViewCount:       "2500000",
					VideoCount:      "120",
				},
				ContentDetails: channelContentDetails{
					RelatedPlaylists: struct {
						Uploads string `json:"uploads"`
					}{Uploads: "UU123"},
				},
			},
		},
	}
}

func TestFetchChannel_Success(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testBaseURL+channelsEndpoint,
		httpmock.NewJsonResponderOrPanic(200, mockChannelResponse()))

	client := newTestClient()
	channel, err := client.FetchChannel(context.Background(), "UC123")

	require.NoError(t, err)
	require.NotNil(t, channel)
	assert.Equal(t, "UC123", channel.ChannelID)
	assert.Equal(t, "Gopher Vlogs", channel.Name)
	assert.Equal(t, "@gophervlogs", channel.Handle)
	assert.Equal(t, 15000, channel.Subscribers)
	assert.Equal(t, 2500000, channel.TotalViews)
	assert.Equal(t, 120, channel.TotalVideos)
	assert.Equal(t, "UU123", channel.UploadsPlaylistID)
}

func TestFetchChannel_NotFound(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testBaseURL+channelsEndpoint,
		httpmock.NewJsonResponderOrPanic(200, channelListResponse{Items: []channelItem{}}))

	client := newTestClient()
	channel, err := client.FetchChannel(context.Background(), "UCmissing")

	require.NoError(t, err)
	assert.Nil(t, channel)
}

func TestFetchChannel_EmptyID(t *testing.T) {
	client := newTestClient()
	defer httpmock.DeactivateAndReset()

	_, err := client.FetchChannel(context.Background(), "")
	require.Error(t, err)
}

func TestFetchChannel_QuotaExceeded(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testBaseURL+channelsEndpoint,
		httpmock.NewStringResponder(403, `{"error":{"reason":"quotaExceeded"}}`))

	client := newTestClient()
	channel, err := client.FetchChannel(context.Background(), "UC123")

	require.Error(t, err)
	assert.Nil(t, channel)
	assert.Contains(t, err.Error(), "quota exceeded or forbidden")
}

func TestFetchVideos_Success(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	playlist := playlistItemsResponse{Items: make([]playlistItem, 2)}
	playlist.Items[0].ContentDetails.VideoID = "vid-1"
	playlist.Items[1].ContentDetails.VideoID = "vid-2"

	details := videoListResponse{
		Items: []videoItem{
			{
				ID: "vid-1",
				Snippet: videoSnippet{
					Title:        "How I Edit",
					PublishedAt:  "2024-06-01T10:00:00Z",
					ChannelID:    "UC123",
					ChannelTitle: "Gopher Vlogs",
				},
				Statistics: videoStatistics{ViewCount: "10000", LikeCount: "450", CommentCount: "50"},
			},
			{
				ID: "vid-2",
				Snippet: videoSnippet{
					Title:       "", // becomes Untitled
					PublishedAt: "2024-06-08T10:00:00Z",
				},
				Statistics: videoStatistics{ViewCount: "0", LikeCount: "0", CommentCount: "0"},
			},
		},
	}

	httpmock.RegisterResponder("GET", testBaseURL+playlistItemsEndpoint,
		httpmock.NewJsonResponderOrPanic(200, playlist))
	httpmock.RegisterResponder("GET", testBaseURL+videosEndpoint,
		httpmock.NewJsonResponderOrPanic(200, details))

	client := newTestClient()
	videos, err := client.FetchVideos(context.Background(), "UU123", 20)

	require.NoError(t, err)
	require.Len(t, videos, 2)

	assert.Equal(t, "vid-1", videos[0].ID)
	assert.Equal(t, "How I Edit", videos[0].Title)
	assert.Equal(t, 10000, videos[0].Views)
	assert.Equal(t, 450, videos[0].Likes)
	assert.Equal(t, 50, videos[0].Comments)
	// (450+50)/10000*100 = 5.0
	assert.Equal(t, 5.0, videos[0].EngagementRate)

	assert.Equal(t, "Untitled", videos[1].Title)
	assert.Equal(t, 0.0, videos[1].EngagementRate)
}

func TestFetchVideos_EmptyPlaylist(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testBaseURL+playlistItemsEndpoint,
		httpmock.NewJsonResponderOrPanic(200, playlistItemsResponse{}))

	client := newTestClient()
	videos, err := client.FetchVideos(context.Background(), "UU123", 20)

	require.NoError(t, err)
	assert.Empty(t, videos)

	// No second request should be made without video IDs.
	info := httpmock.GetCallCountInfo()
	assert.Zero(t, info["GET "+testBaseURL+videosEndpoint])
}

func TestFetchVideos_CapsMaxResults(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testBaseURL+playlistItemsEndpoint,
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "50", req.URL.Query().Get("maxResults"))
			return httpmock.NewJsonResponse(200, playlistItemsResponse{})
		})

	client := newTestClient()
	_, err := client.FetchVideos(context.Background(), "UU123", 200)
	require.NoError(t, err)
}

func TestSearchVideos_Success(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	search := searchListResponse{Items: make([]searchItem, 2)}
	search.Items[0].ID.Kind = "youtube#video"
	search.Items[0].ID.VideoID = "vid-1"
	search.Items[0].Snippet = videoSnippet{
		Title:        "Morning Routine",
		PublishedAt:  "2024-06-10T08:00:00Z",
		ChannelID:    "UC-a",
		ChannelTitle: "Channel A",
	}
	search.Items[1].ID.Kind = "youtube#channel" // filtered out
	search.Items[1].Snippet = videoSnippet{Title: "A Channel"}

	stats := videoListResponse{
		Items: []videoItem{
			{
				ID:         "vid-1",
				Statistics: videoStatistics{ViewCount: "120000", LikeCount: "5000", CommentCount: "800"},
			},
		},
	}

	httpmock.RegisterResponder("GET", testBaseURL+searchEndpoint,
		httpmock.NewJsonResponderOrPanic(200, search))
	httpmock.RegisterResponder("GET", testBaseURL+videosEndpoint,
		httpmock.NewJsonResponderOrPanic(200, stats))

	client := newTestClient()
	videos, err := client.SearchVideos(context.Background(), "morning vlog", 20)

	require.NoError(t, err)
	require.Len(t, videos, 1)

	assert.Equal(t, "vid-1", videos[0].ID)
	assert.Equal(t, "Channel A", videos[0].ChannelName)
	assert.Equal(t, 120000, videos[0].Views)
	assert.Equal(t, 5000, videos[0].Likes)
	assert.Equal(t, 800, videos[0].Comments)
	// (5000+800)/120000*100 = 4.83
	assert.Equal(t, 4.83, videos[0].EngagementRate)
}

func TestSearchVideos_EnrichmentFailureNonFatal(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	search := searchListResponse{Items: make([]searchItem, 1)}
	search.Items[0].ID.Kind = "youtube#video"
	search.Items[0].ID.VideoID = "vid-1"
	search.Items[0].Snippet = videoSnippet{Title: "Morning Routine"}

	httpmock.RegisterResponder("GET", testBaseURL+searchEndpoint,
		httpmock.NewJsonResponderOrPanic(200, search))
	httpmock.RegisterResponder("GET", testBaseURL+videosEndpoint,
		httpmock.NewStringResponder(404, "not found"))

	client := newTestClient()
	videos, err := client.SearchVideos(context.Background(), "morning vlog", 20)

	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Zero(t, videos[0].Views)
	assert.Zero(t, videos[0].EngagementRate)
}

func TestRetry_ServerErrors(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	callCount := 0
	httpmock.RegisterResponder("GET", testBaseURL+channelsEndpoint,
		func(_ *http.Request) (*http.Response, error) {
			callCount++
			if callCount < 3 {
				return httpmock.NewStringResponse(500, "Server Error"), nil
			}
			return httpmock.NewJsonResponse(200, mockChannelResponse())
		})

	client := newTestClient()
	channel, err := client.FetchChannel(context.Background(), "UC123")

	require.NoError(t, err)
	require.NotNil(t, channel)
	assert.Equal(t, 3, callCount, "should retry twice and succeed on 3rd attempt")
}

func TestCircuitBreaker_OpensAfterFailures(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testBaseURL+channelsEndpoint,
		httpmock.NewStringResponder(500, "Server Error"))

	client := newTestClient()

	// Trip the breaker with repeated failures.
	for i := 0; i < 3; i++ {
		_, err := client.FetchChannel(context.Background(), "UC123")
		require.Error(t, err)
	}

	start := time.Now()
	_, err := client.FetchChannel(context.Background(), "UC123")
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker is open")
	// Open breaker fails fast, no HTTP round trip
	assert.Less(t, elapsed.Milliseconds(), int64(100))
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, 12345, parseCount("12345"))
	assert.Equal(t, 0, parseCount(""))
	assert.Equal(t, 0, parseCount("not-a-number"))
}
