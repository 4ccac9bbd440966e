package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yota-analytics/internal/domain"
)

func sampleReport() *domain.Report {
	best := "Test Video"
	return &domain.Report{
		Channel: domain.Channel{
			ChannelID:   "UC123",
			Name:        "Test Channel",
			Subscribers: 1000,
			TotalViews:  50000,
			TotalVideos: 42,
		},
		RecentVideos: []domain.Video{
			{ID: "vid-1", Title: "Test Video", Views: 500, PublishedAt: "2024-06-01T10:00:00Z"},
			{ID: "vid-2", Title: "Another One", Views: 300, PublishedAt: "2024-06-08T10:00:00Z"},
		},
		Insights: domain.InsightSummary{
			AvgViewsPerVideo:    400.0,
			AvgEngagementRate:   4.5,
			BestPerformingVideo: &best,
			BestUploadDay:       "Saturday",
			UploadConsistency:   "2.0 videos/week",
			MomentumScore:       75,
			MomentumLabel:       "Growing nicely",
		},
		GeneratedAt: "2024-06-15T12:00:00Z",
	}
}

func TestWriteJSON(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteJSON(sampleReport(), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "analytics.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded domain.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Test Channel", decoded.Channel.Name)
	assert.Equal(t, 75, decoded.Insights.MomentumScore)
	assert.Len(t, decoded.RecentVideos, 2)

	// Indented output.
	assert.Contains(t, string(data), "\n  \"channel\"")
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteCSV(sampleReport(), dir)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	// Header + channel + 4 insights + 2 videos.
	require.Len(t, rows, 8)

	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, []string{"channel", "Test Channel", "", "1000", "50000", "42"}, rows[1])
	assert.Equal(t, []string{"insights", "Momentum Score", "75", "", "", ""}, rows[2])
	assert.Equal(t, []string{"insights", "Momentum Label", "Growing nicely", "", "", ""}, rows[3])
	assert.Equal(t, []string{"insights", "Best Upload Day", "Saturday", "", "", ""}, rows[4])
	assert.Equal(t, []string{"insights", "Avg Views/Video", "400", "", "", ""}, rows[5])
	assert.Equal(t, []string{"video", "Test Video", "500", "", "", ""}, rows[6])
	assert.Equal(t, []string{"video", "Another One", "300", "", "", ""}, rows[7])
}

func TestWriteAll(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "out")

	paths, err := WriteAll(sampleReport(), nested)
	require.NoError(t, err)

	assert.FileExists(t, paths.JSON)
	assert.FileExists(t, paths.CSV)
}
