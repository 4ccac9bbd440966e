package domain

import (
	"math"
	"reflect"
	"testing"
)

func TestAvgViews(t *testing.T) {
	tests := []struct {
		name   string
		videos []Video
		want   float64
	}{
		{"empty", nil, 0.0},
		{"two videos", []Video{{Views: 1000}, {Views: 1500}}, 1250.0},
		{"rounds to two decimals", []Video{{Views: 100}, {Views: 101}, {Views: 101}}, 100.67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AvgViews(tt.videos); math.Abs(got-tt.want) > floatTolerance {
				t.Errorf("AvgViews() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAvgEngagement(t *testing.T) {
	tests := []struct {
		name   string
		videos []Video
		want   float64
	}{
		{"empty", nil, 0.0},
		{"two videos", []Video{{EngagementRate: 5.0}, {EngagementRate: 6.0}}, 5.5},
		{"rounds to two decimals", []Video{{EngagementRate: 1.111}, {EngagementRate: 2.222}}, 1.67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AvgEngagement(tt.videos); math.Abs(got-tt.want) > floatTolerance {
				t.Errorf("AvgEngagement() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBestVideo(t *testing.T) {
	t.Run("nil on empty input", func(t *testing.T) {
		if got := BestVideo(nil); got != nil {
			t.Errorf("BestVideo() = %v, want nil", *got)
		}
	})

	t.Run("picks most viewed", func(t *testing.T) {
		videos := []Video{
			{Title: "low", Views: 100},
			{Title: "high", Views: 900},
			{Title: "mid", Views: 500},
		}
		got := BestVideo(videos)
		if got == nil || *got != "high" {
			t.Errorf("BestVideo() = %v, want high", got)
		}
	})

	t.Run("untitled winner becomes Unknown", func(t *testing.T) {
		got := BestVideo([]Video{{Title: "", Views: 900}, {Title: "named", Views: 100}})
		if got == nil || *got != "Unknown" {
			t.Errorf("BestVideo() = %v, want Unknown", got)
		}
	})
}

func TestBestUploadDay(t *testing.T) {
	tests := []struct {
		name   string
		videos []Video
		want   string
	}{
		{"empty", nil, "N/A"},
		{"all unparseable", []Video{{PublishedAt: "bad"}, {PublishedAt: ""}}, "N/A"},
		{
			"most frequent weekday wins",
			[]Video{
				{PublishedAt: "2024-06-05T10:00:00Z"}, // Wednesday
				{PublishedAt: "2024-06-12T10:00:00Z"}, // Wednesday
				{PublishedAt: "2024-06-03T10:00:00Z"}, // Monday
			},
			"Wednesday",
		},
		{
			"ties break toward earlier calendar day",
			[]Video{
				{PublishedAt: "2024-06-07T10:00:00Z"}, // Friday
				{PublishedAt: "2024-06-04T10:00:00Z"}, // Tuesday
			},
			"Tuesday",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BestUploadDay(tt.videos); got != tt.want {
				t.Errorf("BestUploadDay() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUploadConsistency(t *testing.T) {
	tests := []struct {
		name   string
		videos []Video
		want   string
	}{
		{"empty", nil, "N/A"},
		{"single video", []Video{{PublishedAt: "2024-06-01T10:00:00Z"}}, "N/A"},
		{
			"fewer than two parseable dates",
			[]Video{
				{PublishedAt: "2024-06-01T10:00:00Z"},
				{PublishedAt: "not-a-date"},
			},
			"N/A",
		},
		{
			// 3 videos over 14 days = 2 weeks -> 1.5/week
			"weekly cadence",
			[]Video{
				{PublishedAt: "2024-06-01T10:00:00Z"},
				{PublishedAt: "2024-06-08T10:00:00Z"},
				{PublishedAt: "2024-06-15T10:00:00Z"},
			},
			"1.5 videos/week",
		},
		{
			// Span under a week clamps to 1 week.
			"burst of uploads",
			[]Video{
				{PublishedAt: "2024-06-01T10:00:00Z"},
				{PublishedAt: "2024-06-02T10:00:00Z"},
				{PublishedAt: "2024-06-03T10:00:00Z"},
			},
			"3.0 videos/week",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UploadConsistency(tt.videos); got != tt.want {
				t.Errorf("UploadConsistency() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComputeInsights(t *testing.T) {
	videos := []Video{
		{Title: "First", Views: 1000, EngagementRate: 5.0, PublishedAt: "2024-06-03T10:00:00Z"},
		{Title: "Second", Views: 1500, EngagementRate: 6.0, PublishedAt: "2024-06-10T10:00:00Z"},
	}

	insights := ComputeInsights(videos)

	if insights.AvgViewsPerVideo != 1250.0 {
		t.Errorf("AvgViewsPerVideo = %v, want 1250.0", insights.AvgViewsPerVideo)
	}
	if insights.AvgEngagementRate != 5.5 {
		t.Errorf("AvgEngagementRate = %v, want 5.5", insights.AvgEngagementRate)
	}
	if insights.BestPerformingVideo == nil || *insights.BestPerformingVideo != "Second" {
		t.Errorf("BestPerformingVideo = %v, want Second", insights.BestPerformingVideo)
	}
	if insights.BestUploadDay != "Monday" {
		t.Errorf("BestUploadDay = %q, want Monday", insights.BestUploadDay)
	}
	if insights.MomentumLabel != MomentumLabel(insights.MomentumScore) {
		t.Errorf("label %q does not match score %d", insights.MomentumLabel, insights.MomentumScore)
	}

	// Same input must always yield the same summary.
	again := ComputeInsights(videos)
	if !reflect.DeepEqual(insights, again) {
		t.Errorf("ComputeInsights not deterministic: %+v vs %+v", insights, again)
	}
}

func TestComputeInsightsEmpty(t *testing.T) {
	insights := ComputeInsights(nil)

	if insights.AvgViewsPerVideo != 0 || insights.AvgEngagementRate != 0 {
		t.Errorf("averages = %v/%v, want 0/0", insights.AvgViewsPerVideo, insights.AvgEngagementRate)
	}
	if insights.BestPerformingVideo != nil {
		t.Errorf("BestPerformingVideo = %v, want nil", *insights.BestPerformingVideo)
	}
	if insights.BestUploadDay != "N/A" || insights.UploadConsistency != "N/A" {
		t.Errorf("day/consistency = %q/%q, want N/A", insights.BestUploadDay, insights.UploadConsistency)
	}
	if insights.MomentumScore != 50 || insights.MomentumLabel != "Steady pace" {
		t.Errorf("momentum = %d/%q", insights.MomentumScore, insights.MomentumLabel)
	}
}
