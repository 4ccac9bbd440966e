package domain

import (
	"math"
	"testing"
)

const floatTolerance = 1e-9

func viewsOnly(views ...int) []Video {
	videos := make([]Video, len(views))
	for i, v := range views {
		videos[i] = Video{Views: v}
	}
	return videos
}

func TestComputeBaseline(t *testing.T) {
	tests := []struct {
		name     string
		videos   []Video
		expected Baseline
	}{
		{
			name:     "empty input returns all zeros",
			videos:   nil,
			expected: Baseline{},
		},
		{
			name:   "single video has zero std dev",
			videos: viewsOnly(1000),
			expected: Baseline{
				MedianViews: 1000,
				MeanViews:   1000,
				StdDev:      0,
				TotalVideos: 1,
			},
		},
		{
			name:   "odd count takes middle value",
			videos: viewsOnly(100, 300, 200),
			expected: Baseline{
				MedianViews: 200,
				MeanViews:   200,
				StdDev:      100, // sample std dev of {100,200,300}
				TotalVideos: 3,
			},
		},
		{
			name:   "even count averages the middle pair",
			videos: viewsOnly(100, 200, 300, 400),
			// median = (200+300)/2 = 250, mean = 250
			expected: Baseline{
				MedianViews: 250,
				MeanViews:   250,
				StdDev:      129.1, // sqrt(50000/3) = 129.099... → 129.1
				TotalVideos: 4,
			},
		},
		{
			name:   "mean truncates to integer",
			videos: viewsOnly(1, 2),
			expected: Baseline{
				MedianViews: 1, // (1+2)/2 = 1.5 → 1
				MeanViews:   1,
				StdDev:      0.71, // sqrt(0.5) = 0.7071 → 0.71
				TotalVideos: 2,
			},
		},
		{
			name:   "all-zero views",
			videos: viewsOnly(0, 0, 0),
			expected: Baseline{
				MedianViews: 0,
				MeanViews:   0,
				StdDev:      0,
				TotalVideos: 3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeBaseline(tt.videos)
			if got.MedianViews != tt.expected.MedianViews {
				t.Errorf("MedianViews = %d, want %d", got.MedianViews, tt.expected.MedianViews)
			}
			if got.MeanViews != tt.expected.MeanViews {
				t.Errorf("MeanViews = %d, want %d", got.MeanViews, tt.expected.MeanViews)
			}
			if math.Abs(got.StdDev-tt.expected.StdDev) > floatTolerance {
				t.Errorf("StdDev = %v, want %v", got.StdDev, tt.expected.StdDev)
			}
			if got.TotalVideos != tt.expected.TotalVideos {
				t.Errorf("TotalVideos = %d, want %d", got.TotalVideos, tt.expected.TotalVideos)
			}
		})
	}
}

func TestComputeBaseline_DoesNotMutateInput(t *testing.T) {
	videos := viewsOnly(300, 100, 200)
	ComputeBaseline(videos)

	if videos[0].Views != 300 || videos[1].Views != 100 || videos[2].Views != 200 {
		t.Error("ComputeBaseline must not reorder or mutate the caller's videos")
	}
}
