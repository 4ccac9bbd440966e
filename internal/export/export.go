// Package export writes analytics reports to JSON and CSV files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"yota-analytics/internal/domain"
)

const (
	jsonFilename = "analytics.json"
	csvFilename  = "analytics.csv"
)

// csvHeader is the fixed column set of the flattened CSV. Channel columns
// stay empty on insight and video rows.
var csvHeader = []string{"type", "name", "value", "subscribers", "total_views", "total_videos"}

// Paths holds the written file locations.
type Paths struct {
	JSON string `json:"json"`
	CSV  string `json:"csv"`
}

// WriteAll exports the report to every format and returns the file paths.
// The output directory is created if needed.
func WriteAll(report *domain.Report, outputDir string) (Paths, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Paths{}, fmt.Errorf("creating output dir: %w", err)
	}

	jsonPath, err := WriteJSON(report, outputDir)
	if err != nil {
		return Paths{}, err
	}

	csvPath, err := WriteCSV(report, outputDir)
	if err != nil {
		return Paths{}, err
	}

	return Paths{JSON: jsonPath, CSV: csvPath}, nil
}

// WriteJSON writes the full report as indented JSON.
func WriteJSON(report *domain.Report, outputDir string) (string, error) {
	path := filepath.Join(outputDir, jsonFilename)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	return path, nil
}

// WriteCSV writes a flattened summary: one channel row, one row per headline
// insight, one row per recent video.
func WriteCSV(report *domain.Report, outputDir string) (string, error) {
	path := filepath.Join(outputDir, csvFilename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	rows := [][]string{csvHeader}
	rows = append(rows, []string{
		"channel",
		report.Channel.Name,
		"",
		strconv.Itoa(report.Channel.Subscribers),
		strconv.Itoa(report.Channel.TotalViews),
		strconv.Itoa(report.Channel.TotalVideos),
	})

	insights := report.Insights
	rows = append(rows,
		insightRow("Momentum Score", strconv.Itoa(insights.MomentumScore)),
		insightRow("Momentum Label", insights.MomentumLabel),
		insightRow("Best Upload Day", insights.BestUploadDay),
		insightRow("Avg Views/Video", formatFloat(insights.AvgViewsPerVideo)),
	)

	for _, v := range report.RecentVideos {
		rows = append(rows, []string{"video", v.Title, strconv.Itoa(v.Views), "", "", ""})
	}

	if err := w.WriteAll(rows); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	return path, nil
}

func insightRow(name, value string) []string {
	return []string{"insights", name, value, "", "", ""}
}

// formatFloat renders a float without trailing zeros, matching how the
// values appear in the JSON export.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
