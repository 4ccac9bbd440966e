// Package main is a one-shot CLI that builds a channel report and writes
// the export files: fetch, compute, export.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"yota-analytics/internal/app/service"
	"yota-analytics/internal/config"
	"yota-analytics/internal/export"
	"yota-analytics/internal/infra/youtube"
	"yota-analytics/internal/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	channelID := flag.String("channel", "", "channel ID to analyze (overrides config)")
	outputDir := flag.String("out", "", "output directory (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	if *channelID == "" {
		*channelID = cfg.YouTube.ChannelID
	}
	if *channelID == "" {
		fmt.Fprintln(os.Stderr, "no channel ID: pass -channel or set youtube.channel_id")
		os.Exit(1)
	}
	if *outputDir == "" {
		*outputDir = cfg.Export.OutputDir
	}
	if cfg.YouTube.APIKey == "" {
		fmt.Fprintln(os.Stderr, "youtube api key is not configured (set APP_YOUTUBE_API_KEY)")
		os.Exit(1)
	}

	log, err := logger.New(
		logger.Config{
			Level:  cfg.Logger.Level,
			Format: cfg.Logger.Format,
			Output: cfg.Logger.Output,
		},
		logger.SentryConfig{
			Enabled:     cfg.Sentry.Enabled,
			DSN:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
			SampleRate:  cfg.Sentry.SampleRate,
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	source := youtube.New(
		youtube.ClientConfig{
			BaseURL: cfg.YouTube.BaseURL,
			APIKey:  cfg.YouTube.APIKey,
			Timeout: cfg.YouTube.Timeout,
			Retry: youtube.RetryConfig{
				MaxAttempts: cfg.YouTube.Retry.MaxAttempts,
				WaitTime:    cfg.YouTube.Retry.WaitTime,
				MaxWaitTime: cfg.YouTube.Retry.MaxWaitTime,
			},
			CB: youtube.CBConfig{
				MaxRequests:  cfg.YouTube.CB.MaxRequests,
				Interval:     cfg.YouTube.CB.Interval,
				Timeout:      cfg.YouTube.CB.Timeout,
				FailureRatio: cfg.YouTube.CB.FailureRatio,
			},
		},
		log.Logger,
	)

	svc := service.NewAnalyticsService(source, log.Logger, cfg.YouTube.MaxVideos)

	report, err := svc.BuildReport(context.Background(), *channelID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "report failed:", err)
		os.Exit(1)
	}

	paths, err := export.WriteAll(report, *outputDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "export failed:", err)
		os.Exit(1)
	}

	best := "N/A"
	if report.Insights.BestPerformingVideo != nil {
		best = *report.Insights.BestPerformingVideo
	}

	fmt.Printf("Channel:          %s\n", report.Channel.Name)
	fmt.Printf("Subscribers:      %d\n", report.Channel.Subscribers)
	fmt.Printf("Videos analyzed:  %d\n", len(report.RecentVideos))
	fmt.Println()
	fmt.Printf("Momentum:         %d/100 (%s)\n", report.Insights.MomentumScore, report.Insights.MomentumLabel)
	fmt.Printf("Best upload day:  %s\n", report.Insights.BestUploadDay)
	fmt.Printf("Best video:       %s\n", best)
	fmt.Printf("Avg views/video:  %.0f\n", report.Insights.AvgViewsPerVideo)
	fmt.Printf("Timing:           %s\n", report.Timing.Recommendation)
	fmt.Println()
	fmt.Printf("Audit:            %d/%d checks passed\n", report.Audit.ChecksPassed, report.Audit.ChecksRun)
	for _, issue := range report.Audit.Issues {
		fmt.Printf("  issue: %s\n", issue)
	}
	for _, fix := range report.Audit.Fixes {
		fmt.Printf("  fix:   %s\n", fix)
	}
	fmt.Println()
	fmt.Printf("JSON: %s\n", paths.JSON)
	fmt.Printf("CSV:  %s\n", paths.CSV)
}
