// Package main is the entry point for the yota-analytics API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"yota-analytics/internal/app/service"
	"yota-analytics/internal/config"
	rediscache "yota-analytics/internal/infra/redis"
	"yota-analytics/internal/infra/youtube"
	"yota-analytics/internal/job"
	"yota-analytics/internal/logger"
	"yota-analytics/internal/transport/httpserver"
	"yota-analytics/internal/validator"
	"yota-analytics/pkg/locker"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger
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
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting yota-analytics",
		zap.String("env", cfg.App.Env),
		zap.Int("port", cfg.App.Port),
	)

	if cfg.YouTube.APIKey == "" {
		log.Fatal("youtube api key is not configured (set APP_YOUTUBE_API_KEY)")
	}

	// Create YouTube API client
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

	// Connect to Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Ping Redis to verify connection
	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("failed to connect to Redis", zap.Error(err))
	}
	defer func() { _ = redisClient.Close() }()
	log.Info("connected to Redis",
		zap.String("addr", cfg.Redis.Addr()),
	)

	// Create cache implementation
	cache := rediscache.NewCache(redisClient, log.Logger, cfg.Cache.KeyPrefix)

	// Create services
	analyticsSvc := service.NewAnalyticsService(source, log.Logger, cfg.YouTube.MaxVideos)
	trendingSvc := service.NewTrendingService(source, cache, log.Logger, cfg.Cache.TrendingTTL)

	// Create distributed locker
	distLocker := locker.NewRedisLocker(redisClient, log.Logger)

	// Create validator
	v := validator.New()

	// Create HTTP server
	server := httpserver.NewServer(
		httpserver.ServerConfig{
			Port:             cfg.App.Port,
			BodyLimit:        1024 * 1024, // 1MB
			Debug:            cfg.App.Debug,
			ExportDir:        cfg.Export.OutputDir,
			DefaultChannelID: cfg.YouTube.ChannelID,
		},
		analyticsSvc,
		trendingSvc,
		cache,
		redisClient,
		v,
		log.Logger,
	)

	// Start refresh scheduler with distributed locking
	var scheduler *job.RefreshScheduler
	if cfg.Refresh.Enabled && cfg.YouTube.ChannelID != "" {
		scheduler = job.NewRefreshScheduler(
			analyticsSvc,
			job.RefreshConfig{
				ChannelID: cfg.YouTube.ChannelID,
				OutputDir: cfg.Export.OutputDir,
				Interval:  cfg.Refresh.Interval,
				Timeout:   cfg.Refresh.Timeout,
				OnStartup: cfg.Refresh.OnStartup,
			},
			log.Logger,
			distLocker,
		)
		scheduler.Start(cfg.Refresh.OnStartup)
	} else {
		log.Info("refresh scheduler disabled")
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("shutdown signal received")

		if scheduler != nil {
			scheduler.Stop()
		}

		// Shutdown server with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.App.ShutdownWithContext(ctx); err != nil {
			log.Error("server shutdown error", zap.Error(err))
		}
	}()

	// Start server
	if err := server.Start(cfg.App.Port); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
