package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/announcer/internal/audio"
	"github.com/KirkDiggler/announcer/internal/audio/device"
	"github.com/KirkDiggler/announcer/internal/common/clock"
	"github.com/KirkDiggler/announcer/internal/common/uuid"
	"github.com/KirkDiggler/announcer/internal/config"
	"github.com/KirkDiggler/announcer/internal/cues"
	"github.com/KirkDiggler/announcer/internal/handlers/api"
	"github.com/KirkDiggler/announcer/internal/handlers/discord"
	"github.com/KirkDiggler/announcer/internal/repositories/player"
	"github.com/KirkDiggler/announcer/internal/services/announcer"
	"github.com/KirkDiggler/announcer/internal/services/messaging"
	"github.com/KirkDiggler/announcer/internal/services/tracker"
	"github.com/KirkDiggler/announcer/internal/streak"
	"github.com/redis/go-redis/v9"
)

// shutdownTimeout bounds how long in-flight requests get after a signal
const shutdownTimeout = 15 * time.Second

// run wires the components and serves until ctx is cancelled
func run(ctx context.Context, cfg *config.Config, mute bool, logger *slog.Logger) error {
	registry, err := cues.New(&cues.Config{
		OverridesFile: cfg.CuesFile,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("failed to load cues: %w", err)
	}

	var (
		announcerSvc announcer.Service = announcer.NoopService{}
		dispatcher   interface{ Wait() }
	)
	if mute {
		logger.Info("audio muted, cues will only be logged")
	} else {
		output, err := device.Open(&device.Config{
			Name:      cfg.Device,
			Policy:    cfg.Overlap,
			MaxVoices: cfg.MaxVoices,
			Logger:    logger,
		})
		if err != nil {
			return fmt.Errorf("failed to open audio output: %w", err)
		}
		defer func() {
			if err := output.Close(); err != nil {
				logger.Warn("failed to close audio output", "error", err)
			}
		}()

		svc, err := announcer.New(&announcer.Config{
			Registry: registry,
			Decoder:  audio.NewDecoder(),
			Sink:     output.Mixer(),
			Logger:   logger,
		})
		if err != nil {
			return fmt.Errorf("failed to create announcer: %w", err)
		}
		svc.Preload(registry.Cues())

		announcerSvc = svc
		dispatcher = svc
	}

	playerRepo, closeRepo, err := newPlayerRepo(cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	var notifiers []tracker.Notifier
	if cfg.DiscordEnabled() {
		relay, err := discord.New(&discord.Config{
			Token:     cfg.DiscordToken,
			ChannelID: cfg.DiscordChannelID,
			Logger:    logger,
		})
		if err != nil {
			return fmt.Errorf("failed to create Discord relay: %w", err)
		}
		notifiers = append(notifiers, relay)
		logger.Info("relaying announcements to Discord", "channel_id", cfg.DiscordChannelID)
	}

	trackerSvc, err := tracker.New(&tracker.Config{
		PlayerRepo: playerRepo,
		Classifier: streak.New(&streak.Config{
			AnnounceSessionStart: cfg.SessionStartCue,
		}),
		Announcer:        announcerSvc,
		Clock:            clock.New(),
		MessagingService: messagingSvc,
		Notifiers:        notifiers,
		Logger:           logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create tracker: %w", err)
	}

	server, err := api.New(&api.Config{
		Addr:           cfg.Addr,
		RequestTimeout: cfg.RequestTimeout,
		Tracker:        trackerSvc,
		UUIDGenerator:  uuid.New(),
		Logger:         logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	served := make(chan error, 1)
	go func() {
		served <- server.Start()
	}()

	select {
	case err := <-served:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		logger.Warn("server did not stop cleanly", "error", err)
	}
	if err := <-served; err != nil {
		logger.Warn("server exited with error", "error", err)
	}

	trackerSvc.Wait()
	if dispatcher != nil {
		dispatcher.Wait()
	}

	logger.Info("announcer has been shut down")
	return nil
}

// newPlayerRepo returns the Redis store when an address is configured and the
// in-memory store otherwise
func newPlayerRepo(cfg *config.Config, logger *slog.Logger) (player.Repository, func(), error) {
	if cfg.RedisAddr == "" {
		return player.NewMemory(), func() {}, nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	closeClient := func() {
		if err := redisClient.Close(); err != nil && !errors.Is(err, redis.ErrClosed) {
			logger.Warn("failed to close Redis client", "error", err)
		}
	}

	repo, err := player.NewRedis(&player.Config{
		RedisClient: redisClient,
		Key:         cfg.RedisKey,
	})
	if err != nil {
		closeClient()
		return nil, nil, fmt.Errorf("failed to create player repository: %w", err)
	}

	logger.Info("player record kept in Redis", "addr", cfg.RedisAddr, "key", cfg.RedisKey)
	return repo, closeClient, nil
}
