package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wishlist-matching/config"
	"wishlist-matching/config/postgre"
	listingRepo "wishlist-matching/internal/listing/repository/postgre"
	matchRepo "wishlist-matching/internal/match/repository/postgre"
	matchUC "wishlist-matching/internal/match/usecase"
	"wishlist-matching/internal/matching"
	wishlistRepo "wishlist-matching/internal/wishlist/repository/postgre"
	"wishlist-matching/pkg/log"
	"wishlist-matching/pkg/push"
)

// main is the entry point for the notification retry sweeper.
// It periodically re-scans matched-but-unsent rows and re-dispatches
// their notifications. Re-scanning is safe: delivered matches are
// skipped and skipped sends stay queued for the next tick.
//
// Pattern:
//  1. Initialize infra (same as cmd/api/main.go)
//  2. Create the match UseCase with a push sender
//  3. Tick until shutdown
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting notification sweeper...")

	// Infrastructure
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, postgresDB)

	// Push sender. A sweeper without one can only log what it would
	// retry, so require a provider here.
	var sender push.Sender
	switch cfg.Push.Provider {
	case "expo":
		sender = push.NewExpo()
	case "fcm":
		fcmClient, fcmErr := push.NewFCMFromCredentialsFile(ctx, cfg.Push.FCMCredentialsPath, cfg.Push.FCMProjectID)
		if fcmErr != nil {
			logger.Error(ctx, "Failed to initialize FCM: ", fcmErr)
			return
		}
		sender = fcmClient
	default:
		logger.Errorf(ctx, "Unknown push provider %q", cfg.Push.Provider)
		return
	}

	// UseCase. The sweeper never evaluates pairs, so the engine runs
	// without a verifier.
	engine := matching.NewEngine(matching.Config{Stopwords: cfg.Matching.Stopwords}, nil, logger)
	uc := matchUC.New(
		logger,
		matchRepo.New(postgresDB, logger),
		wishlistRepo.New(postgresDB, logger),
		listingRepo.New(postgresDB, logger),
		engine,
		sender,
		cfg.Matching.MaxWorkers,
	)

	interval := cfg.Sweeper.Interval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	logger.Infof(ctx, "Sweeping every %s", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		out, err := uc.SweepUnsent(ctx)
		if err != nil {
			logger.Errorf(ctx, "Sweep failed: %v", err)
		} else if out.Scanned > 0 {
			logger.Infof(ctx, "Sweep done: scanned=%d sent=%d", out.Scanned, out.Sent)
		}

		select {
		case <-ctx.Done():
			logger.Info(ctx, "Sweeper stopped gracefully")
			return
		case <-ticker.C:
		}
	}
}
