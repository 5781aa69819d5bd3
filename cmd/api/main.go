package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wishlist-matching/config"
	"wishlist-matching/config/postgre"
	_ "wishlist-matching/docs" // Swagger docs
	"wishlist-matching/internal/httpserver"
	"wishlist-matching/internal/matching"
	"wishlist-matching/pkg/gemini"
	"wishlist-matching/pkg/log"
	"wishlist-matching/pkg/push"
	"wishlist-matching/pkg/verifier"
)

// @title       Wishlist Matching API
// @description Garage-sale marketplace service: wishlists, listings, and the matching pipeline with push notifications.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting wishlist-matching API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Infrastructure
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, postgresDB)

	// 4. Semantic verifier (optional). Without it the engine degrades
	// to its deterministic rules.
	var v verifier.Verifier
	if cfg.Gemini.APIKey != "" {
		geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
		if cfg.Gemini.Model != "" {
			geminiClient.SetModel(cfg.Gemini.Model)
		}
		v = verifier.NewGemini(geminiClient, verifier.GeminiConfig{
			Timeout:        cfg.Verifier.Timeout,
			CallsPerMinute: cfg.Verifier.CallsPerMinute,
		})
		logger.Info(ctx, "Semantic verifier initialized")
	} else {
		logger.Warn(ctx, "GEMINI_API_KEY missing, matching runs without semantic verification")
	}

	// 5. Push sender (optional)
	sender, err := newPushSender(ctx, cfg)
	if err != nil {
		logger.Warnf(ctx, "Push sender not available: %v", err)
	}
	if sender == nil {
		logger.Warn(ctx, "No push sender configured, notifications stay queued for the sweeper")
	}

	// 6. Decision engine
	engine := matching.NewEngine(matching.Config{Stopwords: cfg.Matching.Stopwords}, v, logger)

	// 7. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  postgresDB,
		InternalKey: cfg.HTTPServer.InternalKey,
		Engine:      engine,
		Sender:      sender,
		Categories:  cfg.Matching.Categories,
		MaxWorkers:  cfg.Matching.MaxWorkers,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// newPushSender builds the configured push sender. Returns nil when
// the provider is unset or its credentials are missing.
func newPushSender(ctx context.Context, cfg *config.Config) (push.Sender, error) {
	switch cfg.Push.Provider {
	case "expo":
		return push.NewExpo(), nil
	case "fcm":
		if cfg.Push.FCMCredentialsPath == "" || cfg.Push.FCMProjectID == "" {
			return nil, fmt.Errorf("fcm provider needs credentials path and project id")
		}
		client, err := push.NewFCMFromCredentialsFile(ctx, cfg.Push.FCMCredentialsPath, cfg.Push.FCMProjectID)
		if err != nil {
			return nil, err
		}
		return client, nil
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown push provider %q", cfg.Push.Provider)
	}
}
