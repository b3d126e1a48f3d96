package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mealmuse/recipechat/backend/config"
	"github.com/mealmuse/recipechat/backend/internal/database"
	"github.com/mealmuse/recipechat/backend/internal/llm"
	"github.com/mealmuse/recipechat/backend/internal/router"
	"github.com/mealmuse/recipechat/backend/internal/server"
	"github.com/mealmuse/recipechat/backend/internal/service"
	"github.com/mealmuse/recipechat/backend/internal/store"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	feedbackStore, err := newFeedbackStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize feedback store: %v", err)
	}

	factory := llm.NewFactory(llm.Config{
		Provider:        cfg.LLMProvider,
		GeminiAPIKey:    cfg.GeminiAPIKey,
		GeminiModel:     cfg.GeminiModel,
		AnthropicAPIKey: cfg.AnthropicAPIKey,
		AnthropicModel:  cfg.AnthropicModel,
		OpenAIAPIKey:    cfg.OpenAIAPIKey,
		OpenAIModel:     cfg.OpenAIModel,
		BedrockRegion:   cfg.AWSRegion,
		BedrockModel:    cfg.BedrockModelID,
	})
	provider, err := factory.CreateProvider(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize LLM provider: %v", err)
	}
	gateway := llm.NewGateway(provider, cfg.LLMMaxAttempts, cfg.RetryBaseDelay())

	chatService := service.NewChatService(feedbackStore, gateway)
	feedbackService := service.NewFeedbackService(feedbackStore)

	digest := service.NewStatsDigest(feedbackStore, cfg.DigestSchedule)
	if err := digest.Start(); err != nil {
		log.Fatalf("Failed to start feedback digest: %v", err)
	}
	defer digest.Stop()

	engine := router.SetupRouter(chatService, feedbackService, cfg.CORSAllowedOrigins)
	srv := server.New(cfg, engine)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or error
	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	// Gracefully shutdown the server
	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}

// newFeedbackStore builds the configured feedback store backend.
func newFeedbackStore(cfg *config.Config) (store.FeedbackStore, error) {
	switch cfg.StoreBackend {
	case config.StoreBackendFile:
		log.Printf("Using file feedback store (%s, %s)", cfg.FeedbackSummaryPath, cfg.FeedbackLogPath)
		return store.NewFileStore(cfg.FeedbackSummaryPath, cfg.FeedbackLogPath), nil

	case config.StoreBackendGorm:
		db, err := database.New(cfg)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(db); err != nil {
			return nil, err
		}
		return store.NewGormStore(db), nil

	case config.StoreBackendRedis:
		client, err := database.NewRedisClient(cfg)
		if err != nil {
			return nil, err
		}
		return store.NewRedisStore(client), nil

	default:
		return nil, fmt.Errorf("unsupported store backend: %s", cfg.StoreBackend)
	}
}
