package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/attriflow/backend/config"
	httpDelivery "github.com/attriflow/backend/internal/delivery/http"
	"github.com/attriflow/backend/internal/infrastructure/cache"
	"github.com/attriflow/backend/internal/infrastructure/completion"
	"github.com/attriflow/backend/internal/templates"
	"github.com/attriflow/backend/internal/usecase"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting AttriFlow Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	registry, err := templates.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to build template registry: %v", err)
	}
	log.Printf("Template registry: %d manufacturers", registry.Size())

	completionClient := completion.NewClient(cfg.Completion.APIKey, cfg.Completion.BaseURL, cfg.Completion.Model)
	if cfg.Server.Environment == "development" {
		completionClient.SetDebug(true)
	}

	if cfg.Completion.APIKey != "" {
		log.Printf("Completion service configured: %s (model: %s)", cfg.Completion.BaseURL, cfg.Completion.Model)
	} else {
		log.Printf("WARNING: completion API key not configured - AI attributes will be unavailable")
	}

	memoryCache := cache.NewMemoryCache()

	extractionService := usecase.NewExtractionService(
		registry,
		completionClient,
		memoryCache,
		usecase.ExtractionServiceConfig{
			CompletionTimeout: cfg.Completion.Timeout,
			CacheTTL:          cfg.Cache.TTL,
			Detection: usecase.DetectionConfig{
				KeywordScore:      cfg.Detection.KeywordScore,
				EarlyKeywordBonus: cfg.Detection.EarlyKeywordBonus,
				BrandScore:        cfg.Detection.BrandScore,
				SeriesScore:       cfg.Detection.SeriesScore,
				PatternScore:      cfg.Detection.PatternScore,
				MinConfidence:     cfg.Detection.MinConfidence,
				StrongConfidence:  cfg.Detection.StrongConfidence,
				LeadMargin:        cfg.Detection.LeadMargin,
				EarlyWindow:       cfg.Detection.EarlyWindow,
			},
			EnableDebugLogging: cfg.Extraction.EnableDebugLogging,
		},
	)

	log.Printf("Detection: min=%.0f strong=%.0f margin=%.1fx debug=%v",
		cfg.Detection.MinConfidence,
		cfg.Detection.StrongConfidence,
		cfg.Detection.LeadMargin,
		cfg.Extraction.EnableDebugLogging)

	handler := httpDelivery.NewHandler(extractionService)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
