package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sailwalpranjal/SMART/config"
	httpDelivery "github.com/sailwalpranjal/SMART/internal/delivery/http"
	"github.com/sailwalpranjal/SMART/internal/domain"
	"github.com/sailwalpranjal/SMART/internal/infrastructure/cache"
	"github.com/sailwalpranjal/SMART/internal/infrastructure/fetch"
	"github.com/sailwalpranjal/SMART/internal/infrastructure/images"
	"github.com/sailwalpranjal/SMART/internal/infrastructure/removebg"
	"github.com/sailwalpranjal/SMART/internal/infrastructure/sizerec"
	"github.com/sailwalpranjal/SMART/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting SMART Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	fetcher := fetch.NewClient(fetch.Config{
		UserAgent:    cfg.Scraper.UserAgent,
		PageTimeout:  cfg.Scraper.PageTimeout,
		ImageTimeout: cfg.Scraper.ImageTimeout,
		MaxRetries:   cfg.Scraper.MaxRetries,
		RateLimit:    cfg.Scraper.RateLimit,
		RateBurst:    cfg.Scraper.RateBurst,
	})
	log.Printf("Scraper: page timeout=%s, image timeout=%s, retries=%d",
		cfg.Scraper.PageTimeout, cfg.Scraper.ImageTimeout, cfg.Scraper.MaxRetries)

	processor := images.NewProcessor(cfg.Images.MaxDimension, cfg.Images.JPEGQuality)

	remover := removebg.NewClient(cfg.Images.RemoveBGURL, cfg.Scraper.ImageTimeout)
	if remover.Enabled() {
		log.Printf("Background removal sidecar: %s", cfg.Images.RemoveBGURL)
	} else {
		log.Printf("Background removal not configured, wearable images keep their backgrounds")
	}

	var recommender domain.SizeRecommender
	if cfg.SizeRec.BaseURL != "" {
		client := sizerec.NewClient(cfg.SizeRec.BaseURL, cfg.SizeRec.Timeout)
		recommender = client
		log.Printf("Size recommendation service: %s", cfg.SizeRec.BaseURL)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := client.Health(ctx); err != nil {
			log.Printf("WARNING: size recommendation service not reachable yet: %v", err)
		}
		cancel()
	} else {
		log.Printf("WARNING: size recommendation service not configured, sizing endpoints return 503")
	}

	memoryCache := cache.NewMemoryCache()

	// Initialize usecase layer
	extractor := usecase.NewExtractor(
		fetcher,
		processor,
		remover,
		usecase.ExtractorConfig{MaxProcessedImages: cfg.Images.MaxProcessed},
	)

	sizingService := usecase.NewSizingService(
		memoryCache,
		recommender,
		usecase.SizingServiceConfig{CacheTTL: cfg.SizeRec.CacheTTL},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(extractor, sizingService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
