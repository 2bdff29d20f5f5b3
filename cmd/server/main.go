package main

import (
	"fmt"
	"log"
	"os"

	"github.com/cataloglens/backend/config"
	httpDelivery "github.com/cataloglens/backend/internal/delivery/http"
	"github.com/cataloglens/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting CatalogLens Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Catalog limits: max_rows=%d, max_raw_bytes=%d", cfg.Catalog.MaxRows, cfg.Catalog.MaxRawBytes)
	log.Printf("Rate limit: %d req/min per IP (burst %d)", cfg.RateLimit.PerIP, cfg.RateLimit.Burst)

	// Initialize the enrichment engine
	enricher := usecase.NewEnricher(usecase.EnricherConfig{
		EnableDebugLogging: cfg.Enrich.EnableDebugLogging,
	})

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" && cfg.Enrich.EnableDebugLogging {
		log.Printf("Enrichment debug logging enabled")
	}

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(enricher, cfg.Catalog.MaxRows, cfg.Catalog.MaxRawBytes)

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
