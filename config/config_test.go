package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("CATALOGLENS_SERVER_PORT")
		os.Unsetenv("CATALOGLENS_SERVER_ENVIRONMENT")
		os.Unsetenv("CATALOGLENS_SERVER_ALLOWED_ORIGINS")
		os.Unsetenv("CATALOGLENS_CATALOG_MAX_ROWS")
		os.Unsetenv("CATALOGLENS_CATALOG_MAX_RAW_BYTES")
		os.Unsetenv("CATALOGLENS_ENRICH_ENABLE_DEBUG_LOGGING")
		os.Unsetenv("CATALOGLENS_RATELIMIT_PER_IP")
		os.Unsetenv("CATALOGLENS_RATELIMIT_BURST")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Catalog.MaxRows != 1000 {
			t.Errorf("Catalog.MaxRows = %d, want 1000", cfg.Catalog.MaxRows)
		}
		if cfg.Catalog.MaxRawBytes != 1<<20 {
			t.Errorf("Catalog.MaxRawBytes = %d, want %d", cfg.Catalog.MaxRawBytes, 1<<20)
		}
		if cfg.Enrich.EnableDebugLogging {
			t.Error("Enrich.EnableDebugLogging = true, want false")
		}
		if cfg.RateLimit.PerIP != 120 {
			t.Errorf("RateLimit.PerIP = %d, want 120", cfg.RateLimit.PerIP)
		}
		if cfg.RateLimit.Burst != 20 {
			t.Errorf("RateLimit.Burst = %d, want 20", cfg.RateLimit.Burst)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("CATALOGLENS_SERVER_PORT", "9090")
		os.Setenv("CATALOGLENS_SERVER_ENVIRONMENT", "production")
		os.Setenv("CATALOGLENS_CATALOG_MAX_ROWS", "50")
		os.Setenv("CATALOGLENS_ENRICH_ENABLE_DEBUG_LOGGING", "true")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Catalog.MaxRows != 50 {
			t.Errorf("Catalog.MaxRows = %d, want 50", cfg.Catalog.MaxRows)
		}
		if !cfg.Enrich.EnableDebugLogging {
			t.Error("Enrich.EnableDebugLogging = false, want true")
		}
	})

	t.Run("rejects non-positive max_rows", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("CATALOGLENS_CATALOG_MAX_ROWS", "0")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want validation error")
		}
	})

	t.Run("rejects non-positive rate limit", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("CATALOGLENS_RATELIMIT_PER_IP", "-1")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want validation error")
		}
	})
}
