package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	StorefrontAddr  string
	CartStoragePath string
	// LatencyScale multiplies every simulated API delay. 1 behaves like the
	// mock network, 0 disables delays entirely.
	LatencyScale float64
	SeedData     bool
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists
	cfg := Config{
		StorefrontAddr:  getenv("STOREFRONT_ADDR", ":8080"),
		CartStoragePath: getenv("CART_STORAGE_PATH", "data/supplyhub_cart.json"),
		LatencyScale:    1,
		SeedData:        true,
	}
	if v := getenv("MOCK_LATENCY_SCALE", ""); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			cfg.LatencyScale = f
		}
	}
	if v := getenv("SEED_DATA", ""); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.SeedData = b
		}
	}
	log.Printf("[config] STOREFRONT_ADDR=%s", cfg.StorefrontAddr)
	log.Printf("[config] CART_STORAGE_PATH=%s", cfg.CartStoragePath)
	log.Printf("[config] MOCK_LATENCY_SCALE=%g SEED_DATA=%t", cfg.LatencyScale, cfg.SeedData)
	return cfg
}
