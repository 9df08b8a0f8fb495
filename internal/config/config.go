package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          int
	ScrapeURL     string
	ScrapeTimeout time.Duration
	ScrapeEnabled bool
	RedisURL      string
	CacheTTL      time.Duration
}

// Load configuration from env, with optional .env support for local
// development.
func Load() (*Config, error) {
	// Missing .env is fine; real environments set vars directly.
	_ = godotenv.Load()

	return &Config{
		Port:          getEnvInt("PORT", 8080),
		ScrapeURL:     getEnv("SCRAPE_URL", "https://sixsevendeals.com/"),
		ScrapeTimeout: getEnvDuration("SCRAPE_TIMEOUT", 10*time.Second),
		ScrapeEnabled: getEnvBool("SCRAPE_ENABLED", true),
		RedisURL:      getEnv("REDIS_URL", ""),
		CacheTTL:      getEnvDuration("CACHE_TTL", 10*time.Minute),
	}, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return fallback
}
