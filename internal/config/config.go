package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

const defaultJWTSecret = "dev-secret-change-in-production"

type Config struct {
	Port       string
	Env        string
	APIKey     string
	APIKeyHash string
	JWTSecret  string
	JWTExpiry  time.Duration
	RateRPS    float64
	RateBurst  int
}

func Load() Config {
	cfg := Config{
		Port:       getEnv("PORT", "8080"),
		Env:        getEnv("ENV", "development"),
		APIKey:     os.Getenv("API_KEY"),
		APIKeyHash: os.Getenv("API_KEY_HASH"),
		JWTSecret:  getEnv("JWT_SECRET", defaultJWTSecret),
		JWTExpiry:  getDuration("TOKEN_TTL", time.Hour),
		RateRPS:    getFloat("RATE_LIMIT_RPS", 10),
		RateBurst:  getInt("RATE_LIMIT_BURST", 20),
	}

	if cfg.Env == "production" {
		if cfg.AuthEnabled() && cfg.JWTSecret == defaultJWTSecret {
			slog.Error("JWT_SECRET must be set in production environment")
			os.Exit(1)
		}
		if cfg.APIKey != "" && cfg.APIKeyHash == "" {
			slog.Warn("plain API_KEY in production — prefer API_KEY_HASH")
		}
	}

	return cfg
}

// AuthEnabled reports whether an API key is configured. Without one the
// token endpoint is not mounted and the generation routes stay open.
func (c Config) AuthEnabled() bool {
	return c.APIKey != "" || c.APIKeyHash != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration, using fallback", "key", key, "value", v)
		return fallback
	}
	return d
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("invalid number, using fallback", "key", key, "value", v)
		return fallback
	}
	return f
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid number, using fallback", "key", key, "value", v)
		return fallback
	}
	return n
}
