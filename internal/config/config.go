package config

import (
	"os"
	"strconv"
)

// Config holds all server configuration loaded from environment variables.
type Config struct {
	ListenAddr     string // HTTP listen address
	RateLimitRPS   int    // Per-client requests per second, 0 disables limiting
	RateLimitBurst int    // Per-client burst size when limiting is enabled
}

// Load reads configuration from environment variables, falling back to defaults.
func Load() *Config {
	return &Config{
		ListenAddr:     envOrDefault("LISTEN_ADDR", ":8080"),
		RateLimitRPS:   envOrDefaultInt("RATE_LIMIT_RPS", 0),
		RateLimitBurst: envOrDefaultInt("RATE_LIMIT_BURST", 20),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrDefaultInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
