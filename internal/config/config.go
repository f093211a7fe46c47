package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment
// variables.
type Config struct {
	Port            string
	RedisAddr       string
	RedisDB         int
	RedisPassword   string
	AdminJWTSecret  string
	ProductCacheTTL time.Duration
}

// Load builds Config from environment with sensible defaults. An empty
// AdminJWTSecret leaves the /admin group open, which is the documented
// default behavior of this API.
func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "3001"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		AdminJWTSecret:  os.Getenv("ADMIN_JWT_SECRET"),
		ProductCacheTTL: getEnvDuration("PRODUCT_CACHE_TTL", time.Minute),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
