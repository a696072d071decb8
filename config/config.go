// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	CacheNone      = "none"
	CacheMemory    = "memory"
	CacheRedis     = "redis"
	CacheMemcached = "memcached"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	LogFormat   string

	StorageDriver string
	DatabaseURL   string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string

	CacheDriver   string
	CacheTTL      time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	MemcachedAddr string

	ContactRateLimit float64
	ContactRateBurst int

	PlaygroundLatency    time.Duration
	PlaygroundSessionTTL time.Duration

	SeedOnStart bool
}

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", ""),

		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", StorageMemory)),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", ""),
		DBName:        getEnv("DB_NAME", "mcp_playground"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),

		CacheDriver:   strings.ToLower(getEnv("CACHE_DRIVER", CacheMemory)),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		MemcachedAddr: getEnv("MEMCACHED_ADDR", "localhost:11211"),
	}

	var err error
	if cfg.CacheTTL, err = getDuration("CACHE_TTL", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.ContactRateLimit, err = getFloat("CONTACT_RATE_LIMIT", 0.2); err != nil {
		return nil, err
	}
	if cfg.ContactRateBurst, err = getInt("CONTACT_RATE_BURST", 5); err != nil {
		return nil, err
	}
	if cfg.PlaygroundLatency, err = getDuration("PLAYGROUND_LATENCY", 2*time.Second); err != nil {
		return nil, err
	}
	if cfg.PlaygroundSessionTTL, err = getDuration("PLAYGROUND_SESSION_TTL", 30*time.Minute); err != nil {
		return nil, err
	}
	if cfg.SeedOnStart, err = getBool("SEED_ON_START", true); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("invalid STORAGE_DRIVER %q: must be memory or postgres", c.StorageDriver)
	}
	switch c.CacheDriver {
	case CacheNone, CacheMemory, CacheRedis, CacheMemcached:
	default:
		return fmt.Errorf("invalid CACHE_DRIVER %q: must be none, memory, redis or memcached", c.CacheDriver)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
