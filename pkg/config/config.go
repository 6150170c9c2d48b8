// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, feeds, search, cache and logging

package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Jis87-63/noticias-moc/pkg/utils/parse"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Feed contains news aggregation configuration
	Feed FeedConfig

	// Search contains video search proxy configuration
	Search SearchConfig

	// Cache contains cache configuration for search results
	Cache CacheConfig

	// Log contains logger configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the number of requests per minute allowed per client IP.
	// Zero disables rate limiting.
	RateLimit int
}

// FeedConfig holds news aggregation configuration
type FeedConfig struct {
	// FetchTimeout bounds a single source fetch
	FetchTimeout time.Duration

	// MaxItems caps the aggregated feed
	MaxItems int

	// MaxConcurrency caps concurrent source fetches
	MaxConcurrency int

	// MaxBodyBytes caps how much of a feed body is read
	MaxBodyBytes int64

	// ProxyTemplate is a URL with a single %s receiving the escaped endpoint
	ProxyTemplate string

	// SourcesFile optionally replaces the built-in source list (TOML)
	SourcesFile string
}

// SearchConfig holds video search proxy configuration
type SearchConfig struct {
	// APIURL is the search endpoint; the query is sent as ?q=
	APIURL string

	// MaxResults caps the number of returned videos
	MaxResults int

	// CacheTTL is how long a query's results are cached
	CacheTTL time.Duration

	// Retries is the number of retries on upstream 5xx or transport errors
	Retries int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is text or json
	Format string

	// File, when set, receives logs through a rotating writer
	File string
}

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are ignored; variables already set win.
func LoadDotEnv(paths ...string) error {
	existing := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8000"),
			RateLimit: getEnvAsIntOrDefault("RATE_LIMIT", 0),
		},
		Feed: FeedConfig{
			FetchTimeout:   getEnvAsDurationOrDefault("FEED_FETCH_TIMEOUT", 10*time.Second),
			MaxItems:       getEnvAsIntOrDefault("FEED_MAX_ITEMS", 50),
			MaxConcurrency: getEnvAsIntOrDefault("FEED_MAX_CONCURRENCY", 10),
			MaxBodyBytes:   int64(getEnvAsIntOrDefault("FEED_MAX_BODY_BYTES", 5<<20)),
			ProxyTemplate:  getEnvOrDefault("FEED_PROXY_TEMPLATE", "https://api.allorigins.win/raw?url=%s"),
			SourcesFile:    getEnvOrDefault("FEED_SOURCES_FILE", ""),
		},
		Search: SearchConfig{
			APIURL:     getEnvOrDefault("SEARCH_API_URL", "https://ytsearch.vercel.app/api/search"),
			MaxResults: getEnvAsIntOrDefault("SEARCH_MAX_RESULTS", 20),
			CacheTTL:   getEnvAsDurationOrDefault("SEARCH_CACHE_TTL", 10*time.Minute),
			Retries:    getEnvAsIntOrDefault("SEARCH_RETRIES", 2),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 600),
			},
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnvOrDefault("LOG_FORMAT", "text")),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	return parse.IntOrDefault(os.Getenv(key), defaultValue)
}

// getEnvAsDurationOrDefault accepts Go durations ("15s") or plain seconds ("15")
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs := parse.IntOrDefault(value, -1); secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit < 0 {
		return errors.New("rate limit cannot be negative")
	}

	if c.Feed.FetchTimeout <= 0 {
		return errors.New("feed fetch timeout must be positive")
	}

	if c.Feed.MaxItems < 1 {
		return errors.New("feed max items must be at least 1")
	}

	if c.Feed.MaxConcurrency < 1 {
		return errors.New("feed max concurrency must be at least 1")
	}

	if c.Feed.MaxBodyBytes < 1 {
		return errors.New("feed max body bytes must be positive")
	}

	if strings.Count(c.Feed.ProxyTemplate, "%s") != 1 {
		return errors.New("feed proxy template must contain exactly one %s")
	}

	if c.Search.APIURL == "" {
		return errors.New("search API URL cannot be empty")
	}

	if c.Search.MaxResults < 1 {
		return errors.New("search max results must be at least 1")
	}

	if c.Search.Retries < 0 {
		return errors.New("search retries cannot be negative")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.New("log format must be 'text' or 'json'")
	}

	return nil
}
