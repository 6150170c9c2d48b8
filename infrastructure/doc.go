// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, logging and metrics.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache backed by patrickmn/go-cache
// - cache/redis: Redis-based cache implementation
// - http/standard: net/http client with backoff retries and per-request headers
// - logger/structured: logrus logger with optional lumberjack rotation
// - metrics: Prometheus collectors for aggregation cycles
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(10 * time.Minute)
//	err := cache.Set(ctx, "search:videos:maputo", payload, 0)
//	value, err := cache.Get(ctx, "search:videos:maputo")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	})
//
// # HTTP Client
//
// Feed fetches pass their browser-like header set per request:
//
//	client := standard.NewStandardHTTPClient(10*time.Second, standard.WithRetries(2))
//	resp, err := client.Get(ctx, source.Endpoint, source.Headers)
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger, err := structured.NewLogger(cfg.Log)
//	logger.Info("Aggregation finished", map[string]interface{}{
//	    "items":   42,
//	    "sources": 6,
//	})
package infrastructure
