// ABOUTME: Component wiring shared by the serve and fetch commands
// ABOUTME: Builds config, logger, cache, HTTP clients, metrics and services

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/Jis87-63/noticias-moc/core/download"
	"github.com/Jis87-63/noticias-moc/core/feed"
	"github.com/Jis87-63/noticias-moc/core/interfaces"
	"github.com/Jis87-63/noticias-moc/core/search"
	"github.com/Jis87-63/noticias-moc/core/sources"
	"github.com/Jis87-63/noticias-moc/infrastructure/cache/memory"
	"github.com/Jis87-63/noticias-moc/infrastructure/cache/redis"
	stdhttp "github.com/Jis87-63/noticias-moc/infrastructure/http/standard"
	"github.com/Jis87-63/noticias-moc/infrastructure/logger/structured"
	"github.com/Jis87-63/noticias-moc/infrastructure/metrics"
	"github.com/Jis87-63/noticias-moc/pkg/config"
)

const (
	searchClientTimeout   = 30 * time.Second
	downloadClientTimeout = 10 * time.Minute

	// Media hosts often refuse clients that do not look like a browser
	downloadUserAgent = "Mozilla/5.0 (compatible; NoticiasMoc/1.0; +https://github.com/Jis87-63/noticias-moc)"
)

// app holds every wired component
type app struct {
	cfg        *config.Config
	logger     *structured.Logger
	cache      interfaces.Cache
	metrics    *metrics.PrometheusMetrics
	registry   *sources.Registry
	aggregator *feed.Aggregator
	search     *search.SearchService
	download   *download.DownloadService
	closers    []io.Closer
}

// loadConfig loads .env files named by --env-file, then the environment
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	if err := config.LoadDotEnv(ctx.StringSlice("env-file")...); err != nil {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newApp wires all components around an already built logger
func newApp(cfg *config.Config, logger *structured.Logger) (*app, error) {
	a := &app{cfg: cfg, logger: logger}

	registry, err := sources.Load(cfg.Feed.SourcesFile)
	if err != nil {
		return nil, err
	}
	a.registry = registry

	a.cache = a.newCache()
	a.metrics = metrics.NewPrometheusMetrics()

	// A slow or failing source costs one attempt; retrying would eat the
	// cycle's time budget
	feedClient := stdhttp.NewStandardHTTPClient(cfg.Feed.FetchTimeout, stdhttp.WithLogger(logger))
	searchClient := stdhttp.NewStandardHTTPClient(searchClientTimeout,
		stdhttp.WithRetries(cfg.Search.Retries),
		stdhttp.WithLogger(logger),
	)
	downloadClient := stdhttp.NewStandardHTTPClient(downloadClientTimeout,
		stdhttp.WithUserAgent(downloadUserAgent),
		stdhttp.WithLogger(logger),
	)

	a.aggregator = feed.NewAggregator(interfaces.Dependencies{
		HTTPClient: feedClient,
		Logger:     logger,
		Metrics:    a.metrics,
	}, feed.Options{
		FetchTimeout:   cfg.Feed.FetchTimeout,
		MaxItems:       cfg.Feed.MaxItems,
		MaxConcurrency: cfg.Feed.MaxConcurrency,
		ProxyTemplate:  cfg.Feed.ProxyTemplate,
		MaxBodyBytes:   cfg.Feed.MaxBodyBytes,
	})

	a.search = search.NewSearchService(interfaces.Dependencies{
		Cache:      a.cache,
		HTTPClient: searchClient,
		Logger:     logger,
	}, search.Options{
		APIURL:     cfg.Search.APIURL,
		MaxResults: cfg.Search.MaxResults,
		CacheTTL:   cfg.Search.CacheTTL,
	})

	a.download = download.NewDownloadService(interfaces.Dependencies{
		HTTPClient: downloadClient,
		Logger:     logger,
	})

	return a, nil
}

// newCache falls back to memory when redis is unreachable
func (a *app) newCache() interfaces.Cache {
	memoryCache := func() interfaces.Cache {
		ttl := time.Duration(a.cfg.Cache.Memory.DefaultExpiration) * time.Second
		return memory.NewMemoryCache(ttl)
	}

	if a.cfg.Cache.Type != "redis" {
		a.logger.Info("Using memory cache", nil)
		return memoryCache()
	}

	redisCache, err := redis.NewRedisCache(a.cfg.Cache.Redis)
	if err != nil {
		a.logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
		return memoryCache()
	}

	a.closers = append(a.closers, redisCache)
	a.logger.Info("Using Redis cache", map[string]interface{}{
		"address": a.cfg.Cache.Redis.Address,
	})
	return redisCache
}

// Close releases the cache connection and the log file
func (a *app) Close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Warn("Failed to close resource", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	_ = a.logger.Close()
}
