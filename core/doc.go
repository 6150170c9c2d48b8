// Package core contains the business logic for the noticias API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (SourceDescriptor, RawItem, NewsItem, VideoResult)
// - sources: The ordered feed source registry
// - feed: Fetcher, parser, normalizer and the concurrent aggregator
// - search: Video search proxy service
// - download: Download proxy service
// - errors: Custom error types for per-source recovery and API responses
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, metrics)
//
// # Usage Example
//
//	import (
//	    "github.com/Jis87-63/noticias-moc/core/feed"
//	    "github.com/Jis87-63/noticias-moc/core/interfaces"
//	    "github.com/Jis87-63/noticias-moc/core/sources"
//	)
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: httpClient,
//	    Logger:     logger,
//	}
//
//	registry, err := sources.Load("")
//	aggregator := feed.NewAggregator(deps, feed.Options{})
//	items := aggregator.Aggregate(ctx, registry.All())
package core
