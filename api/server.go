// ABOUTME: Huma API server configuration and setup
// ABOUTME: Wires the chi router, middleware, metrics endpoint and liveness banner

package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"

	"github.com/Jis87-63/noticias-moc/api/middleware"
	"github.com/Jis87-63/noticias-moc/core/interfaces"
)

const (
	apiTitle   = "Notícias Moçambique API"
	apiVersion = "1.0.0"

	// Banner is served for every unmatched path
	Banner = "Notícias Moçambique API em funcionamento. Use GET /api/noticias."
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger

	// RateLimit is requests per RateWindow per client IP; zero disables it
	RateLimit  int
	RateWindow time.Duration

	// MetricsHandler is mounted at /metrics when set
	MetricsHandler http.Handler
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS first so preflights and error responses carry the headers
	router.Use(middleware.CORSMiddleware)

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimit > 0 {
		window := cfg.RateWindow
		if window <= 0 {
			window = time.Minute
		}
		router.Use(middleware.RateLimitMiddleware(middleware.NewRateLimiter(cfg.RateLimit, window)))
	}

	if cfg.MetricsHandler != nil {
		router.Handle("/metrics", cfg.MetricsHandler)
	}

	router.NotFound(bannerHandler)

	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = "Aggregated Mozambican news feed, video search and download proxy"

	// Responses are always JSON, whatever the Accept header asks for
	config.Formats = map[string]huma.Format{
		"application/json": huma.DefaultJSONFormat,
		"json":             huma.DefaultJSONFormat,
	}
	config.DefaultFormat = "application/json"

	// The OpenAPI spec is available at /openapi.json and the docs UI at /docs
	api := humachi.New(router, config)

	return api, router
}

func bannerHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(Banner))
}
