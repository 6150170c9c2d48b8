// ABOUTME: News handler exposes the aggregated feed over HTTP
// ABOUTME: Runs one aggregation cycle per request over the registered sources

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Jis87-63/noticias-moc/core/domain"
	"github.com/Jis87-63/noticias-moc/core/interfaces"
)

// SourceProvider returns the sources aggregated on each request
type SourceProvider interface {
	All() []domain.SourceDescriptor
}

// NewsHandler handles the aggregated news endpoint
type NewsHandler struct {
	aggregator interfaces.NewsAggregator
	sources    SourceProvider
}

// NewNewsHandler creates a new news handler
func NewNewsHandler(aggregator interfaces.NewsAggregator, sources SourceProvider) *NewsHandler {
	return &NewsHandler{
		aggregator: aggregator,
		sources:    sources,
	}
}

// RegisterRoutes registers all news-related routes
func (h *NewsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listNews",
		Method:      http.MethodGet,
		Path:        "/api/noticias",
		Summary:     "Aggregated news feed",
		Description: "Fetches every registered source and returns the most recent items, newest first. Sources that fail are skipped.",
		Tags:        []string{"News"},
	}, h.ListNews)
}

// ListNewsInput defines the input for the ListNews operation
type ListNewsInput struct{}

// ListNewsOutput defines the output for the ListNews operation
type ListNewsOutput struct {
	Body []domain.NewsItem
}

// ListNews handles GET /api/noticias. It never fails: missing sources only
// shrink the returned array.
func (h *NewsHandler) ListNews(ctx context.Context, _ *ListNewsInput) (*ListNewsOutput, error) {
	feed := h.aggregator.Aggregate(ctx, h.sources.All())
	if feed == nil {
		feed = domain.AggregatedFeed{}
	}
	return &ListNewsOutput{Body: feed}, nil
}
