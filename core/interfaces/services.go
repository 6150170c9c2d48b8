// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts the HTTP layer and CLI consume

package interfaces

import (
	"context"
	"io"

	"github.com/Jis87-63/noticias-moc/core/domain"
)

// NewsAggregator builds the aggregated news feed from the registered sources
type NewsAggregator interface {
	Aggregate(ctx context.Context, sources []domain.SourceDescriptor) domain.AggregatedFeed
}

// VideoSearchService looks up videos through the external search API
type VideoSearchService interface {
	SearchVideos(ctx context.Context, query string) ([]domain.VideoResult, error)
}

// Download is an open remote body ready to be streamed to the caller
type Download struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength string
	Filename      string
}

// DownloadService opens remote files for the download proxy
type DownloadService interface {
	Open(ctx context.Context, rawURL string) (*Download, error)
}
