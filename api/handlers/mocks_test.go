package handlers

import (
	"context"
	"io"
	"strings"

	"github.com/Jis87-63/noticias-moc/core/domain"
	"github.com/Jis87-63/noticias-moc/core/interfaces"
)

// mockAggregator is a mock implementation of the NewsAggregator interface
type mockAggregator struct {
	aggregateFunc func(ctx context.Context, sources []domain.SourceDescriptor) domain.AggregatedFeed
	lastSources   []domain.SourceDescriptor
}

func (m *mockAggregator) Aggregate(ctx context.Context, sources []domain.SourceDescriptor) domain.AggregatedFeed {
	m.lastSources = sources
	if m.aggregateFunc != nil {
		return m.aggregateFunc(ctx, sources)
	}
	return nil
}

// staticSources is a fixed SourceProvider
type staticSources []domain.SourceDescriptor

func (s staticSources) All() []domain.SourceDescriptor {
	return s
}

// mockSearchService is a mock implementation of the VideoSearchService interface
type mockSearchService struct {
	searchFunc func(ctx context.Context, query string) ([]domain.VideoResult, error)
}

func (m *mockSearchService) SearchVideos(ctx context.Context, query string) ([]domain.VideoResult, error) {
	return m.searchFunc(ctx, query)
}

// mockDownloadService is a mock implementation of the DownloadService interface
type mockDownloadService struct {
	openFunc func(ctx context.Context, rawURL string) (*interfaces.Download, error)
}

func (m *mockDownloadService) Open(ctx context.Context, rawURL string) (*interfaces.Download, error) {
	return m.openFunc(ctx, rawURL)
}

func readCloser(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}
