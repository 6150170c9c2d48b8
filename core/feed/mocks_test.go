package feed

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/Jis87-63/noticias-moc/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error)

	mu       sync.Mutex
	requests []recordedRequest
}

type recordedRequest struct {
	url     string
	headers map[string]string
}

func (m *mockHTTPClient) Get(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, recordedRequest{url: url, headers: headers})
	m.mu.Unlock()

	if m.getFunc != nil {
		return m.getFunc(ctx, url, headers)
	}
	return &mockResponse{statusCode: 404}, nil
}

func (m *mockHTTPClient) recorded() []recordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]recordedRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

// routes returns a getFunc serving fixed responses by URL
func routes(responses map[string]*mockResponse) func(context.Context, string, map[string]string) (interfaces.Response, error) {
	return func(_ context.Context, url string, _ map[string]string) (interfaces.Response, error) {
		if resp, ok := responses[url]; ok {
			return resp, nil
		}
		return &mockResponse{statusCode: 404}, nil
	}
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

func okResponse(body string) *mockResponse {
	return &mockResponse{statusCode: 200, body: body}
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	mu       sync.Mutex
	warnings []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnings = append(m.warnings, msg)
}

func (m *mockLogger) warnCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.warnings)
}

// mockMetrics records observations
type mockMetrics struct {
	mu           sync.Mutex
	outcomes     map[string]string
	aggregations int
	lastItems    int
}

func newMockMetrics() *mockMetrics {
	return &mockMetrics{outcomes: make(map[string]string)}
}

func (m *mockMetrics) ObserveSource(source, outcome string, duration time.Duration, items int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes[source] = outcome
}

func (m *mockMetrics) ObserveAggregation(duration time.Duration, items int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.aggregations++
	m.lastItems = items
}

func (m *mockMetrics) outcome(source string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.outcomes[source]
}
