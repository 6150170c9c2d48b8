// ABOUTME: Fetcher retrieves the raw feed body for one source
// ABOUTME: Applies per-source browser headers, proxy wrapping, soft-block detection and HTML unwrapping

package feed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/Jis87-63/noticias-moc/core/domain"
	apperrors "github.com/Jis87-63/noticias-moc/core/errors"
	"github.com/Jis87-63/noticias-moc/core/interfaces"
	htmlutil "github.com/Jis87-63/noticias-moc/pkg/utils/html"
)

// DefaultMaxBodyBytes caps how much of a feed body is read
const DefaultMaxBodyBytes int64 = 5 << 20

// blockScanBytes is how much of the body is searched for block markers
const blockScanBytes = 4096

// blockMarkers identify access-denial pages served with a 2xx status
var blockMarkers = []string{
	"<title>access denied",
	"<title>attention required! | cloudflare",
	"<title>just a moment...",
	"<title>403 forbidden",
}

// defaultHeaders are used for sources that do not define their own
var defaultHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Accept":          "application/rss+xml, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.7",
	"Accept-Language": "pt-PT,pt;q=0.9,en;q=0.8",
}

// FetcherOptions configures a Fetcher
type FetcherOptions struct {
	// ProxyTemplate receives the query-escaped endpoint through a single %s
	ProxyTemplate string

	// MaxBodyBytes limits the body read; zero means DefaultMaxBodyBytes
	MaxBodyBytes int64
}

// Fetcher performs one outbound retrieval per source
type Fetcher struct {
	client        interfaces.HTTPClient
	logger        interfaces.Logger
	proxyTemplate string
	maxBodyBytes  int64
}

// NewFetcher creates a fetcher. The HTTP client should not retry; a failed
// source simply contributes nothing to the current cycle.
func NewFetcher(deps interfaces.Dependencies, opts FetcherOptions) *Fetcher {
	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}
	return &Fetcher{
		client:        deps.HTTPClient,
		logger:        deps.Logger,
		proxyTemplate: opts.ProxyTemplate,
		maxBodyBytes:  maxBody,
	}
}

// Fetch retrieves the feed document for source. Every failure is returned as
// a *errors.FetchError.
func (f *Fetcher) Fetch(ctx context.Context, source domain.SourceDescriptor) (domain.RawFeedDocument, error) {
	target := f.RequestURL(source)
	f.logDebug("Fetching feed source", map[string]interface{}{
		"source":  source.Name,
		"url":     target,
		"proxied": source.Proxied,
	})

	if f.client == nil {
		return domain.RawFeedDocument{}, &apperrors.FetchError{
			Source: source.Name,
			Reason: apperrors.FetchReasonTransport,
			Err:    fmt.Errorf("HTTP client not configured"),
		}
	}

	headers := source.Headers
	if len(headers) == 0 {
		headers = defaultHeaders
	}

	resp, err := f.client.Get(ctx, target, headers)
	if err != nil {
		return domain.RawFeedDocument{}, &apperrors.FetchError{
			Source: source.Name,
			Reason: apperrors.FetchReasonTransport,
			Err:    err,
		}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return domain.RawFeedDocument{}, &apperrors.FetchError{
			Source:     source.Name,
			Reason:     apperrors.FetchReasonStatus,
			StatusCode: resp.StatusCode(),
		}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body(), f.maxBodyBytes+1))
	if err != nil {
		return domain.RawFeedDocument{}, &apperrors.FetchError{
			Source: source.Name,
			Reason: apperrors.FetchReasonRead,
			Err:    err,
		}
	}
	if int64(len(raw)) > f.maxBodyBytes {
		return domain.RawFeedDocument{}, &apperrors.FetchError{
			Source: source.Name,
			Reason: apperrors.FetchReasonRead,
			Err:    fmt.Errorf("body exceeds %d bytes", f.maxBodyBytes),
		}
	}

	if isBlockPage(raw) {
		return domain.RawFeedDocument{}, &apperrors.FetchError{
			Source: source.Name,
			Reason: apperrors.FetchReasonBlocked,
		}
	}

	body := string(raw)
	if htmlutil.LooksLikeDocument(body) {
		if inner, ok := htmlutil.ExtractBody(body); ok {
			f.logDebug("Unwrapped HTML document", map[string]interface{}{
				"source": source.Name,
			})
			body = inner
		}
	}

	return domain.RawFeedDocument{Source: source, Body: body}, nil
}

// RequestURL returns the URL actually requested for source
func (f *Fetcher) RequestURL(source domain.SourceDescriptor) string {
	if !source.Proxied || f.proxyTemplate == "" {
		return source.Endpoint
	}
	return fmt.Sprintf(f.proxyTemplate, url.QueryEscape(source.Endpoint))
}

// isBlockPage reports whether the body is an HTML access-denial page. Feeds
// are never block pages, whatever their headlines say.
func isBlockPage(body []byte) bool {
	head := body
	if len(head) > blockScanBytes {
		head = head[:blockScanBytes]
	}
	if !isHTMLPage(string(head)) {
		return false
	}
	lower := bytes.ToLower(head)
	for _, marker := range blockMarkers {
		if bytes.Contains(lower, []byte(marker)) {
			return true
		}
	}
	return false
}

// isHTMLPage reports whether head starts an HTML page rather than a feed
func isHTMLPage(head string) bool {
	if htmlutil.LooksLikeDocument(head) {
		return true
	}
	root, err := rootElement(head)
	return err == nil && (root == "html" || root == "head")
}

func (f *Fetcher) logDebug(msg string, fields map[string]interface{}) {
	if f.logger != nil {
		f.logger.Debug(msg, fields)
	}
}
