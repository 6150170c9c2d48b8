// ABOUTME: Download service opens remote files for the download proxy endpoint
// ABOUTME: Validates the target URL and exposes the upstream body for streaming

package download

import (
	"context"
	"net/url"
	"path"
	"strings"

	apperrors "github.com/Jis87-63/noticias-moc/core/errors"
	"github.com/Jis87-63/noticias-moc/core/interfaces"
)

const (
	defaultFilename    = "download"
	defaultContentType = "application/octet-stream"
	apiName            = "download"
)

// DownloadService implements interfaces.DownloadService
type DownloadService struct {
	deps interfaces.Dependencies
}

// NewDownloadService creates a new download service instance
func NewDownloadService(deps interfaces.Dependencies) *DownloadService {
	return &DownloadService{deps: deps}
}

// Open requests rawURL and returns its body. The caller must close Body.
func (s *DownloadService) Open(ctx context.Context, rawURL string) (*interfaces.Download, error) {
	target, err := validateURL(rawURL)
	if err != nil {
		return nil, err
	}

	if s.deps.HTTPClient == nil {
		return nil, &apperrors.ExternalAPIError{API: apiName, Message: "HTTP client not configured"}
	}

	resp, err := s.deps.HTTPClient.Get(ctx, target.String(), nil)
	if err != nil {
		return nil, &apperrors.ExternalAPIError{API: apiName, Message: err.Error()}
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		resp.Body().Close()
		if resp.StatusCode() == 404 {
			return nil, &apperrors.NotFoundError{Resource: "file", ID: target.String()}
		}
		return nil, &apperrors.ExternalAPIError{
			API:        apiName,
			StatusCode: resp.StatusCode(),
			Message:    "unexpected status",
		}
	}

	contentType := resp.Header("Content-Type")
	if contentType == "" {
		contentType = defaultContentType
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Info("Proxying download", map[string]interface{}{
			"url":          target.String(),
			"content_type": contentType,
		})
	}

	return &interfaces.Download{
		Body:          resp.Body(),
		ContentType:   contentType,
		ContentLength: resp.Header("Content-Length"),
		Filename:      filenameFor(target),
	}, nil
}

func validateURL(rawURL string) (*url.URL, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, &apperrors.ValidationError{Field: "url", Message: "url cannot be empty"}
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, &apperrors.ValidationError{Field: "url", Message: "url must be an absolute http(s) URL"}
	}
	return u, nil
}

// filenameFor derives the attachment name from the last path segment
func filenameFor(u *url.URL) string {
	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return defaultFilename
	}
	name = strings.Map(func(r rune) rune {
		if r == '"' || r == '\\' || r < 0x20 {
			return '_'
		}
		return r
	}, name)
	return name
}
