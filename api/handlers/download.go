// ABOUTME: Download handler streams remote files back to the caller
// ABOUTME: Sets the upstream content type and an attachment disposition

package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Jis87-63/noticias-moc/api/middleware"
	"github.com/Jis87-63/noticias-moc/core/interfaces"
)

// DownloadHandler handles the download proxy endpoint
type DownloadHandler struct {
	downloadService interfaces.DownloadService
	logger          interfaces.Logger
}

// NewDownloadHandler creates a new download handler
func NewDownloadHandler(downloadService interfaces.DownloadService, logger interfaces.Logger) *DownloadHandler {
	return &DownloadHandler{
		downloadService: downloadService,
		logger:          logger,
	}
}

// RegisterRoutes registers all download-related routes
func (h *DownloadHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "download",
		Method:      http.MethodGet,
		Path:        "/api/download",
		Summary:     "Download proxy",
		Description: "Streams the file at the given absolute http(s) URL as an attachment",
		Tags:        []string{"Download"},
	}, h.Download)
}

// DownloadInput defines the input for the Download operation
type DownloadInput struct {
	URL string `query:"url" doc:"Absolute http(s) URL of the file" example:"https://example.com/audio.mp3"`
}

// Download handles GET /api/download
func (h *DownloadHandler) Download(ctx context.Context, input *DownloadInput) (*huma.StreamResponse, error) {
	dl, err := h.downloadService.Open(ctx, input.URL)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &huma.StreamResponse{
		Body: func(hctx huma.Context) {
			defer dl.Body.Close()

			hctx.SetHeader("Content-Type", dl.ContentType)
			hctx.SetHeader("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, dl.Filename))
			if dl.ContentLength != "" {
				hctx.SetHeader("Content-Length", dl.ContentLength)
			}
			hctx.SetStatus(http.StatusOK)

			if _, err := io.Copy(hctx.BodyWriter(), dl.Body); err != nil && h.logger != nil {
				h.logger.Warn("Download stream interrupted", map[string]interface{}{
					"request_id": middleware.GetRequestID(hctx.Context()),
					"filename":   dl.Filename,
					"error":      err.Error(),
				})
			}
		},
	}, nil
}
