// ABOUTME: Search handler proxies video searches to the search service
// ABOUTME: Reports failures as {"error": "..."} documents with a mapped status

package handlers

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Jis87-63/noticias-moc/core/domain"
	"github.com/Jis87-63/noticias-moc/core/errors"
	"github.com/Jis87-63/noticias-moc/core/interfaces"
)

const (
	// noResultsMessage is returned when the search API finds nothing
	noResultsMessage = "Nenhum resultado encontrado"

	searchErrorPrefix = "Erro ao buscar: "
)

// SearchError is the error document of the search endpoint. Browser clients
// read its error field.
type SearchError struct {
	status  int
	Message string `json:"error" doc:"Failure description" example:"Erro ao buscar: Nenhum resultado encontrado"`
}

// Error implements the error interface
func (e *SearchError) Error() string { return e.Message }

// GetStatus implements huma.StatusError
func (e *SearchError) GetStatus() int { return e.status }

// newSearchError keeps the status toHumaError picks for err
func newSearchError(err error) *SearchError {
	status := http.StatusInternalServerError
	var statusErr huma.StatusError
	if stderrors.As(toHumaError(err), &statusErr) {
		status = statusErr.GetStatus()
	}

	message := err.Error()
	var validationErr *errors.ValidationError
	switch {
	case errors.IsNotFound(err):
		message = noResultsMessage
	case stderrors.As(err, &validationErr):
		message = validationErr.Message
	}

	return &SearchError{status: status, Message: searchErrorPrefix + message}
}

// SearchHandler handles search-related HTTP requests
type SearchHandler struct {
	searchService interfaces.VideoSearchService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService interfaces.VideoSearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// RegisterRoutes registers all search-related routes
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "searchVideos",
		Method:      http.MethodGet,
		Path:        "/api/buscar",
		Summary:     "Search videos",
		Description: "Searches videos by name through the external search API. Returns at most 20 results.",
		Tags:        []string{"Search"},
	}, h.SearchVideos)
}

// SearchVideosInput defines the input for the SearchVideos operation
type SearchVideosInput struct {
	Query string `query:"q" doc:"Search terms" example:"marrabenta"`
}

// SearchVideosOutput defines the output for the SearchVideos operation
type SearchVideosOutput struct {
	Body []domain.VideoResult
}

// SearchVideos handles GET /api/buscar
func (h *SearchHandler) SearchVideos(ctx context.Context, input *SearchVideosInput) (*SearchVideosOutput, error) {
	results, err := h.searchService.SearchVideos(ctx, input.Query)
	if err != nil {
		return nil, newSearchError(err)
	}

	return &SearchVideosOutput{Body: results}, nil
}
