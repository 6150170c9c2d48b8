package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jis87-63/noticias-moc/core/domain"
	"github.com/Jis87-63/noticias-moc/core/errors"
)

func TestSearchHandler_ReturnsResults(t *testing.T) {
	_, api := humatest.New(t)

	var gotQuery string
	svc := &mockSearchService{searchFunc: func(_ context.Context, query string) ([]domain.VideoResult, error) {
		gotQuery = query
		return []domain.VideoResult{{
			Title:   "Marrabenta ao vivo",
			URL:     "https://youtube.com/watch?v=1",
			Views:   "12345",
			Channel: "Canal MZ",
		}}, nil
	}}
	NewSearchHandler(svc).RegisterRoutes(api)

	resp := api.Get("/api/buscar?q=marrabenta")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "marrabenta", gotQuery)

	var results []domain.VideoResult
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "Canal MZ", results[0].Channel)
}

func TestSearchHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "no results",
			err:        &errors.NotFoundError{Resource: "videos", ID: "xyz"},
			wantStatus: http.StatusNotFound,
			wantError:  "Erro ao buscar: Nenhum resultado encontrado",
		},
		{
			name:       "invalid query",
			err:        &errors.ValidationError{Field: "q", Message: "search query cannot be empty"},
			wantStatus: http.StatusBadRequest,
			wantError:  "Erro ao buscar: search query cannot be empty",
		},
		{
			name:       "upstream unreachable",
			err:        &errors.ExternalAPIError{API: "video-search", Message: "connection refused"},
			wantStatus: http.StatusBadGateway,
			wantError:  "Erro ao buscar: external API error from video-search: 0 - connection refused",
		},
		{
			name:       "upstream 5xx",
			err:        &errors.ExternalAPIError{API: "video-search", StatusCode: 500, Message: "bad gateway"},
			wantStatus: http.StatusServiceUnavailable,
			wantError:  "Erro ao buscar: external API error from video-search: 500 - bad gateway",
		},
		{
			name:       "unexpected failure",
			err:        context.DeadlineExceeded,
			wantStatus: http.StatusInternalServerError,
			wantError:  "Erro ao buscar: context deadline exceeded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, api := humatest.New(t)
			svc := &mockSearchService{searchFunc: func(context.Context, string) ([]domain.VideoResult, error) {
				return nil, tt.err
			}}
			NewSearchHandler(svc).RegisterRoutes(api)

			resp := api.Get("/api/buscar?q=xyz")

			assert.Equal(t, tt.wantStatus, resp.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			assert.Equal(t, tt.wantError, body["error"])
			assert.NotContains(t, body, "title")
		})
	}
}
