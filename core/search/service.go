// ABOUTME: Video search service proxies queries to the external video search API
// ABOUTME: Filters and caps results and caches them per query

package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/Jis87-63/noticias-moc/core/domain"
	apperrors "github.com/Jis87-63/noticias-moc/core/errors"
	"github.com/Jis87-63/noticias-moc/core/interfaces"
	"github.com/Jis87-63/noticias-moc/pkg/utils/duration"
)

const (
	// DefaultMaxResults caps the number of videos returned
	DefaultMaxResults = 20

	// DefaultCacheTTL is how long results stay cached per query
	DefaultCacheTTL = 10 * time.Minute

	maxQueryLength = 100
	apiName        = "video-search"
)

// Options configures a SearchService
type Options struct {
	// APIURL is the search endpoint; the query is sent as ?q=
	APIURL     string
	MaxResults int
	CacheTTL   time.Duration
}

// SearchService implements interfaces.VideoSearchService
type SearchService struct {
	deps interfaces.Dependencies
	opts Options
}

// NewSearchService creates a new search service instance
func NewSearchService(deps interfaces.Dependencies, opts Options) *SearchService {
	if opts.MaxResults <= 0 {
		opts.MaxResults = DefaultMaxResults
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	return &SearchService{
		deps: deps,
		opts: opts,
	}
}

// validateQuery validates search query parameters
func (s *SearchService) validateQuery(query string) error {
	if query == "" {
		return &apperrors.ValidationError{Field: "q", Message: "search query cannot be empty"}
	}

	if utf8.RuneCountInString(query) > maxQueryLength {
		return &apperrors.ValidationError{
			Field:   "q",
			Message: fmt.Sprintf("search query cannot exceed %d characters", maxQueryLength),
		}
	}

	return nil
}

// SearchVideos looks up videos matching query. An empty result is a
// *errors.NotFoundError.
func (s *SearchService) SearchVideos(ctx context.Context, query string) ([]domain.VideoResult, error) {
	query = strings.TrimSpace(query)
	if err := s.validateQuery(query); err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("search:videos:%s", strings.ToLower(query))
	if cached, ok := s.getCached(ctx, cacheKey); ok {
		return cached, nil
	}

	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	videos, err := s.callAPI(ctx, query)
	if err != nil {
		return nil, err
	}

	results := lo.Map(
		lo.Filter(videos, func(v apiVideo, _ int) bool {
			return strings.TrimSpace(string(v.Title)) != "" && strings.TrimSpace(string(v.URL)) != ""
		}),
		func(v apiVideo, _ int) domain.VideoResult {
			return domain.VideoResult{
				Title:     string(v.Title),
				URL:       string(v.URL),
				Thumbnail: string(v.Thumbnail),
				Duration:  duration.Clock(string(v.Duration)),
				Views:     string(v.Views),
				Channel:   string(v.Author.Name),
			}
		},
	)
	if len(results) > s.opts.MaxResults {
		results = results[:s.opts.MaxResults]
	}

	if len(results) == 0 {
		return nil, &apperrors.NotFoundError{Resource: "videos", ID: query}
	}

	s.setCached(ctx, cacheKey, results)

	return results, nil
}

// callAPI performs the upstream request and decodes the video list
func (s *SearchService) callAPI(ctx context.Context, query string) ([]apiVideo, error) {
	apiURL, err := buildURL(s.opts.APIURL, query)
	if err != nil {
		return nil, err
	}

	resp, err := s.deps.HTTPClient.Get(ctx, apiURL, map[string]string{"Accept": "application/json"})
	if err != nil {
		return nil, &apperrors.ExternalAPIError{API: apiName, Message: err.Error()}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &apperrors.ExternalAPIError{
			API:        apiName,
			StatusCode: resp.StatusCode(),
			Message:    "unexpected status",
		}
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var apiResponse struct {
		Videos []apiVideo `json:"videos"`
	}
	if err := json.Unmarshal(bodyBytes, &apiResponse); err != nil {
		return nil, &apperrors.ExternalAPIError{
			API:        apiName,
			StatusCode: resp.StatusCode(),
			Message:    "failed to parse search results: " + err.Error(),
		}
	}

	return apiResponse.Videos, nil
}

func buildURL(base, query string) (string, error) {
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid search API URL %q", base)
	}
	q := u.Query()
	q.Set("q", query)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (s *SearchService) getCached(ctx context.Context, key string) ([]domain.VideoResult, bool) {
	if s.deps.Cache == nil {
		return nil, false
	}

	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil || data == nil {
		return nil, false
	}

	var results []domain.VideoResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, false
	}
	return results, true
}

func (s *SearchService) setCached(ctx context.Context, key string, results []domain.VideoResult) {
	if s.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(results)
	if err != nil {
		return
	}
	if err := s.deps.Cache.Set(ctx, key, data, s.opts.CacheTTL); err != nil && s.deps.Logger != nil {
		s.deps.Logger.Warn("Failed to cache search results", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

// apiVideo is one entry of the upstream response. A malformed entry or
// field decodes to its zero value instead of failing the whole response.
type apiVideo struct {
	Title     flexString `json:"title"`
	URL       flexString `json:"url"`
	Thumbnail flexString `json:"thumbnail"`
	Duration  flexString `json:"duration"`
	Views     flexString `json:"views"`
	Author    flexAuthor `json:"author"`
}

func (v *apiVideo) UnmarshalJSON(data []byte) error {
	type plain apiVideo
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		*v = apiVideo{}
		return nil
	}
	*v = apiVideo(p)
	return nil
}

// flexAuthor accepts {"name": ...}; any other shape has no name
type flexAuthor struct {
	Name flexString `json:"name"`
}

func (a *flexAuthor) UnmarshalJSON(data []byte) error {
	type plain flexAuthor
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		*a = flexAuthor{}
		return nil
	}
	*a = flexAuthor(p)
	return nil
}

// flexString accepts a JSON string or number. null, booleans, objects and
// arrays decode to "".
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	*f = ""

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return nil
	}
	if i, err := n.Int64(); err == nil {
		*f = flexString(strconv.FormatInt(i, 10))
		return nil
	}
	*f = flexString(n.String())
	return nil
}
