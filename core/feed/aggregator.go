// ABOUTME: Aggregator runs fetch, parse and normalize across all sources concurrently
// ABOUTME: Merges per-source results, sorts them by recency and truncates to the item cap

package feed

import (
	"context"
	"sort"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/Jis87-63/noticias-moc/core/domain"
	apperrors "github.com/Jis87-63/noticias-moc/core/errors"
	"github.com/Jis87-63/noticias-moc/core/interfaces"
	timeutil "github.com/Jis87-63/noticias-moc/pkg/utils/time"
)

const (
	// DefaultMaxItems is the size of the aggregated feed
	DefaultMaxItems = 50

	// DefaultMaxConcurrency bounds simultaneous source fetches
	DefaultMaxConcurrency = 10

	// DefaultFetchTimeout bounds one source's fetch and parse
	DefaultFetchTimeout = 10 * time.Second
)

// Options configures an Aggregator
type Options struct {
	FetchTimeout   time.Duration
	MaxItems       int
	MaxConcurrency int
	ProxyTemplate  string
	MaxBodyBytes   int64

	// Now overrides the clock; used by tests
	Now func() time.Time
}

// Aggregator implements interfaces.NewsAggregator
type Aggregator struct {
	fetcher *Fetcher
	parser  *Parser
	logger  interfaces.Logger
	metrics interfaces.Metrics

	fetchTimeout   time.Duration
	maxItems       int
	maxConcurrency int
	now            func() time.Time
}

// NewAggregator creates an aggregator. deps.HTTPClient is used for every
// source fetch and should not retry.
func NewAggregator(deps interfaces.Dependencies, opts Options) *Aggregator {
	a := &Aggregator{
		fetcher: NewFetcher(deps, FetcherOptions{
			ProxyTemplate: opts.ProxyTemplate,
			MaxBodyBytes:  opts.MaxBodyBytes,
		}),
		parser:         NewParser(deps.Logger),
		logger:         deps.Logger,
		metrics:        deps.Metrics,
		fetchTimeout:   opts.FetchTimeout,
		maxItems:       opts.MaxItems,
		maxConcurrency: opts.MaxConcurrency,
		now:            opts.Now,
	}

	if a.fetchTimeout <= 0 {
		a.fetchTimeout = DefaultFetchTimeout
	}
	if a.maxItems <= 0 {
		a.maxItems = DefaultMaxItems
	}
	if a.maxConcurrency <= 0 {
		a.maxConcurrency = DefaultMaxConcurrency
	}
	if a.now == nil {
		a.now = time.Now
	}

	return a
}

// Aggregate runs one aggregation cycle over sources. Source failures only
// remove that source's items; the result is never nil.
func (a *Aggregator) Aggregate(ctx context.Context, sources []domain.SourceDescriptor) domain.AggregatedFeed {
	start := time.Now()
	// Whole seconds, so undated items (rendered as now) and unparseable
	// dates (sorted as now) share one sort key
	now := a.now().UTC().Truncate(time.Second)

	results := make([][]domain.NewsItem, len(sources))

	limit := a.maxConcurrency
	if len(sources) < limit {
		limit = len(sources)
	}

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			results[i] = a.collect(ctx, src, now)
			return nil // errors are handled per source
		})
	}
	_ = g.Wait()

	merged := lo.Flatten(results)

	sortByRecency(merged, now)

	if len(merged) > a.maxItems {
		merged = merged[:a.maxItems]
	}

	if a.metrics != nil {
		a.metrics.ObserveAggregation(time.Since(start), len(merged))
	}
	a.logInfo("Aggregation finished", map[string]interface{}{
		"sources":  len(sources),
		"items":    len(merged),
		"duration": time.Since(start).String(),
	})

	return domain.AggregatedFeed(merged)
}

// collect runs fetch, parse and normalize for one source
func (a *Aggregator) collect(ctx context.Context, src domain.SourceDescriptor, now time.Time) []domain.NewsItem {
	start := time.Now()

	if ctx.Err() != nil {
		a.observe(src.Name, interfaces.OutcomeFetchError, start, 0)
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, a.fetchTimeout)
	defer cancel()

	doc, err := a.fetcher.Fetch(ctx, src)
	if err != nil {
		outcome := interfaces.OutcomeFetchError
		if apperrors.IsBlocked(err) {
			outcome = interfaces.OutcomeBlocked
		}
		a.logWarn("Feed source failed", map[string]interface{}{
			"source": src.Name,
			"error":  err.Error(),
		})
		a.observe(src.Name, outcome, start, 0)
		return nil
	}

	raws, ok := a.parser.Parse(doc)
	if !ok {
		a.observe(src.Name, interfaces.OutcomeParseError, start, 0)
		return nil
	}

	items := NormalizeAll(raws, src, now)

	outcome := interfaces.OutcomeSuccess
	if len(items) == 0 {
		outcome = interfaces.OutcomeEmpty
	}
	a.logDebug("Feed source collected", map[string]interface{}{
		"source":  src.Name,
		"raw":     len(raws),
		"items":   len(items),
		"elapsed": time.Since(start).String(),
	})
	a.observe(src.Name, outcome, start, len(items))

	return items
}

// sortByRecency orders items newest first. Dates that cannot be parsed sort
// as now, so they land near the top. Equal dates keep merge order.
func sortByRecency(items []domain.NewsItem, now time.Time) {
	keys := make([]time.Time, len(items))
	for i, item := range items {
		keys[i] = timeutil.ParseWithDefault(item.PublishedAt, now)
	}

	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(x, y int) bool {
		return keys[idx[x]].After(keys[idx[y]])
	})

	sorted := make([]domain.NewsItem, len(items))
	for i, j := range idx {
		sorted[i] = items[j]
	}
	copy(items, sorted)
}

func (a *Aggregator) observe(source, outcome string, start time.Time, items int) {
	if a.metrics != nil {
		a.metrics.ObserveSource(source, outcome, time.Since(start), items)
	}
}

func (a *Aggregator) logDebug(msg string, fields map[string]interface{}) {
	if a.logger != nil {
		a.logger.Debug(msg, fields)
	}
}

func (a *Aggregator) logInfo(msg string, fields map[string]interface{}) {
	if a.logger != nil {
		a.logger.Info(msg, fields)
	}
}

func (a *Aggregator) logWarn(msg string, fields map[string]interface{}) {
	if a.logger != nil {
		a.logger.Warn(msg, fields)
	}
}
