// ABOUTME: Feed-level domain models for one aggregation cycle
// ABOUTME: RawFeedDocument is the fetched body, AggregatedFeed the sorted result

package domain

// RawFeedDocument is the unparsed body returned by one fetch attempt
type RawFeedDocument struct {
	Source SourceDescriptor
	Body   string
}

// AggregatedFeed is the ordered result of one aggregation cycle
type AggregatedFeed []NewsItem
