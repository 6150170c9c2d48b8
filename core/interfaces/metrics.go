package interfaces

import "time"

// Fetch outcomes reported to Metrics
const (
	OutcomeSuccess    = "success"
	OutcomeFetchError = "fetch_error"
	OutcomeBlocked    = "blocked"
	OutcomeParseError = "parse_error"
	OutcomeEmpty      = "empty"
)

// Metrics records observations about aggregation cycles.
// Implementations must be safe for concurrent use.
type Metrics interface {
	// ObserveSource records the outcome of one source within a cycle.
	ObserveSource(source, outcome string, duration time.Duration, items int)

	// ObserveAggregation records one finished cycle.
	ObserveAggregation(duration time.Duration, items int)
}
