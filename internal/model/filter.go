package model

// FeedType selects which public feed a search runs against.
type FeedType string

// Feed selectors.
const (
	FeedDirect     FeedType = "direct"
	FeedAggregated FeedType = "aggregated"
)

// DateRange is a rolling window bucket relative to "now".
type DateRange string

// Date range buckets.
const (
	RangeAll DateRange = "all"
	Range24h DateRange = "24h"
	Range7d  DateRange = "7d"
	Range30d DateRange = "30d"
)

// FilterState carries the criteria of one search. Empty slices impose no
// constraint on their dimension.
type FilterState struct {
	Keyword         string           `json:"keyword"`
	RemotePolicies  []RemotePolicy   `json:"remotePolicies"`
	SeniorityLevels []SeniorityLevel `json:"seniorityLevels"`
	EmploymentTypes []EmploymentType `json:"employmentTypes"`
	DateRange       DateRange        `json:"dateRange"`
	Locations       []string         `json:"locations"`
}

// SearchRequest is the body of POST /jobs/search.
type SearchRequest struct {
	FeedType FeedType    `json:"feedType"`
	Filters  FilterState `json:"filters"`
}

// ValidFeedType reports whether f is a known feed selector.
func ValidFeedType(f FeedType) bool {
	return f == FeedDirect || f == FeedAggregated
}

// ValidDateRange reports whether r is a known bucket.
func ValidDateRange(r DateRange) bool {
	switch r {
	case RangeAll, Range24h, Range7d, Range30d:
		return true
	}
	return false
}
