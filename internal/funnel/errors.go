package funnel

import "errors"

// Sentinel errors for the funnel service layer.
var (
	// ErrStatsUnavailable wraps any storage failure. Handlers map it to a
	// generic 500 so query details never reach the dashboard.
	ErrStatsUnavailable = errors.New("stats unavailable")
)
