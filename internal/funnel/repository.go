package funnel

import "context"

// Counts is the raw scan target for the funnel aggregation queries. Buckets
// overlap: a contact may land in several or in none, so they do not sum to
// Total.
type Counts struct {
	Total            int
	Pending          int
	Processing       int
	Ready            int
	Blocked          int
	LeadsCreated     int
	ReadyWithoutLead int
}

// BucketsEmpty reports whether every lifecycle bucket came back zero.
func (c Counts) BucketsEmpty() bool {
	return c.Pending == 0 && c.Processing == 0 && c.Ready == 0 && c.Blocked == 0
}

// Repository defines the data access contract for contact funnel counts.
// Implementations must be safe for concurrent use.
type Repository interface {
	// CountFunnel returns the full bucket classification for a campaign.
	CountFunnel(ctx context.Context, campaignID string) (Counts, error)

	// CountFunnelSimple returns the reduced classification used when the
	// full one comes back all-zero for a non-empty campaign: ready means
	// usable email and no lead, blocked means unusable or unknown email,
	// and the pending/processing buckets are not computed.
	CountFunnelSimple(ctx context.Context, campaignID string) (Counts, error)
}
