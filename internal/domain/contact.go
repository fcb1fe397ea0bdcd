package domain

// ContactStatus enumerates the lifecycle states of a campaign contact as
// written by the sales engine. The set is open: unknown values may appear in
// the table and must not break aggregation.
type ContactStatus string

const (
	ContactSourced ContactStatus = "sourced"
	ContactReady   ContactStatus = "ready"
	ContactBlocked ContactStatus = "blocked"
)

// ContactStats is the per-campaign funnel rollup served by the contact-stats
// endpoint. All keys are always present; Unavailable is kept for response
// compatibility with older dashboard builds and is always zero.
//
// Buckets overlap on purpose: a contact may count toward several of them or
// none at all, so the buckets do not sum to Total.
type ContactStats struct {
	Total            int `json:"total"`
	Pending          int `json:"pending"`
	Processing       int `json:"processing"`
	Ready            int `json:"ready"`
	Blocked          int `json:"blocked"`
	Unavailable      int `json:"unavailable"`
	LeadsCreated     int `json:"leadsCreated"`
	ReadyWithoutLead int `json:"readyWithoutLead"`
}
