package salesengine

// ExecutionState is the engine's run report for one campaign. Field sets
// drift between engine revisions, so everything beyond Status is optional.
type ExecutionState struct {
	CampaignID        string `json:"campaignId"`
	Status            string `json:"status"`
	CurrentStage      string `json:"currentStage,omitempty"`
	RunID             string `json:"runId,omitempty"`
	AwaitingApprovals int    `json:"awaitingApprovals,omitempty"`
	BlockingReason    string `json:"blockingReason,omitempty"`
	LastEventAt       string `json:"lastEventAt,omitempty"`
}

// CampaignMetrics is the engine's per-campaign pipeline rollup.
type CampaignMetrics struct {
	CampaignID         string  `json:"campaignId"`
	OrgsSourced        int     `json:"orgsSourced"`
	ContactsDiscovered int     `json:"contactsDiscovered"`
	ContactsScored     int     `json:"contactsScored"`
	LeadsCreated       int     `json:"leadsCreated"`
	EmailsDrafted      int     `json:"emailsDrafted"`
	RepliesReceived    int     `json:"repliesReceived"`
	ConversionRate     float64 `json:"conversionRate"`
	UpdatedAt          string  `json:"updatedAt"`
}

// ThroughputPoint is one hourly bucket of pipeline throughput.
type ThroughputPoint struct {
	Hour              string `json:"hour"`
	ContactsProcessed int    `json:"contactsProcessed"`
	LeadsCreated      int    `json:"leadsCreated"`
}

// ThroughputReport is the hourly throughput series for one campaign.
type ThroughputReport struct {
	CampaignID  string            `json:"campaignId"`
	WindowHours int               `json:"windowHours"`
	Points      []ThroughputPoint `json:"points"`
}

// AttentionItem flags a campaign that needs operator attention.
type AttentionItem struct {
	CampaignID string `json:"campaignId"`
	Name       string `json:"name"`
	Reason     string `json:"reason"`
	Severity   string `json:"severity"`
	Since      string `json:"since"`
}

// AttentionReport lists campaigns needing attention across the workspace.
type AttentionReport struct {
	Items []AttentionItem `json:"items"`
}

// Notice is an operational notice surfaced on the dashboard home.
type Notice struct {
	ID        string `json:"id"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}

// NoticeList wraps the notices feed.
type NoticeList struct {
	Notices []Notice `json:"notices"`
}

// ReadinessCheck is one gate in the engine's pre-run checklist.
type ReadinessCheck struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// ReadinessReport is the engine's pre-run checklist for one campaign.
type ReadinessReport struct {
	CampaignID string           `json:"campaignId"`
	Overall    string           `json:"overall"`
	Checks     []ReadinessCheck `json:"checks"`
}
