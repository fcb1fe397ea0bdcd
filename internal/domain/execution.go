package domain

// ExecutionStatus enumerates the run states reported by the sales engine for
// a campaign. Engine revisions differ slightly (queued vs run_requested), so
// consumers must treat the set as open and fall back gracefully.
type ExecutionStatus string

const (
	ExecutionIdle              ExecutionStatus = "idle"
	ExecutionQueued            ExecutionStatus = "queued"
	ExecutionRunRequested      ExecutionStatus = "run_requested"
	ExecutionRunning           ExecutionStatus = "running"
	ExecutionAwaitingApprovals ExecutionStatus = "awaiting_approvals"
	ExecutionCompleted         ExecutionStatus = "completed"
	ExecutionFailed            ExecutionStatus = "failed"
	ExecutionPartial           ExecutionStatus = "partial"
	ExecutionBlocked           ExecutionStatus = "blocked"
)

// Pipeline stage tags emitted by the engine while a run is in progress.
const (
	StageOrgsSourced        = "orgs_sourced"
	StageContactsDiscovered = "contacts_discovered"
	StageContactsScored     = "contacts_scored"
	StageReadinessChecked   = "readiness_checked"
	StageLeadsCreated       = "leads_created"
	StageEmailsDrafted      = "emails_drafted"
)
