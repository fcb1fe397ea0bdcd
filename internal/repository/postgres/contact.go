package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pipecraft/platform-shell/internal/funnel"
)

// ContactRepo implements funnel.Repository against the engine-owned
// campaign_contacts table. The shell only ever reads from it.
type ContactRepo struct{ db *sql.DB }

// NewContactRepo creates a Postgres-backed contact funnel repository.
func NewContactRepo(db *sql.DB) *ContactRepo { return &ContactRepo{db: db} }

// CountFunnel classifies every contact of a campaign in one aggregate pass.
// The bucket predicates overlap and do not partition the table; the dashboard
// has always counted this way and consumers rely on it.
func (r *ContactRepo) CountFunnel(ctx context.Context, campaignID string) (funnel.Counts, error) {
	var c funnel.Counts
	err := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN status = 'sourced' AND scored_at IS NULL THEN 1 ELSE 0 END), 0) AS pending,
			COALESCE(SUM(CASE WHEN status = 'sourced' AND scored_at IS NOT NULL AND readiness_checked_at IS NULL THEN 1 ELSE 0 END), 0) AS processing,
			COALESCE(SUM(CASE WHEN status = 'ready' OR (email_usable IS TRUE AND lead_id IS NULL) THEN 1 ELSE 0 END), 0) AS ready,
			COALESCE(SUM(CASE WHEN status = 'blocked' OR email_usable IS FALSE THEN 1 ELSE 0 END), 0) AS blocked,
			COALESCE(SUM(CASE WHEN lead_id IS NOT NULL THEN 1 ELSE 0 END), 0) AS leads_created,
			COALESCE(SUM(CASE WHEN (status = 'ready' OR email_usable IS TRUE) AND lead_id IS NULL THEN 1 ELSE 0 END), 0) AS ready_without_lead
		FROM campaign_contacts
		WHERE campaign_id = $1
	`, campaignID).Scan(
		&c.Total, &c.Pending, &c.Processing, &c.Ready, &c.Blocked,
		&c.LeadsCreated, &c.ReadyWithoutLead,
	)
	if err != nil {
		return funnel.Counts{}, fmt.Errorf("count funnel: %w", err)
	}
	return c, nil
}

// CountFunnelSimple is the reduced classification for campaigns whose rows
// predate the lifecycle columns. Email usability and lead presence are the
// only signals read; pending and processing stay zero.
func (r *ContactRepo) CountFunnelSimple(ctx context.Context, campaignID string) (funnel.Counts, error) {
	var c funnel.Counts
	err := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN email_usable IS TRUE AND lead_id IS NULL THEN 1 ELSE 0 END), 0) AS ready,
			COALESCE(SUM(CASE WHEN email_usable IS NOT TRUE THEN 1 ELSE 0 END), 0) AS blocked,
			COALESCE(SUM(CASE WHEN lead_id IS NOT NULL THEN 1 ELSE 0 END), 0) AS leads_created,
			COALESCE(SUM(CASE WHEN email_usable IS TRUE AND lead_id IS NULL THEN 1 ELSE 0 END), 0) AS ready_without_lead
		FROM campaign_contacts
		WHERE campaign_id = $1
	`, campaignID).Scan(&c.Total, &c.Ready, &c.Blocked, &c.LeadsCreated, &c.ReadyWithoutLead)
	if err != nil {
		return funnel.Counts{}, fmt.Errorf("count funnel simple: %w", err)
	}
	return c, nil
}
