package funnel

import (
	"context"
	"fmt"
	"log"

	"github.com/pipecraft/platform-shell/internal/domain"
)

// Service implements the contact funnel rollup served on campaign dashboards.
// Safe for concurrent use if the underlying repository is.
type Service struct {
	repo Repository
}

// NewService creates a funnel service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CampaignStats returns the funnel rollup for one campaign.
//
// When every lifecycle bucket is zero but the campaign has contacts, the
// engine wrote those rows in a shape the full classification predates, so we
// re-query with the reduced predicates instead of rendering an empty funnel
// over live data. At most two queries run per call.
func (s *Service) CampaignStats(ctx context.Context, campaignID string) (domain.ContactStats, error) {
	counts, err := s.repo.CountFunnel(ctx, campaignID)
	if err != nil {
		return domain.ContactStats{}, fmt.Errorf("%w: %v", ErrStatsUnavailable, err)
	}

	if counts.BucketsEmpty() && counts.Total > 0 {
		log.Printf("[funnel] campaign %s: all buckets zero across %d contacts, using simplified classification", campaignID, counts.Total)
		counts, err = s.repo.CountFunnelSimple(ctx, campaignID)
		if err != nil {
			return domain.ContactStats{}, fmt.Errorf("%w: %v", ErrStatsUnavailable, err)
		}
	}

	return domain.ContactStats{
		Total:            counts.Total,
		Pending:          counts.Pending,
		Processing:       counts.Processing,
		Ready:            counts.Ready,
		Blocked:          counts.Blocked,
		LeadsCreated:     counts.LeadsCreated,
		ReadyWithoutLead: counts.ReadyWithoutLead,
	}, nil
}
