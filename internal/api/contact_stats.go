package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pipecraft/platform-shell/internal/domain"
	"github.com/pipecraft/platform-shell/internal/pkg/httputil"
	"github.com/pipecraft/platform-shell/internal/pkg/logger"
)

// HandleContactStats returns the contact funnel breakdown for a campaign.
// When no database is wired the dashboard still needs a renderable card, so
// the response is an all-zero breakdown rather than an error.
//
//	GET /api/campaigns/{campaignID}/contact-stats
func (h *Handlers) HandleContactStats(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "campaignID")
	if campaignID == "" {
		httputil.BadRequest(w, "campaign id is required")
		return
	}

	if h.stats == nil {
		httputil.OK(w, domain.ContactStats{})
		return
	}

	stats, err := h.stats.CampaignStats(r.Context(), campaignID)
	if err != nil {
		logger.Error("contact stats query failed", "campaign_id", campaignID, "error", err.Error())
		httputil.Error(w, http.StatusInternalServerError, "stats unavailable")
		return
	}

	httputil.OK(w, stats)
}
