package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pipecraft/platform-shell/internal/pkg/httputil"
)

// HandleDeprecatedRun refuses campaign run requests. Execution moved to the
// sales engine; this route stays registered so old dashboard builds get a
// clear 410 instead of a confusing 404.
//
//	POST /api/v1/campaigns/{campaignID}/run
func (h *Handlers) HandleDeprecatedRun(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusGone, map[string]interface{}{
		"error":      "ENDPOINT_DEPRECATED",
		"message":    "Campaign runs are managed by the sales engine and can no longer be triggered from the dashboard.",
		"campaignId": chi.URLParam(r, "campaignID"),
	})
}
