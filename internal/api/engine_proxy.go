package api

import (
	"fmt"
	"hash/fnv"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pipecraft/platform-shell/internal/cache"
	"github.com/pipecraft/platform-shell/internal/execstatus"
	"github.com/pipecraft/platform-shell/internal/pkg/httputil"
	"github.com/pipecraft/platform-shell/internal/pkg/logger"
	"github.com/pipecraft/platform-shell/internal/salesengine"
)

// The proxy routes forward the caller's Authorization header to the sales
// engine and relay its response verbatim. When the engine is unreachable or
// not configured they fall back to hard-coded mock payloads so the dashboard
// keeps rendering. Only real engine responses are cached; mocks never are.

// proxyEngine relays one engine endpoint, with cache and mock fallback.
func (h *Handlers) proxyEngine(w http.ResponseWriter, r *http.Request, endpoint string, fetch func(authorization string) ([]byte, error), mock interface{}) {
	if !h.engineConfigured() {
		httputil.OK(w, mock)
		return
	}

	authorization := r.Header.Get("Authorization")
	key := cache.Key(endpoint, authScope(authorization))

	if body := h.cache.Get(r.Context(), key); body != nil {
		httputil.Raw(w, http.StatusOK, body)
		return
	}

	body, err := fetch(authorization)
	if err != nil {
		logger.Warn("engine proxy failed, serving mock payload",
			"endpoint", endpoint, "error", err.Error())
		httputil.OK(w, mock)
		return
	}

	h.cache.Set(r.Context(), key, body)
	httputil.Raw(w, http.StatusOK, body)
}

// authScope folds the Authorization header into the cache key so responses
// authorized for one caller are never replayed to another.
func authScope(authorization string) string {
	if authorization == "" {
		return "anon"
	}
	f := fnv.New32a()
	f.Write([]byte(authorization))
	return fmt.Sprintf("%08x", f.Sum32())
}

// HandleCampaignMetrics proxies the engine's per-campaign pipeline rollup.
//
//	GET /api/v1/campaigns/{campaignID}/metrics
func (h *Handlers) HandleCampaignMetrics(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "campaignID")
	h.proxyEngine(w, r, "metrics/"+campaignID, func(authorization string) ([]byte, error) {
		return h.engine.CampaignMetrics(r.Context(), campaignID, authorization)
	}, mockCampaignMetrics(campaignID))
}

// HandleCampaignThroughput proxies the engine's hourly throughput series.
//
//	GET /api/v1/campaigns/{campaignID}/throughput
func (h *Handlers) HandleCampaignThroughput(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "campaignID")
	h.proxyEngine(w, r, "throughput/"+campaignID, func(authorization string) ([]byte, error) {
		return h.engine.CampaignThroughput(r.Context(), campaignID, authorization)
	}, mockThroughput(campaignID))
}

// HandleCampaignReadiness proxies the engine's pre-run checklist.
//
//	GET /api/v1/campaigns/{campaignID}/readiness
func (h *Handlers) HandleCampaignReadiness(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "campaignID")
	h.proxyEngine(w, r, "readiness/"+campaignID, func(authorization string) ([]byte, error) {
		return h.engine.CampaignReadiness(r.Context(), campaignID, authorization)
	}, mockReadiness(campaignID))
}

// HandleAttentionCampaigns proxies the workspace-wide attention list.
//
//	GET /api/v1/campaigns/attention
func (h *Handlers) HandleAttentionCampaigns(w http.ResponseWriter, r *http.Request) {
	h.proxyEngine(w, r, "attention", func(authorization string) ([]byte, error) {
		return h.engine.AttentionCampaigns(r.Context(), authorization)
	}, mockAttention())
}

// HandleNotices proxies the operational notices feed.
//
//	GET /api/v1/campaigns/notices
func (h *Handlers) HandleNotices(w http.ResponseWriter, r *http.Request) {
	h.proxyEngine(w, r, "notices", func(authorization string) ([]byte, error) {
		return h.engine.Notices(r.Context(), authorization)
	}, mockNotices())
}

// executionStatusResponse pairs the engine's raw run state with the projected
// display instruction the dashboard's status card renders directly.
type executionStatusResponse struct {
	salesengine.ExecutionState
	Display execstatus.Display `json:"display"`
}

// HandleExecutionStatus reports a campaign's run state along with the
// icon-copy-color triple to render it. Execution status changes too fast to
// cache, so every request hits the engine.
//
//	GET /api/v1/campaigns/{campaignID}/execution-status
func (h *Handlers) HandleExecutionStatus(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "campaignID")

	var state *salesengine.ExecutionState
	if h.engineConfigured() {
		var err error
		state, err = h.engine.ExecutionStatus(r.Context(), campaignID, r.Header.Get("Authorization"))
		if err != nil {
			logger.Warn("execution status fetch failed, serving mock state",
				"campaign_id", campaignID, "error", err.Error())
			state = nil
		}
	}
	if state == nil {
		state = mockExecutionState(campaignID)
	}

	httputil.OK(w, executionStatusResponse{
		ExecutionState: *state,
		Display:        execstatus.Project(state.Status, state.CurrentStage, state.AwaitingApprovals),
	})
}
