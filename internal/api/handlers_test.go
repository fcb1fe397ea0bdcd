package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipecraft/platform-shell/internal/funnel"
)

// stubRepo is a canned funnel.Repository for endpoint tests.
type stubRepo struct {
	counts funnel.Counts
	err    error
}

func (s *stubRepo) CountFunnel(ctx context.Context, campaignID string) (funnel.Counts, error) {
	return s.counts, s.err
}

func (s *stubRepo) CountFunnelSimple(ctx context.Context, campaignID string) (funnel.Counts, error) {
	return s.counts, s.err
}

func newTestRouter(h *Handlers) http.Handler {
	return SetupRoutes(h, nil)
}

func doRequest(t *testing.T, handler http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestContactStats_NoDatabase(t *testing.T) {
	router := newTestRouter(NewHandlers(nil))

	rec := doRequest(t, router, http.MethodGet, "/api/campaigns/cmp_42/contact-stats")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"total":0,"pending":0,"processing":0,"ready":0,"blocked":0,"unavailable":0,"leadsCreated":0,"readyWithoutLead":0}`,
		rec.Body.String())
}

func TestContactStats_WithData(t *testing.T) {
	h := NewHandlers(nil)
	h.SetFunnelService(funnel.NewService(&stubRepo{counts: funnel.Counts{
		Total:            120,
		Pending:          30,
		Processing:       20,
		Ready:            40,
		Blocked:          10,
		LeadsCreated:     25,
		ReadyWithoutLead: 15,
	}}))
	router := newTestRouter(h)

	rec := doRequest(t, router, http.MethodGet, "/api/campaigns/cmp_42/contact-stats")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(120), body["total"])
	assert.Equal(t, float64(30), body["pending"])
	assert.Equal(t, float64(40), body["ready"])
	assert.Equal(t, float64(0), body["unavailable"])
	assert.Equal(t, float64(15), body["readyWithoutLead"])
}

func TestContactStats_QueryFailure(t *testing.T) {
	h := NewHandlers(nil)
	h.SetFunnelService(funnel.NewService(&stubRepo{err: errors.New("connection refused")}))
	router := newTestRouter(h)

	rec := doRequest(t, router, http.MethodGet, "/api/campaigns/cmp_42/contact-stats")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "stats unavailable", body["error"])
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestSEOPages_Placeholder(t *testing.T) {
	router := newTestRouter(NewHandlers(nil))

	rec := doRequest(t, router, http.MethodGet, "/api/seo/pages")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Pages      []interface{} `json:"pages"`
		Pagination struct {
			Page       int `json:"page"`
			PerPage    int `json:"perPage"`
			Total      int `json:"total"`
			TotalPages int `json:"totalPages"`
		} `json:"pagination"`
		Meta struct {
			Implemented bool `json:"implemented"`
		} `json:"_meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Empty(t, body.Pages)
	assert.NotNil(t, body.Pages)
	assert.Equal(t, 1, body.Pagination.Page)
	assert.Equal(t, 20, body.Pagination.PerPage)
	assert.Equal(t, 0, body.Pagination.Total)
	assert.False(t, body.Meta.Implemented)
}

func TestSEOPages_WriteMethodsRejected(t *testing.T) {
	router := newTestRouter(NewHandlers(nil))

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		rec := doRequest(t, router, method, "/api/seo/pages")

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, method)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), method)
		assert.Equal(t, "method not allowed", body["error"], method)
	}
}

func TestDeprecatedRun_AlwaysGone(t *testing.T) {
	router := newTestRouter(NewHandlers(nil))

	rec := doRequest(t, router, http.MethodPost, "/api/v1/campaigns/cmp_42/run")

	assert.Equal(t, http.StatusGone, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ENDPOINT_DEPRECATED", body["error"])
	assert.Equal(t, "cmp_42", body["campaignId"])
	assert.NotEmpty(t, body["message"])
}

func TestServerIdentityHeader(t *testing.T) {
	router := newTestRouter(NewHandlers(nil))

	rec := doRequest(t, router, http.MethodGet, "/api/seo/pages")

	assert.Equal(t, "platform-shell-v1.0", rec.Header().Get("X-Server-Identity"))
}
