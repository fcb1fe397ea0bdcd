package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipecraft/platform-shell/internal/auth"
	"github.com/pipecraft/platform-shell/internal/config"
	"github.com/pipecraft/platform-shell/internal/funnel"
)

func writeStaticSite(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>dashboard</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log('shell')"), 0o644))
	return dir
}

func newStaticConfig(t *testing.T) *config.Config {
	cfg := &config.Config{}
	cfg.Static.Dir = writeStaticSite(t)
	return cfg
}

func TestStaticGate_EnforcedWhenConfigured(t *testing.T) {
	gate := auth.NewGate("ops", "hunter2")
	router := SetupRoutes(NewHandlers(newStaticConfig(t)), gate)

	// No credentials: challenged
	rec := doRequest(t, router, http.MethodGet, "/")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "Basic")

	// Wrong credentials: rejected
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.SetBasicAuth("ops", "wrong")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Valid credentials: the dashboard loads
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.SetBasicAuth("ops", "hunter2")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "dashboard")
}

func TestStaticGate_OpenWithoutCredentials(t *testing.T) {
	gate := auth.NewGate("", "")
	router := SetupRoutes(NewHandlers(newStaticConfig(t)), gate)

	rec := doRequest(t, router, http.MethodGet, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "dashboard")
}

func TestStaticGate_NeverCoversAPI(t *testing.T) {
	gate := auth.NewGate("ops", "hunter2")
	router := SetupRoutes(NewHandlers(newStaticConfig(t)), gate)

	rec := doRequest(t, router, http.MethodGet, "/api/seo/pages")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStatic_ServesAssetsAndSPAFallback(t *testing.T) {
	router := SetupRoutes(NewHandlers(newStaticConfig(t)), nil)

	// Real file served directly
	rec := doRequest(t, router, http.MethodGet, "/app.js")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "console.log")

	// Unknown path falls back to index.html for client-side routing
	rec = doRequest(t, router, http.MethodGet, "/campaigns/cmp_42/overview")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "dashboard")
}

func TestServer_WiresSubsystemsLate(t *testing.T) {
	cfg := &config.Config{}
	cfg.Static.Dir = writeStaticSite(t)
	gate := auth.NewGate("ops", "hunter2")

	srv := NewServer(cfg, gate)
	srv.SetFunnelService(funnel.NewService(&stubRepo{counts: funnel.Counts{Total: 3, Ready: 3}}))
	srv.RegisterHealthRoutes()

	// Stats flow through a service attached after route setup
	rec := doRequest(t, srv.Handler(), http.MethodGet, "/api/campaigns/cmp_1/contact-stats")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":3`)

	// Health stays outside the gate
	rec = doRequest(t, srv.Handler(), http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, srv.Handler(), http.MethodGet, "/health/live")
	assert.Equal(t, http.StatusOK, rec.Code)
}
