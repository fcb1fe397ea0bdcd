package tests

// User story tests for the platform shell. Each story drives the real HTTP
// surface end to end: router, handlers, funnel service, engine client, and
// cache, with only the process edges (Postgres, Redis, engine) faked.

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipecraft/platform-shell/internal/api"
	"github.com/pipecraft/platform-shell/internal/auth"
	"github.com/pipecraft/platform-shell/internal/cache"
	"github.com/pipecraft/platform-shell/internal/config"
	"github.com/pipecraft/platform-shell/internal/funnel"
	"github.com/pipecraft/platform-shell/internal/repository/postgres"
	"github.com/pipecraft/platform-shell/internal/salesengine"
)

// =============================================================================
// TEST INFRASTRUCTURE
// =============================================================================

var funnelColumns = []string{"total", "pending", "processing", "ready", "blocked", "leads_created", "ready_without_lead"}

var funnelSimpleColumns = []string{"total", "ready", "blocked", "leads_created", "ready_without_lead"}

// ShellContext holds the shell plus fakes for everything at its edges.
type ShellContext struct {
	DB         *sql.DB
	Mock       sqlmock.Sqlmock
	MiniR      *miniredis.Miniredis
	Redis      *redis.Client
	Engine     *httptest.Server
	EngineHits *atomic.Int64
	Server     *api.Server
}

type shellOptions struct {
	engineHandler http.HandlerFunc
	gate          *auth.Gate
	withCache     bool
}

func setupShell(t *testing.T, opts shellOptions) *ShellContext {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<html>platform shell</html>"), 0o644))

	cfg := &config.Config{}
	cfg.Static.Dir = staticDir

	tc := &ShellContext{
		DB:         db,
		Mock:       mock,
		EngineHits: &atomic.Int64{},
	}

	srv := api.NewServer(cfg, opts.gate)
	srv.SetFunnelService(funnel.NewService(postgres.NewContactRepo(db)))

	if opts.engineHandler != nil {
		tc.Engine = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tc.EngineHits.Add(1)
			opts.engineHandler(w, r)
		}))
		t.Cleanup(tc.Engine.Close)
		srv.SetEngineClient(salesengine.NewClient(tc.Engine.URL, 2*time.Second))
	}

	if opts.withCache {
		tc.MiniR = miniredis.RunT(t)
		tc.Redis = redis.NewClient(&redis.Options{Addr: tc.MiniR.Addr()})
		t.Cleanup(func() { tc.Redis.Close() })
		srv.SetCache(cache.New(tc.Redis, 30*time.Second))
	}

	tc.Server = srv
	return tc
}

func getJSON(t *testing.T, handler http.Handler, target, authorization string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var body map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	}
	return rec, body
}

// =============================================================================
// US-001: Operator opens a campaign dashboard
// =============================================================================

func TestUS001_CampaignDashboardLoads(t *testing.T) {
	tc := setupShell(t, shellOptions{
		engineHandler: func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			switch r.URL.Path {
			case "/api/v1/campaigns/cmp_fin_q3/metrics":
				w.Write([]byte(`{"campaignId":"cmp_fin_q3","orgsSourced":88,"leadsCreated":14}`))
			case "/api/v1/campaigns/cmp_fin_q3/execution-status":
				w.Write([]byte(`{"campaignId":"cmp_fin_q3","status":"running","currentStage":"leads_created","runId":"run_31"}`))
			default:
				http.NotFound(w, r)
			}
		},
	})

	t.Run("Criterion1_ContactFunnelRenders", func(t *testing.T) {
		// Given: the engine wrote 200 contacts in every lifecycle state
		tc.Mock.ExpectQuery("scored_at IS NULL").
			WithArgs("cmp_fin_q3").
			WillReturnRows(sqlmock.NewRows(funnelColumns).AddRow(200, 40, 25, 80, 30, 50, 35))

		rec, body := getJSON(t, tc.Server.Handler(), "/api/campaigns/cmp_fin_q3/contact-stats", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(200), body["total"])
		assert.Equal(t, float64(80), body["ready"])
		assert.Equal(t, float64(35), body["readyWithoutLead"])
		assert.Equal(t, float64(0), body["unavailable"])
	})

	t.Run("Criterion2_ExecutionStatusCardShowsStage", func(t *testing.T) {
		rec, body := getJSON(t, tc.Server.Handler(), "/api/v1/campaigns/cmp_fin_q3/execution-status", "Bearer op-token")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "running", body["status"])

		display := body["display"].(map[string]interface{})
		assert.Equal(t, "spinner", display["icon"])
		assert.Equal(t, "Creating leads", display["copy"])
	})

	t.Run("Criterion3_MetricsProxiedFromEngine", func(t *testing.T) {
		rec, body := getJSON(t, tc.Server.Handler(), "/api/v1/campaigns/cmp_fin_q3/metrics", "Bearer op-token")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(88), body["orgsSourced"])
	})

	require.NoError(t, tc.Mock.ExpectationsWereMet())
}

// =============================================================================
// US-002: Engine outage never blanks the dashboard
// =============================================================================

func TestUS002_EngineOutageFallback(t *testing.T) {
	tc := setupShell(t, shellOptions{
		engineHandler: func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "engine on fire", http.StatusInternalServerError)
		},
	})

	routes := []string{
		"/api/v1/campaigns/cmp_1/metrics",
		"/api/v1/campaigns/cmp_1/throughput",
		"/api/v1/campaigns/cmp_1/readiness",
		"/api/v1/campaigns/attention",
		"/api/v1/campaigns/notices",
	}

	t.Run("Criterion1_AllProxyRoutesServeMocks", func(t *testing.T) {
		for _, route := range routes {
			rec, _ := getJSON(t, tc.Server.Handler(), route, "Bearer op-token")
			assert.Equal(t, http.StatusOK, rec.Code, route)
			assert.NotContains(t, rec.Body.String(), "engine on fire", route)
		}
	})

	t.Run("Criterion2_ExecutionStatusFallsBackToIdle", func(t *testing.T) {
		rec, body := getJSON(t, tc.Server.Handler(), "/api/v1/campaigns/cmp_1/execution-status", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "idle", body["status"])

		display := body["display"].(map[string]interface{})
		assert.Equal(t, "Idle", display["copy"])
	})
}

// =============================================================================
// US-003: Legacy run button gets a clear refusal
// =============================================================================

func TestUS003_LegacyRunButtonRefused(t *testing.T) {
	tc := setupShell(t, shellOptions{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/cmp_old/run", nil)
	rec := httptest.NewRecorder()
	tc.Server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusGone, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ENDPOINT_DEPRECATED", body["error"])
}

// =============================================================================
// US-004: Legacy contact rows still produce a funnel
// =============================================================================

func TestUS004_LegacyRowsReclassified(t *testing.T) {
	tc := setupShell(t, shellOptions{})

	// Given: 150 contacts whose rows predate the lifecycle columns, so the
	// full classification comes back all-zero
	tc.Mock.ExpectQuery("scored_at IS NULL").
		WithArgs("cmp_2019").
		WillReturnRows(sqlmock.NewRows(funnelColumns).AddRow(150, 0, 0, 0, 0, 0, 0))
	tc.Mock.ExpectQuery("email_usable IS NOT TRUE").
		WithArgs("cmp_2019").
		WillReturnRows(sqlmock.NewRows(funnelSimpleColumns).AddRow(150, 90, 60, 20, 90))

	rec, body := getJSON(t, tc.Server.Handler(), "/api/campaigns/cmp_2019/contact-stats", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(150), body["total"])
	assert.Equal(t, float64(90), body["ready"])
	assert.Equal(t, float64(60), body["blocked"])
	assert.Equal(t, float64(0), body["pending"])

	require.NoError(t, tc.Mock.ExpectationsWereMet())
}

// =============================================================================
// US-005: Dashboard gate keeps strangers out, probes in
// =============================================================================

func TestUS005_DashboardGate(t *testing.T) {
	tc := setupShell(t, shellOptions{gate: auth.NewGate("ops", "s3cret")})
	tc.Server.RegisterHealthRoutes()

	t.Run("Criterion1_StrangerChallenged", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		tc.Server.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "Basic")
	})

	t.Run("Criterion2_OperatorAdmitted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.SetBasicAuth("ops", "s3cret")
		rec := httptest.NewRecorder()
		tc.Server.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "platform shell")
	})

	t.Run("Criterion3_APIAndHealthStayOpen", func(t *testing.T) {
		rec, _ := getJSON(t, tc.Server.Handler(), "/api/seo/pages", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		rec, _ = getJSON(t, tc.Server.Handler(), "/health/live", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

// =============================================================================
// US-006: Repeated dashboard reads are served from cache
// =============================================================================

func TestUS006_ProxyReadsCached(t *testing.T) {
	tc := setupShell(t, shellOptions{
		withCache: true,
		engineHandler: func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"campaignId":"cmp_7","orgsSourced":12}`))
		},
	})

	t.Run("Criterion1_SecondReadSkipsEngine", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			rec, _ := getJSON(t, tc.Server.Handler(), "/api/v1/campaigns/cmp_7/metrics", "Bearer alice")
			assert.Equal(t, http.StatusOK, rec.Code)
		}
		assert.Equal(t, int64(1), tc.EngineHits.Load())
	})

	t.Run("Criterion2_DifferentCallerMissesCache", func(t *testing.T) {
		rec, _ := getJSON(t, tc.Server.Handler(), "/api/v1/campaigns/cmp_7/metrics", "Bearer bob")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(2), tc.EngineHits.Load())
	})

	t.Run("Criterion3_ExpiryRefetches", func(t *testing.T) {
		tc.MiniR.FastForward(time.Minute)

		rec, _ := getJSON(t, tc.Server.Handler(), "/api/v1/campaigns/cmp_7/metrics", "Bearer alice")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(3), tc.EngineHits.Load())
	})
}
