// A hardcoded stand-in for the sales engine, for local dashboard work.
// Point the shell at it with SALES_ENGINE_URL=http://localhost:9090 to see
// the proxy path exercised instead of the built-in mock fallbacks.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/pipecraft/platform-shell/internal/salesengine"
)

func main() {
	log.Println("╔════════════════════════════════════════════════════════════╗")
	log.Println("║  WARNING: This is a STUB sales engine for local use ONLY. ║")
	log.Println("║  All responses are HARDCODED placeholders.                ║")
	log.Println("╚════════════════════════════════════════════════════════════╝")

	port := os.Getenv("STUB_ENGINE_PORT")
	if port == "" {
		port = "9090"
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"stub-engine","warning":"THIS IS A STUB - responses are hardcoded"}`))
	})

	mux.HandleFunc("GET /api/v1/campaigns/attention", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, salesengine.AttentionReport{
			Items: []salesengine.AttentionItem{
				{
					CampaignID: "cmp_stub_1",
					Name:       "Stub Outbound",
					Reason:     "8 leads awaiting approval",
					Severity:   "warning",
					Since:      time.Now().UTC().Add(-36 * time.Hour).Format(time.RFC3339),
				},
			},
		})
	})

	mux.HandleFunc("GET /api/v1/campaigns/notices", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, salesengine.NoticeList{
			Notices: []salesengine.Notice{
				{
					ID:        "ntc_stub_1",
					Level:     "info",
					Message:   "You are talking to the stub engine.",
					CreatedAt: time.Now().UTC().Format(time.RFC3339),
				},
			},
		})
	})

	mux.HandleFunc("GET /api/v1/campaigns/{id}/metrics", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, salesengine.CampaignMetrics{
			CampaignID:         r.PathValue("id"),
			OrgsSourced:        120,
			ContactsDiscovered: 540,
			ContactsScored:     390,
			LeadsCreated:       41,
			EmailsDrafted:      35,
			RepliesReceived:    6,
			ConversionRate:     0.076,
			UpdatedAt:          time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.HandleFunc("GET /api/v1/campaigns/{id}/throughput", func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().UTC().Truncate(time.Hour)
		points := make([]salesengine.ThroughputPoint, 0, 6)
		for i := 5; i >= 0; i-- {
			points = append(points, salesengine.ThroughputPoint{
				Hour:              now.Add(-time.Duration(i) * time.Hour).Format(time.RFC3339),
				ContactsProcessed: 150 + 40*i,
				LeadsCreated:      5 + i,
			})
		}
		writeJSON(w, salesengine.ThroughputReport{
			CampaignID:  r.PathValue("id"),
			WindowHours: 6,
			Points:      points,
		})
	})

	mux.HandleFunc("GET /api/v1/campaigns/{id}/readiness", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, salesengine.ReadinessReport{
			CampaignID: r.PathValue("id"),
			Overall:    "ready",
			Checks: []salesengine.ReadinessCheck{
				{Name: "mailbox_connected", Status: "pass"},
				{Name: "sending_domain_verified", Status: "pass"},
				{Name: "suppression_list_synced", Status: "warn", Detail: "last sync 3h ago"},
			},
		})
	})

	// Execution status cycles through the run lifecycle every 15 seconds so
	// the dashboard's status card can be watched changing.
	mux.HandleFunc("GET /api/v1/campaigns/{id}/execution-status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, cycledState(r.PathValue("id")))
	})

	addr := ":" + port
	log.Printf("Stub engine listening on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("stub engine: %v", err)
	}
}

var lifecycle = []salesengine.ExecutionState{
	{Status: "idle"},
	{Status: "queued"},
	{Status: "running", CurrentStage: "orgs_sourced"},
	{Status: "running", CurrentStage: "contacts_discovered"},
	{Status: "running", CurrentStage: "contacts_scored"},
	{Status: "running", CurrentStage: "readiness_checked"},
	{Status: "running", CurrentStage: "leads_created"},
	{Status: "running", CurrentStage: "emails_drafted"},
	{Status: "awaiting_approvals", AwaitingApprovals: 7},
	{Status: "completed"},
}

func cycledState(campaignID string) salesengine.ExecutionState {
	step := int(time.Now().Unix()/15) % len(lifecycle)
	state := lifecycle[step]
	state.CampaignID = campaignID
	state.RunID = fmt.Sprintf("run_stub_%d", step)
	state.LastEventAt = time.Now().UTC().Format(time.RFC3339)
	return state
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}
