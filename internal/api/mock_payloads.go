package api

import "github.com/pipecraft/platform-shell/internal/salesengine"

// Hard-coded fallback payloads, shaped exactly like the engine's real
// responses so the dashboard renders the same components either way. Values
// are fixed on purpose: a changing mock looks like live data.

func mockCampaignMetrics(campaignID string) salesengine.CampaignMetrics {
	return salesengine.CampaignMetrics{
		CampaignID:         campaignID,
		OrgsSourced:        412,
		ContactsDiscovered: 1860,
		ContactsScored:     1310,
		LeadsCreated:       97,
		EmailsDrafted:      84,
		RepliesReceived:    12,
		ConversionRate:     0.052,
		UpdatedAt:          "2026-08-14T09:30:00Z",
	}
}

func mockThroughput(campaignID string) salesengine.ThroughputReport {
	return salesengine.ThroughputReport{
		CampaignID:  campaignID,
		WindowHours: 6,
		Points: []salesengine.ThroughputPoint{
			{Hour: "2026-08-14T04:00:00Z", ContactsProcessed: 240, LeadsCreated: 11},
			{Hour: "2026-08-14T05:00:00Z", ContactsProcessed: 198, LeadsCreated: 9},
			{Hour: "2026-08-14T06:00:00Z", ContactsProcessed: 310, LeadsCreated: 16},
			{Hour: "2026-08-14T07:00:00Z", ContactsProcessed: 275, LeadsCreated: 13},
			{Hour: "2026-08-14T08:00:00Z", ContactsProcessed: 322, LeadsCreated: 18},
			{Hour: "2026-08-14T09:00:00Z", ContactsProcessed: 301, LeadsCreated: 14},
		},
	}
}

func mockReadiness(campaignID string) salesengine.ReadinessReport {
	return salesengine.ReadinessReport{
		CampaignID: campaignID,
		Overall:    "ready",
		Checks: []salesengine.ReadinessCheck{
			{Name: "mailbox_connected", Status: "pass"},
			{Name: "sending_domain_verified", Status: "pass"},
			{Name: "suppression_list_synced", Status: "pass"},
			{Name: "daily_quota_available", Status: "warn", Detail: "74% of daily quota used"},
		},
	}
}

func mockAttention() salesengine.AttentionReport {
	return salesengine.AttentionReport{
		Items: []salesengine.AttentionItem{
			{
				CampaignID: "cmp_demo_outbound_q3",
				Name:       "Q3 Outbound - Fintech",
				Reason:     "12 leads awaiting approval for 2 days",
				Severity:   "warning",
				Since:      "2026-08-12T15:00:00Z",
			},
			{
				CampaignID: "cmp_demo_renewals",
				Name:       "Renewal Nurture",
				Reason:     "reply classification backlog",
				Severity:   "info",
				Since:      "2026-08-14T08:20:00Z",
			},
		},
	}
}

func mockNotices() salesengine.NoticeList {
	return salesengine.NoticeList{
		Notices: []salesengine.Notice{
			{
				ID:        "ntc_engine_offline",
				Level:     "info",
				Message:   "Sales engine connection not configured; showing sample data.",
				CreatedAt: "2026-08-14T09:00:00Z",
			},
		},
	}
}

func mockExecutionState(campaignID string) *salesengine.ExecutionState {
	return &salesengine.ExecutionState{
		CampaignID:        campaignID,
		Status:            "idle",
		AwaitingApprovals: 0,
	}
}
