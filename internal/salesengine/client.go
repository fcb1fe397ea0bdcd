// Package salesengine is the HTTP client for the sales engine's observability
// API. The shell forwards dashboard reads to it and serves canned payloads
// when the engine is unreachable or not configured.
package salesengine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotConfigured is returned by every call when no engine base URL is set.
var ErrNotConfigured = errors.New("sales engine not configured")

// HTTPDoer is the minimal HTTP client surface used by Client. *http.Client
// satisfies it; tests substitute their own.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls the sales engine API. Requests carry the dashboard user's
// Authorization header unchanged; the shell holds no engine credentials of
// its own. There are no retries: a failed read falls back to mock data at
// the handler layer.
type Client struct {
	baseURL    string
	httpClient HTTPDoer
}

// NewClient creates an engine client. An empty baseURL yields an unconfigured
// client whose calls all return ErrNotConfigured.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SetHTTPClient sets a custom HTTP client (useful for testing)
func (c *Client) SetHTTPClient(client HTTPDoer) {
	c.httpClient = client
}

// Configured reports whether an engine base URL is set.
func (c *Client) Configured() bool {
	return c != nil && c.baseURL != ""
}

// get performs a GET against the engine and returns the raw response body.
// The caller's Authorization header is forwarded as-is; every request gets
// its own X-Request-ID for cross-system tracing.
func (c *Client) get(ctx context.Context, endpoint, authorization string) ([]byte, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("engine error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

// CampaignMetrics returns the engine's pipeline rollup for one campaign,
// raw, for passthrough to the dashboard.
func (c *Client) CampaignMetrics(ctx context.Context, campaignID, authorization string) ([]byte, error) {
	return c.get(ctx, fmt.Sprintf("/api/v1/campaigns/%s/metrics", campaignID), authorization)
}

// CampaignThroughput returns the hourly throughput series for one campaign.
func (c *Client) CampaignThroughput(ctx context.Context, campaignID, authorization string) ([]byte, error) {
	return c.get(ctx, fmt.Sprintf("/api/v1/campaigns/%s/throughput", campaignID), authorization)
}

// CampaignReadiness returns the engine's pre-run checklist for one campaign.
func (c *Client) CampaignReadiness(ctx context.Context, campaignID, authorization string) ([]byte, error) {
	return c.get(ctx, fmt.Sprintf("/api/v1/campaigns/%s/readiness", campaignID), authorization)
}

// AttentionCampaigns returns the workspace-wide attention list.
func (c *Client) AttentionCampaigns(ctx context.Context, authorization string) ([]byte, error) {
	return c.get(ctx, "/api/v1/campaigns/attention", authorization)
}

// Notices returns the operational notices feed.
func (c *Client) Notices(ctx context.Context, authorization string) ([]byte, error) {
	return c.get(ctx, "/api/v1/campaigns/notices", authorization)
}

// ExecutionStatus returns the engine's run report for one campaign, parsed
// so the shell can attach a display projection.
func (c *Client) ExecutionStatus(ctx context.Context, campaignID, authorization string) (*ExecutionState, error) {
	respBody, err := c.get(ctx, fmt.Sprintf("/api/v1/campaigns/%s/execution-status", campaignID), authorization)
	if err != nil {
		return nil, err
	}

	var state ExecutionState
	if err := json.Unmarshal(respBody, &state); err != nil {
		return nil, fmt.Errorf("failed to parse execution status: %w", err)
	}
	return &state, nil
}

// HealthCheck performs a cheap reachability probe against the engine.
func (c *Client) HealthCheck(ctx context.Context) error {
	_, err := c.get(ctx, "/api/v1/campaigns/notices", "")
	return err
}
