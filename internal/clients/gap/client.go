// Package gap provides the HTTP client for the external curriculum
// gap-analysis service.
package gap

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bobmcallan/compass/internal/common"
)

// Client posts curriculum payloads to the gap-analysis service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
}

// NewClient creates a gap service client from config. An empty base URL
// produces an unconfigured client; Analyze will fail until one is set.
func NewClient(logger *common.Logger, config common.GapConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		httpClient: &http.Client{Timeout: config.GetTimeout()},
		logger:     logger,
	}
}

// Configured reports whether a service base URL has been set.
func (c *Client) Configured() bool {
	return c.baseURL != ""
}

// Analyze posts a JSON payload to the service's /educator_gap endpoint and
// relays the upstream status code and body.
func (c *Client) Analyze(ctx context.Context, payload []byte) (int, []byte, error) {
	if c.baseURL == "" {
		return 0, nil, fmt.Errorf("gap analysis service is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/educator_gap", bytes.NewReader(payload))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build gap service request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("gap service request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read gap service response: %w", err)
	}

	c.logger.Debug().Int("status", resp.StatusCode).Int("bytes", len(body)).Msg("Gap analysis forwarded")
	return resp.StatusCode, body, nil
}
