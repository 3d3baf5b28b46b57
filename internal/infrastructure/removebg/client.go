package removebg

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the background removal sidecar. The sidecar is optional:
// with no base URL configured the pipeline keeps original image bytes.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a background removal client. An empty baseURL produces
// a disabled client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Enabled reports whether a sidecar is configured
func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

// Remove posts image bytes to the sidecar and returns the cut-out result
func (c *Client) Remove(ctx context.Context, image []byte) ([]byte, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("background removal not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/remove", bytes.NewReader(image))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("background removal request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("background removal failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	result, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("background removal returned empty body")
	}

	return result, nil
}
