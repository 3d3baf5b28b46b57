package sizerec

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sailwalpranjal/SMART/internal/domain"
)

// Client talks to the size recommendation microservice. The service exposes
// POST /api/size-recommendation, POST /api/furniture-placement and GET /health.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a sizing service client
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Recommend requests a size recommendation for detected body landmarks
func (c *Client) Recommend(ctx context.Context, req *domain.SizeRecommendationRequest) (domain.Recommendation, error) {
	return c.post(ctx, "/api/size-recommendation", req)
}

// PlaceFurniture requests furniture placement analysis for a scanned room
func (c *Client) PlaceFurniture(ctx context.Context, req *domain.FurniturePlacementRequest) (domain.Recommendation, error) {
	return c.post(ctx, "/api/furniture-placement", req)
}

// Health checks whether the sizing service is reachable
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSizingUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", domain.ErrSizingUnavailable, resp.StatusCode)
	}
	return nil
}

// post sends a JSON payload and decodes the service's JSON response
func (c *Client) post(ctx context.Context, path string, payload interface{}) (domain.Recommendation, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSizingUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d, body: %s", domain.ErrSizingUnavailable, resp.StatusCode, string(raw))
	}

	var result domain.Recommendation
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return result, nil
}
