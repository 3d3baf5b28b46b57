package fetch

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/sailwalpranjal/SMART/internal/domain"
	"golang.org/x/time/rate"
)

// defaultUserAgent is a browser-like UA; retailer sites block obvious bots
const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Config holds fetch client settings
type Config struct {
	UserAgent    string
	PageTimeout  time.Duration
	ImageTimeout time.Duration
	MaxRetries   int
	RateLimit    float64 // requests per second
	RateBurst    int
}

// Client fetches retailer pages and image bytes with bounded timeouts,
// limited retry on transient errors, and outbound rate limiting.
type Client struct {
	httpClient   *http.Client
	userAgent    string
	pageTimeout  time.Duration
	imageTimeout time.Duration
	maxRetries   int
	rateLimiter  *rate.Limiter
}

// NewClient creates a new fetch client
func NewClient(cfg Config) *Client {
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.PageTimeout <= 0 {
		cfg.PageTimeout = 15 * time.Second
	}
	if cfg.ImageTimeout <= 0 {
		cfg.ImageTimeout = 20 * time.Second
	}
	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = 3
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 2.0
	}
	if cfg.RateBurst < 1 {
		cfg.RateBurst = 5
	}

	return &Client{
		// Transport-level timeout is a safety net; each call also carries
		// a context deadline sized for its resource kind.
		httpClient:   &http.Client{Timeout: cfg.ImageTimeout + 5*time.Second},
		userAgent:    cfg.UserAgent,
		pageTimeout:  cfg.PageTimeout,
		imageTimeout: cfg.ImageTimeout,
		maxRetries:   cfg.MaxRetries,
		rateLimiter:  rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
	}
}

// Page fetches a product page and returns its body as text
func (c *Client) Page(ctx context.Context, url string) (string, error) {
	body, _, err := c.get(ctx, url, c.pageTimeout, "text/html,application/xhtml+xml")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Bytes fetches a binary resource (image) and returns its bytes and content type
func (c *Client) Bytes(ctx context.Context, url string) ([]byte, string, error) {
	return c.get(ctx, url, c.imageTimeout, "image/*,*/*")
}

// get executes a GET with retry and backoff. Transient failures (network
// errors, 5xx) are retried; 4xx responses are not.
func (c *Client) get(ctx context.Context, url string, timeout time.Duration, accept string) ([]byte, string, error) {
	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		// Wait for rate limiter
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, "", fmt.Errorf("rate limiter error: %w", err)
		}

		body, contentType, retryable, err := c.tryOnce(ctx, url, timeout, accept)
		if err == nil {
			return body, contentType, nil
		}
		lastErr = err
		if !retryable {
			return nil, "", err
		}
		log.Printf("[FETCH] attempt %d/%d failed for %s: %v", attempt, c.maxRetries, url, err)
		if attempt < c.maxRetries {
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
		}
	}
	return nil, "", lastErr
}

// tryOnce executes a single GET bounded by timeout
func (c *Client) tryOnce(ctx context.Context, url string, timeout time.Duration, accept string) ([]byte, string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", accept)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", true, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return nil, "", true, fmt.Errorf("%w: status %d", domain.ErrFetchFailed, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", false, fmt.Errorf("%w: status %d", domain.ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", true, fmt.Errorf("%w: read body: %v", domain.ErrFetchFailed, err)
	}

	return body, resp.Header.Get("Content-Type"), false, nil
}
