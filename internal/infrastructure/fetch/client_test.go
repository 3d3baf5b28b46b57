package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sailwalpranjal/SMART/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testClient builds a client with a high rate limit so tests don't stall
func testClient() *Client {
	return NewClient(Config{RateLimit: 1000, RateBurst: 1000})
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(Config{})

	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.rateLimiter)
	assert.Equal(t, defaultUserAgent, client.userAgent)
	assert.Equal(t, 15*time.Second, client.pageTimeout)
	assert.Equal(t, 20*time.Second, client.imageTimeout)
	assert.Equal(t, 3, client.maxRetries)
}

func TestPage_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		assert.Contains(t, r.Header.Get("Accept"), "text/html")
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><body><h1>Product</h1></body></html>"))
	}))
	defer server.Close()

	body, err := testClient().Page(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Contains(t, body, "<h1>Product</h1>")
}

func TestPage_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := testClient().Page(context.Background(), server.URL)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFetchFailed))
}

func TestPage_NoRetryOn4xx(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := testClient().Page(context.Background(), server.URL)

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load(), "4xx responses must not be retried")
}

func TestPage_RetriesOn5xx(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	body, err := testClient().Page(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, "<html></html>", body)
	assert.Equal(t, int32(3), calls.Load())
}

func TestBytes_ReturnsContentType(t *testing.T) {
	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write(payload)
	}))
	defer server.Close()

	body, contentType, err := testClient().Bytes(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, payload, body)
	assert.Equal(t, "image/jpeg", contentType)
}

func TestPage_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testClient().Page(ctx, server.URL)
	require.Error(t, err)
}
