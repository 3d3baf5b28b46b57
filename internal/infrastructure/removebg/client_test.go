package removebg

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnabled(t *testing.T) {
	assert.False(t, NewClient("", time.Second).Enabled())
	assert.True(t, NewClient("http://removebg:7000", time.Second).Enabled())
}

func TestRemove_Success(t *testing.T) {
	input := []byte{0x89, 0x50, 0x4E, 0x47}
	output := []byte{0x01, 0x02, 0x03}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/remove", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, input, body)

		w.Write(output)
	}))
	defer server.Close()

	result, err := NewClient(server.URL, time.Second).Remove(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, output, result)
}

func TestRemove_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewClient(server.URL, time.Second).Remove(context.Background(), []byte{0x01})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestRemove_EmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := NewClient(server.URL, time.Second).Remove(context.Background(), []byte{0x01})
	assert.Error(t, err)
}

func TestRemove_Disabled(t *testing.T) {
	_, err := NewClient("", time.Second).Remove(context.Background(), []byte{0x01})
	assert.Error(t, err)
}
