package sizerec

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sailwalpranjal/SMART/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recommendationRequest() *domain.SizeRecommendationRequest {
	return &domain.SizeRecommendationRequest{
		BodyLandmarks: []map[string]float64{
			{"x": 0.4, "y": 0.2, "z": 0.0},
			{"x": 0.6, "y": 0.2, "z": 0.0},
		},
		ImageDimensions: []int{640, 480},
		ProductData: map[string]interface{}{
			"type": "clothing",
			"measurements": map[string]interface{}{
				"M": map[string]interface{}{"chest": 96.0},
			},
		},
	}
}

func TestRecommend_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/size-recommendation", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Contains(t, payload, "bodyLandmarks")
		assert.Contains(t, payload, "imageDimensions")
		assert.Contains(t, payload, "productData")

		json.NewEncoder(w).Encode(map[string]interface{}{
			"recommendedSize": "M",
			"confidence":      0.87,
		})
	}))
	defer server.Close()

	result, err := NewClient(server.URL, time.Second).Recommend(context.Background(), recommendationRequest())

	require.NoError(t, err)
	assert.Equal(t, "M", result["recommendedSize"])
	assert.InDelta(t, 0.87, result["confidence"], 0.001)
}

func TestPlaceFurniture_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/furniture-placement", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{"fits": true})
	}))
	defer server.Close()

	result, err := NewClient(server.URL, time.Second).PlaceFurniture(context.Background(), &domain.FurniturePlacementRequest{
		RoomData:      map[string]interface{}{"width": 4.0},
		FurnitureData: map[string]interface{}{"width": 1.2},
	})

	require.NoError(t, err)
	assert.Equal(t, true, result["fits"])
}

func TestRecommend_ServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad landmarks", http.StatusBadRequest)
	}))
	defer server.Close()

	_, err := NewClient(server.URL, time.Second).Recommend(context.Background(), recommendationRequest())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSizingUnavailable))
}

func TestHealth(t *testing.T) {
	t.Run("healthy service", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
		}))
		defer server.Close()

		assert.NoError(t, NewClient(server.URL, time.Second).Health(context.Background()))
	})

	t.Run("unreachable service", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		err := NewClient(server.URL, time.Second).Health(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrSizingUnavailable))
	})
}
