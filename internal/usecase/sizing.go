package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/sailwalpranjal/SMART/internal/domain"
)

// SizingServiceConfig holds configuration for the sizing service
type SizingServiceConfig struct {
	CacheTTL time.Duration
}

// SizingService proxies the size recommendation microservice and caches
// its responses. Recommendations are deterministic for identical inputs,
// so a short-lived cache saves the client repeated round trips while the
// user holds a pose.
type SizingService struct {
	cache    domain.CacheRepository
	client   domain.SizeRecommender
	cacheTTL time.Duration
}

// NewSizingService creates a sizing service. A nil client means the
// microservice is not configured; calls then fail with ErrSizingUnavailable.
func NewSizingService(
	cache domain.CacheRepository,
	client domain.SizeRecommender,
	config SizingServiceConfig,
) *SizingService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = time.Hour
	}

	return &SizingService{
		cache:    cache,
		client:   client,
		cacheTTL: cacheTTL,
	}
}

// Available reports whether the sizing microservice is configured
func (s *SizingService) Available() bool {
	return s.client != nil
}

// Recommend returns a size recommendation for the detected body landmarks.
/// Flow: validate -> check cache -> call microservice -> cache -> return.
func (s *SizingService) Recommend(ctx context.Context, req *domain.SizeRecommendationRequest) (domain.Recommendation, error) {
	if req == nil || len(req.BodyLandmarks) == 0 || len(req.ImageDimensions) != 2 {
		return nil, domain.ErrInvalidRequest
	}
	if s.client == nil {
		return nil, domain.ErrSizingUnavailable
	}

	key := recommendationCacheKey(req)

	if s.cache != nil && key != "" {
		if cached, err := s.cache.Get(ctx, key); err == nil {
			if recommendation, ok := cached.(domain.Recommendation); ok {
				return recommendation, nil
			}
		}
	}

	recommendation, err := s.client.Recommend(ctx, req)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && key != "" {
		if err := s.cache.Set(ctx, key, recommendation, s.cacheTTL); err != nil {
			// Log but don't fail if caching fails
			log.Printf("[SIZING] failed to cache recommendation: %v", err)
		}
	}

	return recommendation, nil
}

// PlaceFurniture proxies furniture placement analysis. Room scans differ
// on every call, so placement results are not cached.
func (s *SizingService) PlaceFurniture(ctx context.Context, req *domain.FurniturePlacementRequest) (domain.Recommendation, error) {
	if req == nil || req.RoomData == nil || req.FurnitureData == nil {
		return nil, domain.ErrInvalidRequest
	}
	if s.client == nil {
		return nil, domain.ErrSizingUnavailable
	}

	return s.client.PlaceFurniture(ctx, req)
}

// recommendationCacheKey hashes the full request into a cache key.
// Empty when the request can't be serialized; callers then skip caching.
func recommendationCacheKey(req *domain.SizeRecommendationRequest) string {
	payload, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(payload)
	return fmt.Sprintf("sizing:%x", sum[:8])
}
