package domain

import (
	"context"
	"time"
)

// PageFetcher fetches remote resources for extraction.
// Page returns text for HTML documents; Bytes returns raw bytes plus
// content type for binary resources like images.
type PageFetcher interface {
	Page(ctx context.Context, url string) (string, error)
	Bytes(ctx context.Context, url string) ([]byte, string, error)
}

// ImageProcessor prepares product images for AR use
type ImageProcessor interface {
	// Metadata reads dimensions and alpha information without transforming
	Metadata(data []byte) (*ImageMetadata, error)
	// Process resizes to the configured bounds when needed and re-encodes
	Process(data []byte) ([]byte, *ImageMetadata, error)
	// DataURI wraps already-encoded JPEG bytes as an embeddable data URI
	DataURI(data []byte) string
}

// BackgroundRemover strips the background from a product image.
// Enabled tells the pipeline whether removal is configured at all.
type BackgroundRemover interface {
	Enabled() bool
	Remove(ctx context.Context, image []byte) ([]byte, error)
}

// SizeRecommender is the client interface for the sizing microservice
type SizeRecommender interface {
	Recommend(ctx context.Context, req *SizeRecommendationRequest) (Recommendation, error)
	PlaceFurniture(ctx context.Context, req *FurniturePlacementRequest) (Recommendation, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
