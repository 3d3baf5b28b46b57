package domain

import "errors"

var (
	// ErrExtractionFailed is the single user-facing error for a failed extraction.
	// The message is part of the API contract; the internal cause is logged
	// before the boundary collapses into this error.
	ErrExtractionFailed = errors.New("Failed to parse product URL")

	// ErrFetchFailed is returned when a page or image cannot be fetched
	ErrFetchFailed = errors.New("fetch failed")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrSizingUnavailable is returned when the sizing microservice is not configured
	ErrSizingUnavailable = errors.New("size recommendation service unavailable")
)
