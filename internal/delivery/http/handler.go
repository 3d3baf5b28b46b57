package http

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/sailwalpranjal/SMART/internal/domain"
	"github.com/sailwalpranjal/SMART/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	extractor *usecase.Extractor
	sizing    *usecase.SizingService
}

// NewHandler creates a new HTTP handler
func NewHandler(extractor *usecase.Extractor, sizing *usecase.SizingService) *Handler {
	return &Handler{
		extractor: extractor,
		sizing:    sizing,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"service":          "smart-backend",
		"version":          "1.0.0",
		"sizing_available": h.sizing.Available(),
	})
}

// ExtractProduct handles product page extraction requests.
// Extraction failures of any kind surface as one opaque message; the
// cause is in the server log, never in the response.
func (h *Handler) ExtractProduct(c *gin.Context) {
	var req domain.ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body: url is required",
		})
		return
	}

	if !isProductURL(req.URL) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": domain.ErrExtractionFailed.Error(),
		})
		return
	}

	record, err := h.extractor.Extract(c.Request.Context(), req.URL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": domain.ErrExtractionFailed.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, record)
}

// SizeRecommendation proxies a size recommendation request to the ML
// microservice
func (h *Handler) SizeRecommendation(c *gin.Context) {
	var req domain.SizeRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	recommendation, err := h.sizing.Recommend(c.Request.Context(), &req)
	if err != nil {
		h.sizingError(c, err)
		return
	}

	c.JSON(http.StatusOK, recommendation)
}

// FurniturePlacement proxies a furniture placement check to the ML
// microservice
func (h *Handler) FurniturePlacement(c *gin.Context) {
	var req domain.FurniturePlacementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	placement, err := h.sizing.PlaceFurniture(c.Request.Context(), &req)
	if err != nil {
		h.sizingError(c, err)
		return
	}

	c.JSON(http.StatusOK, placement)
}

func (h *Handler) sizingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrSizingUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Size recommendation service is unavailable",
		})
	default:
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Size recommendation failed",
		})
	}
}

// isProductURL rejects obviously malformed URLs before the extractor
// spends a fetch on them
func isProductURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
