package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aqisense/aqi-sense/internal/domain/advisor"
	"github.com/aqisense/aqi-sense/internal/domain/location"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	advisorSvc  advisor.Service
	locationSvc location.Service
	logger      *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(advisorSvc advisor.Service, locationSvc location.Service, logger *slog.Logger) *Handler {
	return &Handler{
		advisorSvc:  advisorSvc,
		locationSvc: locationSvc,
		logger:      logger.With("component", "http.handler"),
	}
}

// AQIAdvice returns current air quality, a short forecast and AI health
// guidance for a location.
func (h *Handler) AQIAdvice(c *gin.Context) {
	var req advisor.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "invalid request payload", err))
		return
	}

	result, err := h.advisorSvc.GetAdvice(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, asHTTPError(err))
		return
	}

	respondSuccess(c, result, "")
}

// SearchLocation performs a forward geocode and returns candidate places.
func (h *Handler) SearchLocation(c *gin.Context) {
	var req struct {
		Query string `json:"query"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "search query is required", err))
		return
	}

	results, err := h.locationSvc.Search(c.Request.Context(), req.Query)
	if err != nil {
		abortWithError(c, asHTTPError(err))
		return
	}

	respondSuccess(c, results, fmt.Sprintf("Found %d locations", len(results)))
}

// TrendingLocations lists the most looked-up places.
func (h *Handler) TrendingLocations(c *gin.Context) {
	items, err := h.locationSvc.Trending(c.Request.Context())
	if err != nil {
		abortWithError(c, asHTTPError(err))
		return
	}
	respondSuccess(c, items, "")
}

// Health probes the air-quality data path.
func (h *Handler) Health(c *gin.Context) {
	snapshot := h.advisorSvc.Health(c.Request.Context())
	h.logger.Debug("health probe", "aqi", snapshot.AQI, "source", snapshot.Source)
	respondSuccess(c, nil, "AQI service is operational")
}
