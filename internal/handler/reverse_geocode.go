package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"geocoding-client/googlegeo"
	"geocoding-client/internal/models"

	"github.com/gin-gonic/gin"
)

// ReverseGeocodeHandler handles reverse geocoding requests
type ReverseGeocodeHandler struct {
	service GeoCodingService
}

// Service interface for dependency injection
type GeoCodingService interface {
	ReverseGeocode(context.Context, float64, float64) (*models.Location, error)
}

// NewReverseGeocodeHandler creates a new reverse geocode handler
func NewReverseGeocodeHandler(svc GeoCodingService) *ReverseGeocodeHandler {
	return &ReverseGeocodeHandler{service: svc}
}

// ReverseGeocode handles GET /reverse-geocode requests
func (h *ReverseGeocodeHandler) ReverseGeocode(c *gin.Context) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")

	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'lat' and 'lon'"})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return
	}

	location, err := h.service.ReverseGeocode(c.Request.Context(), lat, lon)
	if err != nil {
		if errors.Is(err, googlegeo.ErrInvalidCoordinates) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
			return
		}
		status, message := upstreamError(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	if location == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no address found near the specified coordinates"})
		return
	}

	c.JSON(http.StatusOK, location)
}

// upstreamError maps a service failure to an HTTP status and message. API
// status failures keep their classification; everything else is opaque.
func upstreamError(err error) (int, string) {
	var statusErr *googlegeo.StatusError
	if !errors.As(err, &statusErr) {
		return http.StatusInternalServerError, "internal server error"
	}

	switch statusErr.Status {
	case googlegeo.StatusInvalidRequest:
		return http.StatusBadRequest, "invalid geocoding request"
	case googlegeo.StatusOverQueryLimit:
		return http.StatusServiceUnavailable, "geocoding quota exceeded"
	case googlegeo.StatusRequestDenied:
		return http.StatusBadGateway, "geocoding request denied"
	default:
		return http.StatusBadGateway, "geocoding service error"
	}
}
