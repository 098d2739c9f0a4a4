package handler

import (
	"context"
	"net/http"

	"location-proxy/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// GeocodeFailureMessage is the plain-text body of every failed geocode request.
const GeocodeFailureMessage = "Failed to fetch location data"

// ReverseGeocodeHandler handles reverse geocoding requests
type ReverseGeocodeHandler struct {
	service GeoCodingService
	log     zerolog.Logger
}

// Service interface for dependency injection
type GeoCodingService interface {
	ReverseGeocode(context.Context, float64, float64) (*models.Location, error)
}

// NewReverseGeocodeHandler creates a new reverse geocode handler
func NewReverseGeocodeHandler(svc GeoCodingService, log zerolog.Logger) *ReverseGeocodeHandler {
	return &ReverseGeocodeHandler{service: svc, log: log}
}

// ReverseGeocode handles GET /api/geocode/:lat/:lng requests
//
//	@Summary		Reverse geocode a coordinate pair
//	@Produce		json
//	@Param			lat	path		number	true	"Latitude in degrees"
//	@Param			lng	path		number	true	"Longitude in degrees"
//	@Success		200	{object}	models.Location
//	@Failure		400	{object}	map[string]string
//	@Failure		500	{string}	string
//	@Router			/api/geocode/{lat}/{lng} [get]
func (h *ReverseGeocodeHandler) ReverseGeocode(c *gin.Context) {
	lat, lng, ok := parseCoordinates(c)
	if !ok {
		return
	}

	location, err := h.service.ReverseGeocode(c.Request.Context(), lat, lng)
	if err != nil {
		h.log.Error().Err(err).Float64("lat", lat).Float64("lng", lng).Msg("failed to fetch location data")
		c.String(http.StatusInternalServerError, GeocodeFailureMessage)
		return
	}

	c.JSON(http.StatusOK, location)
}
