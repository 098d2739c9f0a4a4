package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ThumbnailFailureMessage is the plain-text body of every failed thumbnail request.
const ThumbnailFailureMessage = "Failed to fetch map thumbnail"

// ThumbnailHandler proxies static map thumbnails
type ThumbnailHandler struct {
	service ThumbnailService
	log     zerolog.Logger
}

// ThumbnailService interface for dependency injection
type ThumbnailService interface {
	Thumbnail(context.Context, float64, float64) ([]byte, error)
}

// NewThumbnailHandler creates a new thumbnail handler
func NewThumbnailHandler(svc ThumbnailService, log zerolog.Logger) *ThumbnailHandler {
	return &ThumbnailHandler{service: svc, log: log}
}

// MapThumbnail handles GET /api/mapThumbnail/:lat/:lng requests
//
//	@Summary		Static map thumbnail for a coordinate pair
//	@Produce		png
//	@Param			lat	path		number	true	"Latitude in degrees"
//	@Param			lng	path		number	true	"Longitude in degrees"
//	@Success		200	{file}		binary
//	@Failure		400	{object}	map[string]string
//	@Failure		500	{string}	string
//	@Router			/api/mapThumbnail/{lat}/{lng} [get]
func (h *ThumbnailHandler) MapThumbnail(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")

	lat, lng, ok := parseCoordinates(c)
	if !ok {
		return
	}

	image, err := h.service.Thumbnail(c.Request.Context(), lat, lng)
	if err != nil {
		h.log.Error().Err(err).Float64("lat", lat).Float64("lng", lng).Msg("failed to fetch map thumbnail")
		c.String(http.StatusInternalServerError, ThumbnailFailureMessage)
		return
	}

	c.Data(http.StatusOK, "image/png", image)
}
