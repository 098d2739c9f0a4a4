package handler

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseCoordinates reads the :lat and :lng path values. On failure it has
// already written a 400 response and returns ok == false.
func parseCoordinates(c *gin.Context) (lat, lng float64, ok bool) {
	lat, err := parseCoordinate(c.Param("lat"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return 0, 0, false
	}

	lng, err = parseCoordinate(c.Param("lng"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return 0, 0, false
	}

	return lat, lng, true
}

// parseCoordinate accepts any finite decimal. NaN and infinities would not survive JSON encoding.
func parseCoordinate(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}
