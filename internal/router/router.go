package router

import (
	"net/http"
	"slices"
	"time"

	_ "location-proxy/docs"
	"location-proxy/internal/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options configures the engine returned by New
type Options struct {
	// AllowedOrigins feeds the CORS middleware of the geocode endpoint. "*" allows any
	// origin; empty disables it. Thumbnails are always served to any origin.
	AllowedOrigins []string
	Logger         zerolog.Logger
}

// New builds the gin engine serving the proxy endpoints, health and API docs
func New(opts Options, geocode *handler.ReverseGeocodeHandler, thumbnail *handler.ThumbnailHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(opts.Logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Preflights only reach group middleware through a matching OPTIONS route.
	geocodes := r.Group("/api/geocode")
	if len(opts.AllowedOrigins) > 0 {
		geocodes.Use(corsMiddleware(opts.AllowedOrigins))
		geocodes.OPTIONS("/:lat/:lng", noContent)
	}
	geocodes.GET("/:lat/:lng", geocode.ReverseGeocode)

	thumbnails := r.Group("/api/mapThumbnail")
	thumbnails.Use(corsMiddleware([]string{"*"}))
	thumbnails.OPTIONS("/:lat/:lng", noContent)
	thumbnails.GET("/:lat/:lng", thumbnail.MapThumbnail)

	return r
}

func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Accept", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}
	if slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

// RequestLogger logs HTTP requests with timing.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		event := log.Info()
		switch {
		case status >= http.StatusInternalServerError:
			event = log.Error()
		case status >= http.StatusBadRequest:
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}
