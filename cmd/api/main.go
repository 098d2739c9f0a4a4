package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"location-proxy/internal/config"
	"location-proxy/internal/handler"
	"location-proxy/internal/logger"
	"location-proxy/internal/provider"
	"location-proxy/internal/provider/nominatim"
	"location-proxy/internal/provider/staticmap"
	"location-proxy/internal/repository"
	"location-proxy/internal/router"
	"location-proxy/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

//	@title			Location Proxy API
//	@version		1.0
//	@description	Reverse geocoding and static map thumbnail proxy.
//	@BasePath		/
func main() {
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	log.Logger = logger.Default(cfg.Environment, cfg.LogLevel)
	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpClient := provider.NewHTTPClient(cfg.UpstreamTimeout)

	// Address provider
	var addresses service.AddressProvider
	switch cfg.GeocodeProvider {
	case config.ProviderPostgres:
		conn, err := pgxpool.New(ctx, cfg.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()
		addresses = repository.NewRepository(conn)
	default:
		addresses = nominatim.New(cfg.NominatimURL, cfg.NominatimUserAgent, httpClient)
	}
	if cfg.GoogleMapsAPIKey == "" {
		log.Warn().Msg("GOOGLE_MAPS_API_KEY is not set, map thumbnails will fail")
	}

	// Initialize layers
	reverseGeocodeService := service.NewReverseGeocodeService(addresses)
	thumbnailService := service.NewThumbnailService(staticmap.New(cfg.StaticMapURL, cfg.GoogleMapsAPIKey, httpClient))

	reverseGeocodeHandler := handler.NewReverseGeocodeHandler(reverseGeocodeService, log.Logger)
	thumbnailHandler := handler.NewThumbnailHandler(thumbnailService, log.Logger)

	r := router.New(router.Options{
		AllowedOrigins: cfg.AllowedOrigins(),
		Logger:         log.Logger,
	}, reverseGeocodeHandler, thumbnailHandler)

	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.ServerAddress).Str("provider", cfg.GeocodeProvider).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
