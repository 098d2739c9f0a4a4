package service

import (
	"context"
	"fmt"

	"location-proxy/internal/models"
)

// ReverseGeocodeService turns coordinates into a Location using an upstream address provider
type ReverseGeocodeService struct {
	provider AddressProvider
}

// AddressProvider interface for dependency injection.
// Implemented by the Nominatim client and the PostGIS repository.
type AddressProvider interface {
	ReverseLookup(ctx context.Context, lat, lng float64) (string, error)
}

// NewReverseGeocodeService creates a new reverse geocode service
func NewReverseGeocodeService(provider AddressProvider) *ReverseGeocodeService {
	return &ReverseGeocodeService{provider: provider}
}

// ReverseGeocode resolves the display address for the coordinates. The returned
// Location echoes lat and lng exactly as given.
func (s *ReverseGeocodeService) ReverseGeocode(ctx context.Context, lat, lng float64) (*models.Location, error) {
	address, err := s.provider.ReverseLookup(ctx, lat, lng)
	if err != nil {
		return nil, fmt.Errorf("service: failed to reverse geocode: %w", err)
	}

	return &models.Location{
		Lat:     lat,
		Lng:     lng,
		Address: address,
	}, nil
}
