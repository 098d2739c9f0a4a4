package repository

import (
	"context"
	"errors"
	"fmt"

	"location-proxy/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SearchRadiusMeters bounds the nearest-place search.
const SearchRadiusMeters = 10000

// ErrNoLocation is returned when no place lies within SearchRadiusMeters of the coordinates.
var ErrNoLocation = errors.New("repository: no location found near coordinates")

// DB is the subset of *pgxpool.Pool and *pgx.Conn the repository needs
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository reverse geocodes against the PostGIS locations table
type Repository struct {
	db DB
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

const schemaSQL = `
	CREATE EXTENSION IF NOT EXISTS postgis;

	CREATE TABLE IF NOT EXISTS locations (
		id BIGSERIAL PRIMARY KEY,
		prefecture VARCHAR(255) NOT NULL DEFAULT '',
		municipality VARCHAR(255) NOT NULL DEFAULT '',
		address_1 VARCHAR(255) NOT NULL DEFAULT '',
		address_2 VARCHAR(255) NOT NULL DEFAULT '',
		block_lot VARCHAR(255) NOT NULL DEFAULT '',
		geom GEOGRAPHY(POINT, 4326) NOT NULL
	);
	CREATE INDEX IF NOT EXISTS locations_geom_idx ON locations USING GIST (geom);
`

// EnsureSchema creates the locations table and its spatial index if they do not exist
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// FindNearestLocation performs a spatial query to find the nearest place to the given coordinates
func (r *Repository) FindNearestLocation(ctx context.Context, lat, lon float64) (*models.Place, error) {
	sql := `
		SELECT
			id,
			prefecture,
			municipality,
			address_1,
			address_2,
			block_lot,
			ST_Y(geom::geometry) as latitude,
			ST_X(geom::geometry) as longitude
		FROM locations
		WHERE ST_DWithin(geom, ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography, $3)
		ORDER BY geom <-> ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography
		LIMIT 1
	`

	var place models.Place
	err := r.db.QueryRow(ctx, sql, lat, lon, SearchRadiusMeters).Scan(
		&place.ID,
		&place.Prefecture,
		&place.Municipality,
		&place.Address1,
		&place.Address2,
		&place.BlockLot,
		&place.Latitude,
		&place.Longitude,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoLocation
		}
		return nil, fmt.Errorf("repository: failed to execute spatial query: %w", err)
	}

	return &place, nil
}

// ReverseLookup returns the display name of the nearest place, so the repository can stand in for an upstream provider
func (r *Repository) ReverseLookup(ctx context.Context, lat, lng float64) (string, error) {
	place, err := r.FindNearestLocation(ctx, lat, lng)
	if err != nil {
		return "", err
	}
	return place.DisplayName(), nil
}
