package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"location-proxy/internal/config"
	"location-proxy/internal/logger"
	"location-proxy/internal/models"
	"location-proxy/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

// CSV column positions
const (
	colPrefecture   = 0
	colMunicipality = 1
	colAddress1     = 2
	colAddress2     = 3
	colBlockLot     = 4
	colLatitude     = 9
	colLongitude    = 10
	minColumns      = 11
)

func main() {
	file := flag.String("file", "", "Path to the CSV file to import")
	configPath := flag.String("config", "configs", "Directory containing app.env")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	log.Logger = logger.Default(cfg.Environment, cfg.LogLevel)

	if *file == "" {
		log.Fatal().Msg("--file flag is required")
	}
	if cfg.DBSource == "" {
		log.Fatal().Msg("DB_SOURCE is required")
	}

	log.Info().Str("file", *file).Msg("starting import")

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open csv file")
	}
	defer f.Close()

	places, err := parseCSV(f)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot parse csv")
	}
	log.Info().Int("records", len(places)).Msg("parsed csv")

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close(ctx)

	if err := repository.NewRepository(conn).EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot create schema")
	}

	before, err := countPlaces(ctx, conn)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot count existing records")
	}

	if err := insertPlaces(ctx, conn, places); err != nil {
		log.Fatal().Err(err).Msg("cannot insert records")
	}

	after, err := countPlaces(ctx, conn)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot verify import")
	}
	if after-before != len(places) {
		log.Fatal().Int("expected", len(places)).Int("inserted", after-before).Msg("record count mismatch")
	}

	log.Info().Int("records", len(places)).Msg("import finished")
}

// parseCSV reads address rows after a header line. Columns 0-4 hold the
// address components, 9 and 10 the latitude and longitude.
func parseCSV(r io.Reader) ([]models.Place, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var places []models.Place
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < minColumns {
			return nil, fmt.Errorf("invalid record length: %d, expected at least %d columns", len(record), minColumns)
		}

		lat, err := strconv.ParseFloat(record[colLatitude], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude: %s", record[colLatitude])
		}

		lon, err := strconv.ParseFloat(record[colLongitude], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude: %s", record[colLongitude])
		}

		places = append(places, models.Place{
			Prefecture:   record[colPrefecture],
			Municipality: record[colMunicipality],
			Address1:     record[colAddress1],
			Address2:     record[colAddress2],
			BlockLot:     record[colBlockLot],
			Latitude:     lat,
			Longitude:    lon,
		})
	}

	return places, nil
}

// pointEWKT renders a place as PostGIS EWKT, longitude first
func pointEWKT(p models.Place) string {
	return fmt.Sprintf("SRID=4326;POINT(%s %s)",
		strconv.FormatFloat(p.Longitude, 'f', -1, 64),
		strconv.FormatFloat(p.Latitude, 'f', -1, 64))
}

func insertPlaces(ctx context.Context, conn *pgx.Conn, places []models.Place) error {
	// Use CopyFrom for bulk insert
	_, err := conn.CopyFrom(
		ctx,
		pgx.Identifier{"locations"},
		[]string{"prefecture", "municipality", "address_1", "address_2", "block_lot", "geom"},
		pgx.CopyFromSlice(len(places), func(i int) ([]any, error) {
			p := places[i]
			return []any{p.Prefecture, p.Municipality, p.Address1, p.Address2, p.BlockLot, pointEWKT(p)}, nil
		}),
	)
	return err
}

func countPlaces(ctx context.Context, conn *pgx.Conn) (int, error) {
	var count int
	if err := conn.QueryRow(ctx, "SELECT COUNT(*) FROM locations").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}
