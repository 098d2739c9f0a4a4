package nominatim

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"location-proxy/internal/provider"
)

const reversePath = "/reverse"

// ErrNoResult is returned when Nominatim answers 200 but cannot geocode the coordinates.
var ErrNoResult = errors.New("nominatim: no result for coordinates")

// Client performs reverse geocoding against a Nominatim instance
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

type reverseResult struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

// New creates a new Nominatim client. baseURL is the instance root, e.g. https://nominatim.openstreetmap.org
func New(baseURL, userAgent string, client *http.Client) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		http:      client,
	}
}

// ReverseLookup returns the display name Nominatim reports for the coordinates
func (c *Client) ReverseLookup(ctx context.Context, lat, lng float64) (string, error) {
	query := url.Values{}
	query.Set("format", "json")
	query.Set("lat", provider.FormatCoordinate(lat))
	query.Set("lon", provider.FormatCoordinate(lng))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+reversePath+"?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("nominatim: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("nominatim: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if !provider.IsSuccess(resp.StatusCode) {
		return "", fmt.Errorf("nominatim: %w", provider.StatusError(resp.StatusCode))
	}

	var result reverseResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("nominatim: failed to decode response: %w", err)
	}
	if result.Error != "" {
		return "", fmt.Errorf("%w: %s", ErrNoResult, result.Error)
	}

	return result.DisplayName, nil
}
