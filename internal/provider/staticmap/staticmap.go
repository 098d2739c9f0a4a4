package staticmap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"location-proxy/internal/provider"
)

// Thumbnail parameters sent with every request.
const (
	Zoom        = 17
	Size        = "150x150"
	MapType     = "hybrid"
	MarkerColor = "red"

	staticMapPath = "/staticmap"
)

// Client fetches static map thumbnails. The API key it signs requests with is
// never part of a returned error.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New creates a new static map client. baseURL is the API root, e.g. https://maps.googleapis.com/maps/api
func New(baseURL, apiKey string, client *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    client,
	}
}

// ThumbnailURL builds the signed upstream URL for a thumbnail centered on and marked at the coordinates.
func (c *Client) ThumbnailURL(lat, lng float64) string {
	point := provider.FormatCoordinate(lat) + "," + provider.FormatCoordinate(lng)

	query := url.Values{}
	query.Set("center", point)
	query.Set("zoom", fmt.Sprint(Zoom))
	query.Set("size", Size)
	query.Set("maptype", MapType)
	query.Set("markers", "color:"+MarkerColor+"|"+point)
	query.Set("key", c.apiKey)

	return c.baseURL + staticMapPath + "?" + query.Encode()
}

// Thumbnail downloads the thumbnail image bytes for the coordinates
func (c *Client) Thumbnail(ctx context.Context, lat, lng float64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ThumbnailURL(lat, lng), nil)
	if err != nil {
		return nil, fmt.Errorf("staticmap: failed to create request: %w", redact(err))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("staticmap: request failed: %w", redact(err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if !provider.IsSuccess(resp.StatusCode) {
		return nil, fmt.Errorf("staticmap: %w", provider.StatusError(resp.StatusCode))
	}

	image, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("staticmap: failed to read image: %w", redact(err))
	}

	return image, nil
}

// redact drops the request URL, and with it the API key, from net/http errors.
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
