// Package provider holds what the upstream HTTP clients share: the outbound
// http.Client, the upstream status error and coordinate formatting.
package provider

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// ErrUpstreamStatus is wrapped by every provider error caused by a non-2xx upstream response.
var ErrUpstreamStatus = errors.New("unexpected upstream status")

// StatusError returns an error wrapping ErrUpstreamStatus for the given status code.
func StatusError(code int) error {
	return fmt.Errorf("%w: %d", ErrUpstreamStatus, code)
}

// IsSuccess reports whether code is a 2xx status.
func IsSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}

// NewHTTPClient returns the client used for all upstream calls. A zero timeout
// means no deadline beyond the request context.
func NewHTTPClient(timeout time.Duration) *http.Client {
	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &http.Transport{TLSClientConfig: tlsConfig, Proxy: http.ProxyFromEnvironment},
	}
}

// FormatCoordinate renders a coordinate in its shortest exact decimal form (40 for 40.0).
func FormatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
