// Package locationstate holds the last location resolved through the geocode
// endpoint and notifies subscribers whenever it changes.
//
// The cell is either absent (nil) or present. Every write replaces the whole
// value. Writes are not ordered against each other: concurrent Resolve calls and
// Reset race, and whichever finishes last wins.
package locationstate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"location-proxy/internal/models"
	"location-proxy/internal/provider"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const geocodePath = "/api/geocode/"

// Observer receives the current value on subscription and on every change.
// A nil location means absent. Each call gets its own copy.
type Observer func(*models.Location)

// State is an observable location cell backed by the geocode endpoint
type State struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger

	mu        sync.Mutex
	current   *models.Location
	observers []subscription
	nextID    uint64
}

type subscription struct {
	id uint64
	fn Observer
}

// Option configures a State
type Option func(*State)

// WithHTTPClient sets the client used to call the geocode endpoint.
func WithHTTPClient(client *http.Client) Option {
	return func(s *State) {
		s.client = client
	}
}

// WithLogger sets the logger failures are reported to.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *State) {
		s.log = logger
	}
}

// New creates an absent State that resolves against the API served at baseURL
func New(baseURL string, opts ...Option) *State {
	s := &State{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
		log:     log.Logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers fn, calls it immediately with the current value and
// returns a function that removes it again. Calling the returned function
// more than once is harmless.
func (s *State) Subscribe(fn Observer) (unsubscribe func()) {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, subscription{id: id, fn: fn})
	current := clone(s.current)
	s.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.observers {
				if sub.id == id {
					s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
					return
				}
			}
		})
	}
}

// Current returns a copy of the current value, nil when absent
func (s *State) Current() *models.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.current)
}

// Resolve asks the geocode endpoint for the address at lat/lng. On success the
// cell becomes the returned location. On any failure the cell becomes absent,
// the failure is logged, and the error is returned for callers that want it.
func (s *State) Resolve(ctx context.Context, lat, lng float64) error {
	location, err := s.fetch(ctx, lat, lng)
	if err != nil {
		s.log.Error().Err(err).Float64("lat", lat).Float64("lng", lng).Msg("failed to set location")
		s.set(nil)
		return err
	}

	s.set(location)
	return nil
}

// Reset makes the cell absent. It does not cancel a pending Resolve, which
// will overwrite the reset when it completes.
func (s *State) Reset() {
	s.set(nil)
}

func (s *State) fetch(ctx context.Context, lat, lng float64) (*models.Location, error) {
	endpoint := s.baseURL + geocodePath + provider.FormatCoordinate(lat) + "/" + provider.FormatCoordinate(lng)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("locationstate: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("locationstate: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if !provider.IsSuccess(resp.StatusCode) {
		return nil, fmt.Errorf("locationstate: failed to fetch location data: %w", provider.StatusError(resp.StatusCode))
	}

	var location models.Location
	if err := json.NewDecoder(resp.Body).Decode(&location); err != nil {
		return nil, fmt.Errorf("locationstate: failed to decode location: %w", err)
	}

	return &location, nil
}

// set replaces the value and notifies a snapshot of the observers outside the lock,
// so observers may call back into the State.
func (s *State) set(location *models.Location) {
	s.mu.Lock()
	s.current = location
	observers := make([]Observer, len(s.observers))
	for i, sub := range s.observers {
		observers[i] = sub.fn
	}
	s.mu.Unlock()

	for _, fn := range observers {
		fn(clone(location))
	}
}

func clone(location *models.Location) *models.Location {
	if location == nil {
		return nil
	}
	c := *location
	return &c
}
