// Package geocoder resolves coordinates to a city name through a Nominatim
// compatible reverse geocoding API.
package geocoder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"newatalk/internal/observability/metrics"
	"newatalk/internal/resilience/circuitbreaker"
	"newatalk/internal/resilience/retry"

	"golang.org/x/time/rate"
)

// DefaultEndpoint is the public OpenStreetMap Nominatim reverse endpoint.
const DefaultEndpoint = "https://nominatim.openstreetmap.org/reverse"

// ErrInvalidCoordinates is returned for latitudes or longitudes that do not parse
// or fall outside the valid range.
var ErrInvalidCoordinates = errors.New("invalid coordinates")

// Place is the best guess location for a coordinate pair. Any field may be empty.
type Place struct {
	City    string `json:"city,omitempty" example:"Bengaluru"`
	State   string `json:"state,omitempty" example:"Karnataka"`
	Country string `json:"country,omitempty" example:"India"`
}

type address struct {
	City          string `json:"city"`
	Town          string `json:"town"`
	Village       string `json:"village"`
	Suburb        string `json:"suburb"`
	StateDistrict string `json:"state_district"`
	State         string `json:"state"`
	Region        string `json:"region"`
	Country       string `json:"country"`
}

type reverseResponse struct {
	Address address `json:"address"`
}

// place applies the fallback chains city, town, village, suburb, state_district
// and state, region.
func (a address) place() Place {
	return Place{
		City:    firstNonEmpty(a.City, a.Town, a.Village, a.Suburb, a.StateDistrict),
		State:   firstNonEmpty(a.State, a.Region),
		Country: a.Country,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Nominatim is a reverse geocoding client. Requests are limited to one per
// second across the process, as the public Nominatim usage policy requires.
type Nominatim struct {
	client    *http.Client
	endpoint  string
	userAgent string
	limiter   *rate.Limiter
	breaker   *circuitbreaker.CircuitBreaker
	retry     retry.Config
	timeout   time.Duration
}

// NewNominatim creates a client. An empty endpoint selects DefaultEndpoint.
func NewNominatim(client *http.Client, endpoint, userAgent string) *Nominatim {
	if client == nil {
		client = http.DefaultClient
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Nominatim{
		client:    client,
		endpoint:  endpoint,
		userAgent: userAgent,
		limiter:   rate.NewLimiter(rate.Every(time.Second), 1),
		breaker:   circuitbreaker.New(circuitbreaker.GeocoderConfig()),
		retry:     retry.GeocoderConfig(),
		timeout:   10 * time.Second,
	}
}

// Breaker exposes the circuit breaker for health reporting.
func (n *Nominatim) Breaker() *circuitbreaker.CircuitBreaker { return n.breaker }

// ParseCoordinates validates latitude and longitude strings.
func ParseCoordinates(lat, lon string) (float64, float64, error) {
	la, err := strconv.ParseFloat(lat, 64)
	if err != nil || la < -90 || la > 90 {
		return 0, 0, fmt.Errorf("%w: latitude %q", ErrInvalidCoordinates, lat)
	}
	lo, err := strconv.ParseFloat(lon, 64)
	if err != nil || lo < -180 || lo > 180 {
		return 0, 0, fmt.Errorf("%w: longitude %q", ErrInvalidCoordinates, lon)
	}
	return la, lo, nil
}

// Reverse looks up the place at lat, lon. Upstream non-2xx answers surface as
// *retry.HTTPError; see IsUpstreamStatus.
func (n *Nominatim) Reverse(ctx context.Context, lat, lon float64) (Place, error) {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	var place Place
	err := retry.WithBackoff(ctx, n.retry, func() error {
		if err := n.limiter.Wait(ctx); err != nil {
			return err
		}
		p, err := circuitbreaker.Do(n.breaker, func() (Place, error) {
			return n.reverse(ctx, lat, lon)
		})
		if err != nil {
			return err
		}
		place = p
		return nil
	})
	metrics.RecordGeocode(err == nil)
	if err != nil {
		return Place{}, fmt.Errorf("reverse geocode: %w", err)
	}
	return place, nil
}

func (n *Nominatim) reverse(ctx context.Context, lat, lon float64) (Place, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("format", "json")
	q.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return Place{}, fmt.Errorf("build request: %w", err)
	}
	if n.userAgent != "" {
		req.Header.Set("User-Agent", n.userAgent)
	}
	req.Header.Set("Accept-Language", "en")
	req.Header.Set("Accept", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return Place{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return Place{}, retry.NewHTTPError(resp)
	}

	var body reverseResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err != nil {
		return Place{}, fmt.Errorf("decode response: %w", err)
	}
	return body.Address.place(), nil
}

// IsUpstreamStatus reports whether err was caused by a non-2xx answer.
func IsUpstreamStatus(err error) bool {
	var httpErr *retry.HTTPError
	return errors.As(err, &httpErr)
}
