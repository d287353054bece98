package geocode

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"newatalk/internal/infra/geocoder"
	"newatalk/internal/resilience/retry"

	"github.com/stretchr/testify/assert"
)

type stubReverser struct {
	place  geocoder.Place
	err    error
	gotLat float64
	gotLon float64
}

func (s *stubReverser) Reverse(_ context.Context, lat, lon float64) (geocoder.Place, error) {
	s.gotLat, s.gotLon = lat, lon
	return s.place, s.err
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Success(t *testing.T) {
	stub := &stubReverser{place: geocoder.Place{City: "Pune", State: "Maharashtra", Country: "India"}}
	rec := get(Handler{Geocoder: stub}, "/api/reverse-geocode?lat=18.52&lon=73.85")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"city":"Pune","state":"Maharashtra","country":"India"}`, rec.Body.String())
	assert.InDelta(t, 18.52, stub.gotLat, 1e-9)
	assert.InDelta(t, 73.85, stub.gotLon, 1e-9)
}

func TestHandler_OmitsEmptyFields(t *testing.T) {
	stub := &stubReverser{place: geocoder.Place{Country: "India"}}
	rec := get(Handler{Geocoder: stub}, "/api/reverse-geocode?lat=20&lon=78")
	assert.JSONEq(t, `{"country":"India"}`, rec.Body.String())
}

func TestHandler_Errors(t *testing.T) {
	upstream := fmt.Errorf("reverse geocode: %w", &retry.HTTPError{StatusCode: http.StatusServiceUnavailable})

	tests := []struct {
		name     string
		target   string
		err      error
		wantCode int
		wantBody string
	}{
		{"missing lat", "/api/reverse-geocode?lon=73.85", nil, http.StatusBadRequest, `{"error":"Missing lat/lon"}`},
		{"missing both", "/api/reverse-geocode", nil, http.StatusBadRequest, `{"error":"Missing lat/lon"}`},
		{"not a number", "/api/reverse-geocode?lat=north&lon=73.85", nil, http.StatusBadRequest, `{"error":"Invalid lat/lon"}`},
		{"out of range", "/api/reverse-geocode?lat=91&lon=73.85", nil, http.StatusBadRequest, `{"error":"Invalid lat/lon"}`},
		{"upstream status", "/api/reverse-geocode?lat=18&lon=73", upstream, http.StatusInternalServerError, `{"error":"Reverse geocoding failed"}`},
		{"transport error", "/api/reverse-geocode?lat=18&lon=73", errors.New("dial tcp: refused"), http.StatusInternalServerError, `{"error":"Reverse geocoding error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(Handler{Geocoder: &stubReverser{err: tt.err}}, tt.target)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHandler_AgainstNominatim(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"address":{"town":"Mysuru","state":"Karnataka","country":"India"}}`))
	}))
	defer upstream.Close()

	mux := http.NewServeMux()
	Register(mux, geocoder.NewNominatim(upstream.Client(), upstream.URL, "test-agent"), nil)

	rec := get(mux, "/api/reverse-geocode?lat=12.3&lon=76.6")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"city":"Mysuru","state":"Karnataka","country":"India"}`, rec.Body.String())
}
