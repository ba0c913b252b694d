package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rm-hull/trip-cost-calculator/internal/models"
)

var (
	warsaw = models.Coordinates{Lat: 52.2297, Lon: 21.0122}
	krakow = models.Coordinates{Lat: 50.0647, Lon: 19.9450}
)

func testOptions(url string) Options {
	opts := DefaultOptions()
	opts.NominatimBaseURL = url
	opts.ORSBaseURL = url
	opts.OSRMBaseURL = url
	return opts
}

func TestNominatimSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "Kraków Rynek", r.URL.Query().Get("q"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "pl,en", r.Header.Get("Accept-Language"))
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`[
			{"place_id": 1, "display_name": "Kraków, województwo małopolskie, Polska", "lat": "50.0619474", "lon": "19.9368564"},
			{"place_id": 2, "display_name": "Kraków, Wisconsin", "lat": "44.1", "lon": "-88.0"}
		]`))
	}))
	defer srv.Close()

	client := NewNominatimClient(testOptions(srv.URL))
	results, err := client.Search(context.Background(), "  Kraków   Rynek ", 5)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Kraków, województwo małopolskie, Polska", results[0].DisplayName)

	coords, err := results[0].Coordinates()
	require.NoError(t, err)
	assert.InDelta(t, 50.0619474, coords.Lat, 1e-9)
}

func TestNominatimShortQuery(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	results, err := NewNominatimClient(testOptions(srv.URL)).Search(context.Background(), "Kr", 5)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.False(t, called)
}

func TestNominatimStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewNominatimClient(testOptions(srv.URL)).Search(context.Background(), "Warszawa", 5)
	var stErr *HTTPStatusError
	require.ErrorAs(t, err, &stErr)
	assert.Equal(t, http.StatusTooManyRequests, stErr.StatusCode)
}

func TestORSRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/directions/driving-car", r.URL.Path)
		assert.Equal(t, "21.012200,52.229700", r.URL.Query().Get("start"))
		assert.Equal(t, "19.945000,50.064700", r.URL.Query().Get("end"))
		assert.Equal(t, "secret", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"features":[{"properties":{"segments":[{"distance":294649.3,"duration":12312.5}]}}]}`))
	}))
	defer srv.Close()

	opts := testOptions(srv.URL)
	opts.ORSAPIKey = "secret"
	router := NewRouter(opts)
	require.IsType(t, &ORSClient{}, router)

	lookup, err := router.Route(context.Background(), warsaw, krakow)
	require.NoError(t, err)
	assert.Equal(t, 294.6, lookup.DistanceKm)
	assert.Equal(t, 12312.5, lookup.DurationSeconds)
	assert.Equal(t, "openrouteservice", lookup.Provider)
}

func TestORSNoRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"features":[]}`))
	}))
	defer srv.Close()

	opts := testOptions(srv.URL)
	opts.ORSAPIKey = "secret"
	_, err := NewORSClient(opts).Route(context.Background(), warsaw, krakow)
	assert.ErrorIs(t, err, ErrNoRoute)
}

func TestOSRMRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/route/v1/driving/21.012200,52.229700;19.945000,50.064700", r.URL.Path)
		assert.Equal(t, "false", r.URL.Query().Get("overview"))
		_, _ = w.Write([]byte(`{"code":"Ok","routes":[{"distance":293960,"duration":11800}]}`))
	}))
	defer srv.Close()

	router := NewRouter(testOptions(srv.URL))
	require.IsType(t, &OSRMClient{}, router)

	lookup, err := router.Route(context.Background(), warsaw, krakow)
	require.NoError(t, err)
	assert.Equal(t, 294.0, lookup.DistanceKm)
	assert.Equal(t, 11800.0, lookup.DurationSeconds)
	assert.Equal(t, "osrm", lookup.Provider)
}

func TestOSRMNoRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":"NoRoute","routes":[]}`))
	}))
	defer srv.Close()

	_, err := NewOSRMClient(testOptions(srv.URL)).Route(context.Background(), warsaw, krakow)
	assert.ErrorIs(t, err, ErrNoRoute)
}

func TestMetresToKm(t *testing.T) {
	assert.Equal(t, 294.6, metresToKm(294649.3))
	assert.Equal(t, 0.1, metresToKm(60))
	assert.Equal(t, 0.0, metresToKm(0))
}
