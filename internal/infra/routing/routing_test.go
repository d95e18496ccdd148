package routing

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tracker/config"
	"tracker/internal/domain/geo"
	"tracker/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orsResponse = `{
  "type": "FeatureCollection",
  "features": [{
    "type": "Feature",
    "id": "route-1",
    "properties": {"summary": {"distance": 2450.3, "duration": 301.2}},
    "geometry": {"type": "LineString", "coordinates": [[121.5654, 25.0330], [121.5600, 25.0400], [121.5500, 25.0478]]}
  }]
}`

var (
	origin      = geo.NewPoint(25.0330, 121.5654)
	destination = geo.NewPoint(25.0478, 121.5500)
)

func TestOpenRouteServiceProvider_Route(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody orsRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)

		w.Header().Set("Content-Type", "application/geo+json")
		_, _ = w.Write([]byte(orsResponse))
	}))
	defer server.Close()

	provider := NewOpenRouteServiceProvider(server.URL, "secret", server.Client())

	route, err := provider.Route(context.Background(), origin, destination, geo.ModeCycling)
	require.NoError(t, err)

	assert.Equal(t, "/v2/directions/cycling-regular/geojson", gotPath)
	assert.Equal(t, "secret", gotAuth)
	assert.Equal(t, [][2]float64{{121.5654, 25.0330}, {121.5500, 25.0478}}, gotBody.Coordinates)

	assert.InDelta(t, 2450.3, route.DistanceMeters, 1e-9)
	assert.InDelta(t, 301.2, route.DurationSeconds, 1e-9)
	assert.Equal(t, "route-1", route.RouteID)
	require.Len(t, route.Geometry, 3)
	assert.Equal(t, orb.Point{121.5654, 25.0330}, route.Geometry[0])
}

func TestOpenRouteServiceProvider_Errors(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		provider := NewOpenRouteServiceProvider("http://127.0.0.1:1", "", nil)

		_, err := provider.Route(context.Background(), origin, destination, geo.ModeDriving)
		assert.True(t, errors.Is(err, service.ErrRouteProviderUnavailable))
	})

	t.Run("upstream error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"error":"quota"}`, http.StatusTooManyRequests)
		}))
		defer server.Close()

		provider := NewOpenRouteServiceProvider(server.URL, "secret", server.Client())

		_, err := provider.Route(context.Background(), origin, destination, geo.ModeDriving)
		require.Error(t, err)
		assert.True(t, errors.Is(err, service.ErrRouteProviderUnavailable))
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("context deadline", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer server.Close()

		provider := NewOpenRouteServiceProvider(server.URL, "secret", server.Client())
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := provider.Route(ctx, origin, destination, geo.ModeDriving)
		assert.True(t, errors.Is(err, service.ErrRouteProviderUnavailable))
	})

	t.Run("empty collection", func(t *testing.T) {
		_, err := parseDirections([]byte(`{"type":"FeatureCollection","features":[]}`))
		assert.Error(t, err)
	})

	t.Run("point geometry", func(t *testing.T) {
		_, err := parseDirections([]byte(`{"type":"FeatureCollection","features":[{"type":"Feature","properties":{},"geometry":{"type":"Point","coordinates":[1,2]}}]}`))
		assert.Error(t, err)
	})
}

func TestStraightLineProvider_Route(t *testing.T) {
	provider := NewStraightLineProvider(geo.DefaultSpeeds())

	route, err := provider.Route(context.Background(), origin, destination, geo.ModeWalking)
	require.NoError(t, err)

	want, err := geo.DistanceMeters(origin, destination)
	require.NoError(t, err)
	assert.Equal(t, want, route.DistanceMeters)
	assert.Equal(t, orb.LineString{origin, destination}, route.Geometry)
	assert.InDelta(t, float64(geo.EstimateDurationSeconds(want, geo.ModeWalking)), route.DurationSeconds, 1e-9)

	_, err = provider.Route(context.Background(), orb.Point{0, 91}, destination, geo.ModeWalking)
	assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)
}

func TestNewRoutingProvider(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		routing *config.RoutingConfig
		want    string
	}{
		{name: "unconfigured", routing: nil, want: "straightline"},
		{name: "straight line", routing: &config.RoutingConfig{Provider: "straightline"}, want: "straightline"},
		{name: "openrouteservice", routing: &config.RoutingConfig{Provider: "openrouteservice"}, want: "openrouteservice"},
		{name: "unknown", routing: &config.RoutingConfig{Provider: "here"}, want: "straightline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := NewRoutingProvider(ProviderParams{
				Config: &config.Config{Routing: tt.routing},
				Logger: logger,
			})
			assert.Equal(t, tt.want, provider.Name())
		})
	}
}

func TestNewSpeedTable_AppliesOverrides(t *testing.T) {
	cfg := &config.Config{Routing: &config.RoutingConfig{SpeedsKmh: map[string]float64{"scooter": 30}}}

	speeds := NewSpeedTable(cfg)
	assert.InDelta(t, 30.0, speeds.SpeedKmh(geo.ModeScooter), 1e-9)
	assert.InDelta(t, 40.0, speeds.SpeedKmh(geo.ModeDriving), 1e-9)
}
