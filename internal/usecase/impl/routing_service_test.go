package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"tracker/config"
	"tracker/internal/domain/entity"
	"tracker/internal/domain/geo"
	"tracker/internal/domain/service"
	mockService "tracker/internal/mocks/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	taipei101     = geo.NewPoint(25.0330, 121.5654)
	taipeiStation = geo.NewPoint(25.0478, 121.5170)
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// routingServiceFixtures holds all test dependencies for routing service tests.
type routingServiceFixtures struct {
	service  *routingService
	provider *mockService.MockRoutingProvider
}

func createTestRoutingService(t *testing.T, routing *config.RoutingConfig) routingServiceFixtures {
	provider := mockService.NewMockRoutingProvider(t)
	provider.EXPECT().Name().Return("openrouteservice").Maybe()

	svc := NewRoutingService(RoutingServiceParams{
		Config:   &config.Config{Routing: routing},
		Provider: provider,
		Speeds:   geo.DefaultSpeeds(),
		Logger:   discardLogger(),
	}).(*routingService)

	return routingServiceFixtures{service: svc, provider: provider}
}

func TestNewRoutingService_Defaults(t *testing.T) {
	fx := createTestRoutingService(t, nil)

	assert.Equal(t, defaultProviderTimeout, fx.service.providerTimeout)
	assert.InDelta(t, defaultArrivalRadiusMeters, fx.service.arrivalRadius, 1e-9)
}

func TestRoutingService_CalculateRoute_UsesProvider(t *testing.T) {
	fx := createTestRoutingService(t, &config.RoutingConfig{ProviderTimeout: time.Second})
	ctx := context.Background()

	fx.provider.EXPECT().
		Route(mock.Anything, taipei101, taipeiStation, geo.ModeScooter).
		Return(&service.ProviderRoute{
			Geometry:        orb.LineString{taipei101, {121.54, 25.04}, taipeiStation},
			DistanceMeters:  6120,
			DurationSeconds: 899.6,
			RouteID:         "r-1",
		}, nil)

	plan := fx.service.CalculateRoute(ctx, taipei101, taipeiStation, geo.ModeScooter)

	assert.False(t, plan.Fallback)
	assert.Equal(t, "openrouteservice", plan.Provider)
	assert.Equal(t, "r-1", plan.ProviderRouteID)
	assert.InDelta(t, 6120.0, plan.DistanceMeters, 1e-9)
	assert.Equal(t, 900, plan.DurationSeconds)
	assert.Len(t, plan.Geometry, 3)
}

func TestRoutingService_CalculateRoute_FallbackMatchesHaversine(t *testing.T) {
	fx := createTestRoutingService(t, nil)
	ctx := context.Background()

	fx.provider.EXPECT().
		Route(mock.Anything, taipei101, taipeiStation, geo.ModeDriving).
		Return(nil, errors.Wrap(service.ErrRouteProviderUnavailable, "503"))

	plan := fx.service.CalculateRoute(ctx, taipei101, taipeiStation, geo.ModeDriving)

	want, err := geo.DistanceMeters(taipei101, taipeiStation)
	require.NoError(t, err)

	assert.True(t, plan.Fallback)
	assert.Equal(t, "straightline", plan.Provider)
	assert.Equal(t, want, plan.DistanceMeters)
	assert.Equal(t, geo.EstimateDurationSeconds(want, geo.ModeDriving), plan.DurationSeconds)
	assert.Equal(t, orb.LineString{taipei101, taipeiStation}, plan.Geometry)
}

func TestRoutingService_CalculateRoute_ProviderTimeout(t *testing.T) {
	fx := createTestRoutingService(t, &config.RoutingConfig{ProviderTimeout: 20 * time.Millisecond})
	ctx := context.Background()

	fx.provider.EXPECT().
		Route(mock.Anything, taipei101, taipeiStation, geo.ModeDriving).
		RunAndReturn(func(ctx context.Context, _, _ orb.Point, _ geo.TravelMode) (*service.ProviderRoute, error) {
			<-ctx.Done()

			return nil, ctx.Err()
		})

	start := time.Now()
	plan := fx.service.CalculateRoute(ctx, taipei101, taipeiStation, geo.ModeDriving)

	assert.True(t, plan.Fallback)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestRoutingService_CalculateRoute_StraightLineProviderIsNotFallback(t *testing.T) {
	provider := mockService.NewMockRoutingProvider(t)
	provider.EXPECT().Name().Return("straightline")

	svc := NewRoutingService(RoutingServiceParams{
		Config:   &config.Config{},
		Provider: provider,
		Logger:   discardLogger(),
	})

	plan := svc.CalculateRoute(context.Background(), taipei101, taipeiStation, geo.ModeWalking)
	assert.False(t, plan.Fallback)
	assert.Equal(t, "straightline", plan.Provider)
}

func newTestRoute(t *testing.T) *entity.Route {
	distance, err := geo.DistanceMeters(taipei101, taipeiStation)
	require.NoError(t, err)

	return &entity.Route{
		PickupLat:       taipei101.Lat(),
		PickupLng:       taipei101.Lon(),
		DropoffLat:      taipeiStation.Lat(),
		DropoffLng:      taipeiStation.Lon(),
		DistanceMeters:  int(distance),
		DurationSeconds: geo.EstimateDurationSeconds(distance, geo.ModeDriving),
		TravelMode:      geo.ModeDriving,
	}
}

func TestRoutingService_RecomputeETA_NoPositionUsesRouteTotals(t *testing.T) {
	fx := createTestRoutingService(t, nil)
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	fx.service.now = func() time.Time { return fixed }
	route := newTestRoute(t)

	eta := fx.service.RecomputeETA(route, nil)

	assert.Equal(t, (route.DurationSeconds+59)/60, eta.Minutes)
	assert.Equal(t, fixed.Add(time.Duration(route.DurationSeconds)*time.Second), eta.Arrival)
	assert.InDelta(t, float64(route.DistanceMeters)/1000, eta.RemainingDistanceKm, 0.01)
	assert.False(t, eta.Arrived)
}

func TestRoutingService_RecomputeETA_MonotonicTowardsDestination(t *testing.T) {
	fx := createTestRoutingService(t, nil)
	route := newTestRoute(t)

	// Walk along the straight segment towards the destination.
	previous := fx.service.RecomputeETA(route, &taipei101)
	for step := 1; step <= 10; step++ {
		f := float64(step) / 10
		p := orb.Point{
			taipei101.Lon() + (taipeiStation.Lon()-taipei101.Lon())*f,
			taipei101.Lat() + (taipeiStation.Lat()-taipei101.Lat())*f,
		}

		eta := fx.service.RecomputeETA(route, &p)
		assert.LessOrEqual(t, eta.Minutes, previous.Minutes, "step %d", step)
		assert.LessOrEqual(t, eta.RemainingDistanceKm, previous.RemainingDistanceKm, "step %d", step)
		previous = eta
	}

	assert.Zero(t, previous.Minutes)
	assert.True(t, previous.Arrived)
}

func TestRoutingService_RecomputeETA_ZeroWithinArrivalRadius(t *testing.T) {
	fx := createTestRoutingService(t, nil)
	route := newTestRoute(t)

	// Roughly 3 m north of the destination.
	near := geo.NewPoint(taipeiStation.Lat()+0.000027, taipeiStation.Lon())

	eta := fx.service.RecomputeETA(route, &near)
	assert.True(t, eta.Arrived)
	assert.Zero(t, eta.Minutes)
	assert.Zero(t, eta.RemainingDistanceKm)
}

func TestRoutingService_RecomputeETA_CeilsMinutes(t *testing.T) {
	fx := createTestRoutingService(t, nil)
	route := newTestRoute(t)

	// 1 km north of the destination at 40 km/h is 90 s, which rounds up to 2 minutes.
	start := geo.NewPoint(taipeiStation.Lat()+0.0089932, taipeiStation.Lon())

	eta := fx.service.RecomputeETA(route, &start)
	assert.Equal(t, 2, eta.Minutes)
}
