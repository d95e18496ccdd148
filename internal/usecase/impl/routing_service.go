package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"tracker/config"
	"tracker/internal/domain/constants"
	"tracker/internal/domain/entity"
	"tracker/internal/domain/geo"
	"tracker/internal/domain/service"
	"tracker/internal/usecase"

	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

const (
	// fallback defaults to keep routing functional when config is missing/invalid
	defaultProviderTimeout     = 3 * time.Second
	defaultArrivalRadiusMeters = 5.0
)

// RoutingServiceParams holds dependencies for the routing service
type RoutingServiceParams struct {
	fx.In

	Config   *config.Config
	Provider service.RoutingProvider
	Speeds   geo.SpeedTable
	Logger   *slog.Logger
}

type routingService struct {
	provider        service.RoutingProvider
	speeds          geo.SpeedTable
	providerTimeout time.Duration
	arrivalRadius   float64
	logger          *slog.Logger
	now             func() time.Time
}

// NewRoutingService creates a new routing service instance
func NewRoutingService(params RoutingServiceParams) usecase.RoutingUsecase {
	timeout := defaultProviderTimeout
	arrivalRadius := defaultArrivalRadiusMeters

	if cfg := params.Config.Routing; cfg != nil {
		if cfg.ProviderTimeout > 0 {
			timeout = cfg.ProviderTimeout
		}
		if cfg.ArrivalRadiusMeters > 0 {
			arrivalRadius = cfg.ArrivalRadiusMeters
		}
	}

	speeds := params.Speeds
	if speeds == nil {
		speeds = geo.DefaultSpeeds()
	}

	return &routingService{
		provider:        params.Provider,
		speeds:          speeds,
		providerTimeout: timeout,
		arrivalRadius:   arrivalRadius,
		logger:          params.Logger,
		now:             time.Now,
	}
}

// CalculateRoute asks the provider for a route and falls back to a straight line
func (s *routingService) CalculateRoute(ctx context.Context, origin, destination orb.Point, mode geo.TravelMode) *usecase.RoutePlan {
	if s.provider != nil && s.provider.Name() != constants.RoutingProviderStraightLine {
		plan, err := s.fromProvider(ctx, origin, destination, mode)
		if err == nil {
			return plan
		}

		s.logger.WarnContext(ctx, "Route provider unavailable, using straight line",
			slog.String("provider", s.provider.Name()),
			slog.Any("error", err),
		)

		return s.straightLine(origin, destination, mode, true)
	}

	return s.straightLine(origin, destination, mode, false)
}

func (s *routingService) fromProvider(ctx context.Context, origin, destination orb.Point, mode geo.TravelMode) (*usecase.RoutePlan, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	defer cancel()

	route, err := s.provider.Route(callCtx, origin, destination, mode)
	if err != nil {
		return nil, err
	}

	duration := int(math.Round(route.DurationSeconds))
	if duration <= 0 {
		duration = s.speeds.EstimateDurationSeconds(route.DistanceMeters, mode)
	}

	return &usecase.RoutePlan{
		Geometry:        route.Geometry,
		DistanceMeters:  route.DistanceMeters,
		DurationSeconds: duration,
		TravelMode:      mode,
		Provider:        s.provider.Name(),
		ProviderRouteID: route.RouteID,
	}, nil
}

func (s *routingService) straightLine(origin, destination orb.Point, mode geo.TravelMode, fallback bool) *usecase.RoutePlan {
	// Coordinates were validated by the caller; an error here leaves distance at zero.
	distance, _ := geo.DistanceMeters(origin, destination)

	return &usecase.RoutePlan{
		Geometry:        geo.StraightLine(origin, destination),
		DistanceMeters:  distance,
		DurationSeconds: s.speeds.EstimateDurationSeconds(distance, mode),
		TravelMode:      mode,
		Provider:        constants.RoutingProviderStraightLine,
		Fallback:        fallback,
	}
}

// RecomputeETA measures the remaining distance from current to the route destination
func (s *routingService) RecomputeETA(route *entity.Route, current *orb.Point) usecase.ETA {
	now := s.now().UTC()

	var (
		remainingMeters float64
		seconds         int
	)

	if current == nil {
		remainingMeters = float64(route.DistanceMeters)
		seconds = route.DurationSeconds
	} else {
		distance, err := geo.DistanceMeters(*current, route.Dropoff())
		if err != nil {
			remainingMeters = float64(route.DistanceMeters)
			seconds = route.DurationSeconds
		} else {
			remainingMeters = distance
			seconds = s.speeds.EstimateDurationSeconds(distance, route.TravelMode)
		}
	}

	if remainingMeters <= s.arrivalRadius {
		return usecase.ETA{Arrival: now, Arrived: true}
	}

	return usecase.ETA{
		Minutes:             int(math.Ceil(float64(seconds) / 60)),
		Arrival:             now.Add(time.Duration(seconds) * time.Second),
		RemainingDistanceKm: math.Round(remainingMeters/10) / 100,
	}
}
