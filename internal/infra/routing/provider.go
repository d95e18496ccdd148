package routing

import (
	"log/slog"
	"net/http"

	"tracker/config"
	"tracker/internal/domain/constants"
	"tracker/internal/domain/geo"
	"tracker/internal/domain/service"

	"go.uber.org/fx"
)

// ProviderParams holds dependencies for creating a RoutingProvider
type ProviderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewRoutingProvider creates the provider named by routing.provider.
func NewRoutingProvider(params ProviderParams) service.RoutingProvider {
	cfg := params.Config.Routing
	straightLine := NewStraightLineProvider(NewSpeedTable(params.Config))
	if cfg == nil {
		params.Logger.Info("Routing not configured, using straight line routes")

		return straightLine
	}

	switch cfg.Provider {
	case constants.RoutingProviderOpenRouteService:
		params.Logger.Info("Using OpenRouteService routing provider",
			slog.String("base_url", cfg.OpenRouteService.BaseURL),
		)

		return NewOpenRouteServiceProvider(cfg.OpenRouteService.BaseURL, cfg.OpenRouteService.APIKey, &http.Client{})
	case constants.RoutingProviderStraightLine, "":
		return straightLine
	default:
		params.Logger.Warn("Unknown routing provider, using straight line routes",
			slog.String("provider", cfg.Provider),
		)

		return straightLine
	}
}

// NewSpeedTable builds the per-mode speed table from defaults and routing.speedsKmh.
func NewSpeedTable(cfg *config.Config) geo.SpeedTable {
	speeds := geo.DefaultSpeeds()
	if cfg == nil || cfg.Routing == nil {
		return speeds
	}

	return speeds.WithOverrides(cfg.Routing.SpeedsKmh)
}
