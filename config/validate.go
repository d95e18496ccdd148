package config

import (
	"strings"

	"tracker/internal/domain/constants"

	"github.com/pkg/errors"
)

// Validate rejects combinations that would only fail later at runtime.
// All problems are reported together.
func (c *Config) Validate() error {
	var problems []string

	if c.Env.Env == constants.EnvProduction && c.TestRoutes != nil && c.TestRoutes.Enabled {
		problems = append(problems, "testRoutes must be disabled in production")
	}

	if r := c.Routing; r != nil {
		switch r.Provider {
		case "", constants.RoutingProviderStraightLine:
		case constants.RoutingProviderOpenRouteService:
			if r.OpenRouteService.APIKey == "" {
				problems = append(problems, "routing.openRouteService.apiKey is required for the openrouteservice provider")
			}
		default:
			problems = append(problems, "unknown routing.provider "+r.Provider)
		}
		if r.ProviderTimeout < 0 || r.ArrivalRadiusMeters < 0 {
			problems = append(problems, "routing.providerTimeout and routing.arrivalRadiusMeters must not be negative")
		}
		for mode, speed := range r.SpeedsKmh {
			if speed <= 0 {
				problems = append(problems, "routing.speedsKmh."+mode+" must be positive")
			}
		}
	}

	if rt := c.Realtime; rt != nil {
		if rt.IdleTimeout < 0 || rt.ReapInterval < 0 || rt.SendBuffer < 0 {
			problems = append(problems, "realtime durations and sendBuffer must not be negative")
		}
		if rt.Redis.Enabled && rt.Redis.Addr == "" {
			problems = append(problems, "realtime.redis.addr is required when the relay is enabled")
		}
	}

	if p := c.PubSub; p != nil {
		switch p.Provider {
		case "", constants.PubSubProviderLocal, constants.PubSubProviderGoogle:
		case constants.PubSubProviderKafka:
			if c.Kafka == nil || len(c.Kafka.Brokers) == 0 {
				problems = append(problems, "kafka.brokers is required for the kafka provider")
			}
		default:
			problems = append(problems, "unknown pubsub.provider "+p.Provider)
		}
	}

	if len(problems) > 0 {
		return errors.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	return nil
}
