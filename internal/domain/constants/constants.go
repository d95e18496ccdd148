package constants

// Deployment environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Event bus providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Routing providers
const (
	RoutingProviderStraightLine     = "straightline"
	RoutingProviderOpenRouteService = "openrouteservice"
)
