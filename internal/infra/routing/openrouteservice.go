// Package routing contains the route planning providers.
package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"tracker/internal/domain/constants"
	"tracker/internal/domain/geo"
	"tracker/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

const (
	defaultOpenRouteServiceURL = "https://api.openrouteservice.org"
	maxErrorBodyBytes          = 512
)

// orsProfiles maps travel modes to OpenRouteService profiles.
var orsProfiles = map[geo.TravelMode]string{
	geo.ModeDriving:    "driving-car",
	geo.ModeCycling:    "cycling-regular",
	geo.ModeWalking:    "foot-walking",
	geo.ModeScooter:    "cycling-electric",
	geo.ModeMotorcycle: "driving-car",
}

// OpenRouteServiceProvider calls the OpenRouteService directions API and reads
// its GeoJSON answer.
type OpenRouteServiceProvider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewOpenRouteServiceProvider creates a provider for the given endpoint.
// Timeouts come from the caller's context.
func NewOpenRouteServiceProvider(baseURL, apiKey string, httpClient *http.Client) *OpenRouteServiceProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultOpenRouteServiceURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &OpenRouteServiceProvider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

func (p *OpenRouteServiceProvider) Name() string {
	return constants.RoutingProviderOpenRouteService
}

type orsRequest struct {
	Coordinates [][2]float64 `json:"coordinates"`
}

// Route requests directions for mode and returns the first route.
func (p *OpenRouteServiceProvider) Route(ctx context.Context, origin, destination orb.Point, mode geo.TravelMode) (*service.ProviderRoute, error) {
	if p.apiKey == "" {
		return nil, errors.Wrap(service.ErrRouteProviderUnavailable, "openrouteservice api key not configured")
	}

	profile, ok := orsProfiles[mode]
	if !ok {
		profile = orsProfiles[geo.ModeDriving]
	}

	// GeoJSON order is [lng, lat], same as orb.Point.
	payload, err := json.Marshal(orsRequest{Coordinates: [][2]float64{origin, destination}})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	url := fmt.Sprintf("%s/v2/directions/%s/geojson", p.baseURL, profile)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/geo+json")
	req.Header.Set("Authorization", p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(service.ErrRouteProviderUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		return nil, errors.Wrapf(service.ErrRouteProviderUnavailable,
			"openrouteservice returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read openrouteservice response")
	}

	return parseDirections(body)
}

func parseDirections(body []byte) (*service.ProviderRoute, error) {
	fc, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		return nil, errors.Wrap(err, "decode openrouteservice geojson")
	}
	if len(fc.Features) == 0 {
		return nil, errors.New("openrouteservice returned no route")
	}

	feature := fc.Features[0]
	line, ok := feature.Geometry.(orb.LineString)
	if !ok || len(line) < 2 {
		return nil, errors.Errorf("openrouteservice returned unexpected geometry %T", feature.Geometry)
	}

	summary, _ := feature.Properties["summary"].(map[string]any)
	distance, _ := summary["distance"].(float64)
	duration, _ := summary["duration"].(float64)
	if distance <= 0 {
		return nil, errors.New("openrouteservice route has no distance summary")
	}

	var routeID string
	if id, ok := feature.ID.(string); ok {
		routeID = id
	}

	return &service.ProviderRoute{
		Geometry:        line,
		DistanceMeters:  distance,
		DurationSeconds: duration,
		RouteID:         routeID,
	}, nil
}
