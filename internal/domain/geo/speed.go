package geo

import (
	"math"
	"strings"
)

// TravelMode is the vehicle class used for duration estimates.
type TravelMode string

const (
	ModeDriving    TravelMode = "driving"
	ModeCycling    TravelMode = "cycling"
	ModeWalking    TravelMode = "walking"
	ModeScooter    TravelMode = "scooter"
	ModeMotorcycle TravelMode = "motorcycle"
)

// ParseTravelMode normalizes a mode name. Unknown names map to driving.
func ParseTravelMode(s string) TravelMode {
	mode := TravelMode(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := defaultSpeedsKmh[mode]; ok {
		return mode
	}

	return ModeDriving
}

var defaultSpeedsKmh = map[TravelMode]float64{
	ModeDriving:    40,
	ModeCycling:    15,
	ModeWalking:    5,
	ModeScooter:    25,
	ModeMotorcycle: 35,
}

// SpeedTable maps travel modes to average speeds in km/h.
type SpeedTable map[TravelMode]float64

// DefaultSpeeds returns a fresh copy of the built-in average speeds.
func DefaultSpeeds() SpeedTable {
	table := make(SpeedTable, len(defaultSpeedsKmh))
	for mode, speed := range defaultSpeedsKmh {
		table[mode] = speed
	}

	return table
}

// WithOverrides returns a copy of the table with positive overrides applied.
func (t SpeedTable) WithOverrides(overrides map[string]float64) SpeedTable {
	merged := make(SpeedTable, len(t))
	for mode, speed := range t {
		merged[mode] = speed
	}
	for name, speed := range overrides {
		if speed > 0 {
			merged[TravelMode(strings.ToLower(name))] = speed
		}
	}

	return merged
}

// SpeedKmh returns the speed for mode, falling back to driving.
func (t SpeedTable) SpeedKmh(mode TravelMode) float64 {
	if speed, ok := t[mode]; ok && speed > 0 {
		return speed
	}
	if speed, ok := t[ModeDriving]; ok && speed > 0 {
		return speed
	}

	return defaultSpeedsKmh[ModeDriving]
}

// EstimateDurationSeconds converts a distance into whole seconds of travel.
func (t SpeedTable) EstimateDurationSeconds(distanceMeters float64, mode TravelMode) int {
	if distanceMeters <= 0 || math.IsNaN(distanceMeters) {
		return 0
	}

	hours := (distanceMeters / 1000) / t.SpeedKmh(mode)

	return int(math.Round(hours * 3600))
}

// EstimateDurationSeconds uses the built-in speeds.
func EstimateDurationSeconds(distanceMeters float64, mode TravelMode) int {
	return DefaultSpeeds().EstimateDurationSeconds(distanceMeters, mode)
}
