// Package geo holds the pure geometry used by tracking: great-circle distance,
// travel-time estimates and route geometry encoding.
package geo

import (
	"fmt"
	"math"
	"strconv"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

// ErrInvalidCoordinate is returned for NaN, infinite or out-of-range coordinates.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// NewPoint builds an orb point from latitude and longitude.
// orb stores points as [lng, lat].
func NewPoint(lat, lng float64) orb.Point {
	return orb.Point{lng, lat}
}

// Validate rejects coordinates that would poison distance calculations.
func Validate(p orb.Point) error {
	lat, lng := p.Lat(), p.Lon()
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return errors.Wrapf(ErrInvalidCoordinate, "lat=%v lng=%v", lat, lng)
	}

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return errors.Wrapf(ErrInvalidCoordinate, "lat=%v lng=%v out of range", lat, lng)
	}

	return nil
}

// DistanceMeters returns the haversine distance between two points.
func DistanceMeters(a, b orb.Point) (float64, error) {
	if err := Validate(a); err != nil {
		return 0, err
	}
	if err := Validate(b); err != nil {
		return 0, err
	}

	return orbgeo.DistanceHaversine(a, b), nil
}

// StraightLine is the fallback geometry between two points.
func StraightLine(origin, destination orb.Point) orb.LineString {
	return orb.LineString{origin, destination}
}

// GoogleMapsLink builds a navigation deep link from origin to destination.
func GoogleMapsLink(origin, destination orb.Point) string {
	return fmt.Sprintf("https://www.google.com/maps/dir/%s,%s/%s,%s",
		formatDegrees(origin.Lat()), formatDegrees(origin.Lon()),
		formatDegrees(destination.Lat()), formatDegrees(destination.Lon()),
	)
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
