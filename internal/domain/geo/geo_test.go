package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceMeters_KnownPair(t *testing.T) {
	pickup := NewPoint(26.6603, 86.2064)
	dropoff := NewPoint(26.6756, 86.2181)

	distance, err := DistanceMeters(pickup, dropoff)
	require.NoError(t, err)
	assert.InDelta(t, 2063, distance, 5)

	reverse, err := DistanceMeters(dropoff, pickup)
	require.NoError(t, err)
	assert.InDelta(t, distance, reverse, 1e-9)
}

func TestDistanceMeters_SamePointIsZero(t *testing.T) {
	p := NewPoint(25.0330, 121.5654)

	distance, err := DistanceMeters(p, p)
	require.NoError(t, err)
	assert.Zero(t, distance)
}

func TestDistanceMeters_InvalidCoordinates(t *testing.T) {
	valid := NewPoint(25.0330, 121.5654)

	tests := []struct {
		name  string
		point orb.Point
	}{
		{name: "NaN latitude", point: NewPoint(math.NaN(), 121.5)},
		{name: "NaN longitude", point: NewPoint(25.0, math.NaN())},
		{name: "positive infinity", point: NewPoint(math.Inf(1), 121.5)},
		{name: "negative infinity", point: NewPoint(25.0, math.Inf(-1))},
		{name: "latitude out of range", point: NewPoint(91, 121.5)},
		{name: "longitude out of range", point: NewPoint(25.0, -181)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DistanceMeters(valid, tt.point)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCoordinate))

			_, err = DistanceMeters(tt.point, valid)
			assert.True(t, errors.Is(err, ErrInvalidCoordinate))
		})
	}
}

func TestEstimateDurationSeconds_PerMode(t *testing.T) {
	tests := []struct {
		mode     TravelMode
		distance float64
		want     int
	}{
		{mode: ModeDriving, distance: 1000, want: 90},
		{mode: ModeCycling, distance: 1500, want: 360},
		{mode: ModeWalking, distance: 5000, want: 3600},
		{mode: ModeScooter, distance: 2500, want: 360},
		{mode: ModeMotorcycle, distance: 3500, want: 360},
		{mode: TravelMode("hovercraft"), distance: 1000, want: 90},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateDurationSeconds(tt.distance, tt.mode))
		})
	}
}

func TestEstimateDurationSeconds_RoundsToWholeSeconds(t *testing.T) {
	// 1001 m at 40 km/h is 90.09 s
	assert.Equal(t, 90, EstimateDurationSeconds(1001, ModeDriving))
	assert.Zero(t, EstimateDurationSeconds(0, ModeDriving))
}

func TestSpeedTable_WithOverrides(t *testing.T) {
	table := DefaultSpeeds().WithOverrides(map[string]float64{"Scooter": 20, "walking": 0})

	assert.InDelta(t, 20, table.SpeedKmh(ModeScooter), 1e-9)
	assert.InDelta(t, 5, table.SpeedKmh(ModeWalking), 1e-9)
	assert.InDelta(t, 25, DefaultSpeeds().SpeedKmh(ModeScooter), 1e-9)
}

func TestParseTravelMode(t *testing.T) {
	assert.Equal(t, ModeCycling, ParseTravelMode(" Cycling "))
	assert.Equal(t, ModeDriving, ParseTravelMode("teleport"))
	assert.Equal(t, ModeDriving, ParseTravelMode(""))
}

func TestPolyline_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		line orb.LineString
	}{
		{name: "single point", line: orb.LineString{NewPoint(26.6603, 86.2064)}},
		{name: "straight line", line: StraightLine(NewPoint(26.6603, 86.2064), NewPoint(26.6756, 86.2181))},
		{name: "southern and western hemispheres", line: orb.LineString{
			NewPoint(-33.86785, 151.20732),
			NewPoint(-34.60372, -58.38159),
			NewPoint(40.71278, -74.00597),
			NewPoint(0, 0),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := DecodePolyline(EncodePolyline(tt.line))
			require.NoError(t, err)
			require.Len(t, decoded, len(tt.line))

			for i := range tt.line {
				assert.InDelta(t, tt.line[i].Lat(), decoded[i].Lat(), PolylinePrecision/10)
				assert.InDelta(t, tt.line[i].Lon(), decoded[i].Lon(), PolylinePrecision/10)
			}
		})
	}
}

func TestPolyline_KnownEncoding(t *testing.T) {
	// Reference vector from the polyline format documentation.
	line := orb.LineString{
		NewPoint(38.5, -120.2),
		NewPoint(40.7, -120.95),
		NewPoint(43.252, -126.453),
	}

	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", EncodePolyline(line))
}

func TestDecodePolyline_Empty(t *testing.T) {
	decoded, err := DecodePolyline("")
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestGoogleMapsLink(t *testing.T) {
	link := GoogleMapsLink(NewPoint(26.6603, 86.2064), NewPoint(26.6756, 86.2181))

	assert.Equal(t, "https://www.google.com/maps/dir/26.6603,86.2064/26.6756,86.2181", link)
}
