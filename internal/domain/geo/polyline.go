package geo

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/twpayne/go-polyline"
)

// PolylinePrecision is the coordinate resolution kept by EncodePolyline.
const PolylinePrecision = 1e-5

// EncodePolyline encodes a route geometry in the Google polyline format.
func EncodePolyline(ls orb.LineString) string {
	coords := make([][]float64, 0, len(ls))
	for _, p := range ls {
		coords = append(coords, []float64{p.Lat(), p.Lon()})
	}

	return string(polyline.EncodeCoords(coords))
}

// DecodePolyline reverses EncodePolyline.
func DecodePolyline(encoded string) (orb.LineString, error) {
	if encoded == "" {
		return orb.LineString{}, nil
	}

	coords, rest, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, errors.Wrap(err, "decode polyline")
	}
	if len(rest) != 0 {
		return nil, errors.Errorf("decode polyline: %d trailing bytes", len(rest))
	}

	ls := make(orb.LineString, 0, len(coords))
	for _, c := range coords {
		ls = append(ls, NewPoint(c[0], c[1]))
	}

	return ls, nil
}
