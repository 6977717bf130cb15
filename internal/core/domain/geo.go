package domain

import (
	"math"
	"strconv"
)

// EarthRadiusKm is the mean Earth radius used by GreatCircleDistance.
const EarthRadiusKm = 6371.0

// Point is a WGS-84 coordinate in decimal degrees.
type Point struct {
	Lat float64
	Lon float64
}

// Validate reports a PreconditionError for coordinates that cannot be fed
// into GreatCircleDistance.
func (p Point) Validate() error {
	if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) || p.Lat < -90 || p.Lat > 90 {
		return &PreconditionError{Field: "lat", Value: strconv.FormatFloat(p.Lat, 'f', -1, 64)}
	}
	if math.IsNaN(p.Lon) || math.IsInf(p.Lon, 0) || p.Lon < -180 || p.Lon > 180 {
		return &PreconditionError{Field: "lon", Value: strconv.FormatFloat(p.Lon, 'f', -1, 64)}
	}
	return nil
}

// GreatCircleDistance returns the haversine distance between a and b in
// kilometers. Inputs are not validated: NaN in, NaN out.
func GreatCircleDistance(a, b Point) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := lat2 - lat1
	dLon := radians(b.Lon - a.Lon)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// WithinRadius reports whether point lies inside the circle around center.
// The boundary is inclusive.
func WithinRadius(center, point Point, radiusKm float64) bool {
	return GreatCircleDistance(center, point) <= radiusKm
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
