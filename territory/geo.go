package territory

import "math"

// earthRadiusMeters is the mean Earth radius of the spherical approximation.
const earthRadiusMeters = 6371000.0

// Coordinate is a WGS84 point in decimal degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// DistanceMeters returns the great-circle distance between two coordinates
// using the haversine formula. The formula is symmetric and behaves correctly
// across the antimeridian and at the poles.
func DistanceMeters(a, b Coordinate) float64 {
	phi1 := a.Latitude * math.Pi / 180
	phi2 := b.Latitude * math.Pi / 180
	dPhi := (b.Latitude - a.Latitude) * math.Pi / 180
	dLambda := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// WithinRadius reports whether a and b are at most radiusMeters apart.
// The radius is a parameter of the calling flow: direct capture uses a tight
// geofence, check-in accumulation a looser one.
func WithinRadius(a, b Coordinate, radiusMeters float64) bool {
	return DistanceMeters(a, b) <= radiusMeters
}
