package territory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMetersSymmetry(t *testing.T) {
	pairs := [][2]Coordinate{
		{{Latitude: 39.0792, Longitude: 26.8870}, {Latitude: 39.0798, Longitude: 26.8869}},
		{{Latitude: 0, Longitude: 0}, {Latitude: 0.0009, Longitude: 0}},
		{{Latitude: -33.8688, Longitude: 151.2093}, {Latitude: 51.5074, Longitude: -0.1278}},
		{{Latitude: 89.9, Longitude: 45}, {Latitude: 89.9, Longitude: -135}},
	}
	for _, pair := range pairs {
		assert.Equal(t, DistanceMeters(pair[0], pair[1]), DistanceMeters(pair[1], pair[0]))
	}
}

func TestDistanceMetersKnownFixture(t *testing.T) {
	// 0.0009 degrees of latitude is about 100 m at the equator.
	a := Coordinate{Latitude: 0, Longitude: 0}
	b := Coordinate{Latitude: 0.0009, Longitude: 0}
	assert.InDelta(t, 100.0, DistanceMeters(a, b), 2.0)
}

func TestDistanceMetersZero(t *testing.T) {
	p := Coordinate{Latitude: 39.0792, Longitude: 26.8870}
	assert.Equal(t, 0.0, DistanceMeters(p, p))
}

func TestDistanceMetersAntimeridian(t *testing.T) {
	// Two points straddling the 180th meridian are close, not half a world
	// apart.
	a := Coordinate{Latitude: 0, Longitude: 179.9995}
	b := Coordinate{Latitude: 0, Longitude: -179.9995}
	assert.InDelta(t, 111.0, DistanceMeters(a, b), 2.0)
}

func TestWithinRadius(t *testing.T) {
	center := Coordinate{Latitude: 39.0792, Longitude: 26.8870}
	near := Coordinate{Latitude: 39.0796, Longitude: 26.8870} // ~44 m north
	far := Coordinate{Latitude: 39.0892, Longitude: 26.8870}  // ~1.1 km north

	assert.True(t, WithinRadius(near, center, 100))
	assert.False(t, WithinRadius(far, center, 100))
	assert.True(t, WithinRadius(far, center, 2000))
}
