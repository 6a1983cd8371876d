package wgs84

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	t.Run("should return zero for identical points", func(t *testing.T) {
		p := Point{Lon: 13.41, Lat: 52.52}

		assert.Zero(t, Distance(p, p))
	})

	t.Run("should measure one degree of latitude as roughly 111 km", func(t *testing.T) {
		a := Point{Lon: 13.41, Lat: 52.0}
		b := Point{Lon: 13.41, Lat: 53.0}

		dist := Distance(a, b)

		assert.InDelta(t, 111195, dist, 200, "Expected ~111 km per degree of latitude")
	})

	t.Run("should be symmetric", func(t *testing.T) {
		a := Point{Lon: 13.41, Lat: 52.52}
		b := Point{Lon: 13.42, Lat: 52.53}

		assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
	})
}

func TestBearing(t *testing.T) {
	t.Run("should return 0 for due north", func(t *testing.T) {
		a := Point{Lon: 13.41, Lat: 52.52}
		b := Point{Lon: 13.41, Lat: 52.53}

		assert.InDelta(t, 0, Bearing(a, b), 1e-9)
	})

	t.Run("should return pi/2 for due east", func(t *testing.T) {
		a := Point{Lon: 13.41, Lat: 0}
		b := Point{Lon: 13.42, Lat: 0}

		assert.InDelta(t, math.Pi/2, Bearing(a, b), 1e-6)
	})

	t.Run("should return pi for due south", func(t *testing.T) {
		a := Point{Lon: 13.41, Lat: 52.53}
		b := Point{Lon: 13.41, Lat: 52.52}

		assert.InDelta(t, math.Pi, math.Abs(Bearing(a, b)), 1e-9)
	})
}

func TestExtrapolate(t *testing.T) {
	t.Run("should land dist meters away", func(t *testing.T) {
		p := Point{Lon: 13.41, Lat: 52.52}

		q := Extrapolate(p, 500, math.Pi/2)

		assert.InDelta(t, 500, Distance(p, q), 1, "Expected the new point 500 m away")
		assert.Greater(t, q.Lon, p.Lon, "Expected an eastward move to increase longitude")
	})
}

func TestPathLength(t *testing.T) {
	a := Point{Lon: 13.41, Lat: 52.52}
	b := Point{Lon: 13.42, Lat: 52.52}
	c := Point{Lon: 13.42, Lat: 52.53}

	t.Run("should sum segment lengths", func(t *testing.T) {
		total := PathLength([]Point{a, b, c})

		assert.InDelta(t, Distance(a, b)+Distance(b, c), total, 1e-9)
	})

	t.Run("should return zero for a single point", func(t *testing.T) {
		assert.Zero(t, PathLength([]Point{a}))
	})
}

func TestInterpolate(t *testing.T) {
	a := Point{Lon: 13.41, Lat: 52.52}
	b := Point{Lon: 13.42, Lat: 52.52}

	t.Run("should return the start for distance zero", func(t *testing.T) {
		p := Interpolate([]Point{a, b}, 0)

		assert.Equal(t, a, p)
	})

	t.Run("should return the midpoint for half the length", func(t *testing.T) {
		half := Distance(a, b) / 2

		p := Interpolate([]Point{a, b}, half)

		assert.InDelta(t, half, Distance(a, p), 1, "Expected the midpoint half the length in")
	})

	t.Run("should clamp to the last point when the path is too short", func(t *testing.T) {
		p := Interpolate([]Point{a, b}, 1e6)

		assert.Equal(t, b, p)
	})
}

func TestDistanceToPath(t *testing.T) {
	a := Point{Lon: 13.41, Lat: 52.52}
	b := Point{Lon: 13.42, Lat: 52.52}

	t.Run("should return zero for a point on the path", func(t *testing.T) {
		assert.InDelta(t, 0, DistanceToPath(a, []Point{a, b}), 1e-6)
	})

	t.Run("should measure perpendicular distance to the segment", func(t *testing.T) {
		// Directly above the segment midpoint.
		p := Point{Lon: 13.415, Lat: 52.521}

		dist := DistanceToPath(p, []Point{a, b})

		assert.InDelta(t, Distance(p, Point{Lon: 13.415, Lat: 52.52}), dist, 2)
	})

	t.Run("should clamp to the nearest endpoint beyond the segment", func(t *testing.T) {
		p := Point{Lon: 13.44, Lat: 52.52}

		dist := DistanceToPath(p, []Point{a, b})

		assert.InDelta(t, Distance(p, b), dist, 1e-6)
	})
}
