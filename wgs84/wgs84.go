// Package wgs84 contains geo coordinate tools for WGS84 longitude/latitude
// positions: great-circle distance, bearing, extrapolation and interpolation
// along paths, plus WKT LINESTRING encoding for line geometries.
package wgs84

import "math"

// earthRadius is the mean earth radius in meters.
const earthRadius = 6371008.8

// Point is a WGS84 position with longitude and latitude in degrees.
type Point struct {
	Lon float64
	Lat float64
}

// Distance returns the great-circle distance between two points, in meters.
func Distance(a, b Point) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadius * math.Asin(math.Min(1, math.Sqrt(h)))
}

// Bearing returns the angle from a to b relative to true north.
//
// The result is in radians, between -pi and pi, including them.
func Bearing(a, b Point) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLon := radians(b.Lon - a.Lon)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	return math.Atan2(y, x)
}

// Extrapolate creates a new point that is dist meters away from p in
// direction angle (radians, relative to true north).
func Extrapolate(p Point, dist, angle float64) Point {
	lat1 := radians(p.Lat)
	lon1 := radians(p.Lon)
	delta := dist / earthRadius

	lat2 := math.Asin(
		math.Sin(lat1)*math.Cos(delta) +
			math.Cos(lat1)*math.Sin(delta)*math.Cos(angle),
	)
	lon2 := lon1 + math.Atan2(
		math.Sin(angle)*math.Sin(delta)*math.Cos(lat1),
		math.Cos(delta)-math.Sin(lat1)*math.Sin(lat2),
	)

	return Point{Lon: degrees(lon2), Lat: degrees(lat2)}
}

// PathLength returns the length of a path of points in meters.
func PathLength(path []Point) float64 {
	var length float64
	for i := 0; i+1 < len(path); i++ {
		length += Distance(path[i], path[i+1])
	}
	return length
}

// Interpolate goes dist meters along the path and returns the resulting point.
//
// When the path is shorter than dist, its last point is returned.
func Interpolate(path []Point, dist float64) Point {
	remaining := dist
	for i := 0; i+1 < len(path); i++ {
		from, to := path[i], path[i+1]
		if remaining == 0 {
			return from
		}
		segment := Distance(from, to)
		if remaining < segment {
			return Extrapolate(from, remaining, Bearing(from, to))
		}
		remaining -= segment
	}
	return path[len(path)-1]
}

// DistanceToPath returns the distance from p to the nearest point of the
// path, in meters.
//
// Segments are projected on a local equirectangular plane around p, which is
// accurate for the short segments of a road network.
func DistanceToPath(p Point, path []Point) float64 {
	if len(path) == 1 {
		return Distance(p, path[0])
	}

	min := math.Inf(1)
	for i := 0; i+1 < len(path); i++ {
		if d := distanceToSegment(p, path[i], path[i+1]); d < min {
			min = d
		}
	}
	return min
}

// distanceToSegment returns the distance from p to the segment a-b in meters.
func distanceToSegment(p, a, b Point) float64 {
	// Project onto a plane centered at p. One degree of latitude spans a
	// constant distance, one degree of longitude shrinks with cos(lat).
	cosLat := math.Cos(radians(p.Lat))
	ax := (a.Lon - p.Lon) * cosLat
	ay := a.Lat - p.Lat
	bx := (b.Lon - p.Lon) * cosLat
	by := b.Lat - p.Lat

	dx := bx - ax
	dy := by - ay

	t := 0.0
	if dx != 0 || dy != 0 {
		t = -(ax*dx + ay*dy) / (dx*dx + dy*dy)
		t = math.Max(0, math.Min(1, t))
	}

	nearest := Point{
		Lon: a.Lon + t*(b.Lon-a.Lon),
		Lat: a.Lat + t*(b.Lat-a.Lat),
	}

	return Distance(p, nearest)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
