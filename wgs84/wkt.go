package wgs84

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatLineString encodes a path as a WKT LINESTRING, e.g.
// "LINESTRING (13.41 52.52, 13.412 52.52)".
//
// A line string needs at least two points.
func FormatLineString(path []Point) (string, error) {
	if len(path) < 2 {
		return "", fmt.Errorf("line string needs at least 2 points, got %d", len(path))
	}

	coords := make([]string, len(path))
	for i, point := range path {
		coords[i] = formatFloat(point.Lon) + " " + formatFloat(point.Lat)
	}

	return "LINESTRING (" + strings.Join(coords, ", ") + ")", nil
}

// ParseLineString decodes a WKT LINESTRING into a path of points.
func ParseLineString(wkt string) ([]Point, error) {
	body := strings.TrimSpace(wkt)
	if !strings.HasPrefix(strings.ToUpper(body), "LINESTRING") {
		return nil, fmt.Errorf("not a LINESTRING: %q", wkt)
	}

	body = strings.TrimSpace(body[len("LINESTRING"):])
	if !strings.HasPrefix(body, "(") || !strings.HasSuffix(body, ")") {
		return nil, fmt.Errorf("malformed LINESTRING body: %q", wkt)
	}
	body = body[1 : len(body)-1]

	coords := strings.Split(body, ",")
	if len(coords) < 2 {
		return nil, fmt.Errorf("line string needs at least 2 points, got %d", len(coords))
	}

	path := make([]Point, 0, len(coords))
	for _, coord := range coords {
		fields := strings.Fields(coord)
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed coordinate %q", strings.TrimSpace(coord))
		}

		lon, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("parsing longitude %q: %w", fields[0], err)
		}
		lat, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("parsing latitude %q: %w", fields[1], err)
		}

		path = append(path, Point{Lon: lon, Lat: lat})
	}

	return path, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
