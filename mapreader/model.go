package mapreader

import (
	"github.com/lucasvillarinho/testmap/mapdata"
	"github.com/lucasvillarinho/testmap/wgs84"
)

// Node is an intersection read from the map, with its WGS84 position.
type Node struct {
	ID       int64
	Position wgs84.Point
}

// Line is a directed road segment read from the map.
//
// Geometry holds the full shape of the line; its first point is the start
// node position and its last point the end node position.
type Line struct {
	ID        int64
	StartNode int64
	EndNode   int64
	FRC       mapdata.FRC
	FOW       mapdata.FOW
	Geometry  []wgs84.Point
}

// Length returns the line length in meters.
func (l *Line) Length() float64 {
	return wgs84.PathLength(l.Geometry)
}

// DistanceTo returns the distance from the line to the given point, in meters.
func (l *Line) DistanceTo(p wgs84.Point) float64 {
	return wgs84.DistanceToPath(p, l.Geometry)
}

// PathLength returns the length of a path of lines in the map, in meters.
func PathLength(lines []*Line) float64 {
	var length float64
	for _, line := range lines {
		length += line.Length()
	}
	return length
}
