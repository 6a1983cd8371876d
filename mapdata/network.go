package mapdata

import "github.com/lucasvillarinho/testmap/wgs84"

// Node is an intersection of the test network, with a WGS84 position.
type Node struct {
	ID  int64
	Lon float64
	Lat float64
}

// Line is a directed road segment between two nodes.
//
// Via holds optional intermediate shape points. The full geometry of a line
// is start node, via points, end node, in that order.
type Line struct {
	ID        int64
	StartNode int64
	EndNode   int64
	FRC       FRC
	FOW       FOW
	Via       []wgs84.Point
}

// Network is a set of nodes interconnected by directed lines.
type Network struct {
	Nodes []Node
	Lines []Line
}

// Test network layout: a 5x3 grid of intersections near Berlin, roughly
// 135 m apart in longitude and 111 m in latitude.
//
//	10 - 11 - 12 - 13 - 14
//	 |    |    |         |
//	 5    6 -- 7 -- 8 -- 9
//	 |    |    |    |
//	 0 == 1 -- 2 -- 3 -- 4
//
// The bottom row is the main street (two-way between 0 and 1), the top row
// a dual carriageway, the rest single-carriageway side streets. Line 19
// carries an extra shape point so that multi-point geometries are covered.
const (
	baseLon = 13.410
	baseLat = 52.520

	lonStep = 0.002
	latStep = 0.001
)

// TestNetwork returns the fixed network the fixture database is seeded
// with: 15 nodes and 19 directed lines. The result is deterministic, two
// calls return identical content.
func TestNetwork() Network {
	nodes := make([]Node, 0, 15)
	for row := 0; row < 3; row++ {
		for col := 0; col < 5; col++ {
			nodes = append(nodes, Node{
				ID:  int64(row*5 + col),
				Lon: baseLon + float64(col)*lonStep,
				Lat: baseLat + float64(row)*latStep,
			})
		}
	}

	lines := []Line{
		{ID: 1, StartNode: 0, EndNode: 1, FRC: FRC2, FOW: FOWSingleCarriageway},
		{ID: 2, StartNode: 1, EndNode: 0, FRC: FRC2, FOW: FOWSingleCarriageway},
		{ID: 3, StartNode: 1, EndNode: 2, FRC: FRC2, FOW: FOWSingleCarriageway},
		{ID: 4, StartNode: 2, EndNode: 3, FRC: FRC2, FOW: FOWSingleCarriageway},
		{ID: 5, StartNode: 3, EndNode: 4, FRC: FRC2, FOW: FOWSingleCarriageway},
		{ID: 6, StartNode: 0, EndNode: 5, FRC: FRC5, FOW: FOWSingleCarriageway},
		{ID: 7, StartNode: 5, EndNode: 10, FRC: FRC5, FOW: FOWSingleCarriageway},
		{ID: 8, StartNode: 1, EndNode: 6, FRC: FRC5, FOW: FOWSingleCarriageway},
		{ID: 9, StartNode: 6, EndNode: 7, FRC: FRC4, FOW: FOWSingleCarriageway},
		{ID: 10, StartNode: 7, EndNode: 8, FRC: FRC4, FOW: FOWSingleCarriageway},
		{ID: 11, StartNode: 8, EndNode: 9, FRC: FRC4, FOW: FOWSingleCarriageway},
		{ID: 12, StartNode: 6, EndNode: 11, FRC: FRC5, FOW: FOWSingleCarriageway},
		{ID: 13, StartNode: 11, EndNode: 12, FRC: FRC3, FOW: FOWMultipleCarriageway},
		{ID: 14, StartNode: 12, EndNode: 13, FRC: FRC3, FOW: FOWMultipleCarriageway},
		{ID: 15, StartNode: 13, EndNode: 14, FRC: FRC3, FOW: FOWMultipleCarriageway},
		{ID: 16, StartNode: 2, EndNode: 7, FRC: FRC5, FOW: FOWSingleCarriageway},
		{ID: 17, StartNode: 7, EndNode: 12, FRC: FRC5, FOW: FOWSingleCarriageway},
		{ID: 18, StartNode: 8, EndNode: 3, FRC: FRC5, FOW: FOWSingleCarriageway},
		{
			ID:        19,
			StartNode: 9,
			EndNode:   14,
			FRC:       FRC4,
			FOW:       FOWSlipRoad,
			Via:       []wgs84.Point{{Lon: 13.4185, Lat: 52.5215}},
		},
	}

	return Network{Nodes: nodes, Lines: lines}
}

// NodeByID returns the node with the given id.
func (n Network) NodeByID(id int64) (Node, bool) {
	for _, node := range n.Nodes {
		if node.ID == id {
			return node, true
		}
	}
	return Node{}, false
}

// Geometry returns the full path of a line: its start node position, via
// points, and end node position.
func (n Network) Geometry(line Line) ([]wgs84.Point, bool) {
	start, ok := n.NodeByID(line.StartNode)
	if !ok {
		return nil, false
	}
	end, ok := n.NodeByID(line.EndNode)
	if !ok {
		return nil, false
	}

	path := make([]wgs84.Point, 0, len(line.Via)+2)
	path = append(path, wgs84.Point{Lon: start.Lon, Lat: start.Lat})
	path = append(path, line.Via...)
	path = append(path, wgs84.Point{Lon: end.Lon, Lat: end.Lat})

	return path, true
}
