// Package mapdata defines the test-map road network: the OpenLR road
// attributes and the fixed set of nodes and lines the fixture database is
// seeded with.
package mapdata

// FRC is the functional road class of a line, from FRC0 (most important
// road) to FRC7 (least important road).
type FRC uint8

const (
	FRC0 FRC = iota
	FRC1
	FRC2
	FRC3
	FRC4
	FRC5
	FRC6
	FRC7
)

// FOW is the form of way of a line.
type FOW uint8

const (
	FOWUndefined FOW = iota
	FOWMotorway
	FOWMultipleCarriageway
	FOWSingleCarriageway
	FOWRoundabout
	FOWTrafficSquare
	FOWSlipRoad
	FOWOther
)

var fowNames = map[FOW]string{
	FOWUndefined:           "UNDEFINED",
	FOWMotorway:            "MOTORWAY",
	FOWMultipleCarriageway: "MULTIPLE_CARRIAGEWAY",
	FOWSingleCarriageway:   "SINGLE_CARRIAGEWAY",
	FOWRoundabout:          "ROUNDABOUT",
	FOWTrafficSquare:       "TRAFFIC_SQUARE",
	FOWSlipRoad:            "SLIP_ROAD",
	FOWOther:               "OTHER",
}

func (f FOW) String() string {
	if name, ok := fowNames[f]; ok {
		return name
	}
	return "UNKNOWN"
}
