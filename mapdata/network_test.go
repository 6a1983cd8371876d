package mapdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTestNetwork(t *testing.T) {
	network := TestNetwork()

	t.Run("should contain 15 nodes and 19 lines", func(t *testing.T) {
		assert.Len(t, network.Nodes, 15)
		assert.Len(t, network.Lines, 19)
	})

	t.Run("should have unique node and line ids", func(t *testing.T) {
		nodeIDs := map[int64]bool{}
		for _, node := range network.Nodes {
			assert.False(t, nodeIDs[node.ID], "Duplicate node id %d", node.ID)
			nodeIDs[node.ID] = true
		}

		lineIDs := map[int64]bool{}
		for _, line := range network.Lines {
			assert.False(t, lineIDs[line.ID], "Duplicate line id %d", line.ID)
			lineIDs[line.ID] = true
		}
	})

	t.Run("should only reference existing nodes", func(t *testing.T) {
		for _, line := range network.Lines {
			_, ok := network.NodeByID(line.StartNode)
			assert.True(t, ok, "Line %d starts at missing node %d", line.ID, line.StartNode)

			_, ok = network.NodeByID(line.EndNode)
			assert.True(t, ok, "Line %d ends at missing node %d", line.ID, line.EndNode)
		}
	})

	t.Run("should be deterministic", func(t *testing.T) {
		assert.Equal(t, network, TestNetwork(), "Expected two calls to return identical content")
	})
}

func TestNodeByID(t *testing.T) {
	network := TestNetwork()

	t.Run("should find an existing node", func(t *testing.T) {
		node, ok := network.NodeByID(7)

		assert.True(t, ok)
		assert.Equal(t, int64(7), node.ID)
	})

	t.Run("should report a missing node", func(t *testing.T) {
		_, ok := network.NodeByID(99)

		assert.False(t, ok)
	})
}

func TestGeometry(t *testing.T) {
	network := TestNetwork()

	t.Run("should span from start node to end node", func(t *testing.T) {
		line := network.Lines[0]

		path, ok := network.Geometry(line)

		assert.True(t, ok)
		assert.Len(t, path, 2)

		start, _ := network.NodeByID(line.StartNode)
		end, _ := network.NodeByID(line.EndNode)
		assert.Equal(t, start.Lon, path[0].Lon)
		assert.Equal(t, start.Lat, path[0].Lat)
		assert.Equal(t, end.Lon, path[len(path)-1].Lon)
		assert.Equal(t, end.Lat, path[len(path)-1].Lat)
	})

	t.Run("should include via points", func(t *testing.T) {
		var curved Line
		for _, line := range network.Lines {
			if line.ID == 19 {
				curved = line
			}
		}

		path, ok := network.Geometry(curved)

		assert.True(t, ok)
		assert.Len(t, path, 3, "Expected line 19 to carry one shape point")
	})

	t.Run("should report a line with a missing node", func(t *testing.T) {
		_, ok := network.Geometry(Line{ID: 100, StartNode: 0, EndNode: 99})

		assert.False(t, ok)
	})
}
