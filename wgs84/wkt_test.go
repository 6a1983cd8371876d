package wgs84

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLineString(t *testing.T) {
	t.Run("should format a two-point path", func(t *testing.T) {
		wkt, err := FormatLineString([]Point{
			{Lon: 13.41, Lat: 52.52},
			{Lon: 13.412, Lat: 52.521},
		})

		assert.NoError(t, err)
		assert.Equal(t, "LINESTRING (13.41 52.52, 13.412 52.521)", wkt)
	})

	t.Run("should reject a single point", func(t *testing.T) {
		_, err := FormatLineString([]Point{{Lon: 13.41, Lat: 52.52}})

		assert.Error(t, err)
	})
}

func TestParseLineString(t *testing.T) {
	t.Run("should parse what FormatLineString produces", func(t *testing.T) {
		path := []Point{
			{Lon: 13.41, Lat: 52.52},
			{Lon: 13.4185, Lat: 52.5215},
			{Lon: 13.418, Lat: 52.522},
		}
		wkt, err := FormatLineString(path)
		assert.NoError(t, err)

		parsed, err := ParseLineString(wkt)

		assert.NoError(t, err)
		assert.Equal(t, path, parsed)
	})

	t.Run("should accept lowercase and loose spacing", func(t *testing.T) {
		parsed, err := ParseLineString("linestring ( 13.41 52.52 ,13.412 52.521 )")

		assert.NoError(t, err)
		assert.Len(t, parsed, 2)
		assert.Equal(t, Point{Lon: 13.41, Lat: 52.52}, parsed[0])
	})

	t.Run("should reject other geometry types", func(t *testing.T) {
		_, err := ParseLineString("POINT (13.41 52.52)")

		assert.Error(t, err)
	})

	t.Run("should reject a missing coordinate component", func(t *testing.T) {
		_, err := ParseLineString("LINESTRING (13.41 52.52, 13.412)")

		assert.Error(t, err)
	})

	t.Run("should reject non-numeric coordinates", func(t *testing.T) {
		_, err := ParseLineString("LINESTRING (nope 52.52, 13.412 52.521)")

		assert.Error(t, err)
	})
}
