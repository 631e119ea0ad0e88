package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapPreservesStructure(t *testing.T) {
	mp := MultiPolygon[Geographic]{Polygons: [][][]Geographic{
		{
			{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 1}, {Lat: 1, Lon: 1}, {Lat: 0, Lon: 0}},
			{{Lat: 0.2, Lon: 0.2}, {Lat: 0.2, Lon: 0.4}, {Lat: 0.4, Lon: 0.4}, {Lat: 0.2, Lon: 0.2}},
		},
		{
			{{Lat: 5, Lon: 5}, {Lat: 5, Lon: 6}, {Lat: 6, Lon: 6}, {Lat: 5, Lon: 5}},
		},
	}}

	out := Map[Geographic, Planar](mp, func(g Geographic) Planar {
		return Planar{X: g.Lon * 2, Y: g.Lat * 2}
	})
	got, ok := out.(MultiPolygon[Planar])
	require.True(t, ok)
	require.Len(t, got.Polygons, 2)
	require.Len(t, got.Polygons[0], 2)
	assert.Len(t, got.Polygons[0][0], 4)
	assert.Len(t, got.Polygons[0][1], 4)
	assert.Len(t, got.Polygons[1], 1)
	assert.Equal(t, Planar{X: 2, Y: 0}, got.Polygons[0][0][1])
}

func TestWalkAndCoordCount(t *testing.T) {
	col := Collection[Geographic]{
		Point[Geographic]{Coord: Geographic{Lat: 1, Lon: 2}},
		LineString[Geographic]{Coords: []Geographic{{Lat: 1, Lon: 1}, {Lat: 2, Lon: 2}}},
		Polygon[Geographic]{Rings: [][]Geographic{{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 1}, {Lat: 1, Lon: 0}}}},
	}
	assert.Equal(t, 6, col.CoordCount())

	var visited int
	for _, s := range col {
		Walk(s, func(Geographic) { visited++ })
	}
	assert.Equal(t, 6, visited)
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty[Geographic](LineString[Geographic]{}))
	assert.True(t, IsEmpty[Geographic](Polygon[Geographic]{}))
	assert.False(t, IsEmpty[Geographic](Point[Geographic]{Coord: Geographic{}}))
}

func TestBounds(t *testing.T) {
	a := Collection[Planar]{
		Point[Planar]{Coord: Planar{X: -10, Y: 5}},
	}
	b := Collection[Planar]{
		LineString[Planar]{Coords: []Planar{{X: 0, Y: 0}, {X: 30, Y: -20}}},
	}
	bbox, ok := Bounds(a, b)
	require.True(t, ok)
	assert.Equal(t, BBox{MinX: -10, MinY: -20, MaxX: 30, MaxY: 5}, bbox)
	assert.Equal(t, 40.0, bbox.Width())
	assert.Equal(t, 25.0, bbox.Height())

	_, ok = Bounds[Planar]()
	assert.False(t, ok)
}

func TestGeographicValid(t *testing.T) {
	assert.True(t, Geographic{Lat: 90, Lon: -180}.Valid())
	assert.False(t, Geographic{Lat: 90.0001, Lon: 0}.Valid())
	assert.False(t, Geographic{Lat: 0, Lon: 180.0001}.Valid())
}
