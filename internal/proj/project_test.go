package proj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demercator/internal/geom"
)

func TestProjectCollectionPreservesStructure(t *testing.T) {
	p := New(geom.Geographic{Lat: 40, Lon: -75})
	ring := []geom.Geographic{
		{Lat: 40.01, Lon: -75.01}, {Lat: 40.01, Lon: -74.99},
		{Lat: 39.99, Lon: -74.99}, {Lat: 39.99, Lon: -75.01},
		{Lat: 40.01, Lon: -75.01},
	}
	hole := []geom.Geographic{
		{Lat: 40.005, Lon: -75.005}, {Lat: 40.005, Lon: -74.995},
		{Lat: 39.995, Lon: -74.995}, {Lat: 40.005, Lon: -75.005},
	}
	col := geom.Collection[geom.Geographic]{
		geom.Polygon[geom.Geographic]{Rings: [][]geom.Geographic{ring, hole}},
		geom.LineString[geom.Geographic]{Coords: ring[:3]},
		geom.Point[geom.Geographic]{Coord: geom.Geographic{Lat: 40, Lon: -75}},
	}

	out, err := ProjectCollection(col, p)
	require.NoError(t, err)
	require.Len(t, out, 3)

	poly, ok := out[0].(geom.Polygon[geom.Planar])
	require.True(t, ok)
	require.Len(t, poly.Rings, 2)
	assert.Len(t, poly.Rings[0], len(ring))
	assert.Len(t, poly.Rings[1], len(hole))
	// closed rings stay closed: identical input coordinates project to
	// identical planar coordinates
	assert.Equal(t, poly.Rings[0][0], poly.Rings[0][len(ring)-1])

	ls, ok := out[1].(geom.LineString[geom.Planar])
	require.True(t, ok)
	assert.Len(t, ls.Coords, 3)

	pt, ok := out[2].(geom.Point[geom.Planar])
	require.True(t, ok)
	assert.Equal(t, geom.Planar{}, pt.Coord)
}

func TestProjectCollectionSkipsEmptyShapes(t *testing.T) {
	p := New(geom.Geographic{Lat: 0, Lon: 0})
	col := geom.Collection[geom.Geographic]{
		geom.LineString[geom.Geographic]{},
		nil,
		geom.Point[geom.Geographic]{Coord: geom.Geographic{Lat: 1, Lon: 1}},
		geom.Polygon[geom.Geographic]{},
	}
	out, err := ProjectCollection(col, p)
	require.NoError(t, err)
	require.Len(t, out, 1)
}

func TestProjectCollectionEmpty(t *testing.T) {
	p := New(geom.Geographic{Lat: 0, Lon: 0})

	_, err := ProjectCollection(nil, p)
	require.ErrorIs(t, err, geom.ErrEmptyGeometry)

	_, err = ProjectCollection(geom.Collection[geom.Geographic]{
		geom.LineString[geom.Geographic]{},
	}, p)
	require.ErrorIs(t, err, geom.ErrEmptyGeometry)
}
