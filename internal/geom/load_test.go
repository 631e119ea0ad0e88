package geom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const featureCollection = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {}, "geometry": {"type": "Point", "coordinates": [-75.0, 40.0]}},
    {"type": "Feature", "properties": {}, "geometry": {"type": "LineString", "coordinates": [[-75.0, 40.0], [-74.9, 40.1]]}},
    {"type": "Feature", "properties": {}, "geometry": {"type": "Polygon", "coordinates": [[[-75.0, 40.0], [-74.9, 40.0], [-74.9, 40.1], [-75.0, 40.0]]]}},
    {"type": "Feature", "properties": {}, "geometry": {"type": "LineString", "coordinates": []}},
    {"type": "Feature", "properties": {}, "geometry": {"type": "MultiPolygon", "coordinates": [[[[-75.0, 40.0], [-74.8, 40.0], [-74.8, 40.2], [-75.0, 40.0]]]]}}
  ]
}`

func TestParseGeoJSON(t *testing.T) {
	col, err := ParseGeoJSON([]byte(featureCollection))
	require.NoError(t, err)
	require.Len(t, col, 4, "the empty LineString is skipped")

	pt, ok := col[0].(Point[Geographic])
	require.True(t, ok)
	assert.Equal(t, Geographic{Lat: 40, Lon: -75}, pt.Coord)

	ls, ok := col[1].(LineString[Geographic])
	require.True(t, ok)
	assert.Len(t, ls.Coords, 2)

	poly, ok := col[2].(Polygon[Geographic])
	require.True(t, ok)
	require.Len(t, poly.Rings, 1)
	assert.Equal(t, poly.Rings[0][0], poly.Rings[0][len(poly.Rings[0])-1])

	_, ok = col[3].(MultiPolygon[Geographic])
	require.True(t, ok)
}

func TestParseGeoJSONBareGeometry(t *testing.T) {
	col, err := ParseGeoJSON([]byte(`{"type": "MultiPoint", "coordinates": [[1.0, 2.0], [3.0, 4.0]]}`))
	require.NoError(t, err)
	require.Len(t, col, 2)
	assert.Equal(t, Point[Geographic]{Coord: Geographic{Lat: 2, Lon: 1}}, col[0])
}

func TestParseGeoJSONNoGeometries(t *testing.T) {
	_, err := ParseGeoJSON([]byte(`{"type": "FeatureCollection", "features": []}`))
	require.Error(t, err)
}

func TestGeoJSONRoundTrip(t *testing.T) {
	col, err := ParseGeoJSON([]byte(featureCollection))
	require.NoError(t, err)

	fc := GeoJSON(col)
	assert.Equal(t, "FeatureCollection", fc["type"])
	features := fc["features"].([]any)
	require.Len(t, features, 4)
	g := features[0].(map[string]any)["geometry"].(map[string]any)
	assert.Equal(t, "Point", g["type"])
	assert.Equal(t, []float64{-75, 40}, g["coordinates"])
}

func TestParseWKT(t *testing.T) {
	col, err := ParseWKT("POINT(-75.0 40.0)")
	require.NoError(t, err)
	require.Len(t, col, 1)
	assert.Equal(t, Point[Geographic]{Coord: Geographic{Lat: 40, Lon: -75}}, col[0])

	col, err = ParseWKT("LINESTRING(-75 40, -74.9 40.1, -74.8 40.2)")
	require.NoError(t, err)
	require.Len(t, col, 1)
	ls := col[0].(LineString[Geographic])
	assert.Len(t, ls.Coords, 3)

	col, err = ParseWKT("POLYGON((-75 40, -74.9 40, -74.9 40.1, -75 40), (-74.98 40.02, -74.92 40.02, -74.92 40.08, -74.98 40.02))")
	require.NoError(t, err)
	require.Len(t, col, 1)
	poly := col[0].(Polygon[Geographic])
	require.Len(t, poly.Rings, 2)
	assert.Len(t, poly.Rings[0], 4)

	_, err = ParseWKT("TRIANGLE((0 0, 1 0, 0 1))")
	require.Error(t, err)
	_, err = ParseWKT("")
	require.Error(t, err)
}

func TestLoadCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pts.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,latitude,longitude\na,40.0,-75.0\nb,40.1,-74.9\nbad,x,y\n"), 0o644))

	col, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, col, 2, "unparsable rows are skipped")
	assert.Equal(t, Point[Geographic]{Coord: Geographic{Lat: 40, Lon: -75}}, col[0])
}

func TestLoadKML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pts.kml")
	kml := `<?xml version="1.0" encoding="UTF-8"?>
<kml><Document>
  <Placemark><Point><coordinates>-75.0,40.0,12</coordinates></Point></Placemark>
  <Placemark><name>no point</name></Placemark>
</Document></kml>`
	require.NoError(t, os.WriteFile(path, []byte(kml), 0o644))

	col, err := LoadKML(path)
	require.NoError(t, err)
	require.Len(t, col, 1)
	assert.Equal(t, Point[Geographic]{Coord: Geographic{Lat: 40, Lon: -75}}, col[0])
}

func TestLoadDispatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.geojson")
	require.NoError(t, os.WriteFile(path, []byte(featureCollection), 0o644))

	col, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, col, 4)

	_, err = Load(filepath.Join(dir, "a.shp"))
	require.Error(t, err)
}
