package geom

import (
	"encoding/json"
	"errors"
	"io"
	"os"
)

// LoadGeoJSON reads a GeoJSON file into a geographic collection.
// Supported: Point, MultiPoint, LineString, MultiLineString, Polygon,
// MultiPolygon, bare or wrapped in Feature/FeatureCollection. Malformed
// sub-geometries are skipped rather than failing the whole file.
func LoadGeoJSON(path string) (Collection[Geographic], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return ParseGeoJSON(data)
}

// ParseGeoJSON decodes GeoJSON bytes into a geographic collection.
func ParseGeoJSON(data []byte) (Collection[Geographic], error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	var col Collection[Geographic]

	parseCoord := func(v any) (Geographic, bool) {
		if a, ok := v.([]any); ok && len(a) >= 2 {
			lon, lok := a[0].(float64)
			lat, aok := a[1].(float64)
			if lok && aok {
				return Geographic{Lat: lat, Lon: lon}, true
			}
		}
		return Geographic{}, false
	}
	parseSeq := func(v any) ([]Geographic, bool) {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		var out []Geographic
		for _, el := range arr {
			if c, ok := parseCoord(el); ok {
				out = append(out, c)
			}
		}
		return out, true
	}
	parseRings := func(v any) ([][]Geographic, bool) {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		var rings [][]Geographic
		for _, el := range arr {
			if ring, ok := parseSeq(el); ok && len(ring) > 0 {
				rings = append(rings, ring)
			}
		}
		return rings, true
	}

	var walkGeom func(g map[string]any)
	walkGeom = func(g map[string]any) {
		gt, _ := g["type"].(string)
		switch gt {
		case "Point":
			if c, ok := parseCoord(g["coordinates"]); ok {
				col = append(col, Point[Geographic]{Coord: c})
			}
		case "MultiPoint":
			if pts, ok := parseSeq(g["coordinates"]); ok {
				for _, c := range pts {
					col = append(col, Point[Geographic]{Coord: c})
				}
			}
		case "LineString":
			if ls, ok := parseSeq(g["coordinates"]); ok && len(ls) > 0 {
				col = append(col, LineString[Geographic]{Coords: ls})
			}
		case "MultiLineString":
			if arr, ok := g["coordinates"].([]any); ok {
				for _, el := range arr {
					if ls, ok := parseSeq(el); ok && len(ls) > 0 {
						col = append(col, LineString[Geographic]{Coords: ls})
					}
				}
			}
		case "Polygon":
			if rings, ok := parseRings(g["coordinates"]); ok && len(rings) > 0 {
				col = append(col, Polygon[Geographic]{Rings: rings})
			}
		case "MultiPolygon":
			if arr, ok := g["coordinates"].([]any); ok {
				var polys [][][]Geographic
				for _, el := range arr {
					if rings, ok := parseRings(el); ok && len(rings) > 0 {
						polys = append(polys, rings)
					}
				}
				if len(polys) > 0 {
					col = append(col, MultiPolygon[Geographic]{Polygons: polys})
				}
			}
		}
	}

	t, _ := raw["type"].(string)
	switch t {
	case "Feature":
		if g, ok := raw["geometry"].(map[string]any); ok {
			walkGeom(g)
		}
	case "FeatureCollection":
		if fs, ok := raw["features"].([]any); ok {
			for _, f := range fs {
				if fm, ok := f.(map[string]any); ok {
					if g, ok := fm["geometry"].(map[string]any); ok {
						walkGeom(g)
					}
				}
			}
		}
	default:
		if len(raw) > 0 {
			walkGeom(raw)
		}
	}
	if len(col) == 0 {
		return nil, errors.New("no geometries found")
	}
	return col, nil
}

// GeoJSON encodes the collection as a GeoJSON FeatureCollection value
// suitable for json.Marshal. Coordinates are emitted as [lon, lat].
func GeoJSON(c Collection[Geographic]) map[string]any {
	coord := func(g Geographic) []float64 { return []float64{g.Lon, g.Lat} }
	seq := func(cs []Geographic) []any {
		out := make([]any, len(cs))
		for i, g := range cs {
			out[i] = coord(g)
		}
		return out
	}
	rings := func(rs [][]Geographic) []any {
		out := make([]any, len(rs))
		for i, r := range rs {
			out[i] = seq(r)
		}
		return out
	}

	features := make([]any, 0, len(c))
	for _, s := range c {
		var g map[string]any
		switch v := s.(type) {
		case Point[Geographic]:
			g = map[string]any{"type": "Point", "coordinates": coord(v.Coord)}
		case LineString[Geographic]:
			g = map[string]any{"type": "LineString", "coordinates": seq(v.Coords)}
		case Polygon[Geographic]:
			g = map[string]any{"type": "Polygon", "coordinates": rings(v.Rings)}
		case MultiPolygon[Geographic]:
			polys := make([]any, len(v.Polygons))
			for i, p := range v.Polygons {
				polys[i] = rings(p)
			}
			g = map[string]any{"type": "MultiPolygon", "coordinates": polys}
		}
		features = append(features, map[string]any{
			"type":       "Feature",
			"properties": map[string]any{},
			"geometry":   g,
		})
	}
	return map[string]any{"type": "FeatureCollection", "features": features}
}
