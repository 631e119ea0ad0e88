package geom

import (
	"errors"
	"strconv"
	"strings"
)

// ParseWKT parses a subset of WKT into a geographic collection.
// Supported: POINT(x y), MULTIPOINT(x y, ...), LINESTRING(x y, ...),
// POLYGON((x y, ...), (...)). WKT order is "x y", i.e. lon lat.
func ParseWKT(wkt string) (Collection[Geographic], error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return nil, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)

	parseTuples := func(block string) []Geographic {
		var out []Geographic
		for _, tup := range strings.Split(block, ",") {
			parts := strings.Fields(strings.TrimSpace(tup))
			if len(parts) < 2 {
				continue
			}
			lon, e1 := strconv.ParseFloat(parts[0], 64)
			lat, e2 := strconv.ParseFloat(parts[1], 64)
			if e1 != nil || e2 != nil {
				continue
			}
			out = append(out, Geographic{Lat: lat, Lon: lon})
		}
		return out
	}

	var col Collection[Geographic]
	switch {
	case strings.HasPrefix(up, "MULTIPOINT"):
		i := strings.Index(s, "(")
		j := strings.LastIndex(s, ")")
		if i < 0 || j <= i {
			return nil, errors.New("wkt multipoint: invalid")
		}
		for _, c := range parseTuples(strings.NewReplacer("(", "", ")", "").Replace(s[i+1 : j])) {
			col = append(col, Point[Geographic]{Coord: c})
		}
	case strings.HasPrefix(up, "POINT"):
		i := strings.Index(s, "(")
		j := strings.LastIndex(s, ")")
		if i < 0 || j <= i {
			return nil, errors.New("wkt point: invalid")
		}
		for _, c := range parseTuples(s[i+1 : j]) {
			col = append(col, Point[Geographic]{Coord: c})
		}
	case strings.HasPrefix(up, "LINESTRING"):
		i := strings.Index(s, "(")
		j := strings.LastIndex(s, ")")
		if i < 0 || j <= i {
			return nil, errors.New("wkt linestring: invalid")
		}
		if ls := parseTuples(s[i+1 : j]); len(ls) > 0 {
			col = append(col, LineString[Geographic]{Coords: ls})
		}
	case strings.HasPrefix(up, "POLYGON"):
		i := strings.Index(s, "((")
		j := strings.LastIndex(s, "))")
		if i < 0 || j <= i {
			return nil, errors.New("wkt polygon: invalid")
		}
		ringsStr := s[i+2 : j]
		ringsNorm := strings.ReplaceAll(ringsStr, "), (", "),(")
		ringsNorm = strings.ReplaceAll(ringsNorm, ") , (", "),(")
		var rings [][]Geographic
		for _, rp := range strings.Split(ringsNorm, "),(") {
			if ring := parseTuples(rp); len(ring) > 0 {
				rings = append(rings, ring)
			}
		}
		if len(rings) > 0 {
			col = append(col, Polygon[Geographic]{Rings: rings})
		}
	default:
		return nil, errors.New("unsupported wkt type")
	}
	if len(col) == 0 {
		return nil, errors.New("wkt: no coordinates parsed")
	}
	return col, nil
}
