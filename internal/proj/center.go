package proj

import (
	"errors"
	"fmt"
	"math"

	"demercator/internal/geom"
)

// ErrInvalidOrigin is returned for an explicit origin outside
// latitude/longitude bounds.
var ErrInvalidOrigin = errors.New("origin out of latitude/longitude bounds")

// ResolveCenter picks the projection origin. An explicit origin wins after
// bounds validation; otherwise the centroid of first is used: area-weighted
// over polygon rings when the collection has any ring with nonzero area,
// the plain vertex mean otherwise.
func ResolveCenter(explicit *geom.Geographic, first geom.Collection[geom.Geographic]) (geom.Geographic, error) {
	if explicit != nil {
		if !explicit.Valid() {
			return geom.Geographic{}, fmt.Errorf("%w: (%.4f, %.4f)", ErrInvalidOrigin, explicit.Lat, explicit.Lon)
		}
		return *explicit, nil
	}
	return Centroid(first)
}

// Centroid computes the centroid of a geographic collection.
func Centroid(c geom.Collection[geom.Geographic]) (geom.Geographic, error) {
	if c.CoordCount() == 0 {
		return geom.Geographic{}, geom.ErrEmptyGeometry
	}

	var areaSum, axSum, aySum float64
	addRing := func(ring []geom.Geographic) {
		if len(ring) < 3 {
			return
		}
		// shoelace on (lon, lat); signed terms cancel for holes wound
		// opposite to their outer ring
		var a, cx, cy float64
		for i := 0; i < len(ring); i++ {
			p := ring[i]
			q := ring[(i+1)%len(ring)]
			cross := p.Lon*q.Lat - q.Lon*p.Lat
			a += cross
			cx += (p.Lon + q.Lon) * cross
			cy += (p.Lat + q.Lat) * cross
		}
		a /= 2
		if a == 0 {
			return
		}
		areaSum += a
		axSum += cx / 6
		aySum += cy / 6
	}
	for _, s := range c {
		switch v := s.(type) {
		case geom.Polygon[geom.Geographic]:
			for _, ring := range v.Rings {
				addRing(ring)
			}
		case geom.MultiPolygon[geom.Geographic]:
			for _, poly := range v.Polygons {
				for _, ring := range poly {
					addRing(ring)
				}
			}
		}
	}
	if math.Abs(areaSum) > 1e-12 {
		return geom.Geographic{Lat: aySum / areaSum, Lon: axSum / areaSum}, nil
	}

	// no polygon area: geometric mean of all vertices
	var lonSum, latSum float64
	n := 0
	for _, s := range c {
		geom.Walk(s, func(g geom.Geographic) {
			lonSum += g.Lon
			latSum += g.Lat
			n++
		})
	}
	return geom.Geographic{Lat: latSum / float64(n), Lon: lonSum / float64(n)}, nil
}
