package geom

import "errors"

// ErrEmptyGeometry is returned when an operation needs at least one
// coordinate and the input has none.
var ErrEmptyGeometry = errors.New("geometry has no coordinates")

// Geographic is a WGS84 coordinate in degrees.
type Geographic struct {
	Lat float64
	Lon float64
}

// XY returns the coordinate as (x, y) = (lon, lat).
func (g Geographic) XY() (float64, float64) { return g.Lon, g.Lat }

// Valid reports whether the coordinate is inside latitude/longitude bounds.
func (g Geographic) Valid() bool {
	return g.Lat >= -90 && g.Lat <= 90 && g.Lon >= -180 && g.Lon <= 180
}

// Planar is a coordinate in meters on a projected plane. It is only
// meaningful relative to the origin it was projected about.
type Planar struct {
	X float64
	Y float64
}

// XY returns the coordinate as (x, y).
func (p Planar) XY() (float64, float64) { return p.X, p.Y }

// Shape is the closed set of geometry variants. The coordinate type is
// generic so geographic and projected geometry share one structure;
// projection is a structure-preserving map over coordinates.
type Shape[C any] interface {
	sealed()
}

// Point is a single coordinate.
type Point[C any] struct {
	Coord C
}

// LineString is an ordered coordinate sequence.
type LineString[C any] struct {
	Coords []C
}

// Polygon is a set of closed rings, outer first, holes following.
type Polygon[C any] struct {
	Rings [][]C
}

// MultiPolygon is a sequence of polygons, each a set of rings.
type MultiPolygon[C any] struct {
	Polygons [][][]C
}

func (Point[C]) sealed()        {}
func (LineString[C]) sealed()   {}
func (Polygon[C]) sealed()      {}
func (MultiPolygon[C]) sealed() {}

// Collection is an ordered sequence of shapes from one source dataset.
type Collection[C any] []Shape[C]

// Walk visits every coordinate of s in order.
func Walk[C any](s Shape[C], fn func(C)) {
	switch v := s.(type) {
	case Point[C]:
		fn(v.Coord)
	case LineString[C]:
		for _, c := range v.Coords {
			fn(c)
		}
	case Polygon[C]:
		for _, ring := range v.Rings {
			for _, c := range ring {
				fn(c)
			}
		}
	case MultiPolygon[C]:
		for _, poly := range v.Polygons {
			for _, ring := range poly {
				for _, c := range ring {
					fn(c)
				}
			}
		}
	}
}

// IsEmpty reports whether the shape holds no coordinates.
func IsEmpty[C any](s Shape[C]) bool {
	n := 0
	Walk(s, func(C) { n++ })
	return n == 0
}

// Map applies f to every coordinate of s, preserving structure exactly:
// part order, ring order, and coordinate counts are unchanged.
func Map[S, T any](s Shape[S], f func(S) T) Shape[T] {
	switch v := s.(type) {
	case Point[S]:
		return Point[T]{Coord: f(v.Coord)}
	case LineString[S]:
		coords := make([]T, len(v.Coords))
		for i, c := range v.Coords {
			coords[i] = f(c)
		}
		return LineString[T]{Coords: coords}
	case Polygon[S]:
		return Polygon[T]{Rings: mapRings(v.Rings, f)}
	case MultiPolygon[S]:
		polys := make([][][]T, len(v.Polygons))
		for i, poly := range v.Polygons {
			polys[i] = mapRings(poly, f)
		}
		return MultiPolygon[T]{Polygons: polys}
	}
	// Shape is sealed; no other variants exist.
	return nil
}

func mapRings[S, T any](rings [][]S, f func(S) T) [][]T {
	out := make([][]T, len(rings))
	for i, ring := range rings {
		r := make([]T, len(ring))
		for j, c := range ring {
			r[j] = f(c)
		}
		out[i] = r
	}
	return out
}

// CoordCount returns the total number of coordinates in the collection.
func (c Collection[C]) CoordCount() int {
	n := 0
	for _, s := range c {
		Walk(s, func(C) { n++ })
	}
	return n
}

// BBox is an axis-aligned bounding box in the coordinate's (x, y) frame.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

func (b BBox) Width() float64  { return b.MaxX - b.MinX }
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// Extend grows the box to include (x, y).
func (b *BBox) Extend(x, y float64) {
	if x < b.MinX {
		b.MinX = x
	}
	if y < b.MinY {
		b.MinY = y
	}
	if x > b.MaxX {
		b.MaxX = x
	}
	if y > b.MaxY {
		b.MaxY = y
	}
}

// XYer is a coordinate exposing its planar ordering as (x, y).
type XYer interface {
	XY() (float64, float64)
}

// Bounds computes the bounding box over every coordinate of the
// collections. ok is false when there are no coordinates at all.
func Bounds[C XYer](cols ...Collection[C]) (bbox BBox, ok bool) {
	first := true
	for _, col := range cols {
		for _, s := range col {
			Walk(s, func(c C) {
				x, y := c.XY()
				if first {
					bbox = BBox{MinX: x, MinY: y, MaxX: x, MaxY: y}
					first = false
					return
				}
				bbox.Extend(x, y)
			})
		}
	}
	return bbox, !first
}
