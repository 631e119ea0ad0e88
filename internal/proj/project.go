package proj

import "demercator/internal/geom"

// ProjectCollection maps every coordinate of a geographic collection through
// p, preserving part order, ring order, and coordinate counts. Empty
// sub-geometries are skipped rather than failing the layer. Returns
// geom.ErrEmptyGeometry when nothing remains to project.
func ProjectCollection(c geom.Collection[geom.Geographic], p AEQD) (geom.Collection[geom.Planar], error) {
	out := make(geom.Collection[geom.Planar], 0, len(c))
	for _, s := range c {
		if s == nil || geom.IsEmpty[geom.Geographic](s) {
			continue
		}
		out = append(out, geom.Map(s, p.Forward))
	}
	if len(out) == 0 {
		return nil, geom.ErrEmptyGeometry
	}
	return out, nil
}
