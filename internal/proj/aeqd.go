// Package proj implements the azimuthal equidistant projection used for the
// true-scale overlay: distances and bearings from the chosen origin to every
// other point are preserved on the plane.
package proj

import (
	"math"

	"demercator/internal/geom"
)

// EarthRadiusMeters is the mean Earth radius of the spherical model.
// Sufficient for comparative overlays; swap in an ellipsoidal variant
// behind the same interface if sub-meter absolute accuracy is needed.
const EarthRadiusMeters = 6_371_000.0

// AEQD projects geographic coordinates onto a plane of meters centered at a
// fixed origin. The zero value is centered at (0, 0); construct with New.
// It holds no mutable state and is safe for concurrent use.
type AEQD struct {
	origin  geom.Geographic
	lat0    float64 // radians
	lon0    float64 // radians
	sinLat0 float64
	cosLat0 float64
}

// New returns a projector centered at origin.
func New(origin geom.Geographic) AEQD {
	lat0 := origin.Lat * math.Pi / 180
	lon0 := origin.Lon * math.Pi / 180
	return AEQD{
		origin:  origin,
		lat0:    lat0,
		lon0:    lon0,
		sinLat0: math.Sin(lat0),
		cosLat0: math.Cos(lat0),
	}
}

// Origin returns the projection center.
func (p AEQD) Origin() geom.Geographic { return p.origin }

// Forward projects g to planar meters relative to the origin. The x axis
// points east, y north. The origin itself maps to exactly (0, 0).
func (p AEQD) Forward(g geom.Geographic) geom.Planar {
	lat := g.Lat * math.Pi / 180
	dLon := g.Lon*math.Pi/180 - p.lon0
	sinLat, cosLat := math.Sin(lat), math.Cos(lat)
	sinDLon, cosDLon := math.Sin(dLon), math.Cos(dLon)

	// atan2 numerator/denominator shared by angular distance and bearing.
	kx := cosLat * sinDLon
	ky := p.cosLat0*sinLat - p.sinLat0*cosLat*cosDLon
	rho := math.Sqrt(kx*kx + ky*ky)
	if rho == 0 {
		// coincident with origin (or its exact antipode, where every
		// bearing is equivalent)
		c := math.Atan2(0, p.sinLat0*sinLat+p.cosLat0*cosLat*cosDLon)
		if c == 0 {
			return geom.Planar{}
		}
		return geom.Planar{X: 0, Y: c * EarthRadiusMeters}
	}
	c := math.Atan2(rho, p.sinLat0*sinLat+p.cosLat0*cosLat*cosDLon)
	theta := math.Atan2(kx, ky)
	d := c * EarthRadiusMeters
	return geom.Planar{X: d * math.Sin(theta), Y: d * math.Cos(theta)}
}

// Inverse recovers the geographic coordinate for a planar point. For the
// plane origin it returns the projection origin exactly.
func (p AEQD) Inverse(pt geom.Planar) geom.Geographic {
	rho := math.Hypot(pt.X, pt.Y)
	if rho == 0 {
		return p.origin
	}
	c := rho / EarthRadiusMeters
	sinC, cosC := math.Sin(c), math.Cos(c)

	lat := math.Asin(cosC*p.sinLat0 + pt.Y*sinC*p.cosLat0/rho)
	lon := p.lon0 + math.Atan2(pt.X*sinC, rho*p.cosLat0*cosC-pt.Y*p.sinLat0*sinC)

	latDeg := lat * 180 / math.Pi
	lonDeg := lon * 180 / math.Pi
	// normalize longitude into [-180, 180]
	for lonDeg > 180 {
		lonDeg -= 360
	}
	for lonDeg < -180 {
		lonDeg += 360
	}
	return geom.Geographic{Lat: latDeg, Lon: lonDeg}
}
