package proj

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demercator/internal/geom"
)

func TestForwardOriginIsZero(t *testing.T) {
	origin := geom.Geographic{Lat: 40, Lon: -75}
	p := New(origin)
	got := p.Forward(origin)
	require.Equal(t, geom.Planar{}, got)
}

func TestForwardDueNorth(t *testing.T) {
	p := New(geom.Geographic{Lat: 40, Lon: -75})
	got := p.Forward(geom.Geographic{Lat: 40.0090, Lon: -75})

	// 0.009 deg of arc along the meridian
	wantY := 0.0090 * math.Pi / 180 * EarthRadiusMeters
	assert.InDelta(t, 0, got.X, 1e-9)
	assert.InDelta(t, wantY, got.Y, 0.01)
	assert.InDelta(t, 1000, got.Y, 5) // ~1 km north

	back := p.Inverse(got)
	assert.InDelta(t, 40.0090, back.Lat, 1e-6)
	assert.InDelta(t, -75, back.Lon, 1e-6)
}

func TestForwardBearingSigns(t *testing.T) {
	p := New(geom.Geographic{Lat: 40, Lon: -75})

	east := p.Forward(geom.Geographic{Lat: 40, Lon: -74.99})
	assert.Greater(t, east.X, 0.0)

	south := p.Forward(geom.Geographic{Lat: 39.99, Lon: -75})
	assert.Less(t, south.Y, 0.0)
	assert.InDelta(t, 0, south.X, 1e-9)
}

func TestRoundTrip(t *testing.T) {
	origins := []geom.Geographic{
		{Lat: 0, Lon: 0},
		{Lat: 40, Lon: -75},
		{Lat: -33.86, Lon: 151.21},
		{Lat: 64.13, Lon: -21.9},
	}
	points := []geom.Geographic{
		{Lat: 40.0090, Lon: -75.0000},
		{Lat: 41.5, Lon: -74.2},
		{Lat: -12.05, Lon: -77.04},
		{Lat: 51.5, Lon: -0.12},
		{Lat: 35.68, Lon: 139.69},
		{Lat: -0.0001, Lon: 0.0001},
	}
	for _, origin := range origins {
		p := New(origin)
		for _, g := range points {
			back := p.Inverse(p.Forward(g))
			assert.InDelta(t, g.Lat, back.Lat, 1e-6, "origin %v point %v", origin, g)
			assert.InDelta(t, g.Lon, back.Lon, 1e-6, "origin %v point %v", origin, g)
		}
	}
}

func TestAntipodalIsFinite(t *testing.T) {
	p := New(geom.Geographic{Lat: 40, Lon: -75})
	got := p.Forward(geom.Geographic{Lat: -40, Lon: 105})

	require.False(t, math.IsNaN(got.X))
	require.False(t, math.IsNaN(got.Y))
	// the antipode sits at maximum distance, half the great circle
	d := math.Hypot(got.X, got.Y)
	assert.InDelta(t, math.Pi*EarthRadiusMeters, d, 1)
}

func TestInverseOfPlaneOrigin(t *testing.T) {
	origin := geom.Geographic{Lat: 12.5, Lon: 33.25}
	p := New(origin)
	require.Equal(t, origin, p.Inverse(geom.Planar{}))
}
