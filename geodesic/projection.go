/*
Package geodesic converts between Mercator map coordinates, spherical
coordinates and points on the unit sphere, and computes great-circle routes
between map locations.

Map coordinates (u,v) cover the unit square. Longitude maps linearly from u,
latitude linearly from v, limited to a maximum latitude (85° by default):

	lon = (u - 0.5) · 2π
	lat = (v - 0.5) · 2 · maxLat

This is the simplified equirectangular-in-latitude variant of the lab map,
not the logarithmic Web-Mercator formula. Pixel coordinates have their
y axis pointing down, map coordinates have v pointing up.

All functions are pure and work in single precision.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package geodesic

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/npillmayer/cglabs"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cglabs.geodesic'
func tracer() tracing.Trace {
	return tracing.Select("cglabs.geodesic")
}

// Spherical is a location on a sphere, in radians.
type Spherical struct {
	Lon, Lat float32
}

func (s Spherical) String() string {
	return fmt.Sprintf("(%.2f°,%.2f°)", s.Lon/cglabs.Deg2Rad, s.Lat/cglabs.Deg2Rad)
}

// Projection maps between the unit square and spherical coordinates, with
// latitudes limited to ±maxLat.
type Projection struct {
	maxLat float32 // radians
}

// NewProjection creates a projection limited to ±maxLatitude degrees.
func NewProjection(maxLatitude float32) Projection {
	return Projection{maxLat: maxLatitude * cglabs.Deg2Rad}
}

// Standard is the projection with the usual latitude limit of 85°.
var Standard = NewProjection(85)

// MaxLatitude returns the latitude limit in radians.
func (p Projection) MaxLatitude() float32 {
	return p.maxLat
}

// ToSpherical converts map coordinates to longitude and latitude.
func (p Projection) ToSpherical(m cglabs.Pair) Spherical {
	return Spherical{
		Lon: (m.X() - 0.5) * 2 * math32.Pi,
		Lat: (m.Y() - 0.5) * 2 * p.maxLat,
	}
}

// ToMercator converts longitude and latitude to map coordinates. Latitudes
// beyond the projection's limit are clamped.
func (p Projection) ToMercator(s Spherical) cglabs.Pair {
	lat := cglabs.Clamp(s.Lat, -p.maxLat, p.maxLat)
	return cglabs.P(s.Lon/(2*math32.Pi)+0.5, lat/(2*p.maxLat)+0.5)
}

// MercatorToSpherical converts map coordinates with the standard projection.
func MercatorToSpherical(m cglabs.Pair) Spherical {
	return Standard.ToSpherical(m)
}

// SphericalToMercator converts to map coordinates with the standard
// projection, clamping latitude to ±85°.
func SphericalToMercator(s Spherical) cglabs.Pair {
	return Standard.ToMercator(s)
}

// SphericalToCartesian returns the point on the unit sphere for s.
func SphericalToCartesian(s Spherical) Vec3 {
	slat, clat := math32.Sincos(s.Lat)
	slon, clon := math32.Sincos(s.Lon)
	return Vec3{X: clat * clon, Y: clat * slon, Z: slat}
}

// CartesianToSpherical returns longitude and latitude of the direction v.
// v need not be normalized; the zero vector maps to (0,0).
func CartesianToSpherical(v Vec3) Spherical {
	n := v.Normalized()
	return Spherical{
		Lon: math32.Atan2(n.Y, n.X),
		Lat: math32.Asin(cglabs.Clamp(n.Z, -1, 1)),
	}
}

// PixelToMercator converts a pixel position in a window of size w×h to map
// coordinates.
func PixelToMercator(x, y, w, h int) cglabs.Pair {
	return cglabs.P(float32(x)/float32(w), 1-float32(y)/float32(h))
}

// MercatorToPixel converts map coordinates to a pixel position in a window of
// size w×h.
func MercatorToPixel(m cglabs.Pair, w, h int) (int, int) {
	return int(m.X() * float32(w)), int((1 - m.Y()) * float32(h))
}

// MercatorToNDC maps the unit square onto normalized device coordinates
// [-1,1]².
func MercatorToNDC(m cglabs.Pair) cglabs.Pair {
	return cglabs.P(m.X()*2-1, m.Y()*2-1)
}
