package geodesic

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/npillmayer/cglabs"
)

// Vec3 is a point or direction in 3-space.
type Vec3 struct {
	X, Y, Z float32
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g,%g,%g)", v.X, v.Y, v.Z)
}

// Dot returns the scalar product v·w.
func (v Vec3) Dot(w Vec3) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the vector product v×w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{v.Y*w.Z - v.Z*w.Y, v.Z*w.X - v.X*w.Z, v.X*w.Y - v.Y*w.X}
}

// Add returns v+w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Scaled returns a·v.
func (v Vec3) Scaled(a float32) Vec3 {
	return Vec3{a * v.X, a * v.Y, a * v.Z}
}

// Length returns |v|.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalized returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scaled(1 / l)
}

// minAngle is the angle below which two points are treated as identical.
const minAngle float32 = 0.00001

// Angle returns the angle ω between two directions, in radians. It equals
// acos(p1·p2) for unit vectors, but is computed as atan2(|p1×p2|, p1·p2),
// which stays exact for (nearly) identical points in single precision.
func Angle(p1, p2 Vec3) float32 {
	return math32.Atan2(p1.Cross(p2).Length(), p1.Dot(p2))
}

// Distance returns the length of the great-circle arc between two points on
// the unit sphere, scaled to a sphere of the given radius.
func Distance(p1, p2 Vec3, radius float32) float32 {
	return Angle(p1, p2) * radius
}

// GreatCircle returns segments+1 points along the shorter great-circle arc
// from p1 to p2, by spherical linear interpolation
//
//	p(t) = (sin((1-t)ω)·p1 + sin(tω)·p2) / sin ω
//
// Every sample is renormalized. For nearly identical points (ω < 1e-5) all
// samples equal p1. Antipodal points have no unique great circle; the
// result is then numerically meaningless.
func GreatCircle(p1, p2 Vec3, segments int) []Vec3 {
	if segments < 1 {
		segments = 1
	}
	omega := Angle(p1, p2)
	points := make([]Vec3, 0, segments+1)
	sinOmega := math32.Sin(omega)
	for i := 0; i <= segments; i++ {
		var p Vec3
		if omega < minAngle {
			p = p1
		} else {
			t := float32(i) / float32(segments)
			a := math32.Sin((1-t)*omega) / sinOmega
			b := math32.Sin(t*omega) / sinOmega
			p = p1.Scaled(a).Add(p2.Scaled(b))
		}
		points = append(points, p.Normalized())
	}
	return points
}

// IsDaytime reports whether the map location m faces the sun at the given
// hour of day, for an axis tilted by tilt radians. The sun direction is
// (-cos h, -sin h, sin tilt), normalized, with h the hour angle.
func (p Projection) IsDaytime(m cglabs.Pair, hour int, tilt float32) bool {
	surface := SphericalToCartesian(p.ToSpherical(m))
	h := float32(hour) / 24 * 2 * math32.Pi
	sh, ch := math32.Sincos(h)
	sun := Vec3{X: -ch, Y: -sh, Z: math32.Sin(tilt)}.Normalized()
	return surface.Dot(sun) > 0
}

// IsDaytime tests for daylight with the standard projection.
func IsDaytime(m cglabs.Pair, hour int, tilt float32) bool {
	return Standard.IsDaytime(m, hour, tilt)
}
