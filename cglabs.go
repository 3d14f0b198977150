/*
Package cglabs implements single-precision points, affine transformations
and line arithmetic shared by the computer-graphics labs.

Sub-packages build on it: package spline evaluates Catmull-Rom tracks,
package rider rolls a wheel along such a track, package geodesic deals
with great circles on a Mercator map.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package cglabs

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cglabs'
func tracer() tracing.Trace {
	return tracing.Select("cglabs")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
const Deg2Rad float32 = math32.Pi / 180

// Epsilon : numbers below ε are considered 0
var Epsilon float32 = 0.0001

// Is0 is a predicate: is n = 0 ?
func Is0(n float32) bool {
	return math32.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float32) float32 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Clamp restricts n to [lo, hi].
func Clamp(n, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, n))
}

// === Pair Data Type ========================================================

// Pair is a 2D point or vector in single precision.
type Pair complex64

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// NoIntersection is returned by LineIntersection for lines which do not cross.
var NoIntersection = P(math32.MaxFloat32, math32.MaxFloat32)

// P is a quick notation for contructing a pair from floats.
func P(x, y float32) Pair {
	return Pair(complex(x, y))
}

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float32, float32) {
	return real(p), imag(p)
}

// X is the x-part of a pair.
func (p Pair) X() float32 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float32 {
	return imag(p)
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	return P(Zap(p.X()), Zap(p.Y()))
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two pairs, up to Epsilon.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float32) Pair {
	return P(p.X()*a, p.Y()*a)
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	return p + v
}

// Rotated returns a new pair rotated around origin by theta (counterclockwise).
func (p Pair) Rotated(theta float32) Pair {
	return Rotation(theta).Transform(p)
}

// Dot returns the dot product of p and q.
func (p Pair) Dot(q Pair) float32 {
	return p.X()*q.X() + p.Y()*q.Y()
}

// Cross returns the z-component of the cross product of p and q.
func (p Pair) Cross(q Pair) float32 {
	return p.X()*q.Y() - p.Y()*q.X()
}

// Length2 returns the squared length of p.
func (p Pair) Length2() float32 {
	return p.Dot(p)
}

// Length returns the length of p.
func (p Pair) Length() float32 {
	return math32.Sqrt(p.Length2())
}

// Normalized returns p scaled to unit length. A pair shorter than Epsilon
// is returned unchanged.
func (p Pair) Normalized() Pair {
	l := p.Length()
	if l < Epsilon {
		return p
	}
	return P(p.X()/l, p.Y()/l)
}

// Perp returns p rotated by 90 degrees counterclockwise.
func (p Pair) Perp() Pair {
	return P(-p.Y(), p.X())
}

// === Affine Transformations ================================================

// AT is an affine transform, a matrix type used for transforming vectors.
type AT []float32 // a 3x3 matrix, flattened by rows

// Internal constructor. Clients implicitely use this as a starting point for
// transform combinations.
func newAT() AT {
	return make([]float32, 9)
}

func (m AT) get(row, col int) float32 {
	return m[row*3+col]
}

func (m AT) set(row, col int, value float32) {
	m[row*3+col] = value
}

func (m AT) row(row int) []float32 {
	return m[row*3 : (row+1)*3]
}

func (m AT) col(col int) []float32 {
	return []float32{m[col], m[3+col], m[6+col]}
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	m := newAT()
	m.set(0, 0, 1.0)
	m.set(1, 1, 1.0)
	m.set(2, 2, 1.0)
	return m
}

// Translation transform. Translate a point by (dx,dy).
func Translation(p Pair) AT {
	m := Identity()
	m.set(0, 2, p.X())
	m.set(1, 2, p.Y())
	return m
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float32) AT {
	m := newAT()
	sin, cos := math32.Sincos(theta)
	m.set(0, 0, cos)
	m.set(0, 1, -sin)
	m.set(1, 0, sin)
	m.set(1, 1, cos)
	m.set(2, 2, 1.0)
	return m
}

// Scaling transform. Scale x by sx and y by sy.
func Scaling(sx, sy float32) AT {
	m := Identity()
	m.set(0, 0, sx)
	m.set(1, 1, sy)
	return m
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// v1 × v2, v.n = [a,b,c]
func dotProd(vec1, vec2 []float32) float32 {
	return vec1[0]*vec2[0] + vec1[1]*vec2[1] + vec1[2]*vec2[2]
}

// Combine 2 affine transformation to a new one. Returns a new transformation
// without changing the argument(s). The result applies n first, then m.
func (m AT) Combine(n AT) AT {
	o := newAT()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			o.set(row, col, dotProd(m.row(row), n.col(col)))
		}
	}
	return o
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	c := []float32{p.X(), p.Y(), 1.0}
	return P(dotProd(m.row(0), c), dotProd(m.row(1), c))
}

// Inverse returns the inverse of an affine transform. For a singular
// transform it traces an error and returns the identity.
func (m AT) Inverse() AT {
	a, b, c := m.get(0, 0), m.get(0, 1), m.get(0, 2)
	d, e, f := m.get(1, 0), m.get(1, 1), m.get(1, 2)
	det := a*e - b*d
	if det == 0 {
		tracer().Errorf("cannot invert singular transform %s", m)
		return Identity()
	}
	inv := newAT()
	inv.set(0, 0, e/det)
	inv.set(0, 1, -b/det)
	inv.set(0, 2, (b*f-c*e)/det)
	inv.set(1, 0, -d/det)
	inv.set(1, 1, a/det)
	inv.set(1, 2, (c*d-a*f)/det)
	inv.set(2, 2, 1.0)
	return inv
}

// === Lines =================================================================

// LineIntersection returns the point where the line through p1 and p2 crosses
// the line through q1 and q2, both extended to infinity. For parallel or
// degenerate lines it returns NoIntersection and false.
func LineIntersection(p1, p2, q1, q2 Pair) (Pair, bool) {
	ab := p2 - p1
	cd := q2 - q1
	denom := ab.Cross(cd)
	if math32.Abs(denom) < Epsilon*Epsilon {
		tracer().Debugf("lines %s-%s and %s-%s do not intersect", p1, p2, q1, q2)
		return NoIntersection, false
	}
	h := (q1 - p1).Cross(cd) / denom
	return p1 + ab.Scaled(h), true
}
