package spline

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/npillmayer/cglabs"
	"github.com/npillmayer/cglabs/config"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cglabs.spline'
func tracer() tracing.Trace {
	return tracing.Select("cglabs.spline")
}

// fallbackTangent is returned by T on degenerate spans.
var fallbackTangent = cglabs.P(1, 0)

// Curve is a Catmull-Rom spline through an ordered list of control points.
// It exclusively owns its control points and its tessellated polyline.
type Curve struct {
	conf     config.Curve
	points   []cglabs.Pair // control points, in insertion order
	polyline []cglabs.Pair // display tessellation, rebuilt on every change
}

// New creates an empty curve.
func New(conf config.Curve) *Curve {
	return &Curve{conf: conf}
}

// Nullcurve creates an empty curve with default parameters, to be extended
// by subsequent builder calls:
//
//	c := Nullcurve().Knot(cglabs.P(0,0)).Knot(cglabs.P(1,1)).Knot(cglabs.P(2,0)).End()
func Nullcurve() *Curve {
	return New(config.Default().Curve)
}

// Knot appends a control point. Part of builder functionality.
func (c *Curve) Knot(p cglabs.Pair) *Curve {
	c.AddControlPoint(p)
	return c
}

// End finishes a curve. Part of builder functionality.
func (c *Curve) End() *Curve {
	return c
}

// AddControlPoint appends p and recomputes the display tessellation.
func (c *Curve) AddControlPoint(p cglabs.Pair) {
	c.points = append(c.points, p)
	tracer().Debugf("control point #%d at %s", len(c.points)-1, p)
	c.tessellate()
}

// N returns the number of control points.
func (c *Curve) N() int {
	return len(c.points)
}

// Z returns control point i.
func (c *Curve) Z(i int) cglabs.Pair {
	return c.points[i]
}

// ControlPoints returns a copy of the control points.
func (c *Curve) ControlPoints() []cglabs.Pair {
	return append([]cglabs.Pair(nil), c.points...)
}

// MaxParam returns the largest valid parameter, n-1. For curves with fewer
// than two control points it is 0.
func (c *Curve) MaxParam() float32 {
	if len(c.points) < 2 {
		return 0
	}
	return float32(len(c.points) - 1)
}

// Tessellation returns a copy of the display polyline. It holds Segments+1
// samples per span, consecutive spans sharing no samples.
func (c *Curve) Tessellation() []cglabs.Pair {
	return append([]cglabs.Pair(nil), c.polyline...)
}

func (c *Curve) tessellate() {
	c.polyline = c.polyline[:0]
	if len(c.points) < 2 {
		return
	}
	segs := c.conf.Segments
	for i := 0; i < len(c.points)-1; i++ {
		p0, p1, p2, p3 := c.span(i)
		for j := 0; j <= segs; j++ {
			u := float32(j) / float32(segs)
			c.polyline = append(c.polyline, blend(basis(u), p0, p1, p2, p3))
		}
	}
	tracer().Debugf("tessellated %d spans into %d points", len(c.points)-1, len(c.polyline))
}

// span returns the four control points influencing span i, synthesizing the
// outer ones at either end of the curve.
func (c *Curve) span(i int) (p0, p1, p2, p3 cglabs.Pair) {
	n := len(c.points)
	p1, p2 = c.points[i], c.points[i+1]
	if i == 0 {
		p0 = p1 - (p2 - p1).Scaled(c.conf.EndpointScale)
	} else {
		p0 = c.points[i-1]
	}
	if i == n-2 {
		p3 = p2 + (p2 - p1).Scaled(c.conf.EndpointScale)
	} else {
		p3 = c.points[i+2]
	}
	return
}

// locate clamps tau to [0, n-1] and splits it into span index and blend
// parameter. The final control point is reached with u = 1 on the last span.
func (c *Curve) locate(tau float32) (int, float32) {
	tau = cglabs.Clamp(tau, 0, c.MaxParam())
	i := int(math32.Floor(tau))
	if i > len(c.points)-2 {
		i = len(c.points) - 2
	}
	return i, tau - float32(i)
}

// R evaluates the curve at parameter tau. tau is clamped to [0, n-1].
func (c *Curve) R(tau float32) cglabs.Pair {
	if len(c.points) < 2 {
		return cglabs.Origin
	}
	i, u := c.locate(tau)
	p0, p1, p2, p3 := c.span(i)
	return blend(basis(u), p0, p1, p2, p3)
}

// Derivative returns r'(tau), the derivative with respect to the curve
// parameter.
func (c *Curve) Derivative(tau float32) cglabs.Pair {
	if len(c.points) < 2 {
		return cglabs.Origin
	}
	i, u := c.locate(tau)
	p0, p1, p2, p3 := c.span(i)
	return blend(dbasis(u), p0, p1, p2, p3)
}

// T returns the unit tangent at tau. If |r'| is below the degeneracy
// threshold, T returns (1,0).
func (c *Curve) T(tau float32) cglabs.Pair {
	d := c.Derivative(tau)
	l := d.Length()
	if l < c.conf.Epsilon {
		return fallbackTangent
	}
	return cglabs.P(d.X()/l, d.Y()/l)
}

// Normal returns the unit normal at tau, i.e. the tangent rotated by 90°
// counterclockwise.
func (c *Curve) Normal(tau float32) cglabs.Pair {
	return c.T(tau).Perp()
}

// Curvature approximates the bending of the track at tau as
//
//	κ = |r''·N| / |r'|²
//
// with r'' taken as a difference of r' over DerivativeStep, forward or, within
// one step of the end, backward. This is the normal component of the
// parametric acceleration over squared speed, not the planar curvature
// |r'×r''|/|r'|³; the rider's contact check relies on exactly this quantity. Returns 0 where |r'|² is below the degeneracy
// threshold.
func (c *Curve) Curvature(tau float32) float32 {
	d1 := c.Derivative(tau)
	speed2 := d1.Length2()
	if speed2 < c.conf.Epsilon {
		return 0
	}
	h := c.conf.DerivativeStep
	var d2 cglabs.Pair
	if tau+h <= c.MaxParam() {
		d2 = (c.Derivative(tau+h) - d1).Scaled(1 / h)
	} else { // no room for a forward step at the end of the track
		d2 = (d1 - c.Derivative(tau-h)).Scaled(1 / h)
	}
	return math32.Abs(d2.Dot(c.Normal(tau))) / speed2
}

// AsString returns the control points of a curve as a (debugging) string.
func (c *Curve) AsString() string {
	if len(c.points) == 0 {
		return "<empty curve>"
	}
	var s string
	for i, p := range c.points {
		if i > 0 {
			s += " .. "
		}
		s += fmt.Sprintf("(%.4g,%.4g)", p.X(), p.Y())
	}
	return s
}
