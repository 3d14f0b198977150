/*
Package polygon implements simple closed polygons: wheel discs, station
markers and boxes. Boolean operations and containment tests are delegated
to polyclip.

Polygons are built with the builder functions

	pg := NullPolygon().Knot(cglabs.P(0, 0)).Knot(cglabs.P(1, 3)).Knot(cglabs.P(3, 0)).Cycle()

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/chewxy/math32"
	"github.com/npillmayer/cglabs"
	"github.com/npillmayer/schuko/tracing"
)

// L traces to key 'cglabs.polygon'.
func L() tracing.Trace {
	return tracing.Select("cglabs.polygon")
}

// Polygon is a closed sequence of vertices.
type Polygon struct {
	knots  []cglabs.Pair
	cyclic bool
}

// NullPolygon creates an empty polygon, to be extended by Knot.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a vertex. Part of builder functionality.
func (pg *Polygon) Knot(p cglabs.Pair) *Polygon {
	pg.knots = append(pg.knots, p)
	return pg
}

// Cycle closes the polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cyclic = true
	return pg
}

// IsCycle is true for polygons closed with Cycle.
func (pg *Polygon) IsCycle() bool {
	return pg.cyclic
}

// N returns the number of vertices.
func (pg *Polygon) N() int {
	return len(pg.knots)
}

// Z returns vertex i.
func (pg *Polygon) Z(i int) cglabs.Pair {
	return pg.knots[i]
}

// Vertices returns a copy of the vertices.
func (pg *Polygon) Vertices() []cglabs.Pair {
	return append([]cglabs.Pair(nil), pg.knots...)
}

// Box creates a rectangle from two opposite corners, counterclockwise from
// the lower left.
func Box(p, q cglabs.Pair) *Polygon {
	xmin, xmax := math32.Min(p.X(), q.X()), math32.Max(p.X(), q.X())
	ymin, ymax := math32.Min(p.Y(), q.Y()), math32.Max(p.Y(), q.Y())
	return NullPolygon().Knot(cglabs.P(xmin, ymin)).Knot(cglabs.P(xmax, ymin)).
		Knot(cglabs.P(xmax, ymax)).Knot(cglabs.P(xmin, ymax)).Cycle()
}

// Square creates an axis-aligned square around center.
func Square(center cglabs.Pair, halfSize float32) *Polygon {
	d := cglabs.P(halfSize, halfSize)
	return Box(center-d, center+d)
}

// Circle approximates a circle by a regular polygon with the given number
// of segments, starting at angle 0.
func Circle(center cglabs.Pair, radius float32, segments int) *Polygon {
	if segments < 3 {
		segments = 3
	}
	pg := NullPolygon()
	for i := 0; i < segments; i++ {
		phi := float32(i) * 2 * math32.Pi / float32(segments)
		sin, cos := math32.Sincos(phi)
		pg.Knot(center + cglabs.P(radius*cos, radius*sin))
	}
	return pg.Cycle()
}

// Transformed returns a copy of pg with every vertex transformed by m.
func (pg *Polygon) Transformed(m cglabs.AT) *Polygon {
	t := &Polygon{knots: make([]cglabs.Pair, len(pg.knots)), cyclic: pg.cyclic}
	for i, p := range pg.knots {
		t.knots[i] = m.Transform(p)
	}
	return t
}

// BoundingBox returns the lower left and upper right corner of the smallest
// axis-aligned rectangle containing pg.
func (pg *Polygon) BoundingBox() (cglabs.Pair, cglabs.Pair) {
	if len(pg.knots) == 0 {
		return cglabs.Origin, cglabs.Origin
	}
	r := pg.contour().BoundingBox()
	return fromPoint(r.Min), fromPoint(r.Max)
}

// Contains tests whether p lies inside pg.
func (pg *Polygon) Contains(p cglabs.Pair) bool {
	if len(pg.knots) < 3 {
		return false
	}
	return pg.contour().Contains(toPoint(p))
}

// Overlaps tests whether the bounding boxes of two polygons overlap.
func (pg *Polygon) Overlaps(other *Polygon) bool {
	if pg.N() == 0 || other.N() == 0 {
		return false
	}
	return pg.contour().BoundingBox().Overlaps(other.contour().BoundingBox())
}

// Clip intersects subject with window. As the result of clipping a
// non-convex polygon may fall apart, Clip returns a list of polygons, which
// is empty if subject and window are disjoint.
func Clip(subject, window *Polygon) []*Polygon {
	if subject.N() < 3 || window.N() < 3 {
		return nil
	}
	result := polyclip.Polygon{subject.contour()}.Construct(
		polyclip.INTERSECTION, polyclip.Polygon{window.contour()})
	pgs := make([]*Polygon, 0, len(result))
	for _, c := range result {
		pg := NullPolygon()
		for _, pt := range c {
			pg.Knot(fromPoint(pt))
		}
		pgs = append(pgs, pg.Cycle())
	}
	L().Debugf("clipping %d vertices yields %d polygons", subject.N(), len(pgs))
	return pgs
}

func (pg *Polygon) contour() polyclip.Contour {
	c := make(polyclip.Contour, len(pg.knots))
	for i, p := range pg.knots {
		c[i] = toPoint(p)
	}
	return c
}

func toPoint(p cglabs.Pair) polyclip.Point {
	return polyclip.Point{X: float64(p.X()), Y: float64(p.Y())}
}

func fromPoint(pt polyclip.Point) cglabs.Pair {
	return cglabs.P(float32(pt.X), float32(pt.Y))
}

// AsString returns a polygon as a (debugging) string.
func AsString(pg *Polygon) string {
	if pg.N() == 0 {
		return "<empty polygon>"
	}
	var sb strings.Builder
	for i, p := range pg.knots {
		if i > 0 {
			sb.WriteString(" -- ")
		}
		sb.WriteString(fmt.Sprintf("(%.4g,%.4g)", p.X(), p.Y()))
	}
	if pg.cyclic {
		sb.WriteString(" -- cycle")
	}
	return sb.String()
}
