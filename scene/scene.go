/*
Package scene is the boundary between the lab models and whatever renders
them. Models are wrapped into drawables, which only expose vertices and a
few drawing parameters. Layer expands a drawable into the draw items a
renderer consumes, one per primitive.

Vertices are given in world coordinates; a Camera maps them to normalized
device coordinates.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package scene

import (
	"image/color"

	"github.com/npillmayer/cglabs"
	"github.com/npillmayer/cglabs/geodesic"
	"github.com/npillmayer/cglabs/polygon"
	"github.com/npillmayer/cglabs/rider"
	"github.com/npillmayer/cglabs/spline"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cglabs.scene'
func tracer() tracing.Trace {
	return tracing.Select("cglabs.scene")
}

// Primitive tells a renderer how to connect vertices.
type Primitive uint8

// Primitives
const (
	Points      Primitive = iota // every vertex a dot
	Lines                        // vertex pairs
	LineStrip                    // open polyline
	LineLoop                     // closed polyline
	TriangleFan                  // filled convex polygon, first vertex in the center
)

func (p Primitive) String() string {
	switch p {
	case Points:
		return "Points"
	case Lines:
		return "Lines"
	case LineStrip:
		return "LineStrip"
	case LineLoop:
		return "LineLoop"
	case TriangleFan:
		return "TriangleFan"
	}
	return "<unknown>"
}

// Colors used by the labs.
var (
	Red    = color.RGBA{R: 255, A: 255}
	Green  = color.RGBA{G: 255, A: 255}
	Blue   = color.RGBA{B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, A: 255}
	Cyan   = color.RGBA{G: 255, B: 255, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black  = color.RGBA{A: 255}
)

// DrawParams tells a renderer how to draw a vertex list.
type DrawParams struct {
	Primitive Primitive
	Color     color.RGBA
	Size      float32   // point size or line width, in pixels
	Transform cglabs.AT // model transform, nil for identity
}

// Drawable is anything with vertices which can be drawn with a single
// primitive.
type Drawable interface {
	Vertices() []cglabs.Pair
	Params() DrawParams
}

// Item is a single draw call.
type Item struct {
	Vertices []cglabs.Pair
	DrawParams
}

func itemOf(d Drawable) Item {
	return Item{Vertices: d.Vertices(), DrawParams: d.Params()}
}

// Layer expands a drawable into draw items. Composite drawables add items
// for their markers, rims or spokes; drawables with nothing to show yield no
// items at all.
func Layer(d Drawable) []Item {
	switch v := d.(type) {
	case *CurveDrawable:
		if v.curve.N() == 0 {
			return nil
		}
		markers := Item{
			Vertices:   v.curve.ControlPoints(),
			DrawParams: DrawParams{Primitive: Points, Color: Red, Size: 10},
		}
		if v.curve.N() < 2 {
			return []Item{markers}
		}
		return []Item{itemOf(v), markers}
	case *RiderDrawable:
		if v.rider.State() == rider.Waiting {
			return nil
		}
		m := v.rider.ModelTransform()
		return []Item{
			itemOf(v),
			{Vertices: v.disc.Vertices(),
				DrawParams: DrawParams{Primitive: LineLoop, Color: White, Size: 2, Transform: m}},
			{Vertices: v.spokes(),
				DrawParams: DrawParams{Primitive: Lines, Color: White, Size: 2, Transform: m}},
		}
	case nil:
		return nil
	}
	if len(d.Vertices()) == 0 {
		return nil
	}
	return []Item{itemOf(d)}
}

// Flatten expands a list of drawables, in order.
func Flatten(ds []Drawable) []Item {
	var items []Item
	for _, d := range ds {
		items = append(items, Layer(d)...)
	}
	tracer().Debugf("%d drawables expand to %d draw items", len(ds), len(items))
	return items
}

// --- Variants --------------------------------------------------------------

// PointsDrawable shows a set of points.
type PointsDrawable struct {
	pts   []cglabs.Pair
	color color.RGBA
	size  float32
}

// NewPoints wraps points for drawing.
func NewPoints(pts []cglabs.Pair, c color.RGBA, size float32) *PointsDrawable {
	return &PointsDrawable{pts: pts, color: c, size: size}
}

// Vertices is part of interface Drawable.
func (d *PointsDrawable) Vertices() []cglabs.Pair { return d.pts }

// Params is part of interface Drawable.
func (d *PointsDrawable) Params() DrawParams {
	return DrawParams{Primitive: Points, Color: d.color, Size: d.size}
}

// LinesDrawable shows line segments given as pairs of vertices.
type LinesDrawable struct {
	ends  []cglabs.Pair
	color color.RGBA
	width float32
}

// NewLines wraps segment end points for drawing. ends holds two vertices per
// segment.
func NewLines(ends []cglabs.Pair, c color.RGBA, width float32) *LinesDrawable {
	return &LinesDrawable{ends: ends, color: c, width: width}
}

// Vertices is part of interface Drawable.
func (d *LinesDrawable) Vertices() []cglabs.Pair { return d.ends }

// Params is part of interface Drawable.
func (d *LinesDrawable) Params() DrawParams {
	return DrawParams{Primitive: Lines, Color: d.color, Size: d.width}
}

// CurveDrawable shows a track with its control points.
type CurveDrawable struct {
	curve *spline.Curve
}

// NewCurve wraps a curve for drawing.
func NewCurve(c *spline.Curve) *CurveDrawable {
	return &CurveDrawable{curve: c}
}

// Vertices is part of interface Drawable.
func (d *CurveDrawable) Vertices() []cglabs.Pair { return d.curve.Tessellation() }

// Params is part of interface Drawable.
func (d *CurveDrawable) Params() DrawParams {
	return DrawParams{Primitive: LineStrip, Color: Yellow, Size: 3}
}

// RiderDrawable shows the wheel of a rider as a filled disc with rim and
// spokes.
type RiderDrawable struct {
	rider *rider.Rider
	disc  *polygon.Polygon // wheel outline in wheel coordinates
}

// NewRider wraps a rider for drawing. The wheel outline is approximated with
// the given number of segments.
func NewRider(r *rider.Rider, segments int) *RiderDrawable {
	return &RiderDrawable{
		rider: r,
		disc:  polygon.Circle(cglabs.Origin, r.Radius(), segments),
	}
}

// Vertices is part of interface Drawable. It returns a triangle fan around
// the wheel center, in wheel coordinates.
func (d *RiderDrawable) Vertices() []cglabs.Pair {
	fan := make([]cglabs.Pair, 0, d.disc.N()+2)
	fan = append(fan, cglabs.Origin)
	fan = append(fan, d.disc.Vertices()...)
	return append(fan, d.disc.Z(0))
}

// Params is part of interface Drawable.
func (d *RiderDrawable) Params() DrawParams {
	return DrawParams{Primitive: TriangleFan, Color: Blue, Size: 1,
		Transform: d.rider.ModelTransform()}
}

func (d *RiderDrawable) spokes() []cglabs.Pair {
	r := d.rider.Radius()
	return []cglabs.Pair{
		cglabs.Origin, cglabs.P(r, 0),
		cglabs.Origin, cglabs.P(0, r),
		cglabs.Origin, cglabs.P(-r, 0),
		cglabs.Origin, cglabs.P(0, -r),
	}
}

// LegDrawable shows one leg of a route, in map coordinates.
type LegDrawable struct {
	leg geodesic.Leg
}

// NewLeg wraps a route leg for drawing.
func NewLeg(leg geodesic.Leg) *LegDrawable {
	return &LegDrawable{leg: leg}
}

// Vertices is part of interface Drawable.
func (d *LegDrawable) Vertices() []cglabs.Pair { return d.leg.Polyline }

// Params is part of interface Drawable.
func (d *LegDrawable) Params() DrawParams {
	return DrawParams{Primitive: LineStrip, Color: Yellow, Size: 3}
}

// StationDrawable marks a station on the map.
type StationDrawable struct {
	pos cglabs.Pair
}

// NewStation wraps a station position for drawing.
func NewStation(pos cglabs.Pair) *StationDrawable {
	return &StationDrawable{pos: pos}
}

// Vertices is part of interface Drawable.
func (d *StationDrawable) Vertices() []cglabs.Pair { return []cglabs.Pair{d.pos} }

// Params is part of interface Drawable.
func (d *StationDrawable) Params() DrawParams {
	return DrawParams{Primitive: Points, Color: Red, Size: 10}
}
