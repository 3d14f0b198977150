/*
Package spline evaluates interpolating Catmull-Rom curves through a sequence
of control points. It is the track model of the roller-coaster lab.

A curve is parameterized by τ ∈ [0, n-1], where n is the number of control
points. The integer part of τ selects the span between control points i and
i+1, the fractional part u is the blend parameter within that span. Each span
is the cubic

	r(u) = h1(u)·p0 + h2(u)·p1 + h3(u)·p2 + h4(u)·p3

with the Catmull-Rom basis

	h1 = -0.5u³ +    u² - 0.5u
	h2 =  1.5u³ -  2.5u²        + 1
	h3 = -1.5u³ +   2u² + 0.5u
	h4 =  0.5u³ -  0.5u²

which passes through p1 at u=0 and p2 at u=1. The spans at either end lack
an outer neighbour; it is synthesized by extending the adjacent chord
backwards by a small factor (0.01 by default), so that the outer point
nearly coincides with the end point. This only approximates a clamped end
condition: the curve leaves its first control point with about half the
chord as derivative.

Usage

Curves are built either incrementally, as an interactive editor would do,

	c := spline.New(config.Default().Curve)
	c.AddControlPoint(cglabs.P(0, 0))
	c.AddControlPoint(cglabs.P(1, 1))

or with the builder functions

	c := spline.Nullcurve().Knot(cglabs.P(0, 0)).Knot(cglabs.P(1, 1)).End()

All evaluation functions degrade gracefully: with fewer than two control
points they return the zero vector, and on degenerate spans the tangent
falls back to (1,0).

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package spline
