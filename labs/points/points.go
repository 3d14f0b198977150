/*
Package points is the lab for points and lines in normalized device
coordinates. A key selects what a left click does:

	p   place a point
	l   pick two points to draw the line through them
	i   pick two lines to mark their intersection as a new point

Lines are drawn extended to the border of the window.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package points

import (
	"github.com/chewxy/math32"
	"github.com/npillmayer/cglabs"
	"github.com/npillmayer/cglabs/config"
	"github.com/npillmayer/cglabs/labs"
	"github.com/npillmayer/cglabs/scene"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cglabs.labs'
func tracer() tracing.Trace {
	return tracing.Select("cglabs.labs")
}

// pickDistance is the largest distance, in NDC units, at which a click
// still picks a point or a line.
const pickDistance float32 = 0.05

// Line is an infinite line through two points.
type Line struct {
	P, Q cglabs.Pair
}

// distance returns the distance of c from the line.
func (l Line) distance(c cglabs.Pair) float32 {
	d := l.Q - l.P
	return math32.Abs((c - l.P).Cross(d)) / d.Length()
}

// App is the points-and-lines lab.
type App struct {
	conf   config.Config
	cam    *scene.Camera
	mode   rune
	points []cglabs.Pair
	lines  []Line
	picked []int // indices of points or lines picked so far in the current mode
}

var _ labs.App = (*App)(nil)

// New creates an empty lab. Clicks do nothing until a mode is selected.
func New(conf config.Config) *App {
	return &App{conf: conf, cam: scene.NDCCamera()}
}

// Points returns a copy of the points placed so far.
func (a *App) Points() []cglabs.Pair {
	return append([]cglabs.Pair(nil), a.points...)
}

// Lines returns a copy of the lines defined so far.
func (a *App) Lines() []Line {
	return append([]Line(nil), a.lines...)
}

// OnKeyboard selects the click mode. Other keys are ignored.
func (a *App) OnKeyboard(key rune) {
	switch key {
	case 'p', 'l', 'i':
		a.mode = key
		a.picked = a.picked[:0]
	}
}

// OnMousePressed acts on a left click according to the current mode.
func (a *App) OnMousePressed(button labs.MouseButton, px, py int) {
	if button != labs.MouseLeft {
		return
	}
	c := scene.ScreenToNDC(px, py, a.conf.Window.Width, a.conf.Window.Height)
	switch a.mode {
	case 'p':
		a.points = append(a.points, c)
		tracer().Infof("points: point %s", c)
	case 'l':
		a.pick(a.nearestPoint(c), func(i, j int) {
			if a.points[i].Equal(a.points[j]) {
				return
			}
			a.lines = append(a.lines, Line{P: a.points[i], Q: a.points[j]})
			tracer().Infof("points: line through %s and %s", a.points[i], a.points[j])
		})
	case 'i':
		a.pick(a.nearestLine(c), func(i, j int) {
			l1, l2 := a.lines[i], a.lines[j]
			x, ok := cglabs.LineIntersection(l1.P, l1.Q, l2.P, l2.Q)
			if !ok {
				tracer().Infof("points: lines are parallel")
				return
			}
			a.points = append(a.points, x)
			tracer().Infof("points: intersection %s", x)
		})
	}
}

// pick collects picked indices; every second pick of two distinct objects
// fires action.
func (a *App) pick(i int, action func(i, j int)) {
	if i < 0 {
		return
	}
	if len(a.picked) == 1 && a.picked[0] == i {
		return
	}
	a.picked = append(a.picked, i)
	if len(a.picked) == 2 {
		action(a.picked[0], a.picked[1])
		a.picked = a.picked[:0]
	}
}

func (a *App) nearestPoint(c cglabs.Pair) int {
	best, dmin := -1, pickDistance
	for i, p := range a.points {
		if d := (p - c).Length(); d <= dmin {
			best, dmin = i, d
		}
	}
	return best
}

func (a *App) nearestLine(c cglabs.Pair) int {
	best, dmin := -1, pickDistance
	for i, l := range a.lines {
		if d := l.distance(c); d <= dmin {
			best, dmin = i, d
		}
	}
	return best
}

// OnTimeElapsed does nothing; the lab is static.
func (a *App) OnTimeElapsed(tstart, tend float32) {}

// Camera shows normalized device coordinates.
func (a *App) Camera() *scene.Camera {
	return a.cam
}

// Drawables returns the lines, then the points on top.
func (a *App) Drawables() []scene.Drawable {
	var ends []cglabs.Pair
	for _, l := range a.lines {
		if p, q, ok := clipToWindow(l); ok {
			ends = append(ends, p, q)
		}
	}
	return []scene.Drawable{
		scene.NewLines(ends, scene.Cyan, 2),
		scene.NewPoints(a.points, scene.Green, 10),
	}
}

// window holds the corners of the NDC square, counterclockwise.
var window = [4]cglabs.Pair{cglabs.P(-1, -1), cglabs.P(1, -1), cglabs.P(1, 1), cglabs.P(-1, 1)}

// clipToWindow returns the two points where a line leaves the NDC square.
func clipToWindow(l Line) (cglabs.Pair, cglabs.Pair, bool) {
	var hits []cglabs.Pair
	for i := range window {
		a, b := window[i], window[(i+1)%len(window)]
		x, ok := cglabs.LineIntersection(l.P, l.Q, a, b)
		if !ok || !inWindow(x) {
			continue
		}
		hits = append(hits, x)
	}
	if len(hits) < 2 {
		return cglabs.Origin, cglabs.Origin, false
	}
	// lines through a corner hit two edges there; take the farthest pair
	p, q := hits[0], hits[1]
	for i := range hits {
		for j := i + 1; j < len(hits); j++ {
			if (hits[j] - hits[i]).Length2() > (q - p).Length2() {
				p, q = hits[i], hits[j]
			}
		}
	}
	return p, q, true
}

func inWindow(p cglabs.Pair) bool {
	const lim = 1 + 1e-4
	return math32.Abs(p.X()) <= lim && math32.Abs(p.Y()) <= lim
}
