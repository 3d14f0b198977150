/*
Package coaster is the roller-coaster lab. Clicking places control points
of a Catmull-Rom track, the space key lets a wheel roll down the track, and
'r' puts the wheel back to the start.

Draw tracks from right to left. The wheel rides on the side of the track the
counterclockwise normal points to, and it stays on only while gravity and
the centripetal term press it onto the rail. A track drawn from left to
right puts the wheel on its upper side with the normal pointing away from
gravity, so the wheel falls off at the first step.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package coaster

import (
	"github.com/chewxy/math32"
	"github.com/npillmayer/cglabs/config"
	"github.com/npillmayer/cglabs/labs"
	"github.com/npillmayer/cglabs/rider"
	"github.com/npillmayer/cglabs/scene"
	"github.com/npillmayer/cglabs/spline"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cglabs.labs'
func tracer() tracing.Trace {
	return tracing.Select("cglabs.labs")
}

// wheelSegments is the number of segments approximating the wheel.
const wheelSegments = 36

// App is the roller-coaster lab.
type App struct {
	conf  config.Config
	cam   *scene.Camera
	track *spline.Curve
	rider *rider.Rider
}

var _ labs.App = (*App)(nil)

// New creates a roller-coaster lab with an empty track.
func New(conf config.Config) *App {
	track := spline.New(conf.Curve)
	return &App{
		conf:  conf,
		cam:   scene.CameraFor(conf.World),
		track: track,
		rider: rider.New(track, conf.Physics),
	}
}

// Track returns the track.
func (a *App) Track() *spline.Curve {
	return a.track
}

// Rider returns the wheel riding the track.
func (a *App) Rider() *rider.Rider {
	return a.rider
}

// OnKeyboard starts the rider on ' ' and resets it on 'r'. Refused starts are
// traced and otherwise ignored.
func (a *App) OnKeyboard(key rune) {
	switch key {
	case ' ':
		if err := a.rider.Start(); err != nil {
			tracer().Infof("coaster: %v", err)
		}
	case 'r':
		a.rider.Reset()
	}
}

// OnMousePressed adds a control point at the clicked world position.
func (a *App) OnMousePressed(button labs.MouseButton, px, py int) {
	if button != labs.MouseLeft {
		return
	}
	p := a.cam.ScreenToWorld(px, py, a.conf.Window.Width, a.conf.Window.Height)
	a.track.AddControlPoint(p)
}

// OnTimeElapsed animates the rider over [tstart, tend) in equal steps no
// longer than the configured sub-step. The number of steps depends on the
// length of the interval only, not on the magnitude of tstart.
func (a *App) OnTimeElapsed(tstart, tend float32) {
	rest := tend - tstart
	if !(rest > 0) {
		return
	}
	n := int(math32.Ceil(rest / a.conf.Physics.SubStep))
	step := rest / float32(n)
	for i := 0; i < n; i++ {
		a.rider.Animate(step)
	}
}

// Camera is part of interface labs.App.
func (a *App) Camera() *scene.Camera {
	return a.cam
}

// Drawables returns the track and the wheel.
func (a *App) Drawables() []scene.Drawable {
	return []scene.Drawable{
		scene.NewCurve(a.track),
		scene.NewRider(a.rider, wheelSegments),
	}
}
