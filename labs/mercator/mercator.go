/*
Package mercator is the map lab. Clicking on the map places stations, which
are connected by great-circle legs; the length of every leg is traced. The
key 'n' advances the time of day by one hour, shading the half of the world
in darkness.

The map is a 64×64 pixel, four-color texture, shipped run-length encoded.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package mercator

import (
	"image"
	"image/color"

	"github.com/npillmayer/cglabs"
	"github.com/npillmayer/cglabs/config"
	"github.com/npillmayer/cglabs/geodesic"
	"github.com/npillmayer/cglabs/labs"
	"github.com/npillmayer/cglabs/scene"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cglabs.labs'
func tracer() tracing.Trace {
	return tracing.Select("cglabs.labs")
}

// Map texture dimensions.
const (
	TextureWidth  = 64
	TextureHeight = 64
)

// nightShade scales the color of map pixels in darkness.
const nightShade = 0.3

var palette = [4]color.RGBA{
	{R: 255, G: 255, B: 255, A: 255},
	{B: 255, A: 255},
	{G: 255, A: 255},
	{A: 255},
}

// App is the map lab.
type App struct {
	conf    config.Config
	cam     *scene.Camera
	route   *geodesic.Route
	hour    int
	texture *image.RGBA // decoded map, without shading
}

var _ labs.App = (*App)(nil)
var _ labs.Textured = (*App)(nil)

// New creates a map lab at midnight with no stations.
func New(conf config.Config) *App {
	return &App{
		conf:    conf,
		cam:     scene.NewCamera(cglabs.P(0.5, 0.5), 1, 1),
		route:   geodesic.NewRoute(conf.Globe),
		texture: Decode(worldMap, TextureWidth, TextureHeight),
	}
}

// Route returns the route built so far.
func (a *App) Route() *geodesic.Route {
	return a.route
}

// Hour returns the current hour of day, 0…23.
func (a *App) Hour() int {
	return a.hour
}

// OnKeyboard advances the hour of day on 'n'.
func (a *App) OnKeyboard(key rune) {
	if key == 'n' {
		a.hour = (a.hour + 1) % 24
		tracer().Debugf("mercator: hour is %d", a.hour)
	}
}

// OnMousePressed places a station at the clicked map position.
func (a *App) OnMousePressed(button labs.MouseButton, px, py int) {
	if button != labs.MouseLeft {
		return
	}
	m := geodesic.PixelToMercator(px, py, a.conf.Window.Width, a.conf.Window.Height)
	if leg, ok := a.route.AddStation(m); ok {
		tracer().Infof("mercator: distance %s -> %s = %.0f km", leg.From, leg.To, leg.Distance)
	}
}

// OnTimeElapsed does nothing; the map changes only on key presses.
func (a *App) OnTimeElapsed(tstart, tend float32) {}

// Camera shows the unit square of map coordinates.
func (a *App) Camera() *scene.Camera {
	return a.cam
}

// Drawables returns the route legs, then the stations on top.
func (a *App) Drawables() []scene.Drawable {
	var ds []scene.Drawable
	for _, leg := range a.route.Legs() {
		ds = append(ds, scene.NewLeg(leg))
	}
	for _, s := range a.route.Stations() {
		ds = append(ds, scene.NewStation(s))
	}
	return ds
}

// Texture returns the map, shaded for the current hour.
func (a *App) Texture() image.Image {
	b := a.texture.Bounds()
	img := image.NewRGBA(b)
	proj := a.route.Projection()
	tilt := a.conf.Globe.AxisTilt * cglabs.Deg2Rad
	w, h := float32(b.Dx()), float32(b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := a.texture.RGBAAt(x, y)
			m := cglabs.P((float32(x)+0.5)/w, 1-(float32(y)+0.5)/h)
			if !proj.IsDaytime(m, a.hour, tilt) {
				c = shade(c, nightShade)
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func shade(c color.RGBA, f float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * f),
		G: uint8(float32(c.G) * f),
		B: uint8(float32(c.B) * f),
		A: c.A,
	}
}

// Decode expands a run-length encoded four-color image of size w×h. Each
// byte b paints b>>2 + 1 pixels in palette color b&3, rows running from
// south to north. Pixels left over after the data are black.
func Decode(data []byte, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	n, total := 0, w*h
	put := func(c color.RGBA) {
		// row 0 of the data is the bottom row of the image
		img.SetRGBA(n%w, h-1-n/w, c)
		n++
	}
	for _, b := range data {
		for j := 0; j <= int(b>>2) && n < total; j++ {
			put(palette[b&3])
		}
		if n >= total {
			break
		}
	}
	for n < total {
		put(palette[3])
	}
	return img
}
