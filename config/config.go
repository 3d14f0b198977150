/*
Package config holds the parameters of the labs in an explicit struct.

Nothing in the labs reads a package-level constant: every curve, rider and
route is constructed from a Config value, so that several independent
simulations may coexist. Values are read from any schuko.Configuration,
usually a NestedText file loaded with Load:

	physics:
	    gravity: 40
	    shapefactor: 1
	curve:
	    segments: 100

Keys are dotted paths, e.g. "physics.gravity". Missing keys keep their
defaults.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cglabs.config'
func tracer() tracing.Trace {
	return tracing.Select("cglabs.config")
}

var (
	// ErrInvalidValue indicates a configuration value which cannot be parsed.
	ErrInvalidValue = errors.New("invalid configuration value")
	// ErrOutOfRange indicates a configuration value outside its permitted range.
	ErrOutOfRange = errors.New("configuration value out of range")
)

// Window is the size of the output window in pixels.
type Window struct {
	Width  int
	Height int
}

// World is the visible rectangle in world coordinates.
type World struct {
	CenterX, CenterY float32
	Width, Height    float32
}

// Curve parameterizes spline evaluation and tessellation.
type Curve struct {
	Segments       int     // samples per span for display, minus one
	EndpointScale  float32 // chord scale for synthesized outer control points
	DerivativeStep float32 // difference step for the second derivative
	Epsilon        float32 // degeneracy threshold for |r'| and |r'|²
}

// Physics parameterizes the rider.
type Physics struct {
	Gravity     float32 // g, pointing down
	ShapeFactor float32 // λ, rotational inertia share (1 for mass on the rim)
	WheelRadius float32
	StartParam  float32 // τ at start and after a relaunch
	SubStep     float32 // largest dt handed to a single integration step
}

// Globe parameterizes the Mercator map lab.
type Globe struct {
	Radius      float32 // sphere radius in km
	Segments    int     // great-circle samples per leg, minus one
	MaxLatitude float32 // degrees
	AxisTilt    float32 // degrees
}

// Config collects all lab parameters.
type Config struct {
	Window  Window
	World   World
	Curve   Curve
	Physics Physics
	Globe   Globe
}

// Default returns the parameters the labs have been designed with.
func Default() Config {
	return Config{
		Window: Window{Width: 600, Height: 600},
		World:  World{Width: 20, Height: 20},
		Curve: Curve{
			Segments:       100,
			EndpointScale:  0.01,
			DerivativeStep: 0.001,
			Epsilon:        0.0001,
		},
		Physics: Physics{
			Gravity:     40,
			ShapeFactor: 1,
			WheelRadius: 1,
			StartParam:  0.01,
			SubStep:     0.01,
		},
		Globe: Globe{
			Radius:      6371,
			Segments:    100,
			MaxLatitude: 85,
			AxisTilt:    23,
		},
	}
}

// FromConfiguration overlays the values set in conf onto the defaults.
// A nil conf yields the defaults.
func FromConfiguration(conf schuko.Configuration) (Config, error) {
	c := Default()
	if conf == nil {
		return c, nil
	}
	r := reader{conf: conf}
	r.int("window.width", &c.Window.Width)
	r.int("window.height", &c.Window.Height)
	r.float("world.centerx", &c.World.CenterX)
	r.float("world.centery", &c.World.CenterY)
	r.float("world.width", &c.World.Width)
	r.float("world.height", &c.World.Height)
	r.int("curve.segments", &c.Curve.Segments)
	r.float("curve.endpointscale", &c.Curve.EndpointScale)
	r.float("curve.derivativestep", &c.Curve.DerivativeStep)
	r.float("curve.epsilon", &c.Curve.Epsilon)
	r.float("physics.gravity", &c.Physics.Gravity)
	r.float("physics.shapefactor", &c.Physics.ShapeFactor)
	r.float("physics.wheelradius", &c.Physics.WheelRadius)
	r.float("physics.startparam", &c.Physics.StartParam)
	r.float("physics.substep", &c.Physics.SubStep)
	r.float("globe.radius", &c.Globe.Radius)
	r.int("globe.segments", &c.Globe.Segments)
	r.float("globe.maxlatitude", &c.Globe.MaxLatitude)
	r.float("globe.axistilt", &c.Globe.AxisTilt)
	if r.err != nil {
		return Default(), r.err
	}
	if err := c.Validate(); err != nil {
		return Default(), err
	}
	return c, nil
}

// Validate checks that all parameters are usable.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrOutOfRange, c.Window.Width, c.Window.Height)
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world %gx%g", ErrOutOfRange, c.World.Width, c.World.Height)
	case c.Curve.Segments < 1:
		return fmt.Errorf("%w: curve.segments = %d", ErrOutOfRange, c.Curve.Segments)
	case c.Curve.DerivativeStep <= 0:
		return fmt.Errorf("%w: curve.derivativestep = %g", ErrOutOfRange, c.Curve.DerivativeStep)
	case !(c.Curve.Epsilon > 0):
		return fmt.Errorf("%w: curve.epsilon = %g", ErrOutOfRange, c.Curve.Epsilon)
	case c.Curve.EndpointScale < 0:
		return fmt.Errorf("%w: curve.endpointscale = %g", ErrOutOfRange, c.Curve.EndpointScale)
	case c.Physics.Gravity < 0:
		return fmt.Errorf("%w: physics.gravity = %g", ErrOutOfRange, c.Physics.Gravity)
	case c.Physics.WheelRadius <= 0:
		return fmt.Errorf("%w: physics.wheelradius = %g", ErrOutOfRange, c.Physics.WheelRadius)
	case c.Physics.ShapeFactor <= -1:
		return fmt.Errorf("%w: physics.shapefactor = %g", ErrOutOfRange, c.Physics.ShapeFactor)
	case c.Physics.SubStep <= 0:
		return fmt.Errorf("%w: physics.substep = %g", ErrOutOfRange, c.Physics.SubStep)
	case c.Globe.Segments < 1:
		return fmt.Errorf("%w: globe.segments = %d", ErrOutOfRange, c.Globe.Segments)
	case c.Globe.MaxLatitude <= 0 || c.Globe.MaxLatitude >= 90:
		return fmt.Errorf("%w: globe.maxlatitude = %g", ErrOutOfRange, c.Globe.MaxLatitude)
	}
	return nil
}

// reader collects the first parse error while overlaying values.
type reader struct {
	conf schuko.Configuration
	err  error
}

func (r *reader) float(key string, dst *float32) {
	if r.err != nil || !r.conf.IsSet(key) {
		return
	}
	s := strings.TrimSpace(r.conf.GetString(key))
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		r.err = fmt.Errorf("%w: %s = %q", ErrInvalidValue, key, s)
		return
	}
	tracer().Debugf("config %s = %g", key, f)
	*dst = float32(f)
}

func (r *reader) int(key string, dst *int) {
	if r.err != nil || !r.conf.IsSet(key) {
		return
	}
	s := strings.TrimSpace(r.conf.GetString(key))
	n, err := strconv.Atoi(s)
	if err != nil {
		r.err = fmt.Errorf("%w: %s = %q", ErrInvalidValue, key, s)
		return
	}
	tracer().Debugf("config %s = %d", key, n)
	*dst = n
}
