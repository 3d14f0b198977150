/*
Package rider rolls a wheel along a spline track under gravity.

The wheel is treated as a point mass bound to the curve, carrying a scalar
path parameter τ, a signed speed v along the track, and a rotation angle θ.
Each call to Animate performs one explicit Euler step:

 1. The tangential component of gravity accelerates the wheel, reduced by
    the factor 1/(1+λ) for the share of energy going into rotation.
 2. The contact force proxy g·N + v²κ decides whether the track can still
    hold the wheel. The track only pushes, it cannot pull: a value ≤ 0
    means the wheel leaves the track, and the rider enters the terminal
    state Fallen.
 3. The parameter advances by v·dt/|r'(τ)|, i.e. by arc length converted to
    curve parameter. Rolling backwards past the start or running off either
    end relaunches the wheel from the start.

Callers are expected to decompose larger time intervals into sub-steps of
bounded size; see package labs/coaster.

State machine

	Waiting --Start--> Rolling --contact lost--> Fallen
	   ^                  |                         |
	   +------Reset-------+-----------Reset---------+

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package rider

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/npillmayer/cglabs"
	"github.com/npillmayer/cglabs/config"
	"github.com/npillmayer/cglabs/spline"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cglabs.rider'
func tracer() tracing.Trace {
	return tracing.Select("cglabs.rider")
}

// minSpeed is the floor for |r'(τ)| when converting arc length to τ.
const minSpeed float32 = 0.0001

var (
	// ErrNotWaiting indicates a start request for a rider already started.
	ErrNotWaiting = errors.New("rider is not waiting")
	// ErrTooFewControlPoints indicates a track too short to ride on.
	ErrTooFewControlPoints = errors.New("track has too few control points")
)

// State is the lifecycle state of a rider.
type State uint8

// Rider states.
const (
	Waiting State = iota
	Rolling
	Fallen
)

func (s State) String() string {
	switch s {
	case Waiting:
		return "Waiting"
	case Rolling:
		return "Rolling"
	case Fallen:
		return "Fallen"
	}
	return "<unknown>"
}

// Rider is a wheel riding on a track. It owns its kinematic state and
// refers to, but does not own, its track.
type Rider struct {
	track    *spline.Curve
	conf     config.Physics
	state    State
	tau      float32     // path parameter
	velocity float32     // signed speed along the track
	angle    float32     // wheel rotation, radians
	position cglabs.Pair // wheel center, offset from the rail by the radius
	force    float32     // last contact force proxy
}

// New creates a waiting rider on track.
func New(track *spline.Curve, conf config.Physics) *Rider {
	r := &Rider{track: track, conf: conf}
	r.rewind()
	return r
}

func (r *Rider) rewind() {
	r.tau = r.conf.StartParam
	r.velocity = 0
	r.angle = 0
	r.force = 0
	r.place()
}

func (r *Rider) relaunch() {
	tracer().Debugf("relaunch at τ=%g (v=%g)", r.conf.StartParam, r.velocity)
	r.tau = r.conf.StartParam
	r.velocity = 0
	r.place()
}

// place puts the wheel center on the normal above the rail point at τ.
func (r *Rider) place() {
	r.position = r.track.R(r.tau) + r.track.Normal(r.tau).Scaled(r.conf.WheelRadius)
}

// Start launches a waiting rider from the start of the track. Start is
// refused for riders not in state Waiting and for tracks with fewer than
// two control points; the rider is left unchanged then.
func (r *Rider) Start() error {
	if r.state != Waiting {
		tracer().Errorf("cannot start rider in state %s", r.state)
		return fmt.Errorf("%w: state is %s", ErrNotWaiting, r.state)
	}
	if r.track.N() < 2 {
		tracer().Errorf("cannot start rider on track with %d control points", r.track.N())
		return fmt.Errorf("%w: %d", ErrTooFewControlPoints, r.track.N())
	}
	r.rewind()
	r.state = Rolling
	tracer().Infof("rider %s -> %s at %s", Waiting, Rolling, r.position)
	return nil
}

// Reset returns the rider to state Waiting at the start of the track. It is
// the only way out of state Fallen.
func (r *Rider) Reset() {
	if r.state != Waiting {
		tracer().Infof("rider %s -> %s", r.state, Waiting)
	}
	r.state = Waiting
	r.rewind()
}

// Animate advances a rolling rider by dt. For riders not rolling it does
// nothing.
func (r *Rider) Animate(dt float32) {
	if r.state != Rolling || r.track.N() < 2 {
		return
	}
	gravity := cglabs.P(0, -r.conf.Gravity)
	tangent := r.track.T(r.tau)
	normal := r.track.Normal(r.tau)

	a := gravity.Dot(tangent) / (1 + r.conf.ShapeFactor)
	r.velocity += a * dt

	r.force = gravity.Dot(normal) + r.velocity*r.velocity*r.track.Curvature(r.tau)
	if r.force <= 0 {
		r.state = Fallen
		tracer().Infof("rider %s -> %s at τ=%g, v=%g, F=%g", Rolling, Fallen,
			r.tau, r.velocity, r.force)
		return
	}
	if r.velocity < 0 {
		r.relaunch()
		return
	}

	speed := math32.Max(r.track.Derivative(r.tau).Length(), minSpeed)
	r.tau += r.velocity * dt / speed
	if r.tau < 0 || r.tau >= r.track.MaxParam() {
		r.relaunch()
	}
	r.place()
	r.angle += -r.velocity / r.conf.WheelRadius * dt
}

// State returns the lifecycle state.
func (r *Rider) State() State {
	return r.state
}

// Param returns the current path parameter τ.
func (r *Rider) Param() float32 {
	return r.tau
}

// Velocity returns the signed speed along the track.
func (r *Rider) Velocity() float32 {
	return r.velocity
}

// Angle returns the wheel's rotation in radians.
func (r *Rider) Angle() float32 {
	return r.angle
}

// Position returns the wheel center.
func (r *Rider) Position() cglabs.Pair {
	return r.position
}

// Radius returns the wheel radius.
func (r *Rider) Radius() float32 {
	return r.conf.WheelRadius
}

// ConstraintForce returns the contact force proxy g·N + v²κ of the last
// integration step.
func (r *Rider) ConstraintForce() float32 {
	return r.force
}

// ModelTransform maps wheel-local coordinates to world coordinates:
// rotation by the wheel angle, then translation to the wheel center.
func (r *Rider) ModelTransform() cglabs.AT {
	return cglabs.Translation(r.position).Combine(cglabs.Rotation(r.angle))
}
