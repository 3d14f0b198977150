package rider

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/npillmayer/cglabs"
	"github.com/npillmayer/cglabs/config"
	"github.com/npillmayer/cglabs/spline"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

// descending builds a straight track sloping down to the left. Its normal
// points down-right, so gravity presses the wheel onto the track.
func descending() *spline.Curve {
	return spline.Nullcurve().Knot(cglabs.P(9, 9)).Knot(cglabs.P(6, 6)).
		Knot(cglabs.P(3, 3)).Knot(cglabs.P(0, 0)).End()
}

// overhang builds a straight track sloping down to the right, with the normal
// pointing up and away from gravity.
func overhang() *spline.Curve {
	return spline.Nullcurve().Knot(cglabs.P(0, 9)).Knot(cglabs.P(9, 0)).End()
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Waiting", Waiting.String())
	assert.Equal(t, "Rolling", Rolling.String())
	assert.Equal(t, "Fallen", Fallen.String())
}

func TestCreatedWaiting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cglabs.rider")
	defer teardown()
	r := New(descending(), config.Default().Physics)
	assert.Equal(t, Waiting, r.State())
	r.Animate(0.01)
	assert.Equal(t, Waiting, r.State())
	assert.Equal(t, float32(0), r.Velocity())
}

func TestStartRequiresTrack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cglabs.rider")
	defer teardown()
	track := spline.Nullcurve().Knot(cglabs.P(1, 1)).End()
	r := New(track, config.Default().Physics)
	err := r.Start()
	assert.True(t, errors.Is(err, ErrTooFewControlPoints), "got %v", err)
	assert.Equal(t, Waiting, r.State())
	track.AddControlPoint(cglabs.P(0, 0))
	assert.NoError(t, r.Start())
	assert.Equal(t, Rolling, r.State())
}

func TestStartOnlyFromWaiting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cglabs.rider")
	defer teardown()
	r := New(descending(), config.Default().Physics)
	assert.NoError(t, r.Start())
	r.Animate(0.01)
	tau, v := r.Param(), r.Velocity()
	err := r.Start()
	assert.True(t, errors.Is(err, ErrNotWaiting), "got %v", err)
	assert.Equal(t, tau, r.Param())
	assert.Equal(t, v, r.Velocity())
}

func TestStartsAwayFromEndpoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cglabs.rider")
	defer teardown()
	conf := config.Default().Physics
	r := New(descending(), conf)
	assert.NoError(t, r.Start())
	assert.Equal(t, conf.StartParam, r.Param())
	assert.Greater(t, r.Param(), float32(0))
	assert.Equal(t, float32(0), r.Angle())
}

func TestAcceleratesOnDescent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cglabs.rider")
	defer teardown()
	r := New(descending(), config.Default().Physics)
	assert.NoError(t, r.Start())
	var speed float32
	for i := 0; i < 50; i++ {
		r.Animate(0.01)
		if !assert.Equal(t, Rolling, r.State(), "step %d", i) {
			return
		}
		v := r.Velocity()
		if v < 0 {
			v = -v
		}
		assert.Greater(t, v, speed, "step %d", i)
		speed = v
	}
	assert.Greater(t, r.Param(), config.Default().Physics.StartParam)
	assert.Greater(t, r.ConstraintForce(), float32(0))
}

func TestWheelRollsWithoutSlipping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cglabs.rider")
	defer teardown()
	conf := config.Default().Physics
	r := New(descending(), conf)
	assert.NoError(t, r.Start())
	var want float32
	for i := 0; i < 10; i++ {
		r.Animate(0.01)
		want += -r.Velocity() / conf.WheelRadius * 0.01
	}
	assert.InDelta(t, want, r.Angle(), 1e-5)
	assert.Less(t, r.Angle(), float32(0))
}

func TestWheelRidesOnNormal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cglabs.rider")
	defer teardown()
	track := descending()
	conf := config.Default().Physics
	r := New(track, conf)
	assert.NoError(t, r.Start())
	r.Animate(0.01)
	rail := track.R(r.Param())
	assert.InDelta(t, conf.WheelRadius, (r.Position() - rail).Length(), 1e-4)
	assert.InDelta(t, 0, (r.Position() - rail).Dot(track.T(r.Param())), 1e-4)
}

func TestFallenIsTerminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cglabs.rider")
	defer teardown()
	r := New(overhang(), config.Default().Physics)
	assert.NoError(t, r.Start())
	r.Animate(0.01)
	assert.Equal(t, Fallen, r.State())
	assert.LessOrEqual(t, r.ConstraintForce(), float32(0))
	pos, angle, tau := r.Position(), r.Angle(), r.Param()
	for i := 0; i < 10; i++ {
		r.Animate(0.01)
	}
	assert.Equal(t, Fallen, r.State())
	assert.Equal(t, pos, r.Position())
	assert.Equal(t, angle, r.Angle())
	assert.Equal(t, tau, r.Param())
	assert.True(t, errors.Is(r.Start(), ErrNotWaiting))
}

// loop builds a track descending to the left that bends around to run flat
// to the right. In the bend the normal has an upward component.
func loop() *spline.Curve {
	return spline.Nullcurve().Knot(cglabs.P(12, 12)).Knot(cglabs.P(8, 8)).
		Knot(cglabs.P(4, 4)).Knot(cglabs.P(2, 0)).Knot(cglabs.P(4, -2)).
		Knot(cglabs.P(8, -2)).Knot(cglabs.P(12, -2)).End()
}

func TestCentripetalTermHoldsWheel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cglabs.rider")
	defer teardown()
	track := loop()
	conf := config.Default().Physics
	gravity := cglabs.P(0, -conf.Gravity)
	r := New(track, conf)
	assert.NoError(t, r.Start())
	held := 0
	for i := 0; i < 2000 && r.State() == Rolling; i++ {
		tau, v := r.Param(), r.Velocity()
		v += gravity.Dot(track.T(tau)) / (1 + conf.ShapeFactor) * conf.SubStep
		gN := gravity.Dot(track.Normal(tau))
		want := gN + v*v*track.Curvature(tau)
		r.Animate(conf.SubStep)
		if !assert.InDelta(t, want, r.ConstraintForce(), float64(1e-3*(1+math32.Abs(want))), "step %d", i) {
			return
		}
		if r.State() == Rolling && gN < 0 {
			held++
		}
		if r.State() == Fallen {
			assert.LessOrEqual(t, want, float32(0))
			assert.Less(t, gN, float32(0))
			assert.Greater(t, tau, float32(3), "fell before the bend")
		}
	}
	assert.Greater(t, held, 0, "wheel never kept by the centripetal term")
	assert.Equal(t, Fallen, r.State())
}

func TestResetLeavesFallen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cglabs.rider")
	defer teardown()
	conf := config.Default().Physics
	r := New(overhang(), conf)
	assert.NoError(t, r.Start())
	r.Animate(0.01)
	assert.Equal(t, Fallen, r.State())
	r.Reset()
	assert.Equal(t, Waiting, r.State())
	assert.Equal(t, conf.StartParam, r.Param())
	assert.Equal(t, float32(0), r.Velocity())
	assert.NoError(t, r.Start())
}

func TestRelaunchAtEnd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cglabs.rider")
	defer teardown()
	conf := config.Default().Physics
	r := New(descending(), conf)
	assert.NoError(t, r.Start())
	relaunched := false
	for i := 0; i < 1000 && !relaunched; i++ {
		before := r.Param()
		r.Animate(conf.SubStep)
		relaunched = r.Param() < before
	}
	assert.True(t, relaunched, "rider never reached the end of the track")
	assert.Equal(t, Rolling, r.State())
	assert.Equal(t, conf.StartParam, r.Param())
	assert.Equal(t, float32(0), r.Velocity())
}

func TestModelTransform(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cglabs.rider")
	defer teardown()
	r := New(descending(), config.Default().Physics)
	assert.NoError(t, r.Start())
	for i := 0; i < 20; i++ {
		r.Animate(0.01)
	}
	m := r.ModelTransform()
	assert.True(t, m.Transform(cglabs.Origin).Equal(r.Position()))
	rim := m.Transform(cglabs.P(r.Radius(), 0))
	assert.InDelta(t, r.Radius(), (rim - r.Position()).Length(), 1e-4)
}
