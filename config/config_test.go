package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/chewxy/math32"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestDefaultIsValid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cglabs.config")
	defer teardown()
	c := Default()
	assert.NoError(t, c.Validate())
	assert.Equal(t, float32(40), c.Physics.Gravity)
	assert.Equal(t, 100, c.Curve.Segments)
	assert.Equal(t, float32(6371), c.Globe.Radius)
}

func TestFromConfigurationOverlays(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cglabs.config")
	defer teardown()
	conf := testconfig.Conf{
		"physics.gravity":     "9.81",
		"physics.shapefactor": "0.5",
		"curve.segments":      "20",
	}
	c, err := FromConfiguration(conf)
	assert.NoError(t, err)
	assert.InDelta(t, 9.81, c.Physics.Gravity, 1e-5)
	assert.InDelta(t, 0.5, c.Physics.ShapeFactor, 1e-6)
	assert.Equal(t, 20, c.Curve.Segments)
	assert.Equal(t, Default().Physics.WheelRadius, c.Physics.WheelRadius)
}

func TestFromConfigurationNil(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cglabs.config")
	defer teardown()
	c, err := FromConfiguration(nil)
	assert.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestFromConfigurationRejectsGarbage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cglabs.config")
	defer teardown()
	_, err := FromConfiguration(testconfig.Conf{"physics.gravity": "heavy"})
	if !errors.Is(err, ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue, got %v", err)
	}
	_, err = FromConfiguration(testconfig.Conf{"physics.wheelradius": "0"})
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestValidateRanges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cglabs.config")
	defer teardown()
	for key, value := range map[string]string{
		"curve.epsilon":       "-0.0001",
		"curve.endpointscale": "-1",
		"physics.gravity":     "-40",
		"physics.substep":     "0",
	} {
		_, err := FromConfiguration(testconfig.Conf{key: value})
		assert.True(t, errors.Is(err, ErrOutOfRange), "%s = %s: %v", key, value, err)
	}
	c := Default()
	c.Curve.Epsilon = 0
	assert.True(t, errors.Is(c.Validate(), ErrOutOfRange))
	c.Curve.Epsilon = math32.NaN()
	assert.True(t, errors.Is(c.Validate(), ErrOutOfRange))
}

func TestIndependentConfigurations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cglabs.config")
	defer teardown()
	a := Default()
	b := Default()
	b.Physics.Gravity = 1
	assert.NotEqual(t, a.Physics.Gravity, b.Physics.Gravity)
}

func TestLoadNestedText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cglabs.config")
	defer teardown()
	path := filepath.Join(t.TempDir(), "labs.nt")
	content := "physics:\n    gravity: 12.5\nglobe:\n    segments: 50\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	conf, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	c, err := FromConfiguration(conf)
	assert.NoError(t, err)
	assert.InDelta(t, 12.5, c.Physics.Gravity, 1e-6)
	assert.Equal(t, 50, c.Globe.Segments)
}

func TestLoadMissingFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cglabs.config")
	defer teardown()
	_, err := Load(filepath.Join(t.TempDir(), "nope.nt"))
	assert.Error(t, err)
}
