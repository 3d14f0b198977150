package main

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"github.com/npillmayer/cglabs/config"
	"github.com/npillmayer/cglabs/labs/coaster"
	"github.com/npillmayer/cglabs/labs/mercator"
	"github.com/npillmayer/cglabs/rider"
	"github.com/npillmayer/cglabs/scene"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParseEvent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cglabs.cmd")
	defer teardown()
	e, err := parseEvent("120, 45")
	assert.NoError(t, err)
	assert.Equal(t, event{kind: clickEvent, x: 120, y: 45}, e)
	e, err = parseEvent("space")
	assert.NoError(t, err)
	assert.Equal(t, ' ', e.key)
	e, err = parseEvent("n")
	assert.NoError(t, err)
	assert.Equal(t, event{kind: keyEvent, key: 'n'}, e)
	e, err = parseEvent("t=0.5")
	assert.NoError(t, err)
	assert.Equal(t, float32(0.5), e.seconds)
	for _, bad := range []string{"", "abc", "1,x", "t=-1", "t=soon", "t=inf", "t=nan"} {
		_, err = parseEvent(bad)
		assert.True(t, errors.Is(err, ErrBadEvent), "%q: %v", bad, err)
	}
	_, err = parseEvents([]string{"p", "oops"})
	assert.Error(t, err)
}

func TestReplayCoaster(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cglabs.cmd")
	defer teardown()
	conf := config.Default()
	app := coaster.New(conf)
	events, err := parseEvents([]string{"570,30", "300,300", "30,570", "space", "t=0.2"})
	assert.NoError(t, err)
	replay(app, events)
	assert.Equal(t, 3, app.Track().N())
	assert.Equal(t, rider.Rolling, app.Rider().State())
	assert.Greater(t, app.Rider().Velocity(), float32(0))
	var buf bytes.Buffer
	assert.NoError(t, render(app, conf, &buf))
	img, err := png.Decode(&buf)
	if assert.NoError(t, err) {
		assert.Equal(t, conf.Window.Width, img.Bounds().Dx())
	}
}

func TestRenderMercator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cglabs.cmd")
	defer teardown()
	conf := config.Default()
	conf.Window.Width, conf.Window.Height = 128, 128
	app := mercator.New(conf)
	events, _ := parseEvents([]string{"32,64", "96,64"})
	replay(app, events)
	var buf bytes.Buffer
	assert.NoError(t, render(app, conf, &buf))
	img, err := png.Decode(&buf)
	if assert.NoError(t, err) {
		r, g, b, _ := img.At(32, 64).RGBA()
		red := scene.Red
		assert.Equal(t, uint32(red.R)*0x101, r)
		assert.Equal(t, uint32(0), g)
		assert.Equal(t, uint32(0), b)
	}
}

func TestRootCommand(t *testing.T) {
	cmd := rootCommand()
	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["points"])
	assert.True(t, names["coaster"])
	assert.True(t, names["mercator"])
}
