package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/chewxy/math32"
	"github.com/npillmayer/cglabs/config"
	"github.com/npillmayer/cglabs/labs"
	"github.com/npillmayer/cglabs/raster"
	"github.com/npillmayer/cglabs/scene"
)

// ErrBadEvent indicates a command line argument which is not an event.
var ErrBadEvent = errors.New("not an event")

type eventKind uint8

const (
	keyEvent eventKind = iota
	clickEvent
	timeEvent
)

type event struct {
	kind    eventKind
	key     rune
	x, y    int
	seconds float32
}

func parseEvents(args []string) ([]event, error) {
	events := make([]event, 0, len(args))
	for _, arg := range args {
		e, err := parseEvent(arg)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

func parseEvent(arg string) (event, error) {
	switch {
	case arg == "space":
		return event{kind: keyEvent, key: ' '}, nil
	case strings.HasPrefix(arg, "t="):
		s, err := strconv.ParseFloat(arg[2:], 32)
		secs := float32(s)
		if err != nil || !(secs >= 0) || math32.IsInf(secs, 1) {
			return event{}, fmt.Errorf("%w: %q", ErrBadEvent, arg)
		}
		return event{kind: timeEvent, seconds: secs}, nil
	case strings.Contains(arg, ","):
		xs, ys, _ := strings.Cut(arg, ",")
		x, errx := strconv.Atoi(strings.TrimSpace(xs))
		y, erry := strconv.Atoi(strings.TrimSpace(ys))
		if errx != nil || erry != nil {
			return event{}, fmt.Errorf("%w: %q", ErrBadEvent, arg)
		}
		return event{kind: clickEvent, x: x, y: y}, nil
	case utf8.RuneCountInString(arg) == 1:
		r, _ := utf8.DecodeRuneInString(arg)
		return event{kind: keyEvent, key: r}, nil
	}
	return event{}, fmt.Errorf("%w: %q", ErrBadEvent, arg)
}

// replay feeds events to app in order. Time events advance a clock starting
// at 0.
func replay(app labs.App, events []event) {
	var clock float32
	for _, e := range events {
		switch e.kind {
		case keyEvent:
			tracer().Debugf("key %q", e.key)
			app.OnKeyboard(e.key)
		case clickEvent:
			tracer().Debugf("click at (%d,%d)", e.x, e.y)
			app.OnMousePressed(labs.MouseLeft, e.x, e.y)
		case timeEvent:
			app.OnTimeElapsed(clock, clock+e.seconds)
			clock += e.seconds
		}
	}
}

// render draws the current frame of app and writes it as PNG.
func render(app labs.App, conf config.Config, w io.Writer) error {
	canvas := raster.New(conf.Window.Width, conf.Window.Height, app.Camera(), scene.Black)
	if tx, ok := app.(labs.Textured); ok {
		canvas.DrawImage(tx.Texture())
	}
	canvas.Draw(scene.Flatten(app.Drawables())...)
	return canvas.WritePNG(w)
}
