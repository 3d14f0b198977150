/*
Package labs defines the event interface shared by the interactive labs.

A host (a window system, or the scripted command line driver) calls the
event handlers in sequence on a single goroutine and asks for drawables
whenever it wants to render a frame. None of the labs is safe for
concurrent use.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package labs

import (
	"image"

	"github.com/npillmayer/cglabs/scene"
)

// MouseButton identifies a mouse button.
type MouseButton uint8

// Mouse buttons
const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
)

// App is an interactive lab.
type App interface {
	// OnKeyboard handles a key press.
	OnKeyboard(key rune)
	// OnMousePressed handles a mouse click at pixel position (px, py),
	// rows counting downwards.
	OnMousePressed(button MouseButton, px, py int)
	// OnTimeElapsed advances the lab's clock from tstart to tend, in seconds.
	OnTimeElapsed(tstart, tend float32)
	// Camera returns the camera looking at the lab's world.
	Camera() *scene.Camera
	// Drawables returns what to render, back to front.
	Drawables() []scene.Drawable
}

// Textured is implemented by labs drawing a backdrop image below their
// drawables.
type Textured interface {
	Texture() image.Image
}
