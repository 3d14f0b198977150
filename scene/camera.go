package scene

import (
	"github.com/npillmayer/cglabs"
	"github.com/npillmayer/cglabs/config"
)

// Camera shows a rectangular window of the world, of size width×height
// around center, on the normalized device square [-1,1]².
type Camera struct {
	center        cglabs.Pair
	width, height float32
	vp, inv       cglabs.AT
}

// NewCamera creates a camera for a world window.
func NewCamera(center cglabs.Pair, width, height float32) *Camera {
	c := &Camera{center: center, width: width, height: height}
	view := cglabs.Translation(-center)
	proj := cglabs.Scaling(2/width, 2/height)
	c.vp = proj.Combine(view)
	c.inv = c.vp.Inverse()
	return c
}

// CameraFor creates a camera from the world section of a configuration.
func CameraFor(w config.World) *Camera {
	return NewCamera(cglabs.P(w.CenterX, w.CenterY), w.Width, w.Height)
}

// NDCCamera shows normalized device coordinates unchanged.
func NDCCamera() *Camera {
	return NewCamera(cglabs.Origin, 2, 2)
}

// ViewProjection returns the transform from world coordinates to normalized
// device coordinates.
func (c *Camera) ViewProjection() cglabs.AT {
	return c.vp
}

// WorldToNDC maps a world position to normalized device coordinates.
func (c *Camera) WorldToNDC(p cglabs.Pair) cglabs.Pair {
	return c.vp.Transform(p)
}

// ScreenToWorld maps a pixel position in a window of size winW×winH to world
// coordinates. Pixel rows count downwards.
func (c *Camera) ScreenToWorld(px, py, winW, winH int) cglabs.Pair {
	return c.inv.Transform(ScreenToNDC(px, py, winW, winH))
}

// ScreenToNDC maps a pixel position to normalized device coordinates.
func ScreenToNDC(px, py, winW, winH int) cglabs.Pair {
	return cglabs.P(2*float32(px)/float32(winW)-1, 1-2*float32(py)/float32(winH))
}
