/*
Package raster renders draw items into an RGBA image, without any graphics
hardware. It stands in for the immediate-mode drawing API of the labs:
triangle fans are filled, lines are stroked as quads of the requested
width, points are drawn as squares. The result can be written as a PNG
file.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/npillmayer/cglabs"
	"github.com/npillmayer/cglabs/polygon"
	"github.com/npillmayer/cglabs/scene"
	"github.com/npillmayer/schuko/tracing"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// tracer writes to trace with key 'cglabs.raster'
func tracer() tracing.Trace {
	return tracing.Select("cglabs.raster")
}

// Canvas is an image plus the camera looking at the world.
type Canvas struct {
	img      *image.RGBA
	cam      *scene.Camera
	z        *vector.Rasterizer
	viewport *polygon.Polygon // image bounds, in pixels
}

// New creates a canvas of w×h pixels, cleared to background.
func New(w, h int, cam *scene.Camera, background color.RGBA) *Canvas {
	c := &Canvas{
		img:      image.NewRGBA(image.Rect(0, 0, w, h)),
		cam:      cam,
		z:        vector.NewRasterizer(w, h),
		viewport: polygon.Box(cglabs.Origin, cglabs.P(float32(w), float32(h))),
	}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	return c
}

// Image returns the canvas' image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// DrawImage scales src to cover the whole canvas. It is used for map
// backdrops.
func (c *Canvas) DrawImage(src image.Image) {
	xdraw.NearestNeighbor.Scale(c.img, c.img.Bounds(), src, src.Bounds(), draw.Src, nil)
}

// Draw renders items in order.
func (c *Canvas) Draw(items ...scene.Item) {
	for _, item := range items {
		pts := c.toPixels(item)
		switch item.Primitive {
		case scene.Points:
			for _, p := range pts {
				c.fill(polygon.Square(p, item.Size/2), item.Color)
			}
		case scene.Lines:
			for i := 0; i+1 < len(pts); i += 2 {
				c.stroke(pts[i], pts[i+1], item.Size, item.Color)
			}
		case scene.LineStrip, scene.LineLoop:
			for i := 0; i+1 < len(pts); i++ {
				c.stroke(pts[i], pts[i+1], item.Size, item.Color)
			}
			if item.Primitive == scene.LineLoop && len(pts) > 2 {
				c.stroke(pts[len(pts)-1], pts[0], item.Size, item.Color)
			}
		case scene.TriangleFan:
			c.fan(pts, item.Color)
		default:
			tracer().Errorf("cannot draw primitive %s", item.Primitive)
		}
	}
}

// toPixels maps item vertices from model space to pixel positions.
func (c *Canvas) toPixels(item scene.Item) []cglabs.Pair {
	m := c.cam.ViewProjection()
	if item.Transform != nil {
		m = m.Combine(item.Transform)
	}
	w, h := float32(c.img.Bounds().Dx()), float32(c.img.Bounds().Dy())
	pts := make([]cglabs.Pair, len(item.Vertices))
	for i, v := range item.Vertices {
		ndc := m.Transform(v)
		pts[i] = cglabs.P((ndc.X()+1)/2*w, (1-ndc.Y())/2*h)
	}
	return pts
}

// fan fills a triangle fan, given as center followed by its rim. Rims of
// convex fans are clipped to the viewport first.
func (c *Canvas) fan(pts []cglabs.Pair, col color.RGBA) {
	if len(pts) < 3 {
		return
	}
	ring := pts[1:]
	if len(ring) > 1 && ring[0].Equal(ring[len(ring)-1]) {
		ring = ring[:len(ring)-1] // fans repeat their first rim vertex
	}
	rim := polygon.NullPolygon()
	for _, p := range ring {
		rim.Knot(p)
	}
	rim.Cycle()
	if !rim.Overlaps(c.viewport) {
		return
	}
	for _, pg := range polygon.Clip(rim, c.viewport) {
		c.fill(pg, col)
	}
}

// stroke draws the segment from a to b as a quad of the given width, with
// square caps.
func (c *Canvas) stroke(a, b cglabs.Pair, width float32, col color.RGBA) {
	d := b - a
	if d.Length() < cglabs.Epsilon {
		return
	}
	if width < 1 {
		width = 1
	}
	d = d.Normalized().Scaled(width / 2)
	n := d.Perp()
	a, b = a-d, b+d
	quad := polygon.NullPolygon().Knot(a + n).Knot(b + n).Knot(b - n).Knot(a - n).Cycle()
	c.fill(quad, col)
}

func (c *Canvas) fill(pg *polygon.Polygon, col color.RGBA) {
	if pg.N() < 3 || !pg.Overlaps(c.viewport) {
		return
	}
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.MoveTo(pg.Z(0).X(), pg.Z(0).Y())
	for i := 1; i < pg.N(); i++ {
		c.z.LineTo(pg.Z(i).X(), pg.Z(i).Y())
	}
	c.z.ClosePath()
	c.z.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}
