package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/npillmayer/cglabs"
	"github.com/npillmayer/cglabs/scene"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestBackground(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cglabs.raster")
	defer teardown()
	c := New(40, 30, scene.NDCCamera(), scene.Black)
	assert.Equal(t, image.Rect(0, 0, 40, 30), c.Image().Bounds())
	assert.Equal(t, scene.Black, c.Image().RGBAAt(39, 29))
}

func TestPointIsSquare(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cglabs.raster")
	defer teardown()
	c := New(100, 100, scene.NDCCamera(), scene.Black)
	c.Draw(scene.Layer(scene.NewPoints([]cglabs.Pair{cglabs.Origin}, scene.Green, 10))...)
	assert.Equal(t, scene.Green, c.Image().RGBAAt(50, 50))
	assert.Equal(t, scene.Green, c.Image().RGBAAt(46, 53))
	assert.Equal(t, scene.Black, c.Image().RGBAAt(60, 50))
}

func TestLineStroke(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cglabs.raster")
	defer teardown()
	c := New(100, 100, scene.NDCCamera(), scene.Black)
	ends := []cglabs.Pair{cglabs.P(-0.8, 0.01), cglabs.P(0.8, 0.01)}
	c.Draw(scene.Layer(scene.NewLines(ends, scene.Cyan, 4))...)
	assert.Equal(t, scene.Cyan, c.Image().RGBAAt(20, 49))
	assert.Equal(t, scene.Cyan, c.Image().RGBAAt(70, 49))
	assert.Equal(t, scene.Black, c.Image().RGBAAt(50, 40))
	assert.Equal(t, scene.Black, c.Image().RGBAAt(95, 49))
}

func TestFilledFanClipped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cglabs.raster")
	defer teardown()
	c := New(100, 100, scene.NDCCamera(), scene.Black)
	fan := scene.Item{
		Vertices: []cglabs.Pair{
			cglabs.P(0.5, 0.5),
			cglabs.P(0, 0), cglabs.P(2, 0), cglabs.P(2, 2), cglabs.P(0, 2), cglabs.P(0, 0),
		},
		DrawParams: scene.DrawParams{Primitive: scene.TriangleFan, Color: scene.Blue},
	}
	c.Draw(fan)
	assert.Equal(t, scene.Blue, c.Image().RGBAAt(75, 25))
	assert.Equal(t, scene.Blue, c.Image().RGBAAt(99, 0))
	assert.Equal(t, scene.Black, c.Image().RGBAAt(25, 75))
}

func TestTransformedItem(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cglabs.raster")
	defer teardown()
	c := New(100, 100, scene.NDCCamera(), scene.Black)
	item := scene.Item{
		Vertices: []cglabs.Pair{cglabs.Origin},
		DrawParams: scene.DrawParams{Primitive: scene.Points, Color: scene.Red, Size: 6,
			Transform: cglabs.Translation(cglabs.P(-0.5, 0.5))},
	}
	c.Draw(item)
	assert.Equal(t, scene.Red, c.Image().RGBAAt(25, 25))
	assert.Equal(t, scene.Black, c.Image().RGBAAt(50, 50))
}

func TestDrawImageAndPNG(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cglabs.raster")
	defer teardown()
	tex := image.NewRGBA(image.Rect(0, 0, 2, 2))
	tex.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	tex.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})
	tex.SetRGBA(0, 1, color.RGBA{B: 255, A: 255})
	tex.SetRGBA(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	c := New(10, 10, scene.NDCCamera(), scene.Black)
	c.DrawImage(tex)
	assert.Equal(t, scene.Red, c.Image().RGBAAt(2, 2))
	assert.Equal(t, scene.White, c.Image().RGBAAt(8, 8))
	var buf bytes.Buffer
	assert.NoError(t, c.WritePNG(&buf))
	img, err := png.Decode(&buf)
	assert.NoError(t, err)
	assert.Equal(t, c.Image().Bounds(), img.Bounds())
}
