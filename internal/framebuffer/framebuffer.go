// Package framebuffer implements the 1-bit drawing surface the layout engine
// composes each frame into before handing it to a display driver.
package framebuffer

import (
	"image/color"

	"litclock/internal/geometry"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/pixel"
)

// Ink is the colour that turns a pixel on when drawing through the
// drivers.Displayer view.
var Ink = color.RGBA{R: 0, G: 0, B: 0, A: 255}

// FrameBuffer is a fixed Width x Height bitmap in column-major byte order.
//
// Pixels can only be switched on; the whole buffer is cleared between frames.
type FrameBuffer struct {
	data [geometry.FrameBufferSize]byte

	origin      geometry.Point
	topRight    geometry.Point
	bottomRight geometry.Point
	bottomLeft  geometry.Point
}

var _ drivers.Displayer = (*FrameBuffer)(nil)

// New returns a cleared frame buffer.
func New() *FrameBuffer {
	return &FrameBuffer{
		origin:      geometry.NewPoint(0, 0),
		topRight:    geometry.NewPoint(geometry.MaxX, 0),
		bottomRight: geometry.NewPoint(geometry.MaxX, geometry.MaxYBits),
		bottomLeft:  geometry.NewPoint(0, geometry.MaxYBits),
	}
}

func (f *FrameBuffer) Width() int  { return int(geometry.Width) }
func (f *FrameBuffer) Height() int { return int(geometry.Height) }

// Bytes exposes the raw buffer. Callers must not modify it.
func (f *FrameBuffer) Bytes() []byte { return f.data[:] }

// Clear switches every pixel off.
func (f *FrameBuffer) Clear() {
	for i := range f.data {
		f.data[i] = 0
	}
}

// Set switches on the pixel at p.
func (f *FrameBuffer) Set(p geometry.Point) {
	f.setPixel(geometry.PixelFrom(p))
}

// SetPoints switches on every point in pts.
func (f *FrameBuffer) SetPoints(pts []geometry.Point) {
	for _, p := range pts {
		f.Set(p)
	}
}

func (f *FrameBuffer) setPixel(px geometry.Pixel) {
	f.data[px.Index()] |= px.Value()
}

// IsSet reports whether the pixel at p is on.
func (f *FrameBuffer) IsSet(p geometry.Point) bool {
	px := geometry.PixelFrom(p)
	return f.data[px.Index()]&px.Value() != 0
}

// Line draws from p1 to p2 inclusive of p1.
func (f *FrameBuffer) Line(p1, p2 geometry.Point) {
	g := geometry.NewGradient(p1, p2)
	f.Set(p1)
	for i := 0; i < g.Steps(); i++ {
		f.Set(g.Next())
	}
}

// LineFrom draws an axis-aligned line of the given length starting at p.
func (f *FrameBuffer) LineFrom(p geometry.Point, o geometry.Orientation, length uint16) {
	if o == geometry.Horizontal {
		f.Line(p, geometry.NewPoint(p.X()+length, p.Y()))
		return
	}
	f.Line(p, geometry.NewPoint(p.X(), p.Y()+length))
}

// Border outlines the display edges.
func (f *FrameBuffer) Border() {
	f.Line(f.origin, f.topRight)
	f.Line(f.topRight, f.bottomRight)
	f.Line(f.bottomLeft, f.bottomRight)
	f.Line(f.origin, f.bottomLeft)
}

// TestPattern draws both display diagonals.
func (f *FrameBuffer) TestPattern() {
	f.Line(f.bottomRight, f.origin)
	f.Line(f.bottomLeft, f.topRight)
}

// Each calls fn with the coordinates of every pixel that is on, column by
// column, top to bottom.
func (f *FrameBuffer) Each(fn func(x, y int)) {
	const rows = int(geometry.Height / 8)
	for i, b := range f.data {
		if b == 0 {
			continue
		}
		x := i / rows
		y0 := (i % rows) * 8
		for bit := 0; bit < 8; bit++ {
			if b&(0x80>>bit) != 0 {
				fn(x, y0+bit)
			}
		}
	}
}

// Size implements drivers.Displayer.
func (f *FrameBuffer) Size() (x, y int16) {
	return int16(geometry.Width), int16(geometry.Height)
}

// SetPixel implements drivers.Displayer. Dark colours switch the pixel on;
// light colours are ignored. Coordinates off the display are dropped.
func (f *FrameBuffer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x > int16(geometry.MaxX) || y > int16(geometry.MaxYBits) {
		return
	}
	if c.A == 0 || bool(pixel.NewMonochrome(c.R, c.G, c.B)) {
		return
	}
	f.Set(geometry.NewPoint(uint16(x), uint16(y)))
}

// Display implements drivers.Displayer. The buffer is flushed by the layout
// engine, so there is nothing to send here.
func (f *FrameBuffer) Display() error { return nil }
