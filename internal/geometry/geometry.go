package geometry

import "fmt"

// Orientation selects the direction of an axis-aligned line.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Point is a display coordinate. The fields are unexported so a Point can only
// be built through NewPoint or arithmetic, both of which clamp.
type Point struct {
	x uint16
	y uint16
}

// NewPoint returns the point (x, y) clamped to the display.
func NewPoint(x, y uint16) Point {
	return Point{x: ClampX(x), y: ClampYBits(y)}
}

func (p Point) X() uint16 { return p.x }
func (p Point) Y() uint16 { return p.y }

// Add returns p+q clamped to the display.
func (p Point) Add(q Point) Point {
	return Point{x: ClampX(p.x + q.x), y: ClampYBits(p.y + q.y)}
}

// Sub returns p-q with each component floored at zero.
func (p Point) Sub(q Point) Point {
	var r Point
	if p.x > q.x {
		r.x = p.x - q.x
	}
	if p.y > q.y {
		r.y = p.y - q.y
	}
	return r
}

// Set assigns q to p, re-clamping both components.
func (p *Point) Set(q Point) {
	p.x = ClampX(q.x)
	p.y = ClampYBits(q.y)
}

func (p Point) Equal(q Point) bool { return p.x == q.x && p.y == q.y }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.x, p.y) }

// Pixel addresses a single bit of the frame buffer.
//
// The buffer is column-major: each display column owns Height/8 consecutive
// bytes, and the most significant bit of a byte is the topmost pixel.
type Pixel struct {
	index uint16
	value uint8
}

// NewPixel returns a pixel with the index clamped to MaxIndex.
func NewPixel(index uint16, value uint8) Pixel {
	return Pixel{index: ClampIndex(index), value: value}
}

// PixelFrom returns the buffer bit that displays p.
func PixelFrom(p Point) Pixel {
	x := ClampX(p.x)
	y := ClampYBits(p.y)
	return Pixel{
		index: x*(Height/8) + y/8,
		value: 0x80 >> (y % 8),
	}
}

func (p Pixel) Index() uint16 { return p.index }
func (p Pixel) Value() uint8  { return p.value }

func (p Pixel) Equal(q Pixel) bool { return p.index == q.index && p.value == q.value }

func (p Pixel) String() string { return fmt.Sprintf("[%d]: 0x%X", p.index, p.value) }

const shift = 16

// Gradient yields the integer points of the line from a to b using 16-bit
// fixed-point steps. The start point is not produced; Next must be called
// exactly Steps times to arrive at b (within one unit on one axis).
type Gradient struct {
	stepX, stepY int
	x, y         int
	steps        int
}

// NewGradient prepares the interpolation from a to b.
func NewGradient(a, b Point) *Gradient {
	dx := int(b.x) - int(a.x)
	dy := int(b.y) - int(a.y)
	g := &Gradient{
		x:     int(a.x) << shift,
		y:     int(a.y) << shift,
		steps: max(abs(dx), abs(dy)),
	}
	if g.steps > 0 {
		g.stepX = (dx << shift) / g.steps
		g.stepY = (dy << shift) / g.steps
	}
	return g
}

// Steps is max(|dx|, |dy|): the number of Next calls from a to b.
func (g *Gradient) Steps() int { return g.steps }

// Next advances one step along the line.
func (g *Gradient) Next() Point {
	g.x += g.stepX
	g.y += g.stepY
	return NewPoint(uint16(g.x>>shift), uint16(g.y>>shift))
}

func (g *Gradient) String() string { return fmt.Sprintf(" steps = %d", g.steps) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
