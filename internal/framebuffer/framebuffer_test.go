package framebuffer

import (
	"image/color"
	"testing"

	"litclock/internal/geometry"
)

func countSet(f *FrameBuffer) int {
	n := 0
	f.Each(func(x, y int) { n++ })
	return n
}

func TestNewIsClear(t *testing.T) {
	f := New()
	if n := countSet(f); n != 0 {
		t.Fatalf("new buffer has %d pixels set, want 0", n)
	}
	if len(f.Bytes()) != geometry.FrameBufferSize {
		t.Fatalf("len(Bytes()) = %d, want %d", len(f.Bytes()), geometry.FrameBufferSize)
	}
}

func TestSetAndClear(t *testing.T) {
	f := New()
	p := geometry.NewPoint(3, 9)
	f.Set(p)
	f.Set(p)
	if !f.IsSet(p) {
		t.Fatalf("IsSet(%v) = false after Set", p)
	}
	if got := f.Bytes()[3*int(geometry.Height/8)+1]; got != 0x40 {
		t.Fatalf("byte = 0x%X, want 0x40", got)
	}
	f.Clear()
	if f.IsSet(p) {
		t.Fatalf("IsSet(%v) = true after Clear", p)
	}
}

func TestSetPoints(t *testing.T) {
	f := New()
	f.SetPoints([]geometry.Point{
		geometry.NewPoint(0, 0),
		geometry.NewPoint(1, 1),
		geometry.NewPoint(2, 2),
	})
	if n := countSet(f); n != 3 {
		t.Fatalf("pixels set = %d, want 3", n)
	}
}

func TestLine(t *testing.T) {
	f := New()
	f.Line(geometry.NewPoint(10, 5), geometry.NewPoint(20, 5))
	if n := countSet(f); n != 11 {
		t.Fatalf("horizontal line set %d pixels, want 11", n)
	}
	for x := uint16(10); x <= 20; x++ {
		if !f.IsSet(geometry.NewPoint(x, 5)) {
			t.Fatalf("pixel (%d,5) not set", x)
		}
	}
}

func TestLineFromClampsLength(t *testing.T) {
	f := New()
	f.LineFrom(geometry.NewPoint(0, 100), geometry.Vertical, 1000)
	if n := countSet(f); n != int(geometry.MaxYBits)-100+1 {
		t.Fatalf("vertical line set %d pixels, want %d", n, int(geometry.MaxYBits)-100+1)
	}
	f.Clear()
	f.LineFrom(geometry.NewPoint(290, 0), geometry.Horizontal, 3)
	if n := countSet(f); n != 4 {
		t.Fatalf("horizontal line set %d pixels, want 4", n)
	}
}

func TestBorder(t *testing.T) {
	f := New()
	f.Border()
	want := 2*int(geometry.Width) + 2*int(geometry.Height) - 4
	if n := countSet(f); n != want {
		t.Fatalf("border set %d pixels, want %d", n, want)
	}
	for _, p := range []geometry.Point{
		geometry.NewPoint(0, 0),
		geometry.NewPoint(geometry.MaxX, 0),
		geometry.NewPoint(geometry.MaxX, geometry.MaxYBits),
		geometry.NewPoint(0, geometry.MaxYBits),
	} {
		if !f.IsSet(p) {
			t.Fatalf("corner %v not set", p)
		}
	}
	if f.IsSet(geometry.NewPoint(5, 5)) {
		t.Fatalf("interior pixel set by Border")
	}
}

func TestTestPatternHitsCorners(t *testing.T) {
	f := New()
	f.TestPattern()
	if !f.IsSet(geometry.NewPoint(0, 0)) || !f.IsSet(geometry.NewPoint(geometry.MaxX, geometry.MaxYBits)) {
		t.Fatalf("diagonal endpoints not set")
	}
	if !f.IsSet(geometry.NewPoint(0, geometry.MaxYBits)) || !f.IsSet(geometry.NewPoint(geometry.MaxX, 0)) {
		t.Fatalf("anti-diagonal endpoints not set")
	}
}

func TestEachOrder(t *testing.T) {
	f := New()
	f.Set(geometry.NewPoint(2, 0))
	f.Set(geometry.NewPoint(1, 127))
	f.Set(geometry.NewPoint(1, 3))

	var got [][2]int
	f.Each(func(x, y int) { got = append(got, [2]int{x, y}) })
	want := [][2]int{{1, 3}, {1, 127}, {2, 0}}
	if len(got) != len(want) {
		t.Fatalf("Each visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Each visited %v, want %v", got, want)
		}
	}
}

func TestDisplayerView(t *testing.T) {
	f := New()
	w, h := f.Size()
	if w != int16(geometry.Width) || h != int16(geometry.Height) {
		t.Fatalf("Size() = %d,%d", w, h)
	}

	f.SetPixel(4, 4, Ink)
	f.SetPixel(5, 5, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	f.SetPixel(-1, 4, Ink)
	f.SetPixel(4, int16(geometry.Height), Ink)

	if !f.IsSet(geometry.NewPoint(4, 4)) {
		t.Fatalf("ink pixel not set")
	}
	if n := countSet(f); n != 1 {
		t.Fatalf("pixels set = %d, want 1", n)
	}
	if err := f.Display(); err != nil {
		t.Fatalf("Display() = %v", err)
	}
}
