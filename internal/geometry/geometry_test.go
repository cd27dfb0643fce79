package geometry

import "testing"

// neg returns the unsigned wraparound of a negative int, the way a stray
// subtraction produces it at runtime.
func neg(v int) uint16 { return uint16(-v) }

func TestClamp(t *testing.T) {
	tests := []struct {
		name string
		fn   func(uint16) uint16
		max  uint16
	}{
		{"ClampX", ClampX, MaxX},
		{"ClampYBits", ClampYBits, MaxYBits},
		{"ClampYByte", ClampYByte, MaxYByte},
		{"ClampIndex", ClampIndex, MaxIndex},
	}
	for _, tt := range tests {
		cases := []struct{ in, want uint16 }{
			{0, 0},
			{1, 1},
			{neg(1), 0},
			{neg(2), 0},
			{neg(32767), 0},
			{32767, tt.max},
			{tt.max, tt.max},
			{tt.max + 1, tt.max},
		}
		for _, c := range cases {
			if got := tt.fn(c.in); got != c.want {
				t.Fatalf("%s(%d) = %d, want %d", tt.name, c.in, got, c.want)
			}
			if got := tt.fn(tt.fn(c.in)); got != tt.fn(c.in) {
				t.Fatalf("%s not idempotent for %d", tt.name, c.in)
			}
		}
	}
}

func TestNewPoint(t *testing.T) {
	tests := []struct {
		x, y   uint16
		wx, wy uint16
	}{
		{0, 0, 0, 0},
		{neg(1), neg(1), 0, 0},
		{neg(2), neg(2), 0, 0},
		{15, 15, 15, 15},
		{127, 127, 127, 127},
		{128, 128, 128, 127},
		{0, MaxYBits, 0, MaxYBits},
		{0, Height, 0, MaxYBits},
		{MaxX, 0, MaxX, 0},
		{Width, 0, MaxX, 0},
		{Width, Height, MaxX, MaxYBits},
		{0, 32767, 0, MaxYBits},
	}
	for _, tt := range tests {
		p := NewPoint(tt.x, tt.y)
		if p.X() != tt.wx || p.Y() != tt.wy {
			t.Fatalf("NewPoint(%d, %d) = %v, want (%d,%d)", tt.x, tt.y, p, tt.wx, tt.wy)
		}
	}

	var zero Point
	if zero.X() != 0 || zero.Y() != 0 {
		t.Fatalf("zero Point = %v, want (0,0)", zero)
	}
}

func TestPointAdd(t *testing.T) {
	tests := []struct {
		p, want Point
	}{
		{NewPoint(0, 0), NewPoint(0, 0)},
		{NewPoint(15, 15), NewPoint(30, 30)},
		{NewPoint(1, MaxYBits), NewPoint(2, MaxYBits)},
		{NewPoint(0, Height/2), NewPoint(0, MaxYBits)},
		{NewPoint(Width/2, 0), NewPoint(MaxX, 0)},
		{NewPoint(Width, Height), NewPoint(MaxX, MaxYBits)},
	}
	for _, tt := range tests {
		if got := tt.p.Add(tt.p); !got.Equal(tt.want) {
			t.Fatalf("%v.Add(%v) = %v, want %v", tt.p, tt.p, got, tt.want)
		}
	}

	p := NewPoint(0, 0).Add(NewPoint(1, 2)).Add(NewPoint(3, 4))
	if !p.Equal(NewPoint(4, 6)) {
		t.Fatalf("chained Add = %v, want (4,6)", p)
	}
}

func TestPointSubFloorsAtZero(t *testing.T) {
	origin := NewPoint(0, 0)
	for _, q := range []Point{NewPoint(1, 1), NewPoint(MaxX, MaxYBits), NewPoint(0, 5)} {
		if got := origin.Sub(q); !got.Equal(origin) {
			t.Fatalf("(0,0).Sub(%v) = %v, want (0,0)", q, got)
		}
	}
	if got := NewPoint(10, 20).Sub(NewPoint(3, 25)); !got.Equal(NewPoint(7, 0)) {
		t.Fatalf("Sub = %v, want (7,0)", got)
	}
}

func TestPointSet(t *testing.T) {
	var p Point
	p.Set(NewPoint(Width, 3))
	if !p.Equal(NewPoint(MaxX, 3)) {
		t.Fatalf("Set = %v, want (%d,3)", p, MaxX)
	}
}

func TestPixelFromPoint(t *testing.T) {
	tests := []struct {
		p     Point
		index uint16
		value uint8
	}{
		{NewPoint(0, 0), 0, 0x80},
		{NewPoint(0, 7), 0, 0x01},
		{NewPoint(0, 8), 1, 0x80},
		{NewPoint(0, 9), 1, 0x40},
		{NewPoint(1, 0), Height / 8, 0x80},
		{NewPoint(MaxX, MaxYBits), MaxIndex, 0x01},
	}
	for _, tt := range tests {
		px := PixelFrom(tt.p)
		if px.Index() != tt.index || px.Value() != tt.value {
			t.Fatalf("PixelFrom(%v) = %v, want [%d]: 0x%X", tt.p, px, tt.index, tt.value)
		}
	}
}

func TestNewPixelClampsIndex(t *testing.T) {
	if got := NewPixel(neg(1), 0x80); got.Index() != 0 {
		t.Fatalf("NewPixel(-1).Index() = %d, want 0", got.Index())
	}
	if got := NewPixel(32767, 0x01); got.Index() != MaxIndex {
		t.Fatalf("NewPixel(32767).Index() = %d, want %d", got.Index(), MaxIndex)
	}
	if got := NewPixel(3, 0x10).String(); got != "[3]: 0x10" {
		t.Fatalf("String() = %q", got)
	}
}

func TestGradientReachesEnd(t *testing.T) {
	ends := []Point{
		NewPoint(0, 0),
		NewPoint(MaxX, 0),
		NewPoint(MaxX, MaxYBits),
		NewPoint(0, MaxYBits),
		NewPoint(17, 93),
		NewPoint(250, 3),
		NewPoint(100, 100),
		NewPoint(3, 127),
	}
	for _, a := range ends {
		for _, b := range ends {
			g := NewGradient(a, b)
			want := max(absDiff(a.X(), b.X()), absDiff(a.Y(), b.Y()))
			if g.Steps() != want {
				t.Fatalf("Gradient(%v,%v).Steps() = %d, want %d", a, b, g.Steps(), want)
			}
			last := a
			for i := 0; i < g.Steps(); i++ {
				next := g.Next()
				if absDiff(next.X(), last.X()) > 1 || absDiff(next.Y(), last.Y()) > 1 {
					t.Fatalf("Gradient(%v,%v) jumped from %v to %v", a, b, last, next)
				}
				last = next
			}
			dx := absDiff(last.X(), b.X())
			dy := absDiff(last.Y(), b.Y())
			if dx > 1 || dy > 1 || (dx == 1 && dy == 1) {
				t.Fatalf("Gradient(%v,%v) ended at %v", a, b, last)
			}
		}
	}
}

func TestGradientZeroLength(t *testing.T) {
	g := NewGradient(NewPoint(5, 5), NewPoint(5, 5))
	if g.Steps() != 0 {
		t.Fatalf("Steps() = %d, want 0", g.Steps())
	}
}

func TestOrientationString(t *testing.T) {
	if Horizontal.String() != "horizontal" || Vertical.String() != "vertical" {
		t.Fatalf("unexpected orientation names %q %q", Horizontal, Vertical)
	}
	if Orientation(9).String() != "unknown" {
		t.Fatalf("Orientation(9) = %q", Orientation(9))
	}
}

func absDiff(a, b uint16) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
