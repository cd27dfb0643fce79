package font

import (
	"errors"
	"strings"
	"testing"

	"litclock/internal/framebuffer"
	"litclock/internal/geometry"

	"tinygo.org/x/tinyfont"
)

// testFont covers '!', '"' and '#'.
func testFont() *BdfFont {
	return &BdfFont{
		Name: "test",
		Bitmaps: []byte{
			0x80, 0x00, 0x80, // '!'
			0xFF, 0xC0, 0x80, 0x40, // '"'
			0xA0, 0xE0, 0xA0, 0xE0, // '#'
		},
		Glyphs: []BdfGlyph{
			{Index: 0, BBW: 1, BBH: 3, DWidth: 2, BBX: 0, BBY: 0},
			{Index: 3, BBW: 10, BBH: 2, DWidth: 11, BBX: -1, BBY: 2},
			{Index: 7, BBW: 3, BBH: 4, DWidth: 4, BBX: 0, BBY: -1},
		},
		AsciiStart:   '!',
		AsciiStop:    '#',
		VerticalStep: 5,
	}
}

func TestWidthOf(t *testing.T) {
	s := NewServer(testFont())
	tests := []struct {
		c    byte
		want int
	}{
		{'!', 2},
		{'"', 11},
		{'#', 4},
		{'z', 4},
		{0, 4},
	}
	for _, tt := range tests {
		if got := s.WidthOf(tt.c); got != tt.want {
			t.Fatalf("WidthOf(%q) = %d, want %d", tt.c, got, tt.want)
		}
	}
	if got := s.WidthOfString("!\"#"); got != 17 {
		t.Fatalf("WidthOfString() = %d, want 17", got)
	}
}

func TestGlyphForErrorChar(t *testing.T) {
	s := NewServer(testFont())
	if got, want := s.GlyphFor('A'), s.GlyphFor(geometry.ErrorChar); got != want {
		t.Fatalf("GlyphFor('A') = %+v, want error glyph %+v", got, want)
	}
	if s.HasChar('A') || !s.HasChar('"') {
		t.Fatalf("HasChar range wrong")
	}
}

func TestBitsFor(t *testing.T) {
	s := NewServer(testFont())
	b := s.BitsFor('"')
	if b.Stride != 2 || b.Width != 10 || b.Height != 2 {
		t.Fatalf("BitsFor('\"') = %+v", b)
	}
	if !b.Complete() || b.Len() != 32 {
		t.Fatalf("Len() = %d, want 32", b.Len())
	}
	for _, tt := range []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 0, true},
		{10, 0, false},
		{0, 1, true},
		{1, 1, false},
		{9, 1, true},
		{0, 2, false},
	} {
		if got := b.At(tt.x, tt.y); got != tt.want {
			t.Fatalf("At(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestBitsForTruncatedTable(t *testing.T) {
	f := testFont()
	f.Bitmaps = f.Bitmaps[:9]
	b := NewServer(f).BitsFor('#')
	if b.Complete() {
		t.Fatalf("truncated glyph reported complete")
	}
	if b.Len() != 16 || b.ExpectedBits() != 32 {
		t.Fatalf("Len() = %d ExpectedBits() = %d, want 16 and 32", b.Len(), b.ExpectedBits())
	}
}

func TestVerticals(t *testing.T) {
	v, err := NewServer(testFont()).Verticals()
	if err != nil {
		t.Fatalf("Verticals() error = %v", err)
	}
	want := Verticals{MaxRise: 4, MaxDrop: -1, VerticalStep: 5}
	if v != want {
		t.Fatalf("Verticals() = %v, want %v", v, want)
	}
}

func TestVerticalsRiseExceedsStep(t *testing.T) {
	f := testFont()
	f.VerticalStep = 3
	v, err := NewServer(f).Verticals()
	if !errors.Is(err, ErrRiseExceedsStep) {
		t.Fatalf("Verticals() error = %v, want ErrRiseExceedsStep", err)
	}
	if v.MaxRise != 4 {
		t.Fatalf("MaxRise = %d, want 4", v.MaxRise)
	}
}

func TestEmptyFont(t *testing.T) {
	s := NewServer(nil)
	if s.Name() != "empty" {
		t.Fatalf("Name() = %q", s.Name())
	}
	if w := s.WidthOfString("hello"); w != 0 {
		t.Fatalf("WidthOfString() = %d, want 0", w)
	}
	if _, err := s.Verticals(); err != nil {
		t.Fatalf("Verticals() error = %v", err)
	}
	if b := s.BitsFor('A'); b.Len() != 0 || !b.Complete() {
		t.Fatalf("BitsFor() = %+v, want empty", b)
	}
}

func TestDump(t *testing.T) {
	got := NewServer(testFont()).Dump('#')
	want := strings.Join([]string{
		"X X     ",
		"XXX     ",
		"X X     ",
		"XXX     ",
	}, "\n") + "\n"
	if got != want {
		t.Fatalf("Dump('#') =\n%s\nwant\n%s", got, want)
	}
}

func TestFonterDraw(t *testing.T) {
	fb := framebuffer.New()
	f := Fonter(testFont())

	// Baseline at y=10: '#' spans rows 7..10 since BBY=-1 drops it one row.
	f.GetGlyph('#').Draw(fb, 20, 10, framebuffer.Ink)
	for _, p := range [][2]uint16{{20, 7}, {22, 7}, {21, 8}, {20, 10}, {22, 10}} {
		if !fb.IsSet(geometry.NewPoint(p[0], p[1])) {
			t.Fatalf("pixel %v not set", p)
		}
	}
	if fb.IsSet(geometry.NewPoint(21, 7)) {
		t.Fatalf("pixel (21,7) set, want clear")
	}

	info := f.GetGlyph('"').Info()
	if info.XAdvance != 11 || info.XOffset != -1 || info.YOffset != -4 || info.Width != 10 {
		t.Fatalf("Info() = %+v", info)
	}
	if f.GetYAdvance() != 5 {
		t.Fatalf("GetYAdvance() = %d, want 5", f.GetYAdvance())
	}
}

func TestFonterLineWidth(t *testing.T) {
	s := NewServer(testFont())
	_, outbox := tinyfont.LineWidth(Fonter(testFont()), "!#!")
	if int(outbox) != s.WidthOfString("!#!") {
		t.Fatalf("LineWidth() outbox = %d, want %d", outbox, s.WidthOfString("!#!"))
	}
}
