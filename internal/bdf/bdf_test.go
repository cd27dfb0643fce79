package bdf

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"golang.org/x/image/font/basicfont"

	"litclock/internal/font"
)

const sample = `STARTFONT 2.1
FONT -test-small
SIZE 8 75 75
FONTBOUNDINGBOX 6 9 -1 -2
STARTPROPERTIES 2
FONT_ASCENT 7
FONT_DESCENT 2
ENDPROPERTIES
CHARS 4
STARTCHAR space
ENCODING 32
SWIDTH 500 0
DWIDTH 4 0
BBX 0 0 0 0
BITMAP
ENDCHAR
STARTCHAR exclam
ENCODING 33
SWIDTH 500 0
DWIDTH 3 0
BBX 1 5 1 0
BITMAP
80
80
80
00
80
ENDCHAR
STARTCHAR numbersign
ENCODING 35
SWIDTH 500 0
DWIDTH 6 0
BBX 5 7 0 -2
BITMAP
50
F8
50
50
F8
50
00
ENDCHAR
STARTCHAR bullet
ENCODING 183
DWIDTH 6 0
BBX 2 2 2 2
BITMAP
C0
C0
ENDCHAR
ENDFONT
`

func TestParse(t *testing.T) {
	f, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if f.Name != "-test-small" {
		t.Fatalf("Name = %q", f.Name)
	}
	if f.BoundingBox != [4]int{6, 9, -1, -2} || f.Ascent != 7 || f.Descent != 2 {
		t.Fatalf("header = %+v", f)
	}
	if len(f.Glyphs) != 4 {
		t.Fatalf("len(Glyphs) = %d, want 4", len(f.Glyphs))
	}
	g := f.Glyphs[2]
	if g.Encoding != '#' || g.DWidth != 6 || g.BBW != 5 || g.BBH != 7 || g.BBX != 0 || g.BBY != -2 {
		t.Fatalf("glyph '#' = %+v", g)
	}
	if len(g.Rows) != 7 || g.Rows[1][0] != 0xF8 {
		t.Fatalf("glyph '#' rows = %v", g.Rows)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"no startfont", "FONT x\nENDFONT\n"},
		{"no endfont", "STARTFONT 2.1\nFONT x\n"},
		{"bad bbx", "STARTFONT 2.1\nSTARTCHAR a\nBBX 1 x 0 0\nENDCHAR\nENDFONT\n"},
		{"short bitmap", "STARTFONT 2.1\nSTARTCHAR a\nBBX 8 2 0 0\nBITMAP\nFF\nENDCHAR\nENDFONT\n"},
		{"long bitmap", "STARTFONT 2.1\nSTARTCHAR a\nBBX 8 1 0 0\nBITMAP\nFF\nFF\nENDCHAR\nENDFONT\n"},
		{"bad hex", "STARTFONT 2.1\nSTARTCHAR a\nBBX 8 1 0 0\nBITMAP\nZZ\nENDCHAR\nENDFONT\n"},
	}
	for _, tt := range tests {
		if _, err := Parse(strings.NewReader(tt.in)); !errors.Is(err, ErrSyntax) {
			t.Fatalf("%s: Parse() error = %v, want ErrSyntax", tt.name, err)
		}
	}
}

func TestParsePadsAndTruncatesRows(t *testing.T) {
	in := "STARTFONT 2.1\nSTARTCHAR a\nENCODING 65\nBBX 12 2 0 0\nBITMAP\nFFF0AA\nF\nENDCHAR\nENDFONT\n"
	f, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	rows := f.Glyphs[0].Rows
	if !bytes.Equal(rows[0], []byte{0xFF, 0xF0}) || !bytes.Equal(rows[1], []byte{0xF0, 0x00}) {
		t.Fatalf("rows = %X", rows)
	}
}

func TestCompile(t *testing.T) {
	f, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	c, sum, err := Compile(f, "small")
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if c.Name != "small" || c.AsciiStart != ' ' || c.AsciiStop != '#' {
		t.Fatalf("Compile() = %+v", c)
	}
	// '"' is missing and becomes an empty glyph; the bullet is out of range.
	if len(c.Glyphs) != 4 || sum.Gaps != 1 || sum.Glyphs != 3 {
		t.Fatalf("glyphs = %d gaps = %d", len(c.Glyphs), sum.Gaps)
	}
	if len(c.Bitmaps) != 12 {
		t.Fatalf("len(Bitmaps) = %d, want 12", len(c.Bitmaps))
	}
	want := font.BdfGlyph{Index: 5, BBW: 5, BBH: 7, DWidth: 6, BBX: 0, BBY: -2}
	if c.Glyphs[3] != want {
		t.Fatalf("glyph '#' = %+v, want %+v", c.Glyphs[3], want)
	}
	if sum.MaxRise != 5 || sum.MaxDrop != -2 || c.VerticalStep != 7 {
		t.Fatalf("rise=%d drop=%d step=%d", sum.MaxRise, sum.MaxDrop, c.VerticalStep)
	}
	if !strings.Contains(sum.String(), "missing encodings") {
		t.Fatalf("summary does not report the gap:\n%s", sum)
	}
}

func TestCompileNoPrintable(t *testing.T) {
	f := &Font{Glyphs: []Glyph{{Encoding: 200}}}
	if _, _, err := Compile(f, "none"); !errors.Is(err, ErrNoGlyphs) {
		t.Fatalf("Compile() error = %v, want ErrNoGlyphs", err)
	}
}

func TestCompiledFontServes(t *testing.T) {
	f, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	c, _, err := Compile(f, "small")
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	s := font.NewServer(c)
	if got := s.WidthOfString("! #"); got != 3+4+6 {
		t.Fatalf("WidthOfString() = %d, want 13", got)
	}
	if got := s.WidthOf('A'); got != 6 {
		t.Fatalf("WidthOf('A') = %d, want error glyph width 6", got)
	}
	if _, err := s.Verticals(); err != nil {
		t.Fatalf("Verticals() error = %v", err)
	}
	want := "X       \nX       \nX       \n        \nX       \n"
	if got := s.Dump('!'); got != want {
		t.Fatalf("Dump('!') = %q, want %q", got, want)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	f, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, f); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	g, err := Parse(&buf)
	if err != nil {
		t.Fatalf("Parse(Write()) error = %v", err)
	}
	if g.Name != f.Name || len(g.Glyphs) != len(f.Glyphs) {
		t.Fatalf("round trip = %+v", g)
	}
	for i := range f.Glyphs {
		a, b := f.Glyphs[i], g.Glyphs[i]
		if a.Encoding != b.Encoding || a.BBW != b.BBW || a.BBH != b.BBH || a.BBX != b.BBX || a.BBY != b.BBY || a.DWidth != b.DWidth {
			t.Fatalf("glyph %d = %+v, want %+v", i, b, a)
		}
		for r := range a.Rows {
			if !bytes.Equal(a.Rows[r], b.Rows[r]) {
				t.Fatalf("glyph %d row %d = %X, want %X", i, r, b.Rows[r], a.Rows[r])
			}
		}
	}
}

func TestFromFace(t *testing.T) {
	f, err := FromFace(basicfont.Face7x13, "basic", ' ', '~', 1)
	if err != nil {
		t.Fatalf("FromFace() error = %v", err)
	}
	if len(f.Glyphs) != 95 {
		t.Fatalf("len(Glyphs) = %d, want 95", len(f.Glyphs))
	}
	excl := f.Glyphs['!'-' ']
	if excl.BBW != 1 || excl.BBH != 9 || excl.BBX != 3 || excl.BBY != 0 || excl.DWidth != 7 {
		t.Fatalf("'!' = %+v", excl)
	}
	space := f.Glyphs[0]
	if space.BBW != 0 || space.BBH != 0 || space.DWidth != 7 {
		t.Fatalf("' ' = %+v", space)
	}

	c, _, err := Compile(f, "basic")
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if _, err := font.NewServer(c).Verticals(); err != nil {
		t.Fatalf("Verticals() error = %v", err)
	}
}

func TestFromFaceScaled(t *testing.T) {
	f, err := FromFace(basicfont.Face7x13, "big", '!', '!', 3)
	if err != nil {
		t.Fatalf("FromFace() error = %v", err)
	}
	g := f.Glyphs[0]
	if g.BBW != 3 || g.BBH != 27 || g.BBX != 9 || g.DWidth != 21 {
		t.Fatalf("'!' x3 = %+v", g)
	}
	if g.Rows[0][0] != 0xE0 {
		t.Fatalf("row 0 = %X, want E0", g.Rows[0])
	}
	if _, err := FromFace(basicfont.Face7x13, "bad", '!', '!', 0); err == nil {
		t.Fatalf("FromFace(scale 0) error = nil")
	}
}
