package font

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Fonter adapts a compiled font to tinyfont so the generic tinyfont helpers
// (WriteLine, LineWidth, DrawChar) can draw with it.
//
// Concurrent access is not safe due to internal glyph reuse (same as
// tinyfont's own const fonts).
func Fonter(f *BdfFont) tinyfont.Fonter {
	s := NewServer(f)
	return &fonter{s: s, g: glyph{s: s}}
}

type fonter struct {
	s *Server
	g glyph
}

type glyph struct {
	s *Server
	r rune
	c byte
	m BdfGlyph
}

func (f *fonter) GetGlyph(r rune) tinyfont.Glypher {
	c := byte(0)
	if r >= 0 && r < 0x80 {
		c = byte(r)
	}
	f.g.r = r
	f.g.c = f.s.resolve(c)
	f.g.m = f.s.GlyphFor(f.g.c)
	return &f.g
}

func (f *fonter) GetYAdvance() uint8 { return f.s.font.VerticalStep }

// Draw paints the glyph with its origin (baseline, left) at x, y.
func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	bits := g.s.BitsFor(g.c)
	if !bits.Complete() {
		return
	}
	x0 := x + int16(g.m.BBX)
	y0 := y - int16(int(g.m.BBH)+int(g.m.BBY))
	for row := 0; row < bits.Height; row++ {
		for col := 0; col < bits.Width; col++ {
			if bits.At(col, row) {
				display.SetPixel(x0+int16(col), y0+int16(row), c)
			}
		}
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    g.m.BBW,
		Height:   g.m.BBH,
		XAdvance: g.m.DWidth,
		XOffset:  g.m.BBX,
		YOffset:  -int8(int(g.m.BBH) + int(g.m.BBY)),
	}
}
