package layout

import (
	"tinygo.org/x/tinyfont"

	"litclock/internal/font"
	"litclock/internal/framebuffer"
	"litclock/internal/geometry"
)

// renderLine draws line with its first glyph origin at (originX, originY) on
// the baseline. A negative left bearing on the first glyph moves the whole
// line right so nothing is cut off at the left edge.
func (s *Server) renderLine(line string, originX, originY int) {
	if line == "" {
		return
	}
	if g := s.fs.GlyphFor(line[0]); g.BBX < 0 {
		originX -= int(g.BBX)
	}
	for i := 0; i < len(line); i++ {
		c := line[i]
		g := s.fs.GlyphFor(c)
		x := originX + int(g.BBX)
		y := originY - (int(g.BBH) + int(g.BBY))
		s.renderChar(s.fs.BitsFor(c), x, y)
		originX += int(g.DWidth)
	}
}

func (s *Server) renderChar(bits font.GlyphBits, x, y int) {
	if !bits.Complete() {
		s.skipped++
		return
	}
	width := bits.Stride * 8
	for row := 0; row < bits.Height; row++ {
		for col := 0; col < width; col++ {
			if bits.At(col, row) {
				s.plot(x+col, y+row)
			}
		}
	}
}

// plot sets one pixel; pixels off the display are dropped rather than
// clamped onto its edge.
func (s *Server) plot(x, y int) {
	if x < 0 || y < 0 || x > int(geometry.MaxX) || y > int(geometry.MaxYBits) {
		return
	}
	s.fb.Set(geometry.NewPoint(uint16(x), uint16(y)))
}

// flush copies the frame buffer to the driver and updates the panel.
func (s *Server) flush() {
	s.fb.Each(s.driver.Set)
	if err := s.driver.Update(); err != nil {
		s.logf("layout: display update: %v", err)
	}
}

func writeLine(fb *framebuffer.FrameBuffer, f tinyfont.Fonter, x, baseline int, text string) {
	tinyfont.WriteLine(fb, f, int16(x), int16(baseline), text, framebuffer.Ink)
}
