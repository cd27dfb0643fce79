// Package font gives the layout engine access to compiled BDF bitmap fonts:
// glyph metrics, advance widths, glyph bitmaps and whole-font vertical
// metrics.
package font

import (
	"errors"
	"fmt"
	"strings"

	"litclock/internal/geometry"
)

// ErrRiseExceedsStep reports a compiled font whose tallest glyph rises above
// the declared vertical step. It indicates a defect in the font compiler's
// output, not a runtime condition.
var ErrRiseExceedsStep = errors.New("font: glyph rise exceeds vertical step")

// BdfGlyph holds the metrics of one compiled glyph.
type BdfGlyph struct {
	// Index is the byte offset of the glyph bitmap in BdfFont.Bitmaps.
	Index uint16
	// BBW and BBH are the bitmap width and height in pixels.
	BBW uint8
	BBH uint8
	// DWidth is the horizontal advance to the next origin.
	DWidth uint8
	// BBX and BBY offset the bitmap's lower-left corner from the origin.
	BBX int8
	BBY int8
}

// BdfFont is a compiled font table covering the contiguous character range
// [AsciiStart, AsciiStop]. Bitmaps and Glyphs are shared, read-only data.
type BdfFont struct {
	Name         string
	Bitmaps      []byte
	Glyphs       []BdfGlyph
	AsciiStart   uint8
	AsciiStop    uint8
	VerticalStep uint8
}

// Empty returns a font with no glyphs, matching what a Server uses before a
// style selects a real font.
func Empty() *BdfFont {
	return &BdfFont{Name: "empty", AsciiStart: ' ', AsciiStop: ' '}
}

// Verticals are the line metrics of a font.
type Verticals struct {
	// MaxRise is the highest pixel above the baseline across all glyphs.
	MaxRise int
	// MaxDrop is the lowest glyph bottom relative to the baseline (<= 0 for
	// fonts with descenders).
	MaxDrop int
	// VerticalStep is the font's declared minimum line spacing.
	VerticalStep int
}

// Server resolves characters of one font to metrics and bitmaps.
type Server struct {
	font *BdfFont
}

// NewServer returns a server for f. A nil font behaves like Empty().
func NewServer(f *BdfFont) *Server {
	if f == nil {
		f = Empty()
	}
	return &Server{font: f}
}

// Font returns the table served by s.
func (s *Server) Font() *BdfFont { return s.font }

// Name returns the font name.
func (s *Server) Name() string { return s.font.Name }

// HasChar reports whether c lies inside the font's character range.
func (s *Server) HasChar(c byte) bool {
	return c >= s.font.AsciiStart && c <= s.font.AsciiStop
}

func (s *Server) resolve(c byte) byte {
	if s.HasChar(c) {
		return c
	}
	return geometry.ErrorChar
}

func (s *Server) glyphAt(i int) (BdfGlyph, bool) {
	if i < 0 || i >= len(s.font.Glyphs) {
		return BdfGlyph{}, false
	}
	return s.font.Glyphs[i], true
}

// GlyphFor returns the metrics for c, or for the error glyph '#' when c is
// outside the font. A font too short to hold the glyph yields a zero glyph.
func (s *Server) GlyphFor(c byte) BdfGlyph {
	c = s.resolve(c)
	if !s.HasChar(c) {
		return BdfGlyph{}
	}
	g, _ := s.glyphAt(int(c) - int(s.font.AsciiStart))
	return g
}

// WidthOf returns the advance of c in pixels.
func (s *Server) WidthOf(c byte) int {
	return int(s.GlyphFor(c).DWidth)
}

// WidthOfString returns the summed advance of every byte in str.
func (s *Server) WidthOfString(str string) int {
	w := 0
	for i := 0; i < len(str); i++ {
		w += s.WidthOf(str[i])
	}
	return w
}

// BitsFor returns the bitmap of c. The view is cut short if the bitmap table
// ends early; compare Len with ExpectedBits before drawing.
func (s *Server) BitsFor(c byte) GlyphBits {
	g := s.GlyphFor(c)
	stride := RoundToByte(g.BBW)
	n := stride * int(g.BBH)

	start := int(g.Index)
	if n == 0 || start >= len(s.font.Bitmaps) {
		return GlyphBits{Width: int(g.BBW), Height: int(g.BBH), Stride: stride}
	}
	end := min(start+n, len(s.font.Bitmaps))
	return GlyphBits{
		Data:   s.font.Bitmaps[start:end],
		Width:  int(g.BBW),
		Height: int(g.BBH),
		Stride: stride,
	}
}

// Verticals scans every glyph in the font's range. A rise above the declared
// vertical step is returned as ErrRiseExceedsStep together with the computed
// metrics, which remain usable.
func (s *Server) Verticals() (Verticals, error) {
	v := Verticals{VerticalStep: int(s.font.VerticalStep)}
	first := true
	for c := int(s.font.AsciiStart); c <= int(s.font.AsciiStop); c++ {
		g, ok := s.glyphAt(c - int(s.font.AsciiStart))
		if !ok {
			break
		}
		rise := int(g.BBH) + int(g.BBY)
		if rise > v.MaxRise {
			v.MaxRise = rise
		}
		if first || int(g.BBY) < v.MaxDrop {
			v.MaxDrop = int(g.BBY)
		}
		first = false
	}
	if v.MaxRise > v.VerticalStep {
		return v, fmt.Errorf("%w: %s rise %d > step %d", ErrRiseExceedsStep, s.font.Name, v.MaxRise, v.VerticalStep)
	}
	return v, nil
}

// Dump renders the bitmap of c as text, one row per line, using the byte
// stride as the row width.
func (s *Server) Dump(c byte) string {
	bits := s.BitsFor(c)
	var sb strings.Builder
	for y := 0; y < bits.Height; y++ {
		for x := 0; x < bits.Stride*8; x++ {
			if bits.At(x, y) {
				sb.WriteByte('X')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RoundToByte returns the number of bytes needed to hold w bits.
func RoundToByte(w uint8) int {
	return (int(w) + 7) / 8
}

func (v Verticals) String() string {
	return fmt.Sprintf("rise=%d drop=%d step=%d", v.MaxRise, v.MaxDrop, v.VerticalStep)
}
