package bdf

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"litclock/internal/font"
)

// Printable ASCII range kept by Compile.
const (
	FirstPrintable = 0x20
	LastPrintable  = 0x7E
)

// ErrNoGlyphs is returned when a font has no glyph in the printable range.
var ErrNoGlyphs = errors.New("bdf: no printable glyphs")

// Summary describes a compiled font.
type Summary struct {
	Tag          string
	Name         string
	Glyphs       int
	First, Last  int
	Gaps         int
	Duplicates   int
	BBW, BBH     [2]int
	BBX, BBY     [2]int
	DWidth       [2]int
	MaxRise      int
	MaxDrop      int
	VerticalStep int
}

func (s Summary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tag\t%s\n", s.Tag)
	fmt.Fprintf(&sb, "Name\t%s\n", s.Name)
	fmt.Fprintf(&sb, "Glyphs\t%d\n", s.Glyphs)
	fmt.Fprintf(&sb, "First\t%d (%c)\n", s.First, rune(s.First))
	fmt.Fprintf(&sb, "Last\t%d (%c)\n", s.Last, rune(s.Last))
	fmt.Fprintf(&sb, "bbw\t%d to %d\n", s.BBW[0], s.BBW[1])
	fmt.Fprintf(&sb, "bbh\t%d to %d\n", s.BBH[0], s.BBH[1])
	fmt.Fprintf(&sb, "bbx\t%d to %d\n", s.BBX[0], s.BBX[1])
	fmt.Fprintf(&sb, "bby\t%d to %d\n", s.BBY[0], s.BBY[1])
	fmt.Fprintf(&sb, "DWidth\t%d to %d\n", s.DWidth[0], s.DWidth[1])
	fmt.Fprintf(&sb, "Max Rise %d\n", s.MaxRise)
	fmt.Fprintf(&sb, "Max Drop %d\n", s.MaxDrop)
	fmt.Fprintf(&sb, "V Step\t%d", s.VerticalStep)
	if s.Gaps > 0 {
		fmt.Fprintf(&sb, "\nWarning: %d missing encodings filled with empty glyphs", s.Gaps)
	}
	if s.Duplicates > 0 {
		fmt.Fprintf(&sb, "\nWarning: %d duplicate encodings ignored", s.Duplicates)
	}
	return sb.String()
}

func span(r *[2]int, v int, first bool) {
	if first || v < r[0] {
		r[0] = v
	}
	if first || v > r[1] {
		r[1] = v
	}
}

func fits(v, lo, hi int) bool { return v >= lo && v <= hi }

// Compile converts the printable glyphs of f into a font table named tag.
// Glyphs are laid out contiguously from the lowest to the highest encoding;
// missing encodings become empty glyphs so a table can be indexed by
// c - AsciiStart. The vertical step is the highest rise minus the lowest
// glyph bottom.
func Compile(f *Font, tag string) (*font.BdfFont, Summary, error) {
	sum := Summary{Tag: tag, Name: f.Name}

	byEnc := make(map[int]Glyph)
	for _, g := range f.Glyphs {
		if g.Encoding < FirstPrintable || g.Encoding > LastPrintable {
			continue
		}
		if _, dup := byEnc[g.Encoding]; dup {
			sum.Duplicates++
			continue
		}
		byEnc[g.Encoding] = g
	}
	if len(byEnc) == 0 {
		return nil, sum, fmt.Errorf("%w: %s", ErrNoGlyphs, tag)
	}
	encs := make([]int, 0, len(byEnc))
	for e := range byEnc {
		encs = append(encs, e)
	}
	sort.Ints(encs)
	sum.First, sum.Last = encs[0], encs[len(encs)-1]
	sum.Glyphs = len(encs)
	sum.Gaps = sum.Last - sum.First + 1 - len(encs)

	out := &font.BdfFont{
		Name:       tag,
		AsciiStart: uint8(sum.First),
		AsciiStop:  uint8(sum.Last),
	}

	first := true
	for e := sum.First; e <= sum.Last; e++ {
		g, ok := byEnc[e]
		if !ok {
			out.Glyphs = append(out.Glyphs, font.BdfGlyph{Index: uint16(len(out.Bitmaps))})
			continue
		}
		if !fits(g.BBW, 0, math.MaxUint8) || !fits(g.BBH, 0, math.MaxUint8) || !fits(g.DWidth, 0, math.MaxUint8) ||
			!fits(g.BBX, math.MinInt8, math.MaxInt8) || !fits(g.BBY, math.MinInt8, math.MaxInt8) {
			return nil, sum, fmt.Errorf("%w: glyph %d (%s): metrics out of range", ErrSyntax, e, g.Name)
		}
		if len(g.Rows) != g.BBH {
			return nil, sum, fmt.Errorf("%w: glyph %d (%s): %d bitmap rows, want %d", ErrSyntax, e, g.Name, len(g.Rows), g.BBH)
		}
		if len(out.Bitmaps) > math.MaxUint16 {
			return nil, sum, fmt.Errorf("%w: %s: bitmap table exceeds 64KiB", ErrSyntax, tag)
		}
		out.Glyphs = append(out.Glyphs, font.BdfGlyph{
			Index:  uint16(len(out.Bitmaps)),
			BBW:    uint8(g.BBW),
			BBH:    uint8(g.BBH),
			DWidth: uint8(g.DWidth),
			BBX:    int8(g.BBX),
			BBY:    int8(g.BBY),
		})
		for _, row := range g.Rows {
			out.Bitmaps = append(out.Bitmaps, row...)
		}

		span(&sum.BBW, g.BBW, first)
		span(&sum.BBH, g.BBH, first)
		span(&sum.BBX, g.BBX, first)
		span(&sum.BBY, g.BBY, first)
		span(&sum.DWidth, g.DWidth, first)
		if rise := g.BBH + g.BBY; first || rise > sum.MaxRise {
			sum.MaxRise = rise
		}
		first = false
	}

	sum.MaxDrop = sum.BBY[0]
	sum.VerticalStep = sum.MaxRise - sum.MaxDrop
	if !fits(sum.VerticalStep, 0, math.MaxUint8) {
		return nil, sum, fmt.Errorf("%w: %s: vertical step %d out of range", ErrSyntax, tag, sum.VerticalStep)
	}
	out.VerticalStep = uint8(sum.VerticalStep)
	return out, sum, nil
}
