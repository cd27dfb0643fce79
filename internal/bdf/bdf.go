// Package bdf reads Adobe Glyph Bitmap Distribution Format fonts and compiles
// them into the tables used by package font.
package bdf

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrSyntax is returned for malformed BDF input.
var ErrSyntax = errors.New("bdf: syntax error")

// Glyph is one STARTCHAR..ENDCHAR block.
type Glyph struct {
	Name     string
	Encoding int
	DWidth   int
	BBW      int
	BBH      int
	BBX      int
	BBY      int
	// Rows holds BBH scan lines of ceil(BBW/8) bytes each, MSB first.
	Rows [][]byte
}

// Stride is the number of bytes in one scan line.
func (g Glyph) Stride() int { return (g.BBW + 7) / 8 }

// Font is a parsed BDF file.
type Font struct {
	Name string
	// Size is the SIZE line: point size and resolution.
	Size [3]int
	// BoundingBox is FONTBOUNDINGBOX: width, height, x offset, y offset.
	BoundingBox [4]int
	Ascent      int
	Descent     int
	Glyphs      []Glyph
}

type parser struct {
	sc   *bufio.Scanner
	line int
}

func (p *parser) next() ([]string, bool) {
	for p.sc.Scan() {
		p.line++
		fields := strings.Fields(p.sc.Text())
		if len(fields) == 0 {
			continue
		}
		return fields, true
	}
	return nil, false
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrSyntax, p.line, fmt.Sprintf(format, args...))
}

func (p *parser) ints(fields []string, n int) ([]int, error) {
	if len(fields) < n+1 {
		return nil, p.errorf("%s: want %d values, got %d", fields[0], n, len(fields)-1)
	}
	out := make([]int, n)
	for i := range out {
		v, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return nil, p.errorf("%s: %v", fields[0], err)
		}
		out[i] = v
	}
	return out, nil
}

// Parse reads a BDF font. Properties other than the ones kept in Font are
// skipped. Glyphs are returned in file order.
func Parse(r io.Reader) (*Font, error) {
	p := &parser{sc: bufio.NewScanner(r)}
	f := &Font{}

	fields, ok := p.next()
	if !ok || fields[0] != "STARTFONT" {
		return nil, p.errorf("missing STARTFONT")
	}

	for {
		fields, ok = p.next()
		if !ok {
			if err := p.sc.Err(); err != nil {
				return nil, err
			}
			return nil, p.errorf("missing ENDFONT")
		}
		switch fields[0] {
		case "FONT":
			f.Name = strings.Join(fields[1:], " ")
		case "SIZE":
			v, err := p.ints(fields, 3)
			if err != nil {
				return nil, err
			}
			copy(f.Size[:], v)
		case "FONTBOUNDINGBOX":
			v, err := p.ints(fields, 4)
			if err != nil {
				return nil, err
			}
			copy(f.BoundingBox[:], v)
		case "FONT_ASCENT":
			v, err := p.ints(fields, 1)
			if err != nil {
				return nil, err
			}
			f.Ascent = v[0]
		case "FONT_DESCENT":
			v, err := p.ints(fields, 1)
			if err != nil {
				return nil, err
			}
			f.Descent = v[0]
		case "STARTCHAR":
			g, err := p.glyph(strings.Join(fields[1:], " "))
			if err != nil {
				return nil, err
			}
			f.Glyphs = append(f.Glyphs, g)
		case "ENDFONT":
			return f, nil
		}
	}
}

func (p *parser) glyph(name string) (Glyph, error) {
	g := Glyph{Name: name, Encoding: -1}
	for {
		fields, ok := p.next()
		if !ok {
			return g, p.errorf("glyph %q: missing ENDCHAR", name)
		}
		switch fields[0] {
		case "ENCODING":
			v, err := p.ints(fields, 1)
			if err != nil {
				return g, err
			}
			g.Encoding = v[0]
		case "DWIDTH":
			v, err := p.ints(fields, 1)
			if err != nil {
				return g, err
			}
			g.DWidth = v[0]
		case "BBX":
			v, err := p.ints(fields, 4)
			if err != nil {
				return g, err
			}
			g.BBW, g.BBH, g.BBX, g.BBY = v[0], v[1], v[2], v[3]
			if g.BBW < 0 || g.BBH < 0 {
				return g, p.errorf("glyph %q: negative bounding box", name)
			}
		case "BITMAP":
			rows, err := p.bitmap(g)
			if err != nil {
				return g, err
			}
			g.Rows = rows
			return g, nil
		case "ENDCHAR":
			return g, nil
		}
	}
}

// bitmap reads BBH hex scan lines and the closing ENDCHAR. Lines wider than
// the glyph stride are truncated and narrower ones are zero padded.
func (p *parser) bitmap(g Glyph) ([][]byte, error) {
	stride := g.Stride()
	rows := make([][]byte, 0, g.BBH)
	for {
		fields, ok := p.next()
		if !ok {
			return nil, p.errorf("glyph %q: missing ENDCHAR", g.Name)
		}
		if fields[0] == "ENDCHAR" {
			break
		}
		if len(rows) == g.BBH {
			return nil, p.errorf("glyph %q: more than %d bitmap rows", g.Name, g.BBH)
		}
		s := fields[0]
		if len(s)%2 == 1 {
			s += "0"
		}
		raw, err := hex.DecodeString(s)
		if err != nil {
			return nil, p.errorf("glyph %q: %v", g.Name, err)
		}
		row := make([]byte, stride)
		copy(row, raw)
		rows = append(rows, row)
	}
	if len(rows) != g.BBH {
		return nil, p.errorf("glyph %q: %d bitmap rows, want %d", g.Name, len(rows), g.BBH)
	}
	return rows, nil
}

// Write emits f as BDF 2.1 text.
func Write(w io.Writer, f *Font) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "STARTFONT 2.1\n")
	fmt.Fprintf(bw, "FONT %s\n", f.Name)
	fmt.Fprintf(bw, "SIZE %d %d %d\n", f.Size[0], f.Size[1], f.Size[2])
	fmt.Fprintf(bw, "FONTBOUNDINGBOX %d %d %d %d\n", f.BoundingBox[0], f.BoundingBox[1], f.BoundingBox[2], f.BoundingBox[3])
	fmt.Fprintf(bw, "STARTPROPERTIES 2\n")
	fmt.Fprintf(bw, "FONT_ASCENT %d\n", f.Ascent)
	fmt.Fprintf(bw, "FONT_DESCENT %d\n", f.Descent)
	fmt.Fprintf(bw, "ENDPROPERTIES\n")
	fmt.Fprintf(bw, "CHARS %d\n", len(f.Glyphs))
	for _, g := range f.Glyphs {
		fmt.Fprintf(bw, "STARTCHAR %s\n", g.Name)
		fmt.Fprintf(bw, "ENCODING %d\n", g.Encoding)
		fmt.Fprintf(bw, "SWIDTH %d 0\n", g.DWidth*1000/max(f.Size[0], 1))
		fmt.Fprintf(bw, "DWIDTH %d 0\n", g.DWidth)
		fmt.Fprintf(bw, "BBX %d %d %d %d\n", g.BBW, g.BBH, g.BBX, g.BBY)
		fmt.Fprintf(bw, "BITMAP\n")
		for _, row := range g.Rows {
			fmt.Fprintf(bw, "%s\n", strings.ToUpper(hex.EncodeToString(row)))
		}
		fmt.Fprintf(bw, "ENDCHAR\n")
	}
	fmt.Fprintf(bw, "ENDFONT\n")
	return bw.Flush()
}
