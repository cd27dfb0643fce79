package bdf

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// FromFace rasterizes the runes [first, last] of a bitmap face into a BDF
// font, trimming every glyph to the bounding box of its inked pixels. Each
// source pixel becomes a scale x scale block.
func FromFace(face font.Face, name string, first, last rune, scale int) (*Font, error) {
	if scale < 1 {
		return nil, fmt.Errorf("bdf: scale %d < 1", scale)
	}
	m := face.Metrics()
	ascent, descent := m.Ascent.Ceil()*scale, m.Descent.Ceil()*scale
	f := &Font{
		Name:        name,
		Size:        [3]int{m.Height.Ceil() * scale, 75, 75},
		Ascent:      ascent,
		Descent:     descent,
		BoundingBox: [4]int{0, ascent + descent, 0, -descent},
	}

	for r := first; r <= last; r++ {
		dr, mask, maskp, adv, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		g := trim(dr, mask, maskp, scale)
		g.Name = fmt.Sprintf("U+%04X", r)
		g.Encoding = int(r)
		g.DWidth = adv.Round() * scale
		f.Glyphs = append(f.Glyphs, g)

		f.BoundingBox[0] = max(f.BoundingBox[0], g.BBW)
		f.BoundingBox[2] = min(f.BoundingBox[2], g.BBX)
	}
	return f, nil
}

func inked(mask image.Image, p image.Point) bool {
	a := color.AlphaModel.Convert(mask.At(p.X, p.Y)).(color.Alpha)
	return a.A >= 0x80
}

// trim scans the glyph rectangle dr (relative to the dot at 0,0) and builds
// a glyph covering only the inked pixels.
func trim(dr image.Rectangle, mask image.Image, maskp image.Point, scale int) Glyph {
	at := func(x, y int) bool {
		return inked(mask, maskp.Add(image.Pt(x-dr.Min.X, y-dr.Min.Y)))
	}

	minX, minY, maxX, maxY := dr.Max.X, dr.Max.Y, dr.Min.X-1, dr.Min.Y-1
	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		for x := dr.Min.X; x < dr.Max.X; x++ {
			if !at(x, y) {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if maxX < minX {
		return Glyph{}
	}

	g := Glyph{
		BBW: (maxX - minX + 1) * scale,
		BBH: (maxY - minY + 1) * scale,
		BBX: minX * scale,
		BBY: -(maxY + 1) * scale,
	}
	stride := g.Stride()
	for y := minY; y <= maxY; y++ {
		row := make([]byte, stride)
		for x := minX; x <= maxX; x++ {
			if !at(x, y) {
				continue
			}
			for s := 0; s < scale; s++ {
				bit := (x-minX)*scale + s
				row[bit/8] |= 0x80 >> (bit % 8)
			}
		}
		for s := 0; s < scale; s++ {
			g.Rows = append(g.Rows, append([]byte(nil), row...))
		}
	}
	return g
}
