package font

// GlyphBits is a row view over a packed glyph bitmap. Rows are Stride bytes
// wide (ceil(Width/8)) and bits are MSB-first, so the view is Stride*8 bits
// wide even though only Width of them belong to the glyph.
type GlyphBits struct {
	Data   []byte
	Width  int
	Height int
	Stride int
}

// Len is the number of bits actually available in Data.
func (b GlyphBits) Len() int { return len(b.Data) * 8 }

// ExpectedBits is the number of bits a complete bitmap of this size holds.
func (b GlyphBits) ExpectedBits() int { return b.Stride * 8 * b.Height }

// Complete reports whether the bitmap holds every row.
func (b GlyphBits) Complete() bool { return b.Len() == b.ExpectedBits() }

// Bit returns bit i of the flattened, row-major view.
func (b GlyphBits) Bit(i int) bool {
	if i < 0 || i >= b.Len() {
		return false
	}
	return b.Data[i/8]&(0x80>>(i%8)) != 0
}

// At returns the bit in column x of row y. Columns up to Stride*8-1 are
// addressable; padding bits are normally zero.
func (b GlyphBits) At(x, y int) bool {
	if x < 0 || y < 0 || x >= b.Stride*8 || y >= b.Height {
		return false
	}
	return b.Bit(y*b.Stride*8 + x)
}

// Bools expands the view into one bool per bit.
func (b GlyphBits) Bools() []bool {
	out := make([]bool, b.Len())
	for i := range out {
		out[i] = b.Bit(i)
	}
	return out
}
