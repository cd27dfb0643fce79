// Package geometry holds the display dimensions and the clamped coordinate
// types used by every drawing operation.
//
// All arithmetic is unsigned and saturating: nothing built from this package
// can address a pixel outside the display.
package geometry

// Width is the display width in pixels.
const Width uint16 = 296

// Height is the display height in pixels.
const Height uint16 = 128

const (
	// MaxX is the largest horizontal coordinate.
	MaxX = Width - 1
	// MaxYBits is the largest vertical coordinate.
	MaxYBits = Height - 1
	// MaxYByte is the largest vertical byte row.
	MaxYByte = Height/8 - 1

	// FrameBufferSize is the capacity in bytes of a Width x Height 1-bit buffer.
	FrameBufferSize = int(Height) * int(Width) / 8
	// MaxIndex is the largest valid frame buffer index.
	MaxIndex = uint16(FrameBufferSize - 1)

	// SignBit marks values that were negative before an unsigned conversion.
	SignBit uint16 = 1 << 15

	// MaxTextLen is the longest quote, in bytes, that will be laid out.
	MaxTextLen = 1024
	// MaxMsgLen is the number of 8x8 cells that fit on the display.
	MaxMsgLen = int(Height) * int(Width) / (8 * 8)
)

// Text classification bytes.
const (
	CR        byte = '\r'
	LF        byte = '\n'
	Space     byte = ' '
	EOT       byte = 0
	ErrorChar byte = '#'
)

// Whitespace lists every byte skipped at the start of a line.
const Whitespace = "\r\n \x00"

func clamp(v, max uint16) uint16 {
	if v&SignBit != 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// ClampX clamps x to [0, MaxX]. Negative values (sign bit set) become 0.
func ClampX(x uint16) uint16 { return clamp(x, MaxX) }

// ClampYBits clamps y to [0, MaxYBits].
func ClampYBits(y uint16) uint16 { return clamp(y, MaxYBits) }

// ClampYByte clamps a byte row to [0, MaxYByte].
func ClampYByte(y uint16) uint16 { return clamp(y, MaxYByte) }

// ClampIndex clamps a frame buffer index to [0, MaxIndex].
func ClampIndex(i uint16) uint16 { return clamp(i, MaxIndex) }
