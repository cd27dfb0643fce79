package layout

import (
	"strings"

	"litclock/internal/geometry"
	"litclock/internal/quote"
)

// Measure returns the advance of c in pixels.
type Measure func(c byte) int

// WordWrap splits s into lines no wider than limit pixels. Lines break at the
// last space before the limit and always at CR or LF; whitespace at the start
// of a line is dropped. A word wider than limit is never split and gets a line
// of its own.
func WordWrap(s string, limit int, measure Measure) []string {
	var lines []string
	start := skipWhitespace(s, 0)
	for start < len(s) {
		end := wrapper(s, start, limit, measure)
		if end <= start {
			break
		}
		lines = append(lines, s[start:end])
		start = skipWhitespace(s, end)
	}
	return lines
}

func skipWhitespace(s string, from int) int {
	for i := from; i < len(s); i++ {
		if !strings.ContainsRune(geometry.Whitespace, rune(s[i])) {
			return i
		}
	}
	return len(s)
}

// wrapper returns the end of the line starting at pos.
func wrapper(s string, pos, limit int, measure Measure) int {
	last := -1
	w := 0
	for pos < len(s) {
		if w > limit {
			if last >= 0 {
				return last
			}
			return endOfWord(s, pos)
		}
		c := s[pos]
		if quote.IsLineBreak(c) {
			return pos
		}
		if quote.IsDelimiter(c) {
			last = pos
		}
		w += measure(c)
		pos++
	}
	if w > limit && last >= 0 {
		return last
	}
	return len(s)
}

func endOfWord(s string, pos int) int {
	for pos < len(s) && !quote.IsDelimiter(s[pos]) && !quote.IsLineBreak(s[pos]) {
		pos++
	}
	return pos
}
