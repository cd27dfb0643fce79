package layout

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"litclock/hal"
	"litclock/internal/clock"
	"litclock/internal/font"
	"litclock/internal/fonts"
	"litclock/internal/framebuffer"
	"litclock/internal/geometry"
	"litclock/internal/quote"
	"litclock/internal/quotes"
)

type recorder struct {
	clears  int
	updates int
	pixels  map[[2]int]bool
	err     error
}

func newRecorder() *recorder { return &recorder{pixels: map[[2]int]bool{}} }

func (r *recorder) Clear() {
	r.clears++
	r.pixels = map[[2]int]bool{}
}

func (r *recorder) Set(x, y int) { r.pixels[[2]int{x, y}] = true }

func (r *recorder) Update() error {
	r.updates++
	return r.err
}

type logBuf struct {
	lines []string
}

func (l *logBuf) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *logBuf) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func (l *logBuf) contains(sub string) bool {
	for _, s := range l.lines {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

var (
	quoteStyle = Style{Font: fonts.Basic7x13, Bold: fonts.Basic7x13x2, HomeY: 2, RowMargin: 1}
	clockStyle = Style{Font: fonts.Basic7x13x8, HomeX: 8, HomeY: 10}
)

const lateQuote = "At three minutes to midnight the last train left the station without him."

func testServer(t *testing.T, stack quote.AssetStack) (*Server, *recorder, *logBuf) {
	t.Helper()
	d := newRecorder()
	l := &logBuf{}
	s, err := New(Config{
		Quote:  quoteStyle,
		Clock:  clockStyle,
		Quotes: quote.MustNew(stack),
		Driver: d,
		Logger: l,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s, d, l
}

func fixture() quote.AssetStack {
	return quote.Pack([]quote.Entry{{Key: 1437, Text: lateQuote}})
}

func at(h, m int8) clock.DateTime {
	dt := clock.Default()
	dt.Hour, dt.Min = h, m
	return dt
}

func checkFlushed(t *testing.T, s *Server, d *recorder) {
	t.Helper()
	n := 0
	s.FrameBuffer().Each(func(x, y int) {
		n++
		if !d.pixels[[2]int{x, y}] {
			t.Fatalf("pixel (%d,%d) set in the frame buffer but not sent to the driver", x, y)
		}
	})
	if n != len(d.pixels) {
		t.Fatalf("driver got %d pixels, frame buffer has %d", len(d.pixels), n)
	}
	if n == 0 {
		t.Fatalf("nothing was drawn")
	}
}

func TestNew(t *testing.T) {
	if _, err := New(Config{Quotes: quote.MustNew(fixture())}); !errors.Is(err, ErrNoDriver) {
		t.Fatalf("New() without driver error = %v, want ErrNoDriver", err)
	}
	if _, err := New(Config{Driver: newRecorder()}); !errors.Is(err, ErrNoQuotes) {
		t.Fatalf("New() without quotes error = %v, want ErrNoQuotes", err)
	}
}

func TestTimeIsQuote(t *testing.T) {
	s, d, _ := testServer(t, fixture())
	if got := s.TimeIs(at(23, 57)); got != ContentQuote {
		t.Fatalf("TimeIs(23:57) = %v, want quote", got)
	}
	if d.clears != 1 || d.updates != 1 {
		t.Fatalf("clears, updates = %d, %d, want 1, 1", d.clears, d.updates)
	}
	checkFlushed(t, s, d)

	// Two lines of basic7x13: baselines at 2+10 and 2+10+13.
	lines := WordWrap(lateQuote, int(geometry.Width), font.NewServer(fonts.Basic7x13).WidthOf)
	if len(lines) != 2 {
		t.Fatalf("quote wraps to %d lines, want 2", len(lines))
	}
	maxY := 0
	for p := range d.pixels {
		maxY = max(maxY, p[1])
	}
	if maxY < 13 || maxY > 12+13+2 {
		t.Fatalf("lowest pixel at y=%d, want within the second line", maxY)
	}
}

func TestTimeIsClockMatchesTinyfont(t *testing.T) {
	s, d, _ := testServer(t, fixture())
	if got := s.TimeIs(at(12, 1)); got != ContentClock {
		t.Fatalf("TimeIs(12:01) = %v, want clock", got)
	}
	checkFlushed(t, s, d)

	want := framebuffer.New()
	writeLine(want, font.Fonter(fonts.Basic7x13x8), 8, 10+72, "12:01")
	if !bytes.Equal(s.FrameBuffer().Bytes(), want.Bytes()) {
		t.Fatalf("clock face differs from the tinyfont rendering")
	}
}

func TestTimeIsInvalidFallsBackToClock(t *testing.T) {
	s, _, _ := testServer(t, fixture())
	dt := at(23, 57)
	dt.Min = -1
	if got := s.TimeIs(dt); got != ContentClock {
		t.Fatalf("TimeIs(invalid) = %v, want clock", got)
	}
}

func TestCorpusFits(t *testing.T) {
	s, _, l := testServer(t, quotes.Stack)
	for _, a := range quotes.Stack.Assets {
		dt := at(int8(a.Key/60), int8(a.Key%60))
		if got := s.TimeIs(dt); got != ContentQuote {
			t.Fatalf("TimeIs(%s) = %v, want quote", dt.ClockFace(), got)
		}
	}
	if l.contains("do not fit") {
		t.Fatalf("some quotes overflow the display: %q", l.lines)
	}
	if s.Skipped() != 0 {
		t.Fatalf("Skipped() = %d, want 0", s.Skipped())
	}
}

// bearing has '!' with a negative left bearing and '"' whose bitmap lies
// past the end of the table.
var bearing = &font.BdfFont{
	Name:    "bearing",
	Bitmaps: []byte{0x80, 0x80},
	Glyphs: []font.BdfGlyph{
		{Index: 0, BBW: 1, BBH: 2, DWidth: 3, BBX: -2, BBY: 0},
		{Index: 9, BBW: 1, BBH: 2, DWidth: 3, BBX: 0, BBY: 0},
	},
	AsciiStart:   '!',
	AsciiStop:    '"',
	VerticalStep: 3,
}

func TestRenderLineNegativeBearing(t *testing.T) {
	s, d, _ := testServer(t, quote.Pack([]quote.Entry{{Key: 1, Text: "!!"}}))
	s.quoteStyle = Style{Font: bearing}
	s.TimeIs(at(0, 1))

	// The first glyph is moved right by its bearing so it starts at x=0;
	// the second is drawn DWidth further on.
	want := map[[2]int]bool{{0, 0}: true, {0, 1}: true, {3, 0}: true, {3, 1}: true}
	if len(d.pixels) != len(want) {
		t.Fatalf("pixels = %v, want %v", d.pixels, want)
	}
	for p := range want {
		if !d.pixels[p] {
			t.Fatalf("pixel %v not set; got %v", p, d.pixels)
		}
	}
}

func TestRenderSkipsIncompleteGlyphs(t *testing.T) {
	s, d, _ := testServer(t, quote.Pack([]quote.Entry{{Key: 1, Text: "\"!"}}))
	s.quoteStyle = Style{Font: bearing}
	s.TimeIs(at(0, 1))
	if s.Skipped() != 1 {
		t.Fatalf("Skipped() = %d, want 1", s.Skipped())
	}
	// '!' follows at x = 3 + (-2).
	if len(d.pixels) != 2 || !d.pixels[[2]int{1, 0}] {
		t.Fatalf("pixels = %v", d.pixels)
	}
}

func TestRenderDropsOffDisplayPixels(t *testing.T) {
	s, _, _ := testServer(t, fixture())
	s.fs = font.NewServer(bearing)
	s.renderLine("!", 0, 0)
	s.renderLine("!", int(geometry.MaxX)+3, 50)
	n := 0
	s.FrameBuffer().Each(func(x, y int) { n++ })
	if n != 0 {
		t.Fatalf("%d pixels drawn off the display", n)
	}
}

func TestCmd(t *testing.T) {
	s, d, l := testServer(t, fixture())

	s.Cmd(hal.ButtonA)
	if d.updates != 0 || !l.contains("no time yet") {
		t.Fatalf("ButtonA before any time: updates = %d, log = %q", d.updates, l.lines)
	}

	s.TimeIs(at(23, 57))
	s.Cmd(hal.ButtonB)
	if !s.ClockOnly() || s.Content() != ContentClock {
		t.Fatalf("after ButtonB: clock only %t, content %v", s.ClockOnly(), s.Content())
	}
	s.Cmd(hal.ButtonA)
	if s.Content() != ContentClock {
		t.Fatalf("ButtonA in clock only mode showed %v", s.Content())
	}
	s.Cmd(hal.ButtonB)
	if s.ClockOnly() || s.Content() != ContentQuote {
		t.Fatalf("second ButtonB: clock only %t, content %v", s.ClockOnly(), s.Content())
	}

	s.Cmd(hal.ButtonC)
	if s.Content() != ContentTestPattern {
		t.Fatalf("ButtonC showed %v", s.Content())
	}
	fb := s.FrameBuffer()
	for _, p := range []geometry.Point{
		geometry.NewPoint(0, 0),
		geometry.NewPoint(geometry.MaxX, 0),
		geometry.NewPoint(geometry.MaxX, geometry.MaxYBits),
		geometry.NewPoint(0, geometry.MaxYBits),
		geometry.NewPoint(100, 0),
		geometry.NewPoint(0, 64),
	} {
		if !fb.IsSet(p) {
			t.Fatalf("test pattern misses %v", p)
		}
	}
	checkFlushed(t, s, d)
	if !l.contains("button C") {
		t.Fatalf("button not logged: %q", l.lines)
	}
}

func TestShowMessage(t *testing.T) {
	s, d, _ := testServer(t, fixture())
	s.ShowMessage([]string{"Panic", "something went wrong in a place that is far too long to fit on one line"})
	if s.Content() != ContentMessage {
		t.Fatalf("Content() = %v, want message", s.Content())
	}
	checkFlushed(t, s, d)
	// Heading baseline is at 2+20 in the double size font, so the first row
	// of ink sits above y=24; the wrapped body reaches below it.
	maxY := 0
	for p := range d.pixels {
		maxY = max(maxY, p[1])
	}
	if maxY <= 24+13 {
		t.Fatalf("message body not wrapped onto a second line (lowest pixel y=%d)", maxY)
	}
}

func TestUpdateErrorIsLogged(t *testing.T) {
	s, d, l := testServer(t, fixture())
	d.err = errors.New("spi timeout")
	s.TimeIs(at(12, 1))
	if !l.contains("display update: spi timeout") {
		t.Fatalf("update error not logged: %q", l.lines)
	}
}

func TestContentString(t *testing.T) {
	if ContentQuote.String() != "quote" || ContentNone.String() != "none" {
		t.Fatalf("Content strings = %q, %q", ContentQuote, ContentNone)
	}
}
