// Package layout turns the current time into a frame: a wrapped quote when the
// corpus has one for the minute, the clock face otherwise.
package layout

import (
	"errors"
	"fmt"

	"litclock/hal"
	"litclock/internal/clock"
	"litclock/internal/font"
	"litclock/internal/framebuffer"
	"litclock/internal/geometry"
	"litclock/internal/quote"
)

var (
	ErrNoDriver = errors.New("layout: no display driver")
	ErrNoQuotes = errors.New("layout: no quote server")
)

// Style places one kind of content on the display. Fonts default to the
// empty font, which renders nothing.
type Style struct {
	Font *font.BdfFont
	// Bold is used for headings (the first line of a message).
	Bold *font.BdfFont

	HomeX      int
	HomeY      int
	TopMargin  int
	LeftMargin int
	OriginX    int
	OriginY    int
	RowMargin  int
}

// Config wires a Server.
type Config struct {
	Quote  Style
	Clock  Style
	Quotes *quote.Server
	Driver hal.DisplayDriver
	Logger hal.Logger
}

// Content is what the last frame showed.
type Content uint8

const (
	ContentNone Content = iota
	ContentQuote
	ContentClock
	ContentMessage
	ContentTestPattern
)

func (c Content) String() string {
	switch c {
	case ContentQuote:
		return "quote"
	case ContentClock:
		return "clock"
	case ContentMessage:
		return "message"
	case ContentTestPattern:
		return "test pattern"
	}
	return "none"
}

// Server owns the frame buffer and renders into it once per tick.
type Server struct {
	quoteStyle Style
	clockStyle Style
	quotes     *quote.Server
	driver     hal.DisplayDriver
	logger     hal.Logger

	fb *framebuffer.FrameBuffer
	fs *font.Server

	now       clock.DateTime
	haveTime  bool
	clockOnly bool
	content   Content
	skipped   int
}

// New returns a layout server drawing through cfg.Driver.
func New(cfg Config) (*Server, error) {
	if cfg.Driver == nil {
		return nil, ErrNoDriver
	}
	if cfg.Quotes == nil {
		return nil, ErrNoQuotes
	}
	return &Server{
		quoteStyle: cfg.Quote,
		clockStyle: cfg.Clock,
		quotes:     cfg.Quotes,
		driver:     cfg.Driver,
		logger:     cfg.Logger,
		fb:         framebuffer.New(),
		fs:         font.NewServer(cfg.Quote.Font),
	}, nil
}

func (s *Server) logf(format string, args ...any) {
	if s.logger == nil {
		return
	}
	s.logger.WriteLineString(fmt.Sprintf(format, args...))
}

// FrameBuffer returns the buffer of the last frame. Callers must not draw
// into it.
func (s *Server) FrameBuffer() *framebuffer.FrameBuffer { return s.fb }

// Content reports what the last frame showed.
func (s *Server) Content() Content { return s.content }

// ClockOnly reports whether quotes are suppressed.
func (s *Server) ClockOnly() bool { return s.clockOnly }

// Skipped returns the number of glyphs dropped so far because their bitmap
// was shorter than their metrics.
func (s *Server) Skipped() int { return s.skipped }

// TimeIs renders the frame for dt.
func (s *Server) TimeIs(dt clock.DateTime) Content {
	s.logf("layout: time is %s", dt.ClockFace())
	s.now, s.haveTime = dt, true
	s.begin()

	s.content = ContentClock
	if !s.clockOnly {
		if q, ok := s.quotes.QuoteFor(dt); ok {
			s.layoutQuote(q)
			s.content = ContentQuote
		}
	}
	if s.content == ContentClock {
		s.layoutClockFace(dt.ClockFace())
	}

	s.flush()
	return s.content
}

// Cmd handles a button press. A redraws the current minute, B toggles
// clock-only mode and C shows the display test pattern.
func (s *Server) Cmd(b hal.Button) {
	switch b {
	case hal.ButtonA:
		s.logf("layout: button %s: refresh", b)
		s.refresh()
	case hal.ButtonB:
		s.clockOnly = !s.clockOnly
		s.logf("layout: button %s: clock only %t", b, s.clockOnly)
		s.refresh()
	case hal.ButtonC:
		s.logf("layout: button %s: test pattern", b)
		s.begin()
		s.fb.TestPattern()
		s.fb.Border()
		s.content = ContentTestPattern
		s.flush()
	default:
		s.logf("layout: unknown button %d", b)
	}
}

func (s *Server) refresh() {
	if !s.haveTime {
		s.logf("layout: no time yet")
		return
	}
	s.TimeIs(s.now)
}

func (s *Server) begin() {
	s.driver.Clear()
	s.fb.Clear()
}

// useFont selects f for the following renders and returns its verticals.
func (s *Server) useFont(f *font.BdfFont) font.Verticals {
	s.fs = font.NewServer(f)
	v, err := s.fs.Verticals()
	if err != nil {
		s.logf("layout: font %s: %v (%s)", s.fs.Name(), err, v)
	}
	return v
}

func (s *Server) layoutQuote(q string) {
	st := s.quoteStyle
	v := s.useFont(st.Font)
	vStep := st.RowMargin + v.VerticalStep

	originY := st.HomeY + st.TopMargin + v.MaxRise
	originX := st.HomeX + st.LeftMargin + st.OriginX

	lines := WordWrap(q, int(geometry.Width)-originX, s.fs.WidthOf)
	for i, line := range lines {
		if originY-v.MaxRise > int(geometry.MaxYBits) {
			s.logf("layout: %d of %d lines do not fit", len(lines)-i, len(lines))
			return
		}
		s.renderLine(line, originX, originY)
		originY += vStep
	}
}

func (s *Server) layoutClockFace(face string) {
	st := s.clockStyle
	v := s.useFont(st.Font)
	originY := st.HomeY + st.TopMargin + st.OriginY + v.MaxRise
	originX := st.HomeX + st.LeftMargin + st.OriginX
	s.renderLine(face, originX, originY)
}

// ShowMessage draws lines on an otherwise blank display: the first line in
// the quote style's bold font, the rest wrapped in its regular font. The
// message is cut to geometry.MaxMsgLen bytes.
func (s *Server) ShowMessage(lines []string) {
	s.begin()
	s.content = ContentMessage

	st := s.quoteStyle
	y := st.HomeY + st.TopMargin
	x := st.HomeX + st.LeftMargin + st.OriginX
	budget := geometry.MaxMsgLen
	for i, line := range lines {
		if budget <= 0 {
			break
		}
		if len(line) > budget {
			line = line[:budget]
		}
		budget -= len(line)

		f := st.Font
		if i == 0 && st.Bold != nil {
			f = st.Bold
		}
		y = s.writeWrapped(f, line, x, y)
	}
	s.flush()
}

// writeWrapped draws text through the tinyfont adapter with its top at y and
// returns the top of the next line.
func (s *Server) writeWrapped(f *font.BdfFont, text string, x, y int) int {
	v := s.useFont(f)
	fonter := font.Fonter(f)
	step := s.quoteStyle.RowMargin + v.VerticalStep
	for _, line := range WordWrap(text, int(geometry.Width)-x, s.fs.WidthOf) {
		if y > int(geometry.MaxYBits) {
			break
		}
		writeLine(s.fb, fonter, x, y+v.MaxRise, line)
		y += step
	}
	return y
}
