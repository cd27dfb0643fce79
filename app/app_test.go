package app

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"litclock/hal"
	"litclock/internal/config"
	"litclock/internal/layout"
	"litclock/internal/quote"
)

type logBuf struct {
	mu    sync.Mutex
	lines []string
}

func (l *logBuf) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}

func (l *logBuf) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *logBuf) contains(sub string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.lines {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

type display struct {
	updates int
}

func (d *display) Clear()        {}
func (d *display) Set(x, y int)  {}
func (d *display) Update() error { d.updates++; return nil }

type fakeClock struct {
	mu    sync.Mutex
	t     time.Time
	panic bool
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.panic {
		panic("rtc on fire")
	}
	return c.t
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

func (c *fakeClock) add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type fakeNTP struct {
	mu    sync.Mutex
	calls int
	t     time.Time
	err   error
}

func (n *fakeNTP) Query(ctx context.Context) (time.Time, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls++
	return n.t, n.err
}

func (n *fakeNTP) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.calls
}

type buttons struct{ ch chan hal.Button }

func (b buttons) Events() <-chan hal.Button { return b.ch }

type fakeHAL struct {
	log     *logBuf
	display *display
	buttons buttons
	clock   *fakeClock
	ntp     *fakeNTP
}

func newFakeHAL(at time.Time) *fakeHAL {
	return &fakeHAL{
		log:     &logBuf{},
		display: &display{},
		buttons: buttons{ch: make(chan hal.Button, 4)},
		clock:   &fakeClock{t: at},
		ntp:     &fakeNTP{err: hal.ErrNotImplemented},
	}
}

func (h *fakeHAL) Logger() hal.Logger           { return h.log }
func (h *fakeHAL) Display() hal.DisplayDriver   { return h.display }
func (h *fakeHAL) Buttons() hal.Buttons         { return h.buttons }
func (h *fakeHAL) Clock() hal.Clock             { return h.clock }
func (h *fakeHAL) NetworkTime() hal.NetworkTime { return h.ntp }

func init() {
	syncRetryDelay = 0
}

func settings() config.Config {
	c := config.Default()
	c.Time.Zone = "UTC"
	return c
}

func testConfig() Config {
	return Config{
		Settings: settings(),
		Quotes:   quote.Pack([]quote.Entry{{Key: 1437, Text: "Three minutes to midnight."}}),
	}
}

func newTestSystem(t *testing.T, h *fakeHAL, cfg Config) *system {
	t.Helper()
	s, err := newSystem(h, cfg)
	if err != nil {
		t.Fatalf("newSystem() error = %v", err)
	}
	return s
}

// waitSync steps until the background sync has been applied.
func waitSync(t *testing.T, s *system) {
	t.Helper()
	for i := 0; i < 500; i++ {
		if s.sync == nil || !s.sync.running {
			return
		}
		if err := s.step(); err != nil {
			t.Fatalf("step() error = %v", err)
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("time sync did not finish")
}

func TestStepRendersOncePerMinute(t *testing.T) {
	h := newFakeHAL(time.Date(2024, 5, 1, 23, 56, 30, 0, time.UTC))
	cfg := testConfig()
	cfg.NoNTP = true
	s := newTestSystem(t, h, cfg)

	for i := 0; i < 3; i++ {
		if err := s.step(); err != nil {
			t.Fatalf("step() error = %v", err)
		}
	}
	if h.display.updates != 1 {
		t.Fatalf("updates = %d, want 1", h.display.updates)
	}
	if s.layout.Content() != layout.ContentClock {
		t.Fatalf("23:56 showed %v, want clock", s.layout.Content())
	}
	if !h.log.contains("clock: ") {
		t.Fatalf("hour alarm at minute 56 not logged: %q", h.log.lines)
	}

	h.clock.add(time.Minute)
	_ = s.step()
	if h.display.updates != 2 || s.layout.Content() != layout.ContentQuote {
		t.Fatalf("after a minute: updates = %d, content = %v", h.display.updates, s.layout.Content())
	}
}

func TestStepHandlesButtons(t *testing.T) {
	h := newFakeHAL(time.Date(2024, 5, 1, 23, 57, 0, 0, time.UTC))
	cfg := testConfig()
	cfg.NoNTP = true
	s := newTestSystem(t, h, cfg)

	h.buttons.ch <- hal.ButtonB
	_ = s.step()
	if !s.layout.ClockOnly() || s.layout.Content() != layout.ContentClock {
		t.Fatalf("ButtonB: clock only %t, content %v", s.layout.ClockOnly(), s.layout.Content())
	}
	h.buttons.ch <- hal.ButtonC
	_ = s.step()
	if s.layout.Content() != layout.ContentTestPattern {
		t.Fatalf("ButtonC showed %v", s.layout.Content())
	}
}

func TestStartupSync(t *testing.T) {
	h := newFakeHAL(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
	want := time.Date(2024, 5, 1, 23, 57, 10, 0, time.UTC)
	h.ntp.t, h.ntp.err = want, nil
	s := newTestSystem(t, h, testConfig())
	waitSync(t, s)

	if got := h.clock.Now(); !got.Equal(want) {
		t.Fatalf("clock = %v, want %v", got, want)
	}
	if !h.log.contains("time: synced") {
		t.Fatalf("sync not logged: %q", h.log.lines)
	}
	_ = s.step()
	if s.layout.Content() != layout.ContentQuote {
		t.Fatalf("after sync showed %v, want the 23:57 quote", s.layout.Content())
	}
}

func TestStartupSyncRetries(t *testing.T) {
	h := newFakeHAL(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	h.ntp.err = errors.New("no route to host")
	s := newTestSystem(t, h, testConfig())
	waitSync(t, s)

	if got := h.ntp.count(); got != 3 {
		t.Fatalf("queries = %d, want 3", got)
	}
	if !h.log.contains("sync failed after 3 attempt(s)") {
		t.Fatalf("failure not logged: %q", h.log.lines)
	}
}

func TestSyncNotImplementedStopsEarly(t *testing.T) {
	h := newFakeHAL(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	s := newTestSystem(t, h, testConfig())
	waitSync(t, s)
	if got := h.ntp.count(); got != 1 {
		t.Fatalf("queries = %d, want 1", got)
	}
}

func TestDailySync(t *testing.T) {
	h := newFakeHAL(time.Date(2024, 5, 1, 2, 1, 0, 0, time.UTC))
	h.ntp.err = errors.New("timeout")
	s := newTestSystem(t, h, testConfig())
	waitSync(t, s)
	if got := h.ntp.count(); got != 3 {
		t.Fatalf("start-up queries = %d, want 3", got)
	}

	h.clock.add(time.Minute)
	_ = s.step()
	if !h.log.contains("time: daily sync") {
		t.Fatalf("daily sync not started: %q", h.log.lines)
	}
	waitSync(t, s)
	if got := h.ntp.count(); got != 6 {
		t.Fatalf("queries = %d, want 6", got)
	}
}

func TestNoNTP(t *testing.T) {
	h := newFakeHAL(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	cfg := testConfig()
	cfg.NoNTP = true
	s := newTestSystem(t, h, cfg)
	_ = s.step()
	if s.sync != nil || h.ntp.count() != 0 {
		t.Fatalf("network time queried with NoNTP")
	}
}

func TestPanicScreen(t *testing.T) {
	h := newFakeHAL(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	cfg := testConfig()
	cfg.NoNTP = true
	s := newTestSystem(t, h, cfg)
	_ = s.step()

	h.clock.panic = true
	if err := s.step(); err != nil {
		t.Fatalf("step() error = %v", err)
	}
	if !s.halted || s.layout.Content() != layout.ContentMessage {
		t.Fatalf("halted %t, content %v", s.halted, s.layout.Content())
	}
	if !h.log.contains("litclock panic: rtc on fire") {
		t.Fatalf("panic not logged: %q", h.log.lines)
	}

	updates := h.display.updates
	_ = s.step()
	if h.display.updates != updates {
		t.Fatalf("halted clock kept drawing")
	}
}

func TestNewWithConfigBadStyle(t *testing.T) {
	cfg := testConfig()
	cfg.Settings.Styles.Clock.Font = "missing"
	step := NewWithConfig(newFakeHAL(time.Now()), cfg)
	if err := step(); !errors.Is(err, config.ErrUnknownFont) {
		t.Fatalf("step() error = %v, want ErrUnknownFont", err)
	}
}

func TestUnknownZoneFallsBackToUTC(t *testing.T) {
	h := newFakeHAL(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	cfg := testConfig()
	cfg.NoNTP = true
	cfg.Settings.Time.Zone = "Nowhere/Special"
	s := newTestSystem(t, h, cfg)
	if s.loc != time.UTC || !h.log.contains("using UTC") {
		t.Fatalf("loc = %v, log = %q", s.loc, h.log.lines)
	}
}
