package app

import (
	"fmt"
	"time"

	"litclock/hal"
	"litclock/internal/buildinfo"
	"litclock/internal/clock"
	"litclock/internal/config"
	"litclock/internal/layout"
	"litclock/internal/quote"
	"litclock/internal/quotes"
)

type system struct {
	h      hal.HAL
	log    hal.Logger
	layout *layout.Server
	loc    *time.Location
	epoch  clock.Epoch
	sync   *timeSync

	last     clock.DateTime
	rendered bool
	halted   bool
}

type Config struct {
	Settings config.Config
	// Quotes replaces the compiled-in corpus when it has any text.
	Quotes quote.AssetStack
	// NoNTP disables network time even when a server is configured.
	NoNTP bool
}

// New initializes the clock with the default config and returns its step
// function.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{Settings: config.Default()})
}

// Run starts the clock and steps it forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, Config{Settings: config.Default()})
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s, err := newSystem(h, cfg)
	if err != nil {
		return func() error { return err }
	}
	return s.step
}

func RunWithConfig(h hal.HAL, cfg Config) {
	step := NewWithConfig(h, cfg)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for range ticker.C {
		if err := step(); err != nil {
			if l := h.Logger(); l != nil {
				l.WriteLineString(err.Error())
			}
			select {}
		}
	}
}

func newSystem(h hal.HAL, cfg Config) (*system, error) {
	bootDiagStart(h)
	s := &system{h: h, log: h.Logger()}

	bootDiagSetStep("config")
	loc, err := cfg.Settings.Location()
	if err != nil {
		s.logf("%v; using UTC", err)
		loc = time.UTC
	}
	s.loc = loc

	quoteStyle, err := cfg.Settings.Styles.Quote.Resolve()
	if err != nil {
		return nil, fmt.Errorf("app: quote style: %w", err)
	}
	clockStyle, err := cfg.Settings.Styles.Clock.Resolve()
	if err != nil {
		return nil, fmt.Errorf("app: clock style: %w", err)
	}

	bootDiagSetStep("quotes")
	stack := cfg.Quotes
	if len(stack.Text) == 0 {
		stack = quotes.Stack
	}
	qs := quote.MustNew(stack)

	bootDiagSetStep("layout")
	s.layout, err = layout.New(layout.Config{
		Quote:  quoteStyle,
		Clock:  clockStyle,
		Quotes: qs,
		Driver: h.Display(),
		Logger: s.log,
	})
	if err != nil {
		return nil, err
	}
	bootScreen(s.layout, "starting")

	start := clock.FromTime(h.Clock().Now().In(loc))
	s.epoch = clock.NewEpoch(start, loc)
	s.logf("litclock %s: %d quotes, started %s %s", buildinfo.Long(), qs.Len(), start, loc)

	if t := cfg.Settings.Time; !cfg.NoNTP && t.NTPServer != "" && t.SyncAttempts > 0 {
		s.sync = newTimeSync(h.NetworkTime(), t.SyncAttempts, t.NTPTimeout)
		s.sync.start()
	}
	bootDiagSetStep("running")
	return s, nil
}

func (s *system) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}

// step runs one tick: apply a finished time sync, redraw on a new minute,
// fire alarms and handle button presses.
func (s *system) step() error {
	if s.halted {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			s.panicScreen(r, captureStack())
		}
	}()

	s.applySync()

	dt := clock.FromTime(s.h.Clock().Now().In(s.loc))
	if !s.rendered || dt.Min != s.last.Min || dt.Hour != s.last.Hour || dt.Day != s.last.Day {
		s.rendered, s.last = true, dt
		s.layout.TimeIs(dt)
		s.alarms(dt)
	}

	s.buttons()
	return nil
}

func (s *system) alarms(dt clock.DateTime) {
	if dt.Matches(clock.HourAlarm()) {
		up, _ := s.epoch.Elapsed(dt)
		s.logf("clock: %s, up %s", dt, up)
	}
	if dt.Matches(clock.DayAlarm()) && s.sync != nil {
		if s.sync.start() {
			s.logf("time: daily sync")
		}
	}
}

func (s *system) buttons() {
	b := s.h.Buttons()
	if b == nil {
		return
	}
	ch := b.Events()
	if ch == nil {
		return
	}
	for {
		select {
		case btn := <-ch:
			s.layout.Cmd(btn)
		default:
			return
		}
	}
}

func (s *system) applySync() {
	if s.sync == nil {
		return
	}
	r, ok := s.sync.poll()
	if !ok {
		return
	}
	if r.err != nil {
		s.logf("time: sync failed after %d attempt(s): %v", r.attempts, r.err)
		return
	}
	c := s.h.Clock()
	offset := r.t.Sub(c.Now())
	c.Set(r.t)
	s.logf("time: synced to %s (offset %s)", r.t.In(s.loc).Format(time.DateTime), offset.Round(time.Millisecond))
}
