//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
	"time"

	"litclock/internal/geometry"
)

// HostConfig tunes the host HAL.
type HostConfig struct {
	// NTPServer is queried by NetworkTime. Empty disables network time.
	NTPServer  string
	NTPTimeout time.Duration
	// Start, when set, is the wall clock time the clock starts at.
	Start time.Time
}

type hostHAL struct {
	logger  *hostLogger
	panel   *memPanel
	buttons *hostButtons
	clock   *offsetClock
	ntp     NetworkTime
}

// New returns a host HAL implementation with network time disabled.
func New() HAL {
	return newHost(HostConfig{})
}

func newHost(cfg HostConfig) *hostHAL {
	var ntp NetworkTime = nullNetworkTime{}
	if cfg.NTPServer != "" {
		ntp = newNTPTime(cfg.NTPServer, cfg.NTPTimeout)
	}
	clk := &offsetClock{now: time.Now}
	if !cfg.Start.IsZero() {
		clk.Set(cfg.Start)
	}
	return &hostHAL{
		logger:  &hostLogger{w: os.Stdout},
		panel:   newMemPanel(int(geometry.Width), int(geometry.Height)),
		buttons: newHostButtons(),
		clock:   clk,
		ntp:     ntp,
	}
}

func (h *hostHAL) Logger() Logger           { return h.logger }
func (h *hostHAL) Display() DisplayDriver   { return h.panel }
func (h *hostHAL) Buttons() Buttons         { return h.buttons }
func (h *hostHAL) Clock() Clock             { return h.clock }
func (h *hostHAL) NetworkTime() NetworkTime { return h.ntp }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostButtons struct {
	ch chan Button
}

func newHostButtons() *hostButtons {
	return &hostButtons{ch: make(chan Button, 16)}
}

func (b *hostButtons) Events() <-chan Button { return b.ch }

func (b *hostButtons) press(btn Button) {
	select {
	case b.ch <- btn:
	default:
	}
}
