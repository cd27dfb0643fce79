//go:build tinygo && !baremetal

package hal

import (
	"time"

	"litclock/internal/geometry"
)

type tinyGoHostHAL struct {
	logger  *tinyGoHostLogger
	panel   *printPanel
	buttons *tinyGoHostButtons
	clock   *offsetClock
	ntp     NetworkTime
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU pin mapping.
// Every displayed frame is printed as text.
func New() HAL {
	l := &tinyGoHostLogger{}
	return &tinyGoHostHAL{
		logger:  l,
		panel:   &printPanel{memPanel: newMemPanel(int(geometry.Width), int(geometry.Height)), logger: l},
		buttons: &tinyGoHostButtons{ch: make(chan Button)},
		clock:   &offsetClock{now: time.Now},
		ntp:     nullNetworkTime{},
	}
}

func (h *tinyGoHostHAL) Logger() Logger           { return h.logger }
func (h *tinyGoHostHAL) Display() DisplayDriver   { return h.panel }
func (h *tinyGoHostHAL) Buttons() Buttons         { return h.buttons }
func (h *tinyGoHostHAL) Clock() Clock             { return h.clock }
func (h *tinyGoHostHAL) NetworkTime() NetworkTime { return h.ntp }

type printPanel struct {
	*memPanel
	logger Logger
}

func (p *printPanel) Update() error {
	if err := p.memPanel.Update(); err != nil {
		return err
	}
	p.logger.WriteLineString(p.ASCII())
	return nil
}

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}

type tinyGoHostButtons struct {
	ch chan Button
}

func (b *tinyGoHostButtons) Events() <-chan Button { return b.ch }
