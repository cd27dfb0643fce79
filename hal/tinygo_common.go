//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

// pinButtons polls active-low pins and reports presses on the falling edge.
type pinButtons struct {
	ch chan Button
}

func newPinButtons(pins map[machine.Pin]Button) *pinButtons {
	b := &pinButtons{ch: make(chan Button, 8)}
	last := make(map[machine.Pin]bool, len(pins))
	for pin := range pins {
		pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
		last[pin] = true
	}
	go func() {
		ticker := time.NewTicker(20 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			for pin, btn := range pins {
				level := pin.Get()
				if last[pin] && !level {
					select {
					case b.ch <- btn:
					default:
					}
				}
				last[pin] = level
			}
		}
	}()
	return b
}

func (b *pinButtons) Events() <-chan Button { return b.ch }
