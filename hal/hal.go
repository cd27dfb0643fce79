package hal

import (
	"context"
	"errors"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// DisplayDriver is a 1-bit panel. Set marks a pixel as ink in the pending
// frame; Update makes the pending frame visible. Coordinates outside the panel
// are ignored.
type DisplayDriver interface {
	Clear()
	Set(x, y int)
	Update() error
}

// Clock is the real-time clock.
type Clock interface {
	Now() time.Time
	Set(t time.Time)
}

// NetworkTime fetches the current time from the network.
type NetworkTime interface {
	Query(ctx context.Context) (time.Time, error)
}

// Button identifies one of the three front panel buttons.
type Button uint8

const (
	ButtonA Button = iota + 1
	ButtonB
	ButtonC
)

func (b Button) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case ButtonC:
		return "C"
	}
	return "?"
}

// Buttons provides button presses (best-effort on each platform).
type Buttons interface {
	Events() <-chan Button
}

// HAL provides the only contact point between the clock and the outside world.
type HAL interface {
	Logger() Logger
	Display() DisplayDriver
	Buttons() Buttons
	Clock() Clock
	NetworkTime() NetworkTime
}
