//go:build tinygo && bootdebug

package app

import (
	"machine"
	"strconv"
	"sync"
	"time"

	"litclock/hal"
	"litclock/internal/layout"
)

var bootDiag struct {
	mu      sync.Mutex
	step    string
	changed time.Time
}

func bootDiagSetStep(msg string) {
	bootDiag.mu.Lock()
	bootDiag.step = msg
	bootDiag.changed = time.Now()
	bootDiag.mu.Unlock()
}

// bootDiagStart reports each boot step once, with the time since power on,
// on the UART logger and on USB CDC until the clock is running.
func bootDiagStart(h hal.HAL) {
	if h == nil {
		return
	}
	l := h.Logger()
	boot := time.Now()

	go func() {
		last := ""
		for {
			bootDiag.mu.Lock()
			step, at := bootDiag.step, bootDiag.changed
			bootDiag.mu.Unlock()

			if step != "" && step != last {
				last = step
				line := "boot: " + step + " +" + strconv.FormatInt(at.Sub(boot).Milliseconds(), 10) + "ms"
				if l != nil {
					l.WriteLineString(line)
				}
				if usb := machine.USBCDC; usb != nil {
					_, _ = usb.Write([]byte(line + "\r\n"))
				}
			}
			if step == "running" {
				return
			}
			time.Sleep(50 * time.Millisecond)
		}
	}()
}

// bootScreen shows msg on the panel. A full e-paper refresh takes seconds, so
// this is only built with the bootdebug tag.
func bootScreen(l *layout.Server, msg string) {
	bootDiagSetStep(msg)
	if l == nil {
		return
	}
	l.ShowMessage([]string{"litclock boot", msg})
}
