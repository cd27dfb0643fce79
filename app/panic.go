package app

import (
	"fmt"
	"strings"
)

// panicScreen logs a recovered panic, shows it on the display and halts the
// clock. It must not panic itself.
func (s *system) panicScreen(v any, stack []byte) {
	s.halted = true

	var trace []string
	for _, line := range strings.Split(string(stack), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			trace = append(trace, line)
		}
	}

	s.logf("litclock panic: %v", v)
	for _, line := range trace {
		s.logf("%s", line)
	}

	lines := []string{"litclock panic", fmt.Sprintf("panic: %v", v)}
	if len(trace) > 0 {
		lines = append(lines, "stack:")
		lines = append(lines, trace...)
	} else {
		lines = append(lines, "stack: unavailable")
	}

	defer func() {
		if r := recover(); r != nil {
			s.logf("panic screen: %v", r)
		}
	}()
	s.layout.ShowMessage(lines)
}
