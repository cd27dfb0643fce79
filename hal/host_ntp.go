//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"

	"github.com/beevik/ntp"
)

type ntpTime struct {
	server  string
	timeout time.Duration
}

func newNTPTime(server string, timeout time.Duration) *ntpTime {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ntpTime{server: server, timeout: timeout}
}

type ntpResult struct {
	resp *ntp.Response
	err  error
}

// Query asks the server for the time and returns the local clock corrected by
// the measured offset.
func (n *ntpTime) Query(ctx context.Context) (time.Time, error) {
	done := make(chan ntpResult, 1)
	go func() {
		resp, err := ntp.QueryWithOptions(n.server, ntp.QueryOptions{Timeout: n.timeout})
		done <- ntpResult{resp: resp, err: err}
	}()

	select {
	case <-ctx.Done():
		return time.Time{}, ctx.Err()
	case r := <-done:
		if r.err != nil {
			return time.Time{}, fmt.Errorf("ntp %s: %w", n.server, r.err)
		}
		if err := r.resp.Validate(); err != nil {
			return time.Time{}, fmt.Errorf("ntp %s: %w", n.server, err)
		}
		return time.Now().Add(r.resp.ClockOffset), nil
	}
}
