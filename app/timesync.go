package app

import (
	"context"
	"errors"
	"time"

	"litclock/hal"
)

// syncRetryDelay is the pause between failed queries of one run.
var syncRetryDelay = 2 * time.Second

// timeSync queries network time off the step loop. At most one run is in
// flight; each run makes up to attempts queries.
type timeSync struct {
	src        hal.NetworkTime
	attempts   int
	timeout    time.Duration
	retryDelay time.Duration

	results chan syncResult
	running bool
}

type syncResult struct {
	t        time.Time
	err      error
	attempts int
}

func newTimeSync(src hal.NetworkTime, attempts int, timeout time.Duration) *timeSync {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &timeSync{
		src:        src,
		attempts:   attempts,
		timeout:    timeout,
		retryDelay: syncRetryDelay,
		results:    make(chan syncResult, 1),
	}
}

// start begins a run unless one is already in flight.
func (ts *timeSync) start() bool {
	if ts.running || ts.src == nil {
		return false
	}
	ts.running = true
	go ts.run()
	return true
}

func (ts *timeSync) run() {
	var (
		err error
		n   int
	)
	for n = 1; n <= ts.attempts; n++ {
		var t time.Time
		ctx, cancel := context.WithTimeout(context.Background(), ts.timeout)
		t, err = ts.src.Query(ctx)
		cancel()
		if err == nil {
			ts.results <- syncResult{t: t, attempts: n}
			return
		}
		if errors.Is(err, hal.ErrNotImplemented) || n == ts.attempts {
			break
		}
		time.Sleep(ts.retryDelay)
	}
	ts.results <- syncResult{err: err, attempts: min(n, ts.attempts)}
}

// poll returns the result of a finished run.
func (ts *timeSync) poll() (syncResult, bool) {
	select {
	case r := <-ts.results:
		ts.running = false
		return r, true
	default:
		return syncResult{}, false
	}
}
