package hal

import (
	"context"
	"time"
)

type nullNetworkTime struct{}

func (nullNetworkTime) Query(ctx context.Context) (time.Time, error) {
	_ = ctx
	return time.Time{}, ErrNotImplemented
}
