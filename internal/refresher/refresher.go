package refresher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"classroom-occupancy/internal/schedule"
	"classroom-occupancy/pkg/log"
)

// DefaultInterval matches the source sheet's expected update cadence.
const DefaultInterval = 6 * time.Hour

// MinInterval prevents hammering the data source.
const MinInterval = time.Minute

// Refresher re-pulls the data source on a fixed interval. Failed attempts
// are logged and the schedule continues: a flaky source never kills the
// process.
type Refresher struct {
	uc       schedule.UseCase
	interval time.Duration
	l        log.Logger
}

// New creates a periodic refresher.
func New(uc schedule.UseCase, interval time.Duration, l log.Logger) (*Refresher, error) {
	if interval == 0 {
		interval = DefaultInterval
	}
	if interval < MinInterval {
		return nil, fmt.Errorf("refresh interval too short: %v (minimum: %v)", interval, MinInterval)
	}
	return &Refresher{
		uc:       uc,
		interval: interval,
		l:        l,
	}, nil
}

// Run performs an immediate refresh and then ticks until the context is
// cancelled. Blocking: run it in its own goroutine.
func (r *Refresher) Run(ctx context.Context) {
	r.l.Infof(ctx, "refresher: started, interval %v", r.interval)

	r.attempt(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.l.Info(ctx, "refresher: stopped")
			return
		case <-ticker.C:
			r.attempt(ctx)
		}
	}
}

func (r *Refresher) attempt(ctx context.Context) {
	out, err := r.uc.Refresh(ctx)
	switch {
	case errors.Is(err, schedule.ErrRefreshInFlight):
		r.l.Infof(ctx, "refresher: refresh already running, skipping tick")
	case err != nil:
		r.l.Errorf(ctx, "refresher: refresh failed: %v", err)
	default:
		r.l.Infof(ctx, "refresher: run %s published version %d (%d valid / %d invalid)",
			out.RunID, out.Version, out.ValidCount, out.InvalidCount)
	}
}
