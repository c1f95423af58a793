package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"classroom-occupancy/internal/schedule"
)

// Refresh pulls a fresh raw table, normalizes it and replaces the current
// snapshot. The previous dataset is superseded whole, never merged. A failed
// refresh leaves the previous snapshot in place.
func (uc *implUseCase) Refresh(ctx context.Context) (schedule.RefreshOutput, error) {
	if !uc.refreshMu.TryLock() {
		return schedule.RefreshOutput{}, schedule.ErrRefreshInFlight
	}
	defer uc.refreshMu.Unlock()

	started := time.Now()
	runID := uuid.NewString()

	table, err := uc.repo.FetchRaw(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Refresh FetchRaw: %v", err)
		return schedule.RefreshOutput{}, err
	}

	ds, err := schedule.Normalize(table)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Refresh Normalize: %v", err)
		return schedule.RefreshOutput{}, err
	}

	version := uc.version.Add(1)
	snap := &snapshot{
		version:     version,
		refreshedAt: time.Now(),
		data:        ds,
	}
	uc.history.Add(version, snap)
	uc.current.Store(snap)

	out := schedule.RefreshOutput{
		RunID:        runID,
		Version:      version,
		FetchedRows:  len(table.Rows),
		ValidCount:   len(ds.Valid),
		InvalidCount: len(ds.Invalid),
		RefreshedAt:  snap.refreshedAt,
		Took:         time.Since(started),
	}

	uc.l.Infof(ctx, "uc.Refresh run %s: version %d, %d valid / %d invalid of %d rows in %s",
		runID, version, out.ValidCount, out.InvalidCount, out.FetchedRows, out.Took)
	return out, nil
}
