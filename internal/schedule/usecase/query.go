package usecase

import (
	"context"

	"classroom-occupancy/internal/schedule"
)

// currentSnapshot returns the latest dataset, or ErrNoDataset before the
// first successful refresh.
func (uc *implUseCase) currentSnapshot() (*snapshot, error) {
	snap := uc.current.Load()
	if snap == nil {
		return nil, schedule.ErrNoDataset
	}
	return snap, nil
}

// snapshotAt resolves a version-pinned read from the retained history.
// Version 0 means the current snapshot; older versions are served until
// they age out of the history cache.
func (uc *implUseCase) snapshotAt(version uint64) (*snapshot, error) {
	if version == 0 {
		return uc.currentSnapshot()
	}
	if _, err := uc.currentSnapshot(); err != nil {
		return nil, err
	}
	snap, ok := uc.history.Get(version)
	if !ok {
		return nil, schedule.ErrVersionNotFound
	}
	return snap, nil
}

// Dataset returns the full current dataset snapshot.
func (uc *implUseCase) Dataset(ctx context.Context) (schedule.DatasetOutput, error) {
	snap, err := uc.currentSnapshot()
	if err != nil {
		return schedule.DatasetOutput{}, err
	}
	return schedule.DatasetOutput{
		Version:     snap.version,
		RefreshedAt: snap.refreshedAt,
		Dataset:     snap.data,
	}, nil
}

// ListValid returns the valid partition with optional filters applied.
// A non-zero input.Version reads a retained historical snapshot instead of
// the current one.
func (uc *implUseCase) ListValid(ctx context.Context, input schedule.FilterInput) (schedule.ListValidOutput, error) {
	snap, err := uc.snapshotAt(input.Version)
	if err != nil {
		return schedule.ListValidOutput{}, err
	}

	rows := make([]schedule.NormalizedRow, 0, len(snap.data.Valid))
	for _, row := range snap.data.Valid {
		if input.Hall != "" && row.Hall != input.Hall {
			continue
		}
		if input.Days != "" && row.Days != input.Days {
			continue
		}
		if input.ByStartHour && row.StartHour != input.StartHour {
			continue
		}
		rows = append(rows, row)
	}

	return schedule.ListValidOutput{
		Version: snap.version,
		Rows:    rows,
		Total:   len(rows),
	}, nil
}

// ListInvalid returns the rejected rows with diagnostics.
func (uc *implUseCase) ListInvalid(ctx context.Context) (schedule.ListInvalidOutput, error) {
	snap, err := uc.currentSnapshot()
	if err != nil {
		return schedule.ListInvalidOutput{}, err
	}
	return schedule.ListInvalidOutput{
		Version: snap.version,
		Rows:    snap.data.Invalid,
		Total:   len(snap.data.Invalid),
	}, nil
}
