package schedule

import "context"

// UseCase is the schedule domain contract consumed by delivery layers and
// the refresh trigger.
type UseCase interface {
	// Refresh pulls a fresh snapshot from the data source, normalizes it
	// and replaces the current dataset. At most one refresh runs at a time.
	Refresh(ctx context.Context) (RefreshOutput, error)

	// Dataset returns the current dataset snapshot.
	Dataset(ctx context.Context) (DatasetOutput, error)

	// ListValid returns the valid partition, optionally filtered by hall,
	// day token and start hour. A non-zero FilterInput.Version pins the
	// read to a retained snapshot version.
	ListValid(ctx context.Context, input FilterInput) (ListValidOutput, error)

	// ListInvalid returns the rejected rows with their diagnostics.
	ListInvalid(ctx context.Context) (ListInvalidOutput, error)

	// Stats returns occupancy aggregations over the valid partition.
	Stats(ctx context.Context) (StatsOutput, error)
}
