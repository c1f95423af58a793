package repository

import (
	"context"

	"classroom-occupancy/internal/model"
)

// Repository supplies the raw schedule table on demand. Implementations
// must return a fresh snapshot per call: the caller treats it as immutable.
type Repository interface {
	FetchRaw(ctx context.Context) (model.RawTable, error)
}
