package usecase

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"classroom-occupancy/internal/schedule"
	"classroom-occupancy/internal/schedule/repository"
	"classroom-occupancy/pkg/log"
)

const defaultHistorySize = 8

// snapshot is one fully recomputed dataset under a version counter.
// Snapshots are immutable after creation.
type snapshot struct {
	version     uint64
	refreshedAt time.Time
	data        schedule.Dataset
}

// implUseCase is the private implementation of schedule.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger

	refreshMu sync.Mutex // at-most-one refresh in flight
	version   atomic.Uint64
	current   atomic.Pointer[snapshot]

	// history keeps recent versions with a TTL, serving version-pinned
	// reads (FilterInput.Version); each refresh adds the new version
	// explicitly rather than relying on implicit memoization.
	history *expirable.LRU[uint64, *snapshot]
}

// New creates a new schedule UseCase implementation.
func New(repo repository.Repository, l log.Logger, historySize int, historyTTL time.Duration) *implUseCase {
	if historySize <= 0 {
		historySize = defaultHistorySize
	}
	return &implUseCase{
		repo:    repo,
		l:       l,
		history: expirable.NewLRU[uint64, *snapshot](historySize, nil, historyTTL),
	}
}
