package schedule

import (
	"errors"
	"fmt"
	"strings"
)

// RejectReason classifies why a single row was excluded from the valid set.
type RejectReason string

const (
	ReasonNonTimeEntry      RejectReason = "non_time_entry"
	ReasonMissingSeparator  RejectReason = "missing_separator"
	ReasonUnparsableFormat  RejectReason = "unparsable_format"
	ReasonExcessiveDuration RejectReason = "excessive_duration"
)

// RejectError is a per-row, recoverable rejection. It never aborts
// processing of the remaining rows.
type RejectError struct {
	Reason   RejectReason
	Duration int // computed duration, set for ReasonExcessiveDuration
}

func (e *RejectError) Error() string {
	switch e.Reason {
	case ReasonNonTimeEntry:
		return "non-time entry (ONLINE/TBA)"
	case ReasonMissingSeparator:
		return "missing dash separator"
	case ReasonExcessiveDuration:
		return fmt.Sprintf("duration too long (%d min)", e.Duration)
	default:
		return "bad time format"
	}
}

// MissingColumnsError fails an entire normalization run when the source
// table lacks one or more required columns.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "missing required columns: " + strings.Join(e.Columns, ", ")
}

var (
	// ErrRefreshInFlight is returned when a refresh is requested while
	// another one is still running.
	ErrRefreshInFlight = errors.New("refresh already in progress")

	// ErrNoDataset is returned by read operations before the first
	// successful refresh.
	ErrNoDataset = errors.New("no dataset loaded yet")

	// ErrVersionNotFound is returned for version-pinned reads when the
	// requested snapshot is no longer retained.
	ErrVersionNotFound = errors.New("snapshot version not retained")
)
