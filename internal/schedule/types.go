package schedule

import (
	"time"

	"classroom-occupancy/internal/model"
)

// Required source columns. Matching is case-sensitive and exact — the sheet
// header must carry these names verbatim.
const (
	ColumnDays       = "Days"
	ColumnClassTimes = "Class_Times"
	ColumnHall       = "Hall"
)

// MaxDurationMinutes caps a single class at 5 hours. Anything longer is
// treated as a data-entry error even when both endpoints parsed cleanly.
const MaxDurationMinutes = 300

// --- Domain Model ---

// TimeRange is a parsed class interval in minutes since midnight.
// EndMinute may exceed 1439 when a rollover correction was applied.
type TimeRange struct {
	StartMinute int
	EndMinute   int
	AutoFixed   bool
}

// DurationMinutes returns the interval length in minutes.
func (t TimeRange) DurationMinutes() int {
	return t.EndMinute - t.StartMinute
}

// StartHour returns the hour bucket the class starts in.
func (t TimeRange) StartHour() int {
	return t.StartMinute / 60
}

// NormalizedRow is a valid schedule row with derived time fields attached.
// Created once during normalization and never mutated afterwards.
type NormalizedRow struct {
	Raw model.RawRow // original columns, preserved verbatim

	Days         string // canonical day token, e.g. "MWF"
	IntervalText string // cleaned interval text
	Hall         string

	StartMinute     int
	EndMinute       int
	DurationMinutes int
	StartHour       int
	AutoFixed       bool
}

// InvalidRow is a rejected schedule row annotated with its rejection reason.
type InvalidRow struct {
	Raw model.RawRow

	Days         string
	IntervalText string
	Hall         string

	Reason RejectReason
	Detail string // human-readable message, carries the duration for excessive-duration rejections
}

// Dataset is the exhaustive partition of one raw table: every input row
// lands in exactly one of the two sequences, input order preserved.
type Dataset struct {
	Valid   []NormalizedRow
	Invalid []InvalidRow
}

// --- UseCase Inputs ---

// FilterInput narrows the valid partition. Zero values mean "no filter";
// ByStartHour must be set for StartHour to apply since hour 0 is a real bucket.
type FilterInput struct {
	Hall        string
	Days        string
	StartHour   int
	ByStartHour bool

	// Version pins the read to a retained snapshot version. 0 means the
	// current snapshot.
	Version uint64
}

// --- UseCase Outputs ---

type RefreshOutput struct {
	RunID        string
	Version      uint64
	FetchedRows  int
	ValidCount   int
	InvalidCount int
	RefreshedAt  time.Time
	Took         time.Duration
}

type DatasetOutput struct {
	Version     uint64
	RefreshedAt time.Time
	Dataset     Dataset
}

type ListValidOutput struct {
	Version uint64
	Rows    []NormalizedRow
	Total   int
}

type ListInvalidOutput struct {
	Version uint64
	Rows    []InvalidRow
	Total   int
}

// HallCount is the number of classes held in one hall.
type HallCount struct {
	Hall  string
	Count int
}

// HallMinutes is the total occupied minutes for one hall.
type HallMinutes struct {
	Hall         string
	TotalMinutes int
}

type StatsOutput struct {
	Version            uint64
	HallUsage          []HallCount   // classes per hall, most used first
	HallMinutes        []HallMinutes // occupied minutes per hall, by hall name
	StartHourHistogram [24]int
}
