package schedule

import (
	"errors"
	"strings"

	"classroom-occupancy/internal/model"
)

var requiredColumns = []string{ColumnDays, ColumnClassTimes, ColumnHall}

// intervalCleaner canonicalizes human-entered interval text: Unicode dash
// variants become the plain dash, "." becomes ":" (tolerates "9.00-10.30"),
// spaces are stripped.
var intervalCleaner = strings.NewReplacer(
	"–", "-", // en-dash
	"—", "-", // em-dash
	".", ":",
	" ", "",
)

// Normalize applies the interval parser across an entire raw table and
// partitions it into valid rows with derived fields and invalid rows with
// diagnostics. Input order is preserved and no row is ever dropped:
// len(valid) + len(invalid) always equals the input row count.
func Normalize(table model.RawTable) (Dataset, error) {
	var missing []string
	for _, col := range requiredColumns {
		if !table.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return Dataset{Valid: []NormalizedRow{}, Invalid: []InvalidRow{}}, &MissingColumnsError{Columns: missing}
	}

	ds := Dataset{
		Valid:   make([]NormalizedRow, 0, len(table.Rows)),
		Invalid: []InvalidRow{},
	}

	for _, row := range table.Rows {
		days := cleanDays(row.Get(ColumnDays))
		interval := intervalCleaner.Replace(row.Get(ColumnClassTimes))
		hall := row.Get(ColumnHall)

		rng, err := ParseInterval(interval)
		if err != nil {
			var rej *RejectError
			if !errors.As(err, &rej) {
				rej = &RejectError{Reason: ReasonUnparsableFormat}
			}
			ds.Invalid = append(ds.Invalid, InvalidRow{
				Raw:          row.Clone(),
				Days:         days,
				IntervalText: interval,
				Hall:         hall,
				Reason:       rej.Reason,
				Detail:       rej.Error(),
			})
			continue
		}

		ds.Valid = append(ds.Valid, NormalizedRow{
			Raw:             row.Clone(),
			Days:            days,
			IntervalText:    interval,
			Hall:            hall,
			StartMinute:     rng.StartMinute,
			EndMinute:       rng.EndMinute,
			DurationMinutes: rng.DurationMinutes(),
			StartHour:       rng.StartHour(),
			AutoFixed:       rng.AutoFixed,
		})
	}

	return ds, nil
}

// cleanDays canonicalizes "mwf", "M W F" and "MWF" to the single token "MWF".
func cleanDays(s string) string {
	return strings.ToUpper(strings.ReplaceAll(s, " ", ""))
}
