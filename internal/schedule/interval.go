package schedule

import (
	"strconv"
	"strings"
)

// nonTimeMarkers flag entries that are deliberately not a time span.
// Checked before any structural parsing: these strings may lack a dash or
// contain digits that look time-like.
var nonTimeMarkers = []string{"ONLINE", "TBA", "N/A", "NA"}

// correctionOffsets is the ordered auto-fix ladder for inverted ranges:
// +12h first (AM/PM digit reused without shifting, "1:00-2:00" meant as
// "13:00-14:00"), then +24h as a second-chance rollover. Each applied
// offset is re-checked against the positive-duration condition.
var correctionOffsets = []int{720, 1440}

// ParseInterval converts one raw interval string into a validated time
// range or a *RejectError. Pure and deterministic: same input, same outcome.
func ParseInterval(text string) (TimeRange, error) {
	compact := strings.ReplaceAll(text, " ", "")
	upper := strings.ToUpper(compact)

	for _, marker := range nonTimeMarkers {
		if strings.Contains(upper, marker) {
			return TimeRange{}, &RejectError{Reason: ReasonNonTimeEntry}
		}
	}

	if !strings.Contains(compact, "-") {
		return TimeRange{}, &RejectError{Reason: ReasonMissingSeparator}
	}

	// Split on the first dash only, so a malformed string with multiple
	// dashes still yields two parts.
	parts := strings.SplitN(compact, "-", 2)

	start, err := toMinutes(parts[0])
	if err != nil {
		return TimeRange{}, &RejectError{Reason: ReasonUnparsableFormat}
	}
	end, err := toMinutes(parts[1])
	if err != nil {
		return TimeRange{}, &RejectError{Reason: ReasonUnparsableFormat}
	}

	fixed := false
	for _, offset := range correctionOffsets {
		if end <= start {
			end += offset
			fixed = true
		}
	}

	duration := end - start
	if duration > MaxDurationMinutes {
		return TimeRange{}, &RejectError{Reason: ReasonExcessiveDuration, Duration: duration}
	}

	return TimeRange{StartMinute: start, EndMinute: end, AutoFixed: fixed}, nil
}

// toMinutes converts "HH:MM" to minutes since midnight. Hour and minute are
// deliberately not range-checked against 24/60: entries like "25:00" pass
// through and nonsense is caught downstream by the duration cap.
func toMinutes(t string) (int, error) {
	hourStr, minuteStr, ok := strings.Cut(t, ":")
	if !ok {
		return 0, &RejectError{Reason: ReasonUnparsableFormat}
	}

	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0, err
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil {
		return 0, err
	}

	return hour*60 + minute, nil
}
