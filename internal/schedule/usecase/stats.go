package usecase

import (
	"context"
	"sort"

	"classroom-occupancy/internal/schedule"
)

// Stats aggregates the valid partition into the occupancy views the display
// layer charts: classes per hall, occupied minutes per hall and a start-hour
// histogram.
func (uc *implUseCase) Stats(ctx context.Context) (schedule.StatsOutput, error) {
	snap, err := uc.currentSnapshot()
	if err != nil {
		return schedule.StatsOutput{}, err
	}

	counts := map[string]int{}
	minutes := map[string]int{}
	var histogram [24]int

	for _, row := range snap.data.Valid {
		counts[row.Hall]++
		minutes[row.Hall] += row.DurationMinutes
		// Lenient parsing admits start hours past 23; those fall outside
		// the clock histogram.
		if row.StartHour >= 0 && row.StartHour < 24 {
			histogram[row.StartHour]++
		}
	}

	usage := make([]schedule.HallCount, 0, len(counts))
	for hall, n := range counts {
		usage = append(usage, schedule.HallCount{Hall: hall, Count: n})
	}
	sort.Slice(usage, func(i, j int) bool {
		if usage[i].Count != usage[j].Count {
			return usage[i].Count > usage[j].Count
		}
		return usage[i].Hall < usage[j].Hall
	})

	totals := make([]schedule.HallMinutes, 0, len(minutes))
	for hall, m := range minutes {
		totals = append(totals, schedule.HallMinutes{Hall: hall, TotalMinutes: m})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Hall < totals[j].Hall
	})

	return schedule.StatsOutput{
		Version:            snap.version,
		HallUsage:          usage,
		HallMinutes:        totals,
		StartHourHistogram: histogram,
	}, nil
}
