package http

import (
	"classroom-occupancy/internal/schedule"
	"classroom-occupancy/pkg/response"
)

// --- Request DTOs ---

type listValidReq struct {
	Hall      string `form:"hall"`
	Days      string `form:"days"`
	StartHour int    `form:"start_hour" binding:"omitempty,min=0,max=23"`
	Version   uint64 `form:"version"`

	hasStartHour bool
}

func (r listValidReq) validate() error { return nil }

func (r listValidReq) toInput() schedule.FilterInput {
	return schedule.FilterInput{
		Hall:        r.Hall,
		Days:        r.Days,
		StartHour:   r.StartHour,
		ByStartHour: r.hasStartHour,
		Version:     r.Version,
	}
}

// --- Response DTOs ---

type validRowResp struct {
	Days            string `json:"days"`
	IntervalText    string `json:"interval_text"`
	Hall            string `json:"hall"`
	StartMinute     int    `json:"start_minute"`
	EndMinute       int    `json:"end_minute"`
	DurationMinutes int    `json:"duration_minutes"`
	StartHour       int    `json:"start_hour"`
	AutoFixed       bool   `json:"auto_fixed"`

	Columns map[string]string `json:"columns,omitempty"` // original source columns, verbatim
}

func newValidRowResp(row schedule.NormalizedRow) validRowResp {
	return validRowResp{
		Days:            row.Days,
		IntervalText:    row.IntervalText,
		Hall:            row.Hall,
		StartMinute:     row.StartMinute,
		EndMinute:       row.EndMinute,
		DurationMinutes: row.DurationMinutes,
		StartHour:       row.StartHour,
		AutoFixed:       row.AutoFixed,
		Columns:         row.Raw,
	}
}

type listValidResp struct {
	Version uint64         `json:"version"`
	Total   int            `json:"total"`
	Rows    []validRowResp `json:"rows"`
}

func (h *handler) newListValidResp(out schedule.ListValidOutput) listValidResp {
	rows := make([]validRowResp, len(out.Rows))
	for i, row := range out.Rows {
		rows[i] = newValidRowResp(row)
	}
	return listValidResp{
		Version: out.Version,
		Total:   out.Total,
		Rows:    rows,
	}
}

type invalidRowResp struct {
	IntervalText string `json:"interval_text"`
	Days         string `json:"days"`
	Hall         string `json:"hall"`
	Reason       string `json:"reason"`
	Detail       string `json:"detail"`

	Columns map[string]string `json:"columns,omitempty"`
}

type listInvalidResp struct {
	Version uint64           `json:"version"`
	Total   int              `json:"total"`
	Rows    []invalidRowResp `json:"rows"`
}

func (h *handler) newListInvalidResp(out schedule.ListInvalidOutput) listInvalidResp {
	rows := make([]invalidRowResp, len(out.Rows))
	for i, row := range out.Rows {
		rows[i] = invalidRowResp{
			IntervalText: row.IntervalText,
			Days:         row.Days,
			Hall:         row.Hall,
			Reason:       string(row.Reason),
			Detail:       row.Detail,
			Columns:      row.Raw,
		}
	}
	return listInvalidResp{
		Version: out.Version,
		Total:   out.Total,
		Rows:    rows,
	}
}

type hallCountResp struct {
	Hall  string `json:"hall"`
	Count int    `json:"count"`
}

type hallMinutesResp struct {
	Hall         string `json:"hall"`
	TotalMinutes int    `json:"total_minutes"`
}

type statsResp struct {
	Version            uint64            `json:"version"`
	HallUsage          []hallCountResp   `json:"hall_usage"`
	HallMinutes        []hallMinutesResp `json:"hall_minutes"`
	StartHourHistogram [24]int           `json:"start_hour_histogram"`
}

func (h *handler) newStatsResp(out schedule.StatsOutput) statsResp {
	usage := make([]hallCountResp, len(out.HallUsage))
	for i, u := range out.HallUsage {
		usage[i] = hallCountResp{Hall: u.Hall, Count: u.Count}
	}
	minutes := make([]hallMinutesResp, len(out.HallMinutes))
	for i, m := range out.HallMinutes {
		minutes[i] = hallMinutesResp{Hall: m.Hall, TotalMinutes: m.TotalMinutes}
	}
	return statsResp{
		Version:            out.Version,
		HallUsage:          usage,
		HallMinutes:        minutes,
		StartHourHistogram: out.StartHourHistogram,
	}
}

type refreshResp struct {
	RunID        string            `json:"run_id"`
	Version      uint64            `json:"version"`
	FetchedRows  int               `json:"fetched_rows"`
	ValidCount   int               `json:"valid_count"`
	InvalidCount int               `json:"invalid_count"`
	RefreshedAt  response.DateTime `json:"refreshed_at"`
	TookMs       int64             `json:"took_ms"`
}

func (h *handler) newRefreshResp(out schedule.RefreshOutput) refreshResp {
	return refreshResp{
		RunID:        out.RunID,
		Version:      out.Version,
		FetchedRows:  out.FetchedRows,
		ValidCount:   out.ValidCount,
		InvalidCount: out.InvalidCount,
		RefreshedAt:  response.DateTime(out.RefreshedAt),
		TookMs:       out.Took.Milliseconds(),
	}
}
