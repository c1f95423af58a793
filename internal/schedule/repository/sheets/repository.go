package sheets

import (
	"context"
	"fmt"

	"classroom-occupancy/internal/model"
	"classroom-occupancy/pkg/gsheets"
	"classroom-occupancy/pkg/log"
)

// Repository pulls the raw schedule table from a Google Sheet.
type Repository struct {
	client        *gsheets.Client
	spreadsheetID string
	readRange     string
	l             log.Logger
}

// New creates a Google Sheets backed schedule repository.
func New(client *gsheets.Client, spreadsheetID, readRange string, l log.Logger) *Repository {
	return &Repository{
		client:        client,
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
		l:             l,
	}
}

// FetchRaw reads the configured range and maps it to a header-keyed table.
func (r *Repository) FetchRaw(ctx context.Context) (model.RawTable, error) {
	table, err := r.client.FetchTable(ctx, r.spreadsheetID, r.readRange)
	if err != nil {
		return model.RawTable{}, fmt.Errorf("sheets fetch: %w", err)
	}

	rows := make([]model.RawRow, 0, len(table.Rows))
	for _, cells := range table.Rows {
		row := make(model.RawRow, len(table.Columns))
		for i, col := range table.Columns {
			row[col] = cells[i]
		}
		rows = append(rows, row)
	}

	r.l.Debugf(ctx, "sheets: fetched %d rows from %s", len(rows), r.readRange)
	return model.RawTable{Columns: table.Columns, Rows: rows}, nil
}
