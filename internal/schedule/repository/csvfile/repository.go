package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"classroom-occupancy/internal/model"
	"classroom-occupancy/pkg/log"
)

// Repository reads the raw schedule table from a local CSV snapshot, the
// handoff file a sheet-export job writes. First record is the header.
type Repository struct {
	path string
	l    log.Logger
}

// New creates a CSV file backed schedule repository.
func New(path string, l log.Logger) *Repository {
	return &Repository{path: path, l: l}
}

// FetchRaw reads and parses the CSV file into a header-keyed table.
func (r *Repository) FetchRaw(ctx context.Context) (model.RawTable, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return model.RawTable{}, fmt.Errorf("open csv snapshot: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows, pad below

	records, err := reader.ReadAll()
	if err != nil {
		return model.RawTable{}, fmt.Errorf("parse csv snapshot: %w", err)
	}
	if len(records) == 0 {
		return model.RawTable{}, fmt.Errorf("csv snapshot %s is empty", r.path)
	}

	columns := records[0]
	rows := make([]model.RawRow, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(model.RawRow, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	r.l.Debugf(ctx, "csvfile: loaded %d rows from %s", len(rows), r.path)
	return model.RawTable{Columns: columns, Rows: rows}, nil
}
