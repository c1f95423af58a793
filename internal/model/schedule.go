package model

// RawRow is one row of the source table, keyed by column header.
// Rows are read-only inputs: normalization never mutates them.
type RawRow map[string]string

// Get returns the value for a column, or "" when the column is absent.
func (r RawRow) Get(column string) string {
	return r[column]
}

// Clone returns a shallow copy so derived rows can carry the original
// columns without aliasing the source snapshot.
func (r RawRow) Clone() RawRow {
	out := make(RawRow, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// RawTable is an immutable snapshot of the source sheet: the header row
// in source order plus every data row keyed by header.
type RawTable struct {
	Columns []string
	Rows    []RawRow
}

// HasColumn reports whether the table header contains the exact column name.
// Column matching is case-sensitive throughout the service.
func (t RawTable) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}
