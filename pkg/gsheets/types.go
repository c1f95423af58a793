package gsheets

// Table is a fetched sheet range: the header row plus data rows, with cell
// order matching the header. Short rows are padded with empty strings.
type Table struct {
	Columns []string
	Rows    [][]string
}
