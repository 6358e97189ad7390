package store

// Sheet is one worksheet of the report workbook: a fixed header row plus data
// rows in write order. Cell values are string, int64, float64 or bool.
//
// A sheet with zero rows is still written with its header; an empty table is
// valid report output.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]any

	// ColorColumn optionally names a header column whose cells hold hex color
	// codes; the writer fills those cells with their own color.
	ColorColumn string
}

// ColumnIndex returns the zero-based position of the named header column, or
// -1 when the sheet has no such column.
func (s Sheet) ColumnIndex(name string) int {
	for i, h := range s.Header {
		if h == name {
			return i
		}
	}
	return -1
}
