// Package dataset loads the compressed Storm Events CSV into memory and
// projects it down to the columns the impact analysis needs.
package dataset

// Frame is an ordered, header-indexed view of the raw CSV: the declared
// column names plus every data row in source order. Cells stay textual until
// the projection step types them against the analysis schema.
type Frame struct {
	Columns []string
	Rows    [][]string

	index map[string]int
}

// NewFrame builds a Frame over the given header and rows.
func NewFrame(columns []string, rows [][]string) *Frame {
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		index[name] = i
	}
	return &Frame{Columns: columns, Rows: rows, index: index}
}

// Column returns the position of a named column and whether it exists.
func (f *Frame) Column(name string) (int, bool) {
	i, ok := f.index[name]
	return i, ok
}

// Len returns the number of data rows.
func (f *Frame) Len() int {
	return len(f.Rows)
}
