package bench

import (
	"fmt"
	"io"
	"strings"
)

// Columns of the report header, in order.
var Columns = []string{"Graph type", "Vertices", "Edges", "MST weight", "Time (ms)", "Notes"}

// Report writes the tab-separated benchmark table.
type Report struct {
	w io.Writer
}

// NewReport returns a Report writing to w.
func NewReport(w io.Writer) *Report {
	return &Report{w: w}
}

// WriteHeader writes the column names.
func (r *Report) WriteHeader() error {
	_, err := fmt.Fprintln(r.w, strings.Join(Columns, "\t"))
	return err
}

// WriteRow writes one result row.
func (r *Report) WriteRow(res Result) error {
	_, err := fmt.Fprintf(r.w, "%s\t%d\t%d\t%d\t%d\t%s\n",
		res.Label, res.Vertices, res.Edges, res.TotalWeight, res.Elapsed.Milliseconds(), res.Note)
	return err
}
