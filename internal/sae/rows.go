package sae

import (
	"slices"
	"strings"
)

// Record is one data row of an SAE table. Cells are trimmed and zipped to
// the header by position; when a row is longer than the header the extra
// cells are dropped, and when it is shorter the trailing columns are absent.
type Record struct {
	header Header
	cells  []string
}

func newRecord(h Header, row []string) Record {
	n := min(len(row), len(h.Labels))
	cells := make([]string, n)
	for i := range n {
		cells[i] = strings.TrimSpace(row[i])
	}
	return Record{header: h, cells: cells}
}

// Get returns the value under a header label. A repeated label resolves to
// its last column.
func (r Record) Get(label string) (string, bool) {
	for i := len(r.header.Labels) - 1; i >= 0; i-- {
		if r.header.Labels[i] == label {
			return r.column(i)
		}
	}
	return "", false
}

// Label is the value under the first header label, which names the row.
func (r Record) Label() (string, bool) {
	if len(r.header.Labels) == 0 {
		return "", false
	}
	return r.Get(r.header.Labels[0])
}

// Term is the Preferred Term value.
func (r Record) Term() (string, bool) { return r.column(r.header.term) }

// Placebo is the Placebo count cell.
func (r Record) Placebo() (string, bool) { return r.column(r.header.placebo) }

// Compound is the Compound X count cell.
func (r Record) Compound() (string, bool) { return r.column(r.header.compound) }

// Equal reports whether two records hold the same columns and values.
func (r Record) Equal(o Record) bool {
	return slices.Equal(r.cells, o.cells)
}

func (r Record) column(i int) (string, bool) {
	if i < 0 || i >= len(r.cells) {
		return "", false
	}
	return r.cells[i], true
}

// IsTotal reports whether the record is an aggregate row.
func (r Record) IsTotal() bool {
	label, ok := r.Label()
	return ok && strings.Contains(strings.ToLower(label), "total")
}

// ParseRows converts grid rows into records and picks out the first total
// row. The total row stays in the returned records.
func ParseRows(h Header, rows [][]string) ([]Record, *Record) {
	records := make([]Record, 0, len(rows))
	var total *Record
	for _, row := range rows {
		rec := newRecord(h, row)
		records = append(records, rec)
		if total == nil && rec.IsTotal() {
			t := rec
			total = &t
		}
	}
	return records, total
}
