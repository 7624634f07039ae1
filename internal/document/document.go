package document

// Document is the loaded form of an uploaded file: its top-level paragraphs
// and tables in source order.
type Document struct {
	Paragraphs []string // Paragraph text, untrimmed
	Tables     []Table
}

// Table is a grid of cell text. Rows may have differing lengths.
type Table struct {
	Rows [][]string
}

// HeaderRow returns the first row of the table, or false if the table is empty.
func (t Table) HeaderRow() ([]string, bool) {
	if len(t.Rows) == 0 {
		return nil, false
	}
	return t.Rows[0], true
}

// Body returns every row after the header row.
func (t Table) Body() [][]string {
	if len(t.Rows) < 2 {
		return nil
	}
	return t.Rows[1:]
}
