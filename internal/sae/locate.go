package sae

import (
	"regexp"
	"strings"

	"github.com/dgallion1/saesum/internal/document"
)

// HeadingMarker is the literal text that marks a paragraph as an SAE table heading.
const HeadingMarker = "Summary of Serious Adverse Events"

// Required column labels of an SAE table.
const (
	ColTerm     = "Preferred Term"
	ColPlacebo  = "Placebo"
	ColCompound = "Compound X"
)

var tableNumberRe = regexp.MustCompile(`Table\s*(\d+(?:\.\d+)+)`)

// LocatedTable is an SAE table bound to the heading paragraph that introduced it.
type LocatedTable struct {
	Number *string // Dotted identifier such as "14.3.1"; nil if the heading has none
	Title  string  // Trimmed heading paragraph
	Header Header
	Rows   [][]string // Grid rows after the header row
}

// Header is a validated SAE header row.
type Header struct {
	Labels []string

	term, placebo, compound int
}

// NewHeader trims the labels and resolves the required columns. It reports
// false if any required label is missing. A repeated label resolves to its
// last occurrence.
func NewHeader(cells []string) (Header, bool) {
	h := Header{Labels: make([]string, len(cells)), term: -1, placebo: -1, compound: -1}
	for i, c := range cells {
		label := strings.TrimSpace(c)
		h.Labels[i] = label
		switch label {
		case ColTerm:
			h.term = i
		case ColPlacebo:
			h.placebo = i
		case ColCompound:
			h.compound = i
		}
	}
	if h.term < 0 || h.placebo < 0 || h.compound < 0 {
		return Header{}, false
	}
	return h, true
}

// Locate finds every heading paragraph containing HeadingMarker and binds it
// to the first table in the document whose header carries the required
// columns.
//
// The table scan always starts at the first table, so several headings can
// bind the same table. Headings with no qualifying table are skipped.
func Locate(doc *document.Document) []LocatedTable {
	if doc == nil {
		return nil
	}

	var (
		table   document.Table
		header  Header
		scanned bool
		found   bool
	)

	var out []LocatedTable
	for _, para := range doc.Paragraphs {
		if !strings.Contains(para, HeadingMarker) {
			continue
		}
		if !scanned {
			table, header, found = firstSAETable(doc.Tables)
			scanned = true
		}
		if !found {
			continue
		}
		out = append(out, LocatedTable{
			Number: tableNumber(para),
			Title:  strings.TrimSpace(para),
			Header: header,
			Rows:   table.Body(),
		})
	}
	return out
}

func firstSAETable(tables []document.Table) (document.Table, Header, bool) {
	for _, t := range tables {
		cells, ok := t.HeaderRow()
		if !ok {
			continue
		}
		if h, ok := NewHeader(cells); ok {
			return t, h, true
		}
	}
	return document.Table{}, Header{}, false
}

func tableNumber(para string) *string {
	m := tableNumberRe.FindStringSubmatch(para)
	if m == nil {
		return nil
	}
	n := m[1]
	return &n
}
