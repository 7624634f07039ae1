// Package documenttest builds minimal Word packages for tests.
package documenttest

import (
	"archive/zip"
	"bytes"
	"html"
	"strings"
	"testing"
)

const wordNS = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`

// Block is a fragment of WordprocessingML body XML.
type Block string

// Paragraph is a single-run paragraph.
func Paragraph(text string) Block {
	return Block(`<w:p><w:r><w:t xml:space="preserve">` + html.EscapeString(text) + `</w:t></w:r></w:p>`)
}

// Runs is a paragraph around raw run-level XML, for tabs, breaks and
// hyperlinks.
func Runs(xml string) Block {
	return Block("<w:p>" + xml + "</w:p>")
}

// Table is a grid with one single-paragraph cell per value.
func Table(rows ...[]string) Block {
	grid := make([][]Block, 0, len(rows))
	for _, row := range rows {
		cells := make([]Block, 0, len(row))
		for _, cell := range row {
			cells = append(cells, Paragraph(cell))
		}
		grid = append(grid, cells)
	}
	return Grid(grid...)
}

// Grid is a table whose cells hold the given blocks.
func Grid(rows ...[]Block) Block {
	var sb strings.Builder
	sb.WriteString("<w:tbl>")
	for _, row := range rows {
		sb.WriteString("<w:tr>")
		for _, cell := range row {
			sb.WriteString("<w:tc>" + string(cell) + "</w:tc>")
		}
		sb.WriteString("</w:tr>")
	}
	sb.WriteString("</w:tbl>")
	return Block(sb.String())
}

// Cell wraps arbitrary blocks in a one-cell, one-row table.
func Cell(blocks ...Block) Block {
	var sb strings.Builder
	sb.WriteString("<w:tbl><w:tr><w:tc>")
	for _, b := range blocks {
		sb.WriteString(string(b))
	}
	sb.WriteString("</w:tc></w:tr></w:tbl>")
	return Block(sb.String())
}

// DOCX zips a minimal Word package around the given body blocks.
func DOCX(t testing.TB, blocks ...Block) []byte {
	t.Helper()

	var body strings.Builder
	for _, b := range blocks {
		body.WriteString(string(b))
	}

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	files := []struct{ name, data string }{
		{"[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`},
		{"_rels/.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`},
		{"word/_rels/document.xml.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`},
		{"word/document.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document ` + wordNS + `><w:body>` + body.String() + `</w:body></w:document>`},
	}
	for _, f := range files {
		fw, err := w.Create(f.name)
		if err != nil {
			t.Fatalf("create %s: %v", f.name, err)
		}
		if _, err := fw.Write([]byte(f.data)); err != nil {
			t.Fatalf("write %s: %v", f.name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}
