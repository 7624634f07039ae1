package parser

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/saesum/internal/document"
	"github.com/fumiama/go-docx"
)

// DOCXParser handles .docx files.
type DOCXParser struct{}

func (p *DOCXParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	// go-docx needs a ReaderAt+size.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read docx: %w", err)
	}

	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("parse docx %s: %w", filename, err)
	}

	out := &document.Document{}
	for _, item := range doc.Document.Body.Items {
		switch it := item.(type) {
		case *docx.Paragraph:
			out.Paragraphs = append(out.Paragraphs, docxParagraphText(it))
		case *docx.Table:
			out.Tables = append(out.Tables, docxTable(it))
		}
	}
	return out, nil
}

func docxTable(tbl *docx.Table) document.Table {
	var t document.Table
	for _, row := range tbl.TableRows {
		cells := make([]string, 0, len(row.TableCells))
		for _, cell := range row.TableCells {
			cells = append(cells, docxCellText(cell))
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

// docxCellText joins the cell's paragraphs with newlines, the way Word
// presents multi-paragraph cells.
func docxCellText(cell *docx.WTableCell) string {
	parts := make([]string, 0, len(cell.Paragraphs))
	for _, para := range cell.Paragraphs {
		parts = append(parts, docxParagraphText(para))
	}
	return strings.Join(parts, "\n")
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		switch c := child.(type) {
		case *docx.Run:
			docxRunText(&buf, c)
		case *docx.Hyperlink:
			docxRunText(&buf, &c.Run)
		}
	}
	return buf.String()
}

// docxRunText writes a run's text. Tabs and line breaks become "\t" and
// "\n"; page and column breaks contribute nothing.
func docxRunText(buf *strings.Builder, run *docx.Run) {
	for _, rc := range run.Children {
		switch c := rc.(type) {
		case *docx.Text:
			buf.WriteString(c.Text)
		case *docx.Tab:
			buf.WriteByte('\t')
		case *docx.BarterRabbet:
			if c.Type == "" || c.Type == "textWrapping" {
				buf.WriteByte('\n')
			}
		}
	}
}
