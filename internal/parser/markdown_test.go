package parser

import (
	"strings"
	"testing"
)

func TestMarkdownParser_HeadingAndTable(t *testing.T) {
	input := `# Table 14.3.1 Summary of Serious Adverse Events

| Preferred Term | Placebo | Compound X |
| --- | --- | --- |
| Total | 10 | 20 |
| Headache | 2 | 4 |

Some closing text.
`
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "report.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d: %q", len(doc.Paragraphs), doc.Paragraphs)
	}
	if doc.Paragraphs[0] != "Table 14.3.1 Summary of Serious Adverse Events" {
		t.Errorf("unexpected heading text %q", doc.Paragraphs[0])
	}
	if len(doc.Tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(doc.Tables))
	}

	rows := doc.Tables[0].Rows
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows (header + 2), got %d", len(rows))
	}
	want := []string{"Preferred Term", "Placebo", "Compound X"}
	for i, w := range want {
		if rows[0][i] != w {
			t.Errorf("header[%d]: expected %q, got %q", i, w, rows[0][i])
		}
	}
	if rows[2][0] != "Headache" || rows[2][1] != "2" || rows[2][2] != "4" {
		t.Errorf("unexpected data row %q", rows[2])
	}
}

func TestMarkdownParser_NoTables(t *testing.T) {
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader("Just a paragraph.\n\nAnother one."), "plain.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Tables) != 0 {
		t.Errorf("expected 0 tables, got %d", len(doc.Tables))
	}
	if len(doc.Paragraphs) != 2 {
		t.Errorf("expected 2 paragraphs, got %d", len(doc.Paragraphs))
	}
}

func TestMarkdownParser_EmptyInput(t *testing.T) {
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Paragraphs) != 0 || len(doc.Tables) != 0 {
		t.Errorf("expected empty document, got %+v", doc)
	}
}
