package parser

import (
	"errors"
	"testing"
)

func TestForFile_KnownExtensions(t *testing.T) {
	cases := map[string]string{
		"study.docx":  "*parser.DOCXParser",
		"STUDY.DOCX":  "*parser.DOCXParser",
		"report.html": "*parser.HTMLParser",
		"report.htm":  "*parser.HTMLParser",
		"notes.md":    "*parser.MarkdownParser",
	}
	for name, want := range cases {
		p, err := ForFile(name)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if got := typeName(p); got != want {
			t.Errorf("%s: expected %s, got %s", name, want, got)
		}
	}
}

func TestForFile_Unsupported(t *testing.T) {
	_, err := ForFile("scan.pdf")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
	if IsSupportedExtension("scan.pdf") {
		t.Error("expected .pdf to be unsupported")
	}
	if !IsSupportedExtension("study.Docx") {
		t.Error("expected .Docx to be supported")
	}
}

func typeName(p Parser) string {
	switch p.(type) {
	case *DOCXParser:
		return "*parser.DOCXParser"
	case *HTMLParser:
		return "*parser.HTMLParser"
	case *MarkdownParser:
		return "*parser.MarkdownParser"
	}
	return "unknown"
}
