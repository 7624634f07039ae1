// Package sae locates Serious Adverse Event tables in a loaded document and
// summarizes them as plain-language statements.
package sae

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dgallion1/saesum/internal/document"
	"github.com/dgallion1/saesum/internal/parser"
)

// Result is the summary of one located table. A nil number or title is
// serialized as null.
type Result struct {
	TableNumber *string  `json:"table_number"`
	TableTitle  *string  `json:"table_title"`
	Summary     []string `json:"summary"`
}

// Report wraps the results of one parse, as returned by the upload endpoint.
type Report struct {
	Results []Result `json:"results"`
}

// Summarize runs the locator, row parser and summarizer over a document.
// When no table is located the result is a single entry with no number or
// title and the no-events sentence.
func Summarize(doc *document.Document) []Result {
	located := Locate(doc)
	if len(located) == 0 {
		return []Result{{Summary: []string{NoEventsSentence}}}
	}

	results := make([]Result, 0, len(located))
	for _, lt := range located {
		records, total := ParseRows(lt.Header, lt.Rows)
		title := lt.Title
		results = append(results, Result{
			TableNumber: lt.Number,
			TableTitle:  &title,
			Summary:     Statements(records, total),
		})
	}
	return results
}

// Extract loads a document in the format implied by filename and summarizes it.
// Only load failures are returned as errors.
func Extract(r io.Reader, filename string) ([]Result, error) {
	p, err := parser.ForFile(filename)
	if err != nil {
		return nil, err
	}
	doc, err := p.Parse(r, filename)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	return Summarize(doc), nil
}

// ExtractFile is Extract for a file on disk.
func ExtractFile(path string) ([]Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()
	return Extract(f, filepath.Base(path))
}
