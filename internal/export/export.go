// Package export renders a report as a downloadable file.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/saesum/internal/sae"
	"github.com/xuri/excelize/v2"
)

// Format is a download file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// SheetName is the worksheet holding the statements in an XLSX export.
const SheetName = "Summary"

// ParseFormat maps a query value to a Format. Empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatXLSX:
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// Filename is the attachment name for the format.
func (f Format) Filename() string {
	return "sae_summary." + string(f)
}

// ContentType is the MIME type for the format.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/json"
}

// Write renders the report in the given format.
func Write(w io.Writer, f Format, report sae.Report) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, report)
	case FormatXLSX:
		return WriteXLSX(w, report)
	}
	return fmt.Errorf("unknown export format %q", f)
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, report sae.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// WriteXLSX writes one worksheet row per statement.
func WriteXLSX(w io.Writer, report sae.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &[]any{"Table Number", "Table Title", "Statement"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := 2
	for _, res := range report.Results {
		for _, s := range res.Summary {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return err
			}
			values := []any{deref(res.TableNumber), deref(res.TableTitle), s}
			if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
				return fmt.Errorf("write row %d: %w", row, err)
			}
			row++
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
