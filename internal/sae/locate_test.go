package sae

import (
	"testing"

	"github.com/dgallion1/saesum/internal/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saeTable(rows ...[]string) document.Table {
	grid := [][]string{{"Preferred Term", "Placebo", "Compound X"}}
	return document.Table{Rows: append(grid, rows...)}
}

func TestLocate_BindsHeadingToTable(t *testing.T) {
	doc := &document.Document{
		Paragraphs: []string{
			"Introduction",
			"  Table 14.3.1 Summary of Serious Adverse Events  ",
		},
		Tables: []document.Table{saeTable([]string{"Headache", "2", "4"})},
	}

	located := Locate(doc)
	require.Len(t, located, 1)

	lt := located[0]
	require.NotNil(t, lt.Number)
	assert.Equal(t, "14.3.1", *lt.Number)
	assert.Equal(t, "Table 14.3.1 Summary of Serious Adverse Events", lt.Title)
	assert.Equal(t, []string{"Preferred Term", "Placebo", "Compound X"}, lt.Header.Labels)
	assert.Equal(t, [][]string{{"Headache", "2", "4"}}, lt.Rows)
}

func TestLocate_NumberAbsent(t *testing.T) {
	doc := &document.Document{
		Paragraphs: []string{"Summary of Serious Adverse Events (Table 7)"},
		Tables:     []document.Table{saeTable()},
	}
	located := Locate(doc)
	require.Len(t, located, 1)
	assert.Nil(t, located[0].Number)
}

func TestLocate_SkipsTablesWithoutRequiredColumns(t *testing.T) {
	doc := &document.Document{
		Paragraphs: []string{"Table 2.1 Summary of Serious Adverse Events"},
		Tables: []document.Table{
			{},
			{Rows: [][]string{{"Preferred Term", "Placebo"}, {"Headache", "1"}}},
			{Rows: [][]string{{" Compound X ", "Preferred Term ", "Placebo", "Notes"}, {"3", "Rash", "1", ""}}},
		},
	}
	located := Locate(doc)
	require.Len(t, located, 1)
	assert.Equal(t, []string{"Compound X", "Preferred Term", "Placebo", "Notes"}, located[0].Header.Labels)
	assert.Equal(t, [][]string{{"3", "Rash", "1", ""}}, located[0].Rows)
}

func TestLocate_EveryHeadingBindsFirstMatchingTable(t *testing.T) {
	first := saeTable([]string{"Headache", "1", "1"})
	second := saeTable([]string{"Nausea", "5", "5"})
	doc := &document.Document{
		Paragraphs: []string{
			"Table 1.1 Summary of Serious Adverse Events",
			"Table 1.2 Summary of Serious Adverse Events",
		},
		Tables: []document.Table{first, second},
	}

	located := Locate(doc)
	require.Len(t, located, 2)
	assert.Equal(t, "1.1", *located[0].Number)
	assert.Equal(t, "1.2", *located[1].Number)
	assert.Equal(t, located[0].Rows, located[1].Rows)
	assert.Equal(t, "Headache", located[1].Rows[0][0])
}

func TestLocate_NoQualifyingTable(t *testing.T) {
	doc := &document.Document{
		Paragraphs: []string{"Summary of Serious Adverse Events"},
		Tables:     []document.Table{{Rows: [][]string{{"Term", "Count"}}}},
	}
	assert.Empty(t, Locate(doc))
}

func TestLocate_HeadingMatchIsCaseSensitive(t *testing.T) {
	doc := &document.Document{
		Paragraphs: []string{"summary of serious adverse events"},
		Tables:     []document.Table{saeTable()},
	}
	assert.Empty(t, Locate(doc))
}

func TestLocate_EmptyDocument(t *testing.T) {
	assert.Empty(t, Locate(&document.Document{}))
	assert.Empty(t, Locate(nil))
}

func TestNewHeader_RepeatedLabelUsesLast(t *testing.T) {
	h, ok := NewHeader([]string{"Preferred Term", "Placebo", "Compound X", "Placebo"})
	require.True(t, ok)
	rec := newRecord(h, []string{"Rash", "1", "2", "9"})
	got, ok := rec.Placebo()
	require.True(t, ok)
	assert.Equal(t, "9", got)
}
