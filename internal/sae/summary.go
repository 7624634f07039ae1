package sae

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NoEventsSentence is the whole summary of a table with no countable events.
const NoEventsSentence = "No serious adverse events were reported."

// armTotals holds the participant totals from the total row. Both arms are
// available together or not at all.
type armTotals struct {
	placebo, compound int
	ok                bool
}

func totalsFrom(total *Record) armTotals {
	if total == nil {
		return armTotals{}
	}
	p, ok := atoiField(total.Placebo)
	if !ok {
		return armTotals{}
	}
	c, ok := atoiField(total.Compound)
	if !ok {
		return armTotals{}
	}
	return armTotals{placebo: p, compound: c, ok: true}
}

// Statements builds the summary sentences for one table. The total row, and
// any row equal to it, is excluded from the per-term rows.
func Statements(records []Record, total *Record) []string {
	rows := make([]Record, 0, len(records))
	for _, r := range records {
		if total != nil && r.Equal(*total) {
			continue
		}
		rows = append(rows, r)
	}

	totals := totalsFrom(total)

	events := 0
	for _, r := range rows {
		p, c, ok := digitCounts(r)
		if !ok {
			continue
		}
		// A row whose counts would overflow the sum is left out like a
		// non-digit row.
		n, ok := addCount(p, c)
		if !ok {
			continue
		}
		if n, ok = addCount(events, n); ok {
			events = n
		}
	}
	if events <= 0 {
		return []string{NoEventsSentence}
	}

	lower := cases.Lower(language.Und)
	out := []string{fmt.Sprintf("There were %d total serious adverse events reported.", events)}
	for _, r := range rows {
		p, ok := atoiField(r.Placebo)
		if !ok {
			continue
		}
		c, ok := atoiField(r.Compound)
		if !ok {
			continue
		}
		term, _ := r.Term()
		term = lower.String(term)

		if totals.ok && totals.placebo > 0 && p > 0 {
			out = append(out, fmt.Sprintf("%s%% of %s participants experienced %s.", Percent(p, totals.placebo), ColPlacebo, term))
		}
		if totals.ok && totals.compound > 0 && c > 0 {
			out = append(out, fmt.Sprintf("%s%% of %s participants experienced %s.", Percent(c, totals.compound), ColCompound, term))
		}
	}
	return out
}

// Percent returns count/total as a percentage with one decimal place. The
// quotient is exact and ties round half to even, so 12.25 gives "12.2".
func Percent(count, total int) string {
	q := decimal.NewFromInt(int64(count)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total)))
	return q.StringFixedBank(1)
}

// digitCounts returns the row's two counts when both cells are plain digit
// strings. Only such rows count toward the event total.
func digitCounts(r Record) (int, int, bool) {
	ps, ok := r.Placebo()
	if !ok || !isDigits(ps) {
		return 0, 0, false
	}
	cs, ok := r.Compound()
	if !ok || !isDigits(cs) {
		return 0, 0, false
	}
	p, err := strconv.Atoi(ps)
	if err != nil {
		return 0, 0, false
	}
	c, err := strconv.Atoi(cs)
	if err != nil {
		return 0, 0, false
	}
	return p, c, true
}

// addCount adds two non-negative counts, reporting false on overflow.
func addCount(a, b int) (int, bool) {
	if b > math.MaxInt-a {
		return 0, false
	}
	return a + b, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func atoiField(get func() (string, bool)) (int, bool) {
	s, ok := get()
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
