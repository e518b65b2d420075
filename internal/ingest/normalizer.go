package ingest

import (
	"iter"
	"strconv"
	"strings"
	"time"
)

// Column-name heuristics deciding how a raw string cell is typed.
var dateNameHints = []string{"date", "_at", "joining", "birth"}

var numericNameHints = []string{
	"amount", "basic", "hra", "allowance", "deduction", "salary", "pay",
	"pf", "esi", "tax", "coupon", "advance", "days", "units", "gross",
	"total", "incentive", "bonus", "reimbursement",
}

// Row is one normalized spreadsheet row. Values are either string or
// float64; date-like cells are normalized to YYYY-MM-DD strings.
type Row struct {
	// Line is the 1-based spreadsheet row number, used for error
	// attribution ("Row N: ...").
	Line int

	values map[string]any // keyed by normalized header name
}

// Get returns the value for a canonical field, consulting the synonym
// table in priority order. Returns nil when no accepted header carried a
// non-blank value.
func (r Row) Get(canonical string) any {
	for _, key := range headerCandidates(canonical) {
		if v, ok := r.values[key]; ok {
			return v
		}
	}
	return nil
}

func (r Row) Has(canonical string) bool {
	return r.Get(canonical) != nil
}

// String returns the trimmed string form of a field, "" when absent.
func (r Row) String(canonical string) string {
	switch v := r.Get(canonical).(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

// Float returns the numeric value of a field, nil when absent or not
// parseable as a number.
func (r Row) Float(canonical string) *float64 {
	switch v := r.Get(canonical).(type) {
	case float64:
		return &v
	case string:
		if f, err := strconv.ParseFloat(stripGrouping(v), 64); err == nil {
			return &f
		}
	}
	return nil
}

// Date returns the field as a calendar date, nil when absent or not a
// recognizable date.
func (r Row) Date(canonical string) *time.Time {
	s := r.String(canonical)
	if s == "" {
		return nil
	}
	if t, ok := parseDate(s); ok {
		return &t
	}
	return nil
}

// Normalize converts raw sheet cells into a lazy sequence of typed rows.
// The first input row is the header. Rows whose every cell is blank are
// dropped; remaining rows keep their original order and spreadsheet line
// numbers.
func Normalize(rows [][]string) iter.Seq[Row] {
	return func(yield func(Row) bool) {
		if len(rows) < 2 {
			return
		}

		headers := make([]string, len(rows[0]))
		for i, h := range rows[0] {
			headers[i] = strings.TrimSpace(h)
		}

		for i, raw := range rows[1:] {
			row := Row{Line: i + 2, values: make(map[string]any, len(headers))}

			for j, header := range headers {
				if header == "" || j >= len(raw) {
					continue
				}
				cell := strings.TrimSpace(raw[j])
				if cell == "" {
					continue
				}
				row.values[normalizeKey(header)] = coerceCell(header, cell)
			}

			if len(row.values) == 0 {
				continue // blank trailing row or duplicated header filler
			}

			if !yield(row) {
				return
			}
		}
	}
}

func coerceCell(header, cell string) any {
	lower := strings.ToLower(header)

	if nameContainsAny(lower, dateNameHints) {
		if t, ok := parseDate(cell); ok {
			return t.Format("2006-01-02")
		}
		return cell
	}

	if nameContainsAny(lower, numericNameHints) {
		if f, err := strconv.ParseFloat(stripGrouping(cell), 64); err == nil {
			return f
		}
		return cell
	}

	return cell
}

func nameContainsAny(name string, hints []string) bool {
	for _, h := range hints {
		if strings.Contains(name, h) {
			return true
		}
	}
	return false
}

func stripGrouping(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ",", "")
}

var genericDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
}

var dayFirstDateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
}

// parseDate tries generic date strings first, then day-first patterns, then
// a spreadsheet numeric date serial.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range genericDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range dayFirstDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 59 {
		// Excel epoch: days since 1899-12-30
		epoch := time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
		return epoch.AddDate(0, 0, int(serial)), true
	}
	return time.Time{}, false
}
