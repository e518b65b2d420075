package ingest

import "fmt"

// MaxErrors bounds the per-row diagnostics returned to the client; the
// counters still reflect every row.
const MaxErrors = 25

// BulkResult is the outcome of one bulk upload request. Batch endpoints
// always return it with HTTP 200, even when every row failed.
type BulkResult struct {
	Processed int      `json:"processed"`
	Inserted  int      `json:"inserted"`
	Updated   int      `json:"updated"`
	Skipped   int      `json:"skipped"`
	Errors    []string `json:"errors"`
}

// Skip records a skipped row with its spreadsheet line number.
func (r *BulkResult) Skip(line int, reason string) {
	r.Skipped++
	if len(r.Errors) < MaxErrors {
		r.Errors = append(r.Errors, fmt.Sprintf("Row %d: %s", line, reason))
	}
}
