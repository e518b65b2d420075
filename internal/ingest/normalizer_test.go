package ingest_test

import (
	"testing"

	"go-hrms/internal/ingest"

	"github.com/stretchr/testify/assert"
)

func collect(rows [][]string) []ingest.Row {
	var out []ingest.Row
	for row := range ingest.Normalize(rows) {
		out = append(out, row)
	}
	return out
}

func TestNormalize_BlankRowsDropped(t *testing.T) {
	rows := collect([][]string{
		{"EmployeeNumber", "FirstName"},
		{"E001", "Asha"},
		{"", "  "},
		{"E002", "Ravi"},
	})

	assert.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, 4, rows[1].Line)
	assert.Equal(t, "E001", rows[0].String("employee_number"))
	assert.Equal(t, "E002", rows[1].String("employee_number"))
}

func TestNormalize_HeaderSynonyms(t *testing.T) {
	rows := collect([][]string{
		{"EmpNo", "JobTitle", "DOJ", "LOP Days"},
		{"E010", "Engineer", "2024-02-01", "1.5"},
	})

	assert.Len(t, rows, 1)
	row := rows[0]

	assert.Equal(t, "E010", row.String("employee_number"))
	assert.Equal(t, "Engineer", row.String("designation"))

	date := row.Date("joining_date")
	if assert.NotNil(t, date) {
		assert.Equal(t, "2024-02-01", date.Format("2006-01-02"))
	}

	lop := row.Float("loss_of_pay_days")
	if assert.NotNil(t, lop) {
		assert.Equal(t, 1.5, *lop)
	}
}

func TestNormalize_DayFirstDates(t *testing.T) {
	rows := collect([][]string{
		{"EmployeeNumber", "DateOfBirth", "JoiningDate"},
		{"E001", "15/08/1991", "01-04-2023"},
	})

	row := rows[0]
	dob := row.Date("date_of_birth")
	if assert.NotNil(t, dob) {
		assert.Equal(t, "1991-08-15", dob.Format("2006-01-02"))
	}
	doj := row.Date("joining_date")
	if assert.NotNil(t, doj) {
		assert.Equal(t, "2023-04-01", doj.Format("2006-01-02"))
	}
}

func TestNormalize_ExcelSerialDates(t *testing.T) {
	// 45292 is 2024-01-01 against the 1899-12-30 epoch
	rows := collect([][]string{
		{"EmployeeNumber", "JoiningDate"},
		{"E001", "45292"},
	})

	date := rows[0].Date("joining_date")
	if assert.NotNil(t, date) {
		assert.Equal(t, "2024-01-01", date.Format("2006-01-02"))
	}
}

func TestNormalize_NumericColumnsStripGrouping(t *testing.T) {
	rows := collect([][]string{
		{"EmployeeNumber", "LPA", "Basic Pct", "Remarks"},
		{"E001", "1,20,000", "40", "1,234"},
	})

	row := rows[0]
	lpa := row.Float("lpa")
	if assert.NotNil(t, lpa) {
		assert.Equal(t, 120000.0, *lpa)
	}

	pct := row.Float("basic_pct")
	if assert.NotNil(t, pct) {
		assert.Equal(t, 40.0, *pct)
	}

	// Remarks is not a numeric-hinted column, value stays a string
	assert.Equal(t, "1,234", row.String("remarks"))
}

func TestNormalize_UnparseableNumericPassesThrough(t *testing.T) {
	rows := collect([][]string{
		{"EmployeeNumber", "Basic"},
		{"E001", "N/A"},
	})

	row := rows[0]
	assert.Nil(t, row.Float("basic"))
	assert.Equal(t, "N/A", row.String("basic"))
}

func TestNormalize_NoDataRows(t *testing.T) {
	assert.Empty(t, collect([][]string{{"EmployeeNumber"}}))
	assert.Empty(t, collect(nil))
}

func TestBulkResult_ErrorBound(t *testing.T) {
	var res ingest.BulkResult
	for i := 0; i < ingest.MaxErrors+10; i++ {
		res.Skip(i+2, "missing EmployeeNumber")
	}

	assert.Equal(t, ingest.MaxErrors+10, res.Skipped)
	assert.Len(t, res.Errors, ingest.MaxErrors)
	assert.Equal(t, "Row 2: missing EmployeeNumber", res.Errors[0])
}
