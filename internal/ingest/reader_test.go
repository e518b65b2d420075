package ingest_test

import (
	"bytes"
	"strings"
	"testing"

	"go-hrms/internal/ingest"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestReadSheet_CSV(t *testing.T) {
	csv := "EmployeeNumber,FirstName\nE001,Asha\nE002,Ravi\n"

	cells, err := ingest.ReadSheet(strings.NewReader(csv), "employees.csv")

	assert.NoError(t, err)
	assert.Len(t, cells, 3)
	assert.Equal(t, []string{"EmployeeNumber", "FirstName"}, cells[0])
	assert.Equal(t, []string{"E002", "Ravi"}, cells[2])
}

func TestReadSheet_CSVRaggedRows(t *testing.T) {
	csv := "A,B,C\n1,2\n4,5,6,7\n"

	cells, err := ingest.ReadSheet(strings.NewReader(csv), "sheet.csv")

	assert.NoError(t, err)
	assert.Len(t, cells, 3)
	assert.Len(t, cells[1], 2)
	assert.Len(t, cells[2], 4)
}

func TestReadSheet_XLSX(t *testing.T) {
	f := excelize.NewFile()
	_ = f.SetSheetRow("Sheet1", "A1", &[]any{"EmployeeNumber", "LPA"})
	_ = f.SetSheetRow("Sheet1", "A2", &[]any{"E001", 6.0})

	var buf bytes.Buffer
	assert.NoError(t, f.Write(&buf))

	cells, err := ingest.ReadSheet(&buf, "employees.xlsx")

	assert.NoError(t, err)
	assert.Len(t, cells, 2)
	assert.Equal(t, "E001", cells[1][0])
}

func TestReadSheet_UnsupportedExtension(t *testing.T) {
	_, err := ingest.ReadSheet(strings.NewReader("x"), "employees.pdf")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}
