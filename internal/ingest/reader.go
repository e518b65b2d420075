package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadSheet parses an uploaded spreadsheet into raw string cells. Only the
// first sheet of a workbook is read.
func ReadSheet(r io.Reader, filename string) ([][]string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".csv":
		cr := csv.NewReader(r)
		cr.FieldsPerRecord = -1
		return cr.ReadAll()
	case ".xlsx", ".xlsm":
		f, err := excelize.OpenReader(r)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		sheet := f.GetSheetName(0)
		return f.GetRows(sheet)
	}

	return nil, fmt.Errorf("unsupported file type %q", ext)
}
