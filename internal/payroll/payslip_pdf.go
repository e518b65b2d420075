package payroll

import (
	"bytes"
	"context"
	"fmt"
	"strings"
)

// RenderPayslip renders a slip as a single-page PDF. The document is
// built by hand: one page, one Helvetica text block, no external PDF
// dependency for what is a fixed line listing.
func (s *service) RenderPayslip(ctx context.Context, slipID string) ([]byte, error) {
	slip, err := s.findSlip(ctx, slipID)
	if err != nil {
		return nil, err
	}

	run, err := s.repo.FindRunByID(ctx, slip.RunID)
	if err != nil {
		return nil, err
	}

	lines := []string{"Payslip"}
	if run != nil {
		lines = append(lines, fmt.Sprintf("Period: %s (%s)", run.PayrollMonth, run.PayrollType))
	}
	lines = append(lines,
		fmt.Sprintf("Employee: %s", slip.EmployeeID),
		"",
		fmt.Sprintf("Basic: %.2f", slip.Basic),
		fmt.Sprintf("HRA: %.2f", slip.HRA),
		fmt.Sprintf("Medical Allowance: %.2f", slip.MedicalAllowance),
		fmt.Sprintf("Transport Allowance: %.2f", slip.TransportAllowance),
		fmt.Sprintf("Special Allowance: %.2f", slip.SpecialAllowance),
		fmt.Sprintf("Other Earnings: %.2f", slip.OtherEarnings),
		fmt.Sprintf("Gross: %.2f", slip.GrossAmount),
		"",
		fmt.Sprintf("PF (Employee): %.2f", slip.PFEmployee),
		fmt.Sprintf("ESI (Employee): %.2f", slip.ESIEmployee),
		fmt.Sprintf("Other Deductions: %.2f", slip.OtherDeductions),
		fmt.Sprintf("Total Deductions: %.2f", slip.TotalDeductions),
		"",
		fmt.Sprintf("Net Pay: %.2f", slip.NetPay),
	)

	return buildSimplePayslipPDF(lines)
}

func buildSimplePayslipPDF(lines []string) ([]byte, error) {
	if len(lines) == 0 {
		lines = []string{"Payslip"}
	}

	var content strings.Builder
	content.WriteString("BT\n/F1 12 Tf\n14 TL\n50 800 Td\n")
	for i, line := range lines {
		escaped := pdfEscape(line)
		if i == 0 {
			content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
			continue
		}
		content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes(), nil
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}
