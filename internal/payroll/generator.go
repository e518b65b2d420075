package payroll

import (
	"go-hrms/internal/employee"
	"go-hrms/internal/paydetail"
)

// Statutory employee contribution rates, flat and uncapped.
const (
	PFRate  = 0.12
	ESIRate = 0.0175
)

// DefaultBasicPct is the share of monthly CTC treated as basic when the
// employee carries no explicit percentage.
const DefaultBasicPct = 40.0

// lakh is the rupee value of one LPA unit; lpa is annual CTC in lakhs.
const lakh = 100000.0

// ComputeSlip derives one slip from the layered salary sources. Each
// component cascades: explicit monthly figure, then pay-detail override,
// then percentage-of-CTC derivation, then zero. Pure function, no I/O.
func ComputeSlip(empl employee.Employee, detail *paydetail.PayDetail) PayrollSlip {
	basic := computeBasic(empl, detail)

	hra := 0.0
	switch {
	case detail != nil && detail.HRA != nil:
		hra = *detail.HRA
	case empl.HRAPct != nil:
		hra = basic * (*empl.HRAPct) / 100
	}

	medical := overrideOr(detailField(detail, func(d *paydetail.PayDetail) *float64 { return d.MedicalAllowance }), empl.MedicalAllowance)
	transport := overrideOr(detailField(detail, func(d *paydetail.PayDetail) *float64 { return d.TransportAllowance }), empl.TransportAllowance)
	special := overrideOr(detailField(detail, func(d *paydetail.PayDetail) *float64 { return d.SpecialAllowance }), empl.SpecialAllowance)

	gross := basic + hra + medical + transport + special

	pf := basic * PFRate
	esi := gross * ESIRate
	totalDeductions := pf + esi

	slip := PayrollSlip{
		EmployeeID:         empl.ID,
		Basic:              basic,
		HRA:                hra,
		MedicalAllowance:   medical,
		TransportAllowance: transport,
		SpecialAllowance:   special,
		GrossAmount:        gross,
		PFEmployee:         pf,
		ESIEmployee:        esi,
		TotalDeductions:    totalDeductions,
		NetPay:             gross - totalDeductions,
	}

	if empl.WorkingDays != nil {
		slip.WorkingDays = *empl.WorkingDays
	}
	if empl.LossOfPayDays != nil {
		slip.LOPDays = *empl.LossOfPayDays
	}

	return slip
}

func computeBasic(empl employee.Employee, detail *paydetail.PayDetail) float64 {
	if empl.PaidBasicMonthly != nil {
		return *empl.PaidBasicMonthly
	}
	if detail != nil && detail.Basic != nil {
		return *detail.Basic
	}
	if empl.LPA != nil {
		pct := DefaultBasicPct
		if empl.BasicPct != nil {
			pct = *empl.BasicPct
		}
		return (*empl.LPA * lakh / 12) * pct / 100
	}
	return 0
}

// Recompute re-derives the aggregate fields after named components were
// patched. PF and ESI stay as set: recalculation edits them explicitly
// rather than re-applying the statutory rates over corrected figures.
func (s *PayrollSlip) Recompute() {
	s.GrossAmount = s.Basic + s.HRA + s.MedicalAllowance +
		s.TransportAllowance + s.SpecialAllowance + s.OtherEarnings
	s.TotalDeductions = s.PFEmployee + s.ESIEmployee + s.OtherDeductions
	s.NetPay = s.GrossAmount - s.TotalDeductions
}

func detailField(detail *paydetail.PayDetail, pick func(*paydetail.PayDetail) *float64) *float64 {
	if detail == nil {
		return nil
	}
	return pick(detail)
}

func overrideOr(override, fallback *float64) float64 {
	if override != nil {
		return *override
	}
	if fallback != nil {
		return *fallback
	}
	return 0
}
