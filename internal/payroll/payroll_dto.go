package payroll

type GeneratePayrollRequest struct {
	PayrollMonth    string `json:"payroll_month" binding:"required"`
	PayrollType     string `json:"payroll_type" binding:"required"`
	IncludeInactive bool   `json:"include_inactive"`
	EmployeeID      string `json:"employee_id" binding:"omitempty,uuid"`
}

type GeneratePayrollResponse struct {
	Message string `json:"message"`
	RunID   string `json:"run_id"`
	Count   int64  `json:"count"`
}

// RecalculateSlipRequest patches named numeric fields on an existing slip.
// Gross, total deductions and net pay are re-derived from the result; they
// cannot be set directly.
type RecalculateSlipRequest struct {
	Basic              *float64 `json:"basic"`
	HRA                *float64 `json:"hra"`
	MedicalAllowance   *float64 `json:"medical_allowance"`
	TransportAllowance *float64 `json:"transport_allowance"`
	SpecialAllowance   *float64 `json:"special_allowance"`
	OtherEarnings      *float64 `json:"other_earnings"`
	PFEmployee         *float64 `json:"pf_employee"`
	ESIEmployee        *float64 `json:"esi_employee"`
	OtherDeductions    *float64 `json:"other_deductions"`
	WorkingDays        *float64 `json:"working_days"`
	LOPDays            *float64 `json:"lop_days"`
}

type PayrollRunResponse struct {
	ID           string `json:"id"`
	PayrollMonth string `json:"payroll_month"`
	PayrollType  string `json:"payroll_type"`
	SlipCount    int64  `json:"slip_count"`
}

type PayrollSlipResponse struct {
	ID         string `json:"id"`
	RunID      string `json:"run_id"`
	EmployeeID string `json:"employee_id"`

	Basic              float64 `json:"basic"`
	HRA                float64 `json:"hra"`
	MedicalAllowance   float64 `json:"medical_allowance"`
	TransportAllowance float64 `json:"transport_allowance"`
	SpecialAllowance   float64 `json:"special_allowance"`
	OtherEarnings      float64 `json:"other_earnings"`
	GrossAmount        float64 `json:"gross_amount"`

	PFEmployee      float64 `json:"pf_employee"`
	ESIEmployee     float64 `json:"esi_employee"`
	OtherDeductions float64 `json:"other_deductions"`
	TotalDeductions float64 `json:"total_deductions"`
	NetPay          float64 `json:"net_pay"`

	WorkingDays float64 `json:"working_days"`
	LOPDays     float64 `json:"lop_days"`
}
