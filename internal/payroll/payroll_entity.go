package payroll

import (
	"time"

	"github.com/google/uuid"
)

// PayrollRun is one (month, type) generation bucket. Runs are get-or-create
// and never mutated afterwards; slips accumulate under them.
type PayrollRun struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	PayrollMonth string    `gorm:"uniqueIndex:uq_payroll_run_month_type"`
	PayrollType  string    `gorm:"uniqueIndex:uq_payroll_run_month_type"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PayrollSlip carries the derived or uploaded line items for one employee
// in one run. There is deliberately no uniqueness on (run, employee):
// invoking generation twice for the same run yields two slip sets, and
// corrections go through recalculation rather than replacement.
type PayrollSlip struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	RunID      uuid.UUID `gorm:"type:uuid;index"`
	EmployeeID uuid.UUID `gorm:"type:uuid;index"`

	Basic              float64
	HRA                float64 `gorm:"column:hra"`
	MedicalAllowance   float64
	TransportAllowance float64
	SpecialAllowance   float64
	OtherEarnings      float64
	GrossAmount        float64

	PFEmployee      float64 `gorm:"column:pf_employee"`
	ESIEmployee     float64 `gorm:"column:esi_employee"`
	OtherDeductions float64
	TotalDeductions float64
	NetPay          float64

	WorkingDays float64
	LOPDays     float64 `gorm:"column:lop_days"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
