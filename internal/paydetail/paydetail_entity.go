package paydetail

import (
	"time"

	"github.com/google/uuid"
)

// MergePolicyOverwrite is the only merge behavior of the store: every
// upsert replaces all component columns, including with NULL when the
// incoming row omits a component. Partial patches are not supported.
const MergePolicyOverwrite = "overwrite"

// PayDetail holds the per-employee salary components consumed by slip
// generation. One row per employee.
type PayDetail struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID  `gorm:"type:uuid;uniqueIndex:uq_pay_detail_employee"`

	Basic              *float64
	HRA                *float64 `gorm:"column:hra"`
	MedicalAllowance   *float64
	TransportAllowance *float64
	SpecialAllowance   *float64
	MealCoupons        *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PayDetail) TableName() string {
	return "pay_details"
}
