package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Employee is the reconciliation target of bulk upload. EmployeeNumber is
// the immutable business key; every organizational and policy reference is
// nullable because resolution during ingestion is best effort.
type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string    `gorm:"uniqueIndex:uq_employee_number"`

	// Identity
	FirstName   string
	MiddleName  *string
	LastName    *string
	Email       *string `gorm:"index"`
	Phone       *string
	Gender      *string
	DateOfBirth *time.Time `gorm:"type:date"`
	PAN         *string    `gorm:"column:pan"`
	Aadhaar     *string
	UAN         *string `gorm:"column:uan"`
	PFNumber    *string `gorm:"column:pf_number"`
	ESINumber   *string `gorm:"column:esi_number"`

	// Address
	AddressLine1 *string
	AddressLine2 *string
	City         *string
	State        *string
	PostalCode   *string
	Country      *string

	// Family
	FatherName            *string
	SpouseName            *string
	MaritalStatus         *string
	EmergencyContactName  *string
	EmergencyContactPhone *string

	// Employment
	Status            string `gorm:"default:'active';index"`
	WorkerType        *string
	JoiningDate       *time.Time `gorm:"type:date"`
	ExitDate          *time.Time `gorm:"type:date"`
	TerminationReason *string

	// Organizational references (master data)
	DepartmentID       *uuid.UUID `gorm:"type:uuid"`
	SubDepartmentID    *uuid.UUID `gorm:"type:uuid"`
	LocationID         *uuid.UUID `gorm:"type:uuid"`
	DesignationID      *uuid.UUID `gorm:"type:uuid"`
	BusinessUnitID     *uuid.UUID `gorm:"type:uuid"`
	LegalEntityID      *uuid.UUID `gorm:"type:uuid"`
	BandID             *uuid.UUID `gorm:"type:uuid"`
	PayGradeID         *uuid.UUID `gorm:"type:uuid"`
	CostCenterID       *uuid.UUID `gorm:"type:uuid"`
	ReportingManagerID *uuid.UUID `gorm:"type:uuid"` // self reference by employee id

	// Policy references (master data)
	LeavePlanID        *uuid.UUID `gorm:"type:uuid"`
	ShiftID            *uuid.UUID `gorm:"type:uuid"`
	WeeklyOffID        *uuid.UUID `gorm:"type:uuid"`
	AttendancePolicyID *uuid.UUID `gorm:"type:uuid"`
	CaptureSchemeID    *uuid.UUID `gorm:"type:uuid"`
	HolidayListID      *uuid.UUID `gorm:"type:uuid"`
	ExpensePolicyID    *uuid.UUID `gorm:"type:uuid"`

	// Compensation seed fields consumed by payroll derivation
	LPA                *float64 `gorm:"column:lpa"` // annual CTC in lakhs
	BasicPct           *float64
	HRAPct             *float64 `gorm:"column:hra_pct"`
	MedicalAllowance   *float64
	TransportAllowance *float64
	SpecialAllowance   *float64
	PaidBasicMonthly   *float64
	WorkingDays        *float64
	LossOfPayDays      *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
