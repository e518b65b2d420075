package employee

import (
	"context"
	"encoding/json"
	"iter"
	"time"

	"go-hrms/internal/events"
	"go-hrms/internal/ingest"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// referenceTables maps sheet fields to the master table their values are
// resolved against. Resolution is per-field: a value that cannot be found
// is inserted into its table, so uploads never fail on unknown names.
var referenceTables = []struct {
	field string
	table string
	dest  func(*Employee) **uuid.UUID
}{
	{"department", "departments", func(e *Employee) **uuid.UUID { return &e.DepartmentID }},
	{"sub_department", "sub_departments", func(e *Employee) **uuid.UUID { return &e.SubDepartmentID }},
	{"location", "locations", func(e *Employee) **uuid.UUID { return &e.LocationID }},
	{"designation", "designations", func(e *Employee) **uuid.UUID { return &e.DesignationID }},
	{"business_unit", "business_units", func(e *Employee) **uuid.UUID { return &e.BusinessUnitID }},
	{"legal_entity", "legal_entities", func(e *Employee) **uuid.UUID { return &e.LegalEntityID }},
	{"band", "bands", func(e *Employee) **uuid.UUID { return &e.BandID }},
	{"pay_grade", "pay_grades", func(e *Employee) **uuid.UUID { return &e.PayGradeID }},
	{"cost_center", "cost_centers", func(e *Employee) **uuid.UUID { return &e.CostCenterID }},
	{"leave_plan", "leave_plans", func(e *Employee) **uuid.UUID { return &e.LeavePlanID }},
	{"shift", "shifts", func(e *Employee) **uuid.UUID { return &e.ShiftID }},
	{"weekly_off", "weekly_offs", func(e *Employee) **uuid.UUID { return &e.WeeklyOffID }},
	{"attendance_policy", "attendance_policies", func(e *Employee) **uuid.UUID { return &e.AttendancePolicyID }},
	{"capture_scheme", "capture_schemes", func(e *Employee) **uuid.UUID { return &e.CaptureSchemeID }},
	{"holiday_list", "holiday_lists", func(e *Employee) **uuid.UUID { return &e.HolidayListID }},
	{"expense_policy", "expense_policies", func(e *Employee) **uuid.UUID { return &e.ExpensePolicyID }},
}

// BulkUpsert reconciles every row against the employee table, keyed on
// EmployeeNumber. A row that fails is recorded and the batch continues;
// the returned error reflects only upstream failures, never row content.
func (s *service) BulkUpsert(
	ctx context.Context,
	rows iter.Seq[ingest.Row],
) (ingest.BulkResult, error) {
	rid := contextutil.GetRequestID(ctx)
	var res ingest.BulkResult

	for row := range rows {
		res.Processed++

		number := row.String("employee_number")
		if number == "" {
			res.Skip(row.Line, "missing EmployeeNumber")
			continue
		}

		existing, err := s.repo.FindByEmployeeNumber(ctx, number)
		if err != nil {
			s.logger.Error("bulk upsert lookup failed",
				zap.String("request_id", rid),
				zap.Int("line", row.Line),
				zap.String("employee_number", number),
				zap.Error(err),
			)
			res.Skip(row.Line, "lookup failed: "+err.Error())
			continue
		}

		empl := existing
		if empl == nil {
			empl = &Employee{ID: uuid.New(), EmployeeNumber: number, Status: StatusActive}
		}

		if err := s.applyRow(ctx, empl, row); err != nil {
			s.logger.Warn("bulk upsert row rejected",
				zap.String("request_id", rid),
				zap.Int("line", row.Line),
				zap.String("employee_number", number),
				zap.Error(err),
			)
			res.Skip(row.Line, err.Error())
			continue
		}

		if existing == nil {
			err = s.repo.Create(ctx, empl)
		} else {
			err = s.repo.Update(ctx, empl)
		}
		if err != nil {
			s.logger.Error("bulk upsert persist failed",
				zap.String("request_id", rid),
				zap.Int("line", row.Line),
				zap.String("employee_number", number),
				zap.Error(err),
			)
			res.Skip(row.Line, "persist failed: "+err.Error())
			continue
		}

		if existing == nil {
			res.Inserted++
		} else {
			res.Updated++
		}
	}

	s.publishImported(ctx, rid, res)

	s.logger.Info("bulk upsert finished",
		zap.String("request_id", rid),
		zap.Int("processed", res.Processed),
		zap.Int("inserted", res.Inserted),
		zap.Int("updated", res.Updated),
		zap.Int("skipped", res.Skipped),
	)

	return res, nil
}

// applyRow overwrites entity fields from present sheet columns. Absent
// columns clear the corresponding field: the sheet is the source of truth
// for everything it carries.
func (s *service) applyRow(ctx context.Context, empl *Employee, row ingest.Row) error {
	if v := row.String("first_name"); v != "" {
		empl.FirstName = v
	}
	empl.MiddleName = strPtr(row.String("middle_name"))
	empl.LastName = strPtr(row.String("last_name"))
	empl.Email = strPtr(row.String("email"))
	empl.Phone = strPtr(row.String("phone"))
	empl.Gender = strPtr(row.String("gender"))
	empl.DateOfBirth = row.Date("date_of_birth")
	empl.PAN = strPtr(row.String("pan"))
	empl.Aadhaar = strPtr(row.String("aadhaar"))
	empl.UAN = strPtr(row.String("uan"))
	empl.PFNumber = strPtr(row.String("pf_number"))
	empl.ESINumber = strPtr(row.String("esi_number"))

	empl.AddressLine1 = strPtr(row.String("address_line1"))
	empl.AddressLine2 = strPtr(row.String("address_line2"))
	empl.City = strPtr(row.String("city"))
	empl.State = strPtr(row.String("state"))
	empl.PostalCode = strPtr(row.String("postal_code"))
	empl.Country = strPtr(row.String("country"))

	empl.FatherName = strPtr(row.String("father_name"))
	empl.SpouseName = strPtr(row.String("spouse_name"))
	empl.MaritalStatus = strPtr(row.String("marital_status"))
	empl.EmergencyContactName = strPtr(row.String("emergency_contact_name"))
	empl.EmergencyContactPhone = strPtr(row.String("emergency_contact_phone"))

	if v := row.String("status"); v == StatusActive || v == StatusInactive {
		empl.Status = v
	}
	empl.WorkerType = strPtr(row.String("worker_type"))
	if d := row.Date("joining_date"); d != nil {
		empl.JoiningDate = d
	}
	empl.ExitDate = row.Date("exit_date")
	empl.TerminationReason = strPtr(row.String("termination_reason"))

	for _, ref := range referenceTables {
		id, err := s.resolver.Resolve(ctx, ref.table, row.String(ref.field))
		if err != nil {
			return err
		}
		*ref.dest(empl) = id
	}

	if manager := row.String("reporting_manager"); manager != "" {
		id, err := s.repo.FindIDByEmployeeNumber(ctx, manager)
		if err != nil {
			return err
		}
		empl.ReportingManagerID = id
	} else {
		empl.ReportingManagerID = nil
	}

	empl.LPA = row.Float("lpa")
	empl.BasicPct = row.Float("basic_pct")
	empl.HRAPct = row.Float("hra_pct")
	empl.MedicalAllowance = row.Float("medical_allowance")
	empl.TransportAllowance = row.Float("transport_allowance")
	empl.SpecialAllowance = row.Float("special_allowance")
	empl.PaidBasicMonthly = row.Float("paid_basic_monthly")
	empl.WorkingDays = row.Float("working_days")
	empl.LossOfPayDays = row.Float("loss_of_pay_days")

	return nil
}

func (s *service) publishImported(ctx context.Context, rid string, res ingest.BulkResult) {
	event := events.EmployeeImportedEvent{
		EventType:  "employee.imported",
		RequestID:  rid,
		Processed:  res.Processed,
		Inserted:   res.Inserted,
		Updated:    res.Updated,
		Skipped:    res.Skipped,
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("bulk upsert event marshal failed", zap.Error(err))
		return
	}

	err = s.outbox.Create(ctx, kafka.NewOutboxEvent(
		"employee_import", rid, event.EventType,
		events.EmployeeImportedTopic, rid, payload,
	))
	if err != nil {
		s.logger.Error("bulk upsert outbox write failed", zap.Error(err))
	}
}
