package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"iter"
	"time"

	"go-hrms/internal/bootstrap"
	"go-hrms/internal/employee"
	"go-hrms/internal/events"
	"go-hrms/internal/ingest"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/paydetail"
	payrollerrors "go-hrms/internal/payroll/errors"
	"go-hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, req GeneratePayrollRequest) (GeneratePayrollResponse, error)
	UploadSlips(ctx context.Context, rows iter.Seq[ingest.Row]) (ingest.BulkResult, error)
	ListRuns(ctx context.Context) ([]PayrollRunResponse, error)
	ListSlipsByRun(ctx context.Context, runID string) ([]PayrollSlipResponse, error)
	GetSlip(ctx context.Context, slipID string) (PayrollSlipResponse, error)
	Recalculate(ctx context.Context, slipID string, req RecalculateSlipRequest) (PayrollSlipResponse, error)
	RenderPayslip(ctx context.Context, slipID string) ([]byte, error)
	RequestPayslip(ctx context.Context, slipID string) error
}

type service struct {
	db            *sql.DB
	repo          Repository
	employeeRepo  employee.Repository
	paydetailRepo paydetail.Repository
	outbox        kafka.OutboxRepository
	audit         bootstrap.AuditLogger
	logger        *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	paydetailRepo paydetail.Repository,
	outboxRepo kafka.OutboxRepository,
	audit bootstrap.AuditLogger,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:            db,
		repo:          repo,
		employeeRepo:  employeeRepo,
		paydetailRepo: paydetailRepo,
		outbox:        outboxRepo,
		audit:         audit,
		logger:        l,
	}
}

// Generate computes one slip per scoped employee for the (month, type)
// run. Per-employee failures are logged and skipped; only run-level
// failures surface as request errors. The returned count is re-queried
// from the slip store, so it tolerates earlier partial runs.
func (s *service) Generate(
	ctx context.Context,
	req GeneratePayrollRequest,
) (GeneratePayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Info("payroll generation requested",
		zap.String("request_id", rid),
		zap.String("payroll_month", req.PayrollMonth),
		zap.String("payroll_type", req.PayrollType),
		zap.Bool("include_inactive", req.IncludeInactive),
	)

	run, err := s.repo.GetOrCreateRun(ctx, req.PayrollMonth, req.PayrollType)
	if err != nil {
		s.logger.Error("payroll run get-or-create failed", zap.String("request_id", rid), zap.Error(err))
		return GeneratePayrollResponse{}, payrollerrors.ErrRunCreateFailed
	}

	empls, err := s.scopedEmployees(ctx, req)
	if err != nil {
		s.logger.Error("payroll scope query failed", zap.String("request_id", rid), zap.Error(err))
		return GeneratePayrollResponse{}, err
	}

	for _, empl := range empls {
		if err := s.generateFor(ctx, run, empl); err != nil {
			s.logger.Warn("payroll slip skipped",
				zap.String("request_id", rid),
				zap.String("run_id", run.ID.String()),
				zap.String("employee_number", empl.EmployeeNumber),
				zap.Error(err),
			)
		}
	}

	count, err := s.repo.CountSlipsByRun(ctx, run.ID)
	if err != nil {
		s.logger.Error("payroll slip count failed", zap.String("request_id", rid), zap.Error(err))
		return GeneratePayrollResponse{}, err
	}

	s.publishRunCompleted(ctx, rid, run, count)

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "payroll.generate",
		Message: fmt.Sprintf("payroll generated for %s/%s", req.PayrollMonth, req.PayrollType),
		Meta: map[string]any{
			"run_id":     run.ID.String(),
			"slip_count": count,
			"actor":      contextutil.GetUserID(ctx),
		},
	})

	return GeneratePayrollResponse{
		Message: "payroll generated",
		RunID:   run.ID.String(),
		Count:   count,
	}, nil
}

func (s *service) scopedEmployees(
	ctx context.Context,
	req GeneratePayrollRequest,
) ([]employee.Employee, error) {
	if req.EmployeeID != "" {
		empl, err := s.employeeRepo.FindByID(ctx, req.EmployeeID)
		if err != nil {
			return nil, err
		}
		return []employee.Employee{*empl}, nil
	}
	return s.employeeRepo.FindForPayroll(ctx, req.IncludeInactive)
}

func (s *service) generateFor(ctx context.Context, run *PayrollRun, empl employee.Employee) error {
	detail, err := s.paydetailRepo.FindByEmployeeID(ctx, empl.ID)
	if err != nil {
		return err
	}

	slip := ComputeSlip(empl, detail)
	slip.ID = uuid.New()
	slip.RunID = run.ID

	return s.repo.CreateSlip(ctx, &slip)
}

// UploadSlips ingests a payroll sheet: one row is one slip with values
// taken verbatim, the employee's pay detail overwritten from the row's
// override columns first. Rows missing employee_number, payroll_month or
// payroll_type, or naming an unknown employee, are skipped and recorded.
func (s *service) UploadSlips(
	ctx context.Context,
	rows iter.Seq[ingest.Row],
) (ingest.BulkResult, error) {
	rid := contextutil.GetRequestID(ctx)
	var res ingest.BulkResult

	// get-or-create once per distinct (month, type) seen in the sheet
	runs := map[string]*PayrollRun{}

	for row := range rows {
		res.Processed++

		number := row.String("employee_number")
		if number == "" {
			res.Skip(row.Line, "missing EmployeeNumber")
			continue
		}
		month := row.String("payroll_month")
		payrollType := row.String("payroll_type")
		if month == "" || payrollType == "" {
			res.Skip(row.Line, "missing payroll_month or payroll_type")
			continue
		}

		empl, err := s.employeeRepo.FindByEmployeeNumber(ctx, number)
		if err != nil {
			res.Skip(row.Line, "employee lookup failed: "+err.Error())
			continue
		}
		if empl == nil {
			res.Skip(row.Line, "unknown EmployeeNumber "+number)
			continue
		}

		run, ok := runs[month+"|"+payrollType]
		if !ok {
			run, err = s.repo.GetOrCreateRun(ctx, month, payrollType)
			if err != nil {
				res.Skip(row.Line, "run lookup failed: "+err.Error())
				continue
			}
			runs[month+"|"+payrollType] = run
		}

		detail := paydetail.PayDetail{
			EmployeeID:         empl.ID,
			Basic:              row.Float("basic"),
			HRA:                row.Float("hra"),
			MedicalAllowance:   row.Float("medical_allowance"),
			TransportAllowance: row.Float("transport_allowance"),
			SpecialAllowance:   row.Float("special_allowance"),
			MealCoupons:        row.Float("meal_coupons"),
		}
		if err := s.paydetailRepo.Upsert(ctx, empl.ID, detail); err != nil {
			res.Skip(row.Line, "pay detail upsert failed: "+err.Error())
			continue
		}

		slip := slipFromRow(row, run.ID, empl.ID)
		if err := s.repo.CreateSlip(ctx, &slip); err != nil {
			res.Skip(row.Line, "slip insert failed: "+err.Error())
			continue
		}

		res.Inserted++
	}

	s.logger.Info("payroll upload finished",
		zap.String("request_id", rid),
		zap.Int("processed", res.Processed),
		zap.Int("inserted", res.Inserted),
		zap.Int("skipped", res.Skipped),
	)

	return res, nil
}

// slipFromRow maps sheet columns 1:1 onto slip fields, no derivation.
func slipFromRow(row ingest.Row, runID, employeeID uuid.UUID) PayrollSlip {
	f := func(name string) float64 {
		if v := row.Float(name); v != nil {
			return *v
		}
		return 0
	}

	return PayrollSlip{
		ID:                 uuid.New(),
		RunID:              runID,
		EmployeeID:         employeeID,
		Basic:              f("basic"),
		HRA:                f("hra"),
		MedicalAllowance:   f("medical_allowance"),
		TransportAllowance: f("transport_allowance"),
		SpecialAllowance:   f("special_allowance"),
		OtherEarnings:      f("other_earnings"),
		GrossAmount:        f("gross_amount"),
		PFEmployee:         f("pf_employee"),
		ESIEmployee:        f("esi_employee"),
		OtherDeductions:    f("other_deductions"),
		TotalDeductions:    f("total_deductions"),
		NetPay:             f("net_pay"),
		WorkingDays:        f("working_days"),
		LOPDays:            f("loss_of_pay_days"),
	}
}

func (s *service) ListRuns(ctx context.Context) ([]PayrollRunResponse, error) {
	runs, err := s.repo.FindRuns(ctx)
	if err != nil {
		s.logger.Error("list payroll runs failed", zap.Error(err))
		return nil, err
	}

	res := make([]PayrollRunResponse, len(runs))
	for i, run := range runs {
		count, err := s.repo.CountSlipsByRun(ctx, run.ID)
		if err != nil {
			return nil, err
		}
		res[i] = PayrollRunResponse{
			ID:           run.ID.String(),
			PayrollMonth: run.PayrollMonth,
			PayrollType:  run.PayrollType,
			SlipCount:    count,
		}
	}
	return res, nil
}

// ListSlipsByRun returns a run's slips. Callers with the employee role
// only see slips attached to their own employee record.
func (s *service) ListSlipsByRun(ctx context.Context, runID string) ([]PayrollSlipResponse, error) {
	id, err := uuid.Parse(runID)
	if err != nil {
		return nil, payrollerrors.ErrRunNotFound
	}

	run, err := s.repo.FindRunByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, payrollerrors.ErrRunNotFound
	}

	slips, err := s.repo.FindSlipsByRun(ctx, id)
	if err != nil {
		s.logger.Error("list slips failed", zap.String("run_id", runID), zap.Error(err))
		return nil, err
	}

	if contextutil.GetRole(ctx) == "employee" {
		own := contextutil.GetEmployeeID(ctx)
		scoped := slips[:0]
		for _, slip := range slips {
			if slip.EmployeeID.String() == own {
				scoped = append(scoped, slip)
			}
		}
		slips = scoped
	}

	res := make([]PayrollSlipResponse, len(slips))
	for i, slip := range slips {
		res[i] = mapSlipToResponse(slip)
	}
	return res, nil
}

// GetSlip returns a slip. Callers with the employee role may only fetch
// slips attached to their own employee record.
func (s *service) GetSlip(ctx context.Context, slipID string) (PayrollSlipResponse, error) {
	slip, err := s.findSlip(ctx, slipID)
	if err != nil {
		return PayrollSlipResponse{}, err
	}

	if contextutil.GetRole(ctx) == "employee" {
		if contextutil.GetEmployeeID(ctx) != slip.EmployeeID.String() {
			return PayrollSlipResponse{}, payrollerrors.ErrSlipForbidden
		}
	}

	return mapSlipToResponse(*slip), nil
}

func (s *service) Recalculate(
	ctx context.Context,
	slipID string,
	req RecalculateSlipRequest,
) (PayrollSlipResponse, error) {
	slip, err := s.findSlip(ctx, slipID)
	if err != nil {
		return PayrollSlipResponse{}, err
	}

	patch := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	patch(&slip.Basic, req.Basic)
	patch(&slip.HRA, req.HRA)
	patch(&slip.MedicalAllowance, req.MedicalAllowance)
	patch(&slip.TransportAllowance, req.TransportAllowance)
	patch(&slip.SpecialAllowance, req.SpecialAllowance)
	patch(&slip.OtherEarnings, req.OtherEarnings)
	patch(&slip.PFEmployee, req.PFEmployee)
	patch(&slip.ESIEmployee, req.ESIEmployee)
	patch(&slip.OtherDeductions, req.OtherDeductions)
	patch(&slip.WorkingDays, req.WorkingDays)
	patch(&slip.LOPDays, req.LOPDays)

	slip.Recompute()

	if err := s.repo.UpdateSlip(ctx, slip); err != nil {
		s.logger.Error("slip recalculation failed", zap.String("slip_id", slipID), zap.Error(err))
		return PayrollSlipResponse{}, err
	}

	s.logger.Info("slip recalculated", zap.String("slip_id", slipID))
	return mapSlipToResponse(*slip), nil
}

// RequestPayslip queues a slip for asynchronous rendering. The outbox
// worker hands the event to the payslip consumer.
func (s *service) RequestPayslip(ctx context.Context, slipID string) error {
	slip, err := s.findSlip(ctx, slipID)
	if err != nil {
		return err
	}

	if contextutil.GetRole(ctx) == "employee" {
		if contextutil.GetEmployeeID(ctx) != slip.EmployeeID.String() {
			return payrollerrors.ErrSlipForbidden
		}
	}

	event := events.PayslipRequestedEvent{
		EventType:   "payroll.payslip.requested",
		SlipID:      slip.ID.String(),
		RequestedBy: contextutil.GetUserID(ctx),
		OccurredAt:  time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = s.outbox.Create(ctx, kafka.NewOutboxEvent(
		"payroll_slip", slip.ID.String(), event.EventType,
		events.PayslipRequestedTopic, contextutil.GetRequestID(ctx), payload,
	))
	if err != nil {
		s.logger.Error("payslip request outbox write failed",
			zap.String("slip_id", slipID),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("payslip render queued", zap.String("slip_id", slipID))
	return nil
}

func (s *service) findSlip(ctx context.Context, slipID string) (*PayrollSlip, error) {
	id, err := uuid.Parse(slipID)
	if err != nil {
		return nil, payrollerrors.ErrInvalidSlipID
	}

	slip, err := s.repo.FindSlipByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if slip == nil {
		return nil, payrollerrors.ErrSlipNotFound
	}
	return slip, nil
}

func (s *service) publishRunCompleted(
	ctx context.Context,
	rid string,
	run *PayrollRun,
	count int64,
) {
	event := events.PayrollRunCompletedEvent{
		EventType:    "payroll.run.completed",
		RequestID:    rid,
		RunID:        run.ID.String(),
		PayrollMonth: run.PayrollMonth,
		PayrollType:  run.PayrollType,
		SlipCount:    count,
		OccurredAt:   time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("run completed event marshal failed", zap.Error(err))
		return
	}

	err = s.outbox.Create(ctx, kafka.NewOutboxEvent(
		"payroll_run", run.ID.String(), event.EventType,
		events.PayrollRunCompletedTopic, rid, payload,
	))
	if err != nil {
		s.logger.Error("run completed outbox write failed", zap.Error(err))
	}
}

func mapSlipToResponse(slip PayrollSlip) PayrollSlipResponse {
	return PayrollSlipResponse{
		ID:                 slip.ID.String(),
		RunID:              slip.RunID.String(),
		EmployeeID:         slip.EmployeeID.String(),
		Basic:              slip.Basic,
		HRA:                slip.HRA,
		MedicalAllowance:   slip.MedicalAllowance,
		TransportAllowance: slip.TransportAllowance,
		SpecialAllowance:   slip.SpecialAllowance,
		OtherEarnings:      slip.OtherEarnings,
		GrossAmount:        slip.GrossAmount,
		PFEmployee:         slip.PFEmployee,
		ESIEmployee:        slip.ESIEmployee,
		OtherDeductions:    slip.OtherDeductions,
		TotalDeductions:    slip.TotalDeductions,
		NetPay:             slip.NetPay,
		WorkingDays:        slip.WorkingDays,
		LOPDays:            slip.LOPDays,
	}
}
