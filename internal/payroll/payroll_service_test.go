package payroll_test

import (
	"context"
	"errors"
	"testing"

	"go-hrms/internal/bootstrap"
	"go-hrms/internal/employee"
	employeeMock "go-hrms/internal/employee/mock"
	"go-hrms/internal/events"
	"go-hrms/internal/ingest"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/paydetail"
	paydetailMock "go-hrms/internal/paydetail/mock"
	"go-hrms/internal/payroll"
	payrollerrors "go-hrms/internal/payroll/errors"
	payrollMock "go-hrms/internal/payroll/mock"
	kafkaMock "go-hrms/internal/messaging/kafka/mock"
	"go-hrms/internal/shared/contextutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	service      payroll.Service
	repo         *payrollMock.MockRepository
	employeeRepo *employeeMock.MockRepository
	detailRepo   *paydetailMock.MockRepository
	outbox       *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, _, _ := sqlmock.New()
	t.Cleanup(func() { db.Close() })

	repo := payrollMock.NewMockRepository(ctrl)
	employeeRepo := employeeMock.NewMockRepository(ctrl)
	detailRepo := paydetailMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := payroll.NewService(
		db, repo, employeeRepo, detailRepo, outboxRepo,
		bootstrap.NewStdoutAuditLogger(),
	)

	return &serviceDeps{
		service:      svc,
		repo:         repo,
		employeeRepo: employeeRepo,
		detailRepo:   detailRepo,
		outbox:       outboxRepo,
	}
}

func normalizedRows(cells [][]string) func(func(ingest.Row) bool) {
	return ingest.Normalize(cells)
}

func TestPayrollService_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("zero eligible employees returns count 0", func(t *testing.T) {
		deps := setupServiceTest(t)
		run := &payroll.PayrollRun{ID: uuid.New(), PayrollMonth: "2024-05", PayrollType: "regular"}

		deps.repo.EXPECT().GetOrCreateRun(ctx, "2024-05", "regular").Return(run, nil)
		deps.employeeRepo.EXPECT().FindForPayroll(ctx, false).Return(nil, nil)
		deps.repo.EXPECT().CountSlipsByRun(ctx, run.ID).Return(int64(0), nil)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.Generate(ctx, payroll.GeneratePayrollRequest{
			PayrollMonth: "2024-05",
			PayrollType:  "regular",
		})

		assert.NoError(t, err)
		assert.Equal(t, run.ID.String(), resp.RunID)
		assert.Equal(t, int64(0), resp.Count)
	})

	t.Run("derives and persists one slip per employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		run := &payroll.PayrollRun{ID: uuid.New(), PayrollMonth: "2024-05", PayrollType: "regular"}
		empl := employee.Employee{ID: uuid.New(), EmployeeNumber: "E001", LPA: f(6.0)}

		deps.repo.EXPECT().GetOrCreateRun(ctx, "2024-05", "regular").Return(run, nil)
		deps.employeeRepo.EXPECT().FindForPayroll(ctx, false).
			Return([]employee.Employee{empl}, nil)
		deps.detailRepo.EXPECT().FindByEmployeeID(ctx, empl.ID).Return(nil, nil)
		deps.repo.EXPECT().CreateSlip(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, slip *payroll.PayrollSlip) error {
				assert.Equal(t, run.ID, slip.RunID)
				assert.Equal(t, empl.ID, slip.EmployeeID)
				assert.InDelta(t, 20000.0, slip.Basic, 0.001)
				assert.InDelta(t, 2400.0, slip.PFEmployee, 0.001)
				return nil
			})
		deps.repo.EXPECT().CountSlipsByRun(ctx, run.ID).Return(int64(1), nil)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.Generate(ctx, payroll.GeneratePayrollRequest{
			PayrollMonth: "2024-05",
			PayrollType:  "regular",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), resp.Count)
	})

	t.Run("per-employee failure skips and continues", func(t *testing.T) {
		deps := setupServiceTest(t)
		run := &payroll.PayrollRun{ID: uuid.New()}
		first := employee.Employee{ID: uuid.New(), EmployeeNumber: "E001"}
		second := employee.Employee{ID: uuid.New(), EmployeeNumber: "E002"}

		deps.repo.EXPECT().GetOrCreateRun(ctx, "2024-05", "regular").Return(run, nil)
		deps.employeeRepo.EXPECT().FindForPayroll(ctx, false).
			Return([]employee.Employee{first, second}, nil)
		deps.detailRepo.EXPECT().FindByEmployeeID(ctx, first.ID).
			Return(nil, errors.New("connection reset"))
		deps.detailRepo.EXPECT().FindByEmployeeID(ctx, second.ID).Return(nil, nil)
		deps.repo.EXPECT().CreateSlip(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().CountSlipsByRun(ctx, run.ID).Return(int64(1), nil)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.Generate(ctx, payroll.GeneratePayrollRequest{
			PayrollMonth: "2024-05",
			PayrollType:  "regular",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), resp.Count)
	})

	t.Run("second generation for same run accumulates a second slip set", func(t *testing.T) {
		deps := setupServiceTest(t)
		run := &payroll.PayrollRun{ID: uuid.New()}
		empl := employee.Employee{ID: uuid.New(), EmployeeNumber: "E001", PaidBasicMonthly: f(20000)}

		deps.repo.EXPECT().GetOrCreateRun(ctx, "2024-05", "regular").Return(run, nil).Times(2)
		deps.employeeRepo.EXPECT().FindForPayroll(ctx, false).
			Return([]employee.Employee{empl}, nil).Times(2)
		deps.detailRepo.EXPECT().FindByEmployeeID(ctx, empl.ID).Return(nil, nil).Times(2)

		persisted := 0
		deps.repo.EXPECT().CreateSlip(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *payroll.PayrollSlip) error {
				persisted++
				return nil
			}).Times(2)
		deps.repo.EXPECT().CountSlipsByRun(ctx, run.ID).
			DoAndReturn(func(_ context.Context, _ uuid.UUID) (int64, error) {
				return int64(persisted), nil
			}).Times(2)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(2)

		req := payroll.GeneratePayrollRequest{PayrollMonth: "2024-05", PayrollType: "regular"}

		first, err := deps.service.Generate(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), first.Count)

		second, err := deps.service.Generate(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), second.Count)
	})

	t.Run("run creation failure aborts", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().GetOrCreateRun(ctx, "2024-05", "regular").
			Return(nil, errors.New("db down"))

		_, err := deps.service.Generate(ctx, payroll.GeneratePayrollRequest{
			PayrollMonth: "2024-05",
			PayrollType:  "regular",
		})

		assert.ErrorIs(t, err, payrollerrors.ErrRunCreateFailed)
	})

	t.Run("single employee scope", func(t *testing.T) {
		deps := setupServiceTest(t)
		run := &payroll.PayrollRun{ID: uuid.New()}
		empl := employee.Employee{ID: uuid.New(), EmployeeNumber: "E007"}

		deps.repo.EXPECT().GetOrCreateRun(ctx, "2024-05", "regular").Return(run, nil)
		deps.employeeRepo.EXPECT().FindByID(ctx, empl.ID.String()).Return(&empl, nil)
		deps.detailRepo.EXPECT().FindByEmployeeID(ctx, empl.ID).Return(nil, nil)
		deps.repo.EXPECT().CreateSlip(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().CountSlipsByRun(ctx, run.ID).Return(int64(1), nil)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.Generate(ctx, payroll.GeneratePayrollRequest{
			PayrollMonth: "2024-05",
			PayrollType:  "regular",
			EmployeeID:   empl.ID.String(),
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), resp.Count)
	})
}

func TestPayrollService_UploadSlips(t *testing.T) {
	ctx := context.Background()

	t.Run("verbatim slip insert with pay detail upsert", func(t *testing.T) {
		deps := setupServiceTest(t)
		run := &payroll.PayrollRun{ID: uuid.New()}
		empl := &employee.Employee{ID: uuid.New(), EmployeeNumber: "E001"}

		deps.employeeRepo.EXPECT().FindByEmployeeNumber(ctx, "E001").Return(empl, nil)
		deps.repo.EXPECT().GetOrCreateRun(ctx, "2024-05", "regular").Return(run, nil)
		deps.detailRepo.EXPECT().Upsert(ctx, empl.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, detail paydetail.PayDetail) error {
				if assert.NotNil(t, detail.Basic) {
					assert.Equal(t, 21000.0, *detail.Basic)
				}
				return nil
			})
		deps.repo.EXPECT().CreateSlip(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, slip *payroll.PayrollSlip) error {
				assert.Equal(t, run.ID, slip.RunID)
				assert.InDelta(t, 21000.0, slip.Basic, 0.001)
				assert.InDelta(t, 26110.0, slip.NetPay, 0.001)
				return nil
			})

		res, err := deps.service.UploadSlips(ctx, normalizedRows([][]string{
			{"EmployeeNumber", "PayrollMonth", "PayrollType", "Basic", "GrossAmount", "NetPay"},
			{"E001", "2024-05", "regular", "21000", "29000", "26110"},
		}))

		assert.NoError(t, err)
		assert.Equal(t, 1, res.Processed)
		assert.Equal(t, 1, res.Inserted)
		assert.Equal(t, 0, res.Skipped)
	})

	t.Run("missing key fields skip rows", func(t *testing.T) {
		deps := setupServiceTest(t)

		res, err := deps.service.UploadSlips(ctx, normalizedRows([][]string{
			{"EmployeeNumber", "PayrollMonth", "PayrollType"},
			{"", "2024-05", "regular"},
			{"E001", "", "regular"},
		}))

		assert.NoError(t, err)
		assert.Equal(t, 2, res.Processed)
		assert.Equal(t, 2, res.Skipped)
		assert.Len(t, res.Errors, 2)
		assert.Contains(t, res.Errors[0], "Row 2")
	})

	t.Run("unknown employee skips row but batch continues", func(t *testing.T) {
		deps := setupServiceTest(t)
		run := &payroll.PayrollRun{ID: uuid.New()}
		empl := &employee.Employee{ID: uuid.New(), EmployeeNumber: "E002"}

		deps.employeeRepo.EXPECT().FindByEmployeeNumber(ctx, "E999").Return(nil, nil)
		deps.employeeRepo.EXPECT().FindByEmployeeNumber(ctx, "E002").Return(empl, nil)
		deps.repo.EXPECT().GetOrCreateRun(ctx, "2024-05", "regular").Return(run, nil)
		deps.detailRepo.EXPECT().Upsert(ctx, empl.ID, gomock.Any()).Return(nil)
		deps.repo.EXPECT().CreateSlip(ctx, gomock.Any()).Return(nil)

		res, err := deps.service.UploadSlips(ctx, normalizedRows([][]string{
			{"EmployeeNumber", "PayrollMonth", "PayrollType", "Basic"},
			{"E999", "2024-05", "regular", "10000"},
			{"E002", "2024-05", "regular", "12000"},
		}))

		assert.NoError(t, err)
		assert.Equal(t, 2, res.Processed)
		assert.Equal(t, 1, res.Inserted)
		assert.Equal(t, 1, res.Skipped)
		assert.Contains(t, res.Errors[0], "unknown EmployeeNumber E999")
	})
}

func TestPayrollService_ListSlipsByRun(t *testing.T) {
	t.Run("employee role sees own slips only", func(t *testing.T) {
		deps := setupServiceTest(t)
		run := &payroll.PayrollRun{ID: uuid.New(), PayrollMonth: "2024-05", PayrollType: "regular"}
		own := payroll.PayrollSlip{ID: uuid.New(), RunID: run.ID, EmployeeID: uuid.New()}
		foreign := payroll.PayrollSlip{ID: uuid.New(), RunID: run.ID, EmployeeID: uuid.New()}

		deps.repo.EXPECT().FindRunByID(gomock.Any(), run.ID).Return(run, nil)
		deps.repo.EXPECT().
			FindSlipsByRun(gomock.Any(), run.ID).
			Return([]payroll.PayrollSlip{own, foreign}, nil)

		ctx := contextutil.WithEmployeeID(
			contextutil.WithRole(context.Background(), "employee"),
			own.EmployeeID.String(),
		)
		res, err := deps.service.ListSlipsByRun(ctx, run.ID.String())

		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, own.ID.String(), res[0].ID)
	})

	t.Run("privileged roles see the full run", func(t *testing.T) {
		deps := setupServiceTest(t)
		run := &payroll.PayrollRun{ID: uuid.New(), PayrollMonth: "2024-05", PayrollType: "regular"}
		slips := []payroll.PayrollSlip{
			{ID: uuid.New(), RunID: run.ID, EmployeeID: uuid.New()},
			{ID: uuid.New(), RunID: run.ID, EmployeeID: uuid.New()},
		}

		deps.repo.EXPECT().FindRunByID(gomock.Any(), run.ID).Return(run, nil)
		deps.repo.EXPECT().FindSlipsByRun(gomock.Any(), run.ID).Return(slips, nil)

		ctx := contextutil.WithRole(context.Background(), "hr")
		res, err := deps.service.ListSlipsByRun(ctx, run.ID.String())

		assert.NoError(t, err)
		assert.Len(t, res, 2)
	})

	t.Run("unknown run", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()

		deps.repo.EXPECT().FindRunByID(gomock.Any(), id).Return(nil, nil)

		_, err := deps.service.ListSlipsByRun(context.Background(), id.String())
		assert.ErrorIs(t, err, payrollerrors.ErrRunNotFound)
	})
}

func TestPayrollService_GetSlip(t *testing.T) {
	t.Run("employee role reads own slip only", func(t *testing.T) {
		deps := setupServiceTest(t)
		slip := &payroll.PayrollSlip{ID: uuid.New(), RunID: uuid.New(), EmployeeID: uuid.New()}

		deps.repo.EXPECT().FindSlipByID(gomock.Any(), slip.ID).Return(slip, nil).Times(2)

		own := contextutil.WithEmployeeID(
			contextutil.WithRole(context.Background(), "employee"),
			slip.EmployeeID.String(),
		)
		resp, err := deps.service.GetSlip(own, slip.ID.String())
		assert.NoError(t, err)
		assert.Equal(t, slip.ID.String(), resp.ID)

		other := contextutil.WithEmployeeID(
			contextutil.WithRole(context.Background(), "employee"),
			uuid.New().String(),
		)
		_, err = deps.service.GetSlip(other, slip.ID.String())
		assert.ErrorIs(t, err, payrollerrors.ErrSlipForbidden)
	})

	t.Run("invalid slip id", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.GetSlip(context.Background(), "not-a-uuid")
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidSlipID)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()

		deps.repo.EXPECT().FindSlipByID(gomock.Any(), id).Return(nil, nil)

		_, err := deps.service.GetSlip(context.Background(), id.String())
		assert.ErrorIs(t, err, payrollerrors.ErrSlipNotFound)
	})
}

func TestPayrollService_RequestPayslip(t *testing.T) {
	t.Run("queues outbox event for an existing slip", func(t *testing.T) {
		deps := setupServiceTest(t)
		slip := &payroll.PayrollSlip{ID: uuid.New(), RunID: uuid.New(), EmployeeID: uuid.New()}

		deps.repo.EXPECT().FindSlipByID(gomock.Any(), slip.ID).Return(slip, nil)
		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event kafka.OutboxEvent) error {
				assert.Equal(t, "payroll.payslip.requested", event.EventType)
				assert.Equal(t, slip.ID.String(), event.AggregateID)
				assert.Equal(t, events.PayslipRequestedTopic, event.Topic)
				return nil
			})

		assert.NoError(t, deps.service.RequestPayslip(context.Background(), slip.ID.String()))
	})

	t.Run("employee cannot queue another employee's slip", func(t *testing.T) {
		deps := setupServiceTest(t)
		slip := &payroll.PayrollSlip{ID: uuid.New(), RunID: uuid.New(), EmployeeID: uuid.New()}

		deps.repo.EXPECT().FindSlipByID(gomock.Any(), slip.ID).Return(slip, nil)

		other := contextutil.WithEmployeeID(
			contextutil.WithRole(context.Background(), "employee"),
			uuid.New().String(),
		)
		err := deps.service.RequestPayslip(other, slip.ID.String())
		assert.ErrorIs(t, err, payrollerrors.ErrSlipForbidden)
	})

	t.Run("unknown slip", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()

		deps.repo.EXPECT().FindSlipByID(gomock.Any(), id).Return(nil, nil)

		err := deps.service.RequestPayslip(context.Background(), id.String())
		assert.ErrorIs(t, err, payrollerrors.ErrSlipNotFound)
	})
}

func TestPayrollService_Recalculate(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	slip := &payroll.PayrollSlip{
		ID:         uuid.New(),
		RunID:      uuid.New(),
		EmployeeID: uuid.New(),
		Basic:      20000,
		HRA:        5000,
		PFEmployee: 2400,
	}

	deps.repo.EXPECT().FindSlipByID(ctx, slip.ID).Return(slip, nil)
	deps.repo.EXPECT().UpdateSlip(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, updated *payroll.PayrollSlip) error {
			assert.InDelta(t, 22000.0, updated.Basic, 0.001)
			assert.InDelta(t, 27000.0, updated.GrossAmount, 0.001)
			assert.InDelta(t, 24600.0, updated.NetPay, 0.001)
			return nil
		})

	resp, err := deps.service.Recalculate(ctx, slip.ID.String(), payroll.RecalculateSlipRequest{
		Basic: f(22000),
	})

	assert.NoError(t, err)
	assert.InDelta(t, 27000.0, resp.GrossAmount, 0.001)
}

func TestPayrollService_RenderPayslip(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	slip := &payroll.PayrollSlip{
		ID:         uuid.New(),
		RunID:      uuid.New(),
		EmployeeID: uuid.New(),
		NetPay:     25110,
	}
	run := &payroll.PayrollRun{ID: slip.RunID, PayrollMonth: "2024-05", PayrollType: "regular"}

	deps.repo.EXPECT().FindSlipByID(ctx, slip.ID).Return(slip, nil)
	deps.repo.EXPECT().FindRunByID(ctx, slip.RunID).Return(run, nil)

	pdf, err := deps.service.RenderPayslip(ctx, slip.ID.String())

	assert.NoError(t, err)
	assert.True(t, len(pdf) > 0)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
