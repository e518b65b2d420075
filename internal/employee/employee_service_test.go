package employee_test

import (
	"context"
	"database/sql"
	"testing"

	"go-hrms/internal/employee"
	employeeerrors "go-hrms/internal/employee/errors"
	employeeMock "go-hrms/internal/employee/mock"
	"go-hrms/internal/masterdata"
	kafkaMock "go-hrms/internal/messaging/kafka/mock"
	counterMock "go-hrms/internal/shared/counter/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func errDuplicateEmployeeNumber() error {
	return &pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_number"}
}

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service employee.Service
	repo    *employeeMock.MockRepository
	counter *counterMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	t.Cleanup(func() { db.Close() })

	repo := employeeMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := employee.NewService(
		db, repo, masterdata.NewResolver(newMemoryMasterRepo()), counterRepo, outboxRepo,
	)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		counter: counterRepo,
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("auto generates employee number", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.counter.EXPECT().GetNextValue(ctx, "employee_number").Return(int64(42), nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, empl *employee.Employee) error {
				assert.Equal(t, "EMP-000042", empl.EmployeeNumber)
				assert.Equal(t, employee.StatusActive, empl.Status)
				return nil
			})

		resp, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			FirstName:   "Asha",
			JoiningDate: "2024-02-01",
		})

		assert.NoError(t, err)
		assert.Equal(t, "EMP-000042", resp.EmployeeNumber)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("keeps provided employee number", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			EmployeeNumber: "E900",
			FirstName:      "Ravi",
			JoiningDate:    "2024-02-01",
		})

		assert.NoError(t, err)
		assert.Equal(t, "E900", resp.EmployeeNumber)
	})

	t.Run("bad joining date rejected before any write", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			FirstName:   "Asha",
			JoiningDate: "02/2024",
		})

		assert.Error(t, err)
	})

	t.Run("duplicate employee number maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			Return(errDuplicateEmployeeNumber())

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			EmployeeNumber: "E001",
			FirstName:      "Asha",
			JoiningDate:    "2024-02-01",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNumberAlreadyExists)
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("not found maps to domain error", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New().String()

		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, id)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		empl := &employee.Employee{
			ID:             uuid.New(),
			EmployeeNumber: "E001",
			FirstName:      "Asha",
			Status:         employee.StatusActive,
		}

		deps.repo.EXPECT().FindByID(ctx, empl.ID.String()).Return(empl, nil)

		resp, err := deps.service.GetByID(ctx, empl.ID.String())
		assert.NoError(t, err)
		assert.Equal(t, "E001", resp.EmployeeNumber)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	existing := &employee.Employee{
		ID:             uuid.New(),
		EmployeeNumber: "E001",
		FirstName:      "Asha",
		Status:         employee.StatusActive,
	}

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().FindByID(ctx, existing.ID.String()).Return(existing, nil)
	deps.repo.EXPECT().Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, empl *employee.Employee) error {
			assert.Equal(t, existing.ID, empl.ID)
			assert.Equal(t, employee.StatusInactive, empl.Status)
			return nil
		})

	resp, err := deps.service.Update(ctx, existing.ID.String(), employee.UpdateEmployeeRequest{
		FirstName: "Asha",
		Status:    employee.StatusInactive,
	})

	assert.NoError(t, err)
	assert.Equal(t, employee.StatusInactive, resp.Status)
}
