package employee_test

import (
	"context"
	"errors"
	"testing"

	"go-hrms/internal/employee"
	employeeMock "go-hrms/internal/employee/mock"
	"go-hrms/internal/ingest"
	"go-hrms/internal/masterdata"
	kafkaMock "go-hrms/internal/messaging/kafka/mock"
	counterMock "go-hrms/internal/shared/counter/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// memoryMasterRepo backs the resolver with an in-memory value->id store.
type memoryMasterRepo struct {
	rows    map[string]map[string]uuid.UUID
	inserts int
}

func newMemoryMasterRepo() *memoryMasterRepo {
	return &memoryMasterRepo{rows: map[string]map[string]uuid.UUID{}}
}

func (m *memoryMasterRepo) FindIDByValue(_ context.Context, table, _, value string) (*uuid.UUID, error) {
	if id, ok := m.rows[table][value]; ok {
		return &id, nil
	}
	return nil, nil
}

func (m *memoryMasterRepo) Insert(_ context.Context, table, _, value string) (uuid.UUID, error) {
	if m.rows[table] == nil {
		m.rows[table] = map[string]uuid.UUID{}
	}
	id := uuid.New()
	m.rows[table][value] = id
	m.inserts++
	return id, nil
}

func (m *memoryMasterRepo) FindAll(_ context.Context, _ string) ([]masterdata.MasterRecord, error) {
	return nil, nil
}

type bulkDeps struct {
	service    employee.Service
	repo       *employeeMock.MockRepository
	masterRepo *memoryMasterRepo
	outbox     *kafkaMock.MockOutboxRepository
}

func setupBulkTest(t *testing.T) *bulkDeps {
	ctrl := gomock.NewController(t)

	db, _, _ := sqlmock.New()
	t.Cleanup(func() { db.Close() })

	repo := employeeMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)
	masterRepo := newMemoryMasterRepo()

	svc := employee.NewService(
		db, repo, masterdata.NewResolver(masterRepo), counterRepo, outboxRepo,
	)

	return &bulkDeps{
		service:    svc,
		repo:       repo,
		masterRepo: masterRepo,
		outbox:     outboxRepo,
	}
}

func rowsOf(cells [][]string) func(func(ingest.Row) bool) {
	return ingest.Normalize(cells)
}

func TestBulkUpsert_InsertThenUpdateIdempotence(t *testing.T) {
	deps := setupBulkTest(t)
	ctx := context.Background()

	sheet := [][]string{
		{"EmployeeNumber", "FirstName", "Department", "LPA"},
		{"E001", "Asha", "Engineering", "6.0"},
	}

	var stored *employee.Employee

	// first upload: unknown number, inserted
	deps.repo.EXPECT().FindByEmployeeNumber(ctx, "E001").Return(nil, nil)
	deps.repo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, empl *employee.Employee) error {
			stored = empl
			return nil
		})
	deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	first, err := deps.service.BulkUpsert(ctx, rowsOf(sheet))
	assert.NoError(t, err)
	assert.Equal(t, 1, first.Processed)
	assert.Equal(t, 1, first.Inserted)
	assert.Equal(t, 0, first.Updated)

	if assert.NotNil(t, stored) {
		assert.Equal(t, "E001", stored.EmployeeNumber)
		assert.Equal(t, "Asha", stored.FirstName)
		assert.NotNil(t, stored.DepartmentID)
		if assert.NotNil(t, stored.LPA) {
			assert.Equal(t, 6.0, *stored.LPA)
		}
	}

	// second upload of the identical file: zero inserts, one update
	deps.repo.EXPECT().FindByEmployeeNumber(ctx, "E001").Return(stored, nil)
	deps.repo.EXPECT().Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, empl *employee.Employee) error {
			assert.Equal(t, stored.ID, empl.ID)
			return nil
		})
	deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	second, err := deps.service.BulkUpsert(ctx, rowsOf(sheet))
	assert.NoError(t, err)
	assert.Equal(t, 0, second.Inserted)
	assert.Equal(t, 1, second.Updated)

	// the department row was created once across both uploads
	assert.Equal(t, 1, deps.masterRepo.inserts)
}

func TestBulkUpsert_BlankEmployeeNumberSkipped(t *testing.T) {
	deps := setupBulkTest(t)
	ctx := context.Background()

	deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	res, err := deps.service.BulkUpsert(ctx, rowsOf([][]string{
		{"EmployeeNumber", "FirstName"},
		{"", "Nameless"},
	}))

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Processed)
	assert.Equal(t, 0, res.Inserted)
	assert.Equal(t, 0, res.Updated)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, []string{"Row 2: missing EmployeeNumber"}, res.Errors)
}

func TestBulkUpsert_BlankRowNotProcessed(t *testing.T) {
	deps := setupBulkTest(t)
	ctx := context.Background()

	deps.repo.EXPECT().FindByEmployeeNumber(ctx, "E001").Return(nil, nil)
	deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	res, err := deps.service.BulkUpsert(ctx, rowsOf([][]string{
		{"EmployeeNumber", "FirstName"},
		{"", ""},
		{"E001", "Asha"},
	}))

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Processed)
	assert.Equal(t, 1, res.Inserted)
}

func TestBulkUpsert_RowFailureDoesNotAbortBatch(t *testing.T) {
	deps := setupBulkTest(t)
	ctx := context.Background()

	deps.repo.EXPECT().FindByEmployeeNumber(ctx, "E001").
		Return(nil, errors.New("connection reset"))
	deps.repo.EXPECT().FindByEmployeeNumber(ctx, "E002").Return(nil, nil)
	deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	res, err := deps.service.BulkUpsert(ctx, rowsOf([][]string{
		{"EmployeeNumber", "FirstName"},
		{"E001", "Asha"},
		{"E002", "Ravi"},
	}))

	assert.NoError(t, err)
	assert.Equal(t, 2, res.Processed)
	assert.Equal(t, 1, res.Inserted)
	assert.Equal(t, 1, res.Skipped)
	assert.Contains(t, res.Errors[0], "Row 2")
}

func TestBulkUpsert_ReportingManagerSelfLookup(t *testing.T) {
	deps := setupBulkTest(t)
	ctx := context.Background()
	managerID := uuid.New()

	deps.repo.EXPECT().FindByEmployeeNumber(ctx, "E002").Return(nil, nil)
	deps.repo.EXPECT().FindIDByEmployeeNumber(ctx, "E001").Return(&managerID, nil)
	deps.repo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, empl *employee.Employee) error {
			if assert.NotNil(t, empl.ReportingManagerID) {
				assert.Equal(t, managerID, *empl.ReportingManagerID)
			}
			return nil
		})
	deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	res, err := deps.service.BulkUpsert(ctx, rowsOf([][]string{
		{"EmployeeNumber", "FirstName", "ReportingManager"},
		{"E002", "Ravi", "E001"},
	}))

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Inserted)
}

func TestBulkUpsert_AbsentColumnsOverwriteWithNull(t *testing.T) {
	deps := setupBulkTest(t)
	ctx := context.Background()

	existing := &employee.Employee{
		ID:             uuid.New(),
		EmployeeNumber: "E001",
		FirstName:      "Asha",
		Status:         employee.StatusActive,
	}
	email := "asha@example.com"
	existing.Email = &email

	deps.repo.EXPECT().FindByEmployeeNumber(ctx, "E001").Return(existing, nil)
	deps.repo.EXPECT().Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, empl *employee.Employee) error {
			assert.Nil(t, empl.Email) // sheet carried no email column
			return nil
		})
	deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	res, err := deps.service.BulkUpsert(ctx, rowsOf([][]string{
		{"EmployeeNumber", "FirstName"},
		{"E001", "Asha"},
	}))

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Updated)
}
