package payroll

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	GetOrCreateRun(ctx context.Context, month, payrollType string) (*PayrollRun, error)
	FindRuns(ctx context.Context) ([]PayrollRun, error)
	FindRunByID(ctx context.Context, id uuid.UUID) (*PayrollRun, error)
	CreateSlip(ctx context.Context, slip *PayrollSlip) error
	UpdateSlip(ctx context.Context, slip *PayrollSlip) error
	FindSlipByID(ctx context.Context, id uuid.UUID) (*PayrollSlip, error)
	FindSlipsByRun(ctx context.Context, runID uuid.UUID) ([]PayrollSlip, error)
	CountSlipsByRun(ctx context.Context, runID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// GetOrCreateRun finds the run for (month, type) or creates it. A unique
// composite index backs the pair, so a concurrent creator loses with a
// duplicate-key error and the winner's row is re-fetched.
func (r *repository) GetOrCreateRun(ctx context.Context, month, payrollType string) (*PayrollRun, error) {
	run, err := r.findRun(ctx, month, payrollType)
	if err != nil {
		return nil, err
	}
	if run != nil {
		return run, nil
	}

	created := &PayrollRun{
		ID:           uuid.New(),
		PayrollMonth: month,
		PayrollType:  payrollType,
	}
	err = r.db.WithContext(ctx).Create(created).Error
	if err == nil {
		return created, nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return r.findRun(ctx, month, payrollType)
	}
	return nil, err
}

func (r *repository) findRun(ctx context.Context, month, payrollType string) (*PayrollRun, error) {
	var run PayrollRun
	err := r.db.WithContext(ctx).
		Where("payroll_month = ? AND payroll_type = ?", month, payrollType).
		First(&run).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *repository) FindRuns(ctx context.Context) ([]PayrollRun, error) {
	var runs []PayrollRun
	err := r.db.WithContext(ctx).
		Order("payroll_month DESC, payroll_type ASC").
		Find(&runs).Error
	return runs, err
}

func (r *repository) FindRunByID(ctx context.Context, id uuid.UUID) (*PayrollRun, error) {
	var run PayrollRun
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&run).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *repository) CreateSlip(ctx context.Context, slip *PayrollSlip) error {
	return r.db.WithContext(ctx).Create(slip).Error
}

func (r *repository) UpdateSlip(ctx context.Context, slip *PayrollSlip) error {
	return r.db.WithContext(ctx).Save(slip).Error
}

func (r *repository) FindSlipByID(ctx context.Context, id uuid.UUID) (*PayrollSlip, error) {
	var slip PayrollSlip
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&slip).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &slip, nil
}

func (r *repository) FindSlipsByRun(ctx context.Context, runID uuid.UUID) ([]PayrollSlip, error) {
	var slips []PayrollSlip
	err := r.db.WithContext(ctx).
		Where("run_id = ?", runID).
		Order("created_at ASC").
		Find(&slips).Error
	return slips, err
}

func (r *repository) CountSlipsByRun(ctx context.Context, runID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&PayrollSlip{}).
		Where("run_id = ?", runID).
		Count(&count).Error
	return count, err
}
