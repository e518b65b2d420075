package paydetail

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=paydetail_repo.go -destination=mock/paydetail_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, employeeID uuid.UUID, detail PayDetail) error
	FindByEmployeeID(ctx context.Context, employeeID uuid.UUID) (*PayDetail, error)
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

const upsertQuery = `
    INSERT INTO pay_details (
        id, employee_id, basic, hra, medical_allowance,
        transport_allowance, special_allowance, meal_coupons,
        created_at, updated_at
    ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
    ON CONFLICT (employee_id) DO UPDATE SET
        basic = EXCLUDED.basic,
        hra = EXCLUDED.hra,
        medical_allowance = EXCLUDED.medical_allowance,
        transport_allowance = EXCLUDED.transport_allowance,
        special_allowance = EXCLUDED.special_allowance,
        meal_coupons = EXCLUDED.meal_coupons,
        updated_at = NOW()
`

// Upsert writes the row in one statement so concurrent uploads for the
// same employee cannot race the existence check. All component columns
// are overwritten, NULLs included.
func (r *repository) Upsert(ctx context.Context, employeeID uuid.UUID, detail PayDetail) error {
	args := []any{
		uuid.New(), employeeID,
		detail.Basic, detail.HRA, detail.MedicalAllowance,
		detail.TransportAllowance, detail.SpecialAllowance, detail.MealCoupons,
	}

	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx, upsertQuery, args...)
		return err
	}
	return r.db.WithContext(ctx).Exec(upsertQuery, args...).Error
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID uuid.UUID) (*PayDetail, error) {
	var detail PayDetail
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		First(&detail).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &detail, nil
}
