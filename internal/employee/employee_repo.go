package employee

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	// FindByEmployeeNumber returns (nil, nil) when no employee carries the
	// number; the upsert engine needs absence to be a non-error outcome.
	FindByEmployeeNumber(ctx context.Context, number string) (*Employee, error)
	FindIDByEmployeeNumber(ctx context.Context, number string) (*uuid.UUID, error)
	FindForPayroll(ctx context.Context, includeInactive bool) ([]Employee, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Order("employee_number ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindByEmployeeNumber(ctx context.Context, number string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		First(&empl, "employee_number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindIDByEmployeeNumber(ctx context.Context, number string) (*uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.WithContext(ctx).
		Raw("SELECT id FROM employees WHERE employee_number = ? LIMIT 1", number).
		Scan(&id).Error
	if err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		return nil, nil
	}
	return &id, nil
}

func (r *repository) FindForPayroll(ctx context.Context, includeInactive bool) ([]Employee, error) {
	db := r.db.WithContext(ctx)
	if !includeInactive {
		db = db.Scopes(ActiveOnly())
	}

	var empls []Employee
	err := db.Order("employee_number ASC").Find(&empls).Error
	return empls, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Employee{}, "id = ?", id).Error
}
