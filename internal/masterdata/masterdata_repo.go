package masterdata

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=masterdata_repo.go -destination=mock/masterdata_repo_mock.go -package=mock
type Repository interface {
	FindIDByValue(ctx context.Context, table, column, value string) (*uuid.UUID, error)
	Insert(ctx context.Context, table, column, value string) (uuid.UUID, error)
	FindAll(ctx context.Context, table string) ([]MasterRecord, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindIDByValue(ctx context.Context, table, column, value string) (*uuid.UUID, error) {
	if !KnownTable(table) {
		return nil, fmt.Errorf("unknown master table %q", table)
	}

	var id uuid.UUID
	err := r.db.WithContext(ctx).
		Raw(fmt.Sprintf("SELECT id FROM %s WHERE %s = ? LIMIT 1", table, column), value).
		Scan(&id).Error
	if err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		return nil, nil
	}
	return &id, nil
}

func (r *repository) Insert(ctx context.Context, table, column, value string) (uuid.UUID, error) {
	if !KnownTable(table) {
		return uuid.Nil, fmt.Errorf("unknown master table %q", table)
	}

	id := uuid.New()
	err := r.db.WithContext(ctx).
		Exec(fmt.Sprintf(
			"INSERT INTO %s (id, %s, created_at, updated_at) VALUES (?, ?, now(), now())",
			table, column,
		), id, value).Error
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *repository) FindAll(ctx context.Context, table string) ([]MasterRecord, error) {
	if !KnownTable(table) {
		return nil, fmt.Errorf("unknown master table %q", table)
	}

	var records []MasterRecord
	err := r.db.WithContext(ctx).
		Table(table).
		Select(fmt.Sprintf("id, %s AS name, created_at, updated_at", Tables[table])).
		Order("name ASC").
		Find(&records).Error
	return records, err
}
