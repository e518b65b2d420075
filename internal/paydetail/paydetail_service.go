package paydetail

import (
	"context"

	paydetailerrors "go-hrms/internal/paydetail/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=paydetail_service.go -destination=mock/paydetail_service_mock.go -package=mock
type Service interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (PayDetailResponse, error)
	Upsert(ctx context.Context, employeeID uuid.UUID, detail PayDetail) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("paydetail.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("paydetail.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetByEmployeeID(ctx context.Context, employeeID string) (PayDetailResponse, error) {
	id, err := uuid.Parse(employeeID)
	if err != nil {
		return PayDetailResponse{}, paydetailerrors.ErrInvalidEmployeeID
	}

	detail, err := s.repo.FindByEmployeeID(ctx, id)
	if err != nil {
		s.logger.Error("get pay detail failed", zap.String("employee_id", employeeID), zap.Error(err))
		return PayDetailResponse{}, err
	}
	if detail == nil {
		return PayDetailResponse{}, paydetailerrors.ErrPayDetailNotFound
	}

	return PayDetailResponse{
		EmployeeID:         detail.EmployeeID.String(),
		Basic:              detail.Basic,
		HRA:                detail.HRA,
		MedicalAllowance:   detail.MedicalAllowance,
		TransportAllowance: detail.TransportAllowance,
		SpecialAllowance:   detail.SpecialAllowance,
		MealCoupons:        detail.MealCoupons,
	}, nil
}

func (s *service) Upsert(ctx context.Context, employeeID uuid.UUID, detail PayDetail) error {
	if err := s.repo.Upsert(ctx, employeeID, detail); err != nil {
		s.logger.Error("upsert pay detail failed",
			zap.String("employee_id", employeeID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}
