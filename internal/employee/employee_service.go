package employee

import (
	"context"
	"database/sql"
	"fmt"
	"iter"
	"time"

	"go-hrms/internal/ingest"
	"go-hrms/internal/masterdata"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	BulkUpsert(ctx context.Context, rows iter.Seq[ingest.Row]) (ingest.BulkResult, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	resolver *masterdata.Resolver
	counter  counter.Repository
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	resolver *masterdata.Resolver,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		resolver: resolver,
		counter:  counterRepo,
		outbox:   outboxRepo,
		logger:   l,
	}
}

func (s *service) Create(
	ctx context.Context,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_number", req.EmployeeNumber),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	joiningDate, err := parseDate(req.JoiningDate)
	if err != nil {
		return EmployeeResponse{}, apperror.InvalidField("joining_date")
	}

	if req.EmployeeNumber == "" {
		nextVal, err := s.counter.GetNextValue(ctx, "employee_number")
		if err != nil {
			s.logger.Error("create employee generate number failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		req.EmployeeNumber = fmt.Sprintf("EMP-%06d", nextVal)
	}

	status := req.Status
	if status == "" {
		status = StatusActive
	}

	empl := &Employee{
		ID:                 uuid.New(),
		EmployeeNumber:     req.EmployeeNumber,
		FirstName:          req.FirstName,
		MiddleName:         strPtr(req.MiddleName),
		LastName:           strPtr(req.LastName),
		Email:              strPtr(req.Email),
		Phone:              strPtr(req.Phone),
		Gender:             strPtr(req.Gender),
		DateOfBirth:        datePtr(req.DateOfBirth),
		JoiningDate:        &joiningDate,
		Status:             status,
		WorkerType:         strPtr(req.WorkerType),
		DepartmentID:       uuidPtr(req.DepartmentID),
		LocationID:         uuidPtr(req.LocationID),
		DesignationID:      uuidPtr(req.DesignationID),
		LPA:                req.LPA,
		BasicPct:           req.BasicPct,
		HRAPct:             req.HRAPct,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("employee_number", empl.EmployeeNumber),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.FirstName = req.FirstName
	empl.MiddleName = strPtr(req.MiddleName)
	empl.LastName = strPtr(req.LastName)
	empl.Email = strPtr(req.Email)
	empl.Phone = strPtr(req.Phone)
	empl.Status = req.Status
	empl.WorkerType = strPtr(req.WorkerType)
	empl.ExitDate = datePtr(req.ExitDate)
	empl.DepartmentID = uuidPtr(req.DepartmentID)
	empl.LocationID = uuidPtr(req.LocationID)
	empl.DesignationID = uuidPtr(req.DesignationID)
	empl.LPA = req.LPA
	empl.BasicPct = req.BasicPct
	empl.HRAPct = req.HRAPct

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func parseDate(v string) (time.Time, error) {
	return time.Parse("2006-01-02", v)
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:             empl.ID.String(),
		EmployeeNumber: empl.EmployeeNumber,
		FirstName:      empl.FirstName,
		MiddleName:     strVal(empl.MiddleName),
		LastName:       strVal(empl.LastName),
		Email:          strVal(empl.Email),
		Phone:          strVal(empl.Phone),
		Status:         empl.Status,
		WorkerType:     strVal(empl.WorkerType),
		DepartmentID:   uuidToString(empl.DepartmentID),
		LocationID:     uuidToString(empl.LocationID),
		DesignationID:  uuidToString(empl.DesignationID),
		LPA:            empl.LPA,
		BasicPct:       empl.BasicPct,
		HRAPct:         empl.HRAPct,
	}
	if empl.JoiningDate != nil {
		resp.JoiningDate = empl.JoiningDate.Format("2006-01-02")
	}
	if empl.ExitDate != nil {
		resp.ExitDate = empl.ExitDate.Format("2006-01-02")
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}

func strPtr(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func strVal(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func datePtr(v string) *time.Time {
	if v == "" {
		return nil
	}
	t, err := parseDate(v)
	if err != nil {
		return nil
	}
	return &t
}

func uuidPtr(v string) *uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}

func uuidToString(v *uuid.UUID) string {
	if v == nil {
		return ""
	}
	return v.String()
}
