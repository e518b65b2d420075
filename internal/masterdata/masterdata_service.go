package masterdata

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	masterdataerrors "go-hrms/internal/masterdata/errors"
	"go-hrms/internal/shared/apperror"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const OptionsKeyPrefix = "masterdata:options:"

func GetOptionsKey(table string) string {
	return OptionsKeyPrefix + table
}

//go:generate mockgen -source=masterdata_service.go -destination=mock/masterdata_service_mock.go -package=mock
type Service interface {
	GetOptions(ctx context.Context, table string) ([]MasterRecordResponse, error)
	Create(ctx context.Context, table string, req CreateMasterRecordRequest) (MasterRecordResponse, error)
}

type service struct {
	repo     Repository
	resolver *Resolver
	rdb      *redis.Client
	sf       *singleflight.Group
	logger   *zap.Logger
}

func NewService(repo Repository, resolver *Resolver, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("masterdata.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("masterdata.service")
	}
	return &service{
		repo:     repo,
		resolver: resolver,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		logger:   l,
	}
}

func (s *service) GetOptions(ctx context.Context, table string) ([]MasterRecordResponse, error) {
	if !KnownTable(table) {
		return nil, masterdataerrors.ErrUnknownTable
	}

	cacheKey := GetOptionsKey(table)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []MasterRecordResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight collapses the dropdown stampede when many admin forms
	// open at once
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		records, err := s.repo.FindAll(ctx, table)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(records)

		// Master data changes rarely; one hour TTL is plenty
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]MasterRecordResponse), nil
}

func (s *service) Create(ctx context.Context, table string, req CreateMasterRecordRequest) (MasterRecordResponse, error) {
	if !KnownTable(table) {
		return MasterRecordResponse{}, masterdataerrors.ErrUnknownTable
	}

	value := strings.TrimSpace(req.Name)
	if value == "" {
		return MasterRecordResponse{}, apperror.RequiredField("name")
	}

	column := Tables[table]
	existing, err := s.repo.FindIDByValue(ctx, table, column, value)
	if err != nil {
		return MasterRecordResponse{}, err
	}
	if existing != nil {
		return MasterRecordResponse{}, masterdataerrors.ErrDuplicateValue
	}

	id, err := s.repo.Insert(ctx, table, column, value)
	if err != nil {
		return MasterRecordResponse{}, err
	}

	if s.rdb != nil {
		cacheKey := GetOptionsKey(table)
		if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
			s.logger.Error("failed to invalidate master data options cache",
				zap.Error(err),
				zap.String("key", cacheKey),
			)
		}
	}

	s.logger.Info("master record created",
		zap.String("table", table),
		zap.String("id", id.String()),
	)

	return MasterRecordResponse{ID: id.String(), Name: value}, nil
}

func mapToListResponse(records []MasterRecord) []MasterRecordResponse {
	resp := make([]MasterRecordResponse, len(records))
	for i, rec := range records {
		resp[i] = MasterRecordResponse{ID: rec.ID.String(), Name: rec.Name}
	}
	return resp
}
