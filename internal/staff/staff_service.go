package staff

import (
	"context"
	"encoding/json"
	"time"

	"go-shopops/internal/shared/contextutil"
	stafferrors "go-shopops/internal/staff/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const OptionsCacheKey = "staff:options"

//go:generate mockgen -source=staff_service.go -destination=mock/staff_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateStaffRequest) (StaffResponse, error)
	GetAll(ctx context.Context) ([]StaffResponse, error)
	GetOptions(ctx context.Context) ([]StaffResponse, error)
	GetByID(ctx context.Context, id string) (StaffResponse, error)
	Update(ctx context.Context, id string, req UpdateStaffRequest) (StaffResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("staff.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("staff.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateStaffRequest) (StaffResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create staff requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
		zap.String("type", req.Type),
	)

	if err := validateCompensation(req.Type, req.Ratio, req.AllowanceRate); err != nil {
		return StaffResponse{}, err
	}

	member := &Staff{
		ID:            uuid.New(),
		Name:          req.Name,
		Type:          req.Type,
		Ratio:         req.Ratio,
		AllowanceRate: req.AllowanceRate,
		Active:        true,
		Phone:         req.Phone,
	}

	if err := s.repo.Create(ctx, member); err != nil {
		s.logger.Error("create staff persist failed", zap.String("request_id", rid), zap.Error(err))
		return StaffResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptions(ctx)
	s.logger.Info("create staff success",
		zap.String("request_id", rid),
		zap.String("staff_id", member.ID.String()),
	)

	return mapToResponse(*member), nil
}

func (s *service) GetAll(ctx context.Context) ([]StaffResponse, error) {
	members, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all staff failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(members), nil
}

// GetOptions serves the active roster for job forms. Cached in redis with
// singleflight guarding the rebuild; writes invalidate the key.
func (s *service) GetOptions(ctx context.Context) ([]StaffResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OptionsCacheKey).Result(); err == nil {
			var resp []StaffResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(OptionsCacheKey, func() (interface{}, error) {
		members, err := s.repo.FindActive(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(members)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, OptionsCacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]StaffResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (StaffResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return StaffResponse{}, stafferrors.ErrInvalidStaffID
	}

	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get staff by id failed", zap.String("staff_id", id), zap.Error(err))
		return StaffResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*member), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateStaffRequest) (StaffResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return StaffResponse{}, stafferrors.ErrInvalidStaffID
	}
	if err := validateCompensation(req.Type, req.Ratio, req.AllowanceRate); err != nil {
		return StaffResponse{}, err
	}

	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return StaffResponse{}, mapRepositoryError(err)
	}

	member.Name = req.Name
	member.Type = req.Type
	member.Ratio = req.Ratio
	member.AllowanceRate = req.AllowanceRate
	member.Phone = req.Phone
	if req.Active != nil {
		member.Active = *req.Active
	}

	if err := s.repo.Update(ctx, member); err != nil {
		s.logger.Error("update staff persist failed", zap.String("staff_id", id), zap.Error(err))
		return StaffResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptions(ctx)
	return mapToResponse(*member), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return stafferrors.ErrInvalidStaffID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	s.invalidateOptions(ctx)
	return nil
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, OptionsCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate staff options cache",
			zap.Error(err),
			zap.String("key", OptionsCacheKey),
		)
	}
}

func validateCompensation(staffType string, ratio, allowanceRate float64) error {
	switch staffType {
	case TypeExecutive:
		if ratio <= 0 {
			return stafferrors.ErrExecutiveNeedsRatio
		}
	case TypeContractWorker:
		if allowanceRate <= 0 {
			return stafferrors.ErrContractorNeedsRate
		}
	}
	return nil
}

func mapToResponse(member Staff) StaffResponse {
	return StaffResponse{
		ID:            member.ID.String(),
		Name:          member.Name,
		Type:          member.Type,
		Ratio:         member.Ratio,
		AllowanceRate: member.AllowanceRate,
		Active:        member.Active,
		Phone:         member.Phone,
	}
}

func mapToListResponse(members []Staff) []StaffResponse {
	resp := make([]StaffResponse, len(members))
	for i, member := range members {
		resp[i] = mapToResponse(member)
	}
	return resp
}
