package inventory

import (
	"context"
	"errors"
	"time"

	inventoryerrors "go-shopops/internal/inventory/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=inventory_service.go -destination=mock/inventory_service_mock.go -package=mock
type Service interface {
	Issue(ctx context.Context, req IssuePartRequest) (OutboundPartResponse, error)
	ListByRange(ctx context.Context, start, end string) ([]OutboundPartResponse, error)
	ListByTask(ctx context.Context, taskID string) ([]OutboundPartResponse, error)
	Void(ctx context.Context, id string) (OutboundPartResponse, error)
	PriceCatalog() map[string]int64
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("inventory.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("inventory.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Issue(ctx context.Context, req IssuePartRequest) (OutboundPartResponse, error) {
	issuedAt, err := time.Parse("2006-01-02", req.IssuedAt)
	if err != nil {
		return OutboundPartResponse{}, inventoryerrors.ErrInvalidDateFormat
	}

	taskID, err := uuid.Parse(req.TaskID)
	if err != nil {
		return OutboundPartResponse{}, inventoryerrors.ErrInvalidTaskID
	}

	record := &OutboundPart{
		ID:          uuid.New(),
		TaskID:      taskID,
		Name:        req.Name,
		Quantity:    req.Quantity,
		TotalAmount: req.TotalAmount,
		Reason:      ReasonUsedOnJob,
		IssuedAt:    issuedAt,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		s.logger.Error("issue part persist failed", zap.Error(err))
		return OutboundPartResponse{}, err
	}

	s.logger.Info("part issued",
		zap.String("outbound_id", record.ID.String()),
		zap.String("task_id", req.TaskID),
		zap.Int64("total_amount", req.TotalAmount),
	)

	return mapToResponse(*record), nil
}

func (s *service) ListByRange(ctx context.Context, start, end string) ([]OutboundPartResponse, error) {
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return nil, inventoryerrors.ErrInvalidDateFormat
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return nil, inventoryerrors.ErrInvalidDateFormat
	}

	records, err := s.repo.FindUsedOnJobs(ctx, startDate, endDate)
	if err != nil {
		s.logger.Error("list outbound parts failed", zap.Error(err))
		return nil, err
	}

	return mapToListResponse(records), nil
}

func (s *service) ListByTask(ctx context.Context, taskID string) ([]OutboundPartResponse, error) {
	if _, err := uuid.Parse(taskID); err != nil {
		return nil, inventoryerrors.ErrInvalidOutboundID
	}

	records, err := s.repo.FindByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(records), nil
}

// Void flips a mistaken issuance to reason "return" so it no longer counts
// toward any job's authoritative part cost.
func (s *service) Void(ctx context.Context, id string) (OutboundPartResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return OutboundPartResponse{}, inventoryerrors.ErrInvalidOutboundID
	}

	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OutboundPartResponse{}, inventoryerrors.ErrOutboundNotFound
		}
		return OutboundPartResponse{}, err
	}

	if record.Reason == ReasonReturn {
		return OutboundPartResponse{}, inventoryerrors.ErrAlreadyVoided
	}

	record.Reason = ReasonReturn
	if err := s.repo.Update(ctx, record); err != nil {
		s.logger.Error("void outbound part failed", zap.String("outbound_id", id), zap.Error(err))
		return OutboundPartResponse{}, err
	}

	s.logger.Info("outbound part voided", zap.String("outbound_id", id))
	return mapToResponse(*record), nil
}

func (s *service) PriceCatalog() map[string]int64 {
	return BuildPriceMap()
}

func mapToResponse(record OutboundPart) OutboundPartResponse {
	return OutboundPartResponse{
		ID:          record.ID.String(),
		TaskID:      record.TaskID.String(),
		Name:        record.Name,
		Quantity:    record.Quantity,
		TotalAmount: record.TotalAmount,
		Reason:      record.Reason,
		IssuedAt:    record.IssuedAt.Format("2006-01-02"),
	}
}

func mapToListResponse(records []OutboundPart) []OutboundPartResponse {
	resp := make([]OutboundPartResponse, len(records))
	for i, record := range records {
		resp[i] = mapToResponse(record)
	}
	return resp
}
