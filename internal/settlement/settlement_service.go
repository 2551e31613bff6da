package settlement

import (
	"context"

	"go-shopops/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=settlement_service.go -destination=mock/settlement_service_mock.go -package=mock
type Service interface {
	Compute(ctx context.Context, req ComputeRequest) (*Result, error)
	InvalidateCache(ctx context.Context, req InvalidateRequest) error
}

type service struct {
	aggregator *Aggregator
	calculator *Calculator
	logger     *zap.Logger
}

func NewService(aggregator *Aggregator, calculator *Calculator, logger ...*zap.Logger) Service {
	l := zap.L().Named("settlement.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("settlement.service")
	}
	return &service{
		aggregator: aggregator,
		calculator: calculator,
		logger:     l,
	}
}

func (s *service) Compute(ctx context.Context, req ComputeRequest) (*Result, error) {
	rid := contextutil.GetRequestID(ctx)

	snap, err := s.aggregator.Load(ctx, req.Start, req.End, req.Force)
	if err != nil {
		s.logger.Error("snapshot load failed",
			zap.String("request_id", rid),
			zap.String("start", req.Start),
			zap.String("end", req.End),
			zap.Error(err),
		)
		return nil, err
	}

	result := s.calculator.Calculate(*snap)

	s.logger.Info("settlement computed",
		zap.String("request_id", rid),
		zap.String("start", result.Start),
		zap.String("end", result.End),
		zap.Int("jobs", len(result.Jobs)),
		zap.Int64("total_revenue", result.TotalRevenue),
		zap.Int("unmatched_workers", len(result.UnmatchedWorkers)),
	)

	return result, nil
}

func (s *service) InvalidateCache(ctx context.Context, req InvalidateRequest) error {
	if err := s.aggregator.Invalidate(ctx, req.Start, req.End); err != nil {
		s.logger.Error("cache invalidation failed",
			zap.String("start", req.Start),
			zap.String("end", req.End),
			zap.Error(err),
		)
		return err
	}
	return nil
}
