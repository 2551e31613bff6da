package job

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"go-shopops/internal/events"
	joberrors "go-shopops/internal/job/errors"
	"go-shopops/internal/messaging/kafka"
	"go-shopops/internal/shared/contextutil"
	"go-shopops/internal/shared/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=job_service.go -destination=mock/job_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateJobRequest) (JobResponse, error)
	GetAll(ctx context.Context, filter ListJobsFilterRequest) ([]JobResponse, *response.PaginationMeta, error)
	GetByID(ctx context.Context, id string) (JobResponse, error)
	Update(ctx context.Context, id string, req UpdateJobRequest) (JobResponse, error)
	Complete(ctx context.Context, id string) (JobResponse, error)
	Reopen(ctx context.Context, id string) (JobResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("job.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("job.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateJobRequest) (JobResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	date, err := parseDate(req.Date)
	if err != nil {
		return JobResponse{}, err
	}

	parts := ParsePartsField(req.Parts)
	if parts.Malformed {
		s.logger.Warn("job parts field unparseable, treating as empty",
			zap.String("request_id", rid),
			zap.String("raw", req.Parts),
		)
	}

	j := &Job{
		ID:     uuid.New(),
		Client: req.Client,
		Worker: req.Worker,
		Amount: req.Amount,
		Fee:    req.Fee,
		Parts:  parts,
		Status: StatusOpen,
		Date:   date,
		Note:   req.Note,
	}

	if err := s.repo.Create(ctx, j); err != nil {
		s.logger.Error("create job persist failed", zap.String("request_id", rid), zap.Error(err))
		return JobResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create job success",
		zap.String("request_id", rid),
		zap.String("job_id", j.ID.String()),
		zap.Int64("amount", j.Amount),
	)

	return mapToResponse(*j), nil
}

func (s *service) GetAll(ctx context.Context, filter ListJobsFilterRequest) ([]JobResponse, *response.PaginationMeta, error) {
	queryFilter := QueryFilter{
		Status: filter.Status,
		Page:   filter.Page,
		Limit:  filter.Limit,
	}

	if filter.Start != "" {
		start, err := parseDate(filter.Start)
		if err != nil {
			return nil, nil, err
		}
		queryFilter.Start = &start
	}
	if filter.End != "" {
		end, err := parseDate(filter.End)
		if err != nil {
			return nil, nil, err
		}
		queryFilter.End = &end
	}
	if queryFilter.Start != nil && queryFilter.End != nil && queryFilter.Start.After(*queryFilter.End) {
		return nil, nil, joberrors.ErrInvalidDateRange
	}

	jobs, total, err := s.repo.FindAll(ctx, queryFilter)
	if err != nil {
		s.logger.Error("get all jobs failed", zap.Error(err))
		return nil, nil, mapRepositoryError(err)
	}

	var meta *response.PaginationMeta
	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		m := response.NewPaginationMeta(total, page, filter.Limit)
		meta = &m
	}

	return mapToListResponse(jobs), meta, nil
}

func (s *service) GetByID(ctx context.Context, id string) (JobResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return JobResponse{}, joberrors.ErrInvalidJobID
	}

	j, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return JobResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*j), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateJobRequest) (JobResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return JobResponse{}, joberrors.ErrInvalidJobID
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return JobResponse{}, err
	}

	j, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return JobResponse{}, mapRepositoryError(err)
	}
	if j.Status == StatusDone {
		return JobResponse{}, joberrors.ErrEditCompletedJob
	}

	parts := ParsePartsField(req.Parts)
	if parts.Malformed {
		s.logger.Warn("job parts field unparseable, treating as empty",
			zap.String("job_id", id),
			zap.String("raw", req.Parts),
		)
	}

	j.Client = req.Client
	j.Worker = req.Worker
	j.Amount = req.Amount
	j.Fee = req.Fee
	j.Parts = parts
	j.Date = date
	j.Note = req.Note

	if err := s.repo.Update(ctx, j); err != nil {
		s.logger.Error("update job persist failed", zap.String("job_id", id), zap.Error(err))
		return JobResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*j), nil
}

// Complete marks the job DONE and queues the lifecycle event in the same
// transaction, so the event exists iff the status change committed.
func (s *service) Complete(ctx context.Context, id string) (JobResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if _, err := uuid.Parse(id); err != nil {
		return JobResponse{}, joberrors.ErrInvalidJobID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("complete job begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return JobResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	j, err := qtx.FindByID(ctx, id)
	if err != nil {
		return JobResponse{}, mapRepositoryError(err)
	}
	if j.Status == StatusDone {
		return JobResponse{}, joberrors.ErrAlreadyCompleted
	}

	now := time.Now().UTC()
	j.Status = StatusDone
	j.CompletedAt = &now

	if err := qtx.Update(ctx, j); err != nil {
		s.logger.Error("complete job persist failed", zap.String("job_id", id), zap.Error(err))
		return JobResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.JobCompletedEvent{
			EventType:  "job_completed",
			RequestID:  rid,
			JobID:      j.ID.String(),
			Client:     j.Client,
			Amount:     j.Amount,
			Workers:    j.WorkerNames(),
			OccurredAt: now,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return JobResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "job",
			AggregateID:   j.ID.String(),
			EventType:     event.EventType,
			Topic:         events.JobCompletedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("complete job outbox persist failed",
				zap.String("job_id", j.ID.String()),
				zap.Error(err),
			)
			return JobResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return JobResponse{}, err
	}

	s.logger.Info("job completed",
		zap.String("request_id", rid),
		zap.String("job_id", j.ID.String()),
	)

	return mapToResponse(*j), nil
}

func (s *service) Reopen(ctx context.Context, id string) (JobResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return JobResponse{}, joberrors.ErrInvalidJobID
	}

	j, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return JobResponse{}, mapRepositoryError(err)
	}
	if j.Status != StatusDone {
		return JobResponse{}, joberrors.ErrNotCompleted
	}

	j.Status = StatusOpen
	j.CompletedAt = nil

	if err := s.repo.Update(ctx, j); err != nil {
		return JobResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("job reopened", zap.String("job_id", id))
	return mapToResponse(*j), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return joberrors.ErrInvalidJobID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	return nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, joberrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(j Job) JobResponse {
	resp := JobResponse{
		ID:       j.ID.String(),
		Client:   j.Client,
		Worker:   j.Worker,
		TeamLead: j.TeamLead(),
		Amount:   j.Amount,
		Fee:      j.Fee,
		Parts:    j.Parts.Lines,
		Status:   j.Status,
		Date:     j.Date.Format("2006-01-02"),
		Note:     j.Note,
	}

	if j.CompletedAt != nil {
		v := j.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &v
	}

	return resp
}

func mapToListResponse(jobs []Job) []JobResponse {
	resp := make([]JobResponse, len(jobs))
	for i, j := range jobs {
		resp[i] = mapToResponse(j)
	}
	return resp
}
