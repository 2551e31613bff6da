package job_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-shopops/internal/job"
	joberrors "go-shopops/internal/job/errors"
	"go-shopops/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeJobRepository struct {
	createFn               func(ctx context.Context, j *job.Job) error
	findAllFn              func(ctx context.Context, filter job.QueryFilter) ([]job.Job, int64, error)
	findByIDFn             func(ctx context.Context, id string) (*job.Job, error)
	findCompletedInRangeFn func(ctx context.Context, start, end time.Time) ([]job.Job, error)
	updateFn               func(ctx context.Context, j *job.Job) error
	deleteFn               func(ctx context.Context, id string) error
}

func (f *fakeJobRepository) WithTx(tx *sql.Tx) job.Repository { return f }

func (f *fakeJobRepository) Create(ctx context.Context, j *job.Job) error {
	return f.createFn(ctx, j)
}

func (f *fakeJobRepository) FindAll(ctx context.Context, filter job.QueryFilter) ([]job.Job, int64, error) {
	return f.findAllFn(ctx, filter)
}

func (f *fakeJobRepository) FindByID(ctx context.Context, id string) (*job.Job, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeJobRepository) FindCompletedInRange(ctx context.Context, start, end time.Time) ([]job.Job, error) {
	return f.findCompletedInRangeFn(ctx, start, end)
}

func (f *fakeJobRepository) Update(ctx context.Context, j *job.Job) error {
	return f.updateFn(ctx, j)
}

func (f *fakeJobRepository) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

type fakeOutboxRepository struct {
	created []kafka.OutboxEvent
	err     error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, event)
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error   { return nil }
func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id, _ string) error {
	return nil
}

func newTxDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestJobService_Create(t *testing.T) {
	var saved *job.Job
	repo := &fakeJobRepository{
		createFn: func(ctx context.Context, j *job.Job) error {
			saved = j
			return nil
		},
	}
	svc := job.NewService(nil, repo)

	resp, err := svc.Create(context.Background(), job.CreateJobRequest{
		Client: "공간아이앤디",
		Worker: "김철수,이영희",
		Amount: 150000,
		Fee:    5000,
		Parts:  "모터:1",
		Date:   "2026-03-15",
	})

	assert.NoError(t, err)
	assert.Equal(t, job.StatusOpen, saved.Status)
	assert.Equal(t, job.PartsLegacy, saved.Parts.Kind)
	assert.Equal(t, "공간아이앤디", resp.Client)
	assert.Equal(t, "김철수", resp.TeamLead)
	assert.Equal(t, "2026-03-15", resp.Date)
}

func TestJobService_Create_InvalidDate(t *testing.T) {
	svc := job.NewService(nil, &fakeJobRepository{})

	_, err := svc.Create(context.Background(), job.CreateJobRequest{
		Client: "c", Worker: "w", Date: "15-03-2026",
	})

	assert.ErrorIs(t, err, joberrors.ErrInvalidDateFormat)
}

func TestJobService_GetAll_RangeValidation(t *testing.T) {
	svc := job.NewService(nil, &fakeJobRepository{})

	_, _, err := svc.GetAll(context.Background(), job.ListJobsFilterRequest{
		Start: "2026-04-01",
		End:   "2026-03-01",
	})

	assert.ErrorIs(t, err, joberrors.ErrInvalidDateRange)
}

func TestJobService_GetAll_Pagination(t *testing.T) {
	var gotFilter job.QueryFilter
	repo := &fakeJobRepository{
		findAllFn: func(ctx context.Context, filter job.QueryFilter) ([]job.Job, int64, error) {
			gotFilter = filter
			return []job.Job{{ID: uuid.New(), Status: job.StatusOpen}}, 41, nil
		},
	}
	svc := job.NewService(nil, repo)

	resp, meta, err := svc.GetAll(context.Background(), job.ListJobsFilterRequest{
		Status: job.StatusOpen,
		Page:   2,
		Limit:  20,
	})

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, 2, gotFilter.Page)
	assert.Equal(t, 20, gotFilter.Limit)
	assert.Equal(t, int64(41), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 2, meta.Page)
}

func TestJobService_GetByID_NotFound(t *testing.T) {
	repo := &fakeJobRepository{
		findByIDFn: func(ctx context.Context, id string) (*job.Job, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := job.NewService(nil, repo)

	_, err := svc.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, joberrors.ErrJobNotFound)

	_, err = svc.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, joberrors.ErrInvalidJobID)
}

func TestJobService_Update_RejectsCompletedJob(t *testing.T) {
	repo := &fakeJobRepository{
		findByIDFn: func(ctx context.Context, id string) (*job.Job, error) {
			return &job.Job{ID: uuid.New(), Status: job.StatusDone}, nil
		},
	}
	svc := job.NewService(nil, repo)

	_, err := svc.Update(context.Background(), uuid.NewString(), job.UpdateJobRequest{
		Client: "c", Worker: "w", Date: "2026-03-15",
	})

	assert.ErrorIs(t, err, joberrors.ErrEditCompletedJob)
}

func TestJobService_Complete(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	id := uuid.New()
	var updated *job.Job
	repo := &fakeJobRepository{
		findByIDFn: func(ctx context.Context, got string) (*job.Job, error) {
			assert.Equal(t, id.String(), got)
			return &job.Job{
				ID:     id,
				Client: "공간아이앤디",
				Worker: "김철수,이영희",
				Amount: 150000,
				Status: job.StatusOpen,
				Date:   time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			}, nil
		},
		updateFn: func(ctx context.Context, j *job.Job) error {
			updated = j
			return nil
		},
	}
	outbox := &fakeOutboxRepository{}
	svc := job.NewServiceWithOutbox(db, repo, outbox)

	resp, err := svc.Complete(context.Background(), id.String())

	assert.NoError(t, err)
	assert.Equal(t, job.StatusDone, resp.Status)
	assert.NotNil(t, updated.CompletedAt)

	assert.Len(t, outbox.created, 1)
	event := outbox.created[0]
	assert.Equal(t, "job", event.AggregateType)
	assert.Equal(t, id.String(), event.AggregateID)
	assert.Equal(t, "job_completed", event.EventType)
	assert.Equal(t, kafka.OutboxStatusPending, event.Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobService_Complete_AlreadyCompleted(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeJobRepository{
		findByIDFn: func(ctx context.Context, id string) (*job.Job, error) {
			return &job.Job{ID: uuid.New(), Status: job.StatusDone}, nil
		},
	}
	svc := job.NewServiceWithOutbox(db, repo, &fakeOutboxRepository{})

	_, err := svc.Complete(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, joberrors.ErrAlreadyCompleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobService_Complete_OutboxFailureRollsBack(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeJobRepository{
		findByIDFn: func(ctx context.Context, id string) (*job.Job, error) {
			return &job.Job{ID: uuid.New(), Status: job.StatusOpen}, nil
		},
		updateFn: func(ctx context.Context, j *job.Job) error { return nil },
	}
	outbox := &fakeOutboxRepository{err: assert.AnError}
	svc := job.NewServiceWithOutbox(db, repo, outbox)

	_, err := svc.Complete(context.Background(), uuid.NewString())

	assert.Error(t, err)
	assert.Empty(t, outbox.created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobService_Reopen(t *testing.T) {
	completedAt := time.Now().UTC()
	var updated *job.Job
	repo := &fakeJobRepository{
		findByIDFn: func(ctx context.Context, id string) (*job.Job, error) {
			return &job.Job{ID: uuid.New(), Status: job.StatusDone, CompletedAt: &completedAt}, nil
		},
		updateFn: func(ctx context.Context, j *job.Job) error {
			updated = j
			return nil
		},
	}
	svc := job.NewService(nil, repo)

	resp, err := svc.Reopen(context.Background(), uuid.NewString())

	assert.NoError(t, err)
	assert.Equal(t, job.StatusOpen, resp.Status)
	assert.Nil(t, updated.CompletedAt)
}

func TestJobService_Reopen_NotCompleted(t *testing.T) {
	repo := &fakeJobRepository{
		findByIDFn: func(ctx context.Context, id string) (*job.Job, error) {
			return &job.Job{ID: uuid.New(), Status: job.StatusOpen}, nil
		},
	}
	svc := job.NewService(nil, repo)

	_, err := svc.Reopen(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, joberrors.ErrNotCompleted)
}
