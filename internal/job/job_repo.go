package job

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

type QueryFilter struct {
	Status string
	Start  *time.Time
	End    *time.Time
	Page   int
	Limit  int
}

//go:generate mockgen -source=job_repo.go -destination=mock/job_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, j *Job) error
	FindAll(ctx context.Context, filter QueryFilter) ([]Job, int64, error)
	FindByID(ctx context.Context, id string) (*Job, error)
	FindCompletedInRange(ctx context.Context, start, end time.Time) ([]Job, error)
	Update(ctx context.Context, j *Job) error
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

func (r *repository) Create(ctx context.Context, j *Job) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *repository) FindAll(ctx context.Context, filter QueryFilter) ([]Job, int64, error) {
	db := r.db.WithContext(ctx).Model(&Job{})

	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Start != nil {
		db = db.Where("date >= ?", *filter.Start)
	}
	if filter.End != nil {
		db = db.Where("date <= ?", *filter.End)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		db = db.Offset((page - 1) * filter.Limit).Limit(filter.Limit)
	}

	var jobs []Job
	err := db.Order("date DESC").Find(&jobs).Error
	return jobs, total, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Job, error) {
	var j Job
	err := r.db.WithContext(ctx).First(&j, "id = ?", id).Error
	return &j, err
}

// FindCompletedInRange returns DONE jobs whose work date falls inside the
// inclusive range, newest first. This is the settlement's job feed.
func (r *repository) FindCompletedInRange(ctx context.Context, start, end time.Time) ([]Job, error) {
	var jobs []Job
	err := r.db.WithContext(ctx).
		Where("status = ?", StatusDone).
		Where("date BETWEEN ? AND ?", start, end).
		Order("date DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *repository) Update(ctx context.Context, j *Job) error {
	return r.db.WithContext(ctx).Save(j).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Job{}, "id = ?", id).Error
}
