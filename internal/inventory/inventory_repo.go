package inventory

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=inventory_repo.go -destination=mock/inventory_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, record *OutboundPart) error
	FindByID(ctx context.Context, id string) (*OutboundPart, error)
	FindUsedOnJobs(ctx context.Context, start, end time.Time) ([]OutboundPart, error)
	FindByTask(ctx context.Context, taskID string) ([]OutboundPart, error)
	Update(ctx context.Context, record *OutboundPart) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, record *OutboundPart) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*OutboundPart, error) {
	var record OutboundPart
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	return &record, err
}

func (r *repository) FindUsedOnJobs(ctx context.Context, start, end time.Time) ([]OutboundPart, error) {
	var records []OutboundPart
	err := r.db.WithContext(ctx).
		Where("reason = ?", ReasonUsedOnJob).
		Where("issued_at BETWEEN ? AND ?", start, end).
		Order("issued_at DESC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindByTask(ctx context.Context, taskID string) ([]OutboundPart, error) {
	var records []OutboundPart
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("issued_at DESC").
		Find(&records).Error
	return records, err
}

func (r *repository) Update(ctx context.Context, record *OutboundPart) error {
	return r.db.WithContext(ctx).Save(record).Error
}
