package staff

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=staff_repo.go -destination=mock/staff_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, member *Staff) error
	FindAll(ctx context.Context) ([]Staff, error)
	FindActive(ctx context.Context) ([]Staff, error)
	FindByID(ctx context.Context, id string) (*Staff, error)
	Update(ctx context.Context, member *Staff) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, member *Staff) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Staff, error) {
	var members []Staff
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&members).Error
	return members, err
}

func (r *repository) FindActive(ctx context.Context) ([]Staff, error) {
	var members []Staff
	err := r.db.WithContext(ctx).
		Where("active = true").
		Order("name ASC").
		Find(&members).Error
	return members, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Staff, error) {
	var member Staff
	err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error
	return &member, err
}

func (r *repository) Update(ctx context.Context, member *Staff) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Staff{}, "id = ?", id).Error
}
