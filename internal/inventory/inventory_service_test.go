package inventory_test

import (
	"context"
	"testing"
	"time"

	"go-shopops/internal/inventory"
	inventoryerrors "go-shopops/internal/inventory/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeInventoryRepository struct {
	createFn         func(ctx context.Context, record *inventory.OutboundPart) error
	findByIDFn       func(ctx context.Context, id string) (*inventory.OutboundPart, error)
	findUsedOnJobsFn func(ctx context.Context, start, end time.Time) ([]inventory.OutboundPart, error)
	findByTaskFn     func(ctx context.Context, taskID string) ([]inventory.OutboundPart, error)
	updateFn         func(ctx context.Context, record *inventory.OutboundPart) error
}

func (f *fakeInventoryRepository) Create(ctx context.Context, record *inventory.OutboundPart) error {
	return f.createFn(ctx, record)
}

func (f *fakeInventoryRepository) FindByID(ctx context.Context, id string) (*inventory.OutboundPart, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeInventoryRepository) FindUsedOnJobs(ctx context.Context, start, end time.Time) ([]inventory.OutboundPart, error) {
	return f.findUsedOnJobsFn(ctx, start, end)
}

func (f *fakeInventoryRepository) FindByTask(ctx context.Context, taskID string) ([]inventory.OutboundPart, error) {
	return f.findByTaskFn(ctx, taskID)
}

func (f *fakeInventoryRepository) Update(ctx context.Context, record *inventory.OutboundPart) error {
	return f.updateFn(ctx, record)
}

func TestInventoryService_Issue(t *testing.T) {
	var saved *inventory.OutboundPart
	repo := &fakeInventoryRepository{
		createFn: func(ctx context.Context, record *inventory.OutboundPart) error {
			saved = record
			return nil
		},
	}
	svc := inventory.NewService(repo)

	taskID := uuid.NewString()
	resp, err := svc.Issue(context.Background(), inventory.IssuePartRequest{
		TaskID:      taskID,
		Name:        "도어록",
		Quantity:    1,
		TotalAmount: 45000,
		IssuedAt:    "2026-03-15",
	})

	assert.NoError(t, err)
	assert.Equal(t, inventory.ReasonUsedOnJob, saved.Reason)
	assert.Equal(t, taskID, resp.TaskID)
	assert.Equal(t, "2026-03-15", resp.IssuedAt)
}

func TestInventoryService_Issue_InvalidInput(t *testing.T) {
	svc := inventory.NewService(&fakeInventoryRepository{})

	_, err := svc.Issue(context.Background(), inventory.IssuePartRequest{
		TaskID: uuid.NewString(), IssuedAt: "15.03.2026",
	})
	assert.ErrorIs(t, err, inventoryerrors.ErrInvalidDateFormat)

	_, err = svc.Issue(context.Background(), inventory.IssuePartRequest{
		TaskID: "not-a-uuid", IssuedAt: "2026-03-15",
	})
	assert.ErrorIs(t, err, inventoryerrors.ErrInvalidTaskID)
}

func TestInventoryService_Void(t *testing.T) {
	record := &inventory.OutboundPart{
		ID: uuid.New(), TaskID: uuid.New(), Name: "도어록",
		TotalAmount: 45000, Reason: inventory.ReasonUsedOnJob,
	}
	var updated *inventory.OutboundPart
	repo := &fakeInventoryRepository{
		findByIDFn: func(ctx context.Context, id string) (*inventory.OutboundPart, error) {
			return record, nil
		},
		updateFn: func(ctx context.Context, r *inventory.OutboundPart) error {
			updated = r
			return nil
		},
	}
	svc := inventory.NewService(repo)

	resp, err := svc.Void(context.Background(), record.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, inventory.ReasonReturn, resp.Reason)
	assert.Equal(t, inventory.ReasonReturn, updated.Reason)
}

func TestInventoryService_Void_Guards(t *testing.T) {
	repo := &fakeInventoryRepository{
		findByIDFn: func(ctx context.Context, id string) (*inventory.OutboundPart, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := inventory.NewService(repo)

	_, err := svc.Void(context.Background(), "bad-id")
	assert.ErrorIs(t, err, inventoryerrors.ErrInvalidOutboundID)

	_, err = svc.Void(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, inventoryerrors.ErrOutboundNotFound)

	voided := &inventory.OutboundPart{ID: uuid.New(), Reason: inventory.ReasonReturn}
	repo.findByIDFn = func(ctx context.Context, id string) (*inventory.OutboundPart, error) {
		return voided, nil
	}
	_, err = svc.Void(context.Background(), voided.ID.String())
	assert.ErrorIs(t, err, inventoryerrors.ErrAlreadyVoided)
}

func TestInventoryService_PriceCatalogIsCopied(t *testing.T) {
	svc := inventory.NewService(&fakeInventoryRepository{})

	first := svc.PriceCatalog()
	first["도어록"] = 1

	second := svc.PriceCatalog()
	assert.Equal(t, int64(45000), second["도어록"])
}
