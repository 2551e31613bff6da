package staff_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-shopops/internal/staff"
	stafferrors "go-shopops/internal/staff/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeStaffRepository struct {
	createFn     func(ctx context.Context, member *staff.Staff) error
	findAllFn    func(ctx context.Context) ([]staff.Staff, error)
	findActiveFn func(ctx context.Context) ([]staff.Staff, error)
	findByIDFn   func(ctx context.Context, id string) (*staff.Staff, error)
	updateFn     func(ctx context.Context, member *staff.Staff) error
	deleteFn     func(ctx context.Context, id string) error
}

func (f *fakeStaffRepository) Create(ctx context.Context, member *staff.Staff) error {
	return f.createFn(ctx, member)
}

func (f *fakeStaffRepository) FindAll(ctx context.Context) ([]staff.Staff, error) {
	return f.findAllFn(ctx)
}

func (f *fakeStaffRepository) FindActive(ctx context.Context) ([]staff.Staff, error) {
	return f.findActiveFn(ctx)
}

func (f *fakeStaffRepository) FindByID(ctx context.Context, id string) (*staff.Staff, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeStaffRepository) Update(ctx context.Context, member *staff.Staff) error {
	return f.updateFn(ctx, member)
}

func (f *fakeStaffRepository) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func TestStaffService_Create_ValidatesCompensation(t *testing.T) {
	svc := staff.NewService(&fakeStaffRepository{}, nil)

	_, err := svc.Create(context.Background(), staff.CreateStaffRequest{
		Name: "김대표", Type: staff.TypeExecutive, Ratio: 0,
	})
	assert.ErrorIs(t, err, stafferrors.ErrExecutiveNeedsRatio)

	_, err = svc.Create(context.Background(), staff.CreateStaffRequest{
		Name: "최기사", Type: staff.TypeContractWorker, AllowanceRate: 0,
	})
	assert.ErrorIs(t, err, stafferrors.ErrContractorNeedsRate)
}

func TestStaffService_Create_InvalidatesOptionsCache(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectDel(staff.OptionsCacheKey).SetVal(1)

	repo := &fakeStaffRepository{
		createFn: func(ctx context.Context, member *staff.Staff) error { return nil },
	}
	svc := staff.NewService(repo, rdb)

	resp, err := svc.Create(context.Background(), staff.CreateStaffRequest{
		Name: "최기사", Type: staff.TypeContractWorker, AllowanceRate: 70,
	})

	assert.NoError(t, err)
	assert.True(t, resp.Active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStaffService_GetOptions_CacheHit(t *testing.T) {
	cached := []staff.StaffResponse{{ID: uuid.NewString(), Name: "최기사", Active: true}}
	payload, _ := json.Marshal(cached)

	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet(staff.OptionsCacheKey).SetVal(string(payload))

	repo := &fakeStaffRepository{
		findActiveFn: func(ctx context.Context) ([]staff.Staff, error) {
			t.Fatal("repository must not be hit on cache hit")
			return nil, nil
		},
	}
	svc := staff.NewService(repo, rdb)

	resp, err := svc.GetOptions(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, cached, resp)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStaffService_GetOptions_CacheMissFillsCache(t *testing.T) {
	members := []staff.Staff{
		{ID: uuid.New(), Name: "최기사", Type: staff.TypeContractWorker, AllowanceRate: 70, Active: true},
	}
	expected := []staff.StaffResponse{
		{ID: members[0].ID.String(), Name: "최기사", Type: staff.TypeContractWorker, AllowanceRate: 70, Active: true},
	}
	payload, _ := json.Marshal(expected)

	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet(staff.OptionsCacheKey).RedisNil()
	mock.ExpectSet(staff.OptionsCacheKey, payload, time.Hour).SetVal("OK")

	repo := &fakeStaffRepository{
		findActiveFn: func(ctx context.Context) ([]staff.Staff, error) { return members, nil },
	}
	svc := staff.NewService(repo, rdb)

	resp, err := svc.GetOptions(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, expected, resp)
}

func TestStaffService_GetByID_InvalidID(t *testing.T) {
	svc := staff.NewService(&fakeStaffRepository{}, nil)

	_, err := svc.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, stafferrors.ErrInvalidStaffID)
}

func TestStaffService_Update_TogglesActive(t *testing.T) {
	member := &staff.Staff{
		ID: uuid.New(), Name: "최기사", Type: staff.TypeContractWorker,
		AllowanceRate: 70, Active: true,
	}
	var updated *staff.Staff
	repo := &fakeStaffRepository{
		findByIDFn: func(ctx context.Context, id string) (*staff.Staff, error) { return member, nil },
		updateFn: func(ctx context.Context, m *staff.Staff) error {
			updated = m
			return nil
		},
	}
	svc := staff.NewService(repo, nil)

	inactive := false
	resp, err := svc.Update(context.Background(), member.ID.String(), staff.UpdateStaffRequest{
		Name: "최기사", Type: staff.TypeContractWorker, AllowanceRate: 70, Active: &inactive,
	})

	assert.NoError(t, err)
	assert.False(t, resp.Active)
	assert.False(t, updated.Active)
}
