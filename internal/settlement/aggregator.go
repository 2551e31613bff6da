package settlement

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-shopops/internal/inventory"
	"go-shopops/internal/job"
	settlementerrors "go-shopops/internal/settlement/errors"
	"go-shopops/internal/staff"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const dateLayout = "2006-01-02"

// Snapshot is everything the calculator needs for one date range, fetched
// together so repeated queries over the same range see consistent inputs.
type Snapshot struct {
	Start         string                  `json:"start"`
	End           string                  `json:"end"`
	Jobs          []job.Job               `json:"jobs"`
	Staff         []staff.Staff           `json:"staff"`
	OutboundParts []inventory.OutboundPart `json:"outbound_parts"`
	PriceMap      map[string]int64        `json:"price_map"`
	FetchedAt     time.Time               `json:"fetched_at"`
}

type JobReader interface {
	FindCompletedInRange(ctx context.Context, start, end time.Time) ([]job.Job, error)
}

type StaffReader interface {
	FindActive(ctx context.Context) ([]staff.Staff, error)
}

type PartReader interface {
	FindUsedOnJobs(ctx context.Context, start, end time.Time) ([]inventory.OutboundPart, error)
}

// Aggregator assembles snapshots with cache-aside semantics. Only the job
// fetch is fatal: a settlement without job data is meaningless, but missing
// staff degrades to the bootstrap roster and missing outbound records
// degrade to the jobs' own part estimates.
type Aggregator struct {
	jobs   JobReader
	staff  StaffReader
	parts  PartReader
	cache  Cache
	rules  Rules
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewAggregator(
	jobs JobReader,
	staffReader StaffReader,
	parts PartReader,
	cache Cache,
	rules Rules,
	logger ...*zap.Logger,
) *Aggregator {
	l := zap.L().Named("settlement.aggregator")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("settlement.aggregator")
	}
	if cache == nil {
		cache = NewMemoryCache()
	}
	return &Aggregator{
		jobs:   jobs,
		staff:  staffReader,
		parts:  parts,
		cache:  cache,
		rules:  rules,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// Load returns the snapshot for [start, end], both YYYY-MM-DD and inclusive.
// Empty bounds default to the trailing lookback window. force bypasses the
// cache and overwrites it; concurrent rebuilds of the same range collapse
// into one fetch.
func (a *Aggregator) Load(ctx context.Context, start, end string, force bool) (*Snapshot, error) {
	startDay, endDay, err := a.resolveRange(start, end)
	if err != nil {
		return nil, err
	}

	key := cacheKey(startDay, endDay)

	if !force {
		if cached, err := a.cache.Get(ctx, key); err == nil {
			var snap Snapshot
			if json.Unmarshal(cached, &snap) == nil {
				return &snap, nil
			}
		}
	}

	v, err, _ := a.sf.Do(key, func() (interface{}, error) {
		return a.build(ctx, startDay, endDay, key)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}

// Invalidate drops the cached snapshot for the given range, defaulting like
// Load does.
func (a *Aggregator) Invalidate(ctx context.Context, start, end string) error {
	startDay, endDay, err := a.resolveRange(start, end)
	if err != nil {
		return err
	}
	return a.cache.Invalidate(ctx, cacheKey(startDay, endDay))
}

func (a *Aggregator) build(ctx context.Context, startDay, endDay time.Time, key string) (*Snapshot, error) {
	// Jobs carry a date-only column; the range covers the whole end day.
	rangeStart := startDay
	rangeEnd := endDay.Add(24*time.Hour - time.Second)

	jobs, err := a.jobs.FindCompletedInRange(ctx, rangeStart, rangeEnd)
	if err != nil {
		a.logger.Error("job fetch failed", zap.Error(err))
		return nil, settlementerrors.ErrDataUnavailable
	}

	roster, err := a.staff.FindActive(ctx)
	if err != nil {
		a.logger.Warn("staff fetch failed, using bootstrap roster", zap.Error(err))
		roster = bootstrapRoster()
	}

	outbound, err := a.parts.FindUsedOnJobs(ctx, rangeStart, rangeEnd)
	if err != nil {
		a.logger.Warn("outbound parts fetch failed, falling back to job estimates", zap.Error(err))
		outbound = []inventory.OutboundPart{}
	}

	snap := &Snapshot{
		Start:         startDay.Format(dateLayout),
		End:           endDay.Format(dateLayout),
		Jobs:          jobs,
		Staff:         roster,
		OutboundParts: outbound,
		PriceMap:      inventory.BuildPriceMap(),
		FetchedAt:     time.Now().UTC(),
	}

	if payload, err := json.Marshal(snap); err == nil {
		if err := a.cache.Set(ctx, key, payload, a.rules.CacheTTL); err != nil {
			a.logger.Warn("snapshot cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return snap, nil
}

func (a *Aggregator) resolveRange(start, end string) (time.Time, time.Time, error) {
	now := time.Now()
	endDay := now
	startDay := now.AddDate(0, -a.rules.DefaultRangeMonths, 0)

	var err error
	if start != "" {
		startDay, err = time.Parse(dateLayout, start)
		if err != nil {
			return time.Time{}, time.Time{}, settlementerrors.ErrInvalidDateFormat
		}
	}
	if end != "" {
		endDay, err = time.Parse(dateLayout, end)
		if err != nil {
			return time.Time{}, time.Time{}, settlementerrors.ErrInvalidDateFormat
		}
	}

	startDay = truncateToDay(startDay)
	endDay = truncateToDay(endDay)

	if startDay.After(endDay) {
		return time.Time{}, time.Time{}, settlementerrors.ErrInvalidDateRange
	}
	return startDay, endDay, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func cacheKey(start, end time.Time) string {
	return fmt.Sprintf("settlement:snapshot:%s:%s", start.Format(dateLayout), end.Format(dateLayout))
}

// bootstrapRoster covers the window before the staff table is provisioned:
// the three founding executives with their historical 4/3/3 split.
func bootstrapRoster() []staff.Staff {
	return []staff.Staff{
		{Name: "대표", Type: staff.TypeExecutive, Ratio: 4, Active: true},
		{Name: "부대표", Type: staff.TypeExecutive, Ratio: 3, Active: true},
		{Name: "실장", Type: staff.TypeExecutive, Ratio: 3, Active: true},
	}
}
