package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	perceptionDomain "loanflow-service/internal/domain/perception"
	requestDomain "loanflow-service/internal/domain/request"
)

const cacheKey = "dashboard:snapshot"

// WindowCounts buckets rows by creation time: the current week (starting
// Sunday), the current month and the current year, all in server local time.
type WindowCounts struct {
	ThisWeek  int `json:"this_week"`
	ThisMonth int `json:"this_month"`
	ThisYear  int `json:"this_year"`
}

type RequestMetrics struct {
	Total   int            `json:"total"`
	ByStage map[string]int `json:"by_stage"`
	Created WindowCounts   `json:"created"`
}

type PerceptionMetrics struct {
	Total   int            `json:"total"`
	ByStage map[string]int `json:"by_stage"`
}

// Snapshot is the admin dashboard read model. Cached briefly; GeneratedAt
// tells the caller how stale the numbers are.
type Snapshot struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Requests    RequestMetrics    `json:"requests"`
	Perceptions PerceptionMetrics `json:"perceptions"`
}

type Usecase struct {
	requests    requestDomain.Repository
	perceptions perceptionDomain.Repository
	cache       *redis.Client
	ttl         time.Duration
	log         *zap.Logger

	now func() time.Time // test seam
}

func NewUsecase(
	requests requestDomain.Repository,
	perceptions perceptionDomain.Repository,
	cache *redis.Client,
	ttl time.Duration,
	log *zap.Logger,
) *Usecase {
	return &Usecase{
		requests:    requests,
		perceptions: perceptions,
		cache:       cache,
		ttl:         ttl,
		log:         log,
		now:         time.Now,
	}
}

// Snapshot returns the dashboard numbers, serving from cache when a fresh
// snapshot exists. Cache failures degrade to a direct computation.
func (u *Usecase) Snapshot(ctx context.Context) (*Snapshot, error) {
	if u.cache != nil {
		raw, err := u.cache.Get(ctx, cacheKey).Bytes()
		switch {
		case err == nil:
			var cached Snapshot
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
			u.log.Warn("discarding corrupt dashboard cache entry")
		case !errors.Is(err, redis.Nil):
			u.log.Warn("dashboard cache read failed", zap.Error(err))
		}
	}

	snap, err := u.compute(ctx)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		if raw, err := json.Marshal(snap); err == nil {
			if err := u.cache.Set(ctx, cacheKey, raw, u.ttl).Err(); err != nil {
				u.log.Warn("dashboard cache write failed", zap.Error(err))
			}
		}
	}
	return snap, nil
}

func (u *Usecase) compute(ctx context.Context) (*Snapshot, error) {
	now := u.now()
	weekStart, monthStart, yearStart := windowStarts(now)

	requests, err := u.requests.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	perceptions, err := u.perceptions.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		GeneratedAt: now,
		Requests: RequestMetrics{
			Total:   len(requests),
			ByStage: zeroed(requestDomain.StageSequence),
		},
		Perceptions: PerceptionMetrics{
			Total:   len(perceptions),
			ByStage: zeroed(perceptionDomain.StageSequence),
		},
	}

	for _, lr := range requests {
		snap.Requests.ByStage[string(lr.Stage)]++
		if !lr.CreatedAt.Before(weekStart) {
			snap.Requests.Created.ThisWeek++
		}
		if !lr.CreatedAt.Before(monthStart) {
			snap.Requests.Created.ThisMonth++
		}
		if !lr.CreatedAt.Before(yearStart) {
			snap.Requests.Created.ThisYear++
		}
	}
	for _, p := range perceptions {
		snap.Perceptions.ByStage[string(p.Stage)]++
	}
	return snap, nil
}

// windowStarts returns midnight of the current week's Sunday, the first of
// the current month and January 1 of the current year.
func windowStarts(now time.Time) (week, month, year time.Time) {
	week = time.Date(now.Year(), now.Month(), now.Day()-int(now.Weekday()), 0, 0, 0, 0, now.Location())
	month = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	year = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	return week, month, year
}

func zeroed(names []string) map[string]int {
	m := make(map[string]int, len(names))
	for _, n := range names {
		m[n] = 0
	}
	return m
}
