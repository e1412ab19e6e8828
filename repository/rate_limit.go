package repository

import (
	"context"
	"sync"
	"time"

	"shift-copilot-bot/domain"
)

type rateLimitRecord struct {
	lock    sync.Mutex
	count   int
	resetAt time.Time
	// set under lock when the record leaves the map; holders must retry
	removed bool
}

func (r *rateLimitRecord) consume(now time.Time, limit int, window time.Duration) domain.AdmissionResult {
	if !now.Before(r.resetAt) {
		r.count = 1
		r.resetAt = now.Add(window)
		return domain.AdmissionResult{
			Allowed:   true,
			Remaining: limit - 1,
			ResetAt:   r.resetAt,
		}
	}

	if r.count < limit {
		r.count++
		return domain.AdmissionResult{
			Allowed:   true,
			Remaining: limit - r.count,
			ResetAt:   r.resetAt,
		}
	}

	return domain.AdmissionResult{
		Allowed:   false,
		Remaining: 0,
		ResetAt:   r.resetAt,
	}
}

// RateLimitMemory is a process-local fixed-window counter store.
// Each sender record has its own lock, so checks for different
// senders never contend.
type RateLimitMemory struct {
	records *sync.Map
	now     func() time.Time
}

func NewRateLimitMemory(now func() time.Time) *RateLimitMemory {
	return &RateLimitMemory{
		records: &sync.Map{},
		now:     now,
	}
}

func (r *RateLimitMemory) CheckAndConsume(
	ctx context.Context,
	key string,
	limit int,
	window time.Duration,
) (*domain.AdmissionResult, error) {
	for {
		value, ok := r.records.Load(key)
		if !ok {
			value, _ = r.records.LoadOrStore(key, &rateLimitRecord{})
		}
		record := value.(*rateLimitRecord) // nolint:forcetypeassert

		record.lock.Lock()
		if record.removed {
			record.lock.Unlock()
			continue
		}
		result := record.consume(r.now(), limit, window)
		record.lock.Unlock()

		return &result, nil
	}
}

// ReclaimExpired drops records whose window has fully elapsed.
func (r *RateLimitMemory) ReclaimExpired(ctx context.Context) (int, error) {
	now := r.now()
	removed := 0
	r.records.Range(func(key, value any) bool {
		record := value.(*rateLimitRecord) // nolint:forcetypeassert

		record.lock.Lock()
		if !record.removed && !now.Before(record.resetAt) {
			record.removed = true
			r.records.CompareAndDelete(key, record)
			removed++
		}
		record.lock.Unlock()

		return ctx.Err() == nil
	})
	return removed, ctx.Err()
}

func (r *RateLimitMemory) Len() int {
	size := 0
	r.records.Range(func(_, _ any) bool {
		size++
		return true
	})
	return size
}
