package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/log"
	"shift-copilot-bot/conf"
	"shift-copilot-bot/domain"
)

type RateLimitStore interface {
	CheckAndConsume(ctx context.Context, key string, limit int, window time.Duration) (*domain.AdmissionResult, error)
	ReclaimExpired(ctx context.Context) (int, error)
}

type Logger interface {
	Error(ctx context.Context, message any, fields ...log.Field)
	Warn(ctx context.Context, message any, fields ...log.Field)
	Info(ctx context.Context, message any, fields ...log.Field)
	Debug(ctx context.Context, message any, fields ...log.Field)
}

type RateLimiter struct {
	store  RateLimitStore
	limit  int
	window time.Duration
	now    func() time.Time
	logger Logger
}

// NewRateLimiter expects now to be the clock the store was built with.
func NewRateLimiter(store RateLimitStore, config conf.RateLimit, now func() time.Time, logger Logger) RateLimiter {
	return RateLimiter{
		store:  store,
		limit:  config.GetMaxRequests(),
		window: config.GetWindow(),
		now:    now,
		logger: logger,
	}
}

func (s RateLimiter) Now() time.Time {
	return s.now()
}

// CheckAndConsume never fails. If the store is unavailable the request is
// admitted and the error is logged.
func (s RateLimiter) CheckAndConsume(ctx context.Context, senderId string) domain.AdmissionResult {
	result, err := s.store.CheckAndConsume(ctx, senderId, s.limit, s.window)
	if err != nil {
		s.logger.Error(
			ctx,
			errors.WithMessage(err, "rate limiter: check and consume"),
			log.String("senderId", senderId),
		)
		return domain.AdmissionResult{
			Allowed:   true,
			Remaining: -1,
			ResetAt:   s.now().Add(s.window),
		}
	}
	return *result
}

// Reclaimer periodically drops expired rate limit records.
type Reclaimer struct {
	store    RateLimitStore
	interval time.Duration
	logger   Logger
}

func NewReclaimer(store RateLimitStore, interval time.Duration, logger Logger) Reclaimer {
	return Reclaimer{
		store:    store,
		interval: interval,
		logger:   logger,
	}
}

func (s Reclaimer) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.ReclaimOnce(ctx)
		}
	}
}

func (s Reclaimer) ReclaimOnce(ctx context.Context) int {
	removed, err := s.store.ReclaimExpired(ctx)
	if err != nil && ctx.Err() == nil {
		s.logger.Error(ctx, errors.WithMessage(err, "reclaimer: reclaim expired"))
	}
	if removed > 0 {
		s.logger.Debug(ctx, "expired rate limit records reclaimed", log.Int("removed", removed))
	}
	return removed
}
