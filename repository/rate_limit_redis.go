package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"shift-copilot-bot/domain"
)

// KEYS[1] - counter key, ARGV[1] - limit, ARGV[2] - window in ms.
// Returns {allowed, count, ttlMs}.
var fixedWindowScript = redis.NewScript(`
local limit = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local count = tonumber(redis.call('GET', KEYS[1]) or '0')
local ttl = redis.call('PTTL', KEYS[1])
if ttl <= 0 then
	redis.call('SET', KEYS[1], 1, 'PX', window)
	return {1, 1, window}
end
if count >= limit then
	return {0, count, ttl}
end
count = redis.call('INCR', KEYS[1])
return {1, count, ttl}
`) // nolint:gochecknoglobals

type RateLimitRedis struct {
	cli redis.UniversalClient
	now func() time.Time
}

func NewRateLimitRedis(cli redis.UniversalClient, now func() time.Time) RateLimitRedis {
	return RateLimitRedis{
		cli: cli,
		now: now,
	}
}

func (r RateLimitRedis) CheckAndConsume(
	ctx context.Context,
	key string,
	limit int,
	window time.Duration,
) (*domain.AdmissionResult, error) {
	values, err := fixedWindowScript.Run(ctx, r.cli, []string{r.key(key)}, limit, window.Milliseconds()).Int64Slice()
	if err != nil {
		return nil, errors.WithMessage(err, "run fixed window script")
	}
	if len(values) != 3 { // nolint:mnd
		return nil, errors.Errorf("unexpected fixed window script result: %v", values)
	}

	allowed, count, ttl := values[0] == 1, int(values[1]), time.Duration(values[2])*time.Millisecond
	remaining := 0
	if allowed {
		remaining = limit - count
	}
	return &domain.AdmissionResult{
		Allowed:   allowed,
		Remaining: remaining,
		ResetAt:   r.now().Add(ttl),
	}, nil
}

// ReclaimExpired is a no-op: expired windows are dropped by key TTL.
func (r RateLimitRedis) ReclaimExpired(ctx context.Context) (int, error) {
	return 0, nil
}

func (r RateLimitRedis) key(senderId string) string {
	return fmt.Sprintf("rate_limit:%s", senderId)
}
