package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/txix-open/isp-kit/test"
	"golang.org/x/sync/errgroup"
	"shift-copilot-bot/repository"
)

func newRedis(t *testing.T) redis.UniversalClient {
	t.Helper()
	test, _ := test.New(t)
	redisHost := test.Config().Optional().String("REDIS_HOST", "localhost")
	redisPort := test.Config().Optional().String("REDIS_PORT", "6379")
	cli := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", redisHost, redisPort)})
	t.Cleanup(func() {
		_ = cli.Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := cli.Ping(ctx).Err()
	if err != nil {
		t.Skipf("redis is not available: %v", err)
	}
	return cli
}

func TestRateLimitRedisFixedWindow(t *testing.T) {
	t.Parallel()
	cli := newRedis(t)
	_, require := test.New(t)

	store := repository.NewRateLimitRedis(cli, time.Now)
	ctx := context.Background()
	sender := uuid.NewString()

	for i := 1; i <= limit; i++ {
		result, err := store.CheckAndConsume(ctx, sender, limit, window)
		require.NoError(err)
		require.True(result.Allowed)
		require.EqualValues(limit-i, result.Remaining)
		require.WithinDuration(time.Now().Add(window), result.ResetAt, 2*time.Second)
	}

	result, err := store.CheckAndConsume(ctx, sender, limit, window)
	require.NoError(err)
	require.False(result.Allowed)
	require.EqualValues(0, result.Remaining)

	removed, err := store.ReclaimExpired(ctx)
	require.NoError(err)
	require.EqualValues(0, removed)
}

func TestRateLimitRedisWindowExpires(t *testing.T) {
	t.Parallel()
	cli := newRedis(t)
	_, require := test.New(t)

	store := repository.NewRateLimitRedis(cli, time.Now)
	ctx := context.Background()
	sender := uuid.NewString()
	shortWindow := 200 * time.Millisecond

	for i := 0; i < 2; i++ {
		_, err := store.CheckAndConsume(ctx, sender, 2, shortWindow)
		require.NoError(err)
	}
	result, err := store.CheckAndConsume(ctx, sender, 2, shortWindow)
	require.NoError(err)
	require.False(result.Allowed)

	time.Sleep(300 * time.Millisecond)

	result, err = store.CheckAndConsume(ctx, sender, 2, shortWindow)
	require.NoError(err)
	require.True(result.Allowed)
	require.EqualValues(1, result.Remaining)
}

func TestRateLimitRedisConcurrent(t *testing.T) {
	t.Parallel()
	cli := newRedis(t)
	_, require := test.New(t)

	store := repository.NewRateLimitRedis(cli, time.Now)
	sender := uuid.NewString()
	results := make(chan bool, 50)
	group, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < 50; i++ {
		group.Go(func() error {
			result, err := store.CheckAndConsume(ctx, sender, limit, window)
			if err != nil {
				return err
			}
			results <- result.Allowed
			return nil
		})
	}
	require.NoError(group.Wait())
	close(results)

	allowed := 0
	for ok := range results {
		if ok {
			allowed++
		}
	}
	require.EqualValues(limit, allowed)
}
