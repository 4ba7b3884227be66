package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/srgjo27/venue_booking/internal/core/domain"
)

const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`

type RedisOptions struct {
	// Wait bounds how long Acquire keeps retrying.
	Wait time.Duration
	// TTL is the lease on the key; it must outlive the critical section.
	TTL time.Duration
	// Poll is the delay between SET NX attempts.
	Poll time.Duration
}

// RedisLocker is a LockManager shared by every process pointing at the same
// Redis. Each lock is a key holding a random token with a lease.
type RedisLocker struct {
	client   redis.Cmdable
	opts     RedisOptions
	log      *slog.Logger
	newToken func() string
}

func NewRedisLocker(client redis.Cmdable, opts RedisOptions, log *slog.Logger) *RedisLocker {
	if opts.Poll <= 0 {
		opts.Poll = 25 * time.Millisecond
	}
	return &RedisLocker{
		client:   client,
		opts:     opts,
		log:      log,
		newToken: func() string { return uuid.NewString() },
	}
}

func (r *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	redisKey := "lock:" + key
	token := r.newToken()
	deadline := time.Now().Add(r.opts.Wait)

	for {
		ok, err := r.client.SetNX(ctx, redisKey, token, r.opts.TTL).Result()
		if err != nil {
			return nil, domain.StorageError("acquire lock "+key, err)
		}
		if ok {
			break
		}

		if !time.Now().Add(r.opts.Poll).Before(deadline) {
			return nil, fmt.Errorf("%w: %s", domain.ErrLockTimeout, key)
		}

		select {
		case <-time.After(r.opts.Poll):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() { r.release(redisKey, token) })
	}, nil
}

func (r *RedisLocker) release(redisKey, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	n, err := r.client.Eval(ctx, releaseScript, []string{redisKey}, token).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		r.log.Error("failed to release lock", slog.String("key", redisKey), slog.Any("error", err))
		return
	}
	if n == 0 {
		r.log.Warn("lock lease expired before release", slog.String("key", redisKey))
	}
}
