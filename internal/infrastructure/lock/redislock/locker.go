package redislock

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/table-tennis-league/internal/domain/rating"
	"github.com/riskibarqy/table-tennis-league/internal/platform/resilience"
)

var ErrLockNotHeld = errors.New("redis lock not held by this owner")

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type Config struct {
	// TTL bounds how long a crashed holder can block a scope.
	TTL           time.Duration
	Wait          time.Duration
	RetryInterval time.Duration
	Breaker       resilience.BreakerConfig
}

// Locker hands out SET NX locks with a random owner token per acquisition.
type Locker struct {
	client  redis.UniversalClient
	cfg     Config
	breaker *resilience.Breaker
}

func New(client redis.UniversalClient, cfg Config) *Locker {
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * time.Second
	}
	if cfg.Wait < 0 {
		cfg.Wait = 0
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = 100 * time.Millisecond
	}

	return &Locker{
		client:  client,
		cfg:     cfg,
		breaker: resilience.NewBreaker(cfg.Breaker),
	}
}

// Acquire retries until the lock is free or Wait has passed.
func (l *Locker) Acquire(ctx context.Context, key string) (rating.Release, error) {
	token := uuid.NewString()
	deadline := time.Now().Add(l.cfg.Wait)

	for {
		ok, err := l.tryAcquire(ctx, key, token)
		if err != nil {
			return nil, err
		}
		if ok {
			return l.releaser(key, token), nil
		}

		if !time.Now().Add(l.cfg.RetryInterval).Before(deadline) {
			return nil, errors.Wrapf(rating.ErrLockNotAcquired, "key=%s", key)
		}
		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "wait for redis lock")
		case <-time.After(l.cfg.RetryInterval):
		}
	}
}

func (l *Locker) tryAcquire(ctx context.Context, key, token string) (bool, error) {
	var acquired bool
	err := l.breaker.Execute(func() error {
		ok, err := l.client.SetNX(ctx, key, token, l.cfg.TTL).Result()
		if err != nil {
			return errors.Wrapf(err, "redis setnx key=%s", key)
		}
		acquired = ok
		return nil
	}, countableRedisError)
	return acquired, err
}

func (l *Locker) releaser(key, token string) rating.Release {
	return func(ctx context.Context) error {
		return l.breaker.Execute(func() error {
			deleted, err := releaseScript.Run(ctx, l.client, []string{key}, token).Int()
			if err != nil {
				return errors.Wrapf(err, "redis release key=%s", key)
			}
			if deleted == 0 {
				return errors.Wrapf(ErrLockNotHeld, "key=%s", key)
			}
			return nil
		}, countableRedisError)
	}
}

// countableRedisError keeps caller cancellations and ownership misses from
// tripping the breaker.
func countableRedisError(err error) bool {
	switch {
	case errors.Is(err, ErrLockNotHeld),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return false
	default:
		return true
	}
}
