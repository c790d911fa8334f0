package memlock

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/table-tennis-league/internal/domain/rating"
)

// Locker serializes work per key inside one process.
type Locker struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
	wait  time.Duration
}

func New(wait time.Duration) *Locker {
	return &Locker{
		slots: make(map[string]chan struct{}),
		wait:  wait,
	}
}

func (l *Locker) Acquire(ctx context.Context, key string) (rating.Release, error) {
	slot := l.slot(key)

	select {
	case slot <- struct{}{}:
		return l.releaser(slot), nil
	default:
	}
	if l.wait <= 0 {
		return nil, errors.Wrapf(rating.ErrLockNotAcquired, "key=%s", key)
	}

	timer := time.NewTimer(l.wait)
	defer timer.Stop()

	select {
	case slot <- struct{}{}:
		return l.releaser(slot), nil
	case <-timer.C:
		return nil, errors.Wrapf(rating.ErrLockNotAcquired, "key=%s", key)
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "wait for scope lock")
	}
}

func (l *Locker) slot(key string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot, ok := l.slots[key]
	if !ok {
		slot = make(chan struct{}, 1)
		l.slots[key] = slot
	}
	return slot
}

func (l *Locker) releaser(slot chan struct{}) rating.Release {
	var once sync.Once
	return func(context.Context) error {
		once.Do(func() { <-slot })
		return nil
	}
}
