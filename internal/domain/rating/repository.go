package rating

import (
	"context"
	"errors"
)

var ErrLockNotAcquired = errors.New("rating scope lock not acquired")

type Repository interface {
	ListByScope(ctx context.Context, scope Scope) ([]PlayerRating, error)
	// UpsertScope writes all snapshots or none of them.
	UpsertScope(ctx context.Context, scope Scope, ratings []PlayerRating) error
}

// Release gives a held lock back.
type Release func(ctx context.Context) error

// Locker serializes recalculations of one scope.
type Locker interface {
	Acquire(ctx context.Context, key string) (Release, error)
}
