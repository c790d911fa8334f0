package match

import (
	"context"
	"time"

	"github.com/riskibarqy/table-tennis-league/internal/domain/rating"
)

type Repository interface {
	// ListCompleted returns completed matches of the scope ordered by
	// completion time then id. A non-nil until bounds completed_at inclusively.
	ListCompleted(ctx context.Context, scope rating.Scope, until *time.Time) ([]Match, error)
	GetByID(ctx context.Context, scope rating.Scope, matchID string) (Match, bool, error)
}
